// Command x86edu-check assembles a source file and reports unresolved or
// duplicate labels without executing it. It links only the assembler
// package, so it can vet a program without pulling in the CPU, devices,
// or dispatcher.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zotley/x86edu/assembler"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: x86edu-check <source.asm>\n\nAssembles a source file and reports unresolved or duplicate labels.\n")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	prog, err := assembler.Assemble(string(source), assembler.KnownMnemonics())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var unresolved []string
	for _, instr := range prog.Instructions {
		if len(instr.Operands) == 0 {
			continue
		}
		if !assembler.IsControlFlow(instr.Mnemonic) {
			continue
		}
		target := instr.Operands[0]
		if strings.HasPrefix(target, "0x") || strings.HasPrefix(target, "0X") {
			continue
		}
		if _, ok := prog.Labels[target]; !ok {
			unresolved = append(unresolved, fmt.Sprintf("line %d: %s refers to undefined label %q", instr.Line, instr.Mnemonic, target))
		}
	}

	if len(unresolved) > 0 {
		for _, msg := range unresolved {
			fmt.Println(msg)
		}
		os.Exit(1)
	}

	fmt.Printf("ok: %d instructions, %d labels\n", len(prog.Instructions), len(prog.Labels))
}
