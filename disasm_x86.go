// disasm_x86.go - listing re-render for the debug REPL's "list" command
//
// There is no byte encoding to decode back from: a listing just re-emits
// the mnemonic and operand text the assembler already parsed, annotated
// with the instruction index, current-EIP marker, and breakpoint state.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"fmt"
	"strings"
)

// Listing is one re-rendered source line, annotated with its instruction
// index so a REPL can cross-reference it against breakpoints.
type Listing struct {
	Index    uint32
	Line     uint32
	Text     string
	IsAt     bool // true when this is the instruction EIP currently points to
	HasBreak bool
}

// Disassemble re-renders count instructions starting at instruction index
// from, resolving each mnemonic and its operands back to source-like text.
// It never touches CPU state; it only reads the loaded program.
func (c *CPU) Disassemble(from uint32, count int, breakpoints map[uint32]bool) []Listing {
	if c.Program == nil {
		return nil
	}
	out := make([]Listing, 0, count)
	for i := 0; i < count; i++ {
		idx := from + uint32(i)
		if int(idx) >= len(c.Program.Instructions) {
			break
		}
		instr := c.Program.Instructions[idx]
		text := instr.Mnemonic
		if len(instr.Operands) > 0 {
			text = fmt.Sprintf("%s %s", instr.Mnemonic, strings.Join(instr.Operands, ", "))
		}
		out = append(out, Listing{
			Index:    idx,
			Line:     instr.Line,
			Text:     text,
			IsAt:     idx == c.EIP,
			HasBreak: breakpoints[idx],
		})
	}
	return out
}
