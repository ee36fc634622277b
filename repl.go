// repl.go - interactive single-keystroke debug front end
//
// Each key selects a debug action; the terminal is restored to cooked mode
// only for the commands (setting a breakpoint, dumping memory) that need a
// typed line of input. When stdin is not a real terminal the REPL degrades to
// line-buffered commands of the same letters.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const replHelp = `keys: s=step  n=step-over  o=step-out  c=continue  b=breakpoint  l=list  r=regs  m=mem  x=reset  q=quit  h=help`

// RunREPL drives dbg interactively from the controlling terminal. If
// stdin is not a real terminal (e.g. piped input in a test harness), it
// falls back to line-buffered commands of the same letters.
func RunREPL(dbg *Debugger, logger *Logger) error {
	fmt.Println(replHelp)
	reportStop(dbg.Start())

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return runREPLLineMode(dbg, logger)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Warnf("stdin is not raw-capable (%v); falling back to line mode", err)
		return runREPLLineMode(dbg, logger)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return nil
		}
		if done := dispatchKey(dbg, buf[0], fd, oldState); done {
			return nil
		}
	}
}

// dispatchKey handles one REPL keystroke, returning true when the REPL
// should exit.
func dispatchKey(dbg *Debugger, key byte, fd int, oldState *term.State) bool {
	switch key {
	case 's':
		reportStop(dbg.StepIn())
	case 'n':
		reportStop(dbg.StepOver())
	case 'o':
		reportStop(dbg.StepOut())
	case 'c':
		reportStop(dbg.Continue())
	case 'b':
		line := promptCooked(fd, oldState, "break at line: ")
		var ln uint32
		if _, err := fmt.Sscanf(line, "%d", &ln); err == nil {
			if idx, ok := dbg.SetBreakpointAtLine(ln); ok {
				fmt.Printf("breakpoint armed at instruction %d\n", idx)
			} else {
				fmt.Printf("no instruction begins at line %d\n", ln)
			}
		}
	case 'l':
		printListing(dbg)
	case 'r':
		printSnapshot(TakeSnapshot(dbg.CPU))
	case 'm':
		printMemory(dbg.CPU, promptCooked(fd, oldState, "mem addr [count]: "))
	case 'x':
		dbg.CPU.Load(dbg.CPU.Program)
		reportStop(dbg.Start())
	case 'q':
		return true
	case 'h':
		fmt.Println(replHelp)
	}
	return dbg.CPU.Halted && key != 'r' && key != 'l' && key != 'm' && key != 'h'
}

// runREPLLineMode is the non-terminal fallback: one command per input line.
func runREPLLineMode(dbg *Debugger, logger *Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case 'b':
			var ln uint32
			fmt.Sscanf(line, "b %d", &ln)
			if idx, ok := dbg.SetBreakpointAtLine(ln); ok {
				fmt.Printf("breakpoint armed at instruction %d\n", idx)
			}
		default:
			if dispatchKey(dbg, line[0], -1, nil) {
				return nil
			}
		}
		if dbg.CPU.Halted {
			return nil
		}
	}
	return nil
}

// promptCooked reads one typed line, dropping out of raw mode for the
// duration when the REPL is driving a real terminal.
func promptCooked(fd int, oldState *term.State, prompt string) string {
	if oldState != nil {
		term.Restore(fd, oldState)
		defer term.MakeRaw(fd)
	}
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return line
}

func reportStop(ev StoppedEvent) {
	if ev.Reason == StopException {
		fmt.Printf("stopped: exception at line %d: %v\n", ev.Line, ev.Err)
		return
	}
	fmt.Printf("stopped: %s at line %d\n", ev.Reason, ev.Line)
}

func printListing(dbg *Debugger) {
	from := dbg.CPU.EIP
	if from > 3 {
		from -= 3
	} else {
		from = 0
	}
	for _, l := range dbg.CPU.Disassemble(from, 8, dbg.breakpoints) {
		marker := "  "
		if l.IsAt {
			marker = "->"
		}
		bp := " "
		if l.HasBreak {
			bp = "*"
		}
		fmt.Printf("%s%s[%d] line %d: %s\n", marker, bp, l.Index, l.Line, l.Text)
	}
}

// printMemory dumps a range of 32-bit cells, four per row. The argument
// line is "addr" or "addr count", addr in any literal base the operand
// parser accepts.
func printMemory(cpu *CPU, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	addr, err := parseIntLiteral(fields[0])
	if err != nil {
		fmt.Printf("bad address %q\n", fields[0])
		return
	}
	count := uint32(8)
	if len(fields) > 1 {
		if n, err := parseIntLiteral(fields[1]); err == nil && n > 0 {
			count = n
		}
	}
	for i := uint32(0); i < count; i++ {
		if i%4 == 0 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("0x%05X:", addr+i)
		}
		v, err := cpu.Mem.ReadMemory32(addr + i)
		if err != nil {
			fmt.Printf(" ????????")
			continue
		}
		fmt.Printf(" %08X", v)
	}
	fmt.Println()
}

func printSnapshot(snap Snapshot) {
	fmt.Printf("EIP=%d FLAGS=0x%X HALTED=%v\n", snap.EIP, snap.Flags, snap.Halted)
	for name, idx := range reg32Names {
		fmt.Printf("%s=0x%08X ", name, snap.Regs[idx])
	}
	fmt.Println()
}
