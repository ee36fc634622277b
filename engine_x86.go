// engine_x86.go - the fetch/dispatch/advance execution engine
//
// Single-threaded and cooperative: Continue never spawns a goroutine, it
// yields back to its caller every yieldInterval instructions so a host
// REPL or UI can process events between quanta.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"fmt"

	"github.com/zotley/x86edu/assembler"
)

// yieldInterval is how many instructions Continue executes before
// returning control to its caller, even with no breakpoint hit.
const yieldInterval = 1000

// StopReason explains why Continue or Step returned.
type StopReason int

const (
	StopEntry StopReason = iota
	StopStep
	StopBreakpoint
	StopHalt
	StopPause
	StopException
)

func (r StopReason) String() string {
	switch r {
	case StopEntry:
		return "entry"
	case StopStep:
		return "step"
	case StopBreakpoint:
		return "breakpoint"
	case StopHalt:
		return "halt"
	case StopPause:
		return "pause"
	case StopException:
		return "exception"
	}
	return "unknown"
}

// StoppedEvent is returned by Step/Continue to describe why execution paused.
type StoppedEvent struct {
	Reason StopReason
	Line   uint32
	Err    error // non-nil only when Reason == StopException
}

// Load installs an assembled program and its initial memory image, then
// resets the CPU to its power-on state with that program attached.
func (c *CPU) Load(prog *assembler.Program) {
	c.Reset()
	c.Program = prog
	for addr, b := range prog.InitialMemory {
		c.Mem.WriteByte(addr, b)
	}
}

// Step executes exactly one instruction and returns the event describing
// the outcome. Step never runs past a halted CPU.
func (c *CPU) Step() StoppedEvent {
	if c.Halted {
		return StoppedEvent{Reason: StopHalt, Line: c.currentLine()}
	}
	if c.Program == nil || int(c.EIP) >= len(c.Program.Instructions) {
		c.Halt()
		return StoppedEvent{Reason: StopHalt, Line: c.currentLine()}
	}

	instr := c.Program.Instructions[c.EIP]
	handler, ok := opTable[instr.Mnemonic]
	if !ok {
		err := fmt.Errorf("line %d: no handler registered for %s", instr.Line, instr.Mnemonic)
		c.running = false
		return StoppedEvent{Reason: StopException, Line: instr.Line, Err: err}
	}

	// A fault stops the run but does not halt the machine: halted is
	// reserved for HLT/INT 0x20/INT3, and EIP stays on the offending
	// instruction for the driver to inspect.
	if err := handler(c, instr.Operands); err != nil {
		c.running = false
		return StoppedEvent{Reason: StopException, Line: instr.Line, Err: err}
	}

	if !controlFlowMnemonics[instr.Mnemonic] {
		c.EIP++
	}

	if c.Halted {
		return StoppedEvent{Reason: StopHalt, Line: instr.Line}
	}
	return StoppedEvent{Reason: StopStep, Line: instr.Line}
}

// Continue runs instructions until a breakpoint, halt, the caller's pause
// request, an exception, or yieldInterval instructions have executed -
// whichever comes first. The caller is expected to call Continue again
// after a yield to keep driving the machine forward.
//
// skipCurrent suppresses the breakpoint check for the instruction at EIP
// on entry: resuming from a just-reported breakpoint must execute that
// instruction rather than re-reporting it. A resume after a yield quantum
// passes false, since nothing at the current EIP has been reported yet.
func (c *CPU) Continue(breakpoints map[uint32]bool, paused *bool, skipCurrent bool) StoppedEvent {
	c.SetRunning(true)
	defer func() { c.running = false }()

	for i := 0; i < yieldInterval; i++ {
		if paused != nil && *paused {
			return StoppedEvent{Reason: StopPause, Line: c.currentLine()}
		}
		if c.Halted {
			return StoppedEvent{Reason: StopHalt, Line: c.currentLine()}
		}
		if (i > 0 || !skipCurrent) && breakpoints[c.EIP] {
			return StoppedEvent{Reason: StopBreakpoint, Line: c.currentLine()}
		}

		ev := c.Step()
		if ev.Reason == StopException || ev.Reason == StopHalt {
			return ev
		}
	}
	return StoppedEvent{Reason: StopStep, Line: c.currentLine()}
}
