// errors_x86.go - error kinds for runtime faults
//
// Load-time assembly diagnostics (AssemblySubKind, assembler.Error) live in
// package assembler; this file covers the faults that can only surface
// once a Program is already loaded and executing.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import "fmt"

// LabelNotFound is raised by a jump/call/loop at runtime when the target
// label does not appear in the program's label table.
type LabelNotFound struct {
	Label string
	Line  uint32
}

func (e *LabelNotFound) Error() string {
	return fmt.Sprintf("line %d: label not found: %s", e.Line, e.Label)
}

// StrictViolation is raised in StrictX86 mode when MOV has both a memory
// source and a memory destination.
type StrictViolation struct {
	Line uint32
	Msg  string
}

func (e *StrictViolation) Error() string {
	return fmt.Sprintf("line %d: strict x86 violation: %s", e.Line, e.Msg)
}

// IoErrorSubKind distinguishes undocumented reads from undocumented writes.
type IoErrorSubKind int

const (
	SubUnknownIoRead IoErrorSubKind = iota
	SubUnknownIoWrite
)

// IoError is raised when an address inside a device region has no
// documented meaning at that offset.
type IoError struct {
	Sub  IoErrorSubKind
	Addr uint32
}

func (e *IoError) Error() string {
	if e.Sub == SubUnknownIoRead {
		return fmt.Sprintf("unknown io read at 0x%X", e.Addr)
	}
	return fmt.Sprintf("unknown io write at 0x%X", e.Addr)
}
