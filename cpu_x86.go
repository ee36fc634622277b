// cpu_x86.go - CPU state for the educational 32-bit x86-like simulator
//
// Models an 8086/386-flavoured register file over a flat 32-bit address
// space, with textual operands rather than byte-encoded instructions (see
// assembler/assembler.go for the front end that produces the instruction
// list this CPU steps through).
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import "github.com/zotley/x86edu/assembler"

// Register indices, fixed per the data model: EAX=0, ECX=1, EDX=2, EBX=3,
// ESP=4, EBP=5, ESI=6, EDI=7.
const (
	RegEAX = 0
	RegECX = 1
	RegEDX = 2
	RegEBX = 3
	RegESP = 4
	RegEBP = 5
	RegESI = 6
	RegEDI = 7
)

var regNames = [8]string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}

// Flag bit positions.
const (
	FlagCF           = 1 << 0
	flagReservedBit1 = 1 << 1 // always reads as 1
	FlagZF           = 1 << 6
	FlagSF           = 1 << 7
	FlagOF           = 1 << 11
)

// CompatMode selects the flag-update dialect.
type CompatMode int

const (
	Educational CompatMode = iota
	StrictX86
)

// CPU is the simulator's register and control state.
type CPU struct {
	Regs  [8]uint32
	Flags uint32

	Halted  bool
	running bool

	EIP uint32 // index into Program.Instructions

	CallStack []uint32 // return-address instruction indices

	Console []byte // accumulated console output

	Mem  *Memory
	Mode CompatMode

	Program *assembler.Program // assembled instructions + label table, installed by the loader

	rngState uint64 // xorshift64 state for RAND
}

// NewCPU creates a CPU with the given LCD dimensions and compatibility mode.
func NewCPU(lcdWidth, lcdHeight int, mode CompatMode) *CPU {
	c := &CPU{Mode: mode}
	c.Mem = NewMemory(lcdWidth, lcdHeight)
	c.Reset()
	return c
}

// Reset restores the CPU to its initial power-on state: all GPRs zero,
// ESP = 0xFFFF, EIP = 0, flags = 0x02, memory and devices cleared, call
// stack emptied.
func (c *CPU) Reset() {
	for i := range c.Regs {
		c.Regs[i] = 0
	}
	c.Regs[RegESP] = 0xFFFF
	c.EIP = 0
	c.Flags = flagReservedBit1
	c.Halted = false
	c.running = false
	c.CallStack = nil
	c.Console = nil
	c.rngState = 0x9E3779B97F4A7C15
	if c.Mem != nil {
		c.Mem.Reset()
	}
}

// Running reports whether the engine's continue loop should keep stepping.
func (c *CPU) Running() bool { return c.running }

// SetRunning sets the run/stop state directly; halted always implies !running.
func (c *CPU) SetRunning(v bool) {
	if c.Halted {
		c.running = false
		return
	}
	c.running = v
}

// Halt marks the CPU halted (HLT, INT 0x20, INT3); halted implies !running.
func (c *CPU) Halt() {
	c.Halted = true
	c.running = false
}

// FlagsWord returns the flags register with bit 1 forced to 1, as required
// whenever flags are read externally.
func (c *CPU) FlagsWord() uint32 {
	return c.Flags | flagReservedBit1
}

func (c *CPU) getFlag(mask uint32) bool { return c.Flags&mask != 0 }

func (c *CPU) setFlag(mask uint32, set bool) {
	if set {
		c.Flags |= mask
	} else {
		c.Flags &^= mask
	}
}

func (c *CPU) CF() bool { return c.getFlag(FlagCF) }
func (c *CPU) ZF() bool { return c.getFlag(FlagZF) }
func (c *CPU) SF() bool { return c.getFlag(FlagSF) }
func (c *CPU) OF() bool { return c.getFlag(FlagOF) }

// Reg8 reads an 8-bit alias: byte 0 (low) or byte 1 (bits 8-15) of
// registers 0..3 (AL/AH, CL/CH, DL/DH, BL/BH).
func (c *CPU) Reg8(idx, byteOffset int) byte {
	return byte(c.Regs[idx] >> byteOffset)
}

// SetReg8 writes an 8-bit alias, preserving the other 24 bits of the host
// register.
func (c *CPU) SetReg8(idx, byteOffset int, v byte) {
	mask := uint32(0xFF) << byteOffset
	c.Regs[idx] = (c.Regs[idx] &^ mask) | (uint32(v) << byteOffset)
}

// currentLine returns the source line of the instruction at EIP, or 0 if
// no program is loaded or EIP is out of range.
func (c *CPU) currentLine() uint32 {
	if c.Program == nil || int(c.EIP) >= len(c.Program.Instructions) {
		return 0
	}
	return c.Program.Instructions[c.EIP].Line
}

// nextRand produces the next pseudo-random 32-bit value for RAND
// (xorshift64, re-seeded at Reset so a program's RAND sequence is
// reproducible from run to run - there is no hardware RNG in this machine).
func (c *CPU) nextRand() uint32 {
	x := c.rngState
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	c.rngState = x
	return uint32(x >> 16)
}
