// snapshot.go - immutable register/flags/EIP snapshots for the debug driver
//
// Registers, flags, and EIP are cheap to copy on every stop; the full
// memory array is not, so memory inspection goes through ReadMemory32
// ranges instead of being snapshotted wholesale.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// Snapshot is a point-in-time, immutable copy of CPU state. Callers never
// receive a live pointer into cpu.Regs/cpu.Flags: every Snapshot is a
// value copy taken at the moment of the stop.
type Snapshot struct {
	Regs    [8]uint32
	Flags   uint32
	EIP     uint32
	Halted  bool
	Console []byte
}

// TakeSnapshot copies the CPU's visible state. The Console slice is copied
// too, since cpu.Console keeps growing and a caller holding onto an old
// Snapshot must not see later appends.
func TakeSnapshot(cpu *CPU) Snapshot {
	snap := Snapshot{
		Regs:   cpu.Regs,
		Flags:  cpu.FlagsWord(),
		EIP:    cpu.EIP,
		Halted: cpu.Halted,
	}
	if len(cpu.Console) > 0 {
		snap.Console = append([]byte(nil), cpu.Console...)
	}
	return snap
}

// Reg returns the snapshot's value for a register name ("EAX".."EDI"),
// reporting false when name is not recognized.
func (s Snapshot) Reg(name string) (uint32, bool) {
	idx, ok := reg32Names[name]
	if !ok {
		return 0, false
	}
	return s.Regs[idx], true
}
