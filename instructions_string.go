// instructions_string.go - byte-granular string instructions
//
// Direction is fixed forward: there is no DF in the flags word, ESI/EDI
// always advance by one byte.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// opLODSB loads AL from [ESI] and advances ESI.
func opLODSB(cpu *CPU, toks []string) error {
	if !checkArity(toks, 0) {
		return nil
	}
	b, err := cpu.Mem.ReadByte(cpu.Regs[RegESI])
	if err != nil {
		return err
	}
	cpu.SetReg8(RegEAX, 0, b)
	cpu.Regs[RegESI]++
	return nil
}

// opSTOSB stores AL to [EDI] and advances EDI.
func opSTOSB(cpu *CPU, toks []string) error {
	if !checkArity(toks, 0) {
		return nil
	}
	if err := cpu.Mem.WriteByte(cpu.Regs[RegEDI], cpu.Reg8(RegEAX, 0)); err != nil {
		return err
	}
	cpu.Regs[RegEDI]++
	return nil
}

// opMOVSB copies a byte from [ESI] to [EDI], advancing both.
func opMOVSB(cpu *CPU, toks []string) error {
	if !checkArity(toks, 0) {
		return nil
	}
	b, err := cpu.Mem.ReadByte(cpu.Regs[RegESI])
	if err != nil {
		return err
	}
	if err := cpu.Mem.WriteByte(cpu.Regs[RegEDI], b); err != nil {
		return err
	}
	cpu.Regs[RegESI]++
	cpu.Regs[RegEDI]++
	return nil
}

// opSCASB compares AL against [EDI], sets flags as CMP would, advances EDI.
func opSCASB(cpu *CPU, toks []string) error {
	if !checkArity(toks, 0) {
		return nil
	}
	b, err := cpu.Mem.ReadByte(cpu.Regs[RegEDI])
	if err != nil {
		return err
	}
	al := cpu.Reg8(RegEAX, 0)
	_, flags := computeSubFlags(cpu.Flags, uint32(al), uint32(b))
	cpu.Flags = flags
	cpu.Regs[RegEDI]++
	return nil
}

// opCMPSB compares [ESI] against [EDI], sets flags as CMP would, advances both.
func opCMPSB(cpu *CPU, toks []string) error {
	if !checkArity(toks, 0) {
		return nil
	}
	sb, err := cpu.Mem.ReadByte(cpu.Regs[RegESI])
	if err != nil {
		return err
	}
	db, err := cpu.Mem.ReadByte(cpu.Regs[RegEDI])
	if err != nil {
		return err
	}
	_, flags := computeSubFlags(cpu.Flags, uint32(sb), uint32(db))
	cpu.Flags = flags
	cpu.Regs[RegESI]++
	cpu.Regs[RegEDI]++
	return nil
}
