// instructions_arith.go - arithmetic instructions
//
// EDX:EAX is the sole implicit operand pair for MUL/DIV; there is no
// 8/16-bit AX:DX split, the machine is 32-bit throughout.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

func opADD(cpu *CPU, toks []string) error {
	return binaryArith(cpu, toks, func(flags, a, b uint32) (uint32, uint32) {
		return computeAddFlags(flags, a, b)
	})
}

func opSUB(cpu *CPU, toks []string) error {
	return binaryArith(cpu, toks, func(flags, a, b uint32) (uint32, uint32) {
		return computeSubFlags(flags, a, b)
	})
}

func opCMP(cpu *CPU, toks []string) error {
	if !checkArity(toks, 2) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	a, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	b, err := resolveSourceValue(cpu, ops[1])
	if err != nil {
		return err
	}
	_, flags := computeSubFlags(cpu.Flags, a, b)
	cpu.Flags = flags
	return nil
}

func binaryArith(cpu *CPU, toks []string, compute func(flags, a, b uint32) (uint32, uint32)) error {
	if !checkArity(toks, 2) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	dst, src := ops[0], ops[1]
	if !writableDest(dst) {
		return nil
	}
	a, err := resolveSourceValue(cpu, dst)
	if err != nil {
		return err
	}
	b, err := resolveSourceValue(cpu, src)
	if err != nil {
		return err
	}
	result, flags := compute(cpu.Flags, a, b)
	cpu.Flags = flags
	return writeDest(cpu, dst, result)
}

func opINC(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	if !writableDest(ops[0]) {
		return nil
	}
	a, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	result, flags := computeIncFlags(cpu.Flags, a)
	cpu.Flags = flags
	return writeDest(cpu, ops[0], result)
}

func opDEC(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	if !writableDest(ops[0]) {
		return nil
	}
	a, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	result, flags := computeDecFlags(cpu.Flags, a)
	cpu.Flags = flags
	return writeDest(cpu, ops[0], result)
}

func opNEG(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	if !writableDest(ops[0]) {
		return nil
	}
	a, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	result, flags := computeNegFlags(cpu.Flags, a)
	cpu.Flags = flags
	return writeDest(cpu, ops[0], result)
}

// opMUL implements unsigned multiply: EDX:EAX = EAX * src.
func opMUL(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	src, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	product := uint64(cpu.Regs[RegEAX]) * uint64(src)
	lo := uint32(product)
	hi := uint32(product >> 32)
	cpu.Regs[RegEAX] = lo
	cpu.Regs[RegEDX] = hi
	cpu.Flags = computeMulFlags(cpu.Mode, cpu.Flags, hi, lo)
	return nil
}

// opIMUL implements the 1-, 2-, and 3-operand signed multiply forms.
func opIMUL(cpu *CPU, toks []string) error {
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	switch len(ops) {
	case 1:
		src, err := resolveSourceValue(cpu, ops[0])
		if err != nil {
			return err
		}
		product := int64(int32(cpu.Regs[RegEAX])) * int64(int32(src))
		lo := uint32(product)
		hi := uint32(uint64(product) >> 32)
		cpu.Regs[RegEAX] = lo
		cpu.Regs[RegEDX] = hi
		cpu.Flags = computeMulFlags(cpu.Mode, cpu.Flags, hi, lo)
		return nil
	case 2:
		if !writableDest(ops[0]) {
			return nil
		}
		a, err := resolveSourceValue(cpu, ops[0])
		if err != nil {
			return err
		}
		b, err := resolveSourceValue(cpu, ops[1])
		if err != nil {
			return err
		}
		product := int64(int32(a)) * int64(int32(b))
		lo := uint32(product)
		hi := uint32(uint64(product) >> 32)
		cpu.Flags = computeMulFlags(cpu.Mode, cpu.Flags, hi, lo)
		return writeDest(cpu, ops[0], lo)
	case 3:
		if !writableDest(ops[0]) {
			return nil
		}
		b, err := resolveSourceValue(cpu, ops[1])
		if err != nil {
			return err
		}
		c, err := resolveSourceValue(cpu, ops[2])
		if err != nil {
			return err
		}
		product := int64(int32(b)) * int64(int32(c))
		lo := uint32(product)
		hi := uint32(uint64(product) >> 32)
		cpu.Flags = computeMulFlags(cpu.Mode, cpu.Flags, hi, lo)
		return writeDest(cpu, ops[0], lo)
	}
	return nil
}

// opDIV implements unsigned divide: EAX:EDX (as dividend EDX:EAX) / src.
func opDIV(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	src, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	if src == 0 {
		cpu.Regs[RegEAX] = 0
		cpu.Regs[RegEDX] = 0
		cpu.Flags = computeDivFlags(cpu.Mode, cpu.Flags, 0)
		return nil
	}
	dividend := uint64(cpu.Regs[RegEDX])<<32 | uint64(cpu.Regs[RegEAX])
	quotient := uint32(dividend / uint64(src))
	remainder := uint32(dividend % uint64(src))
	cpu.Regs[RegEAX] = quotient
	cpu.Regs[RegEDX] = remainder
	cpu.Flags = computeDivFlags(cpu.Mode, cpu.Flags, quotient)
	return nil
}

// opIDIV implements signed divide over the same EDX:EAX dividend.
func opIDIV(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	src, err := resolveSourceValue(cpu, ops[0])
	if err != nil {
		return err
	}
	if src == 0 {
		cpu.Regs[RegEAX] = 0
		cpu.Regs[RegEDX] = 0
		cpu.Flags = computeDivFlags(cpu.Mode, cpu.Flags, 0)
		return nil
	}
	dividend := int64(uint64(cpu.Regs[RegEDX])<<32 | uint64(cpu.Regs[RegEAX]))
	quotient := dividend / int64(int32(src))
	remainder := dividend % int64(int32(src))
	cpu.Regs[RegEAX] = uint32(quotient)
	cpu.Regs[RegEDX] = uint32(remainder)
	cpu.Flags = computeDivFlags(cpu.Mode, cpu.Flags, uint32(quotient))
	return nil
}

// opMOD is a simulator-only convenience op computing dst %= src without
// touching EDX:EAX, for programs that want a remainder without a divide.
func opMOD(cpu *CPU, toks []string) error {
	if !checkArity(toks, 2) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	dst, src := ops[0], ops[1]
	if !writableDest(dst) {
		return nil
	}
	a, err := resolveSourceValue(cpu, dst)
	if err != nil {
		return err
	}
	b, err := resolveSourceValue(cpu, src)
	if err != nil {
		return err
	}
	if b == 0 {
		cpu.Flags = setZSFlags(cpu.Flags, 0)
		return writeDest(cpu, dst, 0)
	}
	result := a % b
	cpu.Flags = setZSFlags(cpu.Flags, result)
	return writeDest(cpu, dst, result)
}
