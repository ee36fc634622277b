// instructions_logic.go - bitwise, test, shift, and rotate instructions
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

func opAND(cpu *CPU, toks []string) error { return binaryLogic(cpu, toks, func(a, b uint32) uint32 { return a & b }) }
func opOR(cpu *CPU, toks []string) error  { return binaryLogic(cpu, toks, func(a, b uint32) uint32 { return a | b }) }
func opXOR(cpu *CPU, toks []string) error { return binaryLogic(cpu, toks, func(a, b uint32) uint32 { return a ^ b }) }

func binaryLogic(cpu *CPU, toks []string, op func(a, b uint32) uint32) error {
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
	result := op(a, b)
	cpu.Flags = computeLogicFlags(cpu.Flags, result)
	return writeDest(cpu, dst, result)
}

func opNOT(cpu *CPU, toks []string) error {
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
	return writeDest(cpu, ops[0], ^a)
}

func opTEST(cpu *CPU, toks []string) error {
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
	cpu.Flags = computeLogicFlags(cpu.Flags, a&b)
	return nil
}

func opSHL(cpu *CPU, toks []string) error { return shiftOp(cpu, toks, ShiftSHL) }
func opSHR(cpu *CPU, toks []string) error { return shiftOp(cpu, toks, ShiftSHR) }
func opSAR(cpu *CPU, toks []string) error { return shiftOp(cpu, toks, ShiftSAR) }

func shiftOp(cpu *CPU, toks []string, kind ShiftOp) error {
	if !checkArity(toks, 2) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	dst, cnt := ops[0], ops[1]
	if !writableDest(dst) {
		return nil
	}
	v, err := resolveSourceValue(cpu, dst)
	if err != nil {
		return err
	}
	raw, err := resolveSourceValue(cpu, cnt)
	if err != nil {
		return err
	}
	result, flags := computeShift(kind, cpu.Flags, v, raw)
	cpu.Flags = flags
	return writeDest(cpu, dst, result)
}

func opROL(cpu *CPU, toks []string) error { return rotateOp(cpu, toks, RotateROL) }
func opROR(cpu *CPU, toks []string) error { return rotateOp(cpu, toks, RotateROR) }

func rotateOp(cpu *CPU, toks []string, kind ShiftOp) error {
	if !checkArity(toks, 2) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	dst, cnt := ops[0], ops[1]
	if !writableDest(dst) {
		return nil
	}
	v, err := resolveSourceValue(cpu, dst)
	if err != nil {
		return err
	}
	raw, err := resolveSourceValue(cpu, cnt)
	if err != nil {
		return err
	}
	result, flags := computeRotate(cpu.Mode, kind, cpu.Flags, v, raw)
	cpu.Flags = flags
	return writeDest(cpu, dst, result)
}

func opRCL(cpu *CPU, toks []string) error { return rotateCarryOp(cpu, toks, RotateRCL) }
func opRCR(cpu *CPU, toks []string) error { return rotateCarryOp(cpu, toks, RotateRCR) }

func rotateCarryOp(cpu *CPU, toks []string, kind ShiftOp) error {
	if !checkArity(toks, 2) {
		return nil
	}
	ops, err := parseOperands(toks)
	if err != nil {
		return err
	}
	dst, cnt := ops[0], ops[1]
	if !writableDest(dst) {
		return nil
	}
	v, err := resolveSourceValue(cpu, dst)
	if err != nil {
		return err
	}
	raw, err := resolveSourceValue(cpu, cnt)
	if err != nil {
		return err
	}
	result, flags := computeRotateCarry(cpu.Mode, kind, cpu.Flags, v, raw)
	cpu.Flags = flags
	return writeDest(cpu, dst, result)
}
