// controlflow_x86.go - jumps, call/return, loop, and conditional move
//
// Targets are label names resolved through the assembled program's label
// table at execution time; an unknown label is a runtime fault, not an
// assembly error, since data symbols were already substituted at load.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// resolveTarget looks up a jump/call/loop operand (a label name) against
// the loaded program, returning its instruction index.
func resolveTarget(cpu *CPU, label string) (uint32, error) {
	idx, ok := cpu.Program.Labels[label]
	if !ok {
		return 0, &LabelNotFound{Label: label, Line: cpu.currentLine()}
	}
	return idx, nil
}

func opJMP(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		cpu.EIP++
		return nil
	}
	target, err := resolveTarget(cpu, toks[0])
	if err != nil {
		return err
	}
	cpu.EIP = target
	return nil
}

// condJump resolves the label unconditionally, then sets EIP to it when
// cond holds or falls through otherwise. Resolution comes first: an
// unknown target faults even on the not-taken branch. A missing operand is
// a silent no-op that still advances EIP.
func condJump(cpu *CPU, toks []string, cond bool) error {
	if !checkArity(toks, 1) {
		cpu.EIP++
		return nil
	}
	target, err := resolveTarget(cpu, toks[0])
	if err != nil {
		return err
	}
	if !cond {
		cpu.EIP++
		return nil
	}
	cpu.EIP = target
	return nil
}

func opJccEq(cpu *CPU, toks []string) error { return condJump(cpu, toks, cpu.ZF()) }
func opJccNe(cpu *CPU, toks []string) error { return condJump(cpu, toks, !cpu.ZF()) }
func opJG(cpu *CPU, toks []string) error    { return condJump(cpu, toks, !cpu.ZF() && cpu.SF() == cpu.OF()) }
func opJGE(cpu *CPU, toks []string) error   { return condJump(cpu, toks, cpu.SF() == cpu.OF()) }
func opJL(cpu *CPU, toks []string) error    { return condJump(cpu, toks, cpu.SF() != cpu.OF()) }
func opJLE(cpu *CPU, toks []string) error   { return condJump(cpu, toks, cpu.ZF() || cpu.SF() != cpu.OF()) }
func opJS(cpu *CPU, toks []string) error    { return condJump(cpu, toks, cpu.SF()) }
func opJNS(cpu *CPU, toks []string) error   { return condJump(cpu, toks, !cpu.SF()) }
func opJA(cpu *CPU, toks []string) error    { return condJump(cpu, toks, !cpu.CF() && !cpu.ZF()) }
func opJAE(cpu *CPU, toks []string) error   { return condJump(cpu, toks, !cpu.CF()) }
func opJB(cpu *CPU, toks []string) error    { return condJump(cpu, toks, cpu.CF()) }
func opJBE(cpu *CPU, toks []string) error   { return condJump(cpu, toks, cpu.CF() || cpu.ZF()) }

// opCALL pushes EIP+1 onto both the call stack and the ESP-relative data
// stack (a shadow copy, so PUSH/POP bookkeeping stays visibly balanced
// across calls), then transfers control to the target.
func opCALL(cpu *CPU, toks []string) error {
	if !checkArity(toks, 1) {
		cpu.EIP++
		return nil
	}
	target, err := resolveTarget(cpu, toks[0])
	if err != nil {
		return err
	}
	retAddr := cpu.EIP + 1
	cpu.CallStack = append(cpu.CallStack, retAddr)
	cpu.Regs[RegESP] -= 4
	if err := cpu.Mem.WriteMemory32(cpu.Regs[RegESP], retAddr); err != nil {
		return err
	}
	cpu.EIP = target
	return nil
}

// opRET pops both the call stack and its data-stack shadow copy. On an
// empty call stack it is a no-underflow no-op: EIP just advances by 1.
func opRET(cpu *CPU, toks []string) error {
	n := len(cpu.CallStack)
	if n == 0 {
		cpu.EIP++
		return nil
	}
	ret := cpu.CallStack[n-1]
	cpu.CallStack = cpu.CallStack[:n-1]
	cpu.Regs[RegESP] += 4
	cpu.EIP = ret
	return nil
}

// opLOOP decrements ECX and jumps while ECX != 0.
func opLOOP(cpu *CPU, toks []string) error {
	cpu.Regs[RegECX]--
	return condJump(cpu, toks, cpu.Regs[RegECX] != 0)
}

// opLOOPE/opLOOPZ decrement ECX and jump while ECX != 0 and ZF is set.
func opLOOPE(cpu *CPU, toks []string) error {
	cpu.Regs[RegECX]--
	return condJump(cpu, toks, cpu.Regs[RegECX] != 0 && cpu.ZF())
}

// opLOOPNE/opLOOPNZ decrement ECX and jump while ECX != 0 and ZF is clear.
func opLOOPNE(cpu *CPU, toks []string) error {
	cpu.Regs[RegECX]--
	return condJump(cpu, toks, cpu.Regs[RegECX] != 0 && !cpu.ZF())
}

// opCMOVcc returns a handler for the named condition that moves src into
// dst only when the condition holds; EIP always advances normally since a
// conditional move is not a control-flow instruction.
func opCMOVcc(cond string) opHandler {
	return func(cpu *CPU, toks []string) error {
		if !checkArity(toks, 2) {
			return nil
		}
		ops, err := parseOperands(toks)
		if err != nil {
			return err
		}
		if !evalCond(cpu, cond) {
			return nil
		}
		v, err := resolveSourceValue(cpu, ops[1])
		if err != nil {
			return err
		}
		return writeDest(cpu, ops[0], v)
	}
}

func evalCond(cpu *CPU, cond string) bool {
	switch cond {
	case "E":
		return cpu.ZF()
	case "NE":
		return !cpu.ZF()
	case "G":
		return !cpu.ZF() && cpu.SF() == cpu.OF()
	case "GE":
		return cpu.SF() == cpu.OF()
	case "L":
		return cpu.SF() != cpu.OF()
	case "LE":
		return cpu.ZF() || cpu.SF() != cpu.OF()
	case "S":
		return cpu.SF()
	case "NS":
		return !cpu.SF()
	case "A":
		return !cpu.CF() && !cpu.ZF()
	case "AE":
		return !cpu.CF()
	case "B":
		return cpu.CF()
	case "BE":
		return cpu.CF() || cpu.ZF()
	}
	return false
}
