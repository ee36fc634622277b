// dispatcher_x86.go - mnemonic to handler dispatch table
//
// One map keyed by mnemonic text; aliases (JE/JZ, LOOPE/LOOPZ, the CMOVcc
// family) point at the same handler value so no predicate logic is ever
// duplicated.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import "github.com/zotley/x86edu/assembler"

// opHandler executes one instruction against cpu, given its operand tokens
// already split by the assembler. It returns an error to stop the run; Step
// reports it as an exception without marking the CPU halted. The assembler
// does not parse operand text, so a malformed literal or operand is only
// detected here, when the instruction executes, and surfaces as an
// *assembler.Error (InvalidHex, InvalidBinary, InvalidOperand,
// BadOperandSyntax) whose Line is 0; the StoppedEvent carries the line.
// A handler that changes control flow (a jump, CALL, RET, LOOP)
// sets cpu.EIP itself; Step only advances EIP when the handler did not.
type opHandler func(cpu *CPU, ops []string) error

// controlFlowMnemonics are the handlers responsible for setting cpu.EIP
// themselves; Step must not auto-advance after dispatching one of these.
var controlFlowMnemonics = map[string]bool{
	"JMP": true, "JE": true, "JZ": true, "JNE": true, "JNZ": true,
	"JG": true, "JGE": true, "JL": true, "JLE": true,
	"JS": true, "JNS": true, "JA": true, "JAE": true, "JB": true, "JBE": true,
	"CALL": true, "RET": true,
	"LOOP": true, "LOOPE": true, "LOOPZ": true, "LOOPNE": true, "LOOPNZ": true,
}

var opTable map[string]opHandler

func init() {
	opTable = map[string]opHandler{
		// data movement
		"MOV": opMOV, "XCHG": opXCHG, "LEA": opLEA,
		"MOVZX": opMOVZX, "MOVSX": opMOVSX,
		"PUSH": opPUSH, "POP": opPOP,
		"RAND": opRAND,

		// arithmetic
		"ADD": opADD, "SUB": opSUB, "INC": opINC, "DEC": opDEC, "NEG": opNEG,
		"MUL": opMUL, "IMUL": opIMUL, "DIV": opDIV, "IDIV": opIDIV,
		"MOD": opMOD, "CMP": opCMP,

		// logic and shifts
		"AND": opAND, "OR": opOR, "XOR": opXOR, "NOT": opNOT, "TEST": opTEST,
		"SHL": opSHL, "SHR": opSHR, "SAR": opSAR,
		"ROL": opROL, "ROR": opROR, "RCL": opRCL, "RCR": opRCR,

		// string ops (the bare forms alias the byte forms: everything is
		// byte-granular here)
		"LODSB": opLODSB, "STOSB": opSTOSB, "MOVSB": opMOVSB,
		"SCASB": opSCASB, "CMPSB": opCMPSB,
		"LODS": opLODSB, "STOS": opSTOSB, "MOVS": opMOVSB,
		"SCAS": opSCASB, "CMPS": opCMPSB,

		// misc
		"NOP": opNOP, "LAHF": opLAHF, "SAHF": opSAHF,
		"XADD": opXADD, "BSF": opBSF, "BSR": opBSR, "BSWAP": opBSWAP,
		"HLT": opHLT, "INT": opINT, "INT3": opINT3, "IRET": opIRET,

		// control flow
		"JMP": opJMP,
		"JE": opJccEq, "JZ": opJccEq, "JNE": opJccNe, "JNZ": opJccNe,
		"JG": opJG, "JGE": opJGE, "JL": opJL, "JLE": opJLE,
		"JS": opJS, "JNS": opJNS,
		"JA": opJA, "JAE": opJAE, "JB": opJB, "JBE": opJBE,
		"CALL": opCALL, "RET": opRET,
		"LOOP": opLOOP, "LOOPE": opLOOPE, "LOOPZ": opLOOPE,
		"LOOPNE": opLOOPNE, "LOOPNZ": opLOOPNE,
		"CMOVE": opCMOVcc("E"), "CMOVZ": opCMOVcc("E"),
		"CMOVNE": opCMOVcc("NE"), "CMOVNZ": opCMOVcc("NE"),
		"CMOVG": opCMOVcc("G"), "CMOVGE": opCMOVcc("GE"),
		"CMOVL": opCMOVcc("L"), "CMOVLE": opCMOVcc("LE"),
		"CMOVS": opCMOVcc("S"), "CMOVNS": opCMOVcc("NS"),
		"CMOVA": opCMOVcc("A"), "CMOVAE": opCMOVcc("AE"),
		"CMOVB": opCMOVcc("B"), "CMOVBE": opCMOVcc("BE"),
	}
}

// resolveSourceValue reads an operand's 32-bit value without mutating cpu
// state: registers by index, 8-bit aliases zero-extended, immediates
// as-is, and memory operands through cpu.Mem.
func resolveSourceValue(cpu *CPU, op Operand) (uint32, error) {
	switch op.Kind {
	case OperandRegister:
		return cpu.Regs[op.RegIndex], nil
	case OperandRegister8:
		return uint32(cpu.Reg8(op.RegIndex, op.ByteOffset)), nil
	case OperandImmediate:
		return op.Immediate, nil
	case OperandMemory:
		addr := effectiveAddress(cpu, op)
		return cpu.Mem.ReadMemory32(addr)
	}
	return 0, &assembler.Error{Sub: assembler.SubInvalidOperand, Message: "unresolvable operand: " + op.Raw}
}

// effectiveAddress computes a memory operand's address from its base
// register, index register, and constant offset.
func effectiveAddress(cpu *CPU, op Operand) uint32 {
	addr := uint32(op.MemOff)
	if op.MemBase >= 0 {
		addr += cpu.Regs[op.MemBase]
	}
	if op.MemIndex >= 0 {
		addr += cpu.Regs[op.MemIndex]
	}
	return addr
}

// writableDest reports whether op can receive a result. Handlers that
// compute flags check this before calling into the flag engine: a type-
// mismatched destination must make the whole instruction a no-op, with no
// observable state change, not just swallow the write.
func writableDest(op Operand) bool {
	switch op.Kind {
	case OperandRegister, OperandRegister8, OperandMemory:
		return true
	}
	return false
}

// writeDest stores v into a register, 8-bit alias, or memory operand. An
// immediate destination is an operand-type mismatch, which silently skips
// the write rather than faulting.
func writeDest(cpu *CPU, op Operand, v uint32) error {
	switch op.Kind {
	case OperandRegister:
		cpu.Regs[op.RegIndex] = v
	case OperandRegister8:
		cpu.SetReg8(op.RegIndex, op.ByteOffset, byte(v))
	case OperandMemory:
		addr := effectiveAddress(cpu, op)
		return cpu.Mem.WriteMemory32(addr, v)
	}
	return nil
}

// checkArity reports whether toks carries exactly n operands. Handlers call
// this before parsing and treat a mismatch as a silent no-op rather than an
// error: the instruction is skipped and EIP advances.
func checkArity(toks []string, n int) bool {
	return len(toks) == n
}

// parseOperands parses every operand token for one instruction in order.
func parseOperands(tokens []string) ([]Operand, error) {
	out := make([]Operand, len(tokens))
	for i, t := range tokens {
		op, err := ParseOperand(t)
		if err != nil {
			return nil, err
		}
		out[i] = op
	}
	return out, nil
}
