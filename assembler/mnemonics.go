// mnemonics.go - the canonical instruction-name inventory
//
// Both front ends validate source against this one table: the simulator
// binary passes it to Assemble and builds its dispatch table over the same
// names (enforced by a test on that side), and x86edu-check uses it to vet
// programs without linking the simulator.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package assembler

var mnemonicNames = []string{
	// data movement
	"MOV", "XCHG", "LEA", "MOVZX", "MOVSX", "PUSH", "POP", "RAND",

	// arithmetic
	"ADD", "SUB", "INC", "DEC", "NEG",
	"MUL", "IMUL", "DIV", "IDIV", "MOD", "CMP",

	// logic and shifts
	"AND", "OR", "XOR", "NOT", "TEST",
	"SHL", "SHR", "SAR", "ROL", "ROR", "RCL", "RCR",

	// string ops, bare and byte forms
	"LODSB", "STOSB", "MOVSB", "SCASB", "CMPSB",
	"LODS", "STOS", "MOVS", "SCAS", "CMPS",

	// misc
	"NOP", "LAHF", "SAHF", "XADD", "BSF", "BSR", "BSWAP",
	"HLT", "INT", "INT3", "IRET",

	// control flow
	"JMP", "JE", "JZ", "JNE", "JNZ", "JG", "JGE", "JL", "JLE",
	"JS", "JNS", "JA", "JAE", "JB", "JBE",
	"CALL", "RET",
	"LOOP", "LOOPE", "LOOPZ", "LOOPNE", "LOOPNZ",
	"CMOVE", "CMOVZ", "CMOVNE", "CMOVNZ",
	"CMOVG", "CMOVGE", "CMOVL", "CMOVLE",
	"CMOVS", "CMOVNS", "CMOVA", "CMOVAE", "CMOVB", "CMOVBE",
}

// KnownMnemonics returns a fresh set of every recognized mnemonic,
// including aliases, suitable for passing to Assemble.
func KnownMnemonics() map[string]bool {
	known := make(map[string]bool, len(mnemonicNames))
	for _, name := range mnemonicNames {
		known[name] = true
	}
	return known
}

// IsControlFlow reports whether m is a mnemonic whose single operand is
// always a label name resolved at runtime, never a data-symbol memory
// expression.
func IsControlFlow(m string) bool {
	switch m {
	case "JMP", "JE", "JZ", "JNE", "JNZ", "JG", "JGE", "JL", "JLE",
		"JS", "JNS", "JA", "JAE", "JB", "JBE", "CALL",
		"LOOP", "LOOPE", "LOOPZ", "LOOPNE", "LOOPNZ":
		return true
	}
	return false
}
