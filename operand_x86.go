// operand_x86.go - operand parser
//
// Turns one trimmed assembly token into a typed Operand. Parsing never
// looks at CPU state: it is a pure function of the token text. Data
// symbols and EQU constants were already substituted by the assembler, so
// every identifier reaching this parser is a register name.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"strconv"
	"strings"

	"github.com/zotley/x86edu/assembler"
)

// OperandKind discriminates the Operand union.
type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandRegister8
	OperandImmediate
	OperandMemory
)

// Operand is a tagged variant produced by ParseOperand.
type Operand struct {
	Kind OperandKind

	RegIndex int // Register / Register8: 0..7

	ByteOffset int // Register8 only: 0 or 8

	Immediate uint32 // Immediate value, masked to 32 bits

	MemBase  int  // Memory: register index, or -1 if absent
	MemIndex int  // Memory: register index, or -1 if absent
	MemOff   int32 // Memory: constant offset (absolute address when MemBase == -1)

	Raw string // original token, for diagnostics
}

var reg32Names = map[string]int{
	"EAX": 0, "ECX": 1, "EDX": 2, "EBX": 3,
	"ESP": 4, "EBP": 5, "ESI": 6, "EDI": 7,
}

// reg8Names maps an 8-bit alias to (register index, byte offset).
var reg8Names = map[string][2]int{
	"AL": {0, 0}, "AH": {0, 8},
	"CL": {1, 0}, "CH": {1, 8},
	"DL": {2, 0}, "DH": {2, 8},
	"BL": {3, 0}, "BH": {3, 8},
}

// ParseOperand parses one trimmed operand token.
func ParseOperand(tok string) (Operand, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Operand{}, &assembler.Error{Sub: assembler.SubBadOperandSyntax, Message: "empty operand"}
	}

	upper := strings.ToUpper(tok)
	if idx, ok := reg32Names[upper]; ok {
		return Operand{Kind: OperandRegister, RegIndex: idx, Raw: tok}, nil
	}
	if pair, ok := reg8Names[upper]; ok {
		return Operand{Kind: OperandRegister8, RegIndex: pair[0], ByteOffset: pair[1], Raw: tok}, nil
	}

	if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
		return parseMemoryOperand(tok)
	}

	if len(tok) >= 3 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		body := tok[1 : len(tok)-1]
		if len(body) != 1 {
			return Operand{}, &assembler.Error{Sub: assembler.SubInvalidOperand, Message: "invalid character literal: " + tok}
		}
		return Operand{Kind: OperandImmediate, Immediate: uint32(body[0]), Raw: tok}, nil
	}

	v, err := parseIntLiteral(tok)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: OperandImmediate, Immediate: v, Raw: tok}, nil
}

func parseMemoryOperand(tok string) (Operand, error) {
	expr := strings.TrimSpace(tok[1 : len(tok)-1])
	if expr == "" {
		return Operand{}, &assembler.Error{Sub: assembler.SubBadOperandSyntax, Message: "empty memory expression: " + tok}
	}

	// [REG+REG], [REG+const], [const+const]
	if idx := splitTopLevel(expr, '+'); idx >= 0 {
		lhs := strings.TrimSpace(expr[:idx])
		rhs := strings.TrimSpace(expr[idx+1:])
		if lReg, ok := reg32Names[strings.ToUpper(lhs)]; ok {
			if rReg, ok := reg32Names[strings.ToUpper(rhs)]; ok {
				return Operand{Kind: OperandMemory, MemBase: lReg, MemIndex: rReg, Raw: tok}, nil
			}
			c, err := parseIntLiteral(rhs)
			if err != nil {
				return Operand{}, err
			}
			return Operand{Kind: OperandMemory, MemBase: lReg, MemIndex: -1, MemOff: int32(c), Raw: tok}, nil
		}
		// both sides constant: an absolute address written as a sum
		l, err := parseIntLiteral(lhs)
		if err != nil {
			return Operand{}, err
		}
		r, err := parseIntLiteral(rhs)
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: OperandMemory, MemBase: -1, MemIndex: -1, MemOff: int32(l + r), Raw: tok}, nil
	}

	// [REG-const], [const-const]
	if idx := splitTopLevel(expr, '-'); idx > 0 {
		lhs := strings.TrimSpace(expr[:idx])
		rhs := strings.TrimSpace(expr[idx+1:])
		if lReg, ok := reg32Names[strings.ToUpper(lhs)]; ok {
			c, err := parseIntLiteral(rhs)
			if err != nil {
				return Operand{}, err
			}
			return Operand{Kind: OperandMemory, MemBase: lReg, MemIndex: -1, MemOff: -int32(c), Raw: tok}, nil
		}
		l, err := parseIntLiteral(lhs)
		if err != nil {
			return Operand{}, err
		}
		r, err := parseIntLiteral(rhs)
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: OperandMemory, MemBase: -1, MemIndex: -1, MemOff: int32(l - r), Raw: tok}, nil
	}

	// [REG]
	if reg, ok := reg32Names[strings.ToUpper(expr)]; ok {
		return Operand{Kind: OperandMemory, MemBase: reg, MemIndex: -1, Raw: tok}, nil
	}

	// [k] - absolute address
	c, err := parseIntLiteral(expr)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: OperandMemory, MemBase: -1, MemIndex: -1, MemOff: int32(c), Raw: tok}, nil
}

// splitTopLevel returns the index of the first occurrence of sep that is
// not part of a leading sign, or -1 if absent. This keeps "[-4]" from
// being mis-split on a unary minus at position 0.
func splitTopLevel(expr string, sep byte) int {
	for i := 1; i < len(expr); i++ {
		if expr[i] == sep {
			return i
		}
	}
	return -1
}

// parseIntLiteral accepts decimal, 0x/0X hex, and 0b/0B binary literals.
func parseIntLiteral(tok string) (uint32, error) {
	neg := false
	t := tok
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}

	var v uint64
	var err error
	switch {
	case strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X"):
		v, err = strconv.ParseUint(t[2:], 16, 64)
		if err != nil {
			return 0, &assembler.Error{Sub: assembler.SubInvalidHex, Message: "invalid hex literal: " + tok}
		}
	case strings.HasPrefix(t, "0b") || strings.HasPrefix(t, "0B"):
		v, err = strconv.ParseUint(t[2:], 2, 64)
		if err != nil {
			return 0, &assembler.Error{Sub: assembler.SubInvalidBinary, Message: "invalid binary literal: " + tok}
		}
	default:
		v, err = strconv.ParseUint(t, 10, 64)
		if err != nil {
			// allow signed decimals such as "-1" round-tripped through ParseInt
			sv, serr := strconv.ParseInt(t, 10, 64)
			if serr != nil {
				return 0, &assembler.Error{Sub: assembler.SubInvalidOperand, Message: "invalid operand: " + tok}
			}
			v = uint64(sv)
		}
	}

	result := uint32(v)
	if neg {
		result = uint32(-int64(v))
	}
	return result, nil
}
