// assembler_test.go - two-pass assembler unit tests

package assembler

import "testing"

func testMnemonics() map[string]bool {
	return map[string]bool{
		"MOV": true, "ADD": true, "SUB": true, "CMP": true,
		"JMP": true, "JE": true, "JNE": true, "LOOP": true, "CALL": true, "RET": true,
		"PUSH": true, "POP": true, "HLT": true,
	}
}

func TestAssemble_BasicInstructionCount(t *testing.T) {
	src := "MOV EAX, 1\nADD EAX, 2\nHLT\n"
	prog, err := Assemble(src, testMnemonics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %d", len(prog.Instructions))
	}
}

func TestAssemble_UnknownMnemonic(t *testing.T) {
	_, err := Assemble("FROB EAX, 1\n", testMnemonics())
	if err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
	aerr, ok := err.(*Error)
	if !ok || aerr.Sub != SubUnknownMnemonic {
		t.Fatalf("expected SubUnknownMnemonic, got %v", err)
	}
}

func TestAssemble_LabelResolution(t *testing.T) {
	src := "top:\nMOV EAX, 1\nJMP top\n"
	prog, err := Assemble(src, testMnemonics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := prog.Labels["top"]
	if !ok || idx != 0 {
		t.Fatalf("expected label 'top' to resolve to instruction 0, got %d (ok=%v)", idx, ok)
	}
}

func TestAssemble_DuplicateLabel(t *testing.T) {
	src := "a:\nMOV EAX, 1\na:\nMOV EAX, 2\n"
	_, err := Assemble(src, testMnemonics())
	if err == nil {
		t.Fatal("expected a duplicate-label error")
	}
	aerr, ok := err.(*Error)
	if !ok || aerr.Sub != SubDuplicateLabel {
		t.Fatalf("expected SubDuplicateLabel, got %v", err)
	}
}

func TestAssemble_EquConstantSubstitution(t *testing.T) {
	src := "SIZE EQU 4\nMOV EAX, SIZE\n"
	prog, err := Assemble(src, testMnemonics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := prog.Instructions[0].Operands[1]; got != "0x4" {
		t.Fatalf("expected EQU substitution to yield 0x4, got %q", got)
	}
}

func TestAssemble_DataDirectiveBuildsInitialMemory(t *testing.T) {
	src := ".data\nORG 0x100\nDB 1, 2, 3\n.text\nHLT\n"
	prog, err := Assemble(src, testMnemonics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []byte{1, 2, 3} {
		if prog.InitialMemory[0x100+uint32(i)] != want {
			t.Fatalf("byte %d: expected %d, got %d", i, want, prog.InitialMemory[0x100+uint32(i)])
		}
	}
}

func TestAssemble_LineToIndexTracksBreakpointTargets(t *testing.T) {
	src := "MOV EAX, 1\nADD EAX, 2\n"
	prog, err := Assemble(src, testMnemonics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx, ok := prog.LineToIndex[2]; !ok || idx != 1 {
		t.Fatalf("expected line 2 to map to instruction 1, got %d (ok=%v)", idx, ok)
	}
}

func TestAssemble_CommaInsideMemoryOperandDoesNotSplit(t *testing.T) {
	src := "MOV EAX, [EBX,4]\n"
	prog, err := Assemble(src, testMnemonics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops := prog.Instructions[0].Operands
	if len(ops) != 2 || ops[1] != "[EBX,4]" {
		t.Fatalf("expected operands [EAX [EBX,4]], got %v", ops)
	}
}
