// instructions_x86_test.go - instruction-level laws and side effects

package main

import "testing"

func TestXorSelf_ZeroesAndSetsZF(t *testing.T) {
	src := "MOV EAX, 1234\nXOR EAX, EAX\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEAX] != 0 {
		t.Fatalf("expected EAX=0 after XOR EAX, EAX, got %d", cpu.Regs[RegEAX])
	}
	if !cpu.ZF() || cpu.SF() || cpu.CF() || cpu.OF() {
		t.Fatalf("expected ZF=1 SF=0 CF=0 OF=0, got flags 0x%X", cpu.FlagsWord())
	}
}

func TestNeg_CarrySemantics(t *testing.T) {
	src := "MOV EAX, 5\nNEG EAX\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEAX] != 0xFFFFFFFB {
		t.Fatalf("expected -5 mod 2^32, got 0x%X", cpu.Regs[RegEAX])
	}
	if !cpu.CF() {
		t.Fatal("expected CF=1 for NEG of a non-zero value")
	}

	src = "XOR EAX, EAX\nNEG EAX\nHLT\n"
	cpu = NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEAX] != 0 || cpu.CF() {
		t.Fatalf("expected NEG 0 to leave 0 with CF=0, got EAX=%d CF=%v", cpu.Regs[RegEAX], cpu.CF())
	}
}

func TestBswap_TwiceIsIdentity(t *testing.T) {
	src := "MOV EAX, 0x12345678\nBSWAP EAX\nMOV EBX, EAX\nBSWAP EAX\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEBX] != 0x78563412 {
		t.Fatalf("expected one BSWAP to give 0x78563412, got 0x%X", cpu.Regs[RegEBX])
	}
	if cpu.Regs[RegEAX] != 0x12345678 {
		t.Fatalf("expected BSWAP twice to restore 0x12345678, got 0x%X", cpu.Regs[RegEAX])
	}
}

func TestLahfSahf_RestoresFlagsAcrossClobber(t *testing.T) {
	// CMP EAX, EAX sets ZF and clears CF/SF; the second CMP (0 - 1) sets
	// CF and SF and clears ZF; SAHF must bring back the snapshot.
	src := "CMP EAX, EAX\nLAHF\nCMP EAX, 1\nSAHF\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if !cpu.ZF() || cpu.CF() || cpu.SF() {
		t.Fatalf("expected SAHF to restore ZF=1 CF=0 SF=0, got flags 0x%X", cpu.FlagsWord())
	}
}

func TestMovzxMovsx_ByteExtension(t *testing.T) {
	src := "MOV EAX, 0x80\nMOVZX EBX, AL\nMOVSX ECX, AL\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEBX] != 0x80 {
		t.Fatalf("expected MOVZX to zero-extend 0x80, got 0x%X", cpu.Regs[RegEBX])
	}
	if cpu.Regs[RegECX] != 0xFFFFFF80 {
		t.Fatalf("expected MOVSX to sign-extend 0x80, got 0x%X", cpu.Regs[RegECX])
	}
}

func TestXchg_8BitPair(t *testing.T) {
	src := "MOV EAX, 0x1122\nXCHG AL, AH\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEAX] != 0x2211 {
		t.Fatalf("expected AL/AH swapped to 0x2211, got 0x%X", cpu.Regs[RegEAX])
	}
}

func TestMovStrict_MemoryToMemoryFaults(t *testing.T) {
	src := "MOV [0x100], [0x200]\nHLT\n"
	prog := mustAssemble(t, src)

	strict := NewCPU(16, 16, StrictX86)
	strict.Load(prog)
	ev := strict.Step()
	if ev.Reason != StopException {
		t.Fatalf("expected a StrictViolation stop, got %v", ev.Reason)
	}
	if _, ok := ev.Err.(*StrictViolation); !ok {
		t.Fatalf("expected StrictViolation, got %T", ev.Err)
	}

	edu := NewCPU(16, 16, Educational)
	edu.Load(prog)
	if ev := edu.Step(); ev.Reason != StopStep {
		t.Fatalf("expected educational mode to allow memory-to-memory MOV, got %v", ev.Reason)
	}
}

func TestInt_ConsoleOutputVectors(t *testing.T) {
	src := ".data\nORG 0x400\nDB 'H', 'I', '$'\n.text\n" +
		"MOV AH, 0x0E\nMOV AL, 'X'\nINT 0x10\n" +
		"MOV AH, 0x02\nMOV DL, '!'\nINT 0x21\n" +
		"MOV AH, 0x09\nMOV EDX, 0x400\nINT 0x21\n" +
		"HLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if got := string(cpu.Console); got != "X!HI" {
		t.Fatalf("expected console output %q, got %q", "X!HI", got)
	}
}

func TestInt20_HaltsLikeHlt(t *testing.T) {
	src := "MOV EAX, 1\nINT 0x20\nMOV EAX, 2\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	ev := runToHalt(t, cpu)
	if ev.Reason != StopHalt {
		t.Fatalf("expected INT 0x20 to halt, got %v", ev.Reason)
	}
	if !cpu.Halted {
		t.Fatal("expected halted state after INT 0x20")
	}
	if cpu.Regs[RegEAX] != 1 {
		t.Fatalf("expected execution to stop at INT 0x20, got EAX=%d", cpu.Regs[RegEAX])
	}
}

func TestPushPop_RoundTripPreservesESP(t *testing.T) {
	src := "MOV EAX, 0xCAFE\nPUSH EAX\nPOP EBX\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	espBefore := cpu.Regs[RegESP]
	runToHalt(t, cpu)
	if cpu.Regs[RegEBX] != 0xCAFE {
		t.Fatalf("expected POP to read back the pushed value, got 0x%X", cpu.Regs[RegEBX])
	}
	if cpu.Regs[RegESP] != espBefore {
		t.Fatalf("expected ESP unchanged after PUSH/POP, got 0x%X", cpu.Regs[RegESP])
	}
}

func TestImul_ThreeOperandForm(t *testing.T) {
	src := "MOV EDX, 0xDEAD\nMOV EBX, 6\nIMUL EAX, EBX, 7\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if cpu.Regs[RegEAX] != 42 {
		t.Fatalf("expected EAX=42 from IMUL EAX, EBX, 7, got %d", cpu.Regs[RegEAX])
	}
	if cpu.Regs[RegEDX] != 0xDEAD {
		t.Fatalf("expected EDX untouched by the three-operand form, got 0x%X", cpu.Regs[RegEDX])
	}
}

func TestDiv_ByZeroYieldsZeroWithoutFaulting(t *testing.T) {
	src := "MOV EAX, 100\nXOR EBX, EBX\nDIV EBX\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	ev := runToHalt(t, cpu)
	if ev.Reason != StopHalt {
		t.Fatalf("expected a clean halt, got %v", ev.Reason)
	}
	if cpu.Regs[RegEAX] != 0 || cpu.Regs[RegEDX] != 0 {
		t.Fatalf("expected quotient and remainder zeroed on divide by zero, got EAX=%d EDX=%d", cpu.Regs[RegEAX], cpu.Regs[RegEDX])
	}
}

func TestScasb_ComparesAndAdvances(t *testing.T) {
	src := "MOV [0x500], 'Q'\nMOV AL, 'Q'\nMOV EDI, 0x500\nSCASB\nHLT\n"
	cpu := NewCPU(16, 16, Educational)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)
	if !cpu.ZF() {
		t.Fatal("expected ZF set: AL matches the byte at [EDI]")
	}
	if cpu.Regs[RegEDI] != 0x501 {
		t.Fatalf("expected EDI advanced to 0x501, got 0x%X", cpu.Regs[RegEDI])
	}
}
