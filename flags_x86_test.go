// flags_x86_test.go - flag engine unit tests

package main

import "testing"

func TestComputeAddFlags_UnsignedWrapSetsCF(t *testing.T) {
	_, flags := computeAddFlags(0, 0xFFFFFFFF, 1)
	if flags&FlagCF == 0 {
		t.Fatal("expected CF set on unsigned wraparound")
	}
	if flags&FlagZF == 0 {
		t.Fatal("expected ZF set when result wraps to zero")
	}
}

func TestComputeAddFlags_SignedOverflowSetsOF(t *testing.T) {
	_, flags := computeAddFlags(0, 0x7FFFFFFF, 1)
	if flags&FlagOF == 0 {
		t.Fatal("expected OF set on signed overflow (MAX_INT32 + 1)")
	}
	if flags&FlagSF == 0 {
		t.Fatal("expected SF set: result is negative")
	}
}

func TestComputeSubFlags_BorrowSetsCF(t *testing.T) {
	_, flags := computeSubFlags(0, 1, 2)
	if flags&FlagCF == 0 {
		t.Fatal("expected CF set: 1 - 2 borrows")
	}
}

func TestComputeShift_SHL_CFFromVacatedBit(t *testing.T) {
	result, flags := computeShift(ShiftSHL, 0, 0x80000000, 1)
	if result != 0 {
		t.Fatalf("expected 0, got 0x%X", result)
	}
	if flags&FlagCF == 0 {
		t.Fatal("expected CF set: bit 31 shifted out")
	}
	if flags&FlagZF == 0 {
		t.Fatal("expected ZF set: result is zero")
	}
}

func TestComputeShift_ZeroCountLeavesFlagsUnchanged(t *testing.T) {
	result, flags := computeShift(ShiftSHL, FlagCF, 5, 0)
	if result != 5 {
		t.Fatalf("expected value unchanged, got %d", result)
	}
	if flags&FlagCF == 0 {
		t.Fatal("expected CF to remain set when shift count is zero")
	}
}

func TestComputeRotate_StrictModeLeavesZSUnchanged(t *testing.T) {
	_, flags := computeRotate(StrictX86, RotateROL, FlagZF, 1, 1)
	if flags&FlagZF == 0 {
		t.Fatal("expected ZF to be left as-is (still set) in StrictX86 mode")
	}
}

func TestComputeRotate_EducationalModeUpdatesZS(t *testing.T) {
	_, flags := computeRotate(Educational, RotateROL, FlagZF, 1, 1)
	if flags&FlagZF != 0 {
		t.Fatal("expected ZF cleared: rotate result is non-zero in Educational mode")
	}
}

func TestLahfSahfRoundTrip(t *testing.T) {
	flags := uint32(FlagZF | FlagCF | flagReservedBit1)
	ah := lahfByte(flags)
	restored := sahfFlags(0, ah)
	if restored&FlagZF == 0 || restored&FlagCF == 0 {
		t.Fatalf("expected ZF and CF preserved through LAHF/SAHF, got 0x%X", restored)
	}
}
