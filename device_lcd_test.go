// device_lcd_test.go - framebuffer addressing and change-event tests

package main

import "testing"

func TestLcd_WritePublishesChangeEvent(t *testing.T) {
	mem := NewMemory(16, 16)
	ch := make(chan LcdChangedEvent, 1)
	mem.LCD.Subscribe(ch)

	mem.WriteMemory32(lcdBase+17, 1) // pixel (1, 1) on a 16-wide display

	select {
	case ev := <-ch:
		if ev.Offset != 17 || ev.Value != 1 {
			t.Fatalf("unexpected change event %+v", ev)
		}
	default:
		t.Fatal("expected a change event for an in-range pixel write")
	}
	if mem.LCD.Pixel(1, 1) != 1 {
		t.Fatal("expected pixel (1,1) lit")
	}
}

func TestLcd_ReadsReturnZero(t *testing.T) {
	mem := NewMemory(16, 16)
	mem.WriteMemory32(lcdBase, 1)
	v, err := mem.ReadMemory32(lcdBase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected the LCD region to be write-only (reads 0), got %d", v)
	}
}

func TestLcd_NonDefaultDimensionsClaimWiderWindow(t *testing.T) {
	mem := NewMemory(64, 48)
	last := uint32(lcdBase + 64*48 - 1)
	mem.WriteMemory32(last, 1)
	if mem.LCD.Pixel(63, 47) != 1 {
		t.Fatal("expected the last pixel of a 64x48 display to light")
	}

	// one past the framebuffer is plain RAM again
	mem.WriteMemory32(last+1, 0xAB)
	if v, _ := mem.ReadMemory32(last + 1); v != 0xAB {
		t.Fatalf("expected RAM behavior past the framebuffer, got %d", v)
	}
}
