// device_audio_test.go - audio device staging and play-edge tests

package main

import "testing"

func TestAudio_PlayEdgePublishesStagedSettings(t *testing.T) {
	mem := NewMemory(16, 16)
	ch := make(chan AudioPlayEvent, 1)
	mem.Aud.Subscribe(ch)

	// stage 440 Hz, 500 ms, sine, volume 128, then fire the play edge
	mem.WriteMemory32(audioWave, 1)
	mem.WriteMemory32(audioFreqLo, 0xB8)
	mem.WriteMemory32(audioFreqHi, 0x01)
	mem.WriteMemory32(audioDurLo, 0xF4)
	mem.WriteMemory32(audioDurHi, 0x01)
	mem.WriteMemory32(audioVolume, 128)
	mem.WriteMemory32(audioCtrl, 1)

	select {
	case ev := <-ch:
		if ev.FreqHz != 440 {
			t.Errorf("expected 440 Hz, got %d", ev.FreqHz)
		}
		if ev.DurationMs != 500 {
			t.Errorf("expected 500 ms, got %d", ev.DurationMs)
		}
		if ev.Wave != WaveSine {
			t.Errorf("expected sine wave, got %v", ev.Wave)
		}
		if ev.Volume != 128 {
			t.Errorf("expected volume 128, got %d", ev.Volume)
		}
	default:
		t.Fatal("expected a play event after writing 1 to the control register")
	}
}

func TestAudio_NonOneControlWriteDoesNotPlay(t *testing.T) {
	mem := NewMemory(16, 16)
	ch := make(chan AudioPlayEvent, 1)
	mem.Aud.Subscribe(ch)

	mem.WriteMemory32(audioCtrl, 0)
	mem.WriteMemory32(audioCtrl, 2)

	select {
	case <-ch:
		t.Fatal("expected no play event for control writes other than 1")
	default:
	}
}

func TestAudio_ProgramDrivenTone(t *testing.T) {
	src := "MOV [0x10201], 0\n" + // square wave
		"MOV [0x10202], 0xB8\nMOV [0x10203], 0x01\n" +
		"MOV [0x10204], 0xE8\nMOV [0x10205], 0x03\n" + // 1000 ms
		"MOV [0x10206], 255\n" +
		"MOV [0x10200], 1\n" +
		"HLT\n"
	cpu := NewCPU(16, 16, Educational)
	ch := make(chan AudioPlayEvent, 1)
	cpu.Mem.Aud.Subscribe(ch)
	cpu.Load(mustAssemble(t, src))
	runToHalt(t, cpu)

	select {
	case ev := <-ch:
		if ev.FreqHz != 440 || ev.DurationMs != 1000 || ev.Wave != WaveSquare || ev.Volume != 255 {
			t.Fatalf("unexpected play event %+v", ev)
		}
	default:
		t.Fatal("expected the program's control write to fire a play event")
	}
}
