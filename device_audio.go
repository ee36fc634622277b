// device_audio.go - PC-speaker style audio device at 0x10200..0x10206
//
// Seven staged byte registers: control, wave shape, little-endian 16-bit
// frequency and duration, and volume. Writing 1 to the control register is
// the play edge: it publishes an AudioPlayEvent built from whatever is
// staged at that moment.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

const (
	audioCtrl   = 0x10200
	audioWave   = 0x10201
	audioFreqLo = 0x10202
	audioFreqHi = 0x10203
	audioDurLo  = 0x10204
	audioDurHi  = 0x10205
	audioVolume = 0x10206
)

// AudioWave identifies the oscillator shape.
type AudioWave int

const (
	WaveSquare AudioWave = 0
	WaveSine   AudioWave = 1
)

// AudioPlayEvent is published when a write of 1 to the control register
// triggers playback with the currently staged settings.
type AudioPlayEvent struct {
	FreqHz     uint16
	DurationMs uint16
	Wave       AudioWave
	Volume     byte
}

// AudioDevice holds the staged register values for a simple tone generator.
type AudioDevice struct {
	wave   byte
	freqLo byte
	freqHi byte
	durLo  byte
	durHi  byte
	volume byte

	listeners []chan<- AudioPlayEvent
}

// NewAudioDevice creates an audio device with all registers zeroed.
func NewAudioDevice() *AudioDevice {
	return &AudioDevice{}
}

// Reset clears all staged registers; it does not drop listeners.
func (a *AudioDevice) Reset() {
	a.wave, a.freqLo, a.freqHi, a.durLo, a.durHi, a.volume = 0, 0, 0, 0, 0, 0
}

// Subscribe registers a channel to receive AudioPlayEvent notifications.
func (a *AudioDevice) Subscribe(ch chan<- AudioPlayEvent) {
	a.listeners = append(a.listeners, ch)
}

// ReadCell returns the current staged value of a register; the control
// register always reads back 0 (it is an edge-triggered write port).
func (a *AudioDevice) ReadCell(addr uint32) (uint32, error) {
	switch addr {
	case audioCtrl:
		return 0, nil
	case audioWave:
		return uint32(a.wave), nil
	case audioFreqLo:
		return uint32(a.freqLo), nil
	case audioFreqHi:
		return uint32(a.freqHi), nil
	case audioDurLo:
		return uint32(a.durLo), nil
	case audioDurHi:
		return uint32(a.durHi), nil
	case audioVolume:
		return uint32(a.volume), nil
	default:
		return 0, &IoError{Sub: SubUnknownIoRead, Addr: addr}
	}
}

// WriteCell stages a register value; writing 1 to the control register
// fires a play event built from the currently staged settings.
func (a *AudioDevice) WriteCell(addr uint32, v uint32) error {
	switch addr {
	case audioCtrl:
		if v == 1 {
			a.publish(AudioPlayEvent{
				FreqHz:     uint16(a.freqLo) | uint16(a.freqHi)<<8,
				DurationMs: uint16(a.durLo) | uint16(a.durHi)<<8,
				Wave:       AudioWave(a.wave),
				Volume:     a.volume,
			})
		}
	case audioWave:
		a.wave = byte(v)
	case audioFreqLo:
		a.freqLo = byte(v)
	case audioFreqHi:
		a.freqHi = byte(v)
	case audioDurLo:
		a.durLo = byte(v)
	case audioDurHi:
		a.durHi = byte(v)
	case audioVolume:
		a.volume = byte(v)
	default:
		return &IoError{Sub: SubUnknownIoWrite, Addr: addr}
	}
	return nil
}

func (a *AudioDevice) publish(ev AudioPlayEvent) {
	for _, ch := range a.listeners {
		select {
		case ch <- ev:
		default:
		}
	}
}
