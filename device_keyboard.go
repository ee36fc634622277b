// device_keyboard.go - memory-mapped keyboard queue
//
// Three consecutive registers, addressed by offset from the configured
// base: +0 status (1 iff the queue is non-empty), +1 code (pops and
// returns the head key code), +2 state (1 pressed, 0 released, for the
// most recently popped key). Writes to the region are silently ignored.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// keyEvent is one queued key transition.
type keyEvent struct {
	Code    byte
	Pressed bool
}

// KeyboardDevice models a small FIFO of key transitions plus the last
// popped event's pressed/released state.
type KeyboardDevice struct {
	queue     []keyEvent
	lastState byte // state byte of the most recently popped key
}

// NewKeyboardDevice creates an empty keyboard device.
func NewKeyboardDevice() *KeyboardDevice {
	return &KeyboardDevice{}
}

// Reset clears the queue and cached state.
func (k *KeyboardDevice) Reset() {
	k.queue = nil
	k.lastState = 0
}

// EnqueueKey appends a key transition to the queue; called by the host
// front-end on real key events, never by simulator instructions.
func (k *KeyboardDevice) EnqueueKey(code byte, pressed bool) {
	k.queue = append(k.queue, keyEvent{Code: code, Pressed: pressed})
}

// ReadCell dispatches a register offset (0..2) relative to the keyboard
// base address.
func (k *KeyboardDevice) ReadCell(offset uint32) (uint32, error) {
	switch offset {
	case kbdOffStatus:
		if len(k.queue) > 0 {
			return 1, nil
		}
		return 0, nil
	case kbdOffCode:
		if len(k.queue) == 0 {
			return 0, nil
		}
		ev := k.queue[0]
		k.queue = k.queue[1:]
		if ev.Pressed {
			k.lastState = 1
		} else {
			k.lastState = 0
		}
		return uint32(ev.Code), nil
	case kbdOffState:
		return uint32(k.lastState), nil
	default:
		return 0, &IoError{Sub: SubUnknownIoRead, Addr: offset}
	}
}

// WriteCell silently ignores all writes to the keyboard region.
func (k *KeyboardDevice) WriteCell(offset uint32, v uint32) error {
	return nil
}
