// memory_x86.go - linear memory plus memory-mapped device regions
//
// All instruction-level reads and writes funnel through ReadMemory32/
// WriteMemory32, which route addresses claimed by a device (LCD, keyboard,
// audio) to that device and everything else to flat RAM. Handlers never
// touch the backing array or a device directly.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// memorySize is the number of addressable 32-bit cells. Each address names
// one cell directly: ReadMemory32/WriteMemory32 operate on a single 32-bit
// cell per address, so pixel offsets and consecutive device registers can
// sit at consecutive addresses without colliding.
const memorySize = 1 << 20

const (
	lcdBase = 0xF000
	lcdEnd  = 0xFFFF

	// kbdBaseDefault is the canonical keyboard base; kbdBaseLegacy is the
	// older mapping some example programs still use (selectable via
	// Memory.SetKeyboardBase).
	kbdBaseDefault = 0x10100
	kbdBaseLegacy  = 0xF100

	kbdOffStatus = 0
	kbdOffCode   = 1
	kbdOffState  = 2

	audioBase = 0x10200
	audioEnd  = 0x10206
)

// ioDevice is the small object-capability interface memory-mapped devices
// implement. Reads and writes are always in terms of a single 32-bit cell;
// 8-bit accesses for string ops take the low byte of that cell.
type ioDevice interface {
	ReadCell(addr uint32) (uint32, error)
	WriteCell(addr uint32, v uint32) error
}

var (
	_ ioDevice = (*LCDDevice)(nil)
	_ ioDevice = (*KeyboardDevice)(nil)
	_ ioDevice = (*AudioDevice)(nil)
)

// Memory is the byte-addressable linear space plus its attached devices.
type Memory struct {
	cells [memorySize]uint32

	LCD *LCDDevice
	Kbd *KeyboardDevice
	Aud *AudioDevice

	kbdBase uint32
}

// NewMemory creates a zeroed memory space with an LCD of the given
// dimensions and fresh keyboard/audio devices attached.
func NewMemory(lcdWidth, lcdHeight int) *Memory {
	m := &Memory{kbdBase: kbdBaseDefault}
	m.LCD = NewLCDDevice(lcdWidth, lcdHeight)
	m.Kbd = NewKeyboardDevice()
	m.Aud = NewAudioDevice()
	return m
}

// SetKeyboardBase switches the keyboard registers between the canonical
// 0x10100 mapping and the legacy 0xF100 one, for older example programs.
func (m *Memory) SetKeyboardBase(legacy bool) {
	if legacy {
		m.kbdBase = kbdBaseLegacy
	} else {
		m.kbdBase = kbdBaseDefault
	}
}

// Reset clears RAM and all attached devices. The keyboard base survives a
// reset: it is launch configuration, not machine state.
func (m *Memory) Reset() {
	for i := range m.cells {
		m.cells[i] = 0
	}
	m.LCD.Reset()
	m.Kbd.Reset()
	m.Aud.Reset()
}

// lcdClaims reports whether addr is backed by the LCD framebuffer. The LCD
// window is 0xF000..0xFFFF, but only width*height pixel addresses within it
// are live: the remainder of the window is ordinary RAM. ESP starts at
// 0xFFFF, so the data stack grows down through the unclaimed tail of the
// window and must keep behaving like RAM.
func (m *Memory) lcdClaims(addr uint32) bool {
	if addr < lcdBase || addr > lcdEnd {
		return false
	}
	return int(addr-lcdBase) < m.LCD.PixelCount()
}

func (m *Memory) kbdClaims(addr uint32) bool {
	return addr >= m.kbdBase && addr <= m.kbdBase+kbdOffState
}

// ReadMemory32 reads the 32-bit cell at addr, dispatching to a device when
// addr falls in a claimed region.
func (m *Memory) ReadMemory32(addr uint32) (uint32, error) {
	switch {
	case m.lcdClaims(addr):
		return m.LCD.ReadCell(addr)
	case m.kbdClaims(addr):
		return m.Kbd.ReadCell(addr - m.kbdBase)
	case addr >= audioBase && addr <= audioEnd:
		return m.Aud.ReadCell(addr)
	default:
		return m.cellAt(addr), nil
	}
}

// WriteMemory32 writes the 32-bit cell at addr, dispatching to a device
// when addr falls in a claimed region. A write into the LCD window beyond
// the framebuffer lights no pixel: it lands in the RAM backing that
// address, like any other unclaimed cell.
func (m *Memory) WriteMemory32(addr uint32, v uint32) error {
	switch {
	case m.lcdClaims(addr):
		return m.LCD.WriteCell(addr, v)
	case m.kbdClaims(addr):
		return m.Kbd.WriteCell(addr-m.kbdBase, v)
	case addr >= audioBase && addr <= audioEnd:
		return m.Aud.WriteCell(addr, v)
	default:
		m.setCellAt(addr, v)
		return nil
	}
}

// isDeviceRegion reports whether addr is claimed by a memory-mapped
// device. WriteByte uses it to decide whether a byte store must be handed
// to the device whole rather than merged into the low byte of a RAM cell.
func (m *Memory) isDeviceRegion(addr uint32) bool {
	return m.lcdClaims(addr) || m.kbdClaims(addr) ||
		(addr >= audioBase && addr <= audioEnd)
}

func (m *Memory) cellIndex(addr uint32) int {
	return int(addr) % len(m.cells)
}

func (m *Memory) cellAt(addr uint32) uint32 {
	return m.cells[m.cellIndex(addr)]
}

func (m *Memory) setCellAt(addr uint32, v uint32) {
	m.cells[m.cellIndex(addr)] = v
}

// ReadByte returns the low byte of the cell at addr - used by the 8-bit
// string instructions (LODSB/STOSB/MOVSB/SCASB/CMPSB).
func (m *Memory) ReadByte(addr uint32) (byte, error) {
	v, err := m.ReadMemory32(addr)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

// WriteByte writes v into the low byte of the cell at addr, preserving the
// rest of the cell for plain RAM (device regions interpret the write on
// their own terms).
func (m *Memory) WriteByte(addr uint32, v byte) error {
	if m.isDeviceRegion(addr) {
		return m.WriteMemory32(addr, uint32(v))
	}
	cur := m.cellAt(addr)
	m.setCellAt(addr, (cur&0xFFFFFF00)|uint32(v))
	return nil
}
