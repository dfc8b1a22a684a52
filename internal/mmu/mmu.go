// Package mmu provides the memory bus for the emulated machine. The bus
// resolves every 16-bit address to exactly one region: BIOS overlay,
// cartridge ROM, graphics RAM, external RAM, working RAM (and its echo),
// the sprite attribute table, the unusable region, memory-mapped I/O, or
// zero-page RAM.
package mmu

import (
	"github.com/mrhappyasthma/GameboyEmulator/internal/boot"
	"github.com/mrhappyasthma/GameboyEmulator/internal/cartridge"
	"github.com/mrhappyasthma/GameboyEmulator/internal/ram"
	"github.com/mrhappyasthma/GameboyEmulator/internal/types"
	"github.com/mrhappyasthma/GameboyEmulator/pkg/log"
)

// MMU is the memory bus. It owns the RAM backing stores and delegates ROM
// and BIOS reads to the cartridge and boot images.
type MMU struct {
	// 0x0000 - 0x7FFF, with the BIOS overlaid on the first 256 bytes
	// until the overlay is disabled
	bios *boot.ROM
	cart *cartridge.ROM

	// biosOverlay is the overlay latch. It starts active, transitions to
	// disabled exactly once (the first ROM-range read at or above
	// types.BIOSEnd), and is re-armed only by Reset.
	biosOverlay bool

	wram *ram.RAM // 0xC000 - 0xDFFF, echoed at 0xE000 - 0xFDFF
	eram *ram.RAM // 0xA000 - 0xBFFF
	zram *ram.RAM // 0xFF80 - 0xFFFF

	log log.Logger
}

// New returns an MMU serving ROM reads from the given cartridge. The BIOS
// overlay starts active; without a BIOS image the overlaid range reads as
// zeroes until the latch clears.
func New(cart *cartridge.ROM, l log.Logger) *MMU {
	if l == nil {
		l = log.New()
	}
	return &MMU{
		cart:        cart,
		biosOverlay: true,
		wram:        ram.New(types.RAMSize),
		eram:        ram.New(types.RAMSize),
		zram:        ram.New(types.ZeroPageSize),
		log:         l,
	}
}

// LoadBIOS installs a validated BIOS image into the overlay.
func (m *MMU) LoadBIOS(rom *boot.ROM) {
	m.bios = rom
}

// Reset zeroes every RAM store and re-arms the BIOS overlay. The cartridge
// and BIOS images are untouched.
func (m *MMU) Reset() {
	m.wram.Reset()
	m.eram.Reset()
	m.zram.Reset()
	m.biosOverlay = true
}

// BIOSOverlayActive reports whether reads below types.BIOSEnd are still
// served from the BIOS image.
func (m *MMU) BIOSOverlayActive() bool {
	return m.biosOverlay
}

// DisableBIOSOverlay performs the one-way latch transition that unmaps the
// BIOS and exposes the cartridge underneath. Only Reset re-arms it.
func (m *MMU) DisableBIOSOverlay() {
	if !m.biosOverlay {
		return
	}
	m.biosOverlay = false
	m.log.Debugf("bios overlay disabled")
}

// readROM serves the 0x0000 - 0x7FFF range, honouring the BIOS overlay.
func (m *MMU) readROM(address uint16) uint8 {
	if m.biosOverlay {
		if address < types.BIOSEnd {
			if m.bios != nil {
				return m.bios.Read(address)
			}
			return 0x00
		}
		// the first read past the BIOS unmaps the overlay for good
		m.DisableBIOSOverlay()
	}
	return m.cart.Read(address)
}

// ReadByte returns the value at the given address. Every address resolves
// to exactly one region; regions backed by excluded subsystems (graphics
// RAM, the sprite attribute table, I/O registers) read as 0.
func (m *MMU) ReadByte(address uint16) uint8 {
	switch address & 0xF000 {
	case 0x0000, 0x1000, 0x2000, 0x3000, 0x4000, 0x5000, 0x6000, 0x7000:
		return m.readROM(address)
	case 0x8000, 0x9000:
		// graphics RAM, pending the graphics subsystem
		return 0x00
	case 0xA000, 0xB000:
		return m.eram.Read(address)
	case 0xC000, 0xD000, 0xE000:
		return m.wram.Read(address)
	default: // 0xF000
		switch address & 0x0F00 {
		case 0x000, 0x100, 0x200, 0x300, 0x400, 0x500, 0x600,
			0x700, 0x800, 0x900, 0xA00, 0xB00, 0xC00, 0xD00:
			// remainder of the working RAM echo
			return m.wram.Read(address)
		case 0xE00:
			// sprite attribute table (no backing store yet) and the
			// unusable region above it
			return 0x00
		default: // 0xF00
			if address >= types.ZeroPageStart {
				return m.zram.Read(address)
			}
			// memory-mapped I/O, pending the peripheral subsystems
			return 0x00
		}
	}
}

// WriteByte writes the value to the given address. Writes to read-only or
// excluded regions are discarded.
func (m *MMU) WriteByte(address uint16, value uint8) {
	switch address & 0xF000 {
	case 0x0000, 0x1000, 0x2000, 0x3000, 0x4000, 0x5000, 0x6000, 0x7000:
		if m.biosOverlay && address < types.BIOSEnd {
			m.log.Debugf("rejected write to bios overlay at 0x%04X", address)
			return
		}
		// cartridge space is read-only
	case 0x8000, 0x9000:
		// graphics RAM, pending the graphics subsystem
	case 0xA000, 0xB000:
		m.eram.Write(address, value)
	case 0xC000, 0xD000, 0xE000:
		m.wram.Write(address, value)
	default: // 0xF000
		switch address & 0x0F00 {
		case 0x000, 0x100, 0x200, 0x300, 0x400, 0x500, 0x600,
			0x700, 0x800, 0x900, 0xA00, 0xB00, 0xC00, 0xD00:
			m.wram.Write(address, value)
		case 0xE00:
			// sprite attribute table and unusable region
		default: // 0xF00
			if address >= types.ZeroPageStart {
				m.zram.Write(address, value)
			}
			// memory-mapped I/O, pending the peripheral subsystems
		}
	}
}

// ReadWord returns the little-endian word at the given address.
func (m *MMU) ReadWord(address uint16) uint16 {
	return uint16(m.ReadByte(address)) | uint16(m.ReadByte(address+1))<<8
}

// WriteWord writes the word to the given address, low byte first.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.WriteByte(address, uint8(value&0xFF))
	m.WriteByte(address+1, uint8(value>>8))
}
