// Package types holds the constants shared across the emulator: bit masks
// and the boundaries of the memory map.
package types

// Memory map boundaries. The bus decodes the 16-bit address space into the
// regions below; every address belongs to exactly one region.
const (
	// BIOSEnd is the first address past the BIOS overlay. While the
	// overlay is active, reads below this address are served from the
	// BIOS image instead of the cartridge.
	BIOSEnd = 0x0100

	// ROMEnd is the first address past the cartridge ROM space.
	ROMEnd = 0x8000

	// VRAMStart .. VRAMEnd is the graphics RAM region (8 KiB).
	VRAMStart = 0x8000
	VRAMEnd   = 0x9FFF

	// ERAMStart .. ERAMEnd is the external (cartridge) RAM region (8 KiB).
	ERAMStart = 0xA000
	ERAMEnd   = 0xBFFF

	// WRAMStart .. WRAMEnd is the working RAM region (8 KiB).
	WRAMStart = 0xC000
	WRAMEnd   = 0xDFFF

	// EchoStart .. EchoEnd mirrors the working RAM (minus the last 512
	// bytes); it has no storage of its own.
	EchoStart = 0xE000
	EchoEnd   = 0xFDFF

	// OAMStart .. OAMEnd is the sprite attribute table (160 bytes).
	OAMStart = 0xFE00
	OAMEnd   = 0xFE9F

	// UnusableStart .. UnusableEnd is the officially unusable region.
	UnusableStart = 0xFEA0
	UnusableEnd   = 0xFEFF

	// IOStart .. IOEnd is the memory-mapped I/O register space.
	IOStart = 0xFF00
	IOEnd   = 0xFF7F

	// ZeroPageStart is the bottom of the zero-page RAM (128 bytes,
	// running to the top of the address space).
	ZeroPageStart = 0xFF80
)

// Backing store sizes.
const (
	BIOSSize     = 0x100  // 256 bytes
	RAMSize      = 0x2000 // 8 KiB, used by both working and external RAM
	ZeroPageSize = 0x80   // 128 bytes
)
