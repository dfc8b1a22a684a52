// Package cartridge provides the flat ROM image mapped into the bottom half
// of the address space. No bank switching is modeled; the image is visible
// as-is and is read-only.
package cartridge

import (
	"strings"

	"github.com/cespare/xxhash"
)

// Header offsets for the title field (0x0134 - 0x0143).
const (
	titleStart = 0x0134
	titleEnd   = 0x0144
)

// ROM is a read-only cartridge image of arbitrary length.
type ROM struct {
	rom []byte
}

// NewROM returns a ROM wrapping the given image.
func NewROM(rom []byte) *ROM {
	return &ROM{rom: rom}
}

// Read returns the value at the given address. Reads past the end of the
// image return 0xFF (open bus).
func (r *ROM) Read(address uint16) uint8 {
	if int(address) >= len(r.rom) {
		return 0xFF
	}
	return r.rom[address]
}

// Write does nothing: cartridge space is read-only.
func (r *ROM) Write(address uint16, value uint8) {
	// do nothing
}

// Len returns the size of the image in bytes.
func (r *ROM) Len() int {
	return len(r.rom)
}

// Hash returns the xxhash digest of the image, used to identify the ROM in
// load diagnostics.
func (r *ROM) Hash() uint64 {
	return xxhash.Sum64(r.rom)
}

// Title returns the title from the cartridge header, or an empty string if
// the image is too small to carry one.
func (r *ROM) Title() string {
	if len(r.rom) < titleEnd {
		return ""
	}
	return strings.TrimRight(string(r.rom[titleStart:titleEnd]), "\x00")
}
