// Package boot provides the BIOS image that is overlaid on the bottom of
// the ROM address range when the machine powers on.
//
// The BIOS performs a series of tasks, such as initializing the hardware,
// setting the stack pointer and scrolling the logo. Once the program counter
// first advances past it, the bus unmaps the overlay and the cartridge
// becomes visible in its place.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/mrhappyasthma/GameboyEmulator/internal/types"
)

// ErrInvalidSize is returned when a BIOS image is not exactly 256 bytes.
// An image of the wrong size would corrupt the overlay, so loading fails
// before any emulation starts.
var ErrInvalidSize = fmt.Errorf("bios image must be %d bytes", types.BIOSSize)

// ROM is a validated 256-byte BIOS image.
type ROM struct {
	raw      [types.BIOSSize]byte
	checksum string // MD5 of the image, for load diagnostics
}

// Load validates the raw image and returns it as a ROM. The image must be
// exactly 256 bytes.
func Load(b []byte) (*ROM, error) {
	if len(b) != types.BIOSSize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, len(b))
	}

	r := &ROM{}
	copy(r.raw[:], b)

	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])

	return r, nil
}

// Read returns the byte at the given address. The address must be below
// types.BIOSSize; the bus guarantees this by construction.
func (r *ROM) Read(addr uint16) byte {
	return r.raw[addr]
}

// Checksum returns the MD5 checksum of the image.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}
