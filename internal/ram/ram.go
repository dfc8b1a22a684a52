// Package ram provides the byte-addressable backing stores the bus maps
// its RAM regions onto.
package ram

// RAM is a power-of-two sized block of RAM. Addresses wrap at the block
// size, so a region mirrored at several bus addresses resolves to the same
// cells without translation.
type RAM struct {
	data []byte
	mask uint16
}

// New returns a zeroed block of the given size, which must be a power of
// two.
func New(size uint16) *RAM {
	return &RAM{
		data: make([]byte, size),
		mask: size - 1,
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address&r.mask]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address&r.mask] = value
}

// Reset zeroes the block.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}
