package cpu

import "github.com/mrhappyasthma/GameboyEmulator/internal/types"

// Flags is the flags register. The four condition bits live in the high
// nibble of the packed byte value; the low nibble always reads as zero.
type Flags struct {
	// Zero is set when the result of an operation is zero.
	Zero bool
	// Subtract is set when the last operation was a subtraction.
	Subtract bool
	// HalfCarry is set when the last operation carried out of the low
	// nibble (8-bit) or low byte nibble boundary (16-bit).
	HalfCarry bool
	// Carry is set when the last operation carried out of the register
	// width.
	Carry bool
}

// Value packs the flags into their byte encoding: Z at bit 7, N at bit 6,
// H at bit 5, C at bit 4.
func (f *Flags) Value() uint8 {
	var v uint8
	if f.Zero {
		v |= types.Bit7
	}
	if f.Subtract {
		v |= types.Bit6
	}
	if f.HalfCarry {
		v |= types.Bit5
	}
	if f.Carry {
		v |= types.Bit4
	}
	return v
}

// SetValue unpacks the byte encoding into the four flags. The low nibble
// is ignored.
func (f *Flags) SetValue(v uint8) {
	f.Zero = v&types.Bit7 != 0
	f.Subtract = v&types.Bit6 != 0
	f.HalfCarry = v&types.Bit5 != 0
	f.Carry = v&types.Bit4 != 0
}

// Set assigns all four flags at once.
func (f *Flags) Set(zero, subtract, halfCarry, carry bool) {
	f.Zero = zero
	f.Subtract = subtract
	f.HalfCarry = halfCarry
	f.Carry = carry
}

// Reset clears all four flags.
func (f *Flags) Reset() {
	f.Set(false, false, false, false)
}
