package cpu

import (
	"errors"
	"fmt"

	"github.com/mrhappyasthma/GameboyEmulator/pkg/utils"
)

// ErrInvalidBit is returned by the bit-indexed register operations when the
// requested bit is outside [0, 7]. The operation is a no-op in that case;
// callers report the condition and continue.
var ErrInvalidBit = errors.New("bit index out of range")

// register is the width-parameterized core shared by the 8-bit and 16-bit
// registers. It keeps the raw, unmasked result of the most recent write so
// that carry and half-carry can be derived from it before the value is
// observed through the mask.
type register struct {
	raw  uint32
	mask uint32
}

// Set stores the raw value. The externally observable value is the raw
// value under the register's width mask.
func (r *register) Set(value uint32) {
	r.raw = value
}

// Increment adds one to the register, wrapping at its width.
func (r *register) Increment() {
	r.raw++
}

// Decrement subtracts one from the register, wrapping at its width.
func (r *register) Decrement() {
	r.raw--
}

// Reset zeroes the register.
func (r *register) Reset() {
	r.raw = 0
}

// HasCarry reports whether the most recent arithmetic write overflowed the
// register's width. It inspects the raw, unmasked accumulator, so it must be
// consulted before the next write.
func (r *register) HasCarry() bool {
	carry := r.mask + 1
	return r.raw&carry == carry
}

// HasHalfCarry reports whether the most recent arithmetic write overflowed
// half the register's width.
func (r *register) HasHalfCarry() bool {
	half := (r.mask + 1) / 2
	return r.raw&r.mask&half == half
}

// masked returns the value under the width mask.
func (r *register) masked() uint32 {
	return r.raw & r.mask
}

// ByteRegister is an 8-bit register. On top of the shared width-masked
// behavior it supports the bit-indexed operations used by the extended
// instruction set.
type ByteRegister struct {
	register
}

func newByteRegister() ByteRegister {
	return ByteRegister{register{mask: 0xFF}}
}

// Value returns the register's externally observable 8-bit value.
func (r *ByteRegister) Value() uint8 {
	return uint8(r.masked())
}

// TestBit reports whether the given bit is set.
func (r *ByteRegister) TestBit(bit uint8) (bool, error) {
	if bit > 7 {
		return false, fmt.Errorf("%w: test bit %d", ErrInvalidBit, bit)
	}
	return utils.TestBit(r.Value(), bit), nil
}

// SetBit sets the given bit.
func (r *ByteRegister) SetBit(bit uint8) error {
	if bit > 7 {
		return fmt.Errorf("%w: set bit %d", ErrInvalidBit, bit)
	}
	r.raw = uint32(utils.SetBit(r.Value(), bit))
	return nil
}

// ClearBit clears the given bit.
func (r *ByteRegister) ClearBit(bit uint8) error {
	if bit > 7 {
		return fmt.Errorf("%w: clear bit %d", ErrInvalidBit, bit)
	}
	r.raw = uint32(utils.ClearBit(r.Value(), bit))
	return nil
}

// SwapNibbles exchanges the high and low 4-bit halves of the register.
func (r *ByteRegister) SwapNibbles() {
	v := r.Value()
	r.raw = uint32(v<<4 | v>>4)
}

// ShiftLeft shifts the register left by one bit; bit 0 fills with 0.
func (r *ByteRegister) ShiftLeft() {
	r.raw = uint32(r.Value() << 1)
}

// ShiftRight shifts the register right by one bit; bit 7 fills with 0.
func (r *ByteRegister) ShiftRight() {
	r.raw = uint32(r.Value() >> 1)
}

// ShiftRightArithmetic is identical to ShiftRight: the 8-bit registers hold
// unsigned byte values, so there is no sign to extend.
func (r *ByteRegister) ShiftRightArithmetic() {
	r.ShiftRight()
}

// WordRegister is a 16-bit register.
type WordRegister struct {
	register
}

func newWordRegister() WordRegister {
	return WordRegister{register{mask: 0xFFFF}}
}

// Value returns the register's externally observable 16-bit value.
func (r *WordRegister) Value() uint16 {
	return uint16(r.masked())
}

// Registers is the register file: seven 8-bit registers, the flags
// register, and the two 16-bit registers.
type Registers struct {
	A, B, C, D, E, H, L ByteRegister
	F                   Flags

	PC, SP WordRegister
}

// NewRegisters returns a zeroed register file.
func NewRegisters() *Registers {
	return &Registers{
		A:  newByteRegister(),
		B:  newByteRegister(),
		C:  newByteRegister(),
		D:  newByteRegister(),
		E:  newByteRegister(),
		H:  newByteRegister(),
		L:  newByteRegister(),
		PC: newWordRegister(),
		SP: newWordRegister(),
	}
}

// Reset zeroes every register and clears every flag.
func (r *Registers) Reset() {
	r.A.Reset()
	r.B.Reset()
	r.C.Reset()
	r.D.Reset()
	r.E.Reset()
	r.H.Reset()
	r.L.Reset()
	r.F.Reset()
	r.PC.Reset()
	r.SP.Reset()
}

// pair composes a 16-bit value from two 8-bit halves. The pair views below
// are derived: they have no storage of their own.
func pair(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// AF returns the combined A and flags registers as a 16-bit value.
func (r *Registers) AF() uint16 {
	return pair(r.A.Value(), r.F.Value())
}

// BC returns the combined B and C registers as a 16-bit value.
func (r *Registers) BC() uint16 {
	return pair(r.B.Value(), r.C.Value())
}

// DE returns the combined D and E registers as a 16-bit value.
func (r *Registers) DE() uint16 {
	return pair(r.D.Value(), r.E.Value())
}

// HL returns the combined H and L registers as a 16-bit value.
func (r *Registers) HL() uint16 {
	return pair(r.H.Value(), r.L.Value())
}

// SetAF writes the two halves of the value through to A and the flags
// register. The low nibble of the flags half is dropped.
func (r *Registers) SetAF(value uint16) {
	r.A.Set(uint32(value >> 8))
	r.F.SetValue(uint8(value))
}

// SetBC writes the two halves of the value through to B and C.
func (r *Registers) SetBC(value uint16) {
	r.B.Set(uint32(value >> 8))
	r.C.Set(uint32(value & 0xFF))
}

// SetDE writes the two halves of the value through to D and E.
func (r *Registers) SetDE(value uint16) {
	r.D.Set(uint32(value >> 8))
	r.E.Set(uint32(value & 0xFF))
}

// SetHL writes the two halves of the value through to H and L.
func (r *Registers) SetHL(value uint16) {
	r.H.Set(uint32(value >> 8))
	r.L.Set(uint32(value & 0xFF))
}
