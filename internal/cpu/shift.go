package cpu

// shiftLeftArithmetic shifts the register left by one bit; bit 0 fills
// with 0 and bit 7 moves into the carry flag.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7.
func (c *CPU) shiftLeftArithmetic(reg *ByteRegister) {
	carry := reg.Value() >> 7
	reg.ShiftLeft()
	c.F.Set(reg.Value() == 0, false, false, carry == 1)
}

// shiftRightArithmetic shifts the register right by one bit; bit 7 fills
// with 0 and bit 0 moves into the carry flag. The registers hold unsigned
// bytes, so no sign bit is extended and the behavior matches
// shiftRightLogical.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0.
func (c *CPU) shiftRightArithmetic(reg *ByteRegister) {
	carry := reg.Value() & 1
	reg.ShiftRightArithmetic()
	c.F.Set(reg.Value() == 0, false, false, carry == 1)
}

// shiftRightLogical shifts the register right by one bit; bit 7 fills with
// 0 and bit 0 moves into the carry flag.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0.
func (c *CPU) shiftRightLogical(reg *ByteRegister) {
	carry := reg.Value() & 1
	reg.ShiftRight()
	c.F.Set(reg.Value() == 0, false, false, carry == 1)
}
