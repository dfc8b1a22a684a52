package cpu

// testBit sets the zero flag from the complement of the given bit.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if the bit is 0.
//	N - Reset.
//	H - Reset.
//	C - Not affected.
func (c *CPU) testBit(reg *ByteRegister, bit uint8) {
	set, err := reg.TestBit(bit)
	if err != nil {
		c.log.Errorf("%v", err)
		return
	}
	c.F.Zero = !set
	c.F.Subtract = false
	c.F.HalfCarry = false
}

// setBit sets the given bit. No flags are affected.
//
//	SET b, n
func (c *CPU) setBit(reg *ByteRegister, bit uint8) {
	if err := reg.SetBit(bit); err != nil {
		c.log.Errorf("%v", err)
	}
}

// resetBit clears the given bit. No flags are affected.
//
//	RES b, n
func (c *CPU) resetBit(reg *ByteRegister, bit uint8) {
	if err := reg.ClearBit(bit); err != nil {
		c.log.Errorf("%v", err)
	}
}
