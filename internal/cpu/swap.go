package cpu

// swap exchanges the high and low nibbles of the register.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(reg *ByteRegister) {
	reg.SwapNibbles()
	c.F.Set(reg.Value() == 0, false, false, false)
}
