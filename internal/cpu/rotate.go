package cpu

// rotateLeftCircular rotates the register left by one bit; bit 7 moves into
// both bit 0 and the carry flag.
//
//	RLC n / RLCA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7.
func (c *CPU) rotateLeftCircular(reg *ByteRegister) {
	value := reg.Value()
	carry := value >> 7
	reg.Set(uint32(value<<1 | carry))
	c.F.Set(reg.Value() == 0, false, false, carry == 1)
}

// rotateLeft rotates the register left by one bit through the carry flag:
// the old carry moves into bit 0 and bit 7 moves into the carry.
//
//	RL n / RLA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7.
func (c *CPU) rotateLeft(reg *ByteRegister) {
	value := reg.Value()
	var carryIn uint8
	if c.F.Carry {
		carryIn = 1
	}
	reg.Set(uint32(value<<1 | carryIn))
	c.F.Set(reg.Value() == 0, false, false, value>>7 == 1)
}

// rotateRightCircular rotates the register right by one bit; bit 0 moves
// into both bit 7 and the carry flag.
//
//	RRC n / RRCA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0.
func (c *CPU) rotateRightCircular(reg *ByteRegister) {
	value := reg.Value()
	carry := value & 1
	reg.Set(uint32(value>>1 | carry<<7))
	c.F.Set(reg.Value() == 0, false, false, carry == 1)
}

// rotateRight rotates the register right by one bit through the carry flag:
// the old carry moves into bit 7 and bit 0 moves into the carry.
//
//	RR n / RRA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0.
func (c *CPU) rotateRight(reg *ByteRegister) {
	value := reg.Value()
	var carryIn uint8
	if c.F.Carry {
		carryIn = 0x80
	}
	reg.Set(uint32(value>>1 | carryIn))
	c.F.Set(reg.Value() == 0, false, false, value&1 == 1)
}

func init() {
	DefineInstruction(0x07, "RLCA", 1, 4, func(c *CPU) { c.rotateLeftCircular(&c.A) })
	DefineInstruction(0x17, "RLA", 1, 4, func(c *CPU) { c.rotateLeft(&c.A) })
	DefineInstruction(0x0F, "RRCA", 1, 4, func(c *CPU) { c.rotateRightCircular(&c.A) })
	DefineInstruction(0x1F, "RRA", 1, 4, func(c *CPU) { c.rotateRight(&c.A) })
}
