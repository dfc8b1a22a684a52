package cpu

import "fmt"

// add adds the value (plus the carry flag, when withCarry) into the
// accumulator.
//
//	ADD A, n / ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value uint8, withCarry bool) {
	var carry uint32
	if withCarry && c.F.Carry {
		carry = 1
	}
	a := c.A.Value()
	c.A.Set(uint32(a) + uint32(value) + carry)
	c.F.Set(c.A.Value() == 0, false,
		uint16(a&0xF)+uint16(value&0xF)+uint16(carry) > 0xF,
		c.A.HasCarry())
}

// sub subtracts the value (plus the carry flag, when withCarry) from the
// accumulator.
//
//	SUB n / SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value uint8, withCarry bool) {
	var carry uint32
	if withCarry && c.F.Carry {
		carry = 1
	}
	a := c.A.Value()
	c.A.Set(uint32(a) - uint32(value) - carry)
	c.F.Set(c.A.Value() == 0, true,
		int16(a&0xF)-int16(value&0xF)-int16(carry) < 0,
		c.A.HasCarry())
}

// compare subtracts the value from the accumulator for the flags only; the
// accumulator keeps its value.
//
//	CP n
//
// Flags affected:
//
//	Z - Set if A equals n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A is less than n.
func (c *CPU) compare(value uint8) {
	a := c.A.Value()
	c.F.Set(a == value, true, a&0xF < value&0xF, a < value)
}

// increment adds one to the value.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 1
	c.F.Zero = incremented == 0
	c.F.Subtract = false
	c.F.HalfCarry = value&0xF == 0xF
	return incremented
}

// decrement subtracts one from the value.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 1
	c.F.Zero = decremented == 0
	c.F.Subtract = true
	c.F.HalfCarry = value&0xF == 0
	return decremented
}

// addHL adds a 16-bit value into HL.
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(value)
	c.F.Subtract = false
	c.F.HalfCarry = hl&0xFFF+value&0xFFF > 0xFFF
	c.F.Carry = sum > 0xFFFF
	c.SetHL(uint16(sum))
}

// addSPSigned reads a signed 8-bit operand, adds it to SP, and returns the
// result. The half-carry and carry flags come from bits 3 and 7 of the
// unsigned addition; zero and subtract are reset.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	sp := c.SP.Value()
	result := uint16(int32(sp) + int32(int8(value)))

	carry := sp ^ uint16(int8(value)) ^ result
	c.F.Set(false, false, carry&0x10 == 0x10, carry&0x100 == 0x100)
	return result
}

func init() {
	// INC r / DEC r
	for i, slot := range operands {
		slot := slot
		cycles := operandCycles(i, 4, 12)
		DefineInstruction(uint8(0x04+i*8), fmt.Sprintf("INC %s", slot.name), 1, cycles, func(c *CPU) {
			slot.set(c, c.increment(slot.get(c)))
		})
		DefineInstruction(uint8(0x05+i*8), fmt.Sprintf("DEC %s", slot.name), 1, cycles, func(c *CPU) {
			slot.set(c, c.decrement(slot.get(c)))
		})
	}

	// ADD / ADC / SUB / SBC / CP against the register slots
	for i, slot := range operands {
		slot := slot
		cycles := operandCycles(i, 4, 8)
		DefineInstruction(uint8(0x80+i), fmt.Sprintf("ADD A, %s", slot.name), 1, cycles, func(c *CPU) {
			c.add(slot.get(c), false)
		})
		DefineInstruction(uint8(0x88+i), fmt.Sprintf("ADC A, %s", slot.name), 1, cycles, func(c *CPU) {
			c.add(slot.get(c), true)
		})
		DefineInstruction(uint8(0x90+i), fmt.Sprintf("SUB %s", slot.name), 1, cycles, func(c *CPU) {
			c.sub(slot.get(c), false)
		})
		DefineInstruction(uint8(0x98+i), fmt.Sprintf("SBC A, %s", slot.name), 1, cycles, func(c *CPU) {
			c.sub(slot.get(c), true)
		})
		DefineInstruction(uint8(0xB8+i), fmt.Sprintf("CP %s", slot.name), 1, cycles, func(c *CPU) {
			c.compare(slot.get(c))
		})
	}

	DefineInstruction(0xC6, "ADD A, 0x%02X", 2, 8, func(c *CPU) { c.add(c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A, 0x%02X", 2, 8, func(c *CPU) { c.add(c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB 0x%02X", 2, 8, func(c *CPU) { c.sub(c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A, 0x%02X", 2, 8, func(c *CPU) { c.sub(c.readOperand(), true) })
	DefineInstruction(0xFE, "CP 0x%02X", 2, 8, func(c *CPU) { c.compare(c.readOperand()) })

	// 16-bit increments and decrements leave the flags alone
	DefineInstruction(0x03, "INC BC", 1, 8, func(c *CPU) { c.SetBC(c.BC() + 1) })
	DefineInstruction(0x13, "INC DE", 1, 8, func(c *CPU) { c.SetDE(c.DE() + 1) })
	DefineInstruction(0x23, "INC HL", 1, 8, func(c *CPU) { c.SetHL(c.HL() + 1) })
	DefineInstruction(0x33, "INC SP", 1, 8, func(c *CPU) { c.SP.Increment() })
	DefineInstruction(0x0B, "DEC BC", 1, 8, func(c *CPU) { c.SetBC(c.BC() - 1) })
	DefineInstruction(0x1B, "DEC DE", 1, 8, func(c *CPU) { c.SetDE(c.DE() - 1) })
	DefineInstruction(0x2B, "DEC HL", 1, 8, func(c *CPU) { c.SetHL(c.HL() - 1) })
	DefineInstruction(0x3B, "DEC SP", 1, 8, func(c *CPU) { c.SP.Decrement() })

	DefineInstruction(0x09, "ADD HL, BC", 1, 8, func(c *CPU) { c.addHL(c.BC()) })
	DefineInstruction(0x19, "ADD HL, DE", 1, 8, func(c *CPU) { c.addHL(c.DE()) })
	DefineInstruction(0x29, "ADD HL, HL", 1, 8, func(c *CPU) { c.addHL(c.HL()) })
	DefineInstruction(0x39, "ADD HL, SP", 1, 8, func(c *CPU) { c.addHL(c.SP.Value()) })

	DefineInstruction(0xE8, "ADD SP, 0x%02X", 2, 16, func(c *CPU) {
		c.SP.Set(uint32(c.addSPSigned()))
	})
}
