package cpu

import "fmt"

// and combines the value into the accumulator with a bitwise AND.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.A.Set(uint32(c.A.Value() & value))
	c.F.Set(c.A.Value() == 0, false, true, false)
}

// or combines the value into the accumulator with a bitwise OR.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.A.Set(uint32(c.A.Value() | value))
	c.F.Set(c.A.Value() == 0, false, false, false)
}

// xor combines the value into the accumulator with a bitwise XOR.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.A.Set(uint32(c.A.Value() ^ value))
	c.F.Set(c.A.Value() == 0, false, false, false)
}

func init() {
	for i, slot := range operands {
		slot := slot
		cycles := operandCycles(i, 4, 8)
		DefineInstruction(uint8(0xA0+i), fmt.Sprintf("AND %s", slot.name), 1, cycles, func(c *CPU) {
			c.and(slot.get(c))
		})
		DefineInstruction(uint8(0xA8+i), fmt.Sprintf("XOR %s", slot.name), 1, cycles, func(c *CPU) {
			c.xor(slot.get(c))
		})
		DefineInstruction(uint8(0xB0+i), fmt.Sprintf("OR %s", slot.name), 1, cycles, func(c *CPU) {
			c.or(slot.get(c))
		})
	}

	DefineInstruction(0xE6, "AND 0x%02X", 2, 8, func(c *CPU) { c.and(c.readOperand()) })
	DefineInstruction(0xEE, "XOR 0x%02X", 2, 8, func(c *CPU) { c.xor(c.readOperand()) })
	DefineInstruction(0xF6, "OR 0x%02X", 2, 8, func(c *CPU) { c.or(c.readOperand()) })
}
