package cpu

import "fmt"

// loadRegister8 loads an immediate byte operand into the register.
//
//	LD r, d8
func (c *CPU) loadRegister8(reg *ByteRegister) {
	reg.Set(uint32(c.readOperand()))
}

func init() {
	// the LD r, r block; 0x76 is HALT, not LD (HL), (HL)
	for dst, dstSlot := range operands {
		for src, srcSlot := range operands {
			if dst == 6 && src == 6 {
				continue
			}
			dstSlot, srcSlot := dstSlot, srcSlot
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			opcode := uint8(0x40 + dst*8 + src)
			DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", dstSlot.name, srcSlot.name), 1, cycles, func(c *CPU) {
				dstSlot.set(c, srcSlot.get(c))
			})
		}
	}

	DefineInstruction(0x06, "LD B, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.B) })
	DefineInstruction(0x0E, "LD C, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.C) })
	DefineInstruction(0x16, "LD D, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.D) })
	DefineInstruction(0x1E, "LD E, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.E) })
	DefineInstruction(0x26, "LD H, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.H) })
	DefineInstruction(0x2E, "LD L, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.L) })
	DefineInstruction(0x3E, "LD A, 0x%02X", 2, 8, func(c *CPU) { c.loadRegister8(&c.A) })
	DefineInstruction(0x36, "LD (HL), 0x%02X", 2, 12, func(c *CPU) {
		c.writeByte(c.HL(), c.readOperand())
	})

	DefineInstruction(0x01, "LD BC, 0x%04X", 3, 12, func(c *CPU) { c.SetBC(c.readOperandWord()) })
	DefineInstruction(0x11, "LD DE, 0x%04X", 3, 12, func(c *CPU) { c.SetDE(c.readOperandWord()) })
	DefineInstruction(0x21, "LD HL, 0x%04X", 3, 12, func(c *CPU) { c.SetHL(c.readOperandWord()) })
	DefineInstruction(0x31, "LD SP, 0x%04X", 3, 12, func(c *CPU) { c.SP.Set(uint32(c.readOperandWord())) })

	DefineInstruction(0x02, "LD (BC), A", 1, 8, func(c *CPU) { c.writeByte(c.BC(), c.A.Value()) })
	DefineInstruction(0x12, "LD (DE), A", 1, 8, func(c *CPU) { c.writeByte(c.DE(), c.A.Value()) })
	DefineInstruction(0x0A, "LD A, (BC)", 1, 8, func(c *CPU) { c.A.Set(uint32(c.readByte(c.BC()))) })
	DefineInstruction(0x1A, "LD A, (DE)", 1, 8, func(c *CPU) { c.A.Set(uint32(c.readByte(c.DE()))) })

	// the post-increment and post-decrement forms move HL after the access
	DefineInstruction(0x22, "LD (HL+), A", 1, 8, func(c *CPU) {
		c.writeByte(c.HL(), c.A.Value())
		c.SetHL(c.HL() + 1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", 1, 8, func(c *CPU) {
		c.A.Set(uint32(c.readByte(c.HL())))
		c.SetHL(c.HL() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", 1, 8, func(c *CPU) {
		c.writeByte(c.HL(), c.A.Value())
		c.SetHL(c.HL() - 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 1, 8, func(c *CPU) {
		c.A.Set(uint32(c.readByte(c.HL())))
		c.SetHL(c.HL() - 1)
	})

	DefineInstruction(0x08, "LD (0x%04X), SP", 3, 20, func(c *CPU) {
		c.mmu.WriteWord(c.readOperandWord(), c.SP.Value())
	})

	// high-RAM accesses address relative to 0xFF00
	DefineInstruction(0xE0, "LDH (0x%02X), A", 2, 12, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A.Value())
	})
	DefineInstruction(0xF0, "LDH A, (0x%02X)", 2, 12, func(c *CPU) {
		c.A.Set(uint32(c.readByte(0xFF00 + uint16(c.readOperand()))))
	})
	DefineInstruction(0xE2, "LD (C), A", 2, 8, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.C.Value()), c.A.Value())
	})
	DefineInstruction(0xF2, "LD A, (C)", 2, 8, func(c *CPU) {
		c.A.Set(uint32(c.readByte(0xFF00 + uint16(c.C.Value()))))
	})

	DefineInstruction(0xEA, "LD (0x%04X), A", 3, 16, func(c *CPU) {
		c.writeByte(c.readOperandWord(), c.A.Value())
	})
	DefineInstruction(0xFA, "LD A, (0x%04X)", 3, 16, func(c *CPU) {
		c.A.Set(uint32(c.readByte(c.readOperandWord())))
	})

	DefineInstruction(0xF8, "LD HL, SP + 0x%02X", 2, 12, func(c *CPU) {
		c.SetHL(c.addSPSigned())
	})
	DefineInstruction(0xF9, "LD SP, HL", 1, 8, func(c *CPU) { c.SP.Set(uint32(c.HL())) })

	DefineInstruction(0xC5, "PUSH BC", 1, 16, func(c *CPU) { c.pushStack(c.BC()) })
	DefineInstruction(0xD5, "PUSH DE", 1, 16, func(c *CPU) { c.pushStack(c.DE()) })
	DefineInstruction(0xE5, "PUSH HL", 1, 16, func(c *CPU) { c.pushStack(c.HL()) })
	DefineInstruction(0xF5, "PUSH AF", 1, 16, func(c *CPU) { c.pushStack(c.AF()) })
	DefineInstruction(0xC1, "POP BC", 1, 12, func(c *CPU) { c.SetBC(c.popStack()) })
	DefineInstruction(0xD1, "POP DE", 1, 12, func(c *CPU) { c.SetDE(c.popStack()) })
	DefineInstruction(0xE1, "POP HL", 1, 12, func(c *CPU) { c.SetHL(c.popStack()) })
	// the low nibble of the popped flags byte is dropped by SetAF
	DefineInstruction(0xF1, "POP AF", 1, 12, func(c *CPU) { c.SetAF(c.popStack()) })
}
