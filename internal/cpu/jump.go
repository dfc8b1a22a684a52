package cpu

import "fmt"

// jumpRelative reads a signed 8-bit offset and, if the condition holds,
// adds it to PC. The offset is consumed either way; PC already points past
// the instruction when the offset is applied.
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if !condition {
		return
	}
	c.branchTaken = true
	c.PC.Set(uint32(uint16(int32(c.PC.Value()) + int32(offset))))
}

// jumpAbsolute reads a 16-bit address and, if the condition holds, jumps
// to it.
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperandWord()
	if !condition {
		return
	}
	c.branchTaken = true
	c.PC.Set(uint32(address))
}

// call reads a 16-bit address and, if the condition holds, pushes the
// return address and jumps.
func (c *CPU) call(condition bool) {
	address := c.readOperandWord()
	if !condition {
		return
	}
	c.branchTaken = true
	c.pushStack(c.PC.Value())
	c.PC.Set(uint32(address))
}

// ret pops the return address off the stack if the condition holds.
func (c *CPU) ret(condition bool) {
	if !condition {
		return
	}
	c.branchTaken = true
	c.PC.Set(uint32(c.popStack()))
}

// rst pushes the return address and jumps to one of the fixed restart
// vectors in the bottom of the address space.
func (c *CPU) rst(vector uint16) {
	c.pushStack(c.PC.Value())
	c.PC.Set(uint32(vector))
}

func init() {
	DefineInstruction(0x18, "JR 0x%02X", 2, 12, func(c *CPU) { c.jumpRelative(true) })
	DefineBranchInstruction(0x20, "JR NZ, 0x%02X", 2, 8, 4, func(c *CPU) { c.jumpRelative(!c.F.Zero) })
	DefineBranchInstruction(0x28, "JR Z, 0x%02X", 2, 8, 4, func(c *CPU) { c.jumpRelative(c.F.Zero) })
	DefineBranchInstruction(0x30, "JR NC, 0x%02X", 2, 8, 4, func(c *CPU) { c.jumpRelative(!c.F.Carry) })
	DefineBranchInstruction(0x38, "JR C, 0x%02X", 2, 8, 4, func(c *CPU) { c.jumpRelative(c.F.Carry) })

	DefineInstruction(0xC3, "JP 0x%04X", 3, 16, func(c *CPU) { c.jumpAbsolute(true) })
	DefineBranchInstruction(0xC2, "JP NZ, 0x%04X", 3, 12, 4, func(c *CPU) { c.jumpAbsolute(!c.F.Zero) })
	DefineBranchInstruction(0xCA, "JP Z, 0x%04X", 3, 12, 4, func(c *CPU) { c.jumpAbsolute(c.F.Zero) })
	DefineBranchInstruction(0xD2, "JP NC, 0x%04X", 3, 12, 4, func(c *CPU) { c.jumpAbsolute(!c.F.Carry) })
	DefineBranchInstruction(0xDA, "JP C, 0x%04X", 3, 12, 4, func(c *CPU) { c.jumpAbsolute(c.F.Carry) })
	DefineInstruction(0xE9, "JP (HL)", 1, 4, func(c *CPU) { c.PC.Set(uint32(c.HL())) })

	DefineInstruction(0xCD, "CALL 0x%04X", 3, 24, func(c *CPU) { c.call(true) })
	DefineBranchInstruction(0xC4, "CALL NZ, 0x%04X", 3, 12, 12, func(c *CPU) { c.call(!c.F.Zero) })
	DefineBranchInstruction(0xCC, "CALL Z, 0x%04X", 3, 12, 12, func(c *CPU) { c.call(c.F.Zero) })
	DefineBranchInstruction(0xD4, "CALL NC, 0x%04X", 3, 12, 12, func(c *CPU) { c.call(!c.F.Carry) })
	DefineBranchInstruction(0xDC, "CALL C, 0x%04X", 3, 12, 12, func(c *CPU) { c.call(c.F.Carry) })

	DefineInstruction(0xC9, "RET", 1, 16, func(c *CPU) { c.ret(true) })
	DefineBranchInstruction(0xC0, "RET NZ", 1, 8, 12, func(c *CPU) { c.ret(!c.F.Zero) })
	DefineBranchInstruction(0xC8, "RET Z", 1, 8, 12, func(c *CPU) { c.ret(c.F.Zero) })
	DefineBranchInstruction(0xD0, "RET NC", 1, 8, 12, func(c *CPU) { c.ret(!c.F.Carry) })
	DefineBranchInstruction(0xD8, "RET C", 1, 8, 12, func(c *CPU) { c.ret(c.F.Carry) })
	DefineInstruction(0xD9, "RETI", 1, 16, func(c *CPU) {
		c.ret(true)
		c.setInterrupts(true)
	})

	for i := 0; i < 8; i++ {
		vector := uint16(i * 8)
		DefineInstruction(uint8(0xC7+i*8), fmt.Sprintf("RST %02XH", vector), 1, 16, func(c *CPU) {
			c.rst(vector)
		})
	}
}
