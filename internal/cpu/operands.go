package cpu

// operand is one of the eight register slots the low three bits of an
// opcode select: B, C, D, E, H, L, the byte at (HL), and A, in that order.
// The (HL) slot reads and writes through the bus; the others resolve to a
// register in the register file.
type operand struct {
	name string
	get  func(*CPU) uint8
	set  func(*CPU, uint8)
	// apply runs a mutating register operation against the slot. For the
	// (HL) slot the byte is staged in a scratch register and written back
	// afterwards.
	apply func(*CPU, func(*ByteRegister))
	// inspect runs a read-only register operation against the slot;
	// nothing is written back.
	inspect func(*CPU, func(*ByteRegister))
}

func registerOperand(name string, reg func(*CPU) *ByteRegister) operand {
	apply := func(c *CPU, fn func(*ByteRegister)) {
		fn(reg(c))
	}
	return operand{
		name:    name,
		get:     func(c *CPU) uint8 { return reg(c).Value() },
		set:     func(c *CPU, value uint8) { reg(c).Set(uint32(value)) },
		apply:   apply,
		inspect: apply,
	}
}

var operands = [8]operand{
	registerOperand("B", func(c *CPU) *ByteRegister { return &c.B }),
	registerOperand("C", func(c *CPU) *ByteRegister { return &c.C }),
	registerOperand("D", func(c *CPU) *ByteRegister { return &c.D }),
	registerOperand("E", func(c *CPU) *ByteRegister { return &c.E }),
	registerOperand("H", func(c *CPU) *ByteRegister { return &c.H }),
	registerOperand("L", func(c *CPU) *ByteRegister { return &c.L }),
	{
		name:    "(HL)",
		get:     func(c *CPU) uint8 { return c.readByte(c.HL()) },
		set:     func(c *CPU, value uint8) { c.writeByte(c.HL(), value) },
		apply:   (*CPU).applyHL,
		inspect: (*CPU).inspectHL,
	},
	registerOperand("A", func(c *CPU) *ByteRegister { return &c.A }),
}

// operandCycles returns the cycle cost of a register-slot instruction: the
// (HL) slot pays for the bus access.
func operandCycles(slot int, register, memory uint8) uint8 {
	if slot == 6 {
		return memory
	}
	return register
}
