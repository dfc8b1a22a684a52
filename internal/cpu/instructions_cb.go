package cpu

import "fmt"

// The extended table is regular enough to generate: the high bits of the
// opcode select the operation and the low three bits select the register
// slot. Every (HL) form pays the memory cost of 16 cycles, the register
// forms 8.

func cbCycles(slot int) uint8 {
	return operandCycles(slot, 8, 16)
}

func init() {
	shifted := []struct {
		name string
		fn   func(*CPU, *ByteRegister)
	}{
		{"RLC", (*CPU).rotateLeftCircular},
		{"RRC", (*CPU).rotateRightCircular},
		{"RL", (*CPU).rotateLeft},
		{"RR", (*CPU).rotateRight},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}
	for i, op := range shifted {
		for j, slot := range operands {
			op, slot := op, slot
			opcode := uint8(i*8 + j)
			DefineInstructionCB(opcode, fmt.Sprintf("%s %s", op.name, slot.name), cbCycles(j), func(c *CPU) {
				slot.apply(c, func(reg *ByteRegister) { op.fn(c, reg) })
			})
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for j, slot := range operands {
			bit, slot := bit, slot
			// BIT only observes the byte, so the (HL) form skips the
			// write-back
			DefineInstructionCB(0x40+bit*8+uint8(j), fmt.Sprintf("BIT %d, %s", bit, slot.name), cbCycles(j), func(c *CPU) {
				slot.inspect(c, func(reg *ByteRegister) { c.testBit(reg, bit) })
			})
			DefineInstructionCB(0x80+bit*8+uint8(j), fmt.Sprintf("RES %d, %s", bit, slot.name), cbCycles(j), func(c *CPU) {
				slot.apply(c, func(reg *ByteRegister) { c.resetBit(reg, bit) })
			})
			DefineInstructionCB(0xC0+bit*8+uint8(j), fmt.Sprintf("SET %d, %s", bit, slot.name), cbCycles(j), func(c *CPU) {
				slot.apply(c, func(reg *ByteRegister) { c.setBit(reg, bit) })
			})
		}
	}
}
