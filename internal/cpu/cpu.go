// Package cpu implements the 8-bit processor at the heart of the emulator:
// the register file, the two opcode tables, and the fetch-decode-execute
// loop that drives them.
package cpu

import (
	"github.com/mrhappyasthma/GameboyEmulator/internal/mmu"
	"github.com/mrhappyasthma/GameboyEmulator/pkg/log"
)

// CPU executes instructions against the register file and the memory bus.
type CPU struct {
	*Registers

	mmu *mmu.MMU
	log log.Logger

	// branchTaken is set by conditional control-flow instructions when
	// their condition holds, so the step loop can charge the extra cycles
	// of the taken path.
	branchTaken bool

	// ime is the master interrupt enable, toggled by DI, EI and RETI. No
	// interrupt sources are wired up yet, so it only records state.
	ime bool

	// halted is set by HALT and STOP. Execution still proceeds; the latch
	// records that the program requested a low-power state.
	halted bool

	// clock accumulates the cycles charged by executed instructions.
	clock uint64
}

// New returns a CPU wired to the given bus. A nil logger falls back to the
// default logger.
func New(bus *mmu.MMU, l log.Logger) *CPU {
	if l == nil {
		l = log.New()
	}
	return &CPU{
		Registers: NewRegisters(),
		mmu:       bus,
		log:       l,
	}
}

// Reset returns the register file and execution state to power-on values.
// The bus is not touched.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.branchTaken = false
	c.ime = false
	c.halted = false
	c.clock = 0
}

// Clock returns the number of cycles executed since the last reset.
func (c *CPU) Clock() uint64 {
	return c.clock
}

// Halted reports whether a HALT or STOP instruction has been executed.
func (c *CPU) Halted() bool {
	return c.halted
}

// InterruptsEnabled reports the state of the master interrupt enable.
func (c *CPU) InterruptsEnabled() bool {
	return c.ime
}

// Step fetches, decodes and executes a single instruction, returning the
// number of cycles it consumed. An undefined opcode is logged and skipped;
// execution resumes at the following byte.
func (c *CPU) Step() uint8 {
	fetchPC := c.PC.Value()
	opcode := c.readOperand()

	var instruction *Instruction
	if opcode == 0xCB {
		opcode = c.readOperand()
		instruction = InstructionSetCB.Lookup(opcode)
	} else {
		instruction = InstructionSet.Lookup(opcode)
	}

	if instruction == nil {
		c.log.Errorf("unknown opcode 0x%02X at 0x%04X", opcode, fetchPC)
		c.clock += 4
		return 4
	}

	c.branchTaken = false
	instruction.fn(c)

	cycles := instruction.Cycles()
	if c.branchTaken {
		cycles += instruction.ExtraCycles()
	}
	c.clock += uint64(cycles)
	return cycles
}

// readOperand reads the byte at PC and advances PC past it. Opcode fetch
// and operand fetch go through the same path.
func (c *CPU) readOperand() uint8 {
	value := c.mmu.ReadByte(c.PC.Value())
	c.PC.Increment()
	return value
}

// readOperandWord reads the little-endian word at PC and advances PC past
// both bytes.
func (c *CPU) readOperandWord() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) readByte(address uint16) uint8 {
	return c.mmu.ReadByte(address)
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.mmu.WriteByte(address, value)
}

// pushStack pushes a word onto the stack, high byte at the higher address.
func (c *CPU) pushStack(value uint16) {
	c.SP.Decrement()
	c.SP.Decrement()
	c.mmu.WriteWord(c.SP.Value(), value)
}

// popStack pops a word off the stack.
func (c *CPU) popStack() uint16 {
	value := c.mmu.ReadWord(c.SP.Value())
	c.SP.Increment()
	c.SP.Increment()
	return value
}

// applyHL runs a register operation against the byte at (HL): the byte is
// read into a scratch register, transformed, and written back.
func (c *CPU) applyHL(fn func(*ByteRegister)) {
	scratch := newByteRegister()
	scratch.Set(uint32(c.readByte(c.HL())))
	fn(&scratch)
	c.writeByte(c.HL(), scratch.Value())
}

// inspectHL runs a read-only register operation against the byte at (HL).
// Nothing is written back.
func (c *CPU) inspectHL(fn func(*ByteRegister)) {
	scratch := newByteRegister()
	scratch.Set(uint32(c.readByte(c.HL())))
	fn(&scratch)
}

// halt latches the low-power request made by HALT and STOP.
func (c *CPU) halt() {
	c.halted = true
}

// setInterrupts sets the master interrupt enable.
func (c *CPU) setInterrupts(enabled bool) {
	c.ime = enabled
}
