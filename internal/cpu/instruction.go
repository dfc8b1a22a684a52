package cpu

// Instruction describes a single opcode: its mnemonic (a format string when
// the instruction carries an immediate operand), its encoded length in
// bytes, its cycle cost, and the handler that executes it.
type Instruction struct {
	name string
	// length is the number of bytes the instruction occupies, including
	// the opcode itself (and the 0xCB prefix for extended instructions).
	length uint8
	// cycles is the base cost. For conditional control flow it is the cost
	// of the not-taken path.
	cycles uint8
	// extraCycles is the additional cost of the taken path of a
	// conditional instruction; zero for everything else.
	extraCycles uint8
	fn          func(*CPU)
}

// Name returns the instruction's mnemonic. Instructions with an immediate
// operand carry a format verb for it, e.g. "LD BC, 0x%04X".
func (i *Instruction) Name() string {
	return i.name
}

// Length returns the instruction's encoded length in bytes.
func (i *Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the instruction's base cycle cost.
func (i *Instruction) Cycles() uint8 {
	return i.cycles
}

// ExtraCycles returns the additional cycle cost of the taken path of a
// conditional instruction.
func (i *Instruction) ExtraCycles() uint8 {
	return i.extraCycles
}

// Table is a 256-entry opcode table. Undefined opcodes hold nil.
type Table [256]*Instruction

// Lookup returns the instruction for the opcode, or nil if the opcode is
// undefined.
func (t *Table) Lookup(opcode uint8) *Instruction {
	return t[opcode]
}

// InstructionSet is the primary opcode table. Eleven opcodes are undefined
// and stay nil; executing one is reported and skipped by the step loop.
var InstructionSet Table

// InstructionSetCB is the extended opcode table, reached through the 0xCB
// prefix. All 256 entries are defined.
var InstructionSetCB Table

// DefineInstruction registers an instruction in the primary table.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = &Instruction{
		name:   name,
		length: length,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineBranchInstruction registers a conditional control-flow instruction
// in the primary table: cycles is the not-taken cost and extraCycles the
// surcharge when the branch is taken.
func DefineBranchInstruction(opcode uint8, name string, length, cycles, extraCycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = &Instruction{
		name:        name,
		length:      length,
		cycles:      cycles,
		extraCycles: extraCycles,
		fn:          fn,
	}
}

// DefineInstructionCB registers an instruction in the extended table. Every
// extended instruction is two bytes long including the prefix.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = &Instruction{
		name:   name,
		length: 2,
		cycles: cycles,
		fn:     fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", 1, 4, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 1, 4, func(c *CPU) {
		c.halt()
	})
	DefineInstruction(0x27, "DAA", 1, 4, (*CPU).decimalAdjust)
	DefineInstruction(0x2F, "CPL", 1, 4, func(c *CPU) {
		c.A.Set(uint32(c.A.Value() ^ 0xFF))
		c.F.Subtract = true
		c.F.HalfCarry = true
	})
	DefineInstruction(0x37, "SCF", 1, 4, func(c *CPU) {
		c.F.Subtract = false
		c.F.HalfCarry = false
		c.F.Carry = true
	})
	DefineInstruction(0x3F, "CCF", 1, 4, func(c *CPU) {
		c.F.Subtract = false
		c.F.HalfCarry = false
		c.F.Carry = !c.F.Carry
	})
	DefineInstruction(0x76, "HALT", 1, 4, func(c *CPU) {
		c.halt()
	})

	// The step loop consumes the prefix itself and dispatches on the
	// following byte against the extended table; this entry exists so the
	// prefix still disassembles.
	DefineInstruction(0xCB, "PREFIX CB", 1, 4, func(c *CPU) {})

	DefineInstruction(0xF3, "DI", 1, 4, func(c *CPU) {
		c.setInterrupts(false)
	})
	DefineInstruction(0xFB, "EI", 1, 4, func(c *CPU) {
		c.setInterrupts(true)
	})
}

// decimalAdjust implements DAA: it corrects A into packed binary-coded
// decimal after an addition or subtraction.
func (c *CPU) decimalAdjust() {
	a := uint16(c.A.Value())
	if !c.F.Subtract {
		if c.F.HalfCarry || a&0x0F > 0x09 {
			a += 0x06
		}
		if c.F.Carry || a > 0x9F {
			a += 0x60
		}
	} else {
		if c.F.HalfCarry {
			a = (a - 0x06) & 0xFF
		}
		if c.F.Carry {
			a -= 0x60
		}
	}
	if a&0x100 == 0x100 {
		c.F.Carry = true
	}
	a &= 0xFF
	c.A.Set(uint32(a))
	c.F.Zero = a == 0
	c.F.HalfCarry = false
}
