package cpu

import "testing"

var undefinedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func TestInstructionSetShape(t *testing.T) {
	undefined := make(map[uint8]bool, len(undefinedOpcodes))
	for _, opcode := range undefinedOpcodes {
		undefined[opcode] = true
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instruction := InstructionSet.Lookup(opcode)
		if undefined[opcode] {
			if instruction != nil {
				t.Errorf("expected opcode 0x%02X to be undefined, got %q", opcode, instruction.Name())
			}
			continue
		}
		if instruction == nil {
			t.Errorf("expected opcode 0x%02X to be defined", opcode)
			continue
		}
		if instruction.Name() == "" {
			t.Errorf("expected opcode 0x%02X to be named", opcode)
		}
		if instruction.Length() < 1 || instruction.Length() > 3 {
			t.Errorf("opcode 0x%02X has implausible length %d", opcode, instruction.Length())
		}
		if instruction.Cycles() == 0 {
			t.Errorf("opcode 0x%02X has no cycle cost", opcode)
		}
	}
}

func TestInstructionSetCBShape(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instruction := InstructionSetCB.Lookup(opcode)
		if instruction == nil {
			t.Errorf("expected extended opcode 0x%02X to be defined", opcode)
			continue
		}
		if instruction.Length() != 2 {
			t.Errorf("extended opcode 0x%02X has length %d, expected 2", opcode, instruction.Length())
		}
		want := uint8(8)
		if opcode&0x07 == 0x06 {
			want = 16
		}
		if instruction.Cycles() != want {
			t.Errorf("extended opcode 0x%02X costs %d cycles, expected %d", opcode, instruction.Cycles(), want)
		}
	}
}

func TestInstructionNames(t *testing.T) {
	tests := []struct {
		opcode   uint8
		extended bool
		want     string
	}{
		{0x00, false, "NOP"},
		{0x01, false, "LD BC, 0x%04X"},
		{0x18, false, "JR 0x%02X"},
		{0x76, false, "HALT"},
		{0xCB, false, "PREFIX CB"},
		{0xC7, false, "RST 00H"},
		{0xFF, false, "RST 38H"},
		{0x06, true, "RLC (HL)"},
		{0x37, true, "SWAP A"},
		{0x40, true, "BIT 0, B"},
		{0xFE, true, "SET 7, (HL)"},
	}
	for _, tt := range tests {
		table := &InstructionSet
		if tt.extended {
			table = &InstructionSetCB
		}
		if got := table.Lookup(tt.opcode).Name(); got != tt.want {
			t.Errorf("opcode 0x%02X: expected name %q, got %q", tt.opcode, tt.want, got)
		}
	}
}

func TestConditionalInstructionsCarryExtraCycles(t *testing.T) {
	tests := []struct {
		opcode uint8
		extra  uint8
	}{
		{0x20, 4},  // JR NZ
		{0xC2, 4},  // JP NZ
		{0xC4, 12}, // CALL NZ
		{0xC0, 12}, // RET NZ
	}
	for _, tt := range tests {
		if got := InstructionSet.Lookup(tt.opcode).ExtraCycles(); got != tt.extra {
			t.Errorf("opcode 0x%02X: expected %d extra cycles, got %d", tt.opcode, tt.extra, got)
		}
	}

	if got := InstructionSet.Lookup(0xC3).ExtraCycles(); got != 0 {
		t.Errorf("expected no extra cycles on the unconditional jump, got %d", got)
	}
}
