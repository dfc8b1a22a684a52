package cpu

import "testing"

func TestShiftLeftArithmetic(t *testing.T) {
	c := testCPU()
	c.B.Set(0x80)
	c.shiftLeftArithmetic(&c.B)
	if c.B.Value() != 0x00 || !c.F.Zero || !c.F.Carry {
		t.Errorf("expected zero with carry, got 0x%02X Z=%v C=%v", c.B.Value(), c.F.Zero, c.F.Carry)
	}
}

func TestShiftLeftEightTimesClearsRegister(t *testing.T) {
	c := testCPU()
	c.B.Set(0xFF)
	for i := 0; i < 8; i++ {
		c.shiftLeftArithmetic(&c.B)
	}
	if c.B.Value() != 0x00 {
		t.Errorf("expected 0x00 after eight shifts, got 0x%02X", c.B.Value())
	}
	if !c.F.Zero || !c.F.Carry {
		t.Errorf("expected Z and C set, got Z=%v C=%v", c.F.Zero, c.F.Carry)
	}
}

func TestShiftRightLogical(t *testing.T) {
	c := testCPU()
	c.B.Set(0x81)
	c.shiftRightLogical(&c.B)
	if c.B.Value() != 0x40 || !c.F.Carry {
		t.Errorf("expected 0x40 with carry, got 0x%02X C=%v", c.B.Value(), c.F.Carry)
	}
}

func TestShiftRightArithmeticMatchesLogical(t *testing.T) {
	for _, value := range []uint8{0x00, 0x01, 0x80, 0x81, 0xFF} {
		c := testCPU()
		c.B.Set(uint32(value))
		c.C.Set(uint32(value))
		c.shiftRightArithmetic(&c.B)
		bFlags := c.F.Value()
		c.shiftRightLogical(&c.C)
		if c.B.Value() != c.C.Value() || bFlags != c.F.Value() {
			t.Errorf("value 0x%02X: SRA gave 0x%02X, SRL gave 0x%02X", value, c.B.Value(), c.C.Value())
		}
	}
}

func TestSwap(t *testing.T) {
	c := testCPU()
	c.B.Set(0x12)
	c.F.Carry = true
	c.swap(&c.B)
	if c.B.Value() != 0x21 {
		t.Errorf("expected 0x21, got 0x%02X", c.B.Value())
	}
	if c.F.Carry {
		t.Error("expected carry flag reset by SWAP")
	}

	c.B.Set(0x00)
	c.swap(&c.B)
	if !c.F.Zero {
		t.Error("expected zero flag set")
	}
}
