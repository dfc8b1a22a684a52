package cpu

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		a, value  uint8
		carryIn   bool
		withCarry bool
		want      uint8
		wantZ     bool
		wantH     bool
		wantC     bool
	}{
		{name: "plain", a: 0x05, value: 0x03, want: 0x08},
		{name: "half-carry", a: 0x0F, value: 0x01, want: 0x10, wantH: true},
		{name: "carry", a: 0xFF, value: 0x02, want: 0x01, wantH: true, wantC: true},
		{name: "wraps to zero", a: 0x80, value: 0x80, want: 0x00, wantZ: true, wantC: true},
		{name: "adc uses carry", a: 0x00, value: 0x00, carryIn: true, withCarry: true, want: 0x01},
		{name: "add ignores carry", a: 0x00, value: 0x00, carryIn: true, want: 0x00, wantZ: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCPU()
			c.A.Set(uint32(tt.a))
			c.F.Carry = tt.carryIn
			c.add(tt.value, tt.withCarry)
			if c.A.Value() != tt.want {
				t.Errorf("expected A 0x%02X, got 0x%02X", tt.want, c.A.Value())
			}
			if c.F.Zero != tt.wantZ || c.F.HalfCarry != tt.wantH || c.F.Carry != tt.wantC {
				t.Errorf("flags Z=%v H=%v C=%v, expected Z=%v H=%v C=%v",
					c.F.Zero, c.F.HalfCarry, c.F.Carry, tt.wantZ, tt.wantH, tt.wantC)
			}
			if c.F.Subtract {
				t.Error("expected subtract flag reset")
			}
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name      string
		a, value  uint8
		carryIn   bool
		withCarry bool
		want      uint8
		wantZ     bool
		wantH     bool
		wantC     bool
	}{
		{name: "plain", a: 0x08, value: 0x03, want: 0x05},
		{name: "to zero", a: 0x42, value: 0x42, want: 0x00, wantZ: true},
		{name: "borrow", a: 0x05, value: 0x06, want: 0xFF, wantH: true, wantC: true},
		{name: "half-borrow only", a: 0x10, value: 0x01, want: 0x0F, wantH: true},
		{name: "sbc uses carry", a: 0x05, value: 0x03, carryIn: true, withCarry: true, want: 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCPU()
			c.A.Set(uint32(tt.a))
			c.F.Carry = tt.carryIn
			c.sub(tt.value, tt.withCarry)
			if c.A.Value() != tt.want {
				t.Errorf("expected A 0x%02X, got 0x%02X", tt.want, c.A.Value())
			}
			if c.F.Zero != tt.wantZ || c.F.HalfCarry != tt.wantH || c.F.Carry != tt.wantC {
				t.Errorf("flags Z=%v H=%v C=%v, expected Z=%v H=%v C=%v",
					c.F.Zero, c.F.HalfCarry, c.F.Carry, tt.wantZ, tt.wantH, tt.wantC)
			}
			if !c.F.Subtract {
				t.Error("expected subtract flag set")
			}
		})
	}
}

func TestCompareLeavesAccumulator(t *testing.T) {
	c := testCPU()
	c.A.Set(0x42)
	c.compare(0x50)
	if c.A.Value() != 0x42 {
		t.Errorf("expected A untouched, got 0x%02X", c.A.Value())
	}
	if c.F.Zero || !c.F.Carry || !c.F.Subtract {
		t.Errorf("unexpected flags Z=%v C=%v N=%v", c.F.Zero, c.F.Carry, c.F.Subtract)
	}

	c.compare(0x42)
	if !c.F.Zero {
		t.Error("expected zero flag on equality")
	}
}

func TestIncrementDecrementFlags(t *testing.T) {
	c := testCPU()
	c.F.Carry = true

	if got := c.increment(0x0F); got != 0x10 || !c.F.HalfCarry {
		t.Errorf("expected 0x10 with half-carry, got 0x%02X H=%v", got, c.F.HalfCarry)
	}
	if got := c.increment(0xFF); got != 0x00 || !c.F.Zero {
		t.Errorf("expected wrap to zero, got 0x%02X Z=%v", got, c.F.Zero)
	}
	if !c.F.Carry {
		t.Error("expected carry flag untouched by INC")
	}

	if got := c.decrement(0x10); got != 0x0F || !c.F.HalfCarry {
		t.Errorf("expected 0x0F with half-borrow, got 0x%02X H=%v", got, c.F.HalfCarry)
	}
	if got := c.decrement(0x00); got != 0xFF {
		t.Errorf("expected wrap to 0xFF, got 0x%02X", got)
	}
	if !c.F.Carry {
		t.Error("expected carry flag untouched by DEC")
	}
}

func TestAddHL(t *testing.T) {
	c := testCPU()
	c.SetHL(0x0FFF)
	c.F.Zero = true
	c.addHL(0x0001)
	if c.HL() != 0x1000 {
		t.Errorf("expected HL 0x1000, got 0x%04X", c.HL())
	}
	if !c.F.HalfCarry {
		t.Error("expected half-carry from bit 11")
	}
	if !c.F.Zero {
		t.Error("expected zero flag untouched by ADD HL")
	}

	c.SetHL(0xFFFF)
	c.addHL(0x0002)
	if c.HL() != 0x0001 || !c.F.Carry {
		t.Errorf("expected wrap with carry, got HL=0x%04X C=%v", c.HL(), c.F.Carry)
	}
}

func TestDecimalAdjust(t *testing.T) {
	// 0x15 + 0x27 = 0x3C, adjusted to 0x42
	c := testCPU()
	c.A.Set(0x15)
	c.add(0x27, false)
	c.decimalAdjust()
	if c.A.Value() != 0x42 {
		t.Errorf("expected BCD 0x42, got 0x%02X", c.A.Value())
	}

	// 0x91 + 0x10 = 0xA1, adjusted to 0x01 with carry
	c = testCPU()
	c.A.Set(0x91)
	c.add(0x10, false)
	c.decimalAdjust()
	if c.A.Value() != 0x01 || !c.F.Carry {
		t.Errorf("expected 0x01 with carry, got 0x%02X C=%v", c.A.Value(), c.F.Carry)
	}

	// 0x42 - 0x13 = 0x2F, adjusted to 0x29
	c = testCPU()
	c.A.Set(0x42)
	c.sub(0x13, false)
	c.decimalAdjust()
	if c.A.Value() != 0x29 {
		t.Errorf("expected BCD 0x29, got 0x%02X", c.A.Value())
	}
}

func TestAddSPSigned(t *testing.T) {
	// ADD SP, +0x02
	c := testCPU(0xE8, 0x02)
	c.SP.Set(0xFFF8)
	c.Step()
	if c.SP.Value() != 0xFFFA {
		t.Errorf("expected SP 0xFFFA, got 0x%04X", c.SP.Value())
	}

	// ADD SP, -0x02
	c = testCPU(0xE8, 0xFE)
	c.SP.Set(0x0001)
	c.Step()
	if c.SP.Value() != 0xFFFF {
		t.Errorf("expected SP 0xFFFF, got 0x%04X", c.SP.Value())
	}
	if c.F.Zero || c.F.Subtract {
		t.Error("expected zero and subtract flags reset")
	}
}
