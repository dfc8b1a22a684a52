package cpu

import "testing"

func TestFlagsValuePacksHighNibble(t *testing.T) {
	tests := []struct {
		name                        string
		zero, subtract, half, carry bool
		want                        uint8
	}{
		{"none", false, false, false, false, 0x00},
		{"zero", true, false, false, false, 0x80},
		{"subtract", false, true, false, false, 0x40},
		{"half-carry", false, false, true, false, 0x20},
		{"carry", false, false, false, true, 0x10},
		{"all", true, true, true, true, 0xF0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Flags{}
			f.Set(tt.zero, tt.subtract, tt.half, tt.carry)
			if got := f.Value(); got != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, got)
			}
		})
	}
}

func TestFlagsSetValueIgnoresLowNibble(t *testing.T) {
	f := Flags{}
	f.SetValue(0xFF)
	if !f.Zero || !f.Subtract || !f.HalfCarry || !f.Carry {
		t.Error("expected all flags set")
	}
	if f.Value() != 0xF0 {
		t.Errorf("expected low nibble dropped, got 0x%02X", f.Value())
	}

	f.SetValue(0x0F)
	if f.Value() != 0x00 {
		t.Errorf("expected no flags from the low nibble, got 0x%02X", f.Value())
	}
}

func TestFlagsReset(t *testing.T) {
	f := Flags{}
	f.Set(true, true, true, true)
	f.Reset()
	if f.Value() != 0 {
		t.Errorf("expected cleared flags, got 0x%02X", f.Value())
	}
}
