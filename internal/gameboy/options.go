package gameboy

import (
	"github.com/mrhappyasthma/GameboyEmulator/internal/ppu"
	"github.com/mrhappyasthma/GameboyEmulator/pkg/log"
)

// Opt configures a GameBoy during construction.
type Opt func(gb *GameBoy)

// WithBIOS attaches a raw BIOS image. New validates it; an image that is
// not exactly 256 bytes fails the build.
func WithBIOS(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.biosRaw = b
	}
}

// WithDisplay attaches a display sink for the video component.
func WithDisplay(d ppu.Display) Opt {
	return func(gb *GameBoy) {
		gb.display = d
	}
}

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.log = l
	}
}
