// Package gameboy assembles the emulator components behind a single
// façade: cartridge, bus and CPU, with an optional BIOS image and display
// sink.
package gameboy

import (
	"context"

	"github.com/mrhappyasthma/GameboyEmulator/internal/boot"
	"github.com/mrhappyasthma/GameboyEmulator/internal/cartridge"
	"github.com/mrhappyasthma/GameboyEmulator/internal/cpu"
	"github.com/mrhappyasthma/GameboyEmulator/internal/mmu"
	"github.com/mrhappyasthma/GameboyEmulator/internal/ppu"
	"github.com/mrhappyasthma/GameboyEmulator/pkg/log"
)

// GameBoy owns the emulated machine.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	cart *cartridge.ROM

	// display is held for the video component once one exists; the CPU
	// core never draws.
	display ppu.Display

	biosRaw []byte
	log     log.Logger
}

// New builds a machine around the given cartridge image. Options attach a
// BIOS image, a display and a logger; an invalid BIOS image fails the
// build.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	gb := &GameBoy{
		cart: cartridge.NewROM(rom),
	}
	for _, opt := range opts {
		opt(gb)
	}
	if gb.log == nil {
		gb.log = log.New()
	}

	gb.MMU = mmu.New(gb.cart, gb.log)
	if gb.biosRaw != nil {
		bios, err := boot.Load(gb.biosRaw)
		if err != nil {
			return nil, err
		}
		gb.MMU.LoadBIOS(bios)
		gb.log.Infof("loaded bios (md5: %s)", bios.Checksum())
	}
	gb.CPU = cpu.New(gb.MMU, gb.log)

	return gb, nil
}

// Cartridge returns the loaded cartridge image.
func (gb *GameBoy) Cartridge() *cartridge.ROM {
	return gb.cart
}

// Step executes a single instruction and returns the cycles it consumed.
func (gb *GameBoy) Step() uint8 {
	return gb.CPU.Step()
}

// Reset returns the machine to its power-on state: registers cleared, RAM
// zeroed, BIOS overlay re-armed.
func (gb *GameBoy) Reset() {
	gb.CPU.Reset()
	gb.MMU.Reset()
}

// Run executes instructions until the context is cancelled.
func (gb *GameBoy) Run(ctx context.Context) error {
	gb.log.Infof("running %q", gb.cart.Title())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			gb.Step()
		}
	}
}
