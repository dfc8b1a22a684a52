package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrhappyasthma/GameboyEmulator/internal/gameboy"
	"github.com/mrhappyasthma/GameboyEmulator/pkg/log"
	"github.com/mrhappyasthma/GameboyEmulator/pkg/utils"
)

// romDir is the directory ROM images are loaded from; the argument names a
// file inside it, with the .gb extension optional.
const romDir = "roms"

var (
	biosPath string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "gameboy <rom>",
	Short: "Run a Game Boy ROM image",
	Args:  cobra.ExactArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&biosPath, "bios", "", "path to a 256-byte bios image")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !strings.HasSuffix(name, ".gb") {
		name += ".gb"
	}

	rom, err := utils.LoadFile(filepath.Join(romDir, name))
	if err != nil {
		return fmt.Errorf("load rom: %w", err)
	}

	logger := log.New()
	if debug {
		logger = log.NewDebug()
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if biosPath != "" {
		bios, err := os.ReadFile(biosPath)
		if err != nil {
			return fmt.Errorf("load bios: %w", err)
		}
		opts = append(opts, gameboy.WithBIOS(bios))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		return err
	}
	cart := gb.Cartridge()
	logger.Infof("loaded %q (%d bytes, xxhash %016x)", cart.Title(), cart.Len(), cart.Hash())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := gb.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
