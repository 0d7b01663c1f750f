package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/valerio/go-dmg/dmg"
	"github.com/valerio/go-dmg/dmg/terminal"
)

func main() {
	app := cli.NewApp()
	app.Name = "go-dmg"
	app.Description = "A cycle-accurate DMG Game Boy emulator core"
	app.Usage = "go-dmg [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a terminal interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	emu, err := dmg.NewWithFile(romPath)
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}
		return runHeadless(emu, frames)
	}

	frontend, err := terminal.New(emu)
	if err != nil {
		return err
	}

	return frontend.Run()
}

// runHeadless executes a fixed number of frames as fast as the host allows,
// logging progress. Useful for batch runs and smoke tests.
func runHeadless(emu *dmg.Emulator, frames int) error {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	for i := 0; i < frames; i++ {
		if err := emu.RunFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if (i+1)%60 == 0 {
			slog.Info("Frame progress", "completed", i+1, "total", frames)
		}
	}

	slog.Info("Headless execution completed", "frames", frames, "pc", fmt.Sprintf("0x%04X", emu.CPU().GetPC()))
	return nil
}
