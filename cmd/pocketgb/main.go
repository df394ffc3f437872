package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/hollowcrest/pocketgb/pocketgb"
	"github.com/hollowcrest/pocketgb/pocketgb/backend"
)

func main() {
	app := cli.NewApp()
	app.Name = "pocketgb"
	app.Description = "A Game Boy emulator core with a terminal front end"
	app.Usage = "pocketgb [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	machine, err := pocketgb.NewFromFile(romPath)
	if err != nil {
		return err
	}

	term, err := backend.NewTerminal(machine)
	if err != nil {
		return err
	}

	if err := term.Run(); err != nil {
		slog.Error(pocketgb.Diagnostic(err))
		return err
	}

	return nil
}
