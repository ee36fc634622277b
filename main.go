// main.go - CLI entry point for the x86edu simulator
//
// Assembles the given source file, loads it, and either runs it to
// completion (batch mode) or hands control to the interactive debug REPL
// (--stop-on-entry). Exit code 0 on a clean halt, non-zero on an assembly
// or runtime error.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/zotley/x86edu/assembler"
)

func main() {
	app := &cli.App{
		Name:    "x86edu",
		Usage:   "run and debug programs for the 32-bit x86-like educational simulator",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "lcd-width", Value: 16, Usage: "LCD framebuffer width in pixels"},
			&cli.IntFlag{Name: "lcd-height", Value: 16, Usage: "LCD framebuffer height in pixels"},
			&cli.StringFlag{Name: "mode", Value: "educational", Usage: "compatibility mode: educational or strict"},
			&cli.IntFlag{Name: "speed", Value: 100, Usage: "CPU speed percentage (cosmetic - this simulator has no cycle-accurate timing to throttle)"},
			&cli.BoolFlag{Name: "stop-on-entry", Usage: "load the program and wait at the debug REPL instead of running"},
			&cli.BoolFlag{Name: "legacy-kbd", Usage: "map the keyboard registers at the older 0xF100 base instead of 0x10100"},
			&cli.StringFlag{Name: "log", Value: "info", Usage: "log level: error, warn, info, debug"},
		},
		Action: runMain,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "x86edu: %v\n", err)
		os.Exit(1)
	}
}

func runMain(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one source file argument")
	}
	path := c.Args().Get(0)

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	logger := NewLogger(parseLogLevel(c.String("log")))

	mode := Educational
	if c.String("mode") == "strict" {
		mode = StrictX86
	}

	prog, err := assembler.Assemble(string(source), assembler.KnownMnemonics())
	if err != nil {
		return fmt.Errorf("assembling %s: %w", path, err)
	}
	logger.Infof("assembled %s: %d instructions", path, len(prog.Instructions))

	cpu := NewCPU(c.Int("lcd-width"), c.Int("lcd-height"), mode)
	cpu.Mem.SetKeyboardBase(c.Bool("legacy-kbd"))
	cpu.Load(prog)

	dbg := NewDebugger(cpu)

	if c.Bool("stop-on-entry") {
		return RunREPL(dbg, logger)
	}

	ev := dbg.Continue()
	for ev.Reason == StopStep {
		ev = dbg.Continue()
	}

	if len(cpu.Console) > 0 {
		os.Stdout.Write(cpu.Console)
	}

	switch ev.Reason {
	case StopException:
		return fmt.Errorf("line %d: %w", ev.Line, ev.Err)
	case StopHalt:
		logger.Infof("halted at line %d", ev.Line)
	}
	return nil
}
