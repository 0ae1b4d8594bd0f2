package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"forestfire/internal/app"
	"forestfire/internal/forest"
	"forestfire/internal/loop"
	"forestfire/internal/record"
	"forestfire/internal/render"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append lifecycle messages to this file")
	csvPath := flag.String("csv", "", "write the per-tick census to this CSV file on exit")
	flag.Parse()

	ticks, err := run(cfg, *logPath, *csvPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("The forest rests after %d ticks. Goodbye!\n", ticks)
}

func run(cfg *app.Config, logPath, csvPath string) (int, error) {
	fcfg, err := cfg.Resolve()
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	sim, err := forest.New(fcfg)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}

	logger := log.New(io.Discard, "", 0)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "forestfire ", log.LstdFlags)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go render.WatchKeys(screen, cancel)

	var r loop.Renderer = render.NewTerminal(screen, fcfg.Params.Summary())
	history := &record.History{}
	if csvPath != "" {
		r = loop.Multi(r, history)
	}

	d := loop.New(sim, r, loop.Options{
		Pause:  fcfg.TickPause,
		Logger: logger,
	})
	if err := d.Run(ctx); err != nil {
		return d.Ticks(), err
	}
	if csvPath != "" {
		if err := writeCSV(csvPath, history); err != nil {
			return d.Ticks(), fmt.Errorf("csv: %w", err)
		}
	}
	return d.Ticks(), nil
}

func writeCSV(path string, h *record.History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := h.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
