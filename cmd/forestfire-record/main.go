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
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 500, "number of ticks to simulate")
	csvPath := flag.String("csv", "", "write per-tick census CSV to this file")
	chartPath := flag.String("chart", "", "write a PNG population chart to this file")
	flag.Parse()

	if *ticks <= 0 {
		log.Fatalf("ticks must be positive, got %d", *ticks)
	}
	fcfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sim, err := forest.New(fcfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if _, err := fcfg.Parameters().WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history := &record.History{}
	d := loop.New(sim, history, loop.Options{MaxTicks: *ticks})
	if err := d.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}

	if *csvPath != "" {
		if err := writeFile(*csvPath, history.WriteCSV); err != nil {
			log.Fatalf("csv: %v", err)
		}
	}
	if *chartPath != "" {
		err := writeFile(*chartPath, func(w io.Writer) error {
			return history.WriteChart(w, record.DefaultChartOptions())
		})
		if err != nil {
			log.Fatalf("chart: %v", err)
		}
	}

	final := sim.Census()
	fmt.Printf("Simulated %d ticks: %d trees, %d burning, %d empty, %d water.\n",
		d.Ticks(), final.Tree, final.Burning, final.Empty, final.Water)
	if peak, ok := history.Peak(); ok {
		fmt.Printf("Peak fire at tick %d with %d burning cells.\n", peak.Tick, peak.Census.Burning)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
