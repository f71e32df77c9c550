package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gritgrid/internal/material"
	"gritgrid/internal/scenario"
	"gritgrid/internal/world"
)

func main() {
	name := flag.String("scenario", "dambreak", "scenario to run ("+strings.Join(scenario.Names(), ", ")+")")
	width := flag.Int("w", 96, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	seed := flag.Int64("seed", 1337, "world seed")
	steps := flag.Int("steps", 600, "ticks to simulate")
	dt := flag.Float64("dt", world.DefaultDT, "seconds per tick")
	reportEvery := flag.Int("report-every", 60, "ticks between stat lines (0 disables)")
	snapshotPath := flag.String("snapshot", "", "write a snapshot here after the run")
	snapshotText := flag.Bool("snapshot-text", false, "write the snapshot as JSON instead of binary")
	flag.Parse()

	factory, ok := scenario.Get(*name)
	if !ok {
		log.Fatalf("unknown scenario %q (have: %s)", *name, strings.Join(scenario.Names(), ", "))
	}

	cfg := world.FromMap(map[string]string{
		"w":    strconv.Itoa(*width),
		"h":    strconv.Itoa(*height),
		"seed": strconv.FormatInt(*seed, 10),
	})
	w := world.NewWithConfig(cfg)
	s := factory(map[string]string{"seed": strconv.FormatInt(*seed, 10)})
	scenario.Install(s, w)

	for i := 0; i < *steps; i++ {
		w.AdvanceTime(*dt)
		if *reportEvery > 0 && (i+1)%*reportEvery == 0 {
			report(w, i+1)
		}
	}
	report(w, *steps)

	if *snapshotPath != "" {
		if err := writeSnapshot(w, *snapshotPath, *snapshotText); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("wrote snapshot to %s", *snapshotPath)
	}
}

func report(w *world.World, tick int) {
	g := w.Grid()
	var parts []string
	for m := material.Dirt; m < material.Count; m++ {
		mass := g.MassOf(m)
		if mass <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%.2f", m, mass))
	}
	fmt.Printf("tick %d  mass{%s}  maxP=%.3f  blocked=%d\n",
		tick, strings.Join(parts, " "), w.MaxPressure(), w.BlockedTransfers())
}

func writeSnapshot(w *world.World, path string, text bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if text {
		err = w.Grid().WriteSnapshotText(f)
	} else {
		err = w.Grid().WriteSnapshot(f)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
