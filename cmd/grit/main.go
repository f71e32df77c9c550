//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"gritgrid/internal/app"
	"gritgrid/internal/scenario"
	"gritgrid/internal/world"
)

func main() {
	name := flag.String("scenario", "sandbox", "scenario to run ("+strings.Join(scenario.Names(), ", ")+")")
	width := flag.Int("w", 192, "grid width in cells")
	height := flag.Int("h", 128, "grid height in cells")
	scale := flag.Int("scale", 5, "pixel scale multiplier")
	tps := flag.Int("tps", 60, "ticks per second")
	seed := flag.Int64("seed", 1337, "seed for world reset")
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
	game := app.New(w, s, *scale, *tps, *seed)
	game.Reset(*seed)

	size := w.Size()
	ebiten.SetWindowTitle("gritgrid — " + s.Name())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W**scale, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
