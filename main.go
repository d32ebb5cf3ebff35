package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
	"github.com/iburimskiy/spiral-visualizer/internal/game"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("visualizer ")

	cfg := config.Load()
	log.Printf("track=%s volume=%.2f loop=%v delta=%s particles=%d",
		cfg.TrackPath, cfg.Volume, cfg.Loop, cfg.DeltaMode, cfg.Particles)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Spiral Visualizer - Click Play or Space, O: open file, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Println("bye")
}
