package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	tile := flag.Int("tile", 0, "Tile size in pixels (overrides config)")
	fps := flag.Int("fps", 0, "Game ticks per second (overrides config)")
	seed := flag.Uint64("seed", 0, "Food RNG seed, 0 picks one from the clock")
	autostart := flag.Bool("autostart", false, "Start running instead of waiting for Space")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if *tile > 0 {
		cfg.TileSize = *tile
	}
	if *fps > 0 {
		cfg.TicksPerSec = *fps
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *autostart {
		cfg.AutoStart = true
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	renderer := ui.NewRenderer(cfg.HUDHeight)
	width, height := renderer.BoardViewport()
	g := game.NewGame(width, height, game.Options{
		TileSize:      cfg.TileSize,
		TicksPerSec:   cfg.TicksPerSec,
		InitialLength: cfg.InitialLength,
		Seed:          cfg.Seed,
		AutoStart:     cfg.AutoStart,
		Logger:        logger,
	})
	g.OnScoreChanged(func(score int) {
		rl.SetWindowTitle(scoreTitle(score))
	})
	input := ui.NewInput(manager.NewInputManager(g), renderer)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
			g.Resize(renderer.BoardViewport())
		}

		input.Poll()
		g.Update()
		renderer.Draw(g)
	}
	logger.Printf("exiting after %d games, best score %d", g.GamesPlayed(), g.HighScore())
}
