// Command arena is a two-player keyboard sandbox for the combat core. It draws
// hurtboxes, hitboxes and the current frame phase so frame data can be tuned
// by eye.
package main

import (
	"flag"
	"log"

	"github.com/automoto/fightcore/assets"
	"github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/observability"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a fight.yaml config file")
	p1 := flag.String("p1", "", "character for player one (overrides saved settings)")
	p2 := flag.String("p2", "", "character for player two (overrides saved settings)")
	flag.Parse()

	cfg := config.C
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store := openSettings(logger)
	settings := store.Load()
	if *p1 != "" {
		settings.Fighters[0] = *p1
	}
	if *p2 != "" {
		settings.Fighters[1] = *p2
	}

	roster, err := assets.Characters()
	if err != nil {
		logger.Fatal("loading bundled characters", zap.Error(err))
	}
	for i, name := range settings.Fighters {
		if _, ok := roster[name]; !ok {
			logger.Warn("unknown fighter, using default", zap.String("fighter", name))
			settings.Fighters[i] = defaultSettings().Fighters[i]
		}
	}

	game, err := NewGame(cfg, logger, store, settings)
	if err != nil {
		logger.Fatal("starting match", zap.Error(err))
	}

	ebiten.SetWindowTitle("fightcore arena")
	ebiten.SetWindowSize(cfg.Arena.Width/2, cfg.Arena.Height/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(cfg.Combat.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("arena exited", zap.Error(err))
	}
}
