// Command framecheck validates character catalog files and prints the
// frame-by-frame phase table of every move.
//
//	framecheck                       # bundled characters
//	framecheck -state heavy_attack fighters/*.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/fightcore/assets"
	"github.com/automoto/fightcore/catalog"
	"github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/observability"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a fight.yaml config file")
	tickRate := flag.Int("tick-rate", 0, "override the simulation tick rate")
	stateName := flag.String("state", "", "only print this move state (e.g. light_attack)")
	quiet := flag.Bool("q", false, "validate only, print no tables")
	flag.Parse()

	cfg := config.C
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *tickRate > 0 {
		cfg.Combat.TickRate = *tickRate
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	only := config.StateNone
	if *stateName != "" {
		if only, err = config.ParseState(*stateName); err != nil {
			logger.Fatal("bad -state", zap.Error(err))
		}
	}

	chars, failed := load(logger, flag.Args())
	for _, name := range catalog.Names(chars) {
		logger.Debug("character ok", zap.String("character", name))
		if *quiet {
			continue
		}
		if err := writeCharacter(os.Stdout, chars[name], cfg.Combat.TickRate, only); err != nil {
			logger.Fatal("writing table", zap.Error(err))
		}
	}

	if failed > 0 {
		logger.Error("catalog check failed", zap.Int("files", failed))
		os.Exit(1)
	}
	logger.Info("catalog check passed", zap.Int("characters", len(chars)))
}

// load parses each file independently so one bad file does not hide the
// others. With no files the bundled roster is checked.
func load(logger *zap.Logger, files []string) (map[string]*catalog.Character, int) {
	if len(files) == 0 {
		chars, err := assets.Characters()
		if err != nil {
			logger.Error("bundled characters", zap.Error(err))
			return nil, 1
		}
		return chars, 0
	}

	chars := make(map[string]*catalog.Character, len(files))
	failed := 0
	for _, file := range files {
		ch, err := parseFile(file)
		if err != nil {
			logger.Error("invalid catalog", zap.String("file", file), zap.Error(err))
			failed++
			continue
		}
		chars[ch.Name] = ch
	}
	return chars, failed
}

func parseFile(file string) (*catalog.Character, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ch, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return ch, nil
}
