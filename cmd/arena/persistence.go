package main

import (
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SavedSettings represents the arena settings stored on disk
type SavedSettings struct {
	Fighters   [2]string `yaml:"fighters"`
	ShowBoxes  bool      `yaml:"show_boxes"`
	Fullscreen bool      `yaml:"fullscreen"`
}

func defaultSettings() SavedSettings {
	return SavedSettings{
		Fighters:  [2]string{"brawler", "striker"},
		ShowBoxes: true,
	}
}

// settingsStore wraps the gdata manager; a nil manager turns every call into
// a no-op so the arena still runs where no data dir is available.
type settingsStore struct {
	m   *gdata.Manager
	log *zap.Logger
}

func openSettings(log *zap.Logger) *settingsStore {
	m, err := gdata.Open(gdata.Config{
		AppName: "fightcore_arena",
	})
	if err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
		return &settingsStore{log: log}
	}
	return &settingsStore{m: m, log: log}
}

func (s *settingsStore) Load() SavedSettings {
	settings := defaultSettings()
	if s.m == nil {
		return settings
	}

	data, err := s.m.LoadItem("settings")
	if err != nil {
		s.log.Warn("could not load settings", zap.Error(err))
		return settings
	}
	if len(data) == 0 {
		return settings
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		s.log.Warn("could not parse saved settings", zap.Error(err))
		return defaultSettings()
	}
	return settings
}

func (s *settingsStore) Save(settings SavedSettings) {
	if s.m == nil {
		return
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		s.log.Warn("could not serialize settings", zap.Error(err))
		return
	}
	if err := s.m.SaveItem("settings", data); err != nil {
		s.log.Warn("could not save settings", zap.Error(err))
	}
}
