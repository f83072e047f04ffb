package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/fightcore/config"
	"gopkg.in/yaml.v3"
)

// characterSpec is the on-disk layout of a character file:
//
//	name: brawler
//	sprite_sheet: brawler.png
//	speed: 3
//	health: 100
//	hurtbox: {x: 0, y: 0, width: 32, height: 64}
//	animations:
//	  idle: {frames: [0, 1], rate: 6}
//	attacks:
//	  light_attack:
//	    damage: 8
//	    hit_stun: 12
//	    hitbox: {x: 32, y: 16, width: 24, height: 12}
//	    animation: {frames: [4, 5, 6, 7], rate: 6, window: {startup: 1, active: 1, recovery: 1}}
type characterSpec struct {
	Name        string                   `yaml:"name"`
	SpriteSheet string                   `yaml:"sprite_sheet"`
	Speed       float64                  `yaml:"speed"`
	Health      int                      `yaml:"health"`
	Hurtbox     Box                      `yaml:"hurtbox"`
	Animations  map[string]AnimationClip `yaml:"animations"`
	Attacks     map[string]Attack        `yaml:"attacks"`
}

// Parse decodes and validates a single character file.
func Parse(data []byte) (*Character, error) {
	var spec characterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}

	ch := &Character{
		Name:        spec.Name,
		SpriteSheet: spec.SpriteSheet,
		Speed:       spec.Speed,
		Health:      spec.Health,
		Hurtbox:     spec.Hurtbox,
		Moves:       make(map[config.StateID]Move, len(spec.Animations)+len(spec.Attacks)),
	}
	if ch.Health <= 0 {
		ch.Health = config.C.Combat.DefaultHealth
	}

	for key, clip := range spec.Animations {
		state, err := config.ParseState(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s animations: %w", spec.Name, err)
		}
		if state.IsAttack() {
			return nil, fmt.Errorf("catalog: %s: %s belongs under attacks", spec.Name, key)
		}
		clip := clip
		ch.Moves[state] = Move{Clip: &clip}
	}
	for key, attack := range spec.Attacks {
		state, err := config.ParseState(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s attacks: %w", spec.Name, err)
		}
		if !state.IsAttack() {
			return nil, fmt.Errorf("catalog: %s: %s is not an attack state", spec.Name, key)
		}
		attack := attack
		ch.Moves[state] = Move{Clip: attack.Clip, Attack: &attack}
	}

	if err := ch.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return ch, nil
}

// LoadFS parses every *.yaml file under dir in fsys, keyed by character name.
func LoadFS(fsys fs.FS, dir string) (map[string]*Character, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", dir, err)
	}

	out := make(map[string]*Character)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("catalog: load %s: %w", file, err)
		}
		ch, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if _, dup := out[ch.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate character %q in %s", ch.Name, file)
		}
		out[ch.Name] = ch
	}
	return out, nil
}

// Names returns the sorted character names of a loaded catalog.
func Names(chars map[string]*Character) []string {
	names := make([]string, 0, len(chars))
	for name := range chars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
