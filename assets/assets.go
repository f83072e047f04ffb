package assets

import (
	"embed"
	"fmt"
	"sync"

	"github.com/automoto/fightcore/catalog"
)

var (
	//go:embed all:characters
	characterFS embed.FS

	loadOnce   sync.Once
	characters map[string]*catalog.Character
	loadErr    error
)

// Characters returns the bundled roster, parsed once on first use.
func Characters() (map[string]*catalog.Character, error) {
	loadOnce.Do(func() {
		characters, loadErr = catalog.LoadFS(characterFS, "characters")
	})
	return characters, loadErr
}

// Character returns a single bundled character by name.
func Character(name string) (*catalog.Character, error) {
	chars, err := Characters()
	if err != nil {
		return nil, err
	}
	ch, ok := chars[name]
	if !ok {
		return nil, fmt.Errorf("unknown character %q", name)
	}
	return ch, nil
}

// MustCharacter is Character for callers that treat a broken bundle as fatal.
func MustCharacter(name string) *catalog.Character {
	ch, err := Character(name)
	if err != nil {
		panic("failed to load character: " + err.Error())
	}
	return ch
}
