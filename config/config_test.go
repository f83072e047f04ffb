package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.Equal(t, 60, C.Combat.TickRate)
}

func TestStep(t *testing.T) {
	assert.Equal(t, time.Second/60, CombatConfig{TickRate: 60}.Step())
	assert.Equal(t, time.Duration(0), CombatConfig{TickRate: 0}.Step())
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.Combat.TickRate = 0
	cfg.Arena.CellSize = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combat.tick_rate")
	assert.Contains(t, err.Error(), "arena.cell_size")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fight.yaml")
	content := []byte("combat:\n  tick_rate: 30\narena:\n  width: 800\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("FIGHT_COMBAT_CANCEL_WINDOW", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Combat.TickRate)
	assert.Equal(t, 2, cfg.Combat.CancelWindow)
	assert.Equal(t, 800, cfg.Arena.Width)
	assert.Equal(t, Default().Arena.Height, cfg.Arena.Height)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromViper_RejectsInvalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("logging.level", "trace")
	_, err := LoadFromViper(v)
	assert.Error(t, err)
}

func TestPropertyTickRateValidity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.IntRange(-240, 240).Draw(t, "tick_rate")
		cfg := Default()
		cfg.Combat.TickRate = rate
		err := cfg.Validate()
		if rate >= 1 && err != nil {
			t.Fatalf("valid tick rate %d rejected: %v", rate, err)
		}
		if rate < 1 && err == nil {
			t.Fatalf("invalid tick rate %d accepted", rate)
		}
	})
}

func TestParseState_RoundTripsEveryState(t *testing.T) {
	for id := Idle; id < StateCount; id++ {
		parsed, err := ParseState(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
	_, err := ParseState("uppercut")
	assert.Error(t, err)
}

func TestIsAttack(t *testing.T) {
	assert.True(t, LightAttack.IsAttack())
	assert.True(t, HeavyAttack.IsAttack())
	for _, s := range []StateID{Idle, Forward, Backward, Jump, Crouch, Block} {
		assert.False(t, s.IsAttack(), s.String())
	}
	assert.False(t, StateNone.Valid())
	assert.False(t, StateCount.Valid())
}
