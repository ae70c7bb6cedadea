package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	body := `
[player]
max_health = 250
move_speed = 99

[spawner]
base_rate = 4.5
max_alive = 10
seed = 7

[combat]
projectile_damage = 50
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Player.MaxHealth)
	assert.Equal(t, 99.0, cfg.Player.MoveSpeed)
	assert.Equal(t, 4.5, cfg.Spawner.BaseRate)
	assert.Equal(t, 10, cfg.Spawner.MaxAlive)
	assert.Equal(t, uint32(7), cfg.Spawner.Seed)
	assert.Equal(t, 50.0, cfg.Combat.ProjectileDamage)

	// Untouched sections keep the defaults.
	def := Default()
	assert.Equal(t, def.Player.BodyRadius, cfg.Player.BodyRadius)
	assert.Equal(t, def.Combat.FireCooldown, cfg.Combat.FireCooldown)
	assert.Equal(t, def.Window, cfg.Window)
	assert.Equal(t, def.Sim, cfg.Sim)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[player\nmax_health ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultIsPlayable(t *testing.T) {
	cfg := Default()
	assert.Positive(t, cfg.Sim.TicksPerSecond)
	assert.Positive(t, cfg.Player.MaxHealth)
	assert.Positive(t, cfg.Player.MoveSpeed)
	assert.Positive(t, cfg.Spawner.Radius)
	assert.Positive(t, cfg.Combat.ProjectileSpeed)
	assert.Positive(t, cfg.Combat.ProjectileLifetime)
}
