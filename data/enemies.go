package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyArchetype holds the static tuning for one enemy type loaded from
// YAML.
type EnemyArchetype struct {
	ID            string  `yaml:"id"`
	Health        float64 `yaml:"health"`
	MoveSpeed     float64 `yaml:"move_speed"`
	BodyRadius    float64 `yaml:"body_radius"`
	ContactDamage float64 `yaml:"contact_damage"` // health per second while overlapping the player
	SpawnWeight   float64 `yaml:"spawn_weight"`   // relative pick chance, higher = more common
}

type enemyListFile struct {
	Enemies []EnemyArchetype `yaml:"enemies"`
}

// EnemyTable holds every archetype in file order. Order matters: weighted
// picks walk the list, so the same roll always lands on the same entry.
type EnemyTable struct {
	archetypes  []EnemyArchetype
	totalWeight float64
}

// LoadEnemyTable loads enemy archetypes from a YAML file.
func LoadEnemyTable(path string) (*EnemyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy table: %w", err)
	}
	var f enemyListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse enemy table: %w", err)
	}
	return NewEnemyTable(f.Enemies)
}

// NewEnemyTable validates archetypes and builds a table from them.
func NewEnemyTable(archetypes []EnemyArchetype) (*EnemyTable, error) {
	t := &EnemyTable{archetypes: archetypes}
	for i := range archetypes {
		a := &archetypes[i]
		if a.ID == "" {
			return nil, fmt.Errorf("enemy archetype %d: missing id", i)
		}
		if a.Health <= 0 {
			return nil, fmt.Errorf("enemy archetype %q: health must be positive", a.ID)
		}
		if a.SpawnWeight <= 0 {
			return nil, fmt.Errorf("enemy archetype %q: spawn_weight must be positive", a.ID)
		}
		t.totalWeight += a.SpawnWeight
	}
	return t, nil
}

// Count returns the number of loaded archetypes.
func (t *EnemyTable) Count() int {
	return len(t.archetypes)
}

// Get returns an archetype by id, or nil if not found.
func (t *EnemyTable) Get(id string) *EnemyArchetype {
	for i := range t.archetypes {
		if t.archetypes[i].ID == id {
			return &t.archetypes[i]
		}
	}
	return nil
}

// Pick maps a uniform roll in [0, 1) to an archetype by spawn weight.
// An empty table returns nil.
func (t *EnemyTable) Pick(roll float64) *EnemyArchetype {
	if len(t.archetypes) == 0 {
		return nil
	}
	target := roll * t.totalWeight
	acc := 0.0
	for i := range t.archetypes {
		acc += t.archetypes[i].SpawnWeight
		if target < acc {
			return &t.archetypes[i]
		}
	}
	// Rounding can push the walk past the end; the last entry absorbs it.
	return &t.archetypes[len(t.archetypes)-1]
}

// DefaultTable returns the built-in archetypes, mirroring data/enemies.yaml
// so the game plays the same without the file on disk.
func DefaultTable() *EnemyTable {
	t, err := NewEnemyTable([]EnemyArchetype{
		{ID: "walker", Health: 30, MoveSpeed: 55, BodyRadius: 11, ContactDamage: 8, SpawnWeight: 70},
		{ID: "sprinter", Health: 16, MoveSpeed: 95, BodyRadius: 8, ContactDamage: 6, SpawnWeight: 20},
		{ID: "brute", Health: 90, MoveSpeed: 38, BodyRadius: 16, ContactDamage: 16, SpawnWeight: 10},
	})
	if err != nil {
		panic(err) // built-ins are compile-time data, this cannot fail
	}
	return t
}
