package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

func TestCleanupCollectsDeadAndExpired(t *testing.T) {
	w := ecs.NewWorld()

	dead := addEnemy(w, 0, 0, 30)
	ecs.StoreFor[components.Health](w).Must(dead.ID).Current = 0

	healthy := addEnemy(w, 10, 0, 30)

	expired := w.Create()
	ecs.Add(w, expired, components.Lifetime{Remaining: -0.2})

	ticking := w.Create()
	ecs.Add(w, ticking, components.Lifetime{Remaining: 0.5})

	sys := NewCleanupSystem(nil, nil)
	sys.Update(w, testDT)

	assert.False(t, w.Alive(dead))
	assert.False(t, w.Alive(expired))
	assert.True(t, w.Alive(healthy))
	assert.True(t, w.Alive(ticking))
	assert.Equal(t, 1, sys.Kills(), "only enemy deaths count as kills")
}

func TestCleanupCountsOnlyEnemyKills(t *testing.T) {
	w := ecs.NewWorld()

	shot := w.Create()
	ecs.Add(w, shot, components.ProjectileTag{})
	ecs.Add(w, shot, components.Lifetime{Remaining: -1})

	sys := NewCleanupSystem(nil, nil)
	sys.Update(w, testDT)

	assert.False(t, w.Alive(shot))
	assert.Zero(t, sys.Kills())
}

func TestCleanupReleasesViewExactlyOnce(t *testing.T) {
	w := ecs.NewWorld()
	view := newRecordingView()

	// Dead by health AND expired by lifetime in the same tick: the two
	// passes must not release the handle twice.
	e := addEnemy(w, 0, 0, 30)
	ecs.StoreFor[components.Health](w).Must(e.ID).Current = -5
	ecs.Add(w, e, components.Lifetime{Remaining: -1})
	handle := view.Instantiate(components.ViewEnemy, 0, 0, 11)
	ecs.Add(w, e, components.ViewRef{Handle: handle})

	sys := NewCleanupSystem(view, nil)
	sys.Update(w, testDT)
	sys.Update(w, testDT) // second tick must find nothing left

	assert.False(t, w.Alive(e))
	require.Len(t, view.destroyed, 1)
	assert.Equal(t, 1, view.destroyCount(handle.(int)))
	assert.Equal(t, 1, sys.Kills())
}

func TestCleanupReleasesViewBeforeIDReuse(t *testing.T) {
	w := ecs.NewWorld()
	view := newRecordingView()

	e := addEnemy(w, 0, 0, 30)
	ecs.StoreFor[components.Health](w).Must(e.ID).Current = 0
	handle := view.Instantiate(components.ViewEnemy, 0, 0, 11)
	ecs.Add(w, e, components.ViewRef{Handle: handle})

	sys := NewCleanupSystem(view, nil)
	sys.Update(w, testDT)

	require.Equal(t, 1, view.destroyCount(handle.(int)))

	// The recycled id starts clean: no stale ViewRef may leak onto it.
	reused := w.Create()
	assert.Equal(t, e.ID, reused.ID)
	assert.False(t, ecs.Has[components.ViewRef](w, reused))
}

func TestCleanupSurvivesMassDeath(t *testing.T) {
	w := ecs.NewWorld()
	healths := ecs.StoreFor[components.Health](w)

	var doomed, spared []ecs.Entity
	for i := 0; i < 50; i++ {
		e := addEnemy(w, float64(i), 0, 30)
		if i%3 == 0 {
			spared = append(spared, e)
		} else {
			healths.Must(e.ID).Current = 0
			doomed = append(doomed, e)
		}
	}

	sys := NewCleanupSystem(nil, nil)
	sys.Update(w, testDT)

	for _, e := range doomed {
		assert.False(t, w.Alive(e))
	}
	for _, e := range spared {
		assert.True(t, w.Alive(e))
	}
	assert.Equal(t, len(doomed), sys.Kills())
	assert.Equal(t, len(spared), ecs.StoreFor[components.EnemyTag](w).Len())
}

func TestCleanupIsSoleDestroyer(t *testing.T) {
	w := ecs.NewWorld()
	e := addEnemy(w, 0, 0, 30)
	ecs.StoreFor[components.Health](w).Must(e.ID).Current = -1

	// Earlier combat stages only mark; the entity is still alive when
	// cleanup takes over.
	require.True(t, w.Alive(e))

	NewCleanupSystem(nil, nil).Update(w, testDT)
	assert.False(t, w.Alive(e))
}
