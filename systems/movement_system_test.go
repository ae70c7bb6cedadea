package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

func TestMovementIntegratesInput(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 10, 20)
	ecs.Add(w, player, components.MoveInput{X: 1, Y: 0})

	NewMovementSystem().Update(w, testDT)

	pos, ok := ecs.Get[components.Position](w, player)
	require.True(t, ok)
	assert.InDelta(t, 10+170*testDT, pos.X, 1e-12)
	assert.Equal(t, 20.0, pos.Y)
}

func TestMovementScalesWithAnalogMagnitude(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	ecs.Add(w, player, components.MoveInput{X: 0, Y: 0.5})

	NewMovementSystem().Update(w, testDT)

	pos, _ := ecs.Get[components.Position](w, player)
	assert.InDelta(t, 0.5*170*testDT, pos.Y, 1e-12)
}

func TestMovementZeroInputHolds(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 3, 4)

	NewMovementSystem().Update(w, testDT)

	pos, _ := ecs.Get[components.Position](w, player)
	assert.Equal(t, components.Position{X: 3, Y: 4}, pos)
}

func TestMovementSkipsWithoutSpeed(t *testing.T) {
	w := ecs.NewWorld()
	e := w.Create()
	ecs.Add(w, e, components.MoveInput{X: 1})
	ecs.Add(w, e, components.Position{X: 1})

	assert.NotPanics(t, func() { NewMovementSystem().Update(w, testDT) })

	pos, _ := ecs.Get[components.Position](w, e)
	assert.Equal(t, 1.0, pos.X, "no MoveSpeed means no motion")
}
