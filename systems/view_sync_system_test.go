package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

func TestViewSyncPushesPositions(t *testing.T) {
	w := ecs.NewWorld()
	view := newRecordingView()

	a := w.Create()
	ecs.Add(w, a, components.Position{X: 1, Y: 2})
	ha := view.Instantiate(components.ViewEnemy, 1, 2, 10)
	ecs.Add(w, a, components.ViewRef{Handle: ha})

	// Visual-less entities and position-less visuals are both skipped.
	b := w.Create()
	ecs.Add(w, b, components.Position{X: 5, Y: 5})
	c := w.Create()
	hc := view.Instantiate(components.ViewEnemy, 0, 0, 10)
	ecs.Add(w, c, components.ViewRef{Handle: hc})

	sys := NewViewSyncSystem(view)
	sys.Update(w, testDT)
	sys.Update(w, testDT)

	assert.Equal(t, 2, view.moved[ha.(int)], "one move per tick")
	assert.Zero(t, view.moved[hc.(int)])
}

func TestViewSyncHeadlessIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	e := w.Create()
	ecs.Add(w, e, components.Position{})
	ecs.Add(w, e, components.ViewRef{Handle: 1})

	require.NotPanics(t, func() { NewViewSyncSystem(nil).Update(w, testDT) })
}
