package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/luyipei/MStory/mathx"
)

// dragRadius is the touch-stick deflection, in pixels, that maps to
// full movement speed.
const dragRadius = 48.0

// inputAdapter turns local devices into the simulation's movement
// direction. The keyboard (WASD or arrows) wins while a key is down;
// otherwise a touch drag acts as a virtual stick anchored where the
// finger landed. Diagonals are normalized so they are no faster than
// straight lines.
type inputAdapter struct {
	touchIDs []ebiten.TouchID
	touch    ebiten.TouchID
	anchorX  int
	anchorY  int
	dragging bool
}

func (a *inputAdapter) Direction() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	if x != 0 || y != 0 {
		a.dragging = false
		return mathx.Normalize(x, y)
	}
	return a.touchDirection()
}

func (a *inputAdapter) touchDirection() (float64, float64) {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	if len(a.touchIDs) == 0 {
		a.dragging = false
		return 0, 0
	}
	id := a.touchIDs[0]
	cx, cy := ebiten.TouchPosition(id)
	if !a.dragging || id != a.touch {
		// New finger: plant the stick here, movement starts next frame.
		a.touch = id
		a.anchorX, a.anchorY = cx, cy
		a.dragging = true
		return 0, 0
	}
	dx := float64(cx - a.anchorX)
	dy := float64(cy - a.anchorY)
	nx, ny := mathx.Normalize(dx, dy)
	mag := math.Hypot(dx, dy) / dragRadius
	if mag > 1 {
		mag = 1
	}
	return nx * mag, ny * mag
}
