package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/mathx"
)

const cameraEase = 0.12

var backgroundColor = color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}

var kindColors = map[components.ViewKind]color.RGBA{
	components.ViewPlayer:     {R: 0x57, G: 0xc7, B: 0x8f, A: 0xff},
	components.ViewEnemy:      {R: 0xd4, G: 0x5d, B: 0x5d, A: 0xff},
	components.ViewProjectile: {R: 0xe8, G: 0xdc, B: 0x6a, A: 0xff},
}

// drawOrder is back-to-front, so the player is never hidden by a crowd.
var drawOrder = []components.ViewKind{
	components.ViewEnemy,
	components.ViewProjectile,
	components.ViewPlayer,
}

// visual is one drawable body in the scene.
type visual struct {
	kind   components.ViewKind
	x, y   float64
	radius float64
}

// sceneView draws simulation entities as flat circles. It is the
// renderer side of the view contract: the simulation pushes spawn,
// move and despawn calls in, the draw pass reads the result.
type sceneView struct {
	window config.WindowConfig

	nextHandle int
	visuals    map[int]*visual

	camX, camY float64
}

func newSceneView(window config.WindowConfig) *sceneView {
	return &sceneView{
		window:  window,
		visuals: make(map[int]*visual),
	}
}

// Instantiate creates a circle for a newly spawned entity.
func (v *sceneView) Instantiate(kind components.ViewKind, x, y, radius float64) any {
	v.nextHandle++
	v.visuals[v.nextHandle] = &visual{kind: kind, x: x, y: y, radius: radius}
	return v.nextHandle
}

// Move repositions the circle behind an existing handle.
func (v *sceneView) Move(handle any, x, y float64) {
	if vis, ok := v.visuals[handle.(int)]; ok {
		vis.x = x
		vis.y = y
	}
}

// Destroy drops the circle for a despawned entity.
func (v *sceneView) Destroy(handle any) {
	delete(v.visuals, handle.(int))
}

// follow eases the camera toward the player once per tick.
func (v *sceneView) follow(x, y float64) {
	v.camX = mathx.Lerp(v.camX, x, cameraEase)
	v.camY = mathx.Lerp(v.camY, y, cameraEase)
}

// draw renders every visual relative to the camera.
func (v *sceneView) draw(screen *ebiten.Image) {
	halfW := float64(v.window.Width) / 2
	halfH := float64(v.window.Height) / 2
	for _, kind := range drawOrder {
		clr := kindColors[kind]
		for _, vis := range v.visuals {
			if vis.kind != kind {
				continue
			}
			vector.DrawFilledCircle(screen,
				float32(vis.x-v.camX+halfW),
				float32(vis.y-v.camY+halfH),
				float32(vis.radius), clr, true)
		}
	}
}
