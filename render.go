package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var backgroundColor = color.RGBA{12, 14, 24, 255}

// screenPoint is a projected field sample ready to draw.
type screenPoint struct {
	x, y, depth float32
	clr         color.RGBA
}

// sampleColor ramps from green at rest to red at |u| >= scale.
func sampleColor(u, scale float64) color.RGBA {
	c := math.Abs(u) / scale
	if c > 1 || math.IsNaN(c) {
		c = 1
	}
	return color.RGBA{
		R: uint8(math.Round(c * 255)),
		G: uint8(math.Round((1 - c) / 2 * 255)),
		A: 255,
	}
}

// projectField projects every sample of u, centred on the grid midpoint, and
// returns them sorted far to near. dst is reused when large enough.
func projectField(dst []screenPoint, u [][]float64, mvp mgl32.Mat4, v ViewSettings, width, height int) []screenPoint {
	dst = dst[:0]
	if len(u) == 0 {
		return dst
	}
	halfX := float32(len(u)-1) / 2
	halfZ := float32(len(u[0])-1) / 2
	for i, row := range u {
		for j, value := range row {
			world := mgl32.Vec3{
				float32(i) - halfX,
				float32(value * v.HeightScale),
				float32(j) - halfZ,
			}
			sx, sy, depth, ok := project(mvp, world, width, height)
			if !ok {
				continue
			}
			dst = append(dst, screenPoint{x: sx, y: sy, depth: depth, clr: sampleColor(value, v.ColorScale)})
		}
	}
	sort.Slice(dst, func(a, b int) bool { return dst[a].depth > dst[b].depth })
	return dst
}

// Draw renders the current field as a point cloud and the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	mvp := g.camera.viewProjection(width, height)
	g.points = projectField(g.points, g.solver.Field(), mvp, g.settings.View, width, height)

	sprite := g.pointSprite()
	half := float64(g.settings.View.PointSize) / 2
	for _, p := range g.points {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.x)-half, float64(p.y)-half)
		op.ColorScale.ScaleWithColor(p.clr)
		screen.DrawImage(sprite, op)
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		simMS := g.lastSimDuration.Seconds() * 1000
		state := "running"
		switch {
		case g.solver.Done():
			state = "done"
		case g.paused:
			state = "paused"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nTicks: %.0f/s (mult %dx, +/-)\nStep %d  k %.1f/%.0f  t %.3f\nmax|u| %.4f  Sim: %.2f ms  [%s]",
			fps, tps, g.clock.ticksPerSecond(), g.clock.multiplier,
			g.solver.Steps(), g.solver.K(), g.solver.NSteps(), g.solver.Time(),
			g.solver.MaxAbs(), simMS, state)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// pointSprite lazily creates the white square drawn for each sample.
func (g *Game) pointSprite() *ebiten.Image {
	if g.sprite == nil {
		size := int(math.Ceil(g.settings.View.PointSize))
		if size < 1 {
			size = 1
		}
		g.sprite = ebiten.NewImage(size, size)
		g.sprite.Fill(color.White)
	}
	return g.sprite
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
