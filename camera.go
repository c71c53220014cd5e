package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// orbitCamera circles the origin at a fixed distance, steered by yaw and
// pitch angles in radians.
type orbitCamera struct {
	yaw      float32
	pitch    float32
	distance float32
	fovDeg   float32

	dragging     bool
	lastX, lastY int
}

func newOrbitCamera(v ViewSettings) *orbitCamera {
	c := &orbitCamera{
		yaw:      mgl32.DegToRad(float32(v.CameraYawDeg)),
		pitch:    mgl32.DegToRad(float32(v.CameraPitchDeg)),
		distance: float32(v.CameraDistance),
		fovDeg:   float32(v.FOVDeg),
	}
	c.clamp()
	return c
}

// eye converts the spherical camera angles to a cartesian position.
func (c *orbitCamera) eye() mgl32.Vec3 {
	cosPitch := float32(math.Cos(float64(c.pitch)))
	return mgl32.Vec3{
		c.distance * cosPitch * float32(math.Cos(float64(c.yaw))),
		c.distance * float32(math.Sin(float64(c.pitch))),
		c.distance * cosPitch * float32(math.Sin(float64(c.yaw))),
	}
}

// viewProjection returns the combined projection·view matrix looking at the
// origin with +Y up.
func (c *orbitCamera) viewProjection(width, height int) mgl32.Mat4 {
	view := mgl32.LookAtV(c.eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	aspect := float32(width) / float32(height)
	proj := mgl32.Perspective(mgl32.DegToRad(c.fovDeg), aspect, cameraNear, cameraFar)
	return proj.Mul4(view)
}

// project maps a world point to screen pixels. ok is false for points behind
// the camera or outside the depth range; depth grows with distance.
func project(mvp mgl32.Mat4, p mgl32.Vec3, width, height int) (sx, sy, depth float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	sx = (ndc.X() + 1) / 2 * float32(width)
	sy = (1 - ndc.Y()) / 2 * float32(height)
	return sx, sy, w, true
}

// rotate applies yaw and pitch deltas in radians.
func (c *orbitCamera) rotate(dyaw, dpitch float32) {
	c.yaw += dyaw
	c.pitch += dpitch
	c.clamp()
}

// zoom scales the orbit distance by factor.
func (c *orbitCamera) zoom(factor float32) {
	c.distance *= factor
	c.clamp()
}

func (c *orbitCamera) clamp() {
	c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
	c.distance = mgl32.Clamp(c.distance, minCameraDistance, maxCameraDistance)
	c.yaw = float32(math.Mod(float64(c.yaw), 2*math.Pi))
}

// handleInput processes mouse drag, wheel and arrow keys.
func (c *orbitCamera) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.rotate(-orbitKeySpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.rotate(orbitKeySpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.rotate(0, orbitKeySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.rotate(0, -orbitKeySpeed)
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.dragging = true
		c.lastX, c.lastY = x, y
	}
	if c.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			c.dragging = false
		} else {
			c.rotate(float32(x-c.lastX)*orbitDragSpeed, float32(y-c.lastY)*orbitDragSpeed)
			c.lastX, c.lastY = x, y
		}
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		c.zoom(1 / zoomStep)
	} else if wy < 0 {
		c.zoom(zoomStep)
	}
}
