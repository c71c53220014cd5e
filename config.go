package main

import "time"

// Viewer configuration constants. Solver parameters and tunable view values
// live in settings.json; these are the fixed limits around them.
const (
	windowTitle          = "2D Wave Equation"
	defaultTPS           = 60.0
	defaultTickInterval  = 10 * time.Millisecond
	defaultSimMultiplier = 1
	simMultiplierStep    = 1
	minSimMultiplier     = 1
	maxSimMultiplier     = 50
	maxStepsPerFrame     = 500
	orbitKeySpeed        = 0.03
	orbitDragSpeed       = 0.008
	zoomStep             = 1.1
	minCameraDistance    = 5
	maxCameraDistance    = 1000
	maxPitch             = 1.5
	cameraNear           = 0.1
	cameraFar            = 5000
	pulseAmplitude       = 0.05
	pulseOmega           = 6.283185307179586
	headlessLogEvery     = 1000
	statsLogInterval     = 5 * time.Second
	audioSampleRate      = 48000
	audioBufferLatency   = 80 * time.Millisecond
)
