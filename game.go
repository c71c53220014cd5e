package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"waveviz/internal/wave"
)

// Game drives the solver at a fixed tick interval and renders its field.
// ebiten never runs Update and Draw concurrently, so the solver's field is
// never read mid-step.
type Game struct {
	settings Settings
	boundary string
	logger   *zap.Logger

	solver *wave.Solver
	clock  *stepClock
	camera *orbitCamera
	points []screenPoint
	sprite *ebiten.Image

	paused          bool
	lastSimDuration time.Duration
	lastStatsLog    time.Time

	audioCtx    *audio.Context
	audioStream *centerAudioStream
	audioPlayer *audio.Player
}

// newGame constructs a fully initialized Game instance.
func newGame(settings Settings, boundary string, logger *zap.Logger) (*Game, error) {
	solver, err := buildSolver(settings.Solver, boundary, logger)
	if err != nil {
		return nil, err
	}
	g := &Game{
		settings: settings,
		boundary: boundary,
		logger:   logger,
		solver:   solver,
		clock:    newStepClock(settings.View.tickInterval()),
		camera:   newOrbitCamera(settings.View),
	}
	if *enableAudioFlag {
		g.startAudio()
	}
	return g, nil
}

func (g *Game) startAudio() {
	g.audioCtx = audio.NewContext(audioSampleRate)
	g.audioStream = newCenterAudioStream()
	player, err := g.audioCtx.NewPlayer(g.audioStream)
	if err != nil {
		g.logger.Warn("audio player creation failed", zap.Error(err))
		return
	}
	player.SetBufferSize(audioBufferLatency)
	player.Play()
	g.audioPlayer = player
}

// reset rebuilds the solver from the current settings.
func (g *Game) reset() error {
	solver, err := buildSolver(g.settings.Solver, g.boundary, g.logger)
	if err != nil {
		return err
	}
	g.solver = solver
	g.clock.accumulator = 0
	g.logger.Info("simulation reset")
	return nil
}

// Update advances the solver by the ticks due this frame and handles input.
func (g *Game) Update() error {
	g.camera.handleInput()
	g.handleControls()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	tps := ebiten.ActualTPS()
	if tps < 1 {
		tps = defaultTPS
	}
	frame := time.Duration(float64(time.Second) / tps)
	steps := g.clock.advance(frame)
	if g.paused {
		steps = 0
	}

	simStart := time.Now()
	stepBatch(g.solver, steps)
	g.lastSimDuration = time.Since(simStart)

	if g.audioStream != nil {
		g.audioStream.SetSample(g.centerSample() / g.settings.View.ColorScale)
	}
	if *debugFlag {
		g.logStats()
	}
	return nil
}

// handleControls processes pause and debug hotkeys.
func (g *Game) handleControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.clock.adjustMultiplier(-simMultiplierStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.clock.adjustMultiplier(simMultiplierStep)
	}
}

// centerSample reads the field at the middle of the grid.
func (g *Game) centerSample() float64 {
	rows, cols := g.solver.Dims()
	return g.solver.At(rows/2, cols/2)
}

func (g *Game) logStats() {
	now := time.Now()
	if now.Sub(g.lastStatsLog) < statsLogInterval {
		return
	}
	g.lastStatsLog = now
	g.logger.Debug("simulation stats",
		zap.Int("steps", g.solver.Steps()),
		zap.Float64("k", g.solver.K()),
		zap.Float64("t", g.solver.Time()),
		zap.Float64("max_abs", g.solver.MaxAbs()),
		zap.Bool("done", g.solver.Done()),
		zap.Duration("sim", g.lastSimDuration),
	)
}

// Close releases the audio player.
func (g *Game) Close() {
	if g.audioPlayer != nil {
		_ = g.audioPlayer.Close()
	}
}
