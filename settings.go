package main

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"waveviz/internal/wave"
)

var settingsJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Settings is the on-disk configuration. Absent fields keep their defaults.
type Settings struct {
	Solver SolverSettings `json:"solver"`
	View   ViewSettings   `json:"view"`
}

// SolverSettings mirrors wave.Params.
type SolverSettings struct {
	XMin       float64 `json:"xmin"`
	XMax       float64 `json:"xmax"`
	YMin       float64 `json:"ymin"`
	YMax       float64 `json:"ymax"`
	Mx         int     `json:"mx"`
	My         int     `json:"my"`
	D          float64 `json:"d"`
	TEnd       float64 `json:"tend"`
	N          int     `json:"n"`
	StepBudget int     `json:"stepBudget"`
}

type ViewSettings struct {
	TickIntervalMs float64 `json:"tickIntervalMs"`
	WindowWidth    int     `json:"windowWidth"`
	WindowHeight   int     `json:"windowHeight"`
	PointSize      float64 `json:"pointSize"`
	HeightScale    float64 `json:"heightScale"`
	ColorScale     float64 `json:"colorScale"`
	CameraDistance float64 `json:"cameraDistance"`
	CameraYawDeg   float64 `json:"cameraYawDeg"`
	CameraPitchDeg float64 `json:"cameraPitchDeg"`
	FOVDeg         float64 `json:"fovDeg"`
}

// defaultSettings places the camera at (50, 50, 50) looking at the grid
// centre with a 40° field of view.
func defaultSettings() Settings {
	p := wave.DefaultParams()
	return Settings{
		Solver: SolverSettings{
			XMin: p.XMin, XMax: p.XMax,
			YMin: p.YMin, YMax: p.YMax,
			Mx: p.Mx, My: p.My,
			D:          p.D,
			TEnd:       p.TEnd,
			N:          p.N,
			StepBudget: p.StepBudget,
		},
		View: ViewSettings{
			TickIntervalMs: float64(defaultTickInterval / time.Millisecond),
			WindowWidth:    960,
			WindowHeight:   720,
			PointSize:      3,
			HeightScale:    50,
			ColorScale:     0.1,
			CameraDistance: 86.60254037844386,
			CameraYawDeg:   45,
			CameraPitchDeg: 35.26438968275465,
			FOVDeg:         40,
		},
	}
}

// loadSettings reads path over the defaults. A missing file is not an error;
// loaded reports whether the file existed.
func loadSettings(path string) (s Settings, loaded bool, err error) {
	s = defaultSettings()
	if path == "" {
		return s, false, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, false, nil
		}
		return s, false, errors.Wrapf(err, "reading settings %q", path)
	}
	if err := settingsJSON.Unmarshal(raw, &s); err != nil {
		return s, false, errors.Wrapf(err, "parsing settings %q", path)
	}
	if err := s.View.validate(); err != nil {
		return s, false, errors.Wrapf(err, "settings %q", path)
	}
	return s, true, nil
}

func (v ViewSettings) validate() error {
	switch {
	case v.TickIntervalMs <= 0:
		return errors.Errorf("tickIntervalMs must be positive, got %v", v.TickIntervalMs)
	case v.WindowWidth <= 0 || v.WindowHeight <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", v.WindowWidth, v.WindowHeight)
	case v.PointSize <= 0:
		return errors.Errorf("pointSize must be positive, got %v", v.PointSize)
	case v.ColorScale <= 0:
		return errors.Errorf("colorScale must be positive, got %v", v.ColorScale)
	case v.FOVDeg <= 0 || v.FOVDeg >= 180:
		return errors.Errorf("fovDeg must be in (0, 180), got %v", v.FOVDeg)
	}
	return nil
}

func (v ViewSettings) tickInterval() time.Duration {
	return time.Duration(v.TickIntervalMs * float64(time.Millisecond))
}

func (s SolverSettings) params() wave.Params {
	return wave.Params{
		XMin: s.XMin, XMax: s.XMax,
		YMin: s.YMin, YMax: s.YMax,
		Mx: s.Mx, My: s.My,
		D:          s.D,
		TEnd:       s.TEnd,
		N:          s.N,
		StepBudget: s.StepBudget,
	}
}
