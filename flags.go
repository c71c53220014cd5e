package main

import "flag"

// Command-line flags that select the settings file and optional runtime
// behavior. Solver and view tuning belongs in the settings file.
var (
	// settingsPathFlag points at the optional JSON settings file.
	settingsPathFlag = flag.String("settings", "settings.json", "path to the JSON settings file (missing file uses defaults)")

	// debugFlag enables the FPS and simulation overlay plus its hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation overlay")

	// headlessFlag runs the solver to completion without opening a window.
	headlessFlag = flag.Bool("headless", false, "run the simulation to completion without rendering")

	logLevelFlag = flag.String("log-level", "info", "log level (debug, info, warn, error)")

	// boundaryFlag selects the Dirichlet boundary driving the edges.
	boundaryFlag = flag.String("boundary", boundaryZero, "edge boundary: zero or pulse")

	// enableAudioFlag streams the centre sample to the audio device.
	enableAudioFlag = flag.Bool("enable-audio", false, "play the centre sample of the field as audio")

	// cpuProfileFlag writes a CPU profile for the lifetime of the process.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")
)
