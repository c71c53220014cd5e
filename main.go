package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"waveviz/internal/logging"
)

func main() {
	flag.Parse()
	logger, err := logging.New(logging.Config{Level: *logLevelFlag, Development: *debugFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("waveviz failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	if *cpuProfileFlag != "" {
		profiler, err := startCPUProfile(*cpuProfileFlag, logger)
		if err != nil {
			return err
		}
		defer profiler.Stop()
	}

	settings, loaded, err := loadSettings(*settingsPathFlag)
	if err != nil {
		return err
	}
	if loaded {
		logger.Info("settings loaded", zap.String("path", *settingsPathFlag))
	} else {
		logger.Info("no settings file found, using defaults", zap.String("path", *settingsPathFlag))
	}

	if *headlessFlag {
		solver, err := buildSolver(settings.Solver, *boundaryFlag, logger)
		if err != nil {
			return err
		}
		runHeadless(solver, logger, headlessLogEvery)
		return nil
	}

	g, err := newGame(settings, *boundaryFlag, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(settings.View.WindowWidth, settings.View.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(defaultTPS))
	return ebiten.RunGame(g)
}
