package main

import (
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// cpuProfiler writes a pprof CPU profile until stopped.
type cpuProfiler struct {
	path   string
	out    *os.File
	logger *zap.Logger
}

// startCPUProfile opens path and starts sampling into it.
func startCPUProfile(path string, logger *zap.Logger) (*cpuProfiler, error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating profile %q", path)
	}
	if err := pprof.StartCPUProfile(out); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return nil, errors.Wrap(err, "starting cpu profile")
	}
	logger.Info("cpu profiling enabled", zap.String("path", path))
	return &cpuProfiler{path: path, out: out, logger: logger}, nil
}

// Stop flushes the profile and closes the file. Later calls are no-ops.
func (p *cpuProfiler) Stop() {
	if p == nil || p.out == nil {
		return
	}
	pprof.StopCPUProfile()
	if err := p.out.Close(); err != nil {
		p.logger.Warn("closing cpu profile failed", zap.String("path", p.path), zap.Error(err))
	} else {
		p.logger.Info("cpu profile written", zap.String("path", p.path))
	}
	p.out = nil
}
