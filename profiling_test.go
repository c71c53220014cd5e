package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCPUProfileWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	profiler, err := startCPUProfile(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	profiler.Stop()
	profiler.Stop()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCPUProfileRejectsBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cpu.pprof")
	profiler, err := startCPUProfile(path, zaptest.NewLogger(t))
	assert.Error(t, err)
	assert.Nil(t, profiler)
}
