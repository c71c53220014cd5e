package main

import (
	"encoding/binary"
	"math"

	"go.uber.org/atomic"
)

// dcAlpha is the smoothing factor of the DC tracker removed from each sample.
const dcAlpha = 0.001

// centerAudioStream plays the field's centre sample as a held stereo PCM16
// level. Update publishes through SetSample; the audio player goroutine
// only reads the published level.
type centerAudioStream struct {
	level atomic.Float64
	// dc is touched only by the SetSample caller.
	dc float64
}

func newCenterAudioStream() *centerAudioStream {
	return &centerAudioStream{}
}

// SetSample publishes v, clamped to [-1, 1], less its running DC offset.
func (s *centerAudioStream) SetSample(v float64) {
	switch {
	case math.IsNaN(v):
		v = 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}
	s.dc += dcAlpha * (v - s.dc)
	s.level.Store(v - s.dc)
}

// Read fills p with as many whole 4-byte stereo frames as fit.
func (s *centerAudioStream) Read(p []byte) (int, error) {
	frames := len(p) / 4
	pcm := uint16(int16(math.Round(s.level.Load() * math.MaxInt16)))
	for f := 0; f < frames; f++ {
		frame := p[f*4 : f*4+4]
		binary.LittleEndian.PutUint16(frame[0:2], pcm)
		binary.LittleEndian.PutUint16(frame[2:4], pcm)
	}
	return frames * 4, nil
}

func (s *centerAudioStream) Close() error { return nil }
