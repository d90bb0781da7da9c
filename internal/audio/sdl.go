package audio

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// maxQueuedSeconds bounds how far SDL's audio queue may grow before
// QueueStereo16 starts dropping samples, so a slow frame never builds
// unbounded output latency (adapted from the teacher's queued-bytes
// cap in its UI loop, generalized to an arbitrary sample rate).
const maxQueuedSeconds = 0.25

// SDLSink opens SDL's default audio output device in signed 16-bit
// stereo at the plugin-reported sample rate.
type SDLSink struct {
	dev            sdl.AudioDeviceID
	maxQueuedBytes uint32
}

// NewSDLSink opens the device. sampleRate is the plugin's
// retro_system_timing.sample_rate (spec.md §3).
func NewSDLSink(sampleRate float64) (*SDLSink, error) {
	spec := sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	sdl.PauseAudioDevice(dev, false)

	bytesPerSecond := sampleRate * 2 /* channels */ * 2 /* bytes/sample */
	return &SDLSink{
		dev:            dev,
		maxQueuedBytes: uint32(bytesPerSecond * maxQueuedSeconds),
	}, nil
}

// QueueStereo16 implements Sink. Once the device's queue exceeds its
// cap, samples are silently dropped rather than blocking the frame
// loop — audio glitches under load, it does not stall emulation.
func (s *SDLSink) QueueStereo16(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}
	if sdl.GetQueuedAudioSize(s.dev) > s.maxQueuedBytes {
		return nil
	}
	buf := make([]byte, len(samples)*2)
	for i, v := range samples {
		buf[i*2] = byte(v)
		buf[i*2+1] = byte(v >> 8)
	}
	return sdl.QueueAudio(s.dev, buf)
}

// Close implements Sink.
func (s *SDLSink) Close() {
	sdl.CloseAudioDevice(s.dev)
}
