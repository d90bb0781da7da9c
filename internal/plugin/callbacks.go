package plugin

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// current is the single process-global Binding the six trampolines
// dispatch through. The ABI has no user-data slot on most callbacks, and
// the host loop is single-threaded/single-plugin (spec.md §5, Design
// Notes), so one global is sufficient; a multi-plugin host would need a
// trampoline pool instead.
var current *Binding

func installCallbacks(b *Binding) {
	current = b
	envCB := purego.NewCallback(environmentTrampoline)
	videoCB := purego.NewCallback(videoRefreshTrampoline)
	audioCB := purego.NewCallback(audioSampleTrampoline)
	audioBatchCB := purego.NewCallback(audioSampleBatchTrampoline)
	pollCB := purego.NewCallback(inputPollTrampoline)
	stateCB := purego.NewCallback(inputStateTrampoline)
	b.logCB = purego.NewCallback(logPrintfTrampoline)

	b.table.setEnvironment(envCB)
	b.table.setVideoRefresh(videoCB)
	b.table.setAudioSample(audioCB)
	b.table.setAudioSampleBatch(audioBatchCB)
	b.table.setInputPoll(pollCB)
	b.table.setInputState(stateCB)
}

// environmentTrampoline is retro_environment_t: bool(*)(unsigned, void*).
func environmentTrampoline(cmd uint32, data uintptr) bool {
	if current == nil {
		return false
	}
	return current.dispatchEnvironment(cmd, data)
}

// videoRefreshTrampoline is retro_video_refresh_t:
// void(*)(const void*, unsigned, unsigned, size_t). data==0 is a dupe
// frame and must be skipped, not treated as an error (spec.md §5).
func videoRefreshTrampoline(data uintptr, width, height uint32, pitch uintptr) {
	if current == nil || data == 0 {
		return
	}
	current.onVideoRefresh(data, int(width), int(height), int(pitch))
}

// audioSampleTrampoline is retro_audio_sample_t: void(*)(int16_t, int16_t).
func audioSampleTrampoline(left, right int16) {
	if current == nil {
		return
	}
	current.onAudioSample(left, right)
}

// audioSampleBatchTrampoline is retro_audio_sample_batch_t:
// size_t(*)(const int16_t*, size_t) — frames of interleaved L/R samples.
func audioSampleBatchTrampoline(data uintptr, frames uintptr) uintptr {
	if current == nil || data == 0 {
		return 0
	}
	n := int(frames)
	samples := unsafe.Slice((*int16)(unsafe.Pointer(data)), n*2)
	current.onAudioSampleBatch(samples)
	return frames
}

// inputPollTrampoline is retro_input_poll_t: void(*)(void).
func inputPollTrampoline() {
	if current == nil {
		return
	}
	current.onInputPoll()
}

// inputStateTrampoline is retro_input_state_t:
// int16_t(*)(unsigned, unsigned, unsigned, unsigned).
func inputStateTrampoline(port, device, index, id uint32) int16 {
	if current == nil {
		return 0
	}
	return current.onInputState(port, device, index, id)
}

// logPrintfTrampoline is retro_log_printf_t: void(*)(enum retro_log_level,
// const char*, ...). Without cgo there is no vsnprintf to expand the
// plugin's varargs on the host side, so this only reads the fixed
// (level, fmt) pair and forwards fmt verbatim; a plugin that relies on
// printf-style substitution gets its raw format string logged instead of
// the expanded message.
func logPrintfTrampoline(level uint32, fmt uintptr) {
	if current == nil {
		return
	}
	current.onLogPrintf(level, fmt)
}
