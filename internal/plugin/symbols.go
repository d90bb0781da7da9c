package plugin

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// LoadError is returned when a required symbol is missing from the
// shared object; the caller (cmd/retrohost) treats this as the
// plugin-load error class of spec.md §7 and aborts startup.
type LoadError struct {
	Path   string
	Symbol string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("plugin: missing required symbol %q in %s", e.Symbol, e.Path)
}

// table is the resolved roster of exported ABI symbols, constructed once
// and treated as immutable thereafter (spec.md Design Notes). Missing
// optional entries are tagged absent via a has* flag rather than
// null-tested at call sites.
type table struct {
	path string

	initFn            func()
	deinitFn          func()
	getSystemInfo     func(uintptr)
	getSystemAVInfo   func(uintptr)
	getRegion         func() uint32
	setControllerPort func(port, device uint32)
	resetFn           func()
	runFn             func()
	serializeSize     func() uintptr
	serializeFn       func(data uintptr, size uintptr) bool
	unserializeFn     func(data uintptr, size uintptr) bool
	loadGame          func(info uintptr) bool
	loadGameSpecial   func(gameType uint32, info uintptr, numInfo uintptr) bool
	hasLoadGameSpecial bool
	unloadGame        func()
	getMemoryData     func(id uint32) uintptr
	getMemorySize     func(id uint32) uintptr

	setEnvironment     func(cb uintptr)
	setVideoRefresh    func(cb uintptr)
	setAudioSample     func(cb uintptr)
	setAudioSampleBatch func(cb uintptr)
	setInputPoll       func(cb uintptr)
	setInputState      func(cb uintptr)
}

// requiredSymbols is the fixed roster of §4.1; any missing entry fails
// plugin open with a *LoadError.
var requiredSymbols = []string{
	"retro_init", "retro_deinit",
	"retro_get_system_info", "retro_get_system_av_info", "retro_get_region",
	"retro_set_controller_port_device", "retro_reset", "retro_run",
	"retro_serialize_size", "retro_serialize", "retro_unserialize",
	"retro_load_game", "retro_unload_game",
	"retro_get_memory_data", "retro_get_memory_size",
	"retro_set_environment", "retro_set_video_refresh",
	"retro_set_audio_sample", "retro_set_audio_sample_batch",
	"retro_set_input_poll", "retro_set_input_state",
}

// loadTable opens path and resolves every roster symbol, failing fast on
// the first missing required one.
func loadTable(path string) (uintptr, *table, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, nil, fmt.Errorf("plugin: dlopen %s: %w", path, err)
	}

	for _, name := range requiredSymbols {
		if _, err := purego.Dlsym(handle, name); err != nil {
			return handle, nil, &LoadError{Path: path, Symbol: name}
		}
	}

	t := &table{path: path}
	purego.RegisterLibFunc(&t.initFn, handle, "retro_init")
	purego.RegisterLibFunc(&t.deinitFn, handle, "retro_deinit")
	purego.RegisterLibFunc(&t.getSystemInfo, handle, "retro_get_system_info")
	purego.RegisterLibFunc(&t.getSystemAVInfo, handle, "retro_get_system_av_info")
	purego.RegisterLibFunc(&t.getRegion, handle, "retro_get_region")
	purego.RegisterLibFunc(&t.setControllerPort, handle, "retro_set_controller_port_device")
	purego.RegisterLibFunc(&t.resetFn, handle, "retro_reset")
	purego.RegisterLibFunc(&t.runFn, handle, "retro_run")
	purego.RegisterLibFunc(&t.serializeSize, handle, "retro_serialize_size")
	purego.RegisterLibFunc(&t.serializeFn, handle, "retro_serialize")
	purego.RegisterLibFunc(&t.unserializeFn, handle, "retro_unserialize")
	purego.RegisterLibFunc(&t.loadGame, handle, "retro_load_game")
	purego.RegisterLibFunc(&t.unloadGame, handle, "retro_unload_game")
	purego.RegisterLibFunc(&t.getMemoryData, handle, "retro_get_memory_data")
	purego.RegisterLibFunc(&t.getMemorySize, handle, "retro_get_memory_size")
	purego.RegisterLibFunc(&t.setEnvironment, handle, "retro_set_environment")
	purego.RegisterLibFunc(&t.setVideoRefresh, handle, "retro_set_video_refresh")
	purego.RegisterLibFunc(&t.setAudioSample, handle, "retro_set_audio_sample")
	purego.RegisterLibFunc(&t.setAudioSampleBatch, handle, "retro_set_audio_sample_batch")
	purego.RegisterLibFunc(&t.setInputPoll, handle, "retro_set_input_poll")
	purego.RegisterLibFunc(&t.setInputState, handle, "retro_set_input_state")

	if _, err := purego.Dlsym(handle, "retro_load_game_special"); err == nil {
		purego.RegisterLibFunc(&t.loadGameSpecial, handle, "retro_load_game_special")
		t.hasLoadGameSpecial = true
	}

	return handle, t, nil
}
