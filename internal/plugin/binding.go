// Package plugin loads a retro-plugin-ABI shared object with purego (no
// cgo), resolves its function table, and bridges its six callbacks and
// its environment command surface into the host's Go-native types
// (spec.md §3, §4.1, §4.2).
package plugin

import (
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"

	"retrohost/internal/abi"
	"retrohost/internal/diag"
	"retrohost/internal/environment"
)

// VideoSink receives the raw RGB565 framebuffer handed to
// retro_video_refresh_t. A nil data pointer (dupe frame) never reaches
// this interface; callbacks.go filters it.
type VideoSink interface {
	SubmitFrame(pixels []byte, width, height, pitch int)
}

// AudioSink receives interleaved signed 16-bit stereo samples, whether
// the plugin used the per-sample or the batch callback.
type AudioSink interface {
	SubmitStereo16(samples []int16)
}

// InputSource is polled once per run() and then queried per button, the
// counterpart of inputmap.Map from the plugin's point of view.
type InputSource interface {
	Poll()
	State(port, device, index, id uint32) int16
}

// Binding is one loaded plugin instance: its resolved symbol table, the
// descriptor fields the ABI fills in via get_system_info/
// get_system_av_info, and the host-side collaborators its callbacks
// bridge into.
type Binding struct {
	path   string
	handle uintptr
	table  *table

	Tag     string // host-assigned console tag, used for path layout
	Name    string // derived from the plugin filename
	Version string
	SysDir  string

	FPS        float64
	SampleRate float64

	Broker *environment.Broker
	Video  VideoSink
	Audio  AudioSink
	Input  InputSource

	// logCB is the C-callable trampoline address installed into the
	// plugin's retro_log_callback by GET_LOG_INTERFACE.
	logCB uintptr

	initialized bool
	gameLoaded  bool
	closed      bool

	// cStrings retains every C string the host has ever handed back to
	// the plugin across an environment call, since the plugin is free to
	// cache the pointer past the call's return (e.g. GET_VARIABLE
	// results). Never trimmed; option/variable churn is small.
	cStrings [][]byte
}

// Open dlopens path, resolves the required symbol roster, and derives
// Name from the file stem (the "<core>_libretro.so" convention: take
// everything before the last underscore). It does not call retro_init;
// that is a separate lifecycle step (spec.md §4.1).
func Open(path string, logger *diag.Logger) (*Binding, error) {
	handle, tbl, err := loadTable(path)
	if err != nil {
		return nil, err
	}

	b := &Binding{
		path:   path,
		handle: handle,
		table:  tbl,
		Name:   deriveName(path),
	}
	installCallbacks(b)
	return b, nil
}

func deriveName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.LastIndexByte(stem, '_'); i >= 0 {
		return stem[:i]
	}
	return stem
}

// GetSystemInfo calls retro_get_system_info and records Version; it may
// be called before Init (the ABI permits this).
func (b *Binding) GetSystemInfo() abi.SystemInfo {
	buf := make([]byte, systemInfoSize)
	b.table.getSystemInfo(uintptr(unsafe.Pointer(&buf[0])))
	info := parseSystemInfo(uintptr(unsafe.Pointer(&buf[0])))
	b.Version = info.LibraryVersion
	return info
}

// Init calls retro_init. broker must already be populated with this
// binding's SysDir; it is retained so dispatchEnvironment can reach it.
func (b *Binding) Init(broker *environment.Broker) {
	b.Broker = broker
	b.table.initFn()
	b.initialized = true
}

// LoadGame marshals a retro_game_info and calls retro_load_game. The
// path and data buffers must outlive the call, so they are kept as
// locals in this frame rather than behind a separate marshal helper.
func (b *Binding) LoadGame(romPath string, data []byte) bool {
	pathBytes := append([]byte(romPath), 0)

	buf := make([]byte, gameInfoSize)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	writePointer(addr, uintptr(unsafe.Pointer(&pathBytes[0])))
	if len(data) > 0 {
		writePointer(addr+8, uintptr(unsafe.Pointer(&data[0])))
	}
	*(*uintptr)(unsafe.Pointer(&buf[16])) = uintptr(len(data))
	// meta (offset 24) is left null; no collaborator ever asks for it.

	ok := b.table.loadGame(addr)
	b.gameLoaded = ok
	return ok
}

// GetSystemAVInfo calls retro_get_system_av_info, valid only after a
// successful LoadGame. It records FPS/SampleRate and pushes FPS into the
// broker so SET_MINIMUM_AUDIO_LATENCY can convert ms to frames.
func (b *Binding) GetSystemAVInfo() abi.SystemAVInfo {
	buf := make([]byte, 40)
	b.table.getSystemAVInfo(uintptr(unsafe.Pointer(&buf[0])))
	info := parseSystemAVInfo(uintptr(unsafe.Pointer(&buf[0])))
	b.FPS = info.Timing.FPS
	b.SampleRate = info.Timing.SampleRate
	if b.Broker != nil {
		b.Broker.FPS = info.Timing.FPS
	}
	return info
}

// RunFrame calls retro_run, which in turn drives this frame's
// input_poll/input_state/video_refresh/audio_sample(_batch) callbacks.
func (b *Binding) RunFrame() { b.table.runFn() }

// Reset calls retro_reset.
func (b *Binding) Reset() { b.table.resetFn() }

// UnloadGame calls retro_unload_game.
func (b *Binding) UnloadGame() {
	if !b.gameLoaded {
		return
	}
	b.table.unloadGame()
	b.gameLoaded = false
}

// Deinit calls retro_deinit.
func (b *Binding) Deinit() {
	if !b.initialized {
		return
	}
	b.table.deinitFn()
	b.initialized = false
}

// Close releases the shared object handle and drops this binding's hold
// on the shared global callback target. The ABI itself offers no
// retro_unload hook, but the host side still owns the dlopen handle and
// must release it exactly once, as the final lifecycle stage (spec.md
// §3's "closed").
func (b *Binding) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if current == b {
		current = nil
	}
	purego.Dlclose(b.handle)
}

// retainCString copies s into a new NUL-terminated buffer, keeps a
// reference to it for the binding's lifetime, and returns its address.
func (b *Binding) retainCString(s string) uintptr {
	buf := append([]byte(s), 0)
	b.cStrings = append(b.cStrings, buf)
	return uintptr(unsafe.Pointer(&buf[0]))
}

// --- persistence.Core ---

// GetMemorySize implements persistence.Core.
func (b *Binding) GetMemorySize(id uint32) int {
	return int(b.table.getMemorySize(id))
}

// GetMemoryData implements persistence.Core: the returned slice aliases
// the plugin's own buffer for exactly size bytes, or nil if the plugin
// has none.
func (b *Binding) GetMemoryData(id uint32) []byte {
	size := b.GetMemorySize(id)
	if size == 0 {
		return nil
	}
	ptr := b.table.getMemoryData(id)
	if ptr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)
}

// SerializeSize implements persistence.Core.
func (b *Binding) SerializeSize() int {
	return int(b.table.serializeSize())
}

// Serialize implements persistence.Core.
func (b *Binding) Serialize(buf []byte) bool {
	if len(buf) == 0 {
		return b.table.serializeFn(0, 0)
	}
	return b.table.serializeFn(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
}

// Unserialize implements persistence.Core.
func (b *Binding) Unserialize(buf []byte) bool {
	if len(buf) == 0 {
		return b.table.unserializeFn(0, 0)
	}
	return b.table.unserializeFn(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
}

// --- callback targets, invoked by callbacks.go's trampolines ---

func (b *Binding) onVideoRefresh(data uintptr, width, height, pitch int) {
	if b.Video == nil {
		return
	}
	pixels := unsafe.Slice((*byte)(unsafe.Pointer(data)), height*pitch)
	b.Video.SubmitFrame(pixels, width, height, pitch)
}

func (b *Binding) onAudioSample(left, right int16) {
	if b.Audio == nil {
		return
	}
	b.Audio.SubmitStereo16([]int16{left, right})
}

func (b *Binding) onAudioSampleBatch(samples []int16) {
	if b.Audio == nil {
		return
	}
	b.Audio.SubmitStereo16(samples)
}

func (b *Binding) onInputPoll() {
	if b.Input == nil {
		return
	}
	b.Input.Poll()
}

func (b *Binding) onInputState(port, device, index, id uint32) int16 {
	if b.Input == nil {
		return 0
	}
	return b.Input.State(port, device, index, id)
}

func (b *Binding) onLogPrintf(level uint32, fmt uintptr) {
	if b.Broker == nil {
		return
	}
	b.Broker.HandleLogPrintf(level, cString(fmt))
}
