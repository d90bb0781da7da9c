// Package abi mirrors the parts of the retro-plugin ABI the host needs:
// environment command numbers, pixel format and memory id constants, and
// the C struct layouts exchanged across the environment callback.
package abi

// Environment command numbers. Unknown commands must be left unhandled by
// the broker rather than added here speculatively.
const (
	EnvGetOverscan                   = 2
	EnvGetCanDupe                    = 3
	EnvSetMessage                    = 6
	EnvGetSystemDirectory            = 9
	EnvSetPixelFormat                = 10
	EnvSetInputDescriptors           = 11
	EnvSetDiskControlInterface       = 13
	EnvGetVariable                   = 15
	EnvSetVariables                  = 16
	EnvGetVariableUpdate             = 17
	EnvGetLogInterface               = 27
	EnvGetSaveDirectory              = 31
	EnvGetInputBitmasks              = 51
	EnvGetCoreOptionsVersion         = 52
	EnvSetCoreOptions                = 53
	EnvSetCoreOptionsIntl            = 54
	EnvSetCoreOptionsDisplay         = 55
	EnvGetDiskControlInterfaceVer    = 57
	EnvSetDiskControlExtInterface    = 58
	EnvSetAudioBufferStatusCallback  = 62
	EnvSetMinimumAudioLatency        = 63
)

// Pixel formats as passed to EnvSetPixelFormat.
const (
	PixelFormat0RGB1555 = 0
	PixelFormatXRGB8888 = 1
	PixelFormatRGB565   = 2
)

// Memory ids as passed to get_memory_data/get_memory_size.
const (
	MemorySaveRAM = 0
	MemoryRTC     = 1
	MemorySystemRAM = 2
	MemoryVideoRAM  = 3
)

// Joypad device ids, as queried by input_state and carried in input
// bitmasks. RETRO_DEVICE_ID_JOYPAD_MASK selects the whole-mask query.
const (
	DeviceIDJoypadB      = 0
	DeviceIDJoypadY      = 1
	DeviceIDJoypadSelect = 2
	DeviceIDJoypadStart  = 3
	DeviceIDJoypadUp     = 4
	DeviceIDJoypadDown   = 5
	DeviceIDJoypadLeft   = 6
	DeviceIDJoypadRight  = 7
	DeviceIDJoypadA      = 8
	DeviceIDJoypadX      = 9
	DeviceIDJoypadL      = 10
	DeviceIDJoypadR      = 11
	DeviceIDJoypadL2     = 12
	DeviceIDJoypadR2     = 13
	DeviceIDJoypadL3     = 14
	DeviceIDJoypadR3     = 15
	DeviceIDJoypadMask   = 256
)

const DeviceJoypad = 1

// Log levels as passed to the retro_log_callback installed by
// GET_LOG_INTERFACE.
const (
	LogLevelDebug = 0
	LogLevelInfo  = 1
	LogLevelWarn  = 2
	LogLevelError = 3
)

// GameInfo mirrors struct retro_game_info: the path/data/size handed to
// load_game. Meta is unused by this host (no core ever asked for it).
type GameInfo struct {
	Path string
	Data []byte
	Meta string
}

// SystemInfo mirrors struct retro_system_info as filled in by
// get_system_info.
type SystemInfo struct {
	LibraryName     string
	LibraryVersion  string
	ValidExtensions string
	NeedFullpath    bool
	BlockExtract    bool
}

// SystemTiming mirrors struct retro_system_timing.
type SystemTiming struct {
	FPS        float64
	SampleRate float64
}

// GameGeometry mirrors struct retro_game_geometry.
type GameGeometry struct {
	BaseWidth   uint32
	BaseHeight  uint32
	MaxWidth    uint32
	MaxHeight   uint32
	AspectRatio float32
}

// SystemAVInfo mirrors struct retro_system_av_info, valid only after
// load_game succeeds.
type SystemAVInfo struct {
	Geometry GameGeometry
	Timing   SystemTiming
}

// Variable mirrors struct retro_variable: a key plus a "NAME; DEFAULT|ALT|..."
// value spec (SET_VARIABLES) or a resolved current value (GET_VARIABLE).
type Variable struct {
	Key   string
	Value string
}

// CoreOptionDefinition mirrors struct retro_core_option_definition, one
// entry of the v1 core-options array used by SET_CORE_OPTIONS and the
// "us" arm of SET_CORE_OPTIONS_INTL.
type CoreOptionDefinition struct {
	Key          string
	Desc         string
	Info         string
	Values       []string
	DefaultValue string
}

// CoreOptionDisplay mirrors struct retro_core_option_display.
type CoreOptionDisplay struct {
	Key     string
	Visible bool
}

// InputDescriptor mirrors one entry of struct retro_input_descriptor; the
// list is terminated by a zeroed entry (Description == "").
type InputDescriptor struct {
	Port        uint32
	Device      uint32
	Index       uint32
	ID          uint32
	Description string
}

// Message mirrors struct retro_message, used by SET_MESSAGE.
type Message struct {
	Msg    string
	Frames uint32
}

// DiskControlInterface is the opaque function-pointer table captured by
// SET_DISK_CONTROL_INTERFACE / SET_DISK_CONTROL_EXT_INTERFACE. The host
// never calls through it (no Non-goal media switching beyond capture), it
// only retains the handle for the plugin's lifetime.
type DiskControlInterface struct {
	SetEjectState       uintptr
	GetEjectState       uintptr
	GetImageIndex       uintptr
	SetImageIndex       uintptr
	GetNumImages        uintptr
	ReplaceImageIndex   uintptr
	AddImageIndex       uintptr
	SetInitialImage     uintptr
	GetImagePath        uintptr
	GetImageLabel       uintptr
}

// AudioBufferStatusCallback is the function pointer installed by
// SET_AUDIO_BUFFER_STATUS_CALLBACK; the host does not call it itself, it
// only records the pointer for completeness per the descriptor's
// audio_buffer_status field.
type AudioBufferStatusCallback = uintptr
