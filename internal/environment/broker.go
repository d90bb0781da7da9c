package environment

import (
	"retrohost/internal/abi"
	"retrohost/internal/diag"
)

// Broker implements the plugin -> host environment command surface of
// spec.md §4.2. It is not safe for concurrent use by design (spec §5:
// the environment store is mutated only during environment-callback
// dispatch, on the single cooperative thread).
type Broker struct {
	Store  *Store
	Logger *diag.Logger

	SysDir string // descriptor.sys_dir, written out for GET_SYSTEM_DIRECTORY

	DiskControl    *abi.DiskControlInterface
	AudioBufferCB  abi.AudioBufferStatusCallback
	AudioBufferSet bool

	// AudioLatencyOverrideFrames is set by SET_MINIMUM_AUDIO_LATENCY when
	// the requested latency resolves to fewer than 30 frames; zero means
	// no override.
	AudioLatencyOverrideFrames uint32

	FPS float64 // needed to convert SET_MINIMUM_AUDIO_LATENCY's ms to frames

	inputDescriptors []abi.InputDescriptor

	// quirkOverrides is a per-plugin patch table, not a general rule
	// (spec.md §4.2): gpsp_save_method is always forced to "libretro".
	quirkOverrides map[string]string
}

// NewBroker constructs a broker over an already-initialized Store.
func NewBroker(store *Store, logger *diag.Logger, sysDir string, fps float64) *Broker {
	return &Broker{
		Store:  store,
		Logger: logger,
		SysDir: sysDir,
		FPS:    fps,
		quirkOverrides: map[string]string{
			"gpsp_save_method": "libretro",
		},
	}
}

// HandleGetOverscan implements cmd 2.
func (b *Broker) HandleGetOverscan() bool { return b.Store.Overscan }

// HandleGetCanDupe implements cmd 3.
func (b *Broker) HandleGetCanDupe() bool { return b.Store.CanDupe }

// HandleSetMessage implements cmd 6: log the message string.
func (b *Broker) HandleSetMessage(msg abi.Message) {
	b.Logger.Log(diag.ComponentEnvironment, diag.LevelInfo, msg.Msg)
}

// HandleGetSystemDirectory implements cmd 9.
func (b *Broker) HandleGetSystemDirectory() string { return b.SysDir }

// HandleSetPixelFormat implements cmd 10: accept RGB565 only.
func (b *Broker) HandleSetPixelFormat(format uint32) bool {
	return format == abi.PixelFormatRGB565
}

// HandleSetInputDescriptors implements cmd 11: record, terminated by a
// zeroed entry (caller passes the list already truncated at the
// terminator).
func (b *Broker) HandleSetInputDescriptors(descriptors []abi.InputDescriptor) {
	b.inputDescriptors = descriptors
}

// InputDescriptors returns the last recorded descriptor list.
func (b *Broker) InputDescriptors() []abi.InputDescriptor { return b.inputDescriptors }

// HandleSetDiskControlInterface implements cmd 13: copy base interface
// into ext storage.
func (b *Broker) HandleSetDiskControlInterface(iface abi.DiskControlInterface) {
	b.DiskControl = &iface
}

// HandleGetVariable implements cmd 15: look up key, apply the quirk
// override if present, else return the stored value and whether it was
// found.
func (b *Broker) HandleGetVariable(key string) (value string, ok bool) {
	if forced, quirk := b.quirkOverrides[key]; quirk {
		return forced, true
	}
	return b.Store.Get(key)
}

// HandleSetVariables implements cmd 16: parse each key/value where value
// is "NAME; DEFAULT|ALT|...", seeding the store with DEFAULT. Last
// writer wins against a prior SET_CORE_OPTIONS/SET_CORE_OPTIONS_INTL
// call for the same key.
func (b *Broker) HandleSetVariables(vars []abi.Variable) {
	for _, v := range vars {
		_, def := ParseVariableSpec(v.Value)
		if forced, quirk := b.quirkOverrides[v.Key]; quirk {
			def = forced
		}
		b.Store.Set(v.Key, def)
	}
}

// HandleGetVariableUpdate implements cmd 17: always false in v1.
func (b *Broker) HandleGetVariableUpdate() bool { return false }

// HandleGetLogInterface implements cmd 27: the host always supports a log
// sink backed by Logger, so the command is always handled; installing
// the actual C-callable function pointer into the plugin's struct is the
// plugin package's job (it owns the only object that can synthesize a
// trampoline).
func (b *Broker) HandleGetLogInterface() bool { return true }

// HandleLogPrintf records one message the plugin sent through its
// installed log interface, tagged by the plugin's own severity level.
func (b *Broker) HandleLogPrintf(level uint32, message string) {
	b.Logger.Log(diag.ComponentCore, logLevelToDiag(level), message)
}

func logLevelToDiag(level uint32) diag.Level {
	switch level {
	case abi.LogLevelDebug:
		return diag.LevelDebug
	case abi.LogLevelWarn:
		return diag.LevelWarning
	case abi.LogLevelError:
		return diag.LevelError
	default:
		return diag.LevelInfo
	}
}

// HandleGetInputBitmasks implements cmd 51.
func (b *Broker) HandleGetInputBitmasks() bool { return b.Store.InputBitmasksSupported }

// HandleGetCoreOptionsVersion implements cmd 52.
func (b *Broker) HandleGetCoreOptionsVersion() uint32 { return b.Store.CoreOptionsVersion }

// HandleSetCoreOptions implements cmd 53: seed the store from the v1
// option-definition array's default value strings.
func (b *Broker) HandleSetCoreOptions(defs []abi.CoreOptionDefinition) {
	for _, d := range defs {
		value := d.DefaultValue
		if forced, quirk := b.quirkOverrides[d.Key]; quirk {
			value = forced
		}
		b.Store.Set(d.Key, value)
	}
}

// HandleSetCoreOptionsIntl implements cmd 54: use the "us" arm as the
// authoritative v1 option-definition array.
func (b *Broker) HandleSetCoreOptionsIntl(us []abi.CoreOptionDefinition) {
	b.HandleSetCoreOptions(us)
}

// HandleSetCoreOptionsDisplay implements cmd 55: update the visibility
// bit for key.
func (b *Broker) HandleSetCoreOptionsDisplay(display abi.CoreOptionDisplay) {
	b.Store.SetVisible(display.Key, display.Visible)
}

// HandleGetDiskControlInterfaceVersion implements cmd 57.
func (b *Broker) HandleGetDiskControlInterfaceVersion() uint32 {
	return b.Store.DiskControlIfaceVer
}

// HandleSetDiskControlExtInterface implements cmd 58: overwrite the full
// ext-interface record.
func (b *Broker) HandleSetDiskControlExtInterface(iface abi.DiskControlInterface) {
	b.DiskControl = &iface
}

// HandleSetAudioBufferStatusCallback implements cmd 62: install or
// clear the audio-buffer-status callback pointer.
func (b *Broker) HandleSetAudioBufferStatusCallback(cb abi.AudioBufferStatusCallback, present bool) {
	if present {
		b.AudioBufferCB = cb
		b.AudioBufferSet = true
	} else {
		b.AudioBufferCB = 0
		b.AudioBufferSet = false
	}
}

// HandleSetMinimumAudioLatency implements cmd 63: compute
// frames = ms*fps/1000; if <30 record as override, else ignore.
func (b *Broker) HandleSetMinimumAudioLatency(ms uint32) {
	frames := uint32(float64(ms) * b.FPS / 1000.0)
	if frames < 30 {
		b.AudioLatencyOverrideFrames = frames
	}
}
