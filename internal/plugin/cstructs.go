package plugin

import "retrohost/internal/abi"

// Struct layouts below mirror the C side of the retro-plugin ABI, amd64
// packing (8-byte aligned pointers/doubles, no pragma pack). They are
// read and written through raw uintptr arithmetic because the host has
// no cgo: there is no compiler enforcing these offsets, so a change on
// either side of the ABI has to be made in lockstep with this file.

const (
	systemInfoSize = 32 // 3 pointers + 2 bool, padded to 8
	gameInfoSize   = 32 // path*, data*, size_t, meta*
)

func parseSystemInfo(data uintptr) abi.SystemInfo {
	return abi.SystemInfo{
		LibraryName:     cString(readPointer(data)),
		LibraryVersion:  cString(readPointer(data + 8)),
		ValidExtensions: cString(readPointer(data + 16)),
		NeedFullpath:    readBool(data + 24),
		BlockExtract:    readBool(data + 25),
	}
}

// retro_game_geometry is 20 bytes but the following retro_system_timing
// starts with a double, so the compiler pads geometry to 24 inside
// retro_system_av_info.
func parseSystemAVInfo(data uintptr) abi.SystemAVInfo {
	return abi.SystemAVInfo{
		Geometry: abi.GameGeometry{
			BaseWidth:   readUint32(data),
			BaseHeight:  readUint32(data + 4),
			MaxWidth:    readUint32(data + 8),
			MaxHeight:   readUint32(data + 12),
			AspectRatio: readFloat32(data + 16),
		},
		Timing: abi.SystemTiming{
			FPS:        readFloat64(data + 24),
			SampleRate: readFloat64(data + 32),
		},
	}
}

func parseMessage(data uintptr) abi.Message {
	return abi.Message{
		Msg:    cString(readPointer(data)),
		Frames: readUint32(data + 8),
	}
}

const variableStructSize = 16 // key*, value*

// parseVariables walks a null-key-terminated retro_variable array.
func parseVariables(data uintptr) []abi.Variable {
	var out []abi.Variable
	for i := 0; ; i++ {
		entry := data + uintptr(i*variableStructSize)
		keyPtr := readPointer(entry)
		if keyPtr == 0 {
			break
		}
		out = append(out, abi.Variable{
			Key:   cString(keyPtr),
			Value: cString(readPointer(entry + 8)),
		})
	}
	return out
}

const inputDescriptorSize = 24 // port,device,index,id (4 each) + description*

// parseInputDescriptors walks a retro_input_descriptor array, terminated
// by a zeroed entry (description == NULL, per spec.md §4.2).
func parseInputDescriptors(data uintptr) []abi.InputDescriptor {
	var out []abi.InputDescriptor
	for i := 0; ; i++ {
		entry := data + uintptr(i*inputDescriptorSize)
		descPtr := readPointer(entry + 16)
		if descPtr == 0 {
			break
		}
		out = append(out, abi.InputDescriptor{
			Port:        readUint32(entry),
			Device:      readUint32(entry + 4),
			Index:       readUint32(entry + 8),
			ID:          readUint32(entry + 12),
			Description: cString(descPtr),
		})
	}
	return out
}

// parseDiskControlInterfaceBase reads the 7-pointer retro_disk_control_callback
// payload carried by SET_DISK_CONTROL_INTERFACE (cmd 13). The trailing three
// fields that only exist on the ext struct (cmd 58) are left zero.
func parseDiskControlInterfaceBase(data uintptr) abi.DiskControlInterface {
	return abi.DiskControlInterface{
		SetEjectState:     readPointer(data),
		GetEjectState:     readPointer(data + 8),
		GetImageIndex:     readPointer(data + 16),
		SetImageIndex:     readPointer(data + 24),
		GetNumImages:      readPointer(data + 32),
		ReplaceImageIndex: readPointer(data + 40),
		AddImageIndex:     readPointer(data + 48),
	}
}

// parseDiskControlInterface reads the full 10-pointer
// retro_disk_control_ext_callback payload carried by
// SET_DISK_CONTROL_EXT_INTERFACE (cmd 58).
func parseDiskControlInterface(data uintptr) abi.DiskControlInterface {
	return abi.DiskControlInterface{
		SetEjectState:     readPointer(data),
		GetEjectState:     readPointer(data + 8),
		GetImageIndex:     readPointer(data + 16),
		SetImageIndex:     readPointer(data + 24),
		GetNumImages:      readPointer(data + 32),
		ReplaceImageIndex: readPointer(data + 40),
		AddImageIndex:     readPointer(data + 48),
		SetInitialImage:   readPointer(data + 56),
		GetImagePath:      readPointer(data + 64),
		GetImageLabel:     readPointer(data + 72),
	}
}

// retro_core_option_value{const char* value; const char* label;}, 128
// entries max per option (the ABI's fixed array), terminated early by a
// null value pointer.
const (
	coreOptionDefinitionSize = 2080
	coreOptionValuesOffset   = 24
	coreOptionValueStride    = 16
	coreOptionMaxValues      = 128
	coreOptionDefaultOffset  = 2072
)

func parseCoreOptionDefinitions(data uintptr) []abi.CoreOptionDefinition {
	var out []abi.CoreOptionDefinition
	for i := 0; ; i++ {
		entry := data + uintptr(i*coreOptionDefinitionSize)
		keyPtr := readPointer(entry)
		if keyPtr == 0 {
			break
		}
		def := abi.CoreOptionDefinition{
			Key:          cString(keyPtr),
			Desc:         cString(readPointer(entry + 8)),
			Info:         cString(readPointer(entry + 16)),
			DefaultValue: cString(readPointer(entry + coreOptionDefaultOffset)),
		}
		for j := 0; j < coreOptionMaxValues; j++ {
			valEntry := entry + coreOptionValuesOffset + uintptr(j*coreOptionValueStride)
			valPtr := readPointer(valEntry)
			if valPtr == 0 {
				break
			}
			def.Values = append(def.Values, cString(valPtr))
		}
		out = append(out, def)
	}
	return out
}

// parseCoreOptionsIntl splits retro_core_options_intl{us*, local*}. local
// may be absent (null); the broker only consumes us (spec.md §4.2).
func parseCoreOptionsIntl(data uintptr) (us, local []abi.CoreOptionDefinition) {
	if usPtr := readPointer(data); usPtr != 0 {
		us = parseCoreOptionDefinitions(usPtr)
	}
	if localPtr := readPointer(data + 8); localPtr != 0 {
		local = parseCoreOptionDefinitions(localPtr)
	}
	return us, local
}

func parseCoreOptionDisplay(data uintptr) abi.CoreOptionDisplay {
	return abi.CoreOptionDisplay{
		Key:     cString(readPointer(data)),
		Visible: readBool(data + 8),
	}
}

// readAudioBufferCallback handles SET_AUDIO_BUFFER_STATUS_CALLBACK: a
// NULL data pointer clears the callback; otherwise data points at a
// one-field struct holding the function pointer itself.
func readAudioBufferCallback(data uintptr) (abi.AudioBufferStatusCallback, bool) {
	if data == 0 {
		return 0, false
	}
	cb := readPointer(data)
	return abi.AudioBufferStatusCallback(cb), cb != 0
}
