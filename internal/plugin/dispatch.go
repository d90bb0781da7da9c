package plugin

import "retrohost/internal/abi"

// dispatchEnvironment implements retro_environment_t by routing each
// known command into the broker's corresponding Handle* method, and
// marshalling the command's opaque data pointer into or out of the
// broker's Go-native types. Unrecognized commands return false, which
// is the ABI's documented "unsupported" signal, not an error.
func (b *Binding) dispatchEnvironment(cmd uint32, data uintptr) bool {
	switch cmd {
	case abi.EnvGetOverscan:
		writeBool(data, b.Broker.HandleGetOverscan())
		return true

	case abi.EnvGetCanDupe:
		writeBool(data, b.Broker.HandleGetCanDupe())
		return true

	case abi.EnvSetMessage:
		b.Broker.HandleSetMessage(parseMessage(data))
		return true

	case abi.EnvGetSystemDirectory:
		writePointer(data, b.retainCString(b.Broker.HandleGetSystemDirectory()))
		return true

	case abi.EnvSetPixelFormat:
		return b.Broker.HandleSetPixelFormat(readUint32(data))

	case abi.EnvSetInputDescriptors:
		b.Broker.HandleSetInputDescriptors(parseInputDescriptors(data))
		return true

	case abi.EnvSetDiskControlInterface:
		b.Broker.HandleSetDiskControlInterface(parseDiskControlInterfaceBase(data))
		return true

	case abi.EnvGetVariable:
		return b.handleGetVariable(data)

	case abi.EnvSetVariables:
		b.Broker.HandleSetVariables(parseVariables(data))
		return true

	case abi.EnvGetVariableUpdate:
		writeBool(data, b.Broker.HandleGetVariableUpdate())
		return true

	case abi.EnvGetLogInterface:
		if !b.Broker.HandleGetLogInterface() {
			return false
		}
		writePointer(data, b.logCB)
		return true

	case abi.EnvGetSaveDirectory:
		// This host keeps save data under the same sys_dir tree as system
		// files (spec.md §4.2); it does not maintain a separate save dir.
		writePointer(data, b.retainCString(b.Broker.HandleGetSystemDirectory()))
		return true

	case abi.EnvGetInputBitmasks:
		return b.Broker.HandleGetInputBitmasks()

	case abi.EnvGetCoreOptionsVersion:
		writeUint32(data, b.Broker.HandleGetCoreOptionsVersion())
		return true

	case abi.EnvSetCoreOptions:
		// data is a const struct retro_core_option_definition **: the
		// array's address is itself behind a pointer, same as the "us" arm
		// of SET_CORE_OPTIONS_INTL.
		b.Broker.HandleSetCoreOptions(parseCoreOptionDefinitions(readPointer(data)))
		return true

	case abi.EnvSetCoreOptionsIntl:
		us, _ := parseCoreOptionsIntl(data)
		b.Broker.HandleSetCoreOptionsIntl(us)
		return true

	case abi.EnvSetCoreOptionsDisplay:
		b.Broker.HandleSetCoreOptionsDisplay(parseCoreOptionDisplay(data))
		return true

	case abi.EnvGetDiskControlInterfaceVer:
		writeUint32(data, b.Broker.HandleGetDiskControlInterfaceVersion())
		return true

	case abi.EnvSetDiskControlExtInterface:
		b.Broker.HandleSetDiskControlExtInterface(parseDiskControlInterface(data))
		return true

	case abi.EnvSetAudioBufferStatusCallback:
		cb, present := readAudioBufferCallback(data)
		b.Broker.HandleSetAudioBufferStatusCallback(cb, present)
		return true

	case abi.EnvSetMinimumAudioLatency:
		b.Broker.HandleSetMinimumAudioLatency(readUint32(data))
		return true

	default:
		return false
	}
}

// handleGetVariable reads the input key out of the retro_variable the
// plugin passed, looks it up, and writes the resolved value pointer back
// into the same struct's value field. GET_VARIABLE is always handled: a
// miss leaves the value field null rather than reporting the command
// itself as unsupported.
func (b *Binding) handleGetVariable(data uintptr) bool {
	key := cString(readPointer(data))
	value, ok := b.Broker.HandleGetVariable(key)
	if !ok {
		writePointer(data+8, 0)
		return true
	}
	writePointer(data+8, b.retainCString(value))
	return true
}
