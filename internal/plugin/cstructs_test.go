package plugin

import (
	"runtime"
	"unsafe"

	"testing"
)

func TestCStringReadsUntilNUL(t *testing.T) {
	buf := append([]byte("hello"), 0)
	got := cString(uintptr(unsafe.Pointer(&buf[0])))
	runtime.KeepAlive(buf)
	if got != "hello" {
		t.Fatalf("cString() = %q, want hello", got)
	}
}

func TestCStringNilPointer(t *testing.T) {
	if cString(0) != "" {
		t.Fatal("expected empty string for a nil pointer")
	}
}

func TestParseMessage(t *testing.T) {
	msg := append([]byte("low battery"), 0)
	buf := make([]byte, 16)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	writePointer(addr, uintptr(unsafe.Pointer(&msg[0])))
	writeUint32(addr+8, 120)

	got := parseMessage(addr)
	runtime.KeepAlive(msg)
	if got.Msg != "low battery" || got.Frames != 120 {
		t.Fatalf("parseMessage() = %+v", got)
	}
}

func TestParseVariablesWalksUntilNullKey(t *testing.T) {
	k1 := append([]byte("key1"), 0)
	v1 := append([]byte("val1"), 0)
	k2 := append([]byte("key2"), 0)
	v2 := append([]byte("val2"), 0)

	buf := make([]byte, variableStructSize*3) // third entry left zeroed as terminator
	addr := uintptr(unsafe.Pointer(&buf[0]))
	writePointer(addr, uintptr(unsafe.Pointer(&k1[0])))
	writePointer(addr+8, uintptr(unsafe.Pointer(&v1[0])))
	writePointer(addr+variableStructSize, uintptr(unsafe.Pointer(&k2[0])))
	writePointer(addr+variableStructSize+8, uintptr(unsafe.Pointer(&v2[0])))

	vars := parseVariables(addr)
	runtime.KeepAlive(k1)
	runtime.KeepAlive(v1)
	runtime.KeepAlive(k2)
	runtime.KeepAlive(v2)

	if len(vars) != 2 {
		t.Fatalf("len(vars) = %d, want 2", len(vars))
	}
	if vars[0].Key != "key1" || vars[0].Value != "val1" {
		t.Errorf("vars[0] = %+v", vars[0])
	}
	if vars[1].Key != "key2" || vars[1].Value != "val2" {
		t.Errorf("vars[1] = %+v", vars[1])
	}
}

func TestParseInputDescriptorsTerminatesOnNullDescription(t *testing.T) {
	desc := append([]byte("Jump"), 0)
	buf := make([]byte, inputDescriptorSize*2)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	writeUint32(addr, 0)
	writeUint32(addr+4, 1) // device = RETRO_DEVICE_JOYPAD
	writeUint32(addr+8, 0)
	writeUint32(addr+12, 8) // id = RETRO_DEVICE_ID_JOYPAD_A
	writePointer(addr+16, uintptr(unsafe.Pointer(&desc[0])))

	descs := parseInputDescriptors(addr)
	runtime.KeepAlive(desc)

	if len(descs) != 1 {
		t.Fatalf("len(descs) = %d, want 1", len(descs))
	}
	if descs[0].Description != "Jump" || descs[0].Device != 1 || descs[0].ID != 8 {
		t.Errorf("descs[0] = %+v", descs[0])
	}
}

func TestParseCoreOptionDefinitionsReadsValuesAndDefault(t *testing.T) {
	key := append([]byte("difficulty"), 0)
	desc := append([]byte("Difficulty"), 0)
	info := append([]byte("Game difficulty"), 0)
	val1 := append([]byte("easy"), 0)
	val2 := append([]byte("hard"), 0)
	def := append([]byte("easy"), 0)

	buf := make([]byte, coreOptionDefinitionSize*2) // second entry zeroed: terminator
	addr := uintptr(unsafe.Pointer(&buf[0]))
	writePointer(addr, uintptr(unsafe.Pointer(&key[0])))
	writePointer(addr+8, uintptr(unsafe.Pointer(&desc[0])))
	writePointer(addr+16, uintptr(unsafe.Pointer(&info[0])))
	writePointer(addr+coreOptionValuesOffset, uintptr(unsafe.Pointer(&val1[0])))
	writePointer(addr+coreOptionValuesOffset+coreOptionValueStride, uintptr(unsafe.Pointer(&val2[0])))
	writePointer(addr+coreOptionDefaultOffset, uintptr(unsafe.Pointer(&def[0])))

	defs := parseCoreOptionDefinitions(addr)
	runtime.KeepAlive(key)
	runtime.KeepAlive(desc)
	runtime.KeepAlive(info)
	runtime.KeepAlive(val1)
	runtime.KeepAlive(val2)
	runtime.KeepAlive(def)

	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, want 1", len(defs))
	}
	d := defs[0]
	if d.Key != "difficulty" || d.DefaultValue != "easy" {
		t.Errorf("definition = %+v", d)
	}
	if len(d.Values) != 2 || d.Values[0] != "easy" || d.Values[1] != "hard" {
		t.Errorf("Values = %+v", d.Values)
	}
}

func TestParseDiskControlInterfaceBaseLeavesExtFieldsZero(t *testing.T) {
	buf := make([]byte, 56)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	for i := 0; i < 7; i++ {
		writePointer(addr+uintptr(i*8), uintptr(0x1000+i))
	}

	iface := parseDiskControlInterfaceBase(addr)
	if iface.SetEjectState != 0x1000 || iface.AddImageIndex != 0x1006 {
		t.Errorf("base fields = %+v", iface)
	}
	if iface.SetInitialImage != 0 || iface.GetImagePath != 0 || iface.GetImageLabel != 0 {
		t.Errorf("ext-only fields should be zero, got %+v", iface)
	}
}

func TestParseDiskControlInterfaceReadsAllTenFields(t *testing.T) {
	buf := make([]byte, 80)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	for i := 0; i < 10; i++ {
		writePointer(addr+uintptr(i*8), uintptr(0x2000+i))
	}

	iface := parseDiskControlInterface(addr)
	if iface.SetEjectState != 0x2000 || iface.GetImageLabel != 0x2009 {
		t.Errorf("full interface = %+v", iface)
	}
}

func TestReadAudioBufferCallback(t *testing.T) {
	if cb, present := readAudioBufferCallback(0); present || cb != 0 {
		t.Fatal("expected null data to clear the callback")
	}

	buf := make([]byte, 8)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	writePointer(addr, 0xdeadbeef)
	cb, present := readAudioBufferCallback(addr)
	if !present || cb != 0xdeadbeef {
		t.Fatalf("readAudioBufferCallback() = (%#x,%v), want (0xdeadbeef,true)", cb, present)
	}
}
