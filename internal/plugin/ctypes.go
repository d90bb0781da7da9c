package plugin

import "unsafe"

// cString reads a NUL-terminated C string starting at ptr. ptr==0
// returns "".
func cString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var buf []byte
	for i := 0; ; i++ {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf)
}

// readUint32 / readFloat64 / readBool read a scalar from a C pointer the
// environment callback handed the host as its opaque data argument.
func readUint32(ptr uintptr) uint32 {
	if ptr == 0 {
		return 0
	}
	return *(*uint32)(unsafe.Pointer(ptr))
}

func writeUint32(ptr uintptr, v uint32) {
	if ptr == 0 {
		return
	}
	*(*uint32)(unsafe.Pointer(ptr)) = v
}

func writeBool(ptr uintptr, v bool) {
	if ptr == 0 {
		return
	}
	var b byte
	if v {
		b = 1
	}
	*(*byte)(unsafe.Pointer(ptr)) = b
}

func readBool(ptr uintptr) bool {
	if ptr == 0 {
		return false
	}
	return *(*byte)(unsafe.Pointer(ptr)) != 0
}

// writePointer stores ptr's target address into the location *out points
// to, i.e. **char semantics for GET_SYSTEM_DIRECTORY/GET_VARIABLE.
func writePointer(out uintptr, target uintptr) {
	if out == 0 {
		return
	}
	*(*uintptr)(unsafe.Pointer(out)) = target
}

func readPointer(ptr uintptr) uintptr {
	if ptr == 0 {
		return 0
	}
	return *(*uintptr)(unsafe.Pointer(ptr))
}

func readFloat32(ptr uintptr) float32 {
	if ptr == 0 {
		return 0
	}
	return *(*float32)(unsafe.Pointer(ptr))
}

func readFloat64(ptr uintptr) float64 {
	if ptr == 0 {
		return 0
	}
	return *(*float64)(unsafe.Pointer(ptr))
}
