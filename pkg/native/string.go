package native

import (
	"runtime"
	"unsafe"
)

// String is a NUL-terminated copy of a Go string, pinned for the duration of
// a native call.
type String struct {
	data   []byte
	pinner runtime.Pinner
}

func NewString(value string) *String {
	s := &String{data: make([]byte, len(value)+1)}
	copy(s.data, value)
	s.pinner.Pin(&s.data[0])
	return s
}

// NewNullableString passes nil as a null pointer.
func NewNullableString(value *string) *String {
	if value == nil {
		return &String{}
	}
	return NewString(*value)
}

func (s *String) Instance() uintptr {
	if s == nil || len(s.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s.data[0]))
}

func (s *String) Dispose() {
	if s == nil {
		return
	}
	s.pinner.Unpin()
	s.data = nil
}

// GoString copies a NUL-terminated native string. The native side keeps
// ownership of the memory.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}

	start := unsafe.Pointer(ptr)
	length := 0
	for *(*byte)(unsafe.Add(start, length)) != 0 {
		length++
	}
	return string(unsafe.Slice((*byte)(start), length))
}
