// Package native is the run-time support of the code emitted by magickgen. It
// loads the Magick.Native library of the running architecture, binds its entry
// points and converts values crossing the native boundary.
package native

import (
	"runtime"
	"strconv"
	"strings"
)

// Arch names one native entry point set.
type Arch string

const (
	ARM64 Arch = "ARM64"
	X64   Arch = "X64"
	X86   Arch = "X86"
)

// IsArm64 reports whether the process runs on 64-bit ARM.
func IsArm64() bool {
	return runtime.GOARCH == "arm64"
}

// Is64Bit reports whether the process uses 64-bit pointers.
func Is64Bit() bool {
	return strconv.IntSize == 64
}

// CurrentArch is the architecture the generated dispatch selects for this process.
func CurrentArch() Arch {
	switch {
	case IsArm64():
		return ARM64
	case Is64Bit():
		return X64
	default:
		return X86
	}
}

func (a Arch) String() string {
	return strings.ToLower(string(a))
}
