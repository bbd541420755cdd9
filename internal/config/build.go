package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownQuantum  = errors.New("unknown quantum")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Quantum selects the pixel channel representation of the native build.
type Quantum string

const (
	Q8      Quantum = "Q8"
	Q16     Quantum = "Q16"
	Q16HDRI Quantum = "Q16-HDRI"
)

var quantums = []Quantum{Q8, Q16, Q16HDRI}

// ParseQuantum accepts the quantum names case-insensitively, with or without
// the dash before HDRI.
func ParseQuantum(value string) (Quantum, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(value), "-", "")
	for _, quantum := range quantums {
		if strings.ReplaceAll(string(quantum), "-", "") == normalized {
			return quantum, nil
		}
	}

	return "", fmt.Errorf("%q: %w", value, ErrUnknownQuantum)
}

// GoType is the Go type of one pixel channel.
func (q Quantum) GoType() string {
	switch q {
	case Q8:
		return "uint8"
	case Q16HDRI:
		return "float32"
	default:
		return "uint16"
	}
}

// Platform selects the architectures the generated code dispatches to.
type Platform string

const (
	AnyCPU Platform = "AnyCPU"
	X64    Platform = "x64"
	X86    Platform = "x86"
	Arm64  Platform = "arm64"
)

var platforms = []Platform{AnyCPU, X64, X86, Arm64}

func ParsePlatform(value string) (Platform, error) {
	for _, platform := range platforms {
		if strings.EqualFold(string(platform), value) {
			return platform, nil
		}
	}

	return "", fmt.Errorf("%q: %w", value, ErrUnknownPlatform)
}

// Architectures lists the native entry point sets, most specific first.
func (p Platform) Architectures() []string {
	switch p {
	case X64:
		return []string{"X64"}
	case X86:
		return []string{"X86"}
	case Arm64:
		return []string{"ARM64"}
	default:
		return []string{"ARM64", "X64", "X86"}
	}
}

// IsMultiArch reports whether the architecture is selected at run time.
func (p Platform) IsMultiArch() bool {
	return len(p.Architectures()) > 1
}

// RuntimeIdentifiers lists the NuGet runtime identifiers shipping native
// binaries for the platform.
func (p Platform) RuntimeIdentifiers() []string {
	switch p {
	case X64:
		return []string{"linux-x64", "osx-x64", "win-x64"}
	case X86:
		return []string{"win-x86"}
	case Arm64:
		return []string{"linux-arm64", "osx-arm64", "win-arm64"}
	default:
		return []string{"linux-arm64", "linux-x64", "osx-arm64", "osx-x64", "win-arm64", "win-x64", "win-x86"}
	}
}

// LibraryName is the native library file base name for one architecture,
// e.g. Magick.Native-Q16-HDRI-x64.
func LibraryName(base string, quantum Quantum, arch string) string {
	return fmt.Sprintf("%s-%s-%s", base, quantum, strings.ToLower(arch))
}
