package magick

import "magickgen/pkg/native"

// QuantumType is satisfied by the pixel channel type of every native build.
type QuantumType interface {
	~uint8 | ~uint16 | ~float32
}

// IMagickColor is a color of a native build with channel type TQuantum.
type IMagickColor[TQuantum QuantumType] interface {
	native.Handle
	Red() TQuantum
	Green() TQuantum
	Blue() TQuantum
	Alpha() TQuantum
}

// IMagickImage is an image of a native build with channel type TQuantum.
type IMagickImage[TQuantum QuantumType] interface {
	native.Handle
	Width() uint
	Height() uint
	GetPixelColor(x, y int) (IMagickColor[TQuantum], error)
}

// LogDelegate receives the log events of the native library. The event type
// is a bit of LogEvents and text is a native string.
type LogDelegate func(eventType uintptr, text uintptr) uintptr

var (
	_ IMagickColor[magickColorQuantum] = (*MagickColor)(nil)
	_ IMagickImage[magickImageQuantum] = (*MagickImage)(nil)
)
