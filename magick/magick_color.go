package magick

import (
	"errors"
	"fmt"
)

var ErrInvalidColor = errors.New("invalid color")

// MagickColor owns a native color.
type MagickColor struct {
	handle *nativeMagickColor
}

// NewMagickColor parses value with the ImageMagick color syntax, for example
// "#ff0000", "rgba(0,0,255,0.5)" or "purple".
func NewMagickColor(value string) (*MagickColor, error) {
	color := &MagickColor{handle: createNativeMagickColor()}
	if !color.handle.Initialize(value) {
		color.Dispose()
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return color, nil
}

// NewMagickColorRGBA creates a color from its channels.
func NewMagickColorRGBA(red, green, blue, alpha magickColorQuantum) *MagickColor {
	color := &MagickColor{handle: createNativeMagickColor()}
	color.handle.SetRed(red)
	color.handle.SetGreen(green)
	color.handle.SetBlue(blue)
	color.handle.SetAlpha(alpha)
	return color
}

// newMagickColor takes ownership of a color returned by the native library.
// A zero instance yields nil.
func newMagickColor(instance uintptr) *MagickColor {
	if instance == 0 {
		return nil
	}
	return &MagickColor{handle: newNativeMagickColor(instance)}
}

func (color *MagickColor) Instance() uintptr {
	if color == nil {
		return 0
	}
	return color.handle.Instance()
}

func (color *MagickColor) Dispose() {
	if color != nil {
		color.handle.Dispose()
	}
}

func (color *MagickColor) Red() magickColorQuantum   { return color.handle.Red() }
func (color *MagickColor) Green() magickColorQuantum { return color.handle.Green() }
func (color *MagickColor) Blue() magickColorQuantum  { return color.handle.Blue() }
func (color *MagickColor) Alpha() magickColorQuantum { return color.handle.Alpha() }
func (color *MagickColor) IsCMYK() bool              { return color.handle.IsCMYK() }

// FuzzyEquals reports whether other is within fuzz of this color on every channel.
func (color *MagickColor) FuzzyEquals(other IMagickColor[magickColorQuantum], fuzz magickColorQuantum) bool {
	return color.handle.FuzzyEquals(other, fuzz)
}

func (color *MagickColor) String() string {
	return fmt.Sprintf("rgba(%v,%v,%v,%v)", color.Red(), color.Green(), color.Blue(), color.Alpha())
}
