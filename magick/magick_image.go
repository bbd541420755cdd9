package magick

import (
	"errors"

	"magickgen/pkg/native"
)

var ErrEmptyBlob = errors.New("empty blob")

// magickImageState holds the values the native image entry points read
// besides the image itself.
type magickImageState struct {
	settings *MagickSettings
}

// MagickImage owns a native image together with its settings.
type MagickImage struct {
	handle *nativeMagickImage
}

// NewMagickImage creates an empty image.
func NewMagickImage() (*MagickImage, error) {
	settings := NewMagickSettings()
	handle, err := createNativeMagickImage(settings)
	if err != nil {
		settings.Dispose()
		return nil, err
	}

	handle.settings = settings
	return &MagickImage{handle: handle}, nil
}

// ReadMagickImage reads an image file. The format is detected from the
// content unless settings name one.
func ReadMagickImage(fileName string) (*MagickImage, error) {
	image, err := NewMagickImage()
	if err != nil {
		return nil, err
	}
	if err := image.Read(fileName); err != nil {
		image.Dispose()
		return nil, err
	}
	return image, nil
}

// newMagickImage takes ownership of an image returned by the native library.
func newMagickImage(instance uintptr, format string) *MagickImage {
	handle := newNativeMagickImage(instance)
	handle.settings = NewMagickSettings()
	handle.settings.SetFormat(format)
	return &MagickImage{handle: handle}
}

func (image *MagickImage) Instance() uintptr {
	if image == nil {
		return 0
	}
	return image.handle.Instance()
}

// Dispose releases the image and its settings.
func (image *MagickImage) Dispose() {
	if image == nil {
		return
	}
	image.handle.Dispose()
	image.handle.settings.Dispose()
}

// Settings are used by every read of this image.
func (image *MagickImage) Settings() *MagickSettings {
	return image.handle.settings
}

// OnWarning routes the warnings raised by this image to handler instead of
// native.WarningHandler.
func (image *MagickImage) OnWarning(handler func(*native.MagickError)) {
	image.handle.Warning = handler
}

func (image *MagickImage) Read(fileName string) error {
	image.handle.settings.SetFileName(fileName)
	return image.handle.ReadFile()
}

func (image *MagickImage) ReadBlob(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyBlob
	}
	return image.handle.ReadBlob(data, 0, uint(len(data)))
}

// Write writes the image to fileName, in the format of the extension unless
// the image has a format set.
func (image *MagickImage) Write(fileName string) error {
	image.handle.SetFileName(&fileName)
	return image.handle.WriteFile(image.handle.settings)
}

func (image *MagickImage) Width() uint  { return image.handle.Width() }
func (image *MagickImage) Height() uint { return image.handle.Height() }
func (image *MagickImage) Depth() uint  { return image.handle.Depth() }

func (image *MagickImage) SetDepth(depth uint) {
	image.handle.SetDepth(depth)
}

func (image *MagickImage) Format() string {
	return image.handle.Format()
}

// SetFormat sets the format used by the next write.
func (image *MagickImage) SetFormat(format string) {
	image.handle.SetFormat(optional(format))
	image.handle.settings.SetFormat(format)
}

func (image *MagickImage) Quality() uint {
	return image.handle.Quality()
}

func (image *MagickImage) SetQuality(quality uint) {
	image.handle.SetQuality(quality)
}

func (image *MagickImage) ColorSpace() (ColorSpace, error) {
	return image.handle.ColorSpace()
}

func (image *MagickImage) SetColorSpace(value ColorSpace) error {
	return image.handle.SetColorSpace(value)
}

func (image *MagickImage) HasAlpha() (bool, error) {
	return image.handle.HasAlpha()
}

func (image *MagickImage) SetHasAlpha(value bool) error {
	return image.handle.SetHasAlpha(value)
}

// Signature is the SHA-256 of the pixels.
func (image *MagickImage) Signature() (string, error) {
	return image.handle.Signature()
}

// BackgroundColor is a copy owned by the caller, nil when unset.
func (image *MagickImage) BackgroundColor() *MagickColor {
	return newMagickColor(image.handle.BackgroundColor())
}

func (image *MagickImage) SetBackgroundColor(color IMagickColor[magickImageQuantum]) {
	image.handle.SetBackgroundColor(color)
}

func (image *MagickImage) Attribute(name string) (string, error) {
	return image.handle.GetAttribute(name)
}

func (image *MagickImage) SetAttribute(name, value string) error {
	return image.handle.SetAttribute(name, &value)
}

func (image *MagickImage) RemoveAttribute(name string) error {
	return image.handle.SetAttribute(name, nil)
}

// GetPixelColor returns a copy of the pixel at x, y.
func (image *MagickImage) GetPixelColor(x, y int) (IMagickColor[magickImageQuantum], error) {
	instance, err := image.handle.GetPixelColor(x, y)
	if err != nil {
		return nil, err
	}
	if instance == 0 {
		return nil, nil
	}
	return newMagickColor(instance), nil
}

// Annotate draws text with settings, rotated by angle degrees.
func (image *MagickImage) Annotate(text string, settings *DrawingSettings, angle float64) error {
	return image.handle.Annotate(settings, text, angle)
}

// Resize scales the image to geometry, for example "100x100" or "50%".
func (image *MagickImage) Resize(geometry string) error {
	instance, err := image.handle.Resize(geometry)
	if err != nil {
		return err
	}
	image.handle.SetInstance(instance)
	return nil
}

// Strip removes the profiles and comments.
func (image *MagickImage) Strip() error {
	return image.handle.Strip()
}

func (image *MagickImage) Clone() (*MagickImage, error) {
	instance, err := image.handle.Clone()
	if err != nil {
		return nil, err
	}
	return newMagickImage(instance, image.handle.settings.Format()), nil
}

// Compare returns the distortion between the image and reference.
func (image *MagickImage) Compare(reference IMagickImage[magickImageQuantum], metric ErrorMetric, channels Channels) (float64, error) {
	difference, distortion, err := image.handle.Compare(reference, metric, channels)
	if err != nil {
		return 0, err
	}
	if difference != 0 {
		disposeMagickImage(difference)
	}
	return distortion, nil
}

// PerceptualHash returns the hash of the red, green and blue channels, or nil
// when the native library could not compute all of them.
func (image *MagickImage) PerceptualHash() (*PerceptualHash, error) {
	list, err := image.handle.PerceptualHash()
	if err != nil {
		return nil, err
	}
	if list == 0 {
		return nil, nil
	}
	defer nativePerceptualHashDisposeList(list)

	hash := newPerceptualHash(image, list)
	if !hash.isValid() {
		return nil, nil
	}
	return hash, nil
}
