package magick

// MagickSettings are the read and write options of an image.
type MagickSettings struct {
	handle *nativeMagickSettings
}

func NewMagickSettings() *MagickSettings {
	return &MagickSettings{handle: createNativeMagickSettings()}
}

func (settings *MagickSettings) Instance() uintptr {
	if settings == nil {
		return 0
	}
	return settings.handle.Instance()
}

func (settings *MagickSettings) Dispose() {
	if settings != nil {
		settings.handle.Dispose()
	}
}

func (settings *MagickSettings) ColorSpace() ColorSpace {
	return settings.handle.ColorSpace()
}

func (settings *MagickSettings) SetColorSpace(value ColorSpace) {
	settings.handle.SetColorSpace(value)
}

// Format is the image format, such as "PNG". Empty means detect it.
func (settings *MagickSettings) Format() string {
	return settings.handle.Format()
}

func (settings *MagickSettings) SetFormat(format string) {
	settings.handle.SetFormat(optional(format))
}

// Density is the resolution, for example "300x300".
func (settings *MagickSettings) Density() string {
	return settings.handle.Density()
}

func (settings *MagickSettings) SetDensity(density string) {
	settings.handle.SetDensity(optional(density))
}

func (settings *MagickSettings) FontPointsize() float64 {
	return settings.handle.FontPointsize()
}

func (settings *MagickSettings) SetFontPointsize(value float64) {
	settings.handle.SetFontPointsize(value)
}

func (settings *MagickSettings) Debug() bool           { return settings.handle.Debug() }
func (settings *MagickSettings) SetDebug(value bool)   { settings.handle.SetDebug(value) }
func (settings *MagickSettings) Verbose() bool         { return settings.handle.Verbose() }
func (settings *MagickSettings) SetVerbose(value bool) { settings.handle.SetVerbose(value) }

// SetFileName sets the file the next read or write uses.
func (settings *MagickSettings) SetFileName(fileName string) {
	settings.handle.SetFileName(optional(fileName))
}

// SetOption sets a coder option such as "png:compression-level". An empty
// value removes it.
func (settings *MagickSettings) SetOption(key, value string) {
	settings.handle.SetOption(key, optional(value))
}

// SetPing makes reads load the image attributes without the pixels.
func (settings *MagickSettings) SetPing(ping bool) {
	settings.handle.SetPing(ping)
}

func (settings *MagickSettings) SetQuality(quality uint) {
	settings.handle.SetQuality(quality)
}

// optional maps the empty string to a null native string.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
