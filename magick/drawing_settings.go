package magick

// DrawingSettings configure text and shape drawing. They live in Go memory
// and are copied into a native instance for the duration of each call.
type DrawingSettings struct {
	FillColor     IMagickColor[drawingSettingsQuantum]
	StrokeColor   IMagickColor[drawingSettingsQuantum]
	Font          string
	FontPointsize float64
	StrokeWidth   float64
	TextAntiAlias bool
	Text          string
}

// NewDrawingSettings returns the ImageMagick defaults.
func NewDrawingSettings() *DrawingSettings {
	return &DrawingSettings{
		FontPointsize: 12,
		StrokeWidth:   1,
		TextAntiAlias: true,
	}
}

// createDrawingSettingsNative copies settings into a new native instance. The
// caller disposes of it. Nil settings yield the native defaults.
func createDrawingSettingsNative(settings *DrawingSettings) *nativeDrawingSettings {
	instance := createNativeDrawingSettings()
	if settings == nil {
		return instance
	}

	instance.SetFillColor(settings.FillColor)
	instance.SetStrokeColor(settings.StrokeColor)
	instance.SetFont(optional(settings.Font))
	instance.SetFontPointsize(settings.FontPointsize)
	instance.SetStrokeWidth(settings.StrokeWidth)
	instance.SetTextAntiAlias(settings.TextAntiAlias)
	instance.SetText(optional(settings.Text))
	return instance
}
