package magick

import "strconv"

// ColorSpace is the ImageMagick ColorspaceType.
type ColorSpace int

const (
	UndefinedColorSpace ColorSpace = iota
	CMYColorSpace
	CMYKColorSpace
	GrayColorSpace
	HCLColorSpace
	HCLpColorSpace
	HSBColorSpace
	HSIColorSpace
	HSLColorSpace
	HSVColorSpace
	HWBColorSpace
	LabColorSpace
	LCHColorSpace
	LCHabColorSpace
	LCHuvColorSpace
	LogColorSpace
	LMSColorSpace
	LuvColorSpace
	OHTAColorSpace
	Rec601YCbCrColorSpace
	Rec709YCbCrColorSpace
	RGBColorSpace
	ScRGBColorSpace
	SRGBColorSpace
	TransparentColorSpace
	XyYColorSpace
	XYZColorSpace
	YCbCrColorSpace
	YCCColorSpace
	YDbDrColorSpace
	YIQColorSpace
	YPbPrColorSpace
	YUVColorSpace
	LinearGrayColorSpace
	JzazbzColorSpace
	DisplayP3ColorSpace
	Adobe98ColorSpace
	ProPhotoColorSpace
	OklabColorSpace
	OklchColorSpace
)

// ErrorMetric selects how Compare measures the distance between two images.
type ErrorMetric int

const (
	UndefinedErrorMetric ErrorMetric = iota
	AbsoluteErrorMetric
	FuzzErrorMetric
	MeanAbsoluteErrorMetric
	MeanErrorPerPixelErrorMetric
	MeanSquaredErrorMetric
	NormalizedCrossCorrelationErrorMetric
	PeakAbsoluteErrorMetric
	PeakSignalToNoiseRatioErrorMetric
	PerceptualHashErrorMetric
	RootMeanSquaredErrorMetric
	StructuralSimilarityErrorMetric
	StructuralDissimilarityErrorMetric
)

// Channels is a set of image channels.
type Channels int

const (
	UndefinedChannels Channels = 0
	RedChannel        Channels = 0x0001
	GreenChannel      Channels = 0x0002
	BlueChannel       Channels = 0x0004
	BlackChannel      Channels = 0x0008
	AlphaChannel      Channels = 0x0010
	IndexChannel      Channels = 0x0020
	RGBChannels       Channels = RedChannel | GreenChannel | BlueChannel
	RGBAChannels      Channels = RGBChannels | AlphaChannel
	CompositeChannels Channels = 0x001f
	AllChannels       Channels = 0x7ffffff
)

// PixelChannel is a single channel of a pixel.
type PixelChannel int

const (
	RedPixelChannel       PixelChannel = 0
	GreenPixelChannel     PixelChannel = 1
	BluePixelChannel      PixelChannel = 2
	BlackPixelChannel     PixelChannel = 3
	AlphaPixelChannel     PixelChannel = 4
	IndexPixelChannel     PixelChannel = 5
	CompositePixelChannel PixelChannel = 64
)

var pixelChannelNames = map[PixelChannel]string{
	RedPixelChannel:       "Red",
	GreenPixelChannel:     "Green",
	BluePixelChannel:      "Blue",
	BlackPixelChannel:     "Black",
	AlphaPixelChannel:     "Alpha",
	IndexPixelChannel:     "Index",
	CompositePixelChannel: "Composite",
}

func (channel PixelChannel) String() string {
	if name, found := pixelChannelNames[channel]; found {
		return name
	}
	return "PixelChannel(" + strconv.Itoa(int(channel)) + ")"
}
