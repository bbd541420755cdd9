package magick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelChannelString(t *testing.T) {
	assert.Equal(t, "Red", RedPixelChannel.String())
	assert.Equal(t, "Composite", CompositePixelChannel.String())
	assert.Equal(t, "PixelChannel(42)", PixelChannel(42).String())
}

func TestLogEventsString(t *testing.T) {
	assert.Equal(t, "None", NoLogEvents.String())
	assert.Equal(t, "Accelerate", AccelerateLogEvent.String())
	assert.Equal(t, "Annotate,Blob,Exception", (AnnotateLogEvent | BlobLogEvent | ExceptionLogEvent).String())
	assert.Equal(t, "Wand", WandLogEvent.String())
	assert.Equal(t, LogEvents(1), AccelerateLogEvent)
	assert.Equal(t, LogEvents(1<<18), WandLogEvent)
}

func TestChannels(t *testing.T) {
	assert.Equal(t, Channels(7), RGBChannels)
	assert.Equal(t, Channels(0x17), RGBAChannels)
	assert.Equal(t, Channels(0x1f), CompositeChannels)
}

func TestColorSpaceValues(t *testing.T) {
	assert.Equal(t, ColorSpace(21), RGBColorSpace)
	assert.Equal(t, ColorSpace(23), SRGBColorSpace)
	assert.Equal(t, ColorSpace(39), OklchColorSpace)
}
