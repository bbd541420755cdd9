package magick

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	huMoments = 7

	// A channel hash is 14 five digit hex values: the sRGB moments, then the HCLp ones.
	channelHashLength    = 2 * huMoments * 5
	perceptualHashLength = 3 * channelHashLength
)

var ErrInvalidHash = errors.New("invalid perceptual hash")

// perceptualHashChannels are the channels of a hash, in string order.
var perceptualHashChannels = []PixelChannel{RedPixelChannel, GreenPixelChannel, BluePixelChannel}

// ChannelPerceptualHash holds the Hu moments of one channel in the sRGB and
// HCLp color spaces.
type ChannelPerceptualHash struct {
	Channel PixelChannel
	srgb    [huMoments]float64
	hclp    [huMoments]float64
}

func newChannelPerceptualHash(channel PixelChannel, instance uintptr) ChannelPerceptualHash {
	hash := ChannelPerceptualHash{Channel: channel}
	for i := range huMoments {
		hash.srgb[i] = nativeChannelPerceptualHashGetSrgbHuPhash(instance, uint(i))
		hash.hclp[i] = nativeChannelPerceptualHashGetHclpHuPhash(instance, uint(i))
	}
	return hash
}

// parseChannelPerceptualHash decodes the 70 characters of one channel. Each
// value is a 16 bit mantissa, a sign bit and the power of ten dividing it.
func parseChannelPerceptualHash(channel PixelChannel, hash string) (ChannelPerceptualHash, error) {
	result := ChannelPerceptualHash{Channel: channel}
	for i := 0; i < 2*huMoments; i++ {
		digits := hash[i*5 : i*5+5]
		hex, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return ChannelPerceptualHash{}, fmt.Errorf("%w: %s channel value %q", ErrInvalidHash, channel, digits)
		}

		value := float64(uint16(hex)) / math.Pow(10, float64(hex>>17))
		if hex&(1<<16) != 0 {
			value = -value
		}
		if i < huMoments {
			result.srgb[i] = value
		} else {
			result.hclp[i-huMoments] = value
		}
	}
	return result, nil
}

// SrgbHuPhash returns the Hu moment index of the sRGB image.
func (hash ChannelPerceptualHash) SrgbHuPhash(index int) float64 {
	return hash.srgb[index]
}

// HclpHuPhash returns the Hu moment index of the HCLp image.
func (hash ChannelPerceptualHash) HclpHuPhash(index int) float64 {
	return hash.hclp[index]
}

// SumSquaredDistance is the sum of the squared differences of every moment.
func (hash ChannelPerceptualHash) SumSquaredDistance(other ChannelPerceptualHash) float64 {
	ssd := 0.0
	for i := range huMoments {
		ssd += (hash.srgb[i] - other.srgb[i]) * (hash.srgb[i] - other.srgb[i])
		ssd += (hash.hclp[i] - other.hclp[i]) * (hash.hclp[i] - other.hclp[i])
	}
	return ssd
}

// String encodes the moments the way parseChannelPerceptualHash reads them.
func (hash ChannelPerceptualHash) String() string {
	var b strings.Builder
	for i := 0; i < 2*huMoments; i++ {
		value := hash.srgb[i%huMoments]
		if i >= huMoments {
			value = hash.hclp[i-huMoments]
		}

		exponent := 0
		for exponent < 7 && math.Abs(value*10) < 65536 {
			value *= 10
			exponent++
		}

		hex := exponent << 1
		if value < 0 {
			hex |= 1
		}
		hex = hex<<16 + int(math.Abs(value)+0.5)
		b.WriteString(strconv.FormatInt(int64(hex), 16))
	}
	return b.String()
}

// PerceptualHash is the perceptual hash of the red, green and blue channels.
type PerceptualHash struct {
	channels map[PixelChannel]ChannelPerceptualHash
}

// ParsePerceptualHash decodes the 210 character form returned by String.
func ParsePerceptualHash(hash string) (*PerceptualHash, error) {
	if len(hash) != perceptualHashLength {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidHash, len(hash), perceptualHashLength)
	}

	result := &PerceptualHash{channels: make(map[PixelChannel]ChannelPerceptualHash, len(perceptualHashChannels))}
	for i, channel := range perceptualHashChannels {
		channelHash, err := parseChannelPerceptualHash(channel, hash[i*channelHashLength:(i+1)*channelHashLength])
		if err != nil {
			return nil, err
		}
		result.channels[channel] = channelHash
	}
	return result, nil
}

// newPerceptualHash reads the channels of a native hash list. Channels the
// list has no entry for are left out.
func newPerceptualHash(image *MagickImage, list uintptr) *PerceptualHash {
	hash := &PerceptualHash{channels: make(map[PixelChannel]ChannelPerceptualHash, len(perceptualHashChannels))}
	for _, channel := range perceptualHashChannels {
		instance := nativePerceptualHashGetInstance(image, list, channel)
		if instance == 0 {
			continue
		}
		hash.channels[channel] = newChannelPerceptualHash(channel, instance)
	}
	return hash
}

func (hash *PerceptualHash) isValid() bool {
	return len(hash.channels) == len(perceptualHashChannels)
}

// GetChannel returns the hash of channel.
func (hash *PerceptualHash) GetChannel(channel PixelChannel) (ChannelPerceptualHash, bool) {
	channelHash, found := hash.channels[channel]
	return channelHash, found
}

// SumSquaredDistance is the distance between two hashes; zero means the
// images are perceptually identical.
func (hash *PerceptualHash) SumSquaredDistance(other *PerceptualHash) float64 {
	ssd := 0.0
	for _, channel := range perceptualHashChannels {
		ssd += hash.channels[channel].SumSquaredDistance(other.channels[channel])
	}
	return ssd
}

func (hash *PerceptualHash) String() string {
	var b strings.Builder
	for _, channel := range perceptualHashChannels {
		b.WriteString(hash.channels[channel].String())
	}
	return b.String()
}
