package magick

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every moment is 0.5 in hashOfHalves and -0.5 in hashOfNegativeHalves.
var (
	hashOfHalves         = strings.Repeat("ac350", 42)
	hashOfNegativeHalves = strings.Repeat("bc350", 42)
)

func TestParsePerceptualHash(t *testing.T) {
	hash, err := ParsePerceptualHash(hashOfHalves)
	require.NoError(t, err)

	for _, channel := range []PixelChannel{RedPixelChannel, GreenPixelChannel, BluePixelChannel} {
		channelHash, found := hash.GetChannel(channel)
		require.True(t, found, channel.String())
		assert.Equal(t, channel, channelHash.Channel)
		for i := 0; i < 7; i++ {
			assert.InDelta(t, 0.5, channelHash.SrgbHuPhash(i), 1e-9)
			assert.InDelta(t, 0.5, channelHash.HclpHuPhash(i), 1e-9)
		}
	}

	_, found := hash.GetChannel(AlphaPixelChannel)
	assert.False(t, found)
}

func TestParsePerceptualHashSplitsChannels(t *testing.T) {
	hash, err := ParsePerceptualHash(strings.Repeat("ac350", 14) + strings.Repeat("bc350", 14) + strings.Repeat("e0000", 14))
	require.NoError(t, err)

	red, _ := hash.GetChannel(RedPixelChannel)
	green, _ := hash.GetChannel(GreenPixelChannel)
	blue, _ := hash.GetChannel(BluePixelChannel)
	assert.InDelta(t, 0.5, red.SrgbHuPhash(0), 1e-9)
	assert.InDelta(t, -0.5, green.HclpHuPhash(6), 1e-9)
	assert.Zero(t, blue.SrgbHuPhash(3))
}

func TestParsePerceptualHashInvalid(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"short", hashOfHalves[:209]},
		{"long", hashOfHalves + "0"},
		{"not hex", strings.Repeat("ac350", 41) + "zz350"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePerceptualHash(test.hash)
			assert.ErrorIs(t, err, ErrInvalidHash)
		})
	}
}

func TestPerceptualHashString(t *testing.T) {
	for _, value := range []string{
		hashOfHalves,
		hashOfNegativeHalves,
		strings.Repeat("ac350", 14) + strings.Repeat("bc350", 14) + strings.Repeat("e0000", 14),
	} {
		hash, err := ParsePerceptualHash(value)
		require.NoError(t, err)
		assert.Equal(t, value, hash.String())
	}
}

func TestPerceptualHashSumSquaredDistance(t *testing.T) {
	halves, err := ParsePerceptualHash(hashOfHalves)
	require.NoError(t, err)
	negativeHalves, err := ParsePerceptualHash(hashOfNegativeHalves)
	require.NoError(t, err)

	assert.Zero(t, halves.SumSquaredDistance(halves))
	// 3 channels, 14 moments each, every difference is 1.
	assert.InDelta(t, 42.0, halves.SumSquaredDistance(negativeHalves), 1e-9)
	assert.InDelta(t, halves.SumSquaredDistance(negativeHalves), negativeHalves.SumSquaredDistance(halves), 1e-9)

	red, _ := halves.GetChannel(RedPixelChannel)
	negativeRed, _ := negativeHalves.GetChannel(RedPixelChannel)
	assert.InDelta(t, 14.0, red.SumSquaredDistance(negativeRed), 1e-9)
}
