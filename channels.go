package wavegen

import (
	"fmt"
	"math"
)

// Channels is the number of interleaved channels in a frame.
type Channels uint16

// Common speaker layouts.
const (
	Mono       Channels = 1
	Stereo     Channels = 2
	Surround21 Channels = 3
	Surround31 Channels = 4
	Surround41 Channels = 5
	Surround51 Channels = 6
	Surround61 Channels = 7
	Surround71 Channels = 8
	Surround91 Channels = 10
)

var channelNames = map[Channels]string{
	Mono:       "mono",
	Stereo:     "stereo",
	Surround21: "2.1",
	Surround31: "3.1",
	Surround41: "4.1",
	Surround51: "5.1",
	Surround61: "6.1",
	Surround71: "7.1",
	Surround91: "9.1",
}

// ChannelsOf converts a channel count, failing with ErrRange when it is not
// in [1, 65535].
func ChannelsOf(n int) (Channels, error) {
	if n < 1 || n > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d channels", ErrRange, n)
	}

	return Channels(n), nil
}

func (c Channels) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}

	return fmt.Sprintf("%d channels", uint16(c))
}

// SampleRate is a frame rate in Hz.
type SampleRate uint32

// Common sample rates.
const (
	Hz6000   SampleRate = 6000
	Hz8000   SampleRate = 8000
	Hz11025  SampleRate = 11025
	Hz16000  SampleRate = 16000
	Hz22050  SampleRate = 22050
	Hz32000  SampleRate = 32000
	Hz44100  SampleRate = 44100
	Hz48000  SampleRate = 48000
	Hz88200  SampleRate = 88200
	Hz96000  SampleRate = 96000
	Hz176400 SampleRate = 176400
	Hz192000 SampleRate = 192000
)

func (r SampleRate) String() string {
	return fmt.Sprintf("%d Hz", uint32(r))
}
