package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		channel   int
		band      string
		bandwidth string
	}{
		{
			name:      "full descriptor 5GHz",
			input:     "149 (5GHz, 80MHz)",
			channel:   149,
			band:      "5GHz",
			bandwidth: "80MHz",
		},
		{
			name:      "full descriptor 2.4GHz",
			input:     "11 (2.4GHz, 20MHz)",
			channel:   11,
			band:      "2.4GHz",
			bandwidth: "20MHz",
		},
		{
			name:      "full descriptor 160MHz",
			input:     "36 (5GHz, 160MHz)",
			channel:   36,
			band:      "5GHz",
			bandwidth: "160MHz",
		},
		{
			name:      "bare low channel infers 2.4GHz",
			input:     "6",
			channel:   6,
			band:      "2.4GHz",
			bandwidth: "Unknown",
		},
		{
			name:      "channel 14 is still 2.4GHz",
			input:     "14",
			channel:   14,
			band:      "2.4GHz",
			bandwidth: "Unknown",
		},
		{
			name:      "bare high channel infers 5GHz",
			input:     "149",
			channel:   149,
			band:      "5GHz",
			bandwidth: "Unknown",
		},
		{
			name:      "garbage yields unknown triple",
			input:     "garbage",
			channel:   0,
			band:      "Unknown",
			bandwidth: "Unknown",
		},
		{
			name:      "empty input",
			input:     "",
			channel:   0,
			band:      "Unknown",
			bandwidth: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, band, bandwidth := ParseChannel(tt.input)
			assert.Equal(t, tt.channel, channel)
			assert.Equal(t, tt.band, band)
			assert.Equal(t, tt.bandwidth, bandwidth)
		})
	}
}

func TestParseSignalNoise(t *testing.T) {
	t.Run("valid descriptor", func(t *testing.T) {
		rssi, noise := ParseSignalNoise("-45 dBm / -93 dBm")
		require.NotNil(t, rssi)
		require.NotNil(t, noise)
		assert.Equal(t, -45, *rssi)
		assert.Equal(t, -93, *noise)
	})

	t.Run("tight spacing", func(t *testing.T) {
		rssi, noise := ParseSignalNoise("-60 dBm/-90 dBm")
		require.NotNil(t, rssi)
		require.NotNil(t, noise)
		assert.Equal(t, -60, *rssi)
		assert.Equal(t, -90, *noise)
	})

	t.Run("non-matching input", func(t *testing.T) {
		rssi, noise := ParseSignalNoise("N/A")
		assert.Nil(t, rssi)
		assert.Nil(t, noise)
	})

	t.Run("empty input", func(t *testing.T) {
		rssi, noise := ParseSignalNoise("")
		assert.Nil(t, rssi)
		assert.Nil(t, noise)
	})
}

func TestParseRoundTrip(t *testing.T) {
	pingOutput := `PING 8.8.8.8 (8.8.8.8): 56 data bytes
64 bytes from 8.8.8.8: icmp_seq=0 ttl=117 time=14.838 ms
64 bytes from 8.8.8.8: icmp_seq=1 ttl=117 time=13.688 ms
64 bytes from 8.8.8.8: icmp_seq=2 ttl=117 time=16.014 ms

--- 8.8.8.8 ping statistics ---
3 packets transmitted, 3 packets received, 0.0% packet loss
round-trip min/avg/max/stddev = 13.688/14.847/16.014/0.950 ms
`

	t.Run("summary line present", func(t *testing.T) {
		min, avg, max, stddev, ok := ParseRoundTrip(pingOutput)
		require.True(t, ok)
		assert.Equal(t, 13.688, min)
		assert.Equal(t, 14.847, avg)
		assert.Equal(t, 16.014, max)
		assert.Equal(t, 0.950, stddev)
	})

	t.Run("summary line missing", func(t *testing.T) {
		_, _, _, _, ok := ParseRoundTrip("Request timeout for icmp_seq 0\n")
		assert.False(t, ok)
	})
}
