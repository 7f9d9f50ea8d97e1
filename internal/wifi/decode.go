package wifi

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	channelRe   = regexp.MustCompile(`^(\d+)\s*\((\d+(?:\.\d+)?GHz),\s*(\d+MHz)\)`)
	signalRe    = regexp.MustCompile(`^(-?\d+)\s*dBm\s*/\s*(-?\d+)\s*dBm`)
	roundTripRe = regexp.MustCompile(`round-trip min/avg/max/stddev = ([\d.]+)/([\d.]+)/([\d.]+)/([\d.]+)`)
)

// ParseChannel decodes a channel descriptor like "149 (5GHz, 80MHz)"
// into channel number, band and bandwidth. When the bracketed form is
// absent it falls back to a leading channel number, inferring the band
// from the channel range. It never fails: unparseable input yields the
// maximally-unknown triple (0, "Unknown", "Unknown").
func ParseChannel(s string) (channel int, band, bandwidth string) {
	if m := channelRe.FindStringSubmatch(s); m != nil {
		ch, _ := strconv.Atoi(m[1])
		return ch, m[2], m[3]
	}

	fields := strings.Fields(s)
	if len(fields) > 0 {
		if ch, err := strconv.Atoi(fields[0]); err == nil {
			band := "5GHz"
			if ch <= 14 {
				band = "2.4GHz"
			}
			return ch, band, "Unknown"
		}
	}
	return 0, "Unknown", "Unknown"
}

// ParseSignalNoise decodes a signal descriptor like "-45 dBm / -93 dBm"
// into RSSI and noise. Both are nil when the pattern does not match.
func ParseSignalNoise(s string) (rssi, noise *int) {
	m := signalRe.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}
	r, _ := strconv.Atoi(m[1])
	n, _ := strconv.Atoi(m[2])
	return &r, &n
}

// ParseRoundTrip scans ping output for the round-trip summary line and
// returns the four statistics in milliseconds. ok is false when no
// summary line is present.
func ParseRoundTrip(output string) (min, avg, max, stddev float64, ok bool) {
	m := roundTripRe.FindStringSubmatch(output)
	if m == nil {
		return 0, 0, 0, 0, false
	}
	min, _ = strconv.ParseFloat(m[1], 64)
	avg, _ = strconv.ParseFloat(m[2], 64)
	max, _ = strconv.ParseFloat(m[3], 64)
	stddev, _ = strconv.ParseFloat(m[4], 64)
	return min, avg, max, stddev, true
}
