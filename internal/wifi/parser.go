package wifi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/roomsignal/roomsignal/pkg/models"
)

// Known property keys inside a network block. A colon-terminated line
// that does not start with one of these introduces a new network name;
// the whitelist is what disambiguates the two, since network names are
// rendered as bare colon-terminated lines too.
var propertyKeys = []string{
	"PHY Mode", "Channel", "Security", "Signal / Noise",
	"Network Type", "Country Code", "Transmit Rate", "MCS Index",
}

// Interface sections that follow the WiFi data and end the network
// listings.
var sectionEnds = []string{"awdl0:", "llw0:", "Bluetooth:"}

// Parse consumes raw `system_profiler SPAirPortDataType` output and
// extracts the current connection (nil when disconnected) and the
// nearby networks. A single forward pass tracks which section the line
// belongs to and accumulates key/value properties per named network,
// flushing the accumulator whenever a new name or section boundary is
// seen. Input that ends without a trailing interface sentinel is
// flushed at end of input.
func Parse(raw string) (*models.CurrentConnection, []models.NetworkInfo) {
	var (
		current  *models.CurrentConnection
		networks []models.NetworkInfo

		inCurrent bool
		inOthers  bool

		currentName string
		currentData = make(map[string]string)

		networkName string
		networkData = make(map[string]string)
	)

	buildPending := func() {
		c, err := buildCurrentConnection(currentName, currentData)
		if err != nil {
			log.Debug().Err(err).Str("ssid", currentName).Msg("dropping unparseable current connection block")
			return
		}
		current = c
	}
	flushPending := func() {
		if networkName == "" || len(networkData) == 0 {
			return
		}
		networks = append(networks, buildNetworkInfo(networkName, networkData))
		networkName = ""
		networkData = make(map[string]string)
	}

	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.TrimSpace(line)

		if startsWithAny(stripped, sectionEnds) {
			if inOthers {
				flushPending()
			}
			inCurrent = false
			inOthers = false
			continue
		}

		if strings.Contains(line, "Current Network Information:") {
			inCurrent = true
			inOthers = false
			continue
		}
		if strings.Contains(line, "Other Local Wi-Fi Networks:") {
			if currentName != "" && len(currentData) > 0 {
				buildPending()
			}
			inCurrent = false
			inOthers = true
			continue
		}

		if inCurrent {
			if isNameLine(stripped) {
				if currentName != "" && len(currentData) > 0 {
					buildPending()
				}
				currentName = strings.TrimSuffix(stripped, ":")
				currentData = make(map[string]string)
			} else if strings.Contains(stripped, ":") {
				key, value, _ := strings.Cut(stripped, ":")
				currentData[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		}

		if inOthers {
			if isNameLine(stripped) {
				flushPending()
				networkName = strings.TrimSuffix(stripped, ":")
				networkData = make(map[string]string)
			} else if strings.Contains(stripped, ":") && networkName != "" {
				key, value, _ := strings.Cut(stripped, ":")
				networkData[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		}
	}

	// Input may end without a trailing interface sentinel.
	flushPending()
	if current == nil && currentName != "" && len(currentData) > 0 {
		buildPending()
	}

	return current, networks
}

// isNameLine reports whether a line introduces a new network block: it
// ends in a colon but is not one of the known property keys.
func isNameLine(stripped string) bool {
	if !strings.HasSuffix(stripped, ":") {
		return false
	}
	for _, key := range propertyKeys {
		if strings.HasPrefix(stripped, key+":") {
			return false
		}
	}
	return true
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// buildCurrentConnection assembles a CurrentConnection from a block's
// accumulated properties. Missing signal data falls back to -70/-90 dBm
// so detection of a current-network block always yields a record, but a
// malformed transmit rate or MCS index fails the whole build rather
// than producing a half-populated record.
func buildCurrentConnection(name string, data map[string]string) (*models.CurrentConnection, error) {
	channelStr, ok := data["Channel"]
	if !ok {
		channelStr = "0"
	}
	channel, band, bandwidth := ParseChannel(channelStr)

	signalStr, ok := data["Signal / Noise"]
	if !ok {
		signalStr = "-70 dBm / -90 dBm"
	}
	rssi, noise := ParseSignalNoise(signalStr)

	txStr, ok := data["Transmit Rate"]
	if !ok {
		txStr = "0"
	}
	txRate, err := strconv.Atoi(strings.TrimSpace(txStr))
	if err != nil {
		return nil, fmt.Errorf("transmit rate %q: %w", txStr, err)
	}

	var mcs *int
	if mcsStr := data["MCS Index"]; mcsStr != "" {
		v, err := strconv.Atoi(strings.TrimSpace(mcsStr))
		if err != nil {
			return nil, fmt.Errorf("mcs index %q: %w", mcsStr, err)
		}
		mcs = &v
	}

	conn := &models.CurrentConnection{
		SSID:      name,
		Channel:   channel,
		Band:      band,
		BandWidth: bandwidth,
		PHYMode:   valueOr(data, "PHY Mode", "Unknown"),
		Security:  valueOr(data, "Security", "Unknown"),
		RSSI:      -70,
		Noise:     -90,
		TxRate:    txRate,
		MCSIndex:  mcs,
	}
	if rssi != nil {
		conn.RSSI = *rssi
	}
	if noise != nil {
		conn.Noise = *noise
	}
	return conn, nil
}

// buildNetworkInfo assembles a NetworkInfo from a block's accumulated
// properties. Every field decoder has a non-failing fallback, so this
// always yields a record; signal and noise stay nil when unreported.
func buildNetworkInfo(name string, data map[string]string) models.NetworkInfo {
	channelStr, ok := data["Channel"]
	if !ok {
		channelStr = "0"
	}
	channel, band, bandwidth := ParseChannel(channelStr)

	var rssi, noise *int
	if signalStr := data["Signal / Noise"]; signalStr != "" {
		rssi, noise = ParseSignalNoise(signalStr)
	}

	return models.NetworkInfo{
		SSID:      name,
		Channel:   channel,
		Band:      band,
		BandWidth: bandwidth,
		PHYMode:   valueOr(data, "PHY Mode", "Unknown"),
		Security:  valueOr(data, "Security", "Unknown"),
		RSSI:      rssi,
		Noise:     noise,
	}
}

func valueOr(data map[string]string, key, def string) string {
	if v, ok := data[key]; ok {
		return v
	}
	return def
}
