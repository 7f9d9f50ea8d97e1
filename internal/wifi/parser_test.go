package wifi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventoryFixture = `Wi-Fi:

      Software Versions:
          CoreWLAN: 16.0 (1657)
          CoreWLANKit: 16.0 (1657)
      Interfaces:
        en0:
          Card Type: Wi-Fi  (0x14E4, 0x4387)
          Firmware Version: wl0: Sep  3 2023 01:45:41
          MAC Address: aa:bb:cc:dd:ee:ff
          Locale: FCC
          Country Code: US
          Supported Channels: 1, 2, 3, 4, 5, 6
          Status: Connected
          Current Network Information:
            HomeBase-5G:
              PHY Mode: 802.11ax
              Channel: 149 (5GHz, 80MHz)
              Country Code: US
              Network Type: Infrastructure
              Security: WPA3 Personal
              Signal / Noise: -45 dBm / -93 dBm
              Transmit Rate: 1200
              MCS Index: 11
          Other Local Wi-Fi Networks:
            CoffeeShack:
              PHY Mode: 802.11n
              Channel: 6 (2.4GHz, 20MHz)
              Network Type: Infrastructure
              Security: WPA2 Personal
              Signal / Noise: -72 dBm / -90 dBm
            Skynet Guest:
              PHY Mode: 802.11ac
              Channel: 44 (5GHz, 40MHz)
              Network Type: Infrastructure
              Security: WPA2 Personal
        awdl0:
          Card Type: Wi-Fi  (0x14E4, 0x4387)
          MAC Address: aa:bb:cc:dd:ee:00
          Status: Connected
`

func TestParseFullInventory(t *testing.T) {
	current, networks := Parse(inventoryFixture)

	require.NotNil(t, current)
	assert.Equal(t, "HomeBase-5G", current.SSID)
	assert.Equal(t, 149, current.Channel)
	assert.Equal(t, "5GHz", current.Band)
	assert.Equal(t, "80MHz", current.BandWidth)
	assert.Equal(t, "802.11ax", current.PHYMode)
	assert.Equal(t, "WPA3 Personal", current.Security)
	assert.Equal(t, -45, current.RSSI)
	assert.Equal(t, -93, current.Noise)
	assert.Equal(t, 1200, current.TxRate)
	require.NotNil(t, current.MCSIndex)
	assert.Equal(t, 11, *current.MCSIndex)

	require.Len(t, networks, 2)

	coffee := networks[0]
	assert.Equal(t, "CoffeeShack", coffee.SSID)
	assert.Equal(t, 6, coffee.Channel)
	assert.Equal(t, "2.4GHz", coffee.Band)
	assert.Equal(t, "20MHz", coffee.BandWidth)
	assert.Equal(t, "802.11n", coffee.PHYMode)
	assert.Equal(t, "WPA2 Personal", coffee.Security)
	require.NotNil(t, coffee.RSSI)
	assert.Equal(t, -72, *coffee.RSSI)
	require.NotNil(t, coffee.Noise)
	assert.Equal(t, -90, *coffee.Noise)

	guest := networks[1]
	assert.Equal(t, "Skynet Guest", guest.SSID)
	assert.Equal(t, 44, guest.Channel)
	assert.Equal(t, "5GHz", guest.Band)
	assert.Equal(t, "40MHz", guest.BandWidth)
	assert.Equal(t, "802.11ac", guest.PHYMode)
	assert.Nil(t, guest.RSSI, "networks without a Signal / Noise line keep a nil RSSI")
	assert.Nil(t, guest.Noise)
}

func TestParseIdempotent(t *testing.T) {
	current1, networks1 := Parse(inventoryFixture)
	current2, networks2 := Parse(inventoryFixture)

	assert.Equal(t, current1, current2)
	assert.Equal(t, networks1, networks2)
}

func TestParseWithoutTrailingSentinel(t *testing.T) {
	// Input that ends mid-listing still flushes the pending network.
	truncated := inventoryFixture[:strings.Index(inventoryFixture, "        awdl0:")]

	current, networks := Parse(truncated)

	require.NotNil(t, current)
	assert.Equal(t, "HomeBase-5G", current.SSID)
	require.Len(t, networks, 2)
	assert.Equal(t, "Skynet Guest", networks[1].SSID)
}

func TestParseDisconnected(t *testing.T) {
	raw := `Wi-Fi:
      Interfaces:
        en0:
          Status: Off
          Other Local Wi-Fi Networks:
            CoffeeShack:
              PHY Mode: 802.11n
              Channel: 6 (2.4GHz, 20MHz)
              Security: WPA2 Personal
        awdl0:
          Status: Connected
`
	current, networks := Parse(raw)

	assert.Nil(t, current)
	require.Len(t, networks, 1)
	assert.Equal(t, "CoffeeShack", networks[0].SSID)
}

func TestParseEmptyInput(t *testing.T) {
	current, networks := Parse("")
	assert.Nil(t, current)
	assert.Empty(t, networks)
}

func TestParseNameWithoutPropertiesIsDropped(t *testing.T) {
	// A network block that never accumulates a property is not flushed,
	// neither in the current section nor in the listing.
	raw := `          Current Network Information:
            GhostNet:
          Other Local Wi-Fi Networks:
            EmptyBlock:
        awdl0:
`
	current, networks := Parse(raw)

	assert.Nil(t, current)
	assert.Empty(t, networks)
}

func TestParseMalformedTransmitRateDropsCurrent(t *testing.T) {
	raw := `          Current Network Information:
            HomeBase-5G:
              Channel: 149 (5GHz, 80MHz)
              Security: WPA3 Personal
              Signal / Noise: -45 dBm / -93 dBm
              Transmit Rate: fast
          Other Local Wi-Fi Networks:
            CoffeeShack:
              PHY Mode: 802.11n
              Channel: 6 (2.4GHz, 20MHz)
        awdl0:
`
	current, networks := Parse(raw)

	assert.Nil(t, current, "numeric coercion failure must drop the record, not half-populate it")
	require.Len(t, networks, 1, "a bad current block must not abort the rest of the parse")
	assert.Equal(t, "CoffeeShack", networks[0].SSID)
}

func TestParseCurrentDefaultsSignalNoise(t *testing.T) {
	raw := `          Current Network Information:
            HomeBase-5G:
              PHY Mode: 802.11ax
              Channel: 149 (5GHz, 80MHz)
              Transmit Rate: 866
          Other Local Wi-Fi Networks:
        awdl0:
`
	current, _ := Parse(raw)

	require.NotNil(t, current)
	assert.Equal(t, -70, current.RSSI)
	assert.Equal(t, -90, current.Noise)
	assert.Equal(t, 866, current.TxRate)
	assert.Nil(t, current.MCSIndex)
	assert.Equal(t, "Unknown", current.Security)
}

func TestParseDuplicateSSIDsKept(t *testing.T) {
	raw := `          Other Local Wi-Fi Networks:
            Mesh:
              Channel: 6 (2.4GHz, 20MHz)
              Security: WPA2 Personal
            Mesh:
              Channel: 149 (5GHz, 80MHz)
              Security: WPA2 Personal
        awdl0:
`
	current, networks := Parse(raw)

	assert.Nil(t, current)
	require.Len(t, networks, 2)
	assert.Equal(t, "2.4GHz", networks[0].Band)
	assert.Equal(t, "5GHz", networks[1].Band)
}
