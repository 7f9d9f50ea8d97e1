package models

// NetworkInfo represents one access point observed in a WiFi scan.
// RSSI and Noise are only reported for some networks, so they stay
// optional here.
type NetworkInfo struct {
	SSID      string `json:"ssid"`
	Channel   int    `json:"channel"`
	Band      string `json:"band"`       // "2.4GHz", "5GHz" or "Unknown"
	BandWidth string `json:"band_width"` // "20MHz", "40MHz", "80MHz", "160MHz" or "Unknown"
	PHYMode   string `json:"phy_mode"`   // e.g. "802.11ac", "802.11ax"
	Security  string `json:"security"`
	RSSI      *int   `json:"rssi"`
	Noise     *int   `json:"noise"`
}

// SignalQuality converts RSSI to a human-readable quality label.
func (n NetworkInfo) SignalQuality() string {
	if n.RSSI == nil {
		return "Unknown"
	}
	return SignalQuality(*n.RSSI)
}

// SignalPercentage converts RSSI to an approximate 0-100 percentage.
func (n NetworkInfo) SignalPercentage() int {
	if n.RSSI == nil {
		return 0
	}
	return SignalPercentage(*n.RSSI)
}

// CurrentConnection represents the network the host is actively
// associated with. Unlike NetworkInfo, signal and noise are always
// populated (defaulted when the utility output is missing them).
type CurrentConnection struct {
	SSID      string `json:"ssid"`
	Channel   int    `json:"channel"`
	Band      string `json:"band"`
	BandWidth string `json:"band_width"`
	PHYMode   string `json:"phy_mode"`
	Security  string `json:"security"`
	RSSI      int    `json:"rssi"`
	Noise     int    `json:"noise"`
	TxRate    int    `json:"tx_rate"` // Mbps
	MCSIndex  *int   `json:"mcs_index,omitempty"`
}

// SignalQuality converts RSSI to a human-readable quality label.
func (c CurrentConnection) SignalQuality() string {
	return SignalQuality(c.RSSI)
}

// SignalPercentage converts RSSI to an approximate 0-100 percentage.
func (c CurrentConnection) SignalPercentage() int {
	return SignalPercentage(c.RSSI)
}

// SignalToNoise returns the signal-to-noise ratio in dB.
func (c CurrentConnection) SignalToNoise() int {
	return c.RSSI - c.Noise
}

// AsNetworkInfo reshapes the current connection into a NetworkInfo so
// it can be scored with the same function as scanned networks.
func (c CurrentConnection) AsNetworkInfo() NetworkInfo {
	rssi, noise := c.RSSI, c.Noise
	return NetworkInfo{
		SSID:      c.SSID,
		Channel:   c.Channel,
		Band:      c.Band,
		BandWidth: c.BandWidth,
		PHYMode:   c.PHYMode,
		Security:  c.Security,
		RSSI:      &rssi,
		Noise:     &noise,
	}
}

// SignalQuality maps an RSSI value in dBm to a quality label.
func SignalQuality(rssi int) string {
	switch {
	case rssi >= -50:
		return "Excellent"
	case rssi >= -60:
		return "Good"
	case rssi >= -70:
		return "Fair"
	default:
		return "Poor"
	}
}

// SignalPercentage maps an RSSI value in dBm to a 0-100 percentage.
// RSSI typically ranges from -90 (worst) to -30 (best); values outside
// that range saturate.
func SignalPercentage(rssi int) int {
	if rssi >= -30 {
		return 100
	}
	if rssi <= -90 {
		return 0
	}
	pct := (rssi + 90) * 100 / 60
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
