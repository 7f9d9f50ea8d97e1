package models

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string `json:"status" example:"ok" doc:"Service health status"`
		Service string `json:"service" example:"RoomSignal" doc:"Service name"`
	}
}

// ScoredNetwork is one scanned network plus its derived signal fields
// and score, as returned by /api/scan.
type ScoredNetwork struct {
	SSID             string         `json:"ssid" doc:"Network name"`
	Channel          int            `json:"channel" doc:"WiFi channel number"`
	Band             string         `json:"band" doc:"Frequency band"`
	BandWidth        string         `json:"band_width" doc:"Channel width"`
	PHYMode          string         `json:"phy_mode" doc:"Physical-layer standard"`
	Security         string         `json:"security" doc:"Security mode"`
	RSSI             *int           `json:"rssi" doc:"Signal strength in dBm, null when not reported"`
	Noise            *int           `json:"noise" doc:"Noise floor in dBm, null when not reported"`
	SignalQuality    string         `json:"signal_quality" doc:"Human-readable signal quality"`
	SignalPercentage int            `json:"signal_percentage" minimum:"0" maximum:"100" doc:"Signal strength as a percentage"`
	Score            ScoreBreakdown `json:"score" doc:"Desirability score"`
}

// ScoredCurrent is the active connection with its latency measurement
// and score, as returned by /api/scan.
type ScoredCurrent struct {
	SSID             string         `json:"ssid" doc:"Network name"`
	Channel          int            `json:"channel" doc:"WiFi channel number"`
	Band             string         `json:"band" doc:"Frequency band"`
	BandWidth        string         `json:"band_width" doc:"Channel width"`
	PHYMode          string         `json:"phy_mode" doc:"Physical-layer standard"`
	Security         string         `json:"security" doc:"Security mode"`
	RSSI             int            `json:"rssi" doc:"Signal strength in dBm"`
	Noise            int            `json:"noise" doc:"Noise floor in dBm"`
	SNR              int            `json:"snr" doc:"Signal-to-noise ratio in dB"`
	TxRate           int            `json:"tx_rate" doc:"Transmit rate in Mbps"`
	SignalQuality    string         `json:"signal_quality" doc:"Human-readable signal quality"`
	SignalPercentage int            `json:"signal_percentage" minimum:"0" maximum:"100" doc:"Signal strength as a percentage"`
	Latency          *LatencyResult `json:"latency" doc:"Round-trip latency measurement, null when not measured"`
	Score            ScoreBreakdown `json:"score" doc:"Desirability score"`
}

// ScanResult is the body of the /api/scan response.
type ScanResult struct {
	Current         *ScoredCurrent  `json:"current" doc:"Active connection, null when disconnected"`
	Networks        []ScoredNetwork `json:"networks" doc:"Other networks, sorted by score descending"`
	BestAlternative *ScoredNetwork  `json:"best_alternative" doc:"Highest-scored network with a different SSID, null when none"`
	Summary         Summary         `json:"summary" doc:"Overall verdict and recommendation"`
}

// ScanResponse represents the full WiFi scan response
type ScanResponse struct {
	Body ScanResult
}

// LatencyRequest represents a latency test request
type LatencyRequest struct {
	Host  string `query:"host" default:"8.8.8.8" doc:"Host to probe"`
	Count int    `query:"count" default:"5" minimum:"1" doc:"Number of probe packets"`
}

// LatencyResponse represents a latency test response
type LatencyResponse struct {
	Body struct {
		Latency *LatencyResult `json:"latency" doc:"Probe outcome"`
	}
}

// RootResponse is the JSON descriptor served at / when no frontend
// bundle is present.
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}
