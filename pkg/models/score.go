package models

// LatencyResult holds the outcome of a round-trip latency probe.
// On success the four statistics are set; on failure only Error and
// Host are populated.
type LatencyResult struct {
	MinMs    *float64 `json:"min_ms,omitempty" doc:"Minimum round-trip time in milliseconds"`
	AvgMs    *float64 `json:"avg_ms,omitempty" doc:"Average round-trip time in milliseconds"`
	MaxMs    *float64 `json:"max_ms,omitempty" doc:"Maximum round-trip time in milliseconds"`
	StddevMs *float64 `json:"stddev_ms,omitempty" doc:"Round-trip time standard deviation in milliseconds"`
	Host     string   `json:"host" doc:"Probed host"`
	Error    string   `json:"error,omitempty" doc:"Failure cause when the probe did not succeed"`
}

// OK reports whether the probe produced usable statistics.
func (l *LatencyResult) OK() bool {
	return l != nil && l.Error == "" && l.AvgMs != nil
}

// ScoreFactor is one weighted component of a network score.
type ScoreFactor struct {
	Score float64  `json:"score" doc:"Points awarded for this factor"`
	Max   int      `json:"max" doc:"Maximum points this factor can contribute"`
	Note  string   `json:"note,omitempty" doc:"Why the factor contributed no points"`
	AvgMs *float64 `json:"avg_ms,omitempty" doc:"Measured average latency, latency factor only"`
}

// ScoreBreakdown is the full desirability score for one network.
// Factor maxima sum to 100, so Total is always within [0, 100].
type ScoreBreakdown struct {
	Total          float64                `json:"total" doc:"Overall score, 0-100"`
	MaxPossible    int                    `json:"max_possible" doc:"Maximum achievable score"`
	Grade          string                 `json:"grade" enum:"A,B,C,D,F" doc:"Letter grade"`
	Factors        map[string]ScoreFactor `json:"factors" doc:"Per-factor breakdown"`
	Recommendation string                 `json:"recommendation" doc:"Human-readable advice"`
}

// Summary is the per-scan verdict derived from the scored current
// connection and the best alternative network.
type Summary struct {
	Status         string `json:"status" enum:"disconnected,poor,fair,good,excellent" doc:"Connection status band"`
	Grade          string `json:"grade,omitempty" doc:"Current connection letter grade"`
	Message        string `json:"message" doc:"Human-readable status message"`
	Recommendation string `json:"recommendation" doc:"Suggested action"`
	CurrentBand    string `json:"current_band,omitempty" doc:"Band of the current connection"`
	// NetworksFound is a pointer so a connected summary still emits an
	// explicit zero while a disconnected summary omits the key entirely.
	NetworksFound *int `json:"networks_found,omitempty" doc:"Number of other networks observed"`
}
