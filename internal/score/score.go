// Package score rates observed WiFi networks with a deterministic
// 0-100 heuristic built from four weighted factors: signal strength,
// band/channel width, PHY mode and (for the active connection only)
// measured latency.
package score

import (
	"math"
	"strings"

	"github.com/roomsignal/roomsignal/pkg/models"
)

// Calculate scores a network. isCurrent unlocks the latency factor,
// which only applies to the connection actually carrying traffic.
// Pure and deterministic: the same inputs always produce the same
// breakdown.
func Calculate(net models.NetworkInfo, isCurrent bool, latency *models.LatencyResult) models.ScoreBreakdown {
	var total float64
	factors := make(map[string]models.ScoreFactor, 4)

	// Signal strength, 40 points max.
	if net.RSSI != nil {
		signalScore := float64(net.SignalPercentage()) * 0.4
		total += signalScore
		factors["signal"] = models.ScoreFactor{Score: round1(signalScore), Max: 40}
	} else {
		factors["signal"] = models.ScoreFactor{Score: 0, Max: 40, Note: "No signal data"}
	}

	// Band and channel width, 25 points max. 5GHz wins on throughput,
	// 2.4GHz still earns points for range and wall penetration.
	bandScore := 0.0
	if net.Band == "5GHz" {
		bandScore = 15
		switch net.BandWidth {
		case "80MHz", "160MHz":
			bandScore += 10
		case "40MHz":
			bandScore += 5
		}
	} else {
		bandScore = 8
		if net.BandWidth == "40MHz" {
			bandScore += 5
		}
	}
	total += bandScore
	factors["band"] = models.ScoreFactor{Score: bandScore, Max: 25}

	// PHY mode, 15 points max. Checked newest-first.
	phyScore := 4.0
	switch {
	case strings.Contains(net.PHYMode, "ax"): // WiFi 6
		phyScore = 15
	case strings.Contains(net.PHYMode, "ac"): // WiFi 5
		phyScore = 12
	case strings.Contains(net.PHYMode, "n"): // WiFi 4
		phyScore = 8
	}
	total += phyScore
	factors["phy_mode"] = models.ScoreFactor{Score: phyScore, Max: 15}

	// Latency, 20 points max, current connection only.
	if isCurrent && latency.OK() {
		avg := *latency.AvgMs
		latScore := 5.0
		switch {
		case avg < 20:
			latScore = 20
		case avg < 50:
			latScore = 15
		case avg < 100:
			latScore = 10
		}
		total += latScore
		factors["latency"] = models.ScoreFactor{Score: latScore, Max: 20, AvgMs: &avg}
	} else {
		note := "N/A"
		if isCurrent {
			note = "Not measured"
		}
		factors["latency"] = models.ScoreFactor{Score: 0, Max: 20, Note: note}
	}

	return models.ScoreBreakdown{
		Total:          round1(total),
		MaxPossible:    100,
		Grade:          Grade(total),
		Factors:        factors,
		Recommendation: recommendation(total, isCurrent, net.RSSI),
	}
}

// Grade maps a score to a letter grade. The bands partition [0, 100]
// with no gaps or overlap.
func Grade(score float64) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func recommendation(score float64, isCurrent bool, rssi *int) string {
	if isCurrent {
		switch {
		case score >= 80:
			return "Excellent connection - optimal for this location"
		case score >= 60:
			return "Good connection - suitable for most tasks"
		case score >= 40:
			return "Fair connection - may experience slowdowns"
		default:
			return "Poor connection - consider switching networks"
		}
	}

	switch {
	case rssi == nil:
		return "Signal strength unknown - try connecting to test"
	case score >= 50:
		return "Good candidate for this location"
	case score >= 30:
		return "Acceptable - may work for basic tasks"
	default:
		return "Weak signal - not recommended for this location"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
