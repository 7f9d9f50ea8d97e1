// Package scan orchestrates one WiFi environment scan: invoke the
// inventory utility, parse its output, probe latency for the active
// connection, score everything and derive the summary verdict.
package scan

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/roomsignal/roomsignal/internal/diag"
	"github.com/roomsignal/roomsignal/internal/score"
	"github.com/roomsignal/roomsignal/internal/telemetry"
	"github.com/roomsignal/roomsignal/internal/wifi"
	"github.com/roomsignal/roomsignal/pkg/models"
)

type Service interface {
	// Scan performs a full environment scan. It never fails outright:
	// an unreachable utility degrades to an empty network list and a
	// disconnected summary.
	Scan(ctx context.Context) models.ScanResult
	// Latency runs a standalone latency probe against host.
	Latency(ctx context.Context, host string, count int) *models.LatencyResult
}

type scanService struct {
	runner         diag.Runner
	probeHost      string
	scanProbeCount int
}

// NewService builds a Service on top of a diagnostic runner. probeHost
// and scanProbeCount configure the quick latency test attached to the
// current connection during a scan.
func NewService(runner diag.Runner, probeHost string, scanProbeCount int) Service {
	return &scanService{
		runner:         runner,
		probeHost:      probeHost,
		scanProbeCount: scanProbeCount,
	}
}

func (s *scanService) Scan(ctx context.Context) models.ScanResult {
	scanID := uuid.New()
	start := time.Now()
	defer func() {
		telemetry.ScanDuration.Observe(time.Since(start).Seconds())
	}()
	telemetry.ScansTotal.Inc()

	raw, err := s.runner.InventoryDump(ctx)
	if err != nil {
		recordFailure(err)
		log.Warn().Err(err).Str("scan_id", scanID.String()).Msg("WiFi inventory dump failed")
		return models.ScanResult{
			Networks: []models.ScoredNetwork{},
			Summary:  disconnectedSummary(),
		}
	}

	current, networks := wifi.Parse(raw)

	// Quick latency test, only meaningful when a connection carries it.
	var latency *models.LatencyResult
	if current != nil {
		latency = s.measure(ctx, s.probeHost, s.scanProbeCount)
	}

	var scoredCurrent *models.ScoredCurrent
	if current != nil {
		breakdown := score.Calculate(current.AsNetworkInfo(), true, latency)
		scoredCurrent = &models.ScoredCurrent{
			SSID:             current.SSID,
			Channel:          current.Channel,
			Band:             current.Band,
			BandWidth:        current.BandWidth,
			PHYMode:          current.PHYMode,
			Security:         current.Security,
			RSSI:             current.RSSI,
			Noise:            current.Noise,
			SNR:              current.SignalToNoise(),
			TxRate:           current.TxRate,
			SignalQuality:    current.SignalQuality(),
			SignalPercentage: current.SignalPercentage(),
			Latency:          latency,
			Score:            breakdown,
		}
	}

	scored := make([]models.ScoredNetwork, 0, len(networks))
	for _, net := range networks {
		scored = append(scored, models.ScoredNetwork{
			SSID:             net.SSID,
			Channel:          net.Channel,
			Band:             net.Band,
			BandWidth:        net.BandWidth,
			PHYMode:          net.PHYMode,
			Security:         net.Security,
			RSSI:             net.RSSI,
			Noise:            net.Noise,
			SignalQuality:    net.SignalQuality(),
			SignalPercentage: net.SignalPercentage(),
			Score:            score.Calculate(net, false, nil),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Total > scored[j].Score.Total
	})
	telemetry.NetworksObserved.Set(float64(len(scored)))

	var best *models.ScoredNetwork
	for i := range scored {
		if scoredCurrent == nil || scored[i].SSID != scoredCurrent.SSID {
			best = &scored[i]
			break
		}
	}

	result := models.ScanResult{
		Current:         scoredCurrent,
		Networks:        scored,
		BestAlternative: best,
		Summary:         summarize(scoredCurrent, scored, best),
	}

	log.Info().
		Str("scan_id", scanID.String()).
		Bool("connected", scoredCurrent != nil).
		Int("networks", len(scored)).
		Str("status", result.Summary.Status).
		Dur("duration", time.Since(start)).
		Msg("WiFi scan completed")
	return result
}

func (s *scanService) Latency(ctx context.Context, host string, count int) *models.LatencyResult {
	result := s.measure(ctx, host, count)
	if result.Error != "" {
		log.Warn().Str("host", host).Str("error", result.Error).Msg("latency probe failed")
	} else {
		log.Info().Str("host", host).Float64("avg_ms", *result.AvgMs).Msg("latency probe completed")
	}
	return result
}

// measure runs the ping utility and decodes its round-trip summary
// line. Failures come back inside the result, never as an error.
func (s *scanService) measure(ctx context.Context, host string, count int) *models.LatencyResult {
	out, err := s.runner.LatencyProbe(ctx, host, count)
	if err != nil {
		recordFailure(err)
		return &models.LatencyResult{Host: host, Error: probeErrorMessage(err)}
	}

	min, avg, max, stddev, ok := wifi.ParseRoundTrip(out)
	if !ok {
		return &models.LatencyResult{Host: host, Error: "Could not parse ping output"}
	}
	return &models.LatencyResult{
		MinMs:    &min,
		AvgMs:    &avg,
		MaxMs:    &max,
		StddevMs: &stddev,
		Host:     host,
	}
}

func probeErrorMessage(err error) string {
	var diagErr *diag.Error
	if errors.As(err, &diagErr) {
		switch diagErr.Kind {
		case diag.KindTimeout:
			return "Timeout"
		case diag.KindExit:
			return "Ping failed"
		}
	}
	return err.Error()
}

func recordFailure(err error) {
	var diagErr *diag.Error
	if errors.As(err, &diagErr) {
		telemetry.DiagnosticFailures.WithLabelValues(diagErr.Utility, string(diagErr.Kind)).Inc()
	}
}

func disconnectedSummary() models.Summary {
	return models.Summary{
		Status:         "disconnected",
		Message:        "Not connected to any WiFi network",
		Recommendation: "Connect to a network to see analysis",
	}
}

// summarize derives the overall verdict from the scored current
// connection and the best alternative network.
func summarize(current *models.ScoredCurrent, networks []models.ScoredNetwork, best *models.ScoredNetwork) models.Summary {
	if current == nil {
		return disconnectedSummary()
	}

	total := current.Score.Total
	count := len(networks)
	summary := models.Summary{
		Grade:         current.Score.Grade,
		CurrentBand:   current.Band,
		NetworksFound: &count,
	}

	switch {
	case total >= 80:
		summary.Status = "excellent"
		summary.Message = fmt.Sprintf("Your current connection (%s) is excellent for this location.", current.SSID)
		summary.Recommendation = "No change needed - you have optimal WiFi coverage here."
	case total >= 60:
		summary.Status = "good"
		summary.Message = fmt.Sprintf("Your current connection (%s) is good for this location.", current.SSID)
		if best != nil && best.Score.Total > total+10 {
			summary.Recommendation = fmt.Sprintf("Consider switching to %s for potentially better performance.", best.SSID)
		} else {
			summary.Recommendation = "Your current network is a good choice for this location."
		}
	case total >= 40:
		summary.Status = "fair"
		summary.Message = fmt.Sprintf("Your current connection (%s) is fair - you may experience some slowdowns.", current.SSID)
		if best != nil {
			summary.Recommendation = fmt.Sprintf("Try switching to %s (%s) for better performance.", best.SSID, best.Band)
		} else {
			summary.Recommendation = "Try moving closer to your router or reducing interference."
		}
	default:
		summary.Status = "poor"
		summary.Message = fmt.Sprintf("Your current connection (%s) has poor signal at this location.", current.SSID)
		if best != nil {
			summary.Recommendation = fmt.Sprintf("Strongly recommend switching to %s (%s).", best.SSID, best.Band)
		} else {
			summary.Recommendation = "Move to a different location or check your router placement."
		}
	}
	return summary
}
