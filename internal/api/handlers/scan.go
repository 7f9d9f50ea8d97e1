package handlers

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/roomsignal/roomsignal/internal/scan"
	"github.com/roomsignal/roomsignal/pkg/models"
)

// ScanHandler handles WiFi scan and latency HTTP requests
type ScanHandler struct {
	scanSvc scan.Service
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanSvc scan.Service) *ScanHandler {
	return &ScanHandler{scanSvc: scanSvc}
}

// Scan runs a full WiFi environment scan. Diagnostic failures degrade
// to a disconnected result instead of an HTTP error.
func (h *ScanHandler) Scan(ctx context.Context, _ *struct{}) (*models.ScanResponse, error) {
	log.Info().Msg("Scan request received")
	return &models.ScanResponse{Body: h.scanSvc.Scan(ctx)}, nil
}

// Latency runs a standalone latency probe. Probe failures are reported
// inside the payload, never as an HTTP error.
func (h *ScanHandler) Latency(ctx context.Context, req *models.LatencyRequest) (*models.LatencyResponse, error) {
	log.Info().Str("host", req.Host).Int("count", req.Count).Msg("Latency request received")
	resp := &models.LatencyResponse{}
	resp.Body.Latency = h.scanSvc.Latency(ctx, req.Host, req.Count)
	return resp, nil
}
