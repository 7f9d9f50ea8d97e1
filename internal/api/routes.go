package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/roomsignal/roomsignal/internal/api/handlers"
	"github.com/roomsignal/roomsignal/internal/scan"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, scanSvc scan.Service) {
	scanHandler := handlers.NewScanHandler(scanSvc)

	huma.Register(api, huma.Operation{
		OperationID: "scanWifi",
		Method:      http.MethodGet,
		Path:        "/api/scan",
		Summary:     "Scan WiFi environment",
		Description: "Scans for WiFi networks and returns the current connection, scored nearby networks, the best alternative and a summary recommendation",
		Tags:        []string{"WiFi"},
	}, scanHandler.Scan)

	huma.Register(api, huma.Operation{
		OperationID: "checkLatency",
		Method:      http.MethodGet,
		Path:        "/api/latency",
		Summary:     "Run a latency test",
		Description: "Probes the given host with ping and returns round-trip statistics",
		Tags:        []string{"WiFi"},
	}, scanHandler.Latency)
}
