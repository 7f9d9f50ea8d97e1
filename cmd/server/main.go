package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/roomsignal/roomsignal/internal/api"
	"github.com/roomsignal/roomsignal/internal/config"
	"github.com/roomsignal/roomsignal/internal/diag"
	"github.com/roomsignal/roomsignal/internal/scan"
	"github.com/roomsignal/roomsignal/internal/telemetry"
	"github.com/roomsignal/roomsignal/pkg/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging)
	telemetry.InitMetrics()

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("RoomSignal", "1.0.0")
	humaConfig.Info.Description = "WiFi Network Analyzer for macOS"
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "ok"
		resp.Body.Service = "RoomSignal"
		return resp, nil
	})

	// Wire the scan service onto the real diagnostic utilities
	runner := diag.ExecRunner{Timeout: time.Duration(cfg.Probe.TimeoutSeconds) * time.Second}
	scanSvc := scan.NewService(runner, cfg.Probe.Host, cfg.Probe.ScanCount)
	api.RegisterRoutes(router, humaAPI, scanSvc)

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler())

	// Serve the bundled frontend when present, otherwise a JSON descriptor
	registerStatic(router, cfg.Server.StaticDir)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	printBanner(cfg.Server.Port)

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting RoomSignal API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogging configures zerolog from config
func setupLogging(lcfg config.LoggingConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	switch strings.ToLower(lcfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.ToLower(lcfg.Format) == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// registerStatic mounts the frontend bundle routes
func registerStatic(router *chi.Mux, staticDir string) {
	indexPath := filepath.Join(staticDir, "index.html")

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(indexPath); err == nil {
			http.ServeFile(w, r, indexPath)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RootResponse{Message: "RoomSignal API", Docs: "/api/docs"})
	})

	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		router.Handle("/static/*", fs)
	}
}

func printBanner(port string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("  RoomSignal - WiFi Network Analyzer")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\n  Starting server at http://localhost:%s\n", port)
	fmt.Printf("  API docs available at http://localhost:%s/api/docs\n\n", port)
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("user_agent", r.UserAgent()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
