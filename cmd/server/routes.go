package main

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/camptrack/internal/auth"
	"github.com/mmynk/camptrack/internal/config"
	"github.com/mmynk/camptrack/internal/middleware"
	"github.com/mmynk/camptrack/internal/report"
	"github.com/mmynk/camptrack/internal/service"
	"github.com/mmynk/camptrack/internal/storage"
)

// newHandler wires the services, health check and metrics endpoint.
func newHandler(cfg *config.Config, store storage.Store) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Metrics sit outermost so unauthenticated calls are counted too.
	var interceptors []connect.Interceptor
	if cfg.MetricsEnabled {
		interceptors = append(interceptors, rpcMetrics().Interceptor())
	}
	interceptors = append(interceptors,
		middleware.RequireAuth(jwtManager, store),
		middleware.LoggingInterceptor(),
	)
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	reportPath, reportHandler := service.NewReportServiceHandler(
		service.NewReportService(report.NewEngine(store)), opts)
	mux.Handle(reportPath, reportHandler)

	campPath, campHandler := service.NewCampServiceHandler(service.NewCampService(store), opts)
	mux.Handle(campPath, campHandler)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return loggingMiddleware(corsMiddleware(mux))
}

var (
	rpcMetricsOnce sync.Once
	rpcMetricsSet  *middleware.Metrics
)

// rpcMetrics registers the RPC collectors with the default registry once,
// next to the report collectors.
func rpcMetrics() *middleware.Metrics {
	rpcMetricsOnce.Do(func() {
		rpcMetricsSet = middleware.NewMetrics(prometheus.DefaultRegisterer)
	})
	return rpcMetricsSet
}

// loggingMiddleware logs all incoming HTTP requests at debug level; RPC
// outcomes are logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
