// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/food-selector/cliparse"
	"github.com/danielhkuo/food-selector/handlers"
	"github.com/danielhkuo/food-selector/middleware"
	"github.com/danielhkuo/food-selector/selector"
)

func NewRouter(svc *selector.Service, cfg cliparse.Config, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	restaurantHandler := handlers.NewRestaurantHandler(svc, cfg)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	if gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Read
	mux.HandleFunc("GET /api/restaurants", middleware.WithLogging(restaurantHandler.ListRestaurants))

	// Mutations (rate limited per client IP)
	mux.HandleFunc("POST /api/set-user", middleware.WithLogging(limiter.Limit(restaurantHandler.SetUser)))
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(limiter.Limit(restaurantHandler.Vote)))
	mux.HandleFunc("POST /api/note", middleware.WithLogging(limiter.Limit(restaurantHandler.Note)))
	mux.HandleFunc("POST /api/suggest", middleware.WithLogging(limiter.Limit(restaurantHandler.Suggest)))
	mux.HandleFunc("POST /api/reset", middleware.WithLogging(limiter.Limit(restaurantHandler.Reset)))

	// Root: the frontend when configured, otherwise a banner
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("food-selector API v1"))
		})
	}

	return middleware.Recover(middleware.CORS(mux))
}
