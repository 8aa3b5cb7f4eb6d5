package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Rimuy-Amaya/Catkuro/internal/adapters/assets"
	"github.com/Rimuy-Amaya/Catkuro/internal/middleware"
	"github.com/Rimuy-Amaya/Catkuro/internal/platform/httpclient"
	"github.com/Rimuy-Amaya/Catkuro/internal/platform/logger"
	"github.com/Rimuy-Amaya/Catkuro/internal/router"
)

// @title        Catkuro API
// @version      1.0
// @description  Calculadora de calorías diarias para gatos: RER, DER, análisis de ingesta, plan de alimentación y reporte PNG.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	fontPath := os.Getenv("FONT_PATH")
	if fontPath == "" {
		fontPath = "font.ttf"
	}
	if fontURL := os.Getenv("FONT_URL"); fontURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := assets.EnsureFont(ctx, fontPath, fontURL, httpclient.New(30*time.Second))
		cancel()
		if err != nil {
			// El server arranca igual; el endpoint de reporte responde 503
			// hasta que alguien deje el TTF en su lugar.
			log.Warn("font download failed, report endpoint degraded", map[string]any{
				"path": fontPath, "error": err.Error(),
			})
		}
	}

	// 10 reportes por minuto por IP alcanza de sobra para uso humano.
	reportLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer reportLimiter.Stop()

	r := router.NewRouter(router.Options{
		Logger:        log,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		FontPath:      fontPath,
		ReportLimiter: reportLimiter,
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"*"},
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      c.Handler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
