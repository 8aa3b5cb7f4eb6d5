package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Rimuy-Amaya/Catkuro/docs" // registro del swagger generado
	mem "github.com/Rimuy-Amaya/Catkuro/internal/adapters/storage/memory"
	"github.com/Rimuy-Amaya/Catkuro/internal/adapters/storage/redisstore"
	"github.com/Rimuy-Amaya/Catkuro/internal/domain/report"
	"github.com/Rimuy-Amaya/Catkuro/internal/domain/sessions"
	"github.com/Rimuy-Amaya/Catkuro/internal/middleware"
	"github.com/Rimuy-Amaya/Catkuro/internal/platform/logger"
)

type Options struct {
	// Opcional: loggea cada request si viene.
	Logger logger.Logger

	// Opcional: si viene, las sesiones van a Redis. Si no, in-memory.
	RedisAddr string

	// Ruta del TTF del reporte. Default "font.ttf" junto al binario.
	FontPath string

	// Opcional: rate limit para la generación de reportes. El caller es
	// dueño del limiter (y de su Stop).
	ReportLimiter *middleware.RateLimiter
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var repo sessions.Repository
	if opts.RedisAddr != "" {
		repo = redisstore.NewSessionsRepo(opts.RedisAddr)
	} else {
		repo = mem.NewSessionsRepo()
	}

	svc := sessions.NewService(repo)

	fontPath := opts.FontPath
	if fontPath == "" {
		fontPath = "font.ttf"
	}
	ren := report.NewRenderer(fontPath)

	var reportLimit func(http.Handler) http.Handler
	if opts.ReportLimiter != nil {
		reportLimit = middleware.RateLimit(opts.ReportLimiter)
	}

	sessions.RegisterRoutes(r, svc, ren, reportLimit)

	return r
}
