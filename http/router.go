package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterDeps struct {
	FutureValue    *FutureValueHandler
	Quantification *QuantificationHandler
	State          *StateHandler
	Tools          *ToolHandler
	RateLimiter    *RateLimiter
	Logger         *zap.Logger
	Timeout        time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	if deps.Timeout > 0 {
		r.Use(middleware.Timeout(deps.Timeout))
	}

	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(RateLimitMiddleware(deps.RateLimiter))
		}

		r.Post("/goal/future-value", deps.FutureValue.CalculateFutureValue)
		r.Post("/fso/quantify", deps.Quantification.Quantify)

		r.Post("/fso", deps.State.Create)
		r.Route("/fso/{id}", func(r chi.Router) {
			r.Get("/", deps.State.Get)
			r.Put("/", deps.State.Put)
			r.Post("/quantify", deps.State.Quantify)
		})

		r.Get("/tools", deps.Tools.Describe)
		r.Post("/tools/{name}", deps.Tools.Execute)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
