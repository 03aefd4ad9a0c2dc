package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/study-tracker/docs"
	"github.com/blaisecz/study-tracker/internal/api/handler"
	"github.com/blaisecz/study-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	logHandler      *handler.LogHandler
	analysisHandler *handler.AnalysisHandler
	checkInHandler  *handler.CheckInHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	logHandler *handler.LogHandler,
	analysisHandler *handler.AnalysisHandler,
	checkInHandler *handler.CheckInHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		logHandler:      logHandler,
		analysisHandler: analysisHandler,
		checkInHandler:  checkInHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recovery)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Tracing)

		r.Route("/logs", func(r chi.Router) {
			r.Post("/", rt.logHandler.Create)
			r.Get("/", rt.logHandler.List)
			r.Get("/{date}", rt.logHandler.Get)
		})

		r.Route("/analysis", func(r chi.Router) {
			r.Post("/day", rt.analysisHandler.Day)
			r.Get("/trend", rt.analysisHandler.Trend)
			r.Get("/balance", rt.analysisHandler.Balance)
			r.Get("/depth/ai", rt.analysisHandler.AIDepth)
			r.Get("/depth/dsa", rt.analysisHandler.DSADepth)
			r.Get("/weekly", rt.analysisHandler.Weekly)
		})

		r.Post("/weekly/run", rt.checkInHandler.RunWeekly)
		r.Get("/weekly", rt.checkInHandler.History)
		r.Get("/streak", rt.checkInHandler.Streak)
		r.Post("/reminder/run", rt.checkInHandler.RunReminder)

		r.Get("/insights", rt.insightsHandler.GetInsights)
		r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
	})

	return r
}
