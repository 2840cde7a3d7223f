package api

import (
	"net/http"
	"route-optimization-service/internal/api/handlers"
	"route-optimization-service/internal/gazetteer"
	"route-optimization-service/internal/metrics"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP API is built from. Plans, Publisher
// and Events are optional.
type Deps struct {
	Engine    *services.RouteOptimizer
	Gazetteer *gazetteer.Gazetteer
	Plans     ports.PlanRepository
	Publisher ports.EventPublisher
	Events    ports.EventSubscriber

	// RateLimitRPS of zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Engine:    d.Engine,
		Plans:     d.Plans,
		Publisher: d.Publisher,
	}
	historyHandler := &handlers.PlanHistoryHandler{Repo: d.Plans}
	placeHandler := &handlers.PlaceHandler{Gazetteer: d.Gazetteer}

	var v1 http.Handler = routeMux(routeHandler, historyHandler, placeHandler)
	if d.RateLimitRPS > 0 {
		v1 = rateLimitMiddleware(d.RateLimitRPS, d.RateLimitBurst, v1)
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/v1/routes/", v1)
	mux.Handle("/v1/plans", v1)
	mux.Handle("/v1/places", v1)

	if d.Events != nil {
		eventsHandler := &handlers.EventsHandler{Subscriber: d.Events}
		mux.HandleFunc("/v1/events/ws", eventsHandler.Stream)
	}

	return requestIDMiddleware(loggingMiddleware(mux))
}

func routeMux(
	routes *handlers.RouteHandler,
	history *handlers.PlanHistoryHandler,
	places *handlers.PlaceHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/routes/optimize", routes.Optimize)
	mux.HandleFunc("/v1/routes/optimize-multi-stop", routes.OptimizeMultiStop)
	mux.HandleFunc("/v1/routes/departure-time", routes.DepartureTime)
	mux.HandleFunc("/v1/routes/fuel-optimization", routes.FuelOptimization)
	mux.HandleFunc("/v1/plans", history.List)
	mux.HandleFunc("/v1/places", places.List)

	return mux
}
