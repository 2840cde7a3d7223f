package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"route-optimization-service/internal/adapters/events"
	"route-optimization-service/internal/adapters/repositories"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/gazetteer"
	"route-optimization-service/internal/services"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

type testServer struct {
	handler http.Handler
	plans   *repositories.SqlitePlanRepository
	broker  *events.Broker
}

func newTestServer(t *testing.T, rps float64) *testServer {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	g := gazetteer.Default()
	engine, err := services.NewRouteOptimizer(services.DefaultConfig(), g)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	plans := repositories.NewSqlitePlanRepository(db)
	broker := events.NewBroker()

	return &testServer{
		handler: NewRouter(Deps{
			Engine:         engine,
			Gazetteer:      g,
			Plans:          plans,
			Publisher:      broker,
			Events:         broker,
			RateLimitRPS:   rps,
			RateLimitBurst: 1,
		}),
		plans:  plans,
		broker: broker,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, r)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body=%q)", err, rr.Body.String())
	}
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 0)

	rr := s.do(t, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
	body := decode[map[string]string](t, rr)
	if body["status"] != "ok" || body["version"] != services.EngineVersion {
		t.Errorf("body = %v", body)
	}

	if rr := s.do(t, http.MethodPost, "/health", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health status = %d, want 405", rr.Code)
	}
}

func TestOptimizeRouteRecordsAndPublishes(t *testing.T) {
	s := newTestServer(t, 0)

	ch, cancel, _ := s.broker.Subscribe(context.Background())
	defer cancel()

	rr := s.do(t, http.MethodPost, "/v1/routes/optimize", `{"origin": "Delhi", "destination": "Mumbai"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}

	res := decode[dto.OptimizeRouteResponse](t, rr)
	if res.DistanceKm < 1150 || res.DistanceKm > 1165 {
		t.Errorf("distance = %v", res.DistanceKm)
	}
	if res.TimeHours < 19.2 || res.TimeHours > 19.4 {
		t.Errorf("time = %v", res.TimeHours)
	}
	if res.DistanceKm != dto.Round2(res.DistanceKm) {
		t.Errorf("distance %v not rounded to 2 decimals", res.DistanceKm)
	}
	if !res.Origin.Resolved || !res.Destination.Resolved {
		t.Errorf("endpoints not resolved: %+v %+v", res.Origin, res.Destination)
	}
	if res.PlanID == "" {
		t.Fatal("missing plan_id")
	}

	select {
	case evt := <-ch:
		if evt.PlanID != res.PlanID {
			t.Errorf("event plan_id = %q, want %q", evt.PlanID, res.PlanID)
		}
	default:
		t.Error("no route.planned event published")
	}

	recs, err := s.plans.ListPlans(context.Background(), 10)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != res.PlanID {
		t.Fatalf("recorded plans = %+v", recs)
	}

	rr = s.do(t, http.MethodGet, "/v1/plans?limit=5", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list plans status = %d", rr.Code)
	}
	history := decode[dto.ListPlansResponse](t, rr)
	if len(history.Plans) != 1 || history.Plans[0].Kind != "single" {
		t.Errorf("history = %+v", history)
	}
}

func TestOptimizeRouteValidation(t *testing.T) {
	s := newTestServer(t, 0)

	cases := []struct {
		name string
		body string
	}{
		{"unknown field", `{"origin": "Delhi", "destination": "Mumbai", "speed": 10}`},
		{"missing destination", `{"origin": "Delhi"}`},
		{"bad json", `{"origin": `},
		{"two objects", `{"origin": "Delhi", "destination": "Mumbai"}{}`},
		{"zero speed", `{"origin": "Delhi", "destination": "Mumbai", "constraints": {"preferred_speed_kmh": 0}}`},
		{"negative mileage", `{"origin": "Delhi", "destination": "Mumbai", "constraints": {"vehicle": {"mileage_kmpl": -1}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := s.do(t, http.MethodPost, "/v1/routes/optimize", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body=%s)", rr.Code, rr.Body.String())
			}
		})
	}

	if rr := s.do(t, http.MethodGet, "/v1/routes/optimize", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", rr.Code)
	}
}

func TestOptimizeRouteUnknownPlacesWarn(t *testing.T) {
	s := newTestServer(t, 0)

	rr := s.do(t, http.MethodPost, "/v1/routes/optimize", `{"origin": "Atlantis", "destination": "El Dorado"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	res := decode[dto.OptimizeRouteResponse](t, rr)
	if res.DistanceKm != 100 {
		t.Errorf("distance = %v, want fallback 100", res.DistanceKm)
	}
	if len(res.Warnings) != 2 || res.Warnings[0].Code != "unresolved_location" {
		t.Errorf("warnings = %+v", res.Warnings)
	}
}

func TestOptimizeMultiStop(t *testing.T) {
	s := newTestServer(t, 0)

	rr := s.do(t, http.MethodPost, "/v1/routes/optimize-multi-stop",
		`{"stops": ["Delhi", "Bangalore", "Jaipur", "Mumbai"], "constraints": {"preferred_speed_kmh": 50}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}

	res := decode[dto.OptimizeMultiStopResponse](t, rr)
	if strings.Join(res.OptimizedRoute, ",") != "Delhi,Jaipur,Mumbai,Bangalore" {
		t.Errorf("route = %v", res.OptimizedRoute)
	}
	if res.Strategy != "exact" || len(res.Segments) != 3 {
		t.Errorf("strategy=%q segments=%d", res.Strategy, len(res.Segments))
	}

	rr = s.do(t, http.MethodPost, "/v1/routes/optimize-multi-stop", `{"stops": ["Delhi"]}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("single stop status = %d, want 400", rr.Code)
	}
}

func TestDepartureTime(t *testing.T) {
	s := newTestServer(t, 0)

	rr := s.do(t, http.MethodPost, "/v1/routes/departure-time",
		`{"origin": "Mumbai", "destination": "Pune", "preferred_arrival_time": "13:00"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}

	res := decode[dto.DepartureTimeResponse](t, rr)
	if len(res.Recommended) != 3 || len(res.AllOptions) != 17 {
		t.Errorf("recommended=%d all=%d", len(res.Recommended), len(res.AllOptions))
	}
	if res.PreferredArrival == nil || *res.PreferredArrival != "13:00" {
		t.Errorf("preferred = %v", res.PreferredArrival)
	}
	if res.AllOptions[0].DepartureTime != "06:00" || res.AllOptions[0].TrafficLevel != "Light" {
		t.Errorf("best option = %+v", res.AllOptions[0])
	}

	rr = s.do(t, http.MethodPost, "/v1/routes/departure-time",
		`{"origin": "Mumbai", "destination": "Pune", "preferred_arrival_time": "soon"}`)
	res = decode[dto.DepartureTimeResponse](t, rr)
	if len(res.Warnings) != 1 || res.Warnings[0].Code != "unparsable_preferred_time" {
		t.Errorf("warnings = %+v", res.Warnings)
	}
}

func TestFuelOptimization(t *testing.T) {
	s := newTestServer(t, 0)

	rr := s.do(t, http.MethodPost, "/v1/routes/fuel-optimization",
		`{"route_info": {"total_distance_km": 450}, "vehicle_specs": {"mileage_kmpl": 12, "fuel_price_per_liter": 102.5, "tank_capacity_liters": 60}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}

	res := decode[dto.FuelOptimizationResponse](t, rr)
	if res.FuelNeededLiters != 37.5 || res.TotalFuelCost != 3843.75 {
		t.Errorf("liters=%v cost=%v", res.FuelNeededLiters, res.TotalFuelCost)
	}
	if res.CostPerKm != 8.54 {
		t.Errorf("cost per km = %v, want 8.54", res.CostPerKm)
	}
	if res.RecommendedStops != 0 || len(res.FuelStops) != 0 {
		t.Errorf("stops = %d %v", res.RecommendedStops, res.FuelStops)
	}

	for _, body := range []string{
		`{"route_info": {}}`,
		`{"route_info": {"total_distance_km": -5}}`,
		`{"route_info": {"total_distance_km": 100}, "vehicle_specs": {"tank_capacity_liters": 0}}`,
	} {
		if rr := s.do(t, http.MethodPost, "/v1/routes/fuel-optimization", body); rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rr.Code)
		}
	}
}

func TestPlacesAndPlanLimit(t *testing.T) {
	s := newTestServer(t, 0)

	rr := s.do(t, http.MethodGet, "/v1/places", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	places := decode[dto.ListPlacesResponse](t, rr)
	if len(places.Places) != 10 || places.Places[0].Name != "Mumbai" {
		t.Errorf("places = %+v", places.Places)
	}

	for _, q := range []string{"0", "101", "ten"} {
		if rr := s.do(t, http.MethodGet, "/v1/plans?limit="+q, ""); rr.Code != http.StatusBadRequest {
			t.Errorf("limit=%s status = %d, want 400", q, rr.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, 0.001)

	if rr := s.do(t, http.MethodGet, "/v1/places", ""); rr.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rr.Code)
	}
	rr := s.do(t, http.MethodGet, "/v1/places", "")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rr.Code)
	}

	// Health and metrics stay reachable when the API is throttled.
	if rr := s.do(t, http.MethodGet, "/health", ""); rr.Code != http.StatusOK {
		t.Errorf("health status = %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, 0)

	s.do(t, http.MethodPost, "/v1/routes/optimize", `{"origin": "Pune", "destination": "Mumbai"}`)

	rr := s.do(t, http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, name := range []string{"http_requests_total", "route_engine_operations_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics missing %s", name)
		}
	}
}
