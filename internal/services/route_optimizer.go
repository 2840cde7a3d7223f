package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
)

const (
	EngineName    = "Route Optimization Engine"
	EngineVersion = "1.1.0"

	recommendedDepartures      = 5
	closestArrivalDepartures   = 5
	recommendedPreferredDepart = 3
)

// Constraints are optional per-call overrides. Nil fields use engine defaults.
type Constraints struct {
	PreferredSpeedKmh *float64
	Vehicle           *domain.VehicleSpec
}

type SingleRouteResult struct {
	Plan            domain.RoutePlan
	Recommendations []string
	Warnings        []domain.Warning
}

type MultiStopResult struct {
	Plan     domain.RoutePlan
	Order    []int
	Strategy OrderStrategy
	Warnings []domain.Warning
}

type DepartureSuggestion struct {
	// Best options: top scores, or the ones arriving closest to the
	// preferred time when one was given and parsed.
	Recommended []domain.DepartureOption
	// Every candidate hour, best score first.
	All                 []domain.DepartureOption
	BaseTravelTimeHours float64
	PreferredArrival    *domain.TimeOfDay
	Warnings            []domain.Warning
}

// RouteOptimizer is the entry point to the engine. It composes the
// gazetteer, cost model, route orderer, departure advisor and fuel planner.
//
// It holds no mutable state and is safe for concurrent use.
type RouteOptimizer struct {
	cfg      Config
	geocoder ports.Geocoder
	costs    CostModel
}

func NewRouteOptimizer(cfg Config, geocoder ports.Geocoder) (*RouteOptimizer, error) {
	if geocoder == nil {
		return nil, errors.New("new route optimizer: geocoder must be non-nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new route optimizer: %w", err)
	}

	return &RouteOptimizer{
		cfg:      cfg,
		geocoder: geocoder,
		costs: CostModel{
			DriverHourlyRate:   cfg.DriverHourlyRate,
			FallbackDistanceKm: cfg.FallbackDistanceKm,
		},
	}, nil
}

// OptimizeSingleRoute costs the direct route from origin to destination.
func (o *RouteOptimizer) OptimizeSingleRoute(
	ctx context.Context,
	origin string,
	destination string,
	c Constraints,
) (_ *SingleRouteResult, err error) {
	defer obs.Time(ctx, "route.OptimizeSingleRoute")(&err)

	speed, vehicle, err := o.resolveConstraints(c)
	if err != nil {
		return nil, fmt.Errorf("optimize single route: %w", err)
	}

	stops, warnings := o.resolveAll([]string{origin, destination})

	seg := o.costs.Segment(stops[0], stops[1], speed, vehicle)
	segments := []domain.RouteSegment{seg}
	totals := o.costs.Totals(segments, speed, vehicle)

	return &SingleRouteResult{
		Plan: domain.RoutePlan{
			Stops:    stops,
			Segments: segments,
			Totals:   totals,
		},
		Recommendations: routeRecommendations(totals, o.cfg.HighFuelCostThreshold),
		Warnings:        warnings,
	}, nil
}

// OptimizeMultiStopRoute orders stops (the first is the fixed start) to
// minimise total distance and costs each consecutive leg.
func (o *RouteOptimizer) OptimizeMultiStopRoute(
	ctx context.Context,
	stops []string,
	c Constraints,
) (_ *MultiStopResult, err error) {
	defer obs.Time(ctx, "route.OptimizeMultiStopRoute")(&err)

	if len(stops) < 2 {
		return nil, fmt.Errorf("optimize multi-stop route: %w", domain.ErrInsufficientStops)
	}

	speed, vehicle, err := o.resolveConstraints(c)
	if err != nil {
		return nil, fmt.Errorf("optimize multi-stop route: %w", err)
	}

	locations, warnings := o.resolveAll(stops)

	order, strategy, err := OrderStops(locations, o.costs.DistanceKm)
	if err != nil {
		return nil, fmt.Errorf("optimize multi-stop route: order stops: %w", err)
	}

	ordered := make([]domain.NamedLocation, 0, len(order))
	for _, i := range order {
		ordered = append(ordered, locations[i])
	}

	segments := make([]domain.RouteSegment, 0, len(ordered)-1)
	for i := 0; i+1 < len(ordered); i++ {
		segments = append(segments, o.costs.Segment(ordered[i], ordered[i+1], speed, vehicle))
	}

	return &MultiStopResult{
		Plan: domain.RoutePlan{
			Stops:    ordered,
			Segments: segments,
			Totals:   o.costs.Totals(segments, speed, vehicle),
		},
		Order:    order,
		Strategy: strategy,
		Warnings: warnings,
	}, nil
}

// SuggestDepartureTime ranks departure hours against the traffic model.
// An unparsable preferredArrival is reported as a warning and ignored.
func (o *RouteOptimizer) SuggestDepartureTime(
	ctx context.Context,
	origin string,
	destination string,
	preferredArrival string,
) (_ *DepartureSuggestion, err error) {
	defer obs.Time(ctx, "route.SuggestDepartureTime")(&err)

	stops, warnings := o.resolveAll([]string{origin, destination})

	baseHours := o.costs.DistanceKm(stops[0], stops[1]) / o.cfg.DefaultSpeedKmh
	all := RankDepartures(baseHours)

	res := &DepartureSuggestion{
		All:                 all,
		BaseTravelTimeHours: baseHours,
		Recommended:         all[:min(recommendedDepartures, len(all))],
	}

	if preferredArrival != "" {
		preferred, perr := domain.ParseTimeOfDay(preferredArrival)
		if perr != nil {
			warnings = append(warnings, domain.UnparsablePreferredTimeWarning(preferredArrival))
		} else {
			closest := RankByPreferredArrival(all, preferred, closestArrivalDepartures)
			res.Recommended = closest[:min(recommendedPreferredDepart, len(closest))]
			res.PreferredArrival = &preferred
		}
	}

	res.Warnings = warnings
	return res, nil
}

// OptimizeFuel plans refuelling for a route of totalDistanceKm. Missing
// vehicle fields take engine defaults; present ones must be valid.
func (o *RouteOptimizer) OptimizeFuel(
	ctx context.Context,
	totalDistanceKm float64,
	spec *domain.VehicleSpec,
) (_ *domain.FuelPlan, err error) {
	defer obs.Time(ctx, "route.OptimizeFuel")(&err)

	vehicle, err := spec.Resolve(o.cfg.DefaultVehicle)
	if err != nil {
		return nil, fmt.Errorf("optimize fuel: %w", err)
	}

	plan, err := PlanFuel(totalDistanceKm, vehicle)
	if err != nil {
		return nil, fmt.Errorf("optimize fuel: %w", err)
	}

	return &plan, nil
}

func (o *RouteOptimizer) resolveConstraints(c Constraints) (float64, domain.VehicleProfile, error) {
	speed := o.cfg.DefaultSpeedKmh
	if c.PreferredSpeedKmh != nil {
		speed = *c.PreferredSpeedKmh
		if !(speed > 0) || math.IsInf(speed, 1) {
			return 0, domain.VehicleProfile{}, &domain.InvalidConstraintError{
				Field:  "preferred_speed_kmh",
				Reason: fmt.Sprintf("must be a positive number, got %v", speed),
			}
		}
	}

	vehicle, err := c.Vehicle.Resolve(o.cfg.DefaultVehicle)
	if err != nil {
		return 0, domain.VehicleProfile{}, err
	}

	return speed, vehicle, nil
}

// resolveAll geocodes names in order, collecting a warning per unresolved one.
func (o *RouteOptimizer) resolveAll(names []string) ([]domain.NamedLocation, []domain.Warning) {
	locations := make([]domain.NamedLocation, 0, len(names))
	var warnings []domain.Warning

	for _, name := range names {
		loc, ok := o.geocoder.Resolve(name)
		if !ok {
			warnings = append(warnings, domain.UnresolvedLocationWarning(name))
		}
		locations = append(locations, loc)
	}

	return locations, warnings
}
