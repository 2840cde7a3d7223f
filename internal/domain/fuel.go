package domain

// A suggested refuelling point measured from the route start.
type FuelStop struct {
	Number     int
	DistanceKm float64
}

// FuelPlan is the refuelling strategy for a route of a given length.
type FuelPlan struct {
	TotalDistanceKm  float64
	FuelNeededLiters float64
	FuelCost         float64
	CostPerKm        float64
	StopCount        int
	Stops            []FuelStop
	Tips             []string
	Vehicle          VehicleProfile
}
