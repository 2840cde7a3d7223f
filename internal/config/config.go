package config

import (
	"fmt"
	"os"
	"route-optimization-service/internal/services"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port          string
	DBPath        string
	DatabaseURL   string
	SeedPath      string
	GazetteerFile string

	RedisURL     string
	RedisChannel string
	KafkaBrokers []string
	KafkaTopic   string

	// Zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	Engine services.Config
}

// LoadDotEnv loads a .env file if one exists. Missing files are not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Engine settings are validated.
func Load() (Config, error) {
	engine := services.DefaultConfig()

	floats := []struct {
		key string
		dst *float64
	}{
		{"ENGINE_DEFAULT_SPEED_KMH", &engine.DefaultSpeedKmh},
		{"ENGINE_DRIVER_HOURLY_RATE", &engine.DriverHourlyRate},
		{"ENGINE_FALLBACK_DISTANCE_KM", &engine.FallbackDistanceKm},
		{"ENGINE_HIGH_FUEL_COST_THRESHOLD", &engine.HighFuelCostThreshold},
		{"ENGINE_DEFAULT_MILEAGE_KMPL", &engine.DefaultVehicle.MileageKmPerLiter},
		{"ENGINE_DEFAULT_FUEL_PRICE", &engine.DefaultVehicle.FuelPricePerLiter},
		{"ENGINE_DEFAULT_TANK_LITERS", &engine.DefaultVehicle.TankCapacityLiters},
	}
	for _, f := range floats {
		v, err := getFloat(f.key, *f.dst)
		if err != nil {
			return Config{}, err
		}
		*f.dst = v
	}
	if err := engine.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	rps, err := getFloat("RATE_LIMIT_RPS", 0)
	if err != nil {
		return Config{}, err
	}
	if rps < 0 {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_RPS must be >= 0, got %v", rps)
	}

	burst, err := getInt("RATE_LIMIT_BURST", 20)
	if err != nil {
		return Config{}, err
	}
	if burst < 1 {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_BURST must be >= 1, got %d", burst)
	}

	return Config{
		Port:           Get("PORT", "8080"),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    Get("DATABASE_URL", ""),
		SeedPath:       Get("SEED_PATH", "data/seeds/places.json"),
		GazetteerFile:  Get("GAZETTEER_FILE", ""),
		RedisURL:       Get("REDIS_URL", ""),
		RedisChannel:   Get("REDIS_CHANNEL", "route-events"),
		KafkaBrokers:   splitList(Get("KAFKA_BROKERS", "")),
		KafkaTopic:     Get("KAFKA_TOPIC", "route-events"),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
		Engine:         engine,
	}, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
