package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"route-optimization-service/internal/adapters/events"
	"route-optimization-service/internal/adapters/repositories"
	"route-optimization-service/internal/api"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/gazetteer"
	"route-optimization-service/internal/platform/db"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL stores, brokers) behind ports and starts the HTTP server.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, plans, placeSource, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	g, err := buildGazetteer(ctx, cfg, placeSource)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("gazetteer ready places=%d", g.Len())

	engine, err := services.NewRouteOptimizer(cfg.Engine, g)
	if err != nil {
		log.Fatal(err)
	}

	publisher, subscriber, closeEvents, err := buildEvents(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeEvents()

	router := api.NewRouter(api.Deps{
		Engine:         engine,
		Gazetteer:      g,
		Plans:          plans,
		Publisher:      publisher,
		Events:         subscriber,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	// WriteTimeout stays zero so WebSocket streams are not cut off.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// openStores prefers Postgres when DATABASE_URL is set (schema and seeds are
// applied by cmd/dbtool). Otherwise a local SQLite file is initialised and
// seeded on startup.
func openStores(ctx context.Context, cfg config.Config) (*sql.DB, ports.PlanRepository, ports.PlaceSource, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Println("storage=postgres")
		return conn, repositories.NewSQLPlanRepository(conn), repositories.NewSQLPlaceRepository(conn), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := initAndSeed(conn, cfg.SeedPath); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}
	log.Printf("storage=sqlite path=%s", cfg.DBPath)
	return conn, repositories.NewSqlitePlanRepository(conn), repositories.NewSqlitePlaceRepository(conn), nil
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// buildGazetteer layers stored places and then the optional YAML file over
// the built-in table.
func buildGazetteer(ctx context.Context, cfg config.Config, source ports.PlaceSource) (*gazetteer.Gazetteer, error) {
	stored, err := source.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("build gazetteer: %w", err)
	}

	g, err := gazetteer.Default().With(stored)
	if err != nil {
		return nil, fmt.Errorf("build gazetteer: stored places: %w", err)
	}

	if cfg.GazetteerFile != "" {
		extra, err := gazetteer.LoadYAML(cfg.GazetteerFile)
		if err != nil {
			return nil, fmt.Errorf("build gazetteer: %w", err)
		}
		if g, err = g.With(extra); err != nil {
			return nil, fmt.Errorf("build gazetteer: %s: %w", cfg.GazetteerFile, err)
		}
	}

	return g, nil
}

// buildEvents uses Redis Pub/Sub for the live stream when configured, an
// in-process broker otherwise, and mirrors events to Kafka when brokers are set.
func buildEvents(ctx context.Context, cfg config.Config) (ports.EventPublisher, ports.EventSubscriber, func(), error) {
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("close event adapter: %v", err)
			}
		}
	}

	var stream interface {
		ports.EventPublisher
		ports.EventSubscriber
	}

	if cfg.RedisURL != "" {
		rb, err := events.NewRedisBroker(cfg.RedisURL, cfg.RedisChannel)
		if err != nil {
			return nil, nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rb.Ping(pingCtx); err != nil {
			_ = rb.Close()
			return nil, nil, nil, err
		}
		closers = append(closers, rb.Close)
		stream = rb
		log.Printf("events=redis channel=%s", cfg.RedisChannel)
	} else {
		stream = events.NewBroker()
		log.Println("events=memory")
	}

	fanout := events.Fanout{stream}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		closers = append(closers, kp.Close)
		fanout = append(fanout, kp)
		log.Printf("events=kafka topic=%s brokers=%v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	return fanout, stream, closeAll, nil
}
