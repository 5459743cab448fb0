// Command pedroute plans a batch of pedestrian trips and stores the coarse
// routes in SQLite.
//
//	pedroute -scenario city.yaml -db routes.db
//	pedroute -synthetic 20x20 -trips 500 -metrics-addr :9090
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/pedroute/builder"
	"github.com/katalvlaran/pedroute/config"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
	"github.com/katalvlaran/pedroute/planner"
	"github.com/katalvlaran/pedroute/scenario"
	"github.com/katalvlaran/pedroute/simulation"
	"github.com/katalvlaran/pedroute/store"
)

func main() {
	configPath := flag.String("config", "", "Config file (default: $PEDROUTE_CONFIG or ./pedroute.yaml)")
	scenarioPath := flag.String("scenario", "", "Scenario YAML with nodes, edges, barriers and trips")
	synthetic := flag.String("synthetic", "20x20", "Synthetic grid ROWSxCOLS used without -scenario")
	trips := flag.Int("trips", 0, "Random trips to draw (default: simulation.trips)")
	dbPath := flag.String("db", "", "Route database (default: store.path)")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus listen address (default: metrics.addr)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: log.level)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pedroute: %v\n", err)
		os.Exit(1)
	}
	if *trips > 0 {
		cfg.Simulation.Trips = *trips
	}
	if *dbPath != "" {
		cfg.Store.Path = *dbPath
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log := logging.NewJSONLogger(os.Stderr, cfg.LogLevel())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *scenarioPath, *synthetic, log); err != nil {
		log.Error("pedroute failed", logging.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, _, err := config.LoadFromPath(path)
		return cfg, err
	}
	cfg, _, err := config.Load()

	return cfg, err
}

func run(ctx context.Context, cfg *config.Config, scenarioPath, synthetic string, log logging.Logger) error {
	reg := metrics.NewRegistry()
	if cfg.Metrics.Addr != "" {
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: metricsMux(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", logging.Error(err))
			}
		}()
		defer srv.Close()
		log.Info("serving metrics", logging.String("addr", cfg.Metrics.Addr))
	}

	timer := logging.StartTimer(log, "graph built")
	g, tripList, err := loadCity(cfg, scenarioPath, synthetic)
	if err != nil {
		timer.EndError(err)
		return err
	}
	st := g.Stats()
	timer.End(
		logging.Int("nodes", st.Nodes),
		logging.Int("regions", st.Regions),
		logging.Int("gateways", st.Gateways),
		logging.Int("barriers", st.Barriers))

	p, err := planner.NewPlanner(g, cfg.PlannerOptions(log, reg)...)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	runner, err := simulation.NewRunner(p,
		simulation.WithWorkers(cfg.Simulation.Workers),
		simulation.WithLogger(log),
		simulation.WithMetrics(reg),
		simulation.WithSaver(db))
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}

	rep, err := runner.Run(ctx, tripList)
	if err != nil {
		return err
	}
	log.Info("routes stored",
		logging.RunID(rep.RunID),
		logging.Count(len(rep.Routes)),
		logging.String("db", cfg.Store.Path))

	return nil
}

// loadCity returns the graph and trips of the scenario file, or a
// synthetic districted grid with random trips.
func loadCity(cfg *config.Config, scenarioPath, synthetic string) (*core.Graph, []simulation.Trip, error) {
	if scenarioPath != "" {
		f, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, nil, err
		}
		g, err := f.Graph()
		if err != nil {
			return nil, nil, err
		}
		trips, err := f.Trips()
		if err != nil {
			return nil, nil, err
		}
		if len(trips) > 0 {
			return g, trips, nil
		}

		return withRandomTrips(cfg, g)
	}

	var rows, cols int
	if _, err := fmt.Sscanf(synthetic, "%dx%d", &rows, &cols); err != nil {
		return nil, nil, fmt.Errorf("synthetic grid %q: want ROWSxCOLS: %w", synthetic, err)
	}
	g, err := builder.BuildCity(
		[]builder.BuilderOption{builder.WithSeed(cfg.Simulation.Seed), builder.WithJitter(0.15)},
		builder.Grid(rows, cols, 50),
		builder.Districts(max(rows/4, 1), max(cols/4, 1)),
		builder.River(cols/2),
		builder.Park(rows/3, cols/5, cols/2),
	)
	if err != nil {
		return nil, nil, err
	}

	return withRandomTrips(cfg, g)
}

func withRandomTrips(cfg *config.Config, g *core.Graph) (*core.Graph, []simulation.Trip, error) {
	sim := cfg.Simulation
	trips, err := simulation.RandomTrips(g, sim.Trips, sim.MinDistance, sim.MaxDistance, sim.RouteChoices, sim.Seed)
	if err != nil {
		return nil, nil, err
	}

	return g, trips, nil
}

func metricsMux(reg *metrics.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
