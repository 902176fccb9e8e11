package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/yuceelege/GNN-TAMP/core"
	"github.com/yuceelege/GNN-TAMP/internal/actuator"
	"github.com/yuceelege/GNN-TAMP/internal/checkpoint"
	"github.com/yuceelege/GNN-TAMP/internal/config"
	tampv1 "github.com/yuceelege/GNN-TAMP/internal/genproto/tampv1"
	"github.com/yuceelege/GNN-TAMP/internal/logging"
	"github.com/yuceelege/GNN-TAMP/internal/motion"
	"github.com/yuceelege/GNN-TAMP/internal/observability"
	"github.com/yuceelege/GNN-TAMP/internal/oracle"
	"github.com/yuceelege/GNN-TAMP/internal/planner"
)

func main() {
	configPath := flag.String("config", "configs/planner.yaml", "Path to the planner YAML configuration")
	scenePath := flag.String("scene", "configs/scene.json", "Path to the target scene (.json or .g)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	cfg, err := config.LoadPlannerConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to load configuration", logging.String("path", *configPath), logging.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	rpcMetrics, err := observability.NewRPCCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise RPC metrics", logging.String("error", err.Error()))
		os.Exit(1)
	}
	plannerMetrics, err := observability.NewPlannerCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise planner metrics", logging.String("error", err.Error()))
		os.Exit(1)
	}
	metricsSrv := serveMetrics(cfg.MetricsAddr(), rpcMetrics, log)

	target, err := loadTarget(*scenePath, log)
	if err != nil {
		log.Error(ctx, "failed to load scene", logging.String("path", *scenePath), logging.String("error", err.Error()))
		os.Exit(1)
	}

	dial := func(addr string) *grpc.ClientConn {
		conn, err := grpc.NewClient(addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
			grpc.WithUnaryInterceptor(rpcMetrics.UnaryClientInterceptor()),
		)
		if err != nil {
			log.Error(ctx, "failed to create gRPC client", logging.String("addr", addr), logging.String("error", err.Error()))
			os.Exit(1)
		}
		return conn
	}

	oracleConn := dial(cfg.OracleEndpoint())
	defer oracleConn.Close()
	motionConn := dial(cfg.MotionEndpoint())
	defer motionConn.Close()
	actuatorConn := dial(cfg.ActuatorEndpoint())
	defer actuatorConn.Close()

	opts := []planner.Option{
		planner.WithLogger(log),
		planner.WithMetrics(plannerMetrics),
	}

	if cfg.Checkpoint.Dir != "" || cfg.Checkpoint.InMemory {
		dir := cfg.Checkpoint.Dir
		if cfg.Checkpoint.InMemory {
			dir = ""
		}
		store, err := checkpoint.Open(dir)
		if err != nil {
			log.Error(ctx, "failed to open checkpoint store", logging.String("dir", dir), logging.String("error", err.Error()))
			os.Exit(1)
		}
		defer store.Close()
		opts = append(opts, planner.WithCheckpointer(store))
	}

	loop, err := planner.New(
		oracle.New(tampv1.NewPriorityOracleClient(oracleConn), cfg.Planner.Seed, log),
		motion.New(tampv1.NewMotionSynthesisClient(motionConn)),
		actuator.New(tampv1.NewActuatorClient(actuatorConn)),
		planner.Config{
			MotionBudget:      cfg.Planner.MotionBudget,
			OracleTimeout:     cfg.Planner.OracleTimeout,
			ExecTimeout:       cfg.Planner.ExecTimeout,
			StallRetries:      cfg.Planner.StallRetries,
			StallBudgetGrowth: cfg.Planner.StallBudgetGrowth,
			PoseTolerance:     cfg.Planner.PoseTolerance,
		},
		opts...,
	)
	if err != nil {
		log.Error(ctx, "failed to construct planner", logging.String("error", err.Error()))
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	result, err := loop.Run(runCtx, target)
	if err != nil {
		log.Error(ctx, "episode aborted", logging.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(result)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}

	if !result.Done() {
		os.Exit(1)
	}
}

// loadTarget reads the scene file, picking the parser from the extension.
func loadTarget(path string, log logging.Logger) (*core.TargetGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		desc    core.SceneDescription
		summary *core.SceneSummary
	)
	if strings.EqualFold(filepath.Ext(path), ".g") {
		desc, summary, err = core.LoadGScene(f)
	} else {
		desc, summary, err = core.LoadScene(f)
	}
	if err != nil {
		return nil, err
	}

	log.Info(context.Background(), "loaded scene",
		logging.String("format", summary.Format),
		logging.Int("blocks", len(summary.BlockIDs)),
	)
	return core.BuildTarget(desc)
}

func printSummary(result *planner.Result) {
	summary := struct {
		EpisodeID       string   `json:"episode_id"`
		State           string   `json:"state"`
		Order           []string `json:"order"`
		Iterations      int      `json:"iterations"`
		WithinTolerance bool     `json:"within_tolerance"`
		FailDetail      string   `json:"fail_detail,omitempty"`
	}{
		EpisodeID:       result.EpisodeID,
		State:           string(result.State),
		Order:           result.Order,
		Iterations:      len(result.Iterations),
		WithinTolerance: result.WithinTolerance,
		FailDetail:      result.FailDetail,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(summary)
}

func serveMetrics(addr string, collector *observability.RPCCollector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()
	return srv
}
