package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	httpadapter "gridpoint.io/sudoku/internal/adapters/http"
	"gridpoint.io/sudoku/internal/config"
	"gridpoint.io/sudoku/internal/hint"
	"gridpoint.io/sudoku/internal/infrastructure/storage"
	"gridpoint.io/sudoku/internal/usecase"
	"gridpoint.io/sudoku/internal/validator"
)

var configPath string

// serveCmd runs the JSON API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver as a JSON API",
	Long: `Serve exposes solve, check, validate, hint and puzzle persistence
over HTTP. Settings come from an optional YAML config file plus
SUDOKU_* environment overrides.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Wire providers -> use cases -> HTTP adapter
	s := pickSolver(cfg.Solver.Kind)
	v := validator.New()
	st := storage.NewFS(cfg.Server.DataDir)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpadapter.RequestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("data_dir", cfg.Server.DataDir),
			zap.String("solver", cfg.Solver.Kind),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
