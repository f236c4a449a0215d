package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/llm"
	"github.com/abhisek/casetrack/internal/server"
	"github.com/abhisek/casetrack/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the game over HTTP and WebSocket",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides CASETRACK_HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTPAddr = addr
	}
	logger := newLogger(os.Stdout, cfg)

	m := game.NewMachine(game.WithLogger(logger))
	if err := m.Catalog().Validate(); err != nil {
		return fmt.Errorf("case catalog: %w", err)
	}
	if err := m.Board().Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	logger.Info("opened store", "dialect", st.Dialect())

	engine := game.NewEngine(m, game.Restore(ctx, st.SnapshotRepo(), logger), game.EngineOptions{
		Snapshots:       st.SnapshotRepo(),
		Events:          st.EventRepo(),
		Logger:          logger,
		GradingPause:    cfg.GradingPause,
		TransitionPause: cfg.TransitionPause,
		SnapshotKeep:    cfg.SnapshotKeep,
	})
	defer engine.Close()

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), logger)
	if err != nil && !errors.Is(err, llm.ErrDisabled) {
		return fmt.Errorf("llm provider: %w", err)
	}
	if provider != nil {
		logger.Info("coach online", "provider", provider.Name(), "model", provider.ModelID())
	}

	srv := server.New(cfg.HTTPAddr, server.Options{
		Engine:      engine,
		Coach:       coach.New(provider, m.Catalog(), coach.DefaultConfig(), logger),
		Catalog:     m.Catalog(),
		DB:          st,
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
