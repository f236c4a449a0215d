package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/casetrack/internal/app"
	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/llm"
	"github.com/abhisek/casetrack/internal/logging"
	"github.com/abhisek/casetrack/internal/screens/play"
	"github.com/abhisek/casetrack/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play at this terminal (the default)",
	RunE:  runPlay,
}

// runPlay opens the store, restores the last game and launches the TUI.
func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file beside the database.
	logger := logging.Discard()
	if !strings.Contains(dbPath, "://") {
		f, err := os.OpenFile(filepath.Join(filepath.Dir(dbPath), "casetrack.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			logger = newLogger(f, cfg)
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	initial := game.Restore(ctx, st.SnapshotRepo(), logger)
	engine := game.NewEngine(game.NewMachine(game.WithLogger(logger)), initial, game.EngineOptions{
		Snapshots:     st.SnapshotRepo(),
		Events:        st.EventRepo(),
		Logger:        logger,
		SnapshotKeep:  cfg.SnapshotKeep,
		NoAutoAdvance: true,
	})
	defer engine.Close()

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), logger)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		logger.Info("no LLM provider configured, using catalog hints")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints will come from the built-in catalog.")
		provider = nil
	}

	var c *coach.Coach
	if provider != nil {
		c = coach.New(provider, engine.Machine().Catalog(), coach.DefaultConfig(), logger)
	}

	logger.Info("starting table", slog.String("phase", string(initial.Phase)), slog.Uint64("seq", initial.Seq))
	return app.Run(app.Options{
		Engine: engine,
		Coach:  c,
		Play: play.Options{
			GradingPause:    cfg.GradingPause,
			TransitionPause: cfg.TransitionPause,
		},
	})
}
