package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/augment"
	"github.com/abhisek/drillplan/internal/config"
	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/llm"
	"github.com/abhisek/drillplan/internal/logging"
	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
)

// env is everything a command needs: configuration, logger and the
// generated calendar.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	season  season.Season
	catalog drills.Catalog
	store   *store.Store
	today   string

	closeLog func() error
}

// setup loads configuration, opens the log and generates the calendar.
// The caller must call close.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("DRILLPLAN_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	w, closeLog, err := logging.Open(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	e.closeLog = closeLog
	e.logger = logging.New(w, level)
	slog.SetDefault(e.logger)

	if e.today, err = resolveToday(cmd); err != nil {
		e.close()
		return nil, err
	}
	if err := e.buildCalendar(); err != nil {
		e.close()
		return nil, err
	}
	return e, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.Catalog = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	return cfg.Validate()
}

// resolveToday returns the --today flag, normalised, or the local date.
func resolveToday(cmd *cobra.Command) (string, error) {
	v, _ := cmd.Flags().GetString("today")
	if v == "" {
		return time.Now().Format(time.DateOnly), nil
	}
	d, err := season.ParseDate(v)
	if err != nil {
		return "", fmt.Errorf("--today: %w", err)
	}
	return season.FormatDate(d), nil
}

func (e *env) buildCalendar() error {
	var err error
	if e.season, err = e.cfg.BuildSeason(); err != nil {
		return err
	}

	if e.cfg.Catalog != "" {
		if e.catalog, err = drills.Load(e.cfg.Catalog); err != nil {
			return err
		}
	} else {
		e.catalog = drills.Default()
	}

	sessions, err := planner.NewSynthesizer(e.season, e.cfg.BuildSchedule()).Generate(e.catalog)
	if err != nil {
		return fmt.Errorf("generate calendar: %w", err)
	}
	e.store = store.New(sessions)

	e.logger.Debug("calendar generated",
		"sessions", e.store.Len(),
		"start", season.FormatDate(e.season.Start),
		"end", season.FormatDate(e.season.End),
		"drills", e.catalog.Size())
	return nil
}

// augmenter builds the suggestion service. It returns (nil, err) when no
// provider is configured, which callers may treat as "AI disabled".
func (e *env) augmenter(ctx context.Context) (*augment.Service, error) {
	provider, err := llm.NewProvider(ctx, e.cfg.LLMConfig(), e.logger)
	if err != nil {
		return nil, err
	}
	return augment.NewService(provider, e.store, e.cfg.AugmentConfig()), nil
}

func (e *env) close() {
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}
