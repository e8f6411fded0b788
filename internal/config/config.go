package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/drillplan/internal/augment"
	"github.com/abhisek/drillplan/internal/llm"
	"github.com/abhisek/drillplan/internal/logging"
	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/season"
)

// Config is the drillplan configuration file. Every field is optional;
// missing ones keep their defaults.
type Config struct {
	Season      SeasonConfig      `yaml:"season"`
	Schedule    ScheduleConfig    `yaml:"schedule"`
	Catalog     string            `yaml:"catalog"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Log         LogConfig         `yaml:"log"`
}

type SeasonConfig struct {
	Start  string        `yaml:"start"`
	End    string        `yaml:"end"`
	Phases []PhaseConfig `yaml:"phases"`
}

type PhaseConfig struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Description string `yaml:"description"`
	Directive   string `yaml:"directive"`
}

type ScheduleConfig struct {
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

// SuggestionsConfig tunes the AI drill suggestions. API keys are never
// read from the file, only from the environment.
type SuggestionsConfig struct {
	Provider      string        `yaml:"provider"`
	Model         string        `yaml:"model"`
	CategoryLabel string        `yaml:"category_label"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxTokens     int           `yaml:"max_tokens"`
	Temperature   float64       `yaml:"temperature"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration: the 2026 season, the
// 20:00-21:15 slot, the embedded drill catalog and Gemini suggestions.
func Default() *Config {
	s := season.Default()
	phases := make([]PhaseConfig, len(s.Phases))
	for i, p := range s.Phases {
		phases[i] = PhaseConfig{
			Name:        p.Name,
			Kind:        string(p.Kind),
			Start:       season.FormatDate(p.Start),
			End:         season.FormatDate(p.End),
			Description: p.Description,
			Directive:   p.Directive,
		}
	}

	sched := planner.DefaultSchedule()
	sugg := augment.DefaultConfig()
	llmCfg := llm.DefaultConfig()

	return &Config{
		Season: SeasonConfig{
			Start:  season.FormatDate(s.Start),
			End:    season.FormatDate(s.End),
			Phases: phases,
		},
		Schedule: ScheduleConfig{
			StartTime: sched.StartTime,
			EndTime:   sched.EndTime,
		},
		Suggestions: SuggestionsConfig{
			Provider:      llmCfg.Provider,
			CategoryLabel: sugg.CategoryLabel,
			Timeout:       sugg.Timeout,
			MaxTokens:     sugg.MaxTokens,
			Temperature:   sugg.Temperature,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. An empty path skips the file.
// Env vars use the prefix DRILLPLAN_:
//
//	DRILLPLAN_SEASON_START, DRILLPLAN_SEASON_END,
//	DRILLPLAN_SCHEDULE_START, DRILLPLAN_SCHEDULE_END,
//	DRILLPLAN_CATALOG,
//	DRILLPLAN_LLM_PROVIDER, DRILLPLAN_LLM_MODEL, DRILLPLAN_LLM_TIMEOUT,
//	DRILLPLAN_LLM_MAX_TOKENS, DRILLPLAN_CATEGORY_LABEL,
//
// A numeric or duration override that does not parse is an error.
//	DRILLPLAN_LOG_LEVEL, DRILLPLAN_LOG_FILE
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"DRILLPLAN_SEASON_START", &cfg.Season.Start},
		{"DRILLPLAN_SEASON_END", &cfg.Season.End},
		{"DRILLPLAN_SCHEDULE_START", &cfg.Schedule.StartTime},
		{"DRILLPLAN_SCHEDULE_END", &cfg.Schedule.EndTime},
		{"DRILLPLAN_CATALOG", &cfg.Catalog},
		{"DRILLPLAN_LLM_PROVIDER", &cfg.Suggestions.Provider},
		{"DRILLPLAN_LLM_MODEL", &cfg.Suggestions.Model},
		{"DRILLPLAN_CATEGORY_LABEL", &cfg.Suggestions.CategoryLabel},
		{"DRILLPLAN_LOG_LEVEL", &cfg.Log.Level},
		{"DRILLPLAN_LOG_FILE", &cfg.Log.File},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	if v := os.Getenv("DRILLPLAN_LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DRILLPLAN_LLM_TIMEOUT: %w", err)
		}
		cfg.Suggestions.Timeout = d
	}
	if v := os.Getenv("DRILLPLAN_LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DRILLPLAN_LLM_MAX_TOKENS: %w", err)
		}
		cfg.Suggestions.MaxTokens = n
	}
	return nil
}

// Validate checks every section. The season is fully built so that date
// and phase errors surface at startup.
func (c *Config) Validate() error {
	if _, err := c.BuildSeason(); err != nil {
		return err
	}
	for _, t := range []string{c.Schedule.StartTime, c.Schedule.EndTime} {
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("schedule time %q must be HH:MM", t)
		}
	}
	if c.Suggestions.Timeout <= 0 {
		return errors.New("suggestions.timeout must be positive")
	}
	if c.Suggestions.MaxTokens <= 0 {
		return errors.New("suggestions.max_tokens must be positive")
	}
	if c.Suggestions.Temperature < 0 || c.Suggestions.Temperature > 1 {
		return errors.New("suggestions.temperature must be between 0 and 1")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// BuildSeason converts the season section into a validated season.Season.
func (c *Config) BuildSeason() (season.Season, error) {
	start, err := season.ParseDate(c.Season.Start)
	if err != nil {
		return season.Season{}, fmt.Errorf("season.start: %w", err)
	}
	end, err := season.ParseDate(c.Season.End)
	if err != nil {
		return season.Season{}, fmt.Errorf("season.end: %w", err)
	}

	s := season.Season{Start: start, End: end}
	for i, pc := range c.Season.Phases {
		p := season.Phase{
			Name:        pc.Name,
			Kind:        season.PhaseKind(pc.Kind),
			Description: pc.Description,
			Directive:   pc.Directive,
		}
		if p.Start, err = season.ParseDate(pc.Start); err != nil {
			return season.Season{}, fmt.Errorf("season.phases[%d].start: %w", i, err)
		}
		if p.End, err = season.ParseDate(pc.End); err != nil {
			return season.Season{}, fmt.Errorf("season.phases[%d].end: %w", i, err)
		}
		s.Phases = append(s.Phases, p)
	}

	if err := s.Validate(); err != nil {
		return season.Season{}, err
	}
	return s, nil
}

// BuildSchedule returns the session time slot.
func (c *Config) BuildSchedule() planner.Schedule {
	return planner.Schedule{StartTime: c.Schedule.StartTime, EndTime: c.Schedule.EndTime}
}

// AugmentConfig returns the suggestion service settings.
func (c *Config) AugmentConfig() augment.Config {
	return augment.Config{
		CategoryLabel: c.Suggestions.CategoryLabel,
		Timeout:       c.Suggestions.Timeout,
		MaxTokens:     c.Suggestions.MaxTokens,
		Temperature:   c.Suggestions.Temperature,
	}
}

// LLMConfig merges the suggestions section into the provider settings
// read from the environment. When the chosen provider has no key, the
// standard API key variables are checked instead.
func (c *Config) LLMConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if c.Suggestions.Provider != "" {
		cfg.Provider = c.Suggestions.Provider
	}
	cfg.SetModel(c.Suggestions.Model)

	if !cfg.HasKey() {
		if discovered, ok := llm.DiscoverConfig(); ok {
			discovered.Retry = cfg.Retry
			return discovered
		}
	}
	return cfg
}
