package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/llm"
	"github.com/abhisek/drillplan/internal/logging"
	"github.com/abhisek/drillplan/internal/planner"
)

// SessionStore is the part of the session store the augmenter needs.
type SessionStore interface {
	Get(id string) (planner.Session, error)
	ReplaceExercises(id string, exercises []planner.Exercise) error
}

// Service asks an LLM for replacement drills and swaps them into a
// session. At most one request per session is in flight at a time.
type Service struct {
	provider llm.Provider
	store    SessionStore
	cfg      Config

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewService creates a suggestion service.
func NewService(provider llm.Provider, store SessionStore, cfg Config) *Service {
	if cfg.CategoryLabel == "" {
		cfg.CategoryLabel = DefaultCategoryLabel
	}
	return &Service{
		provider: provider,
		store:    store,
		cfg:      cfg,
		inflight: make(map[string]struct{}),
	}
}

// Config returns the service settings.
func (s *Service) Config() Config {
	return s.cfg
}

type suggestionOutput struct {
	Exercises []exerciseOutput `json:"exercises"`
}

type exerciseOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Intensity   string `json:"intensity"`
	Category    string `json:"category"`
	VideoURL    string `json:"videoUrl"`
}

// Suggest requests exactly three drills for the given input. Every
// returned exercise has a fresh "ai-" id. Failures come back as
// *ExternalServiceError.
func (s *Service) Suggest(ctx context.Context, in SuggestInput) ([]planner.Exercise, error) {
	if in.CategoryLabel == "" {
		in.CategoryLabel = s.cfg.CategoryLabel
	}
	exercises, err := s.suggest(ctx, in)
	if err != nil {
		return nil, &ExternalServiceError{Err: err}
	}
	return exercises, nil
}

// Augment replaces the exercises of session id with fresh suggestions
// built from its theme. On any failure the session is left as it was.
// A second call for a session that is still waiting returns ErrBusy.
func (s *Service) Augment(ctx context.Context, id string) ([]planner.Exercise, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	if !s.acquire(id) {
		return nil, ErrBusy
	}
	defer s.release(id)

	ctx = logging.WithAttrs(ctx, slog.String("session_id", id))
	exercises, err := s.suggest(ctx, SuggestInput{
		Theme:         session.Theme,
		CategoryLabel: s.cfg.CategoryLabel,
		Microcycle:    session.Microcycle,
		LoadLevel:     session.LoadLevel,
	})
	if err != nil {
		return nil, &ExternalServiceError{SessionID: id, Err: err}
	}

	if err := s.store.ReplaceExercises(id, exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Busy reports whether a suggestion for session id is in flight.
func (s *Service) Busy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[id]
	return ok
}

func (s *Service) acquire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[id]; ok {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *Service) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}

func (s *Service) suggest(ctx context.Context, in SuggestInput) ([]planner.Exercise, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDrillSuggestions)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      SuggestionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	// Providers validate too, but not every Provider does.
	if err := llm.ValidateResponse(SuggestionSchema, resp.Content); err != nil {
		return nil, err
	}

	var out suggestionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return toExercises(out.Exercises)
}

func toExercises(outs []exerciseOutput) ([]planner.Exercise, error) {
	if len(outs) != SuggestionCount {
		return nil, fmt.Errorf("expected %d suggestions, got %d", SuggestionCount, len(outs))
	}

	exercises := make([]planner.Exercise, len(outs))
	for i, o := range outs {
		category, err := drills.ParseCategory(o.Category)
		if err != nil {
			return nil, err
		}
		intensity := planner.Intensity(o.Intensity)
		if !intensity.Valid() {
			return nil, fmt.Errorf("unknown intensity %q", o.Intensity)
		}
		if o.Duration < 1 {
			return nil, fmt.Errorf("duration must be positive, got %d", o.Duration)
		}

		exercises[i] = planner.Exercise{
			ID:          "ai-" + uuid.NewString(),
			Title:       o.Title,
			Description: o.Description,
			Duration:    o.Duration,
			Intensity:   intensity,
			Category:    category,
			VideoQuery:  o.VideoURL,
		}
	}
	return exercises, nil
}
