package augment

import "time"

// DefaultCategoryLabel is the squad description sent with every request.
const DefaultCategoryLabel = "Elite U-18 Futsal"

// SuggestionCount is how many drills one request asks for and accepts.
const SuggestionCount = 3

// Config holds suggestion settings.
type Config struct {
	// CategoryLabel describes the squad, e.g. "Elite U-18 Futsal".
	CategoryLabel string

	// Timeout bounds a single suggestion request. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings drillplan ships with.
func DefaultConfig() Config {
	return Config{
		CategoryLabel: DefaultCategoryLabel,
		Timeout:       30 * time.Second,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
}
