package drills

import (
	"errors"
	"fmt"
)

// Category is the closed set of training categories.
type Category string

const (
	CategoryPhysical  Category = "Physical"
	CategoryTechnical Category = "Technical"
	CategoryTactical  Category = "Tactical"
	CategorySetPiece  Category = "Set-Piece"
	CategoryGame      Category = "Game"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPhysical,
	CategoryTechnical,
	CategoryTactical,
	CategorySetPiece,
	CategoryGame,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory returns the Category named s.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

var (
	// ErrEmptyPool indicates a category with no drill templates. The
	// picker cannot cycle through an empty pool, so this is fatal.
	ErrEmptyPool = errors.New("drill catalog has an empty category pool")

	// ErrUnknownCategory indicates a category outside the closed set.
	ErrUnknownCategory = errors.New("unknown drill category")
)

// Template is a reusable, read-only drill blueprint.
type Template struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	VideoQuery  string `yaml:"video_query"`
}

// Catalog maps every category to its ordered pool of templates.
type Catalog map[Category][]Template

// Validate checks that every category has at least one template and that
// no key falls outside the category set.
func (c Catalog) Validate() error {
	for cat := range c {
		if !cat.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
		}
	}
	for _, cat := range Categories {
		if len(c[cat]) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyPool, cat)
		}
	}
	return nil
}

// Size returns the total number of templates in the catalog.
func (c Catalog) Size() int {
	n := 0
	for _, pool := range c {
		n += len(pool)
	}
	return n
}
