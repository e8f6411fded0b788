package drills

import "fmt"

// Picker hands out templates per category in strict round-robin order.
// A Picker lives for exactly one generation run; a fresh Picker starts
// every category at the head of its pool. It is not safe for concurrent use.
type Picker struct {
	catalog Catalog
	counts  map[Category]int
}

// NewPicker creates a Picker over catalog. Returns ErrEmptyPool if any
// category has no templates.
func NewPicker(catalog Catalog) (*Picker, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &Picker{
		catalog: catalog,
		counts:  make(map[Category]int, len(Categories)),
	}, nil
}

// Next returns the template at position count mod len(pool) for category,
// then advances that category's cursor.
func (p *Picker) Next(category Category) (Template, error) {
	pool := p.catalog[category]
	if len(pool) == 0 {
		if !category.Valid() {
			return Template{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
		return Template{}, fmt.Errorf("%w: %s", ErrEmptyPool, category)
	}

	n := p.counts[category]
	p.counts[category] = n + 1
	return pool[n%len(pool)], nil
}

// Count returns how many templates have been picked for category.
func (p *Picker) Count(category Category) int {
	return p.counts[category]
}
