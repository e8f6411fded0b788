package drills

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML catalog of the form
//
//	Physical:
//	  - title: ...
//	    description: ...
//	    video_query: ...
//
// and validates it.
func Parse(data []byte) (Catalog, error) {
	var raw map[string][]Template
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing drill catalog: %w", err)
	}

	cat := make(Catalog, len(raw))
	for name, pool := range raw {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		cat[c] = pool
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Load reads and parses a YAML catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading drill catalog: %w", err)
	}
	return Parse(data)
}
