package genres

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is the static genre alias mapping. Aliasing is symmetric: if "Dance"
// lists "House" as an alias, a show tagged "House" matches a "Dance" filter
// and vice versa.
type Table struct {
	aliases map[string][]string // lowercased canonical -> lowercased aliases
}

// Default covers the station's common cross-listed genres.
func Default() *Table {
	return NewTable(map[string][]string{
		"Dance":      {"House", "Disco"},
		"Electronic": {"Techno", "Electro", "IDM"},
		"Hip Hop":    {"Rap", "R&B"},
		"Ambient":    {"Downtempo", "Chillout"},
	})
}

// NewTable builds a Table from canonical -> aliases pairs.
func NewTable(m map[string][]string) *Table {
	t := &Table{aliases: make(map[string][]string)}
	for canonical, aliases := range m {
		lowered := make([]string, len(aliases))
		for i, a := range aliases {
			lowered[i] = strings.ToLower(a)
		}
		t.aliases[strings.ToLower(canonical)] = lowered
	}
	return t
}

// Load reads the alias table from a YAML file of canonical -> aliases pairs.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg struct {
		Genres map[string][]string `yaml:"genres"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return NewTable(cfg.Genres), nil
}

// Matches reports whether any of a show's genre tags matches the selected
// genre. A tag matches if it contains (or is contained by, case-insensitive)
// the selected term or any of its alias-expanded forms.
func (t *Table) Matches(tags []string, selected string) bool {
	if selected == "" {
		return false
	}
	terms := t.expand(selected)
	for _, tag := range tags {
		lowTag := strings.ToLower(strings.TrimSpace(tag))
		if lowTag == "" {
			continue
		}
		for _, term := range terms {
			if strings.Contains(lowTag, term) || strings.Contains(term, lowTag) {
				return true
			}
		}
	}
	return false
}

// expand returns the selected term plus everything aliased to or from it.
func (t *Table) expand(selected string) []string {
	low := strings.ToLower(strings.TrimSpace(selected))
	terms := []string{low}

	// Canonical -> aliases
	terms = append(terms, t.aliases[low]...)

	// Alias -> canonical (and siblings)
	for canonical, aliases := range t.aliases {
		for _, a := range aliases {
			if a == low {
				terms = append(terms, canonical)
				terms = append(terms, aliases...)
				break
			}
		}
	}
	return terms
}
