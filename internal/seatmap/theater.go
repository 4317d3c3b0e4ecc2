package seatmap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theater is a named layout plus the rules used to classify and price it.
type Theater struct {
	ID    string    `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Rows  []RowSpec `json:"rows" yaml:"rows"`
	Rules Rules     `json:"rules" yaml:"rules"`
}

// Grid generates the theater's seat grid.
func (t Theater) Grid() [][]Seat {
	return t.Rules.Generate(t.Rows)
}

// ErrInvalidLayout wraps every validation failure of a layout document.
var ErrInvalidLayout = errors.New("invalid theater layout")

// Validate checks that the theater has an ID, at least one row, only
// non-negative counts and no coordinate repeated within the occupied or
// selected list.
func (t Theater) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLayout)
	}
	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: theater %q has no rows", ErrInvalidLayout, t.ID)
	}
	for i, rs := range t.Rows {
		if rs.Left < 0 || rs.GapBefore < 0 || rs.Center < 0 || rs.GapAfterCenter < 0 || rs.Right < 0 {
			return fmt.Errorf("%w: theater %q row %d has a negative count", ErrInvalidLayout, t.ID, i+1)
		}
	}
	if t.Rules.RegularPrice < 0 || t.Rules.VIPPrice < 0 {
		return fmt.Errorf("%w: theater %q has a negative price", ErrInvalidLayout, t.ID)
	}
	for name, list := range map[string][]Coord{"occupied": t.Rules.Occupied, "selected": t.Rules.Selected} {
		seen := make(map[Coord]bool, len(list))
		for _, c := range list {
			if seen[c] {
				return fmt.Errorf("%w: theater %q lists %s seat (%d, %d) twice",
					ErrInvalidLayout, t.ID, name, c.RowIndex, c.Column)
			}
			seen[c] = true
		}
	}
	return nil
}

// layoutFile is the on-disk shape.  Rules is a pointer so that an omitted
// block falls back to DefaultRules instead of zero prices.
type layoutFile struct {
	Theaters []struct {
		ID    string    `yaml:"id"`
		Name  string    `yaml:"name"`
		Rows  []RowSpec `yaml:"rows"`
		Rules *Rules    `yaml:"rules"`
	} `yaml:"theaters"`
}

// LoadTheaters reads a YAML layout document from path.
func LoadTheaters(path string) ([]Theater, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	return ParseTheaters(data)
}

// ParseTheaters decodes and validates a YAML layout document.  Theater IDs
// must be unique within the document.
func ParseTheaters(data []byte) ([]Theater, error) {
	var doc layoutFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout file: %w", err)
	}
	if len(doc.Theaters) == 0 {
		return nil, fmt.Errorf("%w: no theaters defined", ErrInvalidLayout)
	}

	seen := make(map[string]bool, len(doc.Theaters))
	out := make([]Theater, 0, len(doc.Theaters))
	for _, ft := range doc.Theaters {
		t := Theater{ID: ft.ID, Name: ft.Name, Rows: ft.Rows, Rules: DefaultRules()}
		if ft.Rules != nil {
			t.Rules = *ft.Rules
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate theater id %q", ErrInvalidLayout, t.ID)
		}
		seen[t.ID] = true
		if t.Name == "" {
			t.Name = t.ID
		}
		out = append(out, t)
	}
	return out, nil
}

// ErrTheaterNotFound is returned by layout stores for unknown theater IDs.
var ErrTheaterNotFound = errors.New("theater not found")
