// Package layout resolves theater layouts from whichever store the
// deployment configures: MySQL, a YAML file or the built-in reference hall.
package layout

import (
	"context"
	"sort"

	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

// Source looks theaters up by id.  Implementations return
// seatmap.ErrTheaterNotFound for unknown ids.
type Source interface {
	List(ctx context.Context) ([]seatmap.Theater, error)
	Get(ctx context.Context, id string) (seatmap.Theater, error)
}

// Static is an in-memory Source.
type Static struct {
	byID map[string]seatmap.Theater
}

// NewStatic indexes theaters by id.  Later entries win on duplicate ids.
func NewStatic(theaters ...seatmap.Theater) *Static {
	s := &Static{byID: make(map[string]seatmap.Theater, len(theaters))}
	for _, t := range theaters {
		s.byID[t.ID] = t
	}
	return s
}

// FromFile loads a YAML layout document into a Static source.
func FromFile(path string) (*Static, error) {
	theaters, err := seatmap.LoadTheaters(path)
	if err != nil {
		return nil, err
	}
	return NewStatic(theaters...), nil
}

// Default serves only the reference hall.
func Default() *Static {
	return NewStatic(seatmap.DefaultTheater())
}

func (s *Static) List(_ context.Context) ([]seatmap.Theater, error) {
	out := make([]seatmap.Theater, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Static) Get(_ context.Context, id string) (seatmap.Theater, error) {
	t, ok := s.byID[id]
	if !ok {
		return seatmap.Theater{}, seatmap.ErrTheaterNotFound
	}
	return t, nil
}
