package catalog

import (
	"context"
	"fmt"

	"tokokue.com/admin/internal/storage"
)

// collection is an ordered list of records persisted as one JSON array.
type collection[T any] struct {
	key   string
	id    func(*T) *string
	blank func(*T) bool // null or empty entries, dropped on load
}

var (
	products = collection[Product]{
		key:   storage.KeyProducts,
		id:    func(p *Product) *string { return &p.ID },
		blank: func(p *Product) bool { return *p == Product{} },
	}
	slides = collection[Slide]{
		key:   storage.KeySlides,
		id:    func(s *Slide) *string { return &s.ID },
		blank: func(s *Slide) bool { return s.Src == "" },
	}
)

// load reads the list, dropping blank entries and giving ids to records
// stored without one. Either repair is written back so ids stay stable
// across reads.
func (c collection[T]) load(ctx context.Context, r *Repo) ([]T, error) {
	stored := storage.GetJSON(ctx, r.store, c.key, []T{})

	list := make([]T, 0, len(stored))
	changed := false
	for i := range stored {
		if c.blank(&stored[i]) {
			changed = true
			continue
		}
		if id := c.id(&stored[i]); *id == "" {
			*id = r.newID()
			changed = true
		}
		list = append(list, stored[i])
	}
	if changed {
		if err := c.save(ctx, r, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (c collection[T]) save(ctx context.Context, r *Repo, list []T) error {
	if list == nil {
		list = []T{}
	}
	if err := storage.SetJSON(ctx, r.store, c.key, list); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

func (c collection[T]) indexOf(list []T, id string) int {
	for i := range list {
		if *c.id(&list[i]) == id {
			return i
		}
	}
	return -1
}

func (c collection[T]) withIDs(r *Repo, list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if id := c.id(&out[i]); *id == "" {
			*id = r.newID()
		}
	}
	return out
}

func inRange(n, i int) bool { return i >= 0 && i < n }

func removeAt[T any](list []T, i int) []T {
	return append(list[:i], list[i+1:]...)
}
