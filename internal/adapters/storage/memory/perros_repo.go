package memory

import (
	"context"
	"sort"
	"sync"

	"perros-api/internal/domain/perros"
)

// perrosRepo es el store de desarrollo (DB_DRIVER=memory) y el de los tests
// end-to-end. Asigna ids incrementales como lo haría una columna serial.
type perrosRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]perros.Perro
}

func NewPerrosRepo() perros.Repository {
	return &perrosRepo{
		nextID: 1,
		byID:   make(map[int64]perros.Perro),
	}
}

func (r *perrosRepo) Create(ctx context.Context, p perros.Perro) (perros.Perro, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *perrosRepo) GetByID(ctx context.Context, id int64) (perros.Perro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return perros.Perro{}, perros.ErrNotFound
	}
	return p, nil
}

func (r *perrosRepo) Update(ctx context.Context, p perros.Perro) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return perros.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *perrosRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return perros.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *perrosRepo) List(ctx context.Context, f perros.ListFilter) ([]perros.Perro, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]perros.Perro, 0)
	for _, p := range r.byID {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := min(f.Offset(), total)
	end := min(start+f.Limit, total)

	out := make([]perros.Perro, end-start)
	copy(out, matched[start:end])
	return out, total, nil
}
