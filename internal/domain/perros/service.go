package perros

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in Input) (Perro, error) {
	if !in.Complete() {
		return Perro{}, invalid(msgCreateRequired)
	}
	p, err := s.repo.Create(ctx, in.Apply(Perro{}))
	if err != nil {
		return Perro{}, fmt.Errorf("create: %w", err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Perro, error) {
	return s.repo.GetByID(ctx, id)
}

// List normaliza la paginación y devuelve la página junto al total filtrado.
func (s *Service) List(ctx context.Context, f ListFilter) (Page, error) {
	f = f.Normalize()
	if f.MinEdad != nil && f.MaxEdad != nil && *f.MinEdad > *f.MaxEdad {
		// rango vacío: no hace falta ir al store
		return Page{Page: f.Page, Limit: f.Limit, Total: 0, Data: []Perro{}}, nil
	}

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return Page{}, fmt.Errorf("list: %w", err)
	}
	if items == nil {
		items = []Perro{}
	}
	return Page{Page: f.Page, Limit: f.Limit, Total: total, Data: items}, nil
}

// Update aplica merge sobre el registro actual. PUT y PATCH usan la misma semántica.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Perro, error) {
	if in.Empty() {
		return Perro{}, invalid(msgUpdateRequired)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Perro{}, err
	}

	merged := in.Apply(current)
	if err := s.repo.Update(ctx, merged); err != nil {
		return Perro{}, err
	}
	return merged, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
