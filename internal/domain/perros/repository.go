package perros

import "context"

// Repository es el acceso al store. GetByID, Update y Delete devuelven
// ErrNotFound cuando no existe el id.
type Repository interface {
	Create(ctx context.Context, p Perro) (Perro, error)
	GetByID(ctx context.Context, id int64) (Perro, error)
	Update(ctx context.Context, p Perro) error
	Delete(ctx context.Context, id int64) error

	// List recibe un filtro normalizado y devuelve la página y el total filtrado.
	List(ctx context.Context, f ListFilter) ([]Perro, int, error)
}
