package perros

import (
	"math"
	"strings"
)

// Perro es el único registro persistido por el servicio.
// ID lo asigna el store al crear y no cambia después.
type Perro struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Raza   string `json:"raza"`
	Edad   int    `json:"edad"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 100

	// maxOffset deja margen para que offset+limit no desborde en ningún store.
	maxOffset = math.MaxInt - MaxLimit
)

// ListFilter son los filtros opcionales del listado.
// Un campo nil/vacío significa "no filtrar".
type ListFilter struct {
	Raza    *string
	Nombre  *string
	MinEdad *int
	MaxEdad *int

	Page  int
	Limit int
}

// Normalize lleva page y limit a sus rangos válidos: page >= 1, limit en [1,100].
// Los defaults (page 1, limit 10) los pone quien parsea la request.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < MinLimit {
		f.Limit = MinLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Offset asume un filtro ya normalizado. Satura en maxOffset: una página
// tan lejana igual queda más allá del final.
func (f ListFilter) Offset() int {
	if f.Page <= 1 || f.Limit < 1 {
		return 0
	}
	if f.Page-1 > maxOffset/f.Limit {
		return maxOffset
	}
	return (f.Page - 1) * f.Limit
}

// Matches evalúa los filtros en memoria; lo usa el store in-memory.
func (f ListFilter) Matches(p Perro) bool {
	if f.Raza != nil && p.Raza != *f.Raza {
		return false
	}
	if f.Nombre != nil && !strings.Contains(p.Nombre, *f.Nombre) {
		return false
	}
	if f.MinEdad != nil && p.Edad < *f.MinEdad {
		return false
	}
	if f.MaxEdad != nil && p.Edad > *f.MaxEdad {
		return false
	}
	return true
}

// Page es una página del listado. Total cuenta todo el conjunto filtrado.
type Page struct {
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int     `json:"total"`
	Data  []Perro `json:"data"`
}
