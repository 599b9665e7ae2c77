package perros

import (
	"net/http"
	"strconv"
	"strings"
)

// parseListFilter lee los query params del listado.
// page/limit inválidos caen al default; minEdad/maxEdad inválidos son 400.
func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	f := ListFilter{Page: DefaultPage, Limit: DefaultLimit}

	if v := strings.TrimSpace(q.Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Page = n
		}
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Limit = n
		}
	}

	// raza es match exacto: se usa tal cual llega
	if v := q.Get("raza"); v != "" {
		f.Raza = &v
	}
	if v := strings.TrimSpace(q.Get("nombre")); v != "" {
		f.Nombre = &v
	}

	var err error
	if f.MinEdad, err = intParam(q.Get("minEdad"), "minEdad"); err != nil {
		return ListFilter{}, err
	}
	if f.MaxEdad, err = intParam(q.Get("maxEdad"), "maxEdad"); err != nil {
		return ListFilter{}, err
	}

	return f.Normalize(), nil
}

func intParam(v, name string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, invalid(name + " debe ser un entero")
	}
	return &n, nil
}
