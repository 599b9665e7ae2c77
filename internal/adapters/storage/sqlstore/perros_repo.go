package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"perros-api/internal/domain/perros"
)

// Handle es lo único que el repo necesita del Accessor.
type Handle interface {
	Acquire(ctx context.Context) (*sql.DB, error)
}

type PerrosRepo struct {
	h Handle
	d Dialect
}

func NewPerrosRepo(h Handle, d Dialect) *PerrosRepo {
	return &PerrosRepo{h: h, d: d}
}

func (r *PerrosRepo) Create(ctx context.Context, p perros.Perro) (perros.Perro, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return perros.Perro{}, err
	}

	if err := db.QueryRowContext(ctx, insertQuery(r.d), p.Nombre, p.Raza, p.Edad).Scan(&p.ID); err != nil {
		return perros.Perro{}, fmt.Errorf("db error: insert: %w", err)
	}
	return p, nil
}

func (r *PerrosRepo) GetByID(ctx context.Context, id int64) (perros.Perro, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return perros.Perro{}, err
	}

	var p perros.Perro
	err = db.QueryRowContext(ctx, selectByIDQuery(r.d), id).Scan(&p.ID, &p.Nombre, &p.Raza, &p.Edad)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return perros.Perro{}, perros.ErrNotFound
		}
		return perros.Perro{}, fmt.Errorf("db error: select: %w", err)
	}
	return p, nil
}

func (r *PerrosRepo) Update(ctx context.Context, p perros.Perro) error {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, updateQuery(r.d), p.Nombre, p.Raza, p.Edad, p.ID)
	if err != nil {
		return fmt.Errorf("db error: update: %w", err)
	}
	return expectAffected(res)
}

func (r *PerrosRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, deleteQuery(r.d), id)
	if err != nil {
		return fmt.Errorf("db error: delete: %w", err)
	}
	return expectAffected(res)
}

// List ejecuta el COUNT y la página con el mismo set de predicados.
func (r *PerrosRepo) List(ctx context.Context, f perros.ListFilter) ([]perros.Perro, int, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}

	q, args := countQuery(r.d, f)
	var total int
	if err := db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: count: %w", err)
	}

	q, args = pageQuery(r.d, f)
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: list: %w", err)
	}
	defer rows.Close()

	out := make([]perros.Perro, 0, f.Limit)
	for rows.Next() {
		var p perros.Perro
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Raza, &p.Edad); err != nil {
			return nil, 0, fmt.Errorf("db error: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: rows: %w", err)
	}

	return out, total, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: rows affected: %w", err)
	}
	if n == 0 {
		return perros.ErrNotFound
	}
	return nil
}
