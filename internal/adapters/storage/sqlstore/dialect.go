package sqlstore

import (
	"fmt"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect agrupa lo que cambia entre motores: driver de database/sql,
// formato de placeholders y tamaño de pool.
type Dialect struct {
	Name   string
	Driver string

	// MaxOpenConns por defecto para este motor.
	MaxOpenConns int

	placeholder func(n int) string
}

// Placeholder devuelve el marcador del argumento n (base 1).
func (d Dialect) Placeholder(n int) string {
	return d.placeholder(n)
}

var (
	Postgres = Dialect{
		Name:         "postgres",
		Driver:       "pgx",
		MaxOpenConns: 10,
		placeholder:  func(n int) string { return "$" + strconv.Itoa(n) },
	}

	// SQLite serializa escrituras; una sola conexión evita "database is locked".
	SQLite = Dialect{
		Name:         "sqlite",
		Driver:       "sqlite",
		MaxOpenConns: 1,
		placeholder:  func(int) string { return "?" },
	}
)

func DialectByName(name string) (Dialect, error) {
	switch name {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("sqlstore: unknown dialect %q", name)
	}
}
