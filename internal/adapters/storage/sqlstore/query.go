package sqlstore

import (
	"strings"

	"perros-api/internal/domain/perros"
)

// predicate es una condición "columna op ?". El valor siempre viaja como
// argumento; nunca se interpola en el SQL.
type predicate struct {
	column string
	op     string
	arg    any
	suffix string
}

// builder acumula SQL y argumentos numerando placeholders según el dialecto.
type builder struct {
	d    Dialect
	sb   strings.Builder
	args []any
}

func newBuilder(d Dialect, base string) *builder {
	b := &builder{d: d}
	b.sb.WriteString(base)
	return b
}

func (b *builder) write(s string) *builder {
	b.sb.WriteString(s)
	return b
}

// bind agrega un argumento y escribe su placeholder.
func (b *builder) bind(v any) *builder {
	b.args = append(b.args, v)
	b.sb.WriteString(b.d.Placeholder(len(b.args)))
	return b
}

// where escribe " WHERE p1 AND p2 ..." solo si hay predicados.
func (b *builder) where(preds []predicate) *builder {
	for i, p := range preds {
		if i == 0 {
			b.write(" WHERE ")
		} else {
			b.write(" AND ")
		}
		b.write(p.column + " " + p.op + " ").bind(p.arg)
		if p.suffix != "" {
			b.write(" " + p.suffix)
		}
	}
	return b
}

func (b *builder) String() string { return b.sb.String() }

func (b *builder) Args() []any { return b.args }

// filterPredicates traduce solo los filtros presentes.
func filterPredicates(f perros.ListFilter) []predicate {
	preds := make([]predicate, 0, 4)
	if f.Raza != nil {
		preds = append(preds, predicate{column: "raza", op: "=", arg: *f.Raza})
	}
	if f.Nombre != nil {
		preds = append(preds, predicate{
			column: "nombre",
			op:     "LIKE",
			arg:    "%" + escapeLike(*f.Nombre) + "%",
			suffix: `ESCAPE '\'`,
		})
	}
	if f.MinEdad != nil {
		preds = append(preds, predicate{column: "edad", op: ">=", arg: *f.MinEdad})
	}
	if f.MaxEdad != nil {
		preds = append(preds, predicate{column: "edad", op: "<=", arg: *f.MaxEdad})
	}
	return preds
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike hace que % y _ del usuario se busquen literalmente.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// countQuery y pageQuery comparten los mismos predicados para que total
// corresponda exactamente al conjunto paginado.
func countQuery(d Dialect, f perros.ListFilter) (string, []any) {
	b := newBuilder(d, "SELECT COUNT(*) FROM perros").where(filterPredicates(f))
	return b.String(), b.Args()
}

func pageQuery(d Dialect, f perros.ListFilter) (string, []any) {
	b := newBuilder(d, "SELECT id, nombre, raza, edad FROM perros").
		where(filterPredicates(f)).
		write(" ORDER BY id ASC LIMIT ").bind(f.Limit).
		write(" OFFSET ").bind(f.Offset())
	return b.String(), b.Args()
}

func insertQuery(d Dialect) string {
	return "INSERT INTO perros (nombre, raza, edad) VALUES (" +
		join(d, 1, 3) + ") RETURNING id"
}

func selectByIDQuery(d Dialect) string {
	return "SELECT id, nombre, raza, edad FROM perros WHERE id = " + d.Placeholder(1)
}

func updateQuery(d Dialect) string {
	return "UPDATE perros SET nombre = " + d.Placeholder(1) +
		", raza = " + d.Placeholder(2) +
		", edad = " + d.Placeholder(3) +
		" WHERE id = " + d.Placeholder(4)
}

func deleteQuery(d Dialect) string {
	return "DELETE FROM perros WHERE id = " + d.Placeholder(1)
}

func join(d Dialect, from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, d.Placeholder(i))
	}
	return strings.Join(parts, ", ")
}

