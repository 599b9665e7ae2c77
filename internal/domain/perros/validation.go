package perros

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"
)

const (
	msgCreateRequired = "nombre, raza y edad (number) son obligatorios"
	msgUpdateRequired = "se requiere al menos uno de: nombre, raza, edad"
	msgInvalidJSON    = "JSON inválido: se espera un objeto"

	maxBodyBytes = 1 << 20
)

// Input son los campos que llegan en POST/PUT/PATCH.
// nil = no enviado (o enviado como null).
type Input struct {
	Nombre *string
	Raza   *string
	Edad   *int
}

func (in Input) Empty() bool {
	return in.Nombre == nil && in.Raza == nil && in.Edad == nil
}

func (in Input) Complete() bool {
	return in.Nombre != nil && in.Raza != nil && in.Edad != nil
}

// Apply mezcla los campos enviados sobre p; los demás conservan su valor.
func (in Input) Apply(p Perro) Perro {
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Raza != nil {
		p.Raza = *in.Raza
	}
	if in.Edad != nil {
		p.Edad = *in.Edad
	}
	return p
}

// ParseCreate exige los tres campos presentes y bien tipados.
func ParseCreate(r io.Reader) (Input, error) {
	in, bad, err := decodeInput(r)
	if err != nil {
		return Input{}, err
	}
	if len(bad) > 0 || !in.Complete() {
		return Input{}, invalid(msgCreateRequired)
	}
	return in, nil
}

// ParseUpdate exige al menos un campo; cualquier campo presente debe ser válido.
func ParseUpdate(r io.Reader) (Input, error) {
	in, bad, err := decodeInput(r)
	if err != nil {
		return Input{}, err
	}
	if len(bad) > 0 {
		return Input{}, invalid("campos inválidos: " + strings.Join(bad, ", "))
	}
	if in.Empty() {
		return Input{}, invalid(msgUpdateRequired)
	}
	return in, nil
}

// decodeInput lee un objeto JSON y tipa cada campo conocido.
// Devuelve la descripción de los campos presentes pero mal formados.
func decodeInput(r io.Reader) (Input, []string, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return Input{}, nil, invalid(msgInvalidJSON)
	}
	// el body es un único objeto; cualquier cosa después (salvo espacios) es inválida
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Input{}, nil, invalid(msgInvalidJSON)
	}

	var (
		in  Input
		bad []string
	)

	if v, ok := present(raw, "nombre"); ok {
		if s, ok := nonEmptyString(v); ok {
			in.Nombre = &s
		} else {
			bad = append(bad, "nombre (texto no vacío)")
		}
	}
	if v, ok := present(raw, "raza"); ok {
		if s, ok := nonEmptyString(v); ok {
			in.Raza = &s
		} else {
			bad = append(bad, "raza (texto no vacío)")
		}
	}
	if v, ok := present(raw, "edad"); ok {
		if n, ok := nonNegativeInt(v); ok {
			in.Edad = &n
		} else {
			bad = append(bad, "edad (entero >= 0)")
		}
	}

	return in, bad, nil
}

// present trata null igual que un campo ausente.
func present(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(string(v)) == "null" {
		return nil, false
	}
	return v, true
}

func nonEmptyString(v json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func nonNegativeInt(v json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	if f < 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

type inputKey struct{}

// ValidateCreate y ValidateUpdate validan el body antes del handler y
// dejan el Input tipado en el contexto.
func ValidateCreate(next http.Handler) http.Handler { return validate(ParseCreate, next) }
func ValidateUpdate(next http.Handler) http.Handler { return validate(ParseUpdate, next) }

func validate(parse func(io.Reader) (Input, error), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := parse(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		ctx := context.WithValue(r.Context(), inputKey{}, in)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func inputFrom(ctx context.Context) (Input, error) {
	in, ok := ctx.Value(inputKey{}).(Input)
	if !ok {
		return Input{}, errors.New("perros: input missing from request context")
	}
	return in, nil
}
