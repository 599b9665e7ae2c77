package perros

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"perros-api/internal/middleware"
	"perros-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	msgNotFound = "Perro no encontrado"
	msgInternal = "Error interno"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/perros", func(pr chi.Router) {
		pr.Get("/", listPerrosHandler(svc, log))
		pr.With(ValidateCreate).Post("/", createPerroHandler(svc, log))

		pr.Get("/{id}", getPerroHandler(svc, log))
		pr.With(ValidateUpdate).Put("/{id}", updatePerroHandler(svc, log))
		pr.With(ValidateUpdate).Patch("/{id}", updatePerroHandler(svc, log))
		pr.Delete("/{id}", deletePerroHandler(svc, log))
	})
}

// errorResponse es el cuerpo de todas las respuestas de error.
type errorResponse struct {
	Error string `json:"error"`
}

// perroRequest documenta el body de POST/PUT/PATCH. En PUT/PATCH todos son opcionales.
type perroRequest struct {
	Nombre string `json:"nombre" example:"Rex"`
	Raza   string `json:"raza" example:"Labrador"`
	Edad   int    `json:"edad" example:"3" minimum:"0"`
}

// listPerrosHandler godoc
// @Summary Listar perros
// @Description Lista paginada y filtrada. Los filtros omitidos no se aplican. total cuenta todos los registros que cumplen los filtros.
// @Tags perros
// @Produce json
// @Param raza query string false "Raza exacta"
// @Param nombre query string false "Subcadena del nombre"
// @Param minEdad query int false "Edad mínima (inclusive)"
// @Param maxEdad query int false "Edad máxima (inclusive)"
// @Param page query int false "Página (>= 1). Por defecto 1"
// @Param limit query int false "Tamaño de página (1-100). Por defecto 10"
// @Success 200 {object} Page
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /perros [get]
func listPerrosHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			respondError(w, r, log, "listar perros", err)
			return
		}

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			respondError(w, r, log, "listar perros", err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// getPerroHandler godoc
// @Summary Obtener un perro
// @Tags perros
// @Produce json
// @Param id path int true "ID del perro"
// @Success 200 {object} Perro
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /perros/{id} [get]
func getPerroHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := perroID(r)
		if err != nil {
			respondError(w, r, log, "obtener perro", err)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, r, log, "obtener perro", err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// createPerroHandler godoc
// @Summary Crear perro
// @Description nombre, raza y edad son obligatorios. Responde con el id asignado y el header Location.
// @Tags perros
// @Accept json
// @Produce json
// @Param payload body perroRequest true "Datos del perro"
// @Success 201 {object} Perro
// @Header 201 {string} Location "/perros/{id}"
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /perros [post]
func createPerroHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := inputFrom(r.Context())
		if err != nil {
			respondError(w, r, log, "crear perro", err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			respondError(w, r, log, "crear perro", err)
			return
		}

		w.Header().Set("Location", "/perros/"+strconv.FormatInt(p.ID, 10))
		writeJSON(w, http.StatusCreated, p)
	}
}

// updatePerroHandler godoc
// @Summary Actualizar perro (PUT o PATCH)
// @Description Mezcla los campos enviados sobre el registro actual; los no enviados conservan su valor. Se requiere al menos un campo y todo campo enviado debe ser válido.
// @Tags perros
// @Accept json
// @Produce json
// @Param id path int true "ID del perro"
// @Param payload body perroRequest true "Campos a actualizar"
// @Success 200 {object} Perro
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /perros/{id} [put]
// @Router /perros/{id} [patch]
func updatePerroHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := perroID(r)
		if err != nil {
			respondError(w, r, log, "actualizar perro", err)
			return
		}

		in, err := inputFrom(r.Context())
		if err != nil {
			respondError(w, r, log, "actualizar perro", err)
			return
		}

		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			respondError(w, r, log, "actualizar perro", err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// deletePerroHandler godoc
// @Summary Eliminar perro
// @Tags perros
// @Param id path int true "ID del perro"
// @Success 204
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /perros/{id} [delete]
func deletePerroHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := perroID(r)
		if err != nil {
			respondError(w, r, log, "eliminar perro", err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, r, log, "eliminar perro", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// perroID: un id que no es entero positivo no puede existir, así que es 404.
func perroID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrNotFound
	}
	return id, nil
}

// respondError es el único punto que traduce errores a respuestas HTTP.
// Los errores del store se loguean y el cliente solo ve "Error interno".
func respondError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		log.Error("error al "+op, map[string]any{
			"error":      err.Error(),
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": middleware.GetRequestID(r.Context()),
		})
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
