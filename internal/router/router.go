package router

import (
	"encoding/json"
	"net/http"

	_ "perros-api/docs"
	mem "perros-api/internal/adapters/storage/memory"
	"perros-api/internal/domain/perros"
	"perros-api/internal/middleware"
	"perros-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const DefaultName = "perros-api"

type Options struct {
	// Opcional: si no viene, in-memory.
	Repo perros.Repository

	Logger  logger.Logger // nil => descarta
	Name    string
	Env     string
	Version string
}

// HealthResponse es el cuerpo de GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Env    string `json:"env" example:"local"`
}

// IndexResponse describe el servicio y sus endpoints.
type IndexResponse struct {
	Name      string            `json:"name" example:"perros-api"`
	Version   string            `json:"version" example:"dev"`
	Env       string            `json:"env" example:"local"`
	Endpoints map[string]string `json:"endpoints"`
}

var endpoints = map[string]string{
	"GET /health":         "estado del servicio",
	"GET /perros":         "listar perros (filtros: raza, nombre, minEdad, maxEdad; paginación: page, limit)",
	"GET /perros/{id}":    "obtener un perro",
	"POST /perros":        "crear perro",
	"PUT /perros/{id}":    "actualizar perro",
	"PATCH /perros/{id}":  "actualizar perro (parcial)",
	"DELETE /perros/{id}": "eliminar perro",
	"GET /swagger/*":      "documentación OpenAPI",
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", healthHandler(opts.Env))
	r.Get("/", indexHandler(opts))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewPerrosRepo()
	}

	perros.RegisterRoutes(r, perros.NewService(repo), log)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// healthHandler godoc
// @Summary Health check
// @Tags sistema
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Env: env})
	}
}

// indexHandler godoc
// @Summary Descubrimiento
// @Description Nombre, versión, entorno y mapa de endpoints.
// @Tags sistema
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func indexHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, IndexResponse{
			Name:      opts.Name,
			Version:   opts.Version,
			Env:       opts.Env,
			Endpoints: endpoints,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
