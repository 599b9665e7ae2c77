package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"perros-api/internal/domain/perros"
	"perros-api/internal/platform/logger"
	"perros-api/internal/router"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	if opts.Env == "" {
		opts.Env = "local"
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PerroLifecycle(t *testing.T) {
	ts := newServer(t, router.Options{})

	// 1) Crear
	var created perros.Perro
	{
		res, body := doReqRaw(t, ts.URL, "POST", "/perros", map[string]any{
			"nombre": "Rex",
			"raza":   "Labrador",
			"edad":   3,
		})
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 create, got %d body=%s", res.StatusCode, string(body))
		}
		mustUnmarshal(t, body, &created)
		if created.ID != 1 || created.Nombre != "Rex" || created.Raza != "Labrador" || created.Edad != 3 {
			t.Fatalf("unexpected created perro: %+v", created)
		}
		if loc := res.Header.Get("Location"); loc != "/perros/1" {
			t.Fatalf("expected Location /perros/1, got %q", loc)
		}
	}

	path := "/perros/" + strconv.FormatInt(created.ID, 10)

	// 2) Obtener
	{
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get, got %d body=%s", st, string(body))
		}
		var got perros.Perro
		mustUnmarshal(t, body, &got)
		if got != created {
			t.Fatalf("expected %+v, got %+v", created, got)
		}
	}

	// 3) PATCH parcial conserva los demás campos
	{
		st, body := doReq(t, ts.URL, "PATCH", path, map[string]any{"edad": 4})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var got perros.Perro
		mustUnmarshal(t, body, &got)
		want := perros.Perro{ID: 1, Nombre: "Rex", Raza: "Labrador", Edad: 4}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	}

	// 4) PUT con la misma semántica de merge
	{
		st, body := doReq(t, ts.URL, "PUT", path, map[string]any{"raza": "Mestizo"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put, got %d body=%s", st, string(body))
		}
		var got perros.Perro
		mustUnmarshal(t, body, &got)
		if got.Raza != "Mestizo" || got.Edad != 4 || got.Nombre != "Rex" {
			t.Fatalf("unexpected merged perro: %+v", got)
		}
	}

	// 5) Eliminar
	{
		st, body := doReq(t, ts.URL, "DELETE", path, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d body=%s", st, string(body))
		}
		if len(body) != 0 {
			t.Fatalf("expected empty body on 204, got %q", string(body))
		}
	}

	// 6) Ya no existe
	{
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
		assertError(t, body, "Perro no encontrado")

		st, _ = doReq(t, ts.URL, "DELETE", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", st)
		}
	}
}

func TestHTTP_CreateValidation(t *testing.T) {
	ts := newServer(t, router.Options{})

	cases := []struct {
		name string
		body string
		want string
	}{
		{"edad as string", `{"nombre":"Rex","raza":"Labrador","edad":"3"}`, "nombre, raza y edad (number) son obligatorios"},
		{"missing raza", `{"nombre":"Rex","edad":3}`, "nombre, raza y edad (number) son obligatorios"},
		{"empty nombre", `{"nombre":"","raza":"Labrador","edad":3}`, "nombre, raza y edad (number) son obligatorios"},
		{"not an object", `[1,2,3]`, "JSON inválido: se espera un objeto"},
		{"broken json", `{"nombre":`, "JSON inválido: se espera un objeto"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReqString(t, ts.URL, "POST", "/perros", tc.body)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", st, string(body))
			}
			assertError(t, body, tc.want)
		})
	}

	// Nada se creó
	st, body := doReq(t, ts.URL, "GET", "/perros", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var page perros.Page
	mustUnmarshal(t, body, &page)
	if page.Total != 0 {
		t.Fatalf("expected no perros after invalid creates, got total=%d", page.Total)
	}
}

func TestHTTP_UpdateValidation(t *testing.T) {
	ts := newServer(t, router.Options{})
	createPerro(t, ts.URL, "Rex", "Labrador", 3)

	st, body := doReqString(t, ts.URL, "PATCH", "/perros/1", `{}`)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d", st)
	}
	assertError(t, body, "se requiere al menos uno de: nombre, raza, edad")

	st, _ = doReqString(t, ts.URL, "PUT", "/perros/1", `{"edad":-1}`)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative edad, got %d", st)
	}

	// Valida el body antes de buscar el registro
	st, _ = doReqString(t, ts.URL, "PATCH", "/perros/999", `{}`)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 before lookup, got %d", st)
	}

	st, _ = doReqString(t, ts.URL, "PATCH", "/perros/999", `{"edad":1}`)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for missing perro, got %d", st)
	}

	// El registro quedó intacto
	_, body = doReq(t, ts.URL, "GET", "/perros/1", nil)
	var got perros.Perro
	mustUnmarshal(t, body, &got)
	if got.Edad != 3 {
		t.Fatalf("expected edad unchanged, got %d", got.Edad)
	}
}

func TestHTTP_NonIntegerIDIsNotFound(t *testing.T) {
	ts := newServer(t, router.Options{})

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		st, body := doReq(t, ts.URL, "GET", "/perros/"+id, nil)
		if st != http.StatusNotFound {
			t.Fatalf("id %q: expected 404, got %d", id, st)
		}
		assertError(t, body, "Perro no encontrado")
	}
}

func TestHTTP_ListFiltersAndPagination(t *testing.T) {
	ts := newServer(t, router.Options{})

	createPerro(t, ts.URL, "Rex", "Labrador", 3)
	createPerro(t, ts.URL, "Toby", "Beagle", 5)
	createPerro(t, ts.URL, "Rexona", "Labrador", 8)
	createPerro(t, ts.URL, "Luna", "Labrador", 1)

	cases := []struct {
		query     string
		wantTotal int
		wantIDs   []int64
		wantPage  int
		wantLimit int
	}{
		{"", 4, []int64{1, 2, 3, 4}, 1, 10},
		{"?raza=Labrador", 3, []int64{1, 3, 4}, 1, 10},
		{"?nombre=Rex", 2, []int64{1, 3}, 1, 10},
		{"?minEdad=3&maxEdad=5", 2, []int64{1, 2}, 1, 10},
		{"?raza=Labrador&limit=2", 3, []int64{1, 3}, 1, 2},
		{"?raza=Labrador&limit=2&page=2", 3, []int64{4}, 2, 2},
		{"?page=9", 4, []int64{}, 9, 10},
		{"?page=0&limit=1000", 4, []int64{1, 2, 3, 4}, 1, 100},
		{"?limit=0", 4, []int64{1}, 1, 1},
		{"?minEdad=6&maxEdad=2", 0, []int64{}, 1, 10},
		{"?raza=Pug", 0, []int64{}, 1, 10},
		{"?raza=%20Labrador", 0, []int64{}, 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "GET", "/perros"+tc.query, nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200, got %d body=%s", st, string(body))
			}

			// data siempre es un array, nunca null
			if !strings.Contains(string(body), `"data":[`) {
				t.Fatalf("expected data array, got %s", string(body))
			}

			var page perros.Page
			mustUnmarshal(t, body, &page)
			if page.Total != tc.wantTotal || page.Page != tc.wantPage || page.Limit != tc.wantLimit {
				t.Fatalf("expected page=%d limit=%d total=%d, got page=%d limit=%d total=%d",
					tc.wantPage, tc.wantLimit, tc.wantTotal, page.Page, page.Limit, page.Total)
			}
			if len(page.Data) != len(tc.wantIDs) {
				t.Fatalf("expected %d items, got %d", len(tc.wantIDs), len(page.Data))
			}
			for i, id := range tc.wantIDs {
				if page.Data[i].ID != id {
					t.Fatalf("item %d: expected id %d, got %d", i, id, page.Data[i].ID)
				}
			}
		})
	}
}

func TestHTTP_ListHugePageIsEmpty(t *testing.T) {
	ts := newServer(t, router.Options{})
	createPerro(t, ts.URL, "Rex", "Labrador", 3)
	createPerro(t, ts.URL, "Toby", "Beagle", 5)

	st, body := doReq(t, ts.URL, "GET", "/perros?limit=10&page="+strconv.Itoa(math.MaxInt), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), `"data":[]`) {
		t.Fatalf("expected empty data array, got %s", string(body))
	}

	var page perros.Page
	mustUnmarshal(t, body, &page)
	if page.Total != 2 || page.Page != math.MaxInt || page.Limit != 10 {
		t.Fatalf("expected page=%d limit=10 total=2, got page=%d limit=%d total=%d",
			math.MaxInt, page.Page, page.Limit, page.Total)
	}
}

func TestHTTP_ListRejectsNonIntegerAge(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/perros?minEdad=tres", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	assertError(t, body, "minEdad debe ser un entero")
}

func TestHTTP_HealthAndIndex(t *testing.T) {
	ts := newServer(t, router.Options{Env: "prod", Version: "1.2.3"})

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	var health router.HealthResponse
	mustUnmarshal(t, body, &health)
	if health.Status != "ok" || health.Env != "prod" {
		t.Fatalf("unexpected health: %+v", health)
	}

	st, body = doReq(t, ts.URL, "GET", "/", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 index, got %d", st)
	}
	var idx router.IndexResponse
	mustUnmarshal(t, body, &idx)
	if idx.Name != router.DefaultName || idx.Version != "1.2.3" || idx.Env != "prod" {
		t.Fatalf("unexpected index: %+v", idx)
	}
	if _, ok := idx.Endpoints["GET /perros"]; !ok {
		t.Fatalf("expected GET /perros in endpoints, got %v", idx.Endpoints)
	}
}

func TestHTTP_RequestIDIsEchoed(t *testing.T) {
	ts := newServer(t, router.Options{})

	req, err := http.NewRequest("GET", ts.URL+"/health", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Request-ID", "req-123")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	if got := res.Header.Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestHTTP_SwaggerDocIsServed(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	if !strings.Contains(string(body), `"/perros/{id}"`) {
		t.Fatalf("expected perros paths in swagger doc")
	}
}

// -------------------------
// Store failures
// -------------------------

type failingRepo struct{ err error }

func (r failingRepo) Create(context.Context, perros.Perro) (perros.Perro, error) {
	return perros.Perro{}, r.err
}
func (r failingRepo) GetByID(context.Context, int64) (perros.Perro, error) {
	return perros.Perro{}, r.err
}
func (r failingRepo) Update(context.Context, perros.Perro) error { return r.err }
func (r failingRepo) Delete(context.Context, int64) error        { return r.err }
func (r failingRepo) List(context.Context, perros.ListFilter) ([]perros.Perro, int, error) {
	return nil, 0, r.err
}

func TestHTTP_StoreFailureIsInternalError(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, Output: &logs})

	secret := "dial tcp 10.0.0.5:5432: connection refused"
	ts := newServer(t, router.Options{Repo: failingRepo{err: errors.New(secret)}, Logger: log})

	reqs := []struct {
		method, path string
		body         any
	}{
		{"GET", "/perros", nil},
		{"GET", "/perros/1", nil},
		{"POST", "/perros", map[string]any{"nombre": "Rex", "raza": "Labrador", "edad": 3}},
		{"PATCH", "/perros/1", map[string]any{"edad": 4}},
		{"DELETE", "/perros/1", nil},
	}

	for _, rq := range reqs {
		st, body := doReq(t, ts.URL, rq.method, rq.path, rq.body)
		if st != http.StatusInternalServerError {
			t.Fatalf("%s %s: expected 500, got %d", rq.method, rq.path, st)
		}
		assertError(t, body, "Error interno")
		if strings.Contains(string(body), "10.0.0.5") {
			t.Fatalf("%s %s: store detail leaked to client: %s", rq.method, rq.path, string(body))
		}
	}

	if !strings.Contains(logs.String(), "connection refused") {
		t.Fatalf("expected store error in logs, got %s", logs.String())
	}
}

type panickingRepo struct{ failingRepo }

func (panickingRepo) List(context.Context, perros.ListFilter) ([]perros.Perro, int, error) {
	panic("store roto")
}

func TestHTTP_PanicIsRecoveredAndAccessLogged(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, Output: &logs})
	ts := newServer(t, router.Options{Repo: panickingRepo{}, Logger: log})

	st, body := doReq(t, ts.URL, "GET", "/perros", nil)
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", st)
	}
	assertError(t, body, "Error interno")

	out := logs.String()
	if !strings.Contains(out, "panic en handler") {
		t.Fatalf("expected panic log, got %s", out)
	}
	if !strings.Contains(out, "msg=request") || !strings.Contains(out, "status=500") {
		t.Fatalf("expected access log line with status=500, got %s", out)
	}
}

// -------------------------
// Helpers
// -------------------------

func createPerro(t *testing.T, baseURL, nombre, raza string, edad int) perros.Perro {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/perros", map[string]any{
		"nombre": nombre,
		"raza":   raza,
		"edad":   edad,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create perro, got %d body=%s", st, string(body))
	}
	var p perros.Perro
	mustUnmarshal(t, body, &p)
	return p
}

func assertError(t *testing.T, body []byte, want string) {
	t.Helper()

	var out struct {
		Error string `json:"error"`
	}
	mustUnmarshal(t, body, &out)
	if out.Error != want {
		t.Fatalf("expected error %q, got %q", want, out.Error)
	}
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()
	res, b := doReqRaw(t, baseURL, method, path, body)
	return res.StatusCode, b
}

func doReqString(t *testing.T, baseURL, method, path, body string) (int, []byte) {
	t.Helper()
	res, b := send(t, method, baseURL+path, strings.NewReader(body), true)
	return res.StatusCode, b
}

func doReqRaw(t *testing.T, baseURL, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	return send(t, method, baseURL+path, rdr, body != nil)
}

func send(t *testing.T, method, url string, rdr io.Reader, isJSON bool) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res, respBody
}
