package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"perros-api/internal/domain/perros"
	"perros-api/internal/platform/config"
	"perros-api/internal/platform/logger"
	"perros-api/internal/router"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestOpenStore_Memory(t *testing.T) {
	repo, closeStore, err := openStore(context.Background(), config.Config{Driver: config.DriverMemory}, logger.Discard())
	require.NoError(t, err)
	defer closeStore()

	p, err := repo.Create(context.Background(), perros.Perro{Nombre: "Rex", Raza: "Labrador", Edad: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestOpenStore_SQLiteConnectsEagerly(t *testing.T) {
	cfg := config.Config{
		Driver: config.DriverSQLite,
		DB:     config.DB{Database: filepath.Join(t.TempDir(), "perros.db")},
	}

	repo, closeStore, err := openStore(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	assert.NotNil(t, repo)
	require.NoError(t, closeStore())
}

func TestStoreTarget_HasNoCredentials(t *testing.T) {
	cfg := config.Config{
		Driver: config.DriverPostgres,
		DB:     config.DB{Host: "db", Port: 5432, User: "root", Password: "password", Database: "practica_prod"},
	}
	assert.Equal(t, "db:5432/practica_prod", storeTarget(cfg))
}

func TestCheckHealth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Env: "prod"}))
	defer ts.Close()

	cmd, out := testCmd()
	require.NoError(t, checkHealth(cmd, ts.URL))
	assert.Equal(t, "ok (env=prod)\n", out.String())
}

func TestCheckHealth_Fails(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	degraded := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	defer degraded.Close()

	cmd, _ := testCmd()
	assert.Error(t, checkHealth(cmd, down.URL))
	assert.Error(t, checkHealth(cmd, degraded.URL))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "perros-api dev\n", out.String())
}
