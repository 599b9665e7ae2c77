package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	mem "perros-api/internal/adapters/storage/memory"
	"perros-api/internal/adapters/storage/sqlstore"
	"perros-api/internal/domain/perros"
	"perros-api/internal/platform/config"
	"perros-api/internal/platform/logger"
	"perros-api/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
		Output: os.Stdout,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sin store no hay servicio: si no conecta, el proceso termina.
	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("no se pudo inicializar el store", map[string]any{"error": err.Error(), "driver": cfg.Driver})
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("error cerrando el store", map[string]any{"error": err.Error()})
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Repo:    repo,
			Logger:  log,
			Name:    cfg.Log.App,
			Env:     cfg.Env,
			Version: version,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env, "driver": cfg.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": shutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore elige el repositorio según DB_DRIVER. Para los drivers SQL
// conecta de entrada (con reintentos) para fallar al arrancar y no en la
// primera request.
func openStore(ctx context.Context, cfg config.Config, log logger.Logger) (perros.Repository, func() error, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("usando store en memoria; los datos no persisten", nil)
		return mem.NewPerrosRepo(), func() error { return nil }, nil
	}

	d, err := sqlstore.DialectByName(cfg.Driver)
	if err != nil {
		return nil, nil, err
	}

	acc := sqlstore.NewAccessor(sqlstore.Options{
		Dialect: d,
		DSN:     cfg.DSN(),
		Target:  storeTarget(cfg),
		Logger:  log,
	})
	if _, err := acc.Acquire(ctx); err != nil {
		return nil, nil, err
	}

	return sqlstore.NewPerrosRepo(acc, d), acc.Close, nil
}

func storeTarget(cfg config.Config) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.DB.Database
	}
	return net.JoinHostPort(cfg.DB.Host, strconv.Itoa(cfg.DB.Port)) + "/" + cfg.DB.Database
}
