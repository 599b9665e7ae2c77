package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"perros-api/internal/platform/logger"

	"github.com/sethvargo/go-retry"
)

var ErrStoreUnavailable = errors.New("no se pudo conectar a la base de datos")

const (
	DefaultAttempts = 5
	DefaultDelay    = 5 * time.Second
)

type Options struct {
	Dialect Dialect
	DSN     string

	// Target describe el destino en los logs (host/db), nunca credenciales.
	Target string

	// 0 = default del dialecto.
	MaxOpenConns int

	// Intentos totales de conexión inicial y espera fija entre ellos.
	Attempts int
	Delay    time.Duration

	Logger logger.Logger
}

// Accessor crea el pool la primera vez que se pide y lo memoiza.
// La inicialización está serializada: llamadas concurrentes esperan a la
// que está en curso en vez de abrir un segundo pool.
type Accessor struct {
	opts Options
	log  logger.Logger

	// open es reemplazable en tests (sqlmock).
	open func(driver, dsn string) (*sql.DB, error)

	mu sync.Mutex
	db *sql.DB
}

func NewAccessor(opts Options) *Accessor {
	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = opts.Dialect.MaxOpenConns
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Accessor{
		opts: opts,
		log:  log.With(map[string]any{"component": "sqlstore", "dialect": opts.Dialect.Name}),
		open: sql.Open,
	}
}

// Acquire devuelve el handle del pool, conectando si hace falta.
// Si se agotan los intentos devuelve ErrStoreUnavailable.
func (a *Accessor) Acquire(ctx context.Context) (*sql.DB, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db != nil {
		return a.db, nil
	}

	backoff := retry.WithMaxRetries(uint64(a.opts.Attempts-1), retry.NewConstant(a.opts.Delay))

	attempt := 0
	var lastErr error
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		a.log.Info("conectando a la base de datos", map[string]any{
			"target":  a.opts.Target,
			"attempt": attempt,
			"max":     a.opts.Attempts,
		})

		db, err := a.connect(ctx)
		if err != nil {
			lastErr = err
			a.log.Warn("error al conectar, reintentando", map[string]any{
				"attempt": attempt,
				"max":     a.opts.Attempts,
				"error":   err.Error(),
			})
			return retry.RetryableError(err)
		}

		a.db = db
		return nil
	})
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return nil, fmt.Errorf("%w tras %d intentos: %v", ErrStoreUnavailable, attempt, lastErr)
	}

	a.log.Info("conexión exitosa a la base de datos", map[string]any{"target": a.opts.Target})
	return a.db, nil
}

// connect abre el pool y ejecuta la sonda SELECT 1.
func (a *Accessor) connect(ctx context.Context) (*sql.DB, error) {
	db, err := a.open(a.opts.Dialect.Driver, a.opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	// sin límite de cola: database/sql bloquea hasta que haya conexión libre
	db.SetMaxOpenConns(a.opts.MaxOpenConns)
	db.SetMaxIdleConns(a.opts.MaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("probe: %w", err)
	}
	return db, nil
}

func (a *Accessor) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
