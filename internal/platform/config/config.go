// Package config resuelve la configuración del servicio a partir de variables de
// entorno (y un .env opcional) usando viper.
//
// APP_ENV elige uno de dos perfiles estáticos:
//
//	local: DB_HOST_LOCAL, DB_PORT_LOCAL, DB_USER_LOCAL, DB_PASS_LOCAL, DB_NAME_LOCAL
//	prod:  DB_HOST_PROD,  DB_PORT_PROD,  DB_USER_PROD,  DB_PASS_PROD,  DB_NAME_PROD
//
// Variables comunes: PORT, DB_DRIVER, DB_SSLMODE, LOG_LEVEL, LOG_FORMAT, APP_NAME.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"

	KeyEnv      = "APP_ENV"
	KeyPort     = "PORT"
	KeyDriver   = "DB_DRIVER"
	KeySSLMode  = "DB_SSLMODE"
	KeyLogLevel = "LOG_LEVEL"
	KeyLogFmt   = "LOG_FORMAT"
	KeyAppName  = "APP_NAME"

	DefaultPort    = 3000
	DefaultAppName = "perros-api"
)

var (
	ErrUnknownEnv    = errors.New("APP_ENV inválido")
	ErrUnknownDriver = errors.New("DB_DRIVER inválido")
)

type DB struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type Log struct {
	Level  string
	Format string
	App    string
}

type Config struct {
	Env    string
	Port   int
	Driver string
	DB     DB
	Log    Log
}

// profile describe las keys y defaults de un entorno.
type profile struct {
	suffix   string
	defaults map[string]any
}

var profiles = map[string]profile{
	EnvLocal: {
		suffix: "LOCAL",
		defaults: map[string]any{
			"DB_HOST": "localhost",
			"DB_PORT": 5432,
			"DB_USER": "root",
			"DB_PASS": "password",
			"DB_NAME": "practica_local",
		},
	},
	EnvProd: {
		suffix: "PROD",
		defaults: map[string]any{
			"DB_PORT": 5432,
			"DB_NAME": "practica_prod",
		},
	},
}

// NewViper crea una instancia con defaults y lectura de env.
// Si existe envFile (p.ej. ".env") se carga; no existir no es error.
func NewViper(envFile string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyEnv, EnvLocal)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyDriver, DriverPostgres)
	v.SetDefault(KeySSLMode, "disable")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFmt, "text")
	v.SetDefault(KeyAppName, DefaultAppName)

	for _, p := range profiles {
		for k, def := range p.defaults {
			v.SetDefault(k+"_"+p.suffix, def)
		}
	}

	if strings.TrimSpace(envFile) == "" {
		return v, nil
	}
	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("stat env file: %w", err)
	}

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return v, nil
}

// Load resuelve la configuración con el entorno indicado por APP_ENV.
func Load(v *viper.Viper) (Config, error) {
	return Resolve(v.GetString(KeyEnv), v)
}

// Resolve arma la configuración del entorno env usando los valores de v.
// Falla con ErrUnknownEnv si env no es local ni prod.
func Resolve(env string, v *viper.Viper) (Config, error) {
	env = strings.ToLower(strings.TrimSpace(env))
	if env == "" {
		env = EnvLocal
	}

	p, ok := profiles[env]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownEnv, env)
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString(KeyDriver)))
	switch driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	key := func(name string) string { return name + "_" + p.suffix }

	cfg := Config{
		Env:    env,
		Port:   v.GetInt(KeyPort),
		Driver: driver,
		DB: DB{
			Host:     v.GetString(key("DB_HOST")),
			Port:     v.GetInt(key("DB_PORT")),
			User:     v.GetString(key("DB_USER")),
			Password: v.GetString(key("DB_PASS")),
			Database: v.GetString(key("DB_NAME")),
			SSLMode:  v.GetString(KeySSLMode),
		},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFmt),
			App:    v.GetString(KeyAppName),
		},
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}

	return cfg, nil
}

// Addr es la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// DSN arma la cadena de conexión según el driver.
// Para sqlite Database es la ruta del archivo.
func (c Config) DSN() string {
	switch c.Driver {
	case DriverSQLite:
		return c.DB.Database
	case DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.DB.User, c.DB.Password),
			Host:   net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port)),
			Path:   "/" + c.DB.Database,
		}
		q := url.Values{}
		if c.DB.SSLMode != "" {
			q.Set("sslmode", c.DB.SSLMode)
		}
		u.RawQuery = q.Encode()
		return u.String()
	default:
		return ""
	}
}
