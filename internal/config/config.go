package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName          string
	AppVersion       string
	Environment      string
	HTTPAddr         string
	AuthCookieSecure bool

	OTLPEndpoint string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	// CatalogDBPath is the on-disk sqlite file backing the local catalog store.
	CatalogDBPath string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	ExportDir string
}

// ErrMissingDatabaseConfig is returned when the backend database is not
// configured. The process refuses to initialize without it.
var ErrMissingDatabaseConfig = errors.New("missing database configuration")

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewPromptConfigHolder),
)

// Load loads configuration from environment variables and .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	cfg := Config{
		AppName:           getenv("APP_SERVICE", "raqamly"),
		AppVersion:        getenv("APP_VERSION", "0.1.0"),
		Environment:       environment,
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		AuthCookieSecure:  authCookieSecure,
		OTLPEndpoint:      getenv("OTLP_ENDPOINT", "localhost:4317"),
		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", ""),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", ""),
		DBUser:            getenv("DATABASE_USER", ""),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 600),
		CatalogDBPath:     getenv("CATALOG_DB_PATH", "raqamly.db"),
		OpenAIAPIKey:      strings.TrimSpace(getenv("OPENAI_API_KEY", "")),
		OpenAIBaseURL:     getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getenv("OPENAI_MODEL", "gpt-3.5-turbo"),
		ExportDir:         getenv("EXPORT_DIR", "exports"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate enforces startup invariants. The generation credential is
// deliberately not checked here: its absence is fatal only when a
// generation is attempted.
func validate(cfg Config) error {
	switch cfg.DBType {
	case "sqlite":
		if strings.TrimSpace(cfg.DBName) == "" {
			return ErrMissingDatabaseConfig
		}
	case "postgres", "mysql":
		if strings.TrimSpace(cfg.DBHost) == "" ||
			strings.TrimSpace(cfg.DBName) == "" ||
			strings.TrimSpace(cfg.DBUser) == "" {
			return ErrMissingDatabaseConfig
		}
	default:
		return ErrMissingDatabaseConfig
	}
	return nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}
