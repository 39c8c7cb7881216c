package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Breaker  BreakerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Report   ReportConfig
	Security SecurityConfig
	LogLevel string
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Backend         string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
	MigrationsPath  string
	Seed            bool
	SeedGenerated   int
	SeedClientID    int64
}

type BreakerConfig struct {
	Enabled           bool
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

type CacheConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type AuthConfig struct {
	Enabled             bool
	Secret              string
	Issuer              string
	AccessTokenDuration time.Duration
	DefaultClientID     int64
}

type ReportConfig struct {
	Template          string
	DefaultClientName string
	Filename          string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the environment. Values in an optional .env
// file are used for keys the environment does not already set.
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Backend:         strings.ToLower(getEnv("DATA_BACKEND", BackendMemory)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "reports_user"),
			Password:        getEnv("DB_PASSWORD", "reports_password"),
			Name:            getEnv("DB_NAME", "transaction_reports"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "transaction_reports.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			RunMigrations:   getBoolEnv("DB_RUN_MIGRATIONS", true),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "migrations"),
			Seed:            getBoolEnv("DB_SEED", false),
			SeedGenerated:   getIntEnv("DB_SEED_GENERATED", 0),
			SeedClientID:    getInt64Env("DB_SEED_GENERATED_CLIENT_ID", 2002),
		},
		Breaker: BreakerConfig{
			Enabled:           getBoolEnv("BREAKER_ENABLED", true),
			MaxFailures:       getIntEnv("BREAKER_MAX_FAILURES", 5),
			ResetTimeout:      getDurationEnv("BREAKER_RESET_TIMEOUT", 30*time.Second),
			HalfOpenSuccesses: getIntEnv("BREAKER_HALF_OPEN_SUCCESSES", 3),
		},
		Cache: CacheConfig{
			Enabled:  getBoolEnv("CACHE_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			TTL:      getDurationEnv("CACHE_TTL", time.Minute),
		},
		Auth: AuthConfig{
			Enabled:             getBoolEnv("AUTH_ENABLED", false),
			Secret:              getEnv("JWT_SECRET", ""),
			Issuer:              getEnv("JWT_ISSUER", "transaction-reports"),
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", time.Hour),
			DefaultClientID:     getInt64Env("DEFAULT_CLIENT_ID", 1001),
		},
		Report: ReportConfig{
			Template:          getEnv("REPORT_TEMPLATE", "Transaction_Report"),
			DefaultClientName: getEnv("REPORT_DEFAULT_CLIENT_NAME", "Test Client"),
			Filename:          getEnv("REPORT_FILENAME", "TransactionReport.pdf"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Backend {
	case BackendMemory, BackendPostgres, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("DATA_BACKEND must be one of %s, %s, %s: got %q",
			BackendMemory, BackendPostgres, BackendSQLite, c.Database.Backend))
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set when AUTH_ENABLED is true"))
	}
	if c.Auth.DefaultClientID <= 0 {
		errs = append(errs, errors.New("DEFAULT_CLIENT_ID must be positive"))
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive when CACHE_ENABLED is true"))
	}
	if c.Database.SeedGenerated < 0 {
		errs = append(errs, errors.New("DB_SEED_GENERATED must not be negative"))
	}
	if c.Breaker.Enabled && (c.Breaker.MaxFailures <= 0 || c.Breaker.HalfOpenSuccesses <= 0 || c.Breaker.ResetTimeout <= 0) {
		errs = append(errs, errors.New("BREAKER_MAX_FAILURES, BREAKER_RESET_TIMEOUT and BREAKER_HALF_OPEN_SUCCESSES must be positive when BREAKER_ENABLED is true"))
	}
	if c.Report.Template == "" {
		errs = append(errs, errors.New("REPORT_TEMPLATE must not be empty"))
	}
	if c.Security.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the postgres connection string used by the migrator
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
