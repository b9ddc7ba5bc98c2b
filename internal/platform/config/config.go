package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	DBDriver    string
	SQLitePath  string
	DatabaseURL string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bootstrap admin, seeded at startup when absent
	AdminEmail    string
	AdminPassword string

	CORSAllowedOrigins []string
	LoginRateLimit     string
	MetricsEnabled     bool
}

// LoadConfig loads configuration from, in increasing priority: defaults, an optional config
// file, a .env file, environment variables and command line flags.
func LoadConfig(args []string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_DB_PATH", "data.sqlite")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "168h")
	v.SetDefault("JWT_ISSUER", "fund-balance-app")
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("METRICS_ENABLED", true)

	flags := pflag.NewFlagSet("fund_backend", pflag.ContinueOnError)
	flags.String("config", "", "path to an optional config file (yaml, json, toml or env)")
	flags.String("port", "", "HTTP listen port")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("db-driver", "", "database driver: sqlite or postgres")
	flags.String("sqlite-db-path", "", "path of the SQLite database file")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	for key, flag := range map[string]string{
		"PORT":           "port",
		"LOG_LEVEL":      "log-level",
		"DB_DRIVER":      "db-driver",
		"SQLITE_DB_PATH": "sqlite-db-path",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		SQLitePath:     v.GetString("SQLITE_DB_PATH"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		AdminEmail:     strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_EMAIL"))),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	// Load JWT Expiry Duration (e.g., "60m", "168h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_DB_PATH must not be empty")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("PGSQL_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.JWTSecret == defaultJWTSecret {
		if c.IsProduction {
			return errors.New("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if c.AdminEmail == "" {
		return errors.New("ADMIN_EMAIL must not be empty")
	}
	if c.Port == "" {
		c.Port = "8080"
		log.Printf("Warning: PORT not set. Defaulting to %s\n", c.Port)
	}
	return nil
}
