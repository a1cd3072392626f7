package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ProjectCreationAdmin = "admin"
	ProjectCreationAny   = "any"
)

type Config struct {
	AppURL                 string
	AppEnv                 string
	LogLevel               string
	DatabaseDriver         string
	DatabaseDSN            string
	RedisAddr              string
	RateLimit              int
	JWTSecret              string
	JWTTTL                 time.Duration
	JWTIssuer              string
	BcryptCost             int
	FrontendOrigin         string
	ProjectCreationPolicy  string
	ShutdownTimeoutSeconds int
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}
	bcryptCost, err := getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return Config{}, err
	}
	jwtTTL, err := getEnvAsDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		AppEnv:                 strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		LogLevel:               strings.ToLower(getEnv("LOG_LEVEL", "info")),
		DatabaseDriver:         strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskboard.db"),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RateLimit:              rateLimit,
		JWTSecret:              getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTTTL:                 jwtTTL,
		JWTIssuer:              getEnv("JWT_ISSUER", "taskboard"),
		BcryptCost:             bcryptCost,
		FrontendOrigin:         getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		ProjectCreationPolicy:  strings.ToLower(getEnv("PROJECT_CREATION_POLICY", ProjectCreationAdmin)),
		ShutdownTimeoutSeconds: shutdownTimeout,
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// AllowedOrigins is the CORS origin list: anything in development, the
// configured frontend otherwise.
func (c Config) AllowedOrigins() []string {
	if !c.IsProduction() {
		return []string{"*"}
	}
	return strings.Split(c.FrontendOrigin, ",")
}

func validate(cfg Config) error {
	var errs []error
	if cfg.AppURL == "" {
		errs = append(errs, errors.New("APP_HOST/APP_PORT must not be empty"))
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres))
	}
	if cfg.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if cfg.IsProduction() && cfg.JWTSecret == "dev-secret-change-in-production" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if cfg.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if cfg.ProjectCreationPolicy != ProjectCreationAdmin && cfg.ProjectCreationPolicy != ProjectCreationAny {
		errs = append(errs, fmt.Errorf("PROJECT_CREATION_POLICY must be %q or %q", ProjectCreationAdmin, ProjectCreationAny))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value for %s", key)
		}
		return d, nil
	}
	return defaultVal, nil
}
