package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int

	HTTPPort        string
	AllowedOrigins  []string
	Production      bool
	OperatorWorkers int
	LogLevel        string
}

const devJWTSecret = "cashbook-dev-secret"

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("POSTGRES_ADDRESS", "localhost")
	v.SetDefault("POSTGRES_PORT", "5433")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_USERNAME", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "testpassword")
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("HTTP_PORT", "9446")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("PRODUCTION", false)
	v.SetDefault("OPERATOR_WORKERS", 4)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	env := Config{
		PostgresAddress:  v.GetString("POSTGRES_ADDRESS"),
		PostgresPort:     v.GetString("POSTGRES_PORT"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresUsername: v.GetString("POSTGRES_USERNAME"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		RedisAddress:     v.GetString("REDIS_ADDRESS"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		SessionTTL:       v.GetDuration("SESSION_TTL"),
		BcryptCost:       v.GetInt("BCRYPT_COST"),
		HTTPPort:         v.GetString("HTTP_PORT"),
		Production:       v.GetBool("PRODUCTION"),
		OperatorWorkers:  v.GetInt("OPERATOR_WORKERS"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			env.AllowedOrigins = append(env.AllowedOrigins, origin)
		}
	}

	if env.JWTSecret == "" {
		if env.Production {
			return nil, ErrMissingJWTSecret
		}
		env.JWTSecret = devJWTSecret
	}

	return &env, nil
}
