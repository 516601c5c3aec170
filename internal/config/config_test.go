package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	env, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost", env.PostgresAddress)
	assert.Equal(t, "5433", env.PostgresPort)
	assert.Equal(t, "postgres", env.PostgresDB)
	assert.Equal(t, "localhost:6379", env.RedisAddress)
	assert.Equal(t, 7*24*time.Hour, env.SessionTTL)
	assert.Equal(t, 10, env.BcryptCost)
	assert.Equal(t, "9446", env.HTTPPort)
	assert.Equal(t, []string{"http://localhost:5173"}, env.AllowedOrigins)
	assert.Equal(t, 4, env.OperatorWorkers)
	assert.False(t, env.Production)
	assert.Equal(t, devJWTSecret, env.JWTSecret)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("OPERATOR_WORKERS", "8")

	env, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", env.PostgresAddress)
	assert.Equal(t, 2*time.Hour, env.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.AllowedOrigins)
	assert.Equal(t, "s3cret", env.JWTSecret)
	assert.Equal(t, 8, env.OperatorWorkers)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("PRODUCTION", "true")

	_, err := load(viper.New())
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}
