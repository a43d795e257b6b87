package database

import (
	"bytes"
	"context"
	"testing"

	"platra/internal/config"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	log := queryLogger(logger)
	log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "SELECT 1"})

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
	assert.Contains(t, buf.String(), `"message":"Query"`)
}

func TestNewPool_Unreachable(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:           "127.0.0.1",
		Port:           1,
		User:           "postgres",
		Database:       "platra",
		SSLMode:        "disable",
		MaxConnections: 2,
		MinConnections: 1,
	}

	pool, err := NewPool(context.Background(), cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
}
