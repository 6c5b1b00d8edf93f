package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/config"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/database"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedis_UnreachableDisablesCache(t *testing.T) {
	client := connectRedis(database.RedisConfig{Host: "127.0.0.1", Port: "1"})
	assert.Nil(t, client)
}

func TestRun_FailsFastOnBadDatabaseURL(t *testing.T) {
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	t.Setenv("AUTO_MIGRATE", "false")
	cfg := config.Load()
	logger := zerolog.Nop()

	err := run(context.Background(), cfg, &logger)
	assert.Error(t, err)
}
