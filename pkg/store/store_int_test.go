package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/vitals-monitor-service/pkg/common"
)

func TestSqliteDialectorWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	testPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv(common.EnvKeyMonitorDbPath, testPath)

	dialector := UseSqliteDialector()
	assert.Equal(t, "sqlite", dialector.Name())
}

func TestRedisStore(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	ctx := context.Background()
	s := NewRedisStore(NewRedisClient(common.EnvOr(common.EnvKeyMonitorRedisAddr, "localhost:6379")))
	require.NoError(t, s.Ping(ctx))

	key := "vitals-test-" + uuid.NewString()
	_, err := s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, key, `{"hrHigh":110}`))
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hrHigh":110}`, v)
}
