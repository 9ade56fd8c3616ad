package store

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	_ "liyu1981.xyz/vitals-monitor-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	require.NotNil(t, instance)
	assert.True(t, tableExists(instance.Conn, "settings"), "settings table should exist after migration")
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestGormStore_GetMissing(t *testing.T) {
	common.SetTestLoggerNop()

	s := NewGormStore(GetInstance(UseMemorySqliteDialector()))

	_, err := s.Get(context.Background(), "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_SetThenOverwrite(t *testing.T) {
	common.SetTestLoggerNop()

	ctx := context.Background()
	s := NewGormStore(GetInstance(UseMemorySqliteDialector()))
	key := "theme-" + uuid.NewString()

	require.NoError(t, s.Set(ctx, key, "dark"))
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Set(ctx, key, "light"))
	v, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestGormStore_GetMissingIsQuiet(t *testing.T) {
	common.SetTestLoggerNop()

	var buf bytes.Buffer
	quiet := GetInstance(UseMemorySqliteDialector()).Conn.Session(&gorm.Session{
		Logger: logger.New(log.New(&buf, "", 0), logger.Config{LogLevel: logger.Warn}),
	})
	s := NewGormStore(&DB{Conn: quiet})

	_, err := s.Get(context.Background(), "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, buf.String(), "record not found")
	assert.Empty(t, buf.String())
}
