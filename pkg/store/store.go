// Package store persists small string settings (rule sets, theme preference)
// under fixed keys. Backends: sqlite through gorm, or redis.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("store: key not found")

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks liyu1981.xyz/vitals-monitor-service/pkg/store Store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
