package monitor

import (
	"context"
	"errors"
	"fmt"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
	"liyu1981.xyz/vitals-monitor-service/pkg/store"
)

const ThemeStoreKey = "vitals.theme"

var ErrInvalidTheme = errors.New("theme must be light or dark")

// LoadTheme treats anything other than a stored "light" or "dark" as absent.
func LoadTheme(ctx context.Context, s store.Store) models.Theme {
	if s == nil {
		return models.ThemeLight
	}
	raw, err := s.Get(ctx, ThemeStoreKey)
	if err != nil {
		return models.ThemeLight
	}
	switch theme := models.Theme(raw); theme {
	case models.ThemeLight, models.ThemeDark:
		return theme
	default:
		return models.ThemeLight
	}
}

func SaveTheme(ctx context.Context, s store.Store, theme models.Theme) error {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if s == nil {
		return errors.New("theme store not available")
	}
	return s.Set(ctx, ThemeStoreKey, string(theme))
}
