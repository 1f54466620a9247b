package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a persistent key-value store scoped to one storefront installation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

const (
	KeySiteData = "site_data" // payload mirrored when the remote save fails
	KeyProducts = "products"
	KeySlides   = "tk_slides"
	KeySettings = "site_settings"

	// Written by the first admin page as raw strings, read-only now.
	KeyLegacyTitle = "siteTitle"
	KeyLegacyTag   = "siteTag"
)

// GetJSON decodes the value under key into a T. A missing key, a read error
// or corrupt JSON all yield def; the caller never sees an error.
func GetJSON[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.WarnContext(ctx, "storage_read_failed", slog.String("key", key), slog.Any("err", err))
		}
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.WarnContext(ctx, "storage_corrupt_value", slog.String("key", key), slog.Any("err", err))
		return def
	}
	return v
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, b)
}

// GetString returns the raw value under key as text, or "" when unreadable.
func GetString(ctx context.Context, s Store, key string) string {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return ""
	}
	return string(raw)
}
