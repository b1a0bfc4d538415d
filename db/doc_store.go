package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
// Callers must not depend on the driver's own missing-key error.
var ErrKeyNotFound = errors.New("key not found")

// DocStore defines the document-store operations the DAOs rely on.
type DocStore interface {
	Set(key, value string) error
	SetNX(key, value string) (bool, error)
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
}
