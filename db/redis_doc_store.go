package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisDocStore is the production DocStore backed by go-redis. Documents
// are stored as JSON strings; cafes additionally get a geo-index member
// so nearby lookups stay possible.
type RedisDocStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisDocStore wraps an initialized redis client.
func NewRedisDocStore(ctx context.Context, client *redis.Client) *RedisDocStore {
	return &RedisDocStore{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a key-value pair without expiry.
func (r *RedisDocStore) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetNX stores the pair only if the key does not exist and reports
// whether it was written.
func (r *RedisDocStore) SetNX(key, value string) (bool, error) {
	return r.client.SetNX(r.ctx, key, value, 0).Result()
}

// Get retrieves the value for a key, mapping the driver's missing-key
// error to ErrKeyNotFound.
func (r *RedisDocStore) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Del removes a key.
func (r *RedisDocStore) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys returns all keys matching the pattern.
func (r *RedisDocStore) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// AddLocationWithJSON stores a geolocation member plus the associated
// JSON document under memberKey.
func (r *RedisDocStore) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lng,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation: %w", err)
	}

	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %w", err)
	}
	return nil
}

// GetLocationsWithinRadius finds all members within radius kilometres of
// the point and returns their JSON documents.
func (r *RedisDocStore) GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, key, lng, lat, &redis.GeoRadiusQuery{
		Radius: radius,
		Unit:   "km",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query geo radius: %w", err)
	}

	docs := make([]string, 0, len(results))
	for _, loc := range results {
		data, err := r.Get(loc.Name)
		if err != nil {
			if errors.Is(err, ErrKeyNotFound) {
				continue
			}
			return nil, err
		}
		docs = append(docs, data)
	}
	return docs, nil
}

// GetContext returns the store's base context.
func (r *RedisDocStore) GetContext() context.Context {
	return r.ctx
}

// Ping checks connectivity.
func (r *RedisDocStore) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
