package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
)

// MockDocStore is an in-memory DocStore for tests.
type MockDocStore struct {
	data    map[string]string
	geoData map[string]map[string]GeoLoc
	mu      sync.RWMutex
	ctx     context.Context
}

// GeoLoc represents a stored geolocation member.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockDocStore initializes an empty MockDocStore.
func NewMockDocStore(ctx context.Context) *MockDocStore {
	return &MockDocStore{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		ctx:     ctx,
	}
}

// Set stores a key-value pair.
func (m *MockDocStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// SetNX stores the pair only if absent.
func (m *MockDocStore) SetNX(key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	m.data[key] = value
	return true, nil
}

// Get retrieves a value, returning ErrKeyNotFound when absent.
func (m *MockDocStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Del removes a key.
func (m *MockDocStore) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns all keys matching the glob pattern.
func (m *MockDocStore) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// AddLocationWithJSON stores a geo member and the JSON document.
func (m *MockDocStore) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lng}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns every stored document for the geo
// key; distance filtering is not simulated.
func (m *MockDocStore) GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}
	var results []string
	for memberKey := range geoMembers {
		if data, exists := m.data[memberKey]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// GetContext returns the mock store's context.
func (m *MockDocStore) GetContext() context.Context {
	return m.ctx
}

// Ping always succeeds.
func (m *MockDocStore) Ping() error {
	return nil
}
