package util

import (
	"encoding/json"
	"fmt"
	"os"

	"caffind-server/models/cafe"
)

// ReadCafesFromJSON loads a cafe catalog from JSON on disk. Used when an
// operator provides an external catalog file instead of the built-in
// seed dataset.
func ReadCafesFromJSON(filePath string) ([]cafe.Cafe, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var cafes []cafe.Cafe
	if err := json.Unmarshal(data, &cafes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cafes: %w", err)
	}
	return cafes, nil
}
