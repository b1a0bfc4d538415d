package redis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"caffind-server/db"
	"caffind-server/models/cafe"
)

const CAFES_GEO_KEY_V1 = "cafes_geo_v1"
const CAFES_DOC_KEY_FORMAT_V1 = "cafes_doc_v1:%s"

// RedisCafeDAO handles cafe catalog operations over the document store.
type RedisCafeDAO struct {
	store db.DocStore
}

// NewRedisCafeDAO initializes a RedisCafeDAO with the store.
func NewRedisCafeDAO(store db.DocStore) *RedisCafeDAO {
	return &RedisCafeDAO{store: store}
}

// UpsertCafe stores the cafe document and its geo-index member.
func (dao *RedisCafeDAO) UpsertCafe(c cafe.Cafe) error {
	ctx := dao.store.GetContext()
	docKey := fmt.Sprintf(CAFES_DOC_KEY_FORMAT_V1, c.ID)
	return dao.store.AddLocationWithJSON(ctx, CAFES_GEO_KEY_V1, docKey, c.Location.Lat, c.Location.Lng, c)
}

// GetCafe retrieves a single cafe document by ID.
func (dao *RedisCafeDAO) GetCafe(cafeID string) (*cafe.Cafe, error) {
	docKey := fmt.Sprintf(CAFES_DOC_KEY_FORMAT_V1, cafeID)
	data, err := dao.store.Get(docKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get cafe %s: %w", cafeID, err)
	}
	var c cafe.Cafe
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cafe JSON: %w", err)
	}
	return &c, nil
}

// ListCafes returns every cafe document, ordered by ID so catalog order
// is stable across invocations.
func (dao *RedisCafeDAO) ListCafes() ([]cafe.Cafe, error) {
	pattern := fmt.Sprintf(CAFES_DOC_KEY_FORMAT_V1, "*")
	keys, err := dao.store.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list cafe keys: %w", err)
	}

	cafes := make([]cafe.Cafe, 0, len(keys))
	for _, k := range keys {
		data, err := dao.store.Get(k)
		if err != nil {
			return nil, fmt.Errorf("failed to get cafe doc %s: %w", k, err)
		}
		var c cafe.Cafe
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cafe JSON: %w", err)
		}
		cafes = append(cafes, c)
	}

	sort.SliceStable(cafes, func(i, j int) bool {
		return lessCafeID(cafes[i].ID, cafes[j].ID)
	})
	return cafes, nil
}

// CountCafes returns the number of stored cafe documents.
func (dao *RedisCafeDAO) CountCafes() (int, error) {
	pattern := fmt.Sprintf(CAFES_DOC_KEY_FORMAT_V1, "*")
	keys, err := dao.store.Keys(pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to count cafes: %w", err)
	}
	return len(keys), nil
}

// GetNearbyCafes retrieves cafes within a given radius in kilometres.
func (dao *RedisCafeDAO) GetNearbyCafes(lat, lng, radius float64) ([]cafe.Cafe, error) {
	docs, err := dao.store.GetLocationsWithinRadius(CAFES_GEO_KEY_V1, lat, lng, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby cafes: %w", err)
	}
	cafes := make([]cafe.Cafe, len(docs))
	for i, doc := range docs {
		if err := json.Unmarshal([]byte(doc), &cafes[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cafe JSON: %w", err)
		}
	}
	return cafes, nil
}

// lessCafeID orders numeric IDs numerically and everything else
// lexicographically.
func lessCafeID(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return strings.Compare(a, b) < 0
}
