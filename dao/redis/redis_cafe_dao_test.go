package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caffind-server/db"
	"caffind-server/models/cafe"
)

func testCafe(id, name string, rating float64) cafe.Cafe {
	return cafe.Cafe{
		ID:     id,
		Name:   name,
		Rating: rating,
		Location: cafe.Location{
			Lat: 28.8386 + float64(len(id))*0.001,
			Lng: 78.7733,
		},
	}
}

func TestRedisCafeDAO_UpsertAndGet(t *testing.T) {
	dao := NewRedisCafeDAO(db.NewMockDocStore(context.Background()))

	want := testCafe("1", "Town Hall Cafe", 3.9)
	require.NoError(t, dao.UpsertCafe(want))

	got, err := dao.GetCafe("1")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestRedisCafeDAO_GetMissingCafeErrors(t *testing.T) {
	dao := NewRedisCafeDAO(db.NewMockDocStore(context.Background()))

	_, err := dao.GetCafe("999")
	assert.ErrorIs(t, err, db.ErrKeyNotFound)
}

func TestRedisCafeDAO_UpsertOverwrites(t *testing.T) {
	dao := NewRedisCafeDAO(db.NewMockDocStore(context.Background()))

	require.NoError(t, dao.UpsertCafe(testCafe("1", "Town Hall Cafe", 3.9)))
	require.NoError(t, dao.UpsertCafe(testCafe("1", "Town Hall Cafe", 4.2)))

	got, err := dao.GetCafe("1")
	require.NoError(t, err)
	assert.Equal(t, 4.2, got.Rating)

	count, err := dao.CountCafes()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisCafeDAO_ListCafesOrdersNumerically(t *testing.T) {
	dao := NewRedisCafeDAO(db.NewMockDocStore(context.Background()))

	for _, id := range []string{"21", "3", "1", "10"} {
		require.NoError(t, dao.UpsertCafe(testCafe(id, "Cafe "+id, 4.0)))
	}

	cafes, err := dao.ListCafes()
	require.NoError(t, err)

	ids := make([]string, len(cafes))
	for i, c := range cafes {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"1", "3", "10", "21"}, ids)
}

func TestRedisCafeDAO_CountCafes(t *testing.T) {
	dao := NewRedisCafeDAO(db.NewMockDocStore(context.Background()))

	count, err := dao.CountCafes()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, dao.UpsertCafe(testCafe("1", "Town Hall Cafe", 3.9)))
	require.NoError(t, dao.UpsertCafe(testCafe("2", "The Urban Brew", 4.6)))

	count, err = dao.CountCafes()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRedisCafeDAO_GetNearbyCafes(t *testing.T) {
	store := db.NewMockDocStore(context.Background())
	dao := NewRedisCafeDAO(store)

	near := testCafe("1", "Town Hall Cafe", 3.9)
	require.NoError(t, dao.UpsertCafe(near))

	cafes, err := dao.GetNearbyCafes(near.Location.Lat, near.Location.Lng, 5)
	require.NoError(t, err)
	require.Len(t, cafes, 1)
	assert.Equal(t, "1", cafes[0].ID)
}
