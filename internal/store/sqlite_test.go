package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/homeaudit/pkg/models"
)

func testAssessment(id string) models.Assessment {
	updated := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	return models.Assessment{
		ID:               id,
		Owner:            "alice",
		Address:          "1 Main St",
		AssessmentDate:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		EfficiencyRating: 7.5,
		Recommendations:  "seal windows",
		CostSavings:      200,
		CreatedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:        &updated,
		UsageHistory: []models.UsageReading{
			{Timestamp: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC), Consumption: 30},
			{Timestamp: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), Consumption: 10},
		},
	}
}

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestRoundTrip(t *testing.T) {
	db, _ := openTestDB(t)

	want := testAssessment("a-1")
	require.NoError(t, db.Put(want.ID, want))

	got, err := db.Get(want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestGetAbsent(t *testing.T) {
	db, _ := openTestDB(t)

	got, err := db.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPutReplaces(t *testing.T) {
	db, _ := openTestDB(t)

	first := testAssessment("a-1")
	require.NoError(t, db.Put(first.ID, first))

	second := first
	second.Address = "2 Main St"
	second.UsageHistory = append(second.UsageHistory, models.UsageReading{
		Timestamp:   time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
		Consumption: 5,
	})
	require.NoError(t, db.Put(second.ID, second))

	got, err := db.Get(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2 Main St", got.Address)
	assert.Len(t, got.UsageHistory, 3)

	values, err := db.Values()
	require.NoError(t, err)
	assert.Len(t, values, 1, "put under an existing id must replace, not duplicate")
}

func TestDelete(t *testing.T) {
	db, _ := openTestDB(t)

	want := testAssessment("a-1")
	require.NoError(t, db.Put(want.ID, want))

	removed, err := db.Delete(want.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, want, *removed)

	got, err := db.Get(want.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteAbsent(t *testing.T) {
	db, _ := openTestDB(t)

	removed, err := db.Delete("missing")
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func TestValuesOrdered(t *testing.T) {
	db, _ := openTestDB(t)

	// insert out of key order
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, db.Put(id, testAssessment(id)))
	}

	values, err := db.Values()
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "a", values[0].ID)
	assert.Equal(t, "b", values[1].ID)
	assert.Equal(t, "c", values[2].ID)
}

func TestDurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := New(path)
	require.NoError(t, err)

	want := testAssessment("a-1")
	require.NoError(t, db.Put(want.ID, want))
	require.NoError(t, db.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}
