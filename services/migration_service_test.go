package services

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"finques-lisa/models"
	"finques-lisa/storage"
	"finques-lisa/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRecords(records ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(records))
	for i, r := range records {
		out[i] = json.RawMessage(r)
	}
	return out
}

func TestMigrationService_MigrateLegacy(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	properties := NewPropertyService(repo, validator.New())

	t.Run("One invalid record out of three", func(t *testing.T) {
		store := new(MockLegacyStore)
		store.On("Load").Return(rawRecords(
			`{"title":"Piso en Lleida","price":150000,"location":"Lleida","operationType":"venta","propertyType":"piso","bedrooms":2,"bathrooms":1,"image":"https://img.example.com/a.jpg","features":["Ascensor"]}`,
			`{"title":"Casa sin precio","price":0,"location":"Alpicat","operation_type":"venta","property_type":"casa"}`,
			`{"title":"Ático en alquiler","price":"950","location":"Lleida","operationType":"alquiler","propertyType":"ático","area":70,"isFeatured":true}`,
		), nil)
		store.On("Clear").Return(nil).Once()

		result, err := NewMigrationService(properties, store).MigrateLegacy()
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 2, result.Successful)
		assert.Equal(t, 1, result.Failed)
		assert.True(t, result.Cleared)
		require.Len(t, result.Results, 3)

		assert.True(t, result.Results[0].Success)
		assert.Equal(t, "https://img.example.com/a.jpg", result.Results[0].Property.MainImage)

		failed := result.Results[1]
		assert.False(t, failed.Success)
		assert.Contains(t, failed.Fields, "price")
		assert.JSONEq(t, `{"title":"Casa sin precio","price":0,"location":"Alpicat","operation_type":"venta","property_type":"casa"}`, string(failed.Data))

		attic := result.Results[2].Property
		require.NotNil(t, attic)
		assert.Equal(t, models.OperationRent, attic.OperationType)
		assert.Equal(t, models.PropertyPenthouse, attic.PropertyType)
		require.NotNil(t, attic.AreaBuilt)
		assert.Equal(t, 70.0, *attic.AreaBuilt)
		assert.True(t, attic.IsFeatured)

		store.AssertExpectations(t)
	})

	t.Run("Nothing migrated keeps the store", func(t *testing.T) {
		store := new(MockLegacyStore)
		store.On("Load").Return(rawRecords(`{"title":""}`, `"not an object"`), nil)

		result, err := NewMigrationService(properties, store).MigrateLegacy()
		require.NoError(t, err)
		assert.Equal(t, 0, result.Successful)
		assert.Equal(t, 2, result.Failed)
		assert.False(t, result.Cleared)
		assert.Contains(t, result.Results[1].Error, "invalid record")
		store.AssertNotCalled(t, "Clear")
	})

	t.Run("Clear failure is reported, not fatal", func(t *testing.T) {
		store := new(MockLegacyStore)
		store.On("Load").Return(rawRecords(
			`{"title":"Local","price":800,"location":"Lleida","operationType":"rent","propertyType":"commercial"}`,
		), nil)
		store.On("Clear").Return(errors.New("read-only"))

		result, err := NewMigrationService(properties, store).MigrateLegacy()
		require.NoError(t, err)
		assert.Equal(t, 1, result.Successful)
		assert.False(t, result.Cleared)
	})

	t.Run("No legacy data", func(t *testing.T) {
		store := new(MockLegacyStore)
		store.On("Load").Return(nil, storage.ErrNoLegacyData)

		_, err := NewMigrationService(properties, store).MigrateLegacy()
		assert.ErrorIs(t, err, storage.ErrNoLegacyData)
	})
}

func TestMigrationService_ConcurrentRuns(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title":"Piso en Lleida","price":150000,"location":"Lleida","operationType":"venta","propertyType":"piso"},
		{"title":"Casa en Alpicat","price":280000,"location":"Alpicat","operationType":"venta","propertyType":"casa"}
	]`), 0o644))

	service := NewMigrationService(NewPropertyService(repo, validator.New()), storage.NewFileStore(path))

	var wg sync.WaitGroup
	results := make([]*models.MigrationResult, 2)
	errs := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.MigrateLegacy()
		}(i)
	}
	wg.Wait()

	migrated, empty := 0, 0
	for i := range results {
		if errors.Is(errs[i], storage.ErrNoLegacyData) {
			empty++
			continue
		}
		require.NoError(t, errs[i])
		migrated += results[i].Successful
	}
	assert.Equal(t, 1, empty)
	assert.Equal(t, 2, migrated)

	listed, err := repo.ListProperties(models.PropertyFilters{})
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
