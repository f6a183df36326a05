package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"finques-lisa/models"
	"finques-lisa/storage"
	"finques-lisa/validator"
)

// MigrationService imports listings from the legacy client-side store
type MigrationService struct {
	properties PropertyCreator
	store      storage.LegacyStore
	mu         sync.Mutex
}

func NewMigrationService(properties PropertyCreator, store storage.LegacyStore) *MigrationService {
	return &MigrationService{
		properties: properties,
		store:      store,
	}
}

// MigrateLegacy creates each legacy record independently: a failing record is reported and
// the batch goes on. The store is cleared only when at least one record was migrated.
// It returns storage.ErrNoLegacyData when there is nothing to import. Runs are serialized
// so a second caller sees the store already cleared.
func (ms *MigrationService) MigrateLegacy() (*models.MigrationResult, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	records, err := ms.store.Load()
	if err != nil {
		return nil, err
	}

	result := &models.MigrationResult{
		Total:   len(records),
		Results: make([]models.MigrationItem, 0, len(records)),
	}

	for _, raw := range records {
		item := ms.migrateRecord(raw)
		if item.Success {
			result.Successful++
		} else {
			result.Failed++
		}
		result.Results = append(result.Results, item)
	}

	if result.Successful > 0 {
		if err := ms.store.Clear(); err != nil {
			// Migrated rows stay; Cleared stays false.
			slog.Error("Failed to clear legacy store", "error", err)
		} else {
			result.Cleared = true
		}
	}

	slog.Info("Legacy migration finished",
		"total", result.Total,
		"successful", result.Successful,
		"failed", result.Failed,
		"cleared", result.Cleared,
	)
	return result, nil
}

func (ms *MigrationService) migrateRecord(raw json.RawMessage) models.MigrationItem {
	var legacy models.LegacyProperty
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return models.MigrationItem{
			Error: fmt.Sprintf("invalid record: %v", err),
			Data:  raw,
		}
	}

	property, err := ms.properties.Create(legacy.ToInput())
	if err != nil {
		item := models.MigrationItem{Error: err.Error(), Data: raw}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			item.Fields = verrs.Fields()
		}
		return item
	}

	return models.MigrationItem{Success: true, Property: property}
}
