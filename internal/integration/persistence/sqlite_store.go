package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pocket-ledger/ledger/internal/integration/persistence/model"
)

// SqliteStore is a KeyValueStore backed by a single-table on-device sqlite
// database.
type SqliteStore struct {
	db *gorm.DB
}

// NewSqliteStore creates a store over an existing gorm connection.
func NewSqliteStore(db *gorm.DB) *SqliteStore {
	return &SqliteStore{db: db}
}

// Get implements adapter.KeyValueStore.
func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record model.KVRecordModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite get %s: %w", key, result.Error)
	}
	return record.Value, true, nil
}

// Set implements adapter.KeyValueStore.
func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	record := model.KVRecordModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record)
	if result.Error != nil {
		return fmt.Errorf("sqlite set %s: %w", key, result.Error)
	}
	return nil
}

// Delete implements adapter.KeyValueStore.
func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVRecordModel{})
	if result.Error != nil {
		return fmt.Errorf("sqlite del %s: %w", key, result.Error)
	}
	return nil
}
