// Package model defines persistence models for the sqlite-backed store.
package model

import "time"

// KVRecordModel is one key-value row of the on-device sqlite database.
type KVRecordModel struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name used by GORM.
func (KVRecordModel) TableName() string {
	return "kv_records"
}
