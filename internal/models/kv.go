package models

import "time"

// KVEntry is one row of the key-value table backing persistence.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:entry_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name so it does not depend on pluralisation.
func (KVEntry) TableName() string {
	return "kv_entries"
}
