package models

import (
	"time"

	"truckledger/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// Asset carries the identity and day-of-creation contract shared by every
// collection the ledger manages (garages, trucks, trailers, drivers, loans).
// Day is assigned once on insert and never changed by edits.
type Asset struct {
	Base
	ProfileID string `gorm:"type:uuid;not null;index" json:"profile_id"`
	Day       int    `gorm:"not null" json:"day"`
}

// Meta exposes the shared asset columns to the generic ledger operations.
func (a *Asset) Meta() *Asset { return a }
