package models

import (
	"time"

	"truckledger/internal/uuid"

	"gorm.io/gorm"
)

// AssetSnapshot breaks total capitalization into its components.
type AssetSnapshot struct {
	CashBalance  float64 `gorm:"not null" json:"cash_balance"`
	GarageValue  float64 `gorm:"not null" json:"garage_value"`
	TruckValue   float64 `gorm:"not null" json:"truck_value"`
	TrailerValue float64 `gorm:"not null" json:"trailer_value"`
}

// ProfitStats holds the rolling day-over-day net-asset deltas.
type ProfitStats struct {
	Today float64 `gorm:"not null" json:"today"`
	Avg7  float64 `gorm:"not null" json:"avg7"`
	Avg30 float64 `gorm:"not null" json:"avg30"`
	Avg90 float64 `gorm:"not null" json:"avg90"`
}

// FinancialReport holds derived balance-sheet figures.
type FinancialReport struct {
	NetAssets  float64 `gorm:"not null" json:"net_assets"`
	TotalDebt  float64 `gorm:"not null" json:"total_debt"`
	CashOnHand float64 `gorm:"not null" json:"cash_on_hand"`
	CashRatio  float64 `gorm:"not null" json:"cash_ratio"`
}

// FleetStats counts owned entities at snapshot time. ParkingLots is the
// summed parking capacity of all garages.
type FleetStats struct {
	Garages     int `gorm:"not null" json:"garages"`
	ParkingLots int `gorm:"not null" json:"parking_lots"`
	Trucks      int `gorm:"not null" json:"trucks"`
	Trailers    int `gorm:"not null" json:"trailers"`
	Drivers     int `gorm:"not null" json:"drivers"`
}

// DailyRecord is one immutable entry in a profile's financial history.
// Records are append-only time-series data: no Base embed, no updates.
type DailyRecord struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID string    `gorm:"type:uuid;not null;uniqueIndex:idx_records_profile_day" json:"profile_id"`
	Day       int       `gorm:"not null;uniqueIndex:idx_records_profile_day" json:"day"`
	TotalCap  float64   `gorm:"not null" json:"total_cap"`
	CreatedAt time.Time `json:"created_at"`

	Assets AssetSnapshot   `gorm:"embedded" json:"assets"`
	Profit ProfitStats     `gorm:"embedded;embeddedPrefix:profit_" json:"profit"`
	Report FinancialReport `gorm:"embedded" json:"report"`
	Stats  FleetStats      `gorm:"embedded;embeddedPrefix:count_" json:"stats"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (r *DailyRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New()
	}
	return nil
}
