package models

// Truck represents an owned truck.
type Truck struct {
	Asset
	Brand     string  `gorm:"not null" json:"brand"`
	Model     string  `gorm:"not null" json:"model"`
	Value     float64 `gorm:"not null;default:0" json:"value"`
	Condition int     `gorm:"not null;default:100" json:"condition"`
}
