package models

// Driver represents an employed driver. Drivers are counted in the fleet
// statistics but carry no asset value.
type Driver struct {
	Asset
	Name   string  `gorm:"not null" json:"name"`
	City   string  `json:"city"`
	Salary float64 `gorm:"not null;default:0" json:"salary"`
}
