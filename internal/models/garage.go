package models

// GarageSize represents the size class of a garage.
type GarageSize string

const (
	GarageSizeSmall  GarageSize = "small"
	GarageSizeMedium GarageSize = "medium"
	GarageSizeLarge  GarageSize = "large"
)

// Valid reports whether the size is one of the known classes.
func (s GarageSize) Valid() bool {
	switch s {
	case GarageSizeSmall, GarageSizeMedium, GarageSizeLarge:
		return true
	}
	return false
}

// Garage represents an owned garage property.
type Garage struct {
	Asset
	Location string     `gorm:"not null" json:"location"`
	Size     GarageSize `gorm:"not null" json:"size"`
	Value    float64    `gorm:"not null;default:0" json:"value"`
}
