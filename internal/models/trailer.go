package models

// Trailer represents an owned trailer.
type Trailer struct {
	Asset
	BodyType  string  `gorm:"not null" json:"body_type"`
	Model     string  `json:"model"`
	Value     float64 `gorm:"not null;default:0" json:"value"`
	Condition int     `gorm:"not null;default:100" json:"condition"`
}
