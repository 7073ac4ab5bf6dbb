package models

// GameVariant identifies which simulator the profile tracks.
type GameVariant string

const (
	GameETS2 GameVariant = "ets2"
	GameATS  GameVariant = "ats"
)

// gameCurrencies lists the in-game currencies each variant supports.
var gameCurrencies = map[GameVariant][]string{
	GameETS2: {"EUR", "GBP", "CHF", "SEK", "NOK", "DKK", "PLN"},
	GameATS:  {"USD"},
}

// weekdayNames maps weekday indexes (0 = Monday) to display names.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// GameInfo holds the immutable creation-time metadata of a profile.
type GameInfo struct {
	Game             GameVariant `gorm:"not null" json:"game"`
	PlayerName       string      `gorm:"not null" json:"player_name"`
	CompanyName      string      `gorm:"not null" json:"company_name"`
	Currency         string      `gorm:"not null" json:"currency"`
	StartingLocation string      `json:"starting_location"`
	StartingDay      int         `gorm:"not null;default:0" json:"starting_day"`
	StartingWeekday  int         `gorm:"not null;default:0" json:"starting_weekday"`
}

// SupportsCurrency reports whether the currency code is valid for the
// profile's game variant.
func (g GameInfo) SupportsCurrency(code string) bool {
	for _, c := range gameCurrencies[g.Game] {
		if c == code {
			return true
		}
	}
	return false
}

// Profile is the root aggregate: one per player, holding the asset
// collections and the append-only daily record history.
type Profile struct {
	Base
	GameInfo   GameInfo `gorm:"embedded" json:"game_info"`
	CurrentDay int      `gorm:"not null;default:0" json:"current_day"`

	Garages      []Garage      `gorm:"foreignKey:ProfileID" json:"garages,omitempty"`
	Trucks       []Truck       `gorm:"foreignKey:ProfileID" json:"trucks,omitempty"`
	Trailers     []Trailer     `gorm:"foreignKey:ProfileID" json:"trailers,omitempty"`
	Drivers      []Driver      `gorm:"foreignKey:ProfileID" json:"drivers,omitempty"`
	Loans        []Loan        `gorm:"foreignKey:ProfileID" json:"loans,omitempty"`
	DailyRecords []DailyRecord `gorm:"foreignKey:ProfileID" json:"daily_records,omitempty"`
}

// WeekdayName returns the display name of the weekday for the given day
// counter, offset from the profile's starting weekday.
func (p *Profile) WeekdayName(day int) string {
	idx := (p.GameInfo.StartingWeekday + day - p.GameInfo.StartingDay) % 7
	if idx < 0 {
		idx += 7
	}
	return weekdayNames[idx]
}
