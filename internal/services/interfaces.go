package services

import (
	"truckledger/internal/models"
	"truckledger/internal/pagination"
)

// CreateProfileInput carries the validated answers of the game
// initialization wizard.
type CreateProfileInput struct {
	Game             models.GameVariant
	PlayerName       string
	CompanyName      string
	Currency         string
	StartingLocation string
	StartingDay      int
	StartingWeekday  int
	StartingCash     float64
}

// ProfileServicer defines the contract for profile lifecycle operations.
type ProfileServicer interface {
	CreateProfile(in CreateProfileInput) (*models.Profile, error)
	GetProfile(profileID string) (*models.Profile, error)
	ListProfiles(page pagination.PageRequest) (*pagination.PageResponse[models.Profile], error)
	DeleteProfile(profileID string) error
}

// Upsert inputs. A nil Day means "stamp with the profile's current day on
// insert"; Day is never changed on update regardless of the value sent.

type GarageInput struct {
	ID       string
	Day      *int
	Location string
	Size     models.GarageSize
	Value    float64
}

type TruckInput struct {
	ID        string
	Day       *int
	Brand     string
	Model     string
	Value     float64
	Condition int
}

type TrailerInput struct {
	ID        string
	Day       *int
	BodyType  string
	Model     string
	Value     float64
	Condition int
}

type DriverInput struct {
	ID     string
	Day    *int
	Name   string
	City   string
	Salary float64
}

// LoanInput carries loan fields. A nil Remaining defaults to the full
// principal on insert and leaves the balance untouched on update.
type LoanInput struct {
	ID               string
	Day              *int
	Amount           float64
	Term             int
	InterestRate     float64
	DailyInstallment float64
	Remaining        *float64
}

// AssetServicer defines the contract for the asset ledger: upsert-by-id
// and remove across the five managed collections, plus loan clearing.
type AssetServicer interface {
	UpsertGarage(profileID string, in GarageInput) (*models.Garage, error)
	RemoveGarage(profileID, garageID string) error
	UpsertTruck(profileID string, in TruckInput) (*models.Truck, error)
	RemoveTruck(profileID, truckID string) error
	UpsertTrailer(profileID string, in TrailerInput) (*models.Trailer, error)
	RemoveTrailer(profileID, trailerID string) error
	UpsertDriver(profileID string, in DriverInput) (*models.Driver, error)
	RemoveDriver(profileID, driverID string) error
	UpsertLoan(profileID string, in LoanInput) (*models.Loan, error)
	RemoveLoan(profileID, loanID string) error
	ClearLoan(profileID, loanID string) (*models.Loan, error)
}

// Summary is the dashboard overview: the latest snapshot plus live data.
type Summary struct {
	CurrentDay   int                 `json:"current_day"`
	Weekday      string              `json:"weekday"`
	LatestRecord *models.DailyRecord `json:"latest_record,omitempty"`
	Fleet        models.FleetStats   `json:"fleet"`
}

// RecordServicer defines the contract for the daily snapshot engine.
type RecordServicer interface {
	AddRecord(profileID string, cashBalance float64) (*models.DailyRecord, error)
	GetRecords(profileID string, page pagination.PageRequest) (*pagination.PageResponse[models.DailyRecord], error)
	GetSummary(profileID string) (*Summary, error)
}
