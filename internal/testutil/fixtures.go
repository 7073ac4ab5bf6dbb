package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"truckledger/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestProfile creates an ETS2 profile starting at the given day.
func CreateTestProfile(t *testing.T, db *gorm.DB, currentDay int) *models.Profile {
	t.Helper()

	n := nextID()
	profile := &models.Profile{
		GameInfo: models.GameInfo{
			Game:             models.GameETS2,
			PlayerName:       fmt.Sprintf("Player %d", n),
			CompanyName:      fmt.Sprintf("Haulage %d", n),
			Currency:         "EUR",
			StartingLocation: "Rotterdam",
			StartingDay:      currentDay,
		},
		CurrentDay: currentDay,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestGarage creates a garage with the given size and value.
func CreateTestGarage(t *testing.T, db *gorm.DB, profileID string, size models.GarageSize, value float64) *models.Garage {
	t.Helper()

	garage := &models.Garage{
		Location: fmt.Sprintf("City %d", nextID()),
		Size:     size,
		Value:    value,
	}
	garage.ProfileID = profileID
	if err := db.Create(garage).Error; err != nil {
		t.Fatalf("failed to create test garage: %v", err)
	}
	return garage
}

// CreateTestTruck creates a truck with the given value.
func CreateTestTruck(t *testing.T, db *gorm.DB, profileID string, value float64) *models.Truck {
	t.Helper()

	truck := &models.Truck{
		Brand:     "Scania",
		Model:     fmt.Sprintf("R %d", nextID()),
		Value:     value,
		Condition: 100,
	}
	truck.ProfileID = profileID
	if err := db.Create(truck).Error; err != nil {
		t.Fatalf("failed to create test truck: %v", err)
	}
	return truck
}

// CreateTestTrailer creates a trailer with the given value.
func CreateTestTrailer(t *testing.T, db *gorm.DB, profileID string, value float64) *models.Trailer {
	t.Helper()

	trailer := &models.Trailer{
		BodyType:  "curtainsider",
		Model:     fmt.Sprintf("Trailer %d", nextID()),
		Value:     value,
		Condition: 100,
	}
	trailer.ProfileID = profileID
	if err := db.Create(trailer).Error; err != nil {
		t.Fatalf("failed to create test trailer: %v", err)
	}
	return trailer
}

// CreateTestDriver creates a driver.
func CreateTestDriver(t *testing.T, db *gorm.DB, profileID string) *models.Driver {
	t.Helper()

	driver := &models.Driver{
		Name:   fmt.Sprintf("Driver %d", nextID()),
		City:   "Rotterdam",
		Salary: 2000,
	}
	driver.ProfileID = profileID
	if err := db.Create(driver).Error; err != nil {
		t.Fatalf("failed to create test driver: %v", err)
	}
	return driver
}

// CreateTestLoan creates a loan originated on the given day.
func CreateTestLoan(t *testing.T, db *gorm.DB, profileID string, day int, installment, remaining float64) *models.Loan {
	t.Helper()

	loan := &models.Loan{
		Amount:           remaining,
		Term:             90,
		InterestRate:     12.5,
		DailyInstallment: installment,
		Remaining:        remaining,
	}
	loan.ProfileID = profileID
	loan.Day = day
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}
	return loan
}
