package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/models"
)

// assetService implements the asset ledger on top of GORM. Entities are
// keyed solely by id: upsert inserts when the id is absent or unknown and
// replaces the matching row otherwise; remove is an idempotent no-op for
// missing ids.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// ledgerRow is satisfied by pointers to any ledger-managed entity.
type ledgerRow interface{ Meta() *models.Asset }

// loadProfile fetches the profile row or translates the miss into the
// appropriate sentinel.
func loadProfile(db *gorm.DB, profileID string) (*models.Profile, error) {
	if profileID == "" {
		return nil, apperrors.ErrNotInitialized
	}
	var profile models.Profile
	if err := db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// findByID returns the entity with the given id within the profile's
// collection, or notFound when no row matches.
func findByID[T any, PT interface {
	*T
	ledgerRow
}](db *gorm.DB, profileID, id string, notFound *apperrors.AppError) (PT, error) {
	var entity T
	if err := db.Where("profile_id = ? AND id = ?", profileID, id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return PT(&entity), nil
}

// removeByID deletes the entity with the given id. Absent ids are not an
// error; the delete simply affects zero rows.
func removeByID[T any](db *gorm.DB, profileID, id string) error {
	var entity T
	if err := db.Where("profile_id = ? AND id = ?", profileID, id).Delete(&entity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// stampNew assigns ownership and the creation day for a first insert.
// The day defaults to the ledger's current day when the caller sent none.
func stampNew(meta *models.Asset, profileID string, day *int, currentDay int) {
	meta.ProfileID = profileID
	if day != nil {
		meta.Day = *day
	} else {
		meta.Day = currentDay
	}
}

func (s *assetService) UpsertGarage(profileID string, in GarageInput) (*models.Garage, error) {
	if !in.Size.Valid() {
		return nil, apperrors.ErrUnknownGarageSize
	}
	unlock := lockProfile(profileID)
	defer unlock()

	profile, err := loadProfile(s.db, profileID)
	if err != nil {
		return nil, err
	}

	if in.ID != "" {
		existing, err := findByID[models.Garage](s.db, profileID, in.ID, apperrors.ErrGarageNotFound)
		if err == nil {
			existing.Location = in.Location
			existing.Size = in.Size
			existing.Value = in.Value
			if err := s.db.Save(existing).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrGarageNotFound) {
			return nil, err
		}
		// Unknown id: append under the caller's id.
	}

	garage := &models.Garage{Location: in.Location, Size: in.Size, Value: in.Value}
	garage.ID = in.ID
	stampNew(&garage.Asset, profileID, in.Day, profile.CurrentDay)
	if err := s.db.Create(garage).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return garage, nil
}

func (s *assetService) RemoveGarage(profileID, garageID string) error {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return err
	}
	return removeByID[models.Garage](s.db, profileID, garageID)
}

func (s *assetService) UpsertTruck(profileID string, in TruckInput) (*models.Truck, error) {
	unlock := lockProfile(profileID)
	defer unlock()

	profile, err := loadProfile(s.db, profileID)
	if err != nil {
		return nil, err
	}

	if in.ID != "" {
		existing, err := findByID[models.Truck](s.db, profileID, in.ID, apperrors.ErrTruckNotFound)
		if err == nil {
			existing.Brand = in.Brand
			existing.Model = in.Model
			existing.Value = in.Value
			existing.Condition = in.Condition
			if err := s.db.Save(existing).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrTruckNotFound) {
			return nil, err
		}
	}

	truck := &models.Truck{Brand: in.Brand, Model: in.Model, Value: in.Value, Condition: in.Condition}
	truck.ID = in.ID
	stampNew(&truck.Asset, profileID, in.Day, profile.CurrentDay)
	if err := s.db.Create(truck).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return truck, nil
}

func (s *assetService) RemoveTruck(profileID, truckID string) error {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return err
	}
	return removeByID[models.Truck](s.db, profileID, truckID)
}

func (s *assetService) UpsertTrailer(profileID string, in TrailerInput) (*models.Trailer, error) {
	unlock := lockProfile(profileID)
	defer unlock()

	profile, err := loadProfile(s.db, profileID)
	if err != nil {
		return nil, err
	}

	if in.ID != "" {
		existing, err := findByID[models.Trailer](s.db, profileID, in.ID, apperrors.ErrTrailerNotFound)
		if err == nil {
			existing.BodyType = in.BodyType
			existing.Model = in.Model
			existing.Value = in.Value
			existing.Condition = in.Condition
			if err := s.db.Save(existing).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrTrailerNotFound) {
			return nil, err
		}
	}

	trailer := &models.Trailer{BodyType: in.BodyType, Model: in.Model, Value: in.Value, Condition: in.Condition}
	trailer.ID = in.ID
	stampNew(&trailer.Asset, profileID, in.Day, profile.CurrentDay)
	if err := s.db.Create(trailer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return trailer, nil
}

func (s *assetService) RemoveTrailer(profileID, trailerID string) error {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return err
	}
	return removeByID[models.Trailer](s.db, profileID, trailerID)
}

func (s *assetService) UpsertDriver(profileID string, in DriverInput) (*models.Driver, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "driver name is required")
	}
	unlock := lockProfile(profileID)
	defer unlock()

	profile, err := loadProfile(s.db, profileID)
	if err != nil {
		return nil, err
	}

	if in.ID != "" {
		existing, err := findByID[models.Driver](s.db, profileID, in.ID, apperrors.ErrDriverNotFound)
		if err == nil {
			existing.Name = in.Name
			existing.City = in.City
			existing.Salary = in.Salary
			if err := s.db.Save(existing).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrDriverNotFound) {
			return nil, err
		}
	}

	driver := &models.Driver{Name: in.Name, City: in.City, Salary: in.Salary}
	driver.ID = in.ID
	stampNew(&driver.Asset, profileID, in.Day, profile.CurrentDay)
	if err := s.db.Create(driver).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return driver, nil
}

func (s *assetService) RemoveDriver(profileID, driverID string) error {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return err
	}
	return removeByID[models.Driver](s.db, profileID, driverID)
}

func (s *assetService) UpsertLoan(profileID string, in LoanInput) (*models.Loan, error) {
	if in.Amount < 0 || in.DailyInstallment < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "loan amounts cannot be negative")
	}
	if in.Remaining != nil && *in.Remaining < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "remaining balance cannot be negative")
	}
	unlock := lockProfile(profileID)
	defer unlock()

	profile, err := loadProfile(s.db, profileID)
	if err != nil {
		return nil, err
	}

	if in.ID != "" {
		existing, err := findByID[models.Loan](s.db, profileID, in.ID, apperrors.ErrLoanNotFound)
		if err == nil {
			existing.Amount = in.Amount
			existing.Term = in.Term
			existing.InterestRate = in.InterestRate
			existing.DailyInstallment = in.DailyInstallment
			if in.Remaining != nil {
				existing.Remaining = *in.Remaining
			}
			if err := s.db.Save(existing).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrLoanNotFound) {
			return nil, err
		}
	}

	loan := &models.Loan{
		Amount:           in.Amount,
		Term:             in.Term,
		InterestRate:     in.InterestRate,
		DailyInstallment: in.DailyInstallment,
		Remaining:        in.Amount,
	}
	if in.Remaining != nil {
		loan.Remaining = *in.Remaining
	}
	loan.ID = in.ID
	stampNew(&loan.Asset, profileID, in.Day, profile.CurrentDay)
	if err := s.db.Create(loan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loan, nil
}

func (s *assetService) RemoveLoan(profileID, loanID string) error {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return err
	}
	return removeByID[models.Loan](s.db, profileID, loanID)
}

// ClearLoan zeroes the remaining balance immediately, regardless of the
// amortization schedule. The loan stays in the ledger for history.
func (s *assetService) ClearLoan(profileID, loanID string) (*models.Loan, error) {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return nil, err
	}

	loan, err := findByID[models.Loan](s.db, profileID, loanID, apperrors.ErrLoanNotFound)
	if err != nil {
		return nil, err
	}

	if loan.Remaining != 0 {
		if err := s.db.Model(loan).Update("remaining", float64(0)).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		loan.Remaining = 0
	}
	return loan, nil
}
