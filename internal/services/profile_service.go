package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/logger"
	"truckledger/internal/models"
	"truckledger/internal/pagination"
)

// profileService handles profile lifecycle operations.
type profileService struct {
	db      *gorm.DB
	records RecordServicer
}

// NewProfileService creates a new ProfileServicer. The record service is
// used to bootstrap the day-0 snapshot for fresh profiles.
func NewProfileService(db *gorm.DB, records RecordServicer) ProfileServicer {
	return &profileService{db: db, records: records}
}

// CreateProfile creates the root aggregate from the wizard answers.
// A profile whose day counter starts at 0 is bootstrapped with one small
// garage at the starting location and a day-0 record from starting cash.
func (s *profileService) CreateProfile(in CreateProfileInput) (*models.Profile, error) {
	if in.Game != models.GameETS2 && in.Game != models.GameATS {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("Unknown game variant %q", in.Game))
	}
	if in.PlayerName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "player name is required")
	}
	if in.CompanyName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "company name is required")
	}
	info := models.GameInfo{
		Game:             in.Game,
		PlayerName:       in.PlayerName,
		CompanyName:      in.CompanyName,
		Currency:         in.Currency,
		StartingLocation: in.StartingLocation,
		StartingDay:      in.StartingDay,
		StartingWeekday:  in.StartingWeekday,
	}
	if !info.SupportsCurrency(in.Currency) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("Currency %q is not available in %s", in.Currency, in.Game))
	}
	if in.StartingDay < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "starting day cannot be negative")
	}
	if in.StartingWeekday < 0 || in.StartingWeekday > 6 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "starting weekday must be between 0 and 6")
	}
	if math.IsNaN(in.StartingCash) || math.IsInf(in.StartingCash, 0) || in.StartingCash < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "starting cash must be a non-negative number")
	}

	profile := &models.Profile{
		GameInfo:   info,
		CurrentDay: in.StartingDay,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if in.StartingDay == 0 {
			garage := &models.Garage{
				Location: in.StartingLocation,
				Size:     models.GarageSizeSmall,
				Value:    0,
			}
			garage.ProfileID = profile.ID
			garage.Day = 0
			if err := tx.Create(garage).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if in.StartingDay == 0 {
		if _, err := s.records.AddRecord(profile.ID, in.StartingCash); err != nil {
			// Roll the half-created profile back rather than leave it
			// without its bootstrap record.
			if delErr := s.deleteProfileRows(profile.ID); delErr != nil {
				logger.Get().Errorw("failed to clean up profile after bootstrap failure",
					"profile_id", profile.ID, "error", delErr)
			}
			return nil, err
		}
	}

	return s.GetProfile(profile.ID)
}

// GetProfile returns the full aggregate: game info, asset collections,
// and the record history in ascending day order.
func (s *profileService) GetProfile(profileID string) (*models.Profile, error) {
	if profileID == "" {
		return nil, apperrors.ErrNotInitialized
	}
	var profile models.Profile
	err := s.db.
		Preload("Garages").
		Preload("Trucks").
		Preload("Trailers").
		Preload("Drivers").
		Preload("Loans").
		Preload("DailyRecords", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC") }).
		Where("id = ?", profileID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// ListProfiles returns the profile index without nested collections.
func (s *profileService) ListProfiles(page pagination.PageRequest) (*pagination.PageResponse[models.Profile], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Profile{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var profiles []models.Profile
	if err := s.db.Order("created_at ASC").Scopes(pagination.Paginate(page)).Find(&profiles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(profiles, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteProfile destroys the persisted profile and everything it owns.
func (s *profileService) DeleteProfile(profileID string) error {
	unlock := lockProfile(profileID)
	defer unlock()

	if _, err := loadProfile(s.db, profileID); err != nil {
		return err
	}
	return s.deleteProfileRows(profileID)
}

func (s *profileService) deleteProfileRows(profileID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Garage{}, &models.Truck{}, &models.Trailer{},
			&models.Driver{}, &models.Loan{}, &models.DailyRecord{},
		} {
			if err := tx.Where("profile_id = ?", profileID).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Where("id = ?", profileID).Delete(&models.Profile{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
