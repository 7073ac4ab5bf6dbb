package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/finance"
	"truckledger/internal/models"
	"truckledger/internal/pagination"
)

// recordService implements the daily snapshot engine. AddRecord is the
// only operation that advances the day counter or appends to history.
type recordService struct {
	db *gorm.DB
}

// NewRecordService creates a new RecordServicer.
func NewRecordService(db *gorm.DB) RecordServicer {
	return &recordService{db: db}
}

// AddRecord runs one tick: amortize loans at the current day, aggregate
// the ledger, derive the capitalization figures and rolling profit
// statistics, append the record stamped with the pre-increment day, then
// advance the day counter. The whole tick commits in one transaction;
// a failed persist leaves no visible state change.
func (s *recordService) AddRecord(profileID string, cashBalance float64) (*models.DailyRecord, error) {
	if profileID == "" {
		return nil, apperrors.ErrNotInitialized
	}
	if math.IsNaN(cashBalance) || math.IsInf(cashBalance, 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cash balance must be a finite number")
	}

	unlock := lockProfile(profileID)
	defer unlock()

	var record *models.DailyRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := loadProfile(tx, profileID)
		if err != nil {
			return err
		}

		var (
			garages  []models.Garage
			trucks   []models.Truck
			trailers []models.Trailer
			drivers  []models.Driver
			loans    []models.Loan
		)
		for _, dest := range []interface{}{&garages, &trucks, &trailers, &drivers, &loans} {
			if err := tx.Where("profile_id = ?", profileID).Find(dest).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		for _, loan := range finance.AdvanceLoans(loans, profile.CurrentDay) {
			if err := tx.Model(loan).Update("remaining", loan.Remaining).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		valuation, err := finance.Aggregate(garages, trucks, trailers, drivers, loans)
		if err != nil {
			return err
		}

		totalCap := cashBalance + valuation.GarageValue + valuation.TruckValue + valuation.TrailerValue
		netAssets := totalCap - valuation.TotalDebt

		var series []float64
		if err := tx.Model(&models.DailyRecord{}).
			Where("profile_id = ?", profileID).
			Order("day ASC").
			Pluck("net_assets", &series).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		series = append(series, netAssets)
		today, avg7, avg30, avg90 := finance.ProfitWindows(series)

		record = &models.DailyRecord{
			ProfileID: profileID,
			Day:       profile.CurrentDay,
			TotalCap:  totalCap,
			Assets: models.AssetSnapshot{
				CashBalance:  cashBalance,
				GarageValue:  valuation.GarageValue,
				TruckValue:   valuation.TruckValue,
				TrailerValue: valuation.TrailerValue,
			},
			Profit: models.ProfitStats{Today: today, Avg7: avg7, Avg30: avg30, Avg90: avg90},
			Report: models.FinancialReport{
				NetAssets:  netAssets,
				TotalDebt:  valuation.TotalDebt,
				CashOnHand: cashBalance,
				CashRatio:  finance.CashRatio(cashBalance, totalCap),
			},
			Stats: valuation.Fleet,
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(profile).Update("current_day", profile.CurrentDay+1).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecords returns the profile's daily records in ascending day order.
func (s *recordService) GetRecords(profileID string, page pagination.PageRequest) (*pagination.PageResponse[models.DailyRecord], error) {
	if _, err := loadProfile(s.db, profileID); err != nil {
		return nil, err
	}
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.DailyRecord{}).Where("profile_id = ?", profileID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.DailyRecord
	if err := base.Order("day ASC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSummary builds the dashboard overview from the latest record and
// the live ledger counts.
func (s *recordService) GetSummary(profileID string) (*Summary, error) {
	profile, err := loadProfile(s.db, profileID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		CurrentDay: profile.CurrentDay,
		Weekday:    profile.WeekdayName(profile.CurrentDay),
	}

	var latest models.DailyRecord
	err = s.db.Where("profile_id = ?", profileID).Order("day DESC").First(&latest).Error
	switch {
	case err == nil:
		summary.LatestRecord = &latest
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var (
		garages  []models.Garage
		trucks   []models.Truck
		trailers []models.Trailer
		drivers  []models.Driver
		loans    []models.Loan
	)
	for _, dest := range []interface{}{&garages, &trucks, &trailers, &drivers, &loans} {
		if err := s.db.Where("profile_id = ?", profileID).Find(dest).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	valuation, err := finance.Aggregate(garages, trucks, trailers, drivers, loans)
	if err != nil {
		return nil, err
	}
	summary.Fleet = valuation.Fleet

	return summary, nil
}
