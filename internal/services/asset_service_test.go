package services

import (
	"testing"

	"truckledger/internal/models"
	"truckledger/internal/testutil"
	"truckledger/internal/uuid"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestUpsertGarage(t *testing.T) {
	t.Run("insert_stamps_current_day_and_generates_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 3)

		garage, err := svc.UpsertGarage(profile.ID, GarageInput{
			Location: "Berlin",
			Size:     models.GarageSizeMedium,
			Value:    180000,
		})
		testutil.AssertNoError(t, err)

		if !uuid.IsValid(garage.ID) {
			t.Errorf("expected a generated uuid, got %q", garage.ID)
		}
		if garage.Day != 3 {
			t.Errorf("expected day stamped to 3, got %d", garage.Day)
		}
	})

	t.Run("insert_honors_explicit_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 9)

		garage, err := svc.UpsertGarage(profile.ID, GarageInput{
			Day:      intPtr(2),
			Location: "Berlin",
			Size:     models.GarageSizeSmall,
		})
		testutil.AssertNoError(t, err)

		if garage.Day != 2 {
			t.Errorf("expected day 2, got %d", garage.Day)
		}
	})

	t.Run("update_replaces_fields_but_keeps_day_and_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		original := testutil.CreateTestGarage(t, db, profile.ID, models.GarageSizeSmall, 100000)

		db.Model(&models.Profile{}).Where("id = ?", profile.ID).Update("current_day", 12)

		updated, err := svc.UpsertGarage(profile.ID, GarageInput{
			ID:       original.ID,
			Day:      intPtr(99),
			Location: "Duisburg",
			Size:     models.GarageSizeLarge,
			Value:    400000,
		})
		testutil.AssertNoError(t, err)

		if updated.ID != original.ID {
			t.Errorf("expected id %s preserved, got %s", original.ID, updated.ID)
		}
		if updated.Day != original.Day {
			t.Errorf("expected day %d preserved on update, got %d", original.Day, updated.Day)
		}
		if updated.Size != models.GarageSizeLarge || updated.Value != 400000 {
			t.Errorf("expected fields replaced, got %+v", updated)
		}

		var count int64
		db.Model(&models.Garage{}).Where("profile_id = ?", profile.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 garage, got %d", count)
		}
	})

	t.Run("unknown_id_appends_under_that_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		id := uuid.New()

		garage, err := svc.UpsertGarage(profile.ID, GarageInput{
			ID:       id,
			Location: "Calais",
			Size:     models.GarageSizeSmall,
		})
		testutil.AssertNoError(t, err)

		if garage.ID != id {
			t.Errorf("expected caller's id %s kept, got %s", id, garage.ID)
		}
	})

	t.Run("unknown_size_class_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)

		_, err := svc.UpsertGarage(profile.ID, GarageInput{Location: "Berlin", Size: "colossal"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_profile_fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		_, err := svc.UpsertGarage("", GarageInput{Size: models.GarageSizeSmall})
		testutil.AssertAppError(t, err, "NOT_INITIALIZED")

		_, err = svc.UpsertGarage(uuid.New(), GarageInput{Size: models.GarageSizeSmall})
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})
}

func TestRemoveGarage(t *testing.T) {
	t.Run("remove_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		garage := testutil.CreateTestGarage(t, db, profile.ID, models.GarageSizeSmall, 100000)

		testutil.AssertNoError(t, svc.RemoveGarage(profile.ID, garage.ID))
		testutil.AssertNoError(t, svc.RemoveGarage(profile.ID, garage.ID))

		var count int64
		db.Model(&models.Garage{}).Where("profile_id = ?", profile.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected 0 garages, got %d", count)
		}
	})
}

func TestUpsertTruck(t *testing.T) {
	t.Run("round_trips_fleet_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 2)

		truck, err := svc.UpsertTruck(profile.ID, TruckInput{
			Brand:     "Scania",
			Model:     "S 730",
			Value:     145000,
			Condition: 97,
		})
		testutil.AssertNoError(t, err)

		var reloaded models.Truck
		db.First(&reloaded, "id = ?", truck.ID)
		if reloaded.Brand != "Scania" || reloaded.Value != 145000 || reloaded.Condition != 97 {
			t.Errorf("unexpected persisted truck: %+v", reloaded)
		}
		if reloaded.Day != 2 {
			t.Errorf("expected day 2, got %d", reloaded.Day)
		}
	})
}

func TestUpsertDriver(t *testing.T) {
	t.Run("requires_a_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)

		_, err := svc.UpsertDriver(profile.ID, DriverInput{City: "Kirkenes"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("updates_existing_driver", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		driver := testutil.CreateTestDriver(t, db, profile.ID)

		updated, err := svc.UpsertDriver(profile.ID, DriverInput{
			ID:     driver.ID,
			Name:   driver.Name,
			City:   "Oslo",
			Salary: 3200,
		})
		testutil.AssertNoError(t, err)

		if updated.City != "Oslo" || updated.Salary != 3200 {
			t.Errorf("expected fields replaced, got %+v", updated)
		}
	})
}

func TestUpsertLoan(t *testing.T) {
	t.Run("remaining_defaults_to_principal_on_insert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)

		loan, err := svc.UpsertLoan(profile.ID, LoanInput{
			Amount:           100000,
			Term:             180,
			InterestRate:     9.5,
			DailyInstallment: 610,
		})
		testutil.AssertNoError(t, err)

		if loan.Remaining != 100000 {
			t.Errorf("expected remaining 100000, got %v", loan.Remaining)
		}
	})

	t.Run("update_without_remaining_keeps_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		loan := testutil.CreateTestLoan(t, db, profile.ID, 0, 500, 42000)

		updated, err := svc.UpsertLoan(profile.ID, LoanInput{
			ID:               loan.ID,
			Amount:           loan.Amount,
			Term:             loan.Term,
			InterestRate:     12,
			DailyInstallment: 550,
		})
		testutil.AssertNoError(t, err)

		if updated.Remaining != 42000 {
			t.Errorf("expected remaining 42000 untouched, got %v", updated.Remaining)
		}
		if updated.DailyInstallment != 550 || updated.InterestRate != 12 {
			t.Errorf("expected schedule fields replaced, got %+v", updated)
		}
	})

	t.Run("explicit_remaining_overrides_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		loan := testutil.CreateTestLoan(t, db, profile.ID, 0, 500, 42000)

		updated, err := svc.UpsertLoan(profile.ID, LoanInput{
			ID:               loan.ID,
			Amount:           loan.Amount,
			Term:             loan.Term,
			InterestRate:     loan.InterestRate,
			DailyInstallment: loan.DailyInstallment,
			Remaining:        floatPtr(30000),
		})
		testutil.AssertNoError(t, err)

		if updated.Remaining != 30000 {
			t.Errorf("expected remaining 30000, got %v", updated.Remaining)
		}
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)

		_, err := svc.UpsertLoan(profile.ID, LoanInput{Amount: -1})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.UpsertLoan(profile.ID, LoanInput{Amount: 100, Remaining: floatPtr(-5)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestClearLoan(t *testing.T) {
	t.Run("zeroes_the_balance_immediately", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		loan := testutil.CreateTestLoan(t, db, profile.ID, 0, 500, 42000)

		cleared, err := svc.ClearLoan(profile.ID, loan.ID)
		testutil.AssertNoError(t, err)

		if cleared.Remaining != 0 {
			t.Errorf("expected remaining 0, got %v", cleared.Remaining)
		}
		var reloaded models.Loan
		db.First(&reloaded, "id = ?", loan.ID)
		if reloaded.Remaining != 0 {
			t.Errorf("expected persisted remaining 0, got %v", reloaded.Remaining)
		}
	})

	t.Run("loan_stays_in_the_ledger_after_clearing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)
		loan := testutil.CreateTestLoan(t, db, profile.ID, 0, 500, 42000)

		_, err := svc.ClearLoan(profile.ID, loan.ID)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Loan{}).Where("profile_id = ?", profile.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected loan retained, got %d rows", count)
		}
	})

	t.Run("missing_loan_fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		profile := testutil.CreateTestProfile(t, db, 0)

		_, err := svc.ClearLoan(profile.ID, uuid.New())
		testutil.AssertAppError(t, err, "LOAN_NOT_FOUND")
	})
}
