package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/models"
	"truckledger/internal/pagination"
	"truckledger/internal/services"
)

// --- mock record service ---

type mockRecordService struct {
	addRecordFn  func(profileID string, cashBalance float64) (*models.DailyRecord, error)
	getRecordsFn func(profileID string, page pagination.PageRequest) (*pagination.PageResponse[models.DailyRecord], error)
	getSummaryFn func(profileID string) (*services.Summary, error)
}

func (m *mockRecordService) AddRecord(profileID string, cashBalance float64) (*models.DailyRecord, error) {
	if m.addRecordFn != nil {
		return m.addRecordFn(profileID, cashBalance)
	}
	return &models.DailyRecord{}, nil
}

func (m *mockRecordService) GetRecords(profileID string, page pagination.PageRequest) (*pagination.PageResponse[models.DailyRecord], error) {
	if m.getRecordsFn != nil {
		return m.getRecordsFn(profileID, page)
	}
	resp := pagination.NewPageResponse([]models.DailyRecord{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockRecordService) GetSummary(profileID string) (*services.Summary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(profileID)
	}
	return &services.Summary{}, nil
}

// verify interface compliance
var _ services.RecordServicer = (*mockRecordService)(nil)

func setupRecordRouter(handler *RecordHandler) *gin.Engine {
	r := gin.New()
	r.POST("/profiles/:id/records", handler.AddRecord)
	r.GET("/profiles/:id/records", handler.GetRecords)
	r.GET("/profiles/:id/summary", handler.GetSummary)
	return r
}

func TestRecordHandler_AddRecord(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockRecordService{
			addRecordFn: func(profileID string, cashBalance float64) (*models.DailyRecord, error) {
				return &models.DailyRecord{
					ProfileID: profileID,
					Day:       4,
					TotalCap:  cashBalance,
					Assets:    models.AssetSnapshot{CashBalance: cashBalance},
				}, nil
			},
		}
		r := setupRecordRouter(NewRecordHandler(svc))

		rec := doRequest(r, "POST", "/profiles/"+testProfileID+"/records", `{"cash_balance":4500}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		record := result["record"].(map[string]interface{})
		if record["day"] != float64(4) {
			t.Errorf("expected day 4, got %v", record["day"])
		}
	})

	t.Run("accepts an explicit zero balance", func(t *testing.T) {
		var got float64 = -1
		svc := &mockRecordService{
			addRecordFn: func(_ string, cashBalance float64) (*models.DailyRecord, error) {
				got = cashBalance
				return &models.DailyRecord{}, nil
			},
		}
		r := setupRecordRouter(NewRecordHandler(svc))

		rec := doRequest(r, "POST", "/profiles/"+testProfileID+"/records", `{"cash_balance":0}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got != 0 {
			t.Errorf("expected balance 0 passed through, got %v", got)
		}
	})

	t.Run("returns 400 when cash_balance is missing", func(t *testing.T) {
		r := setupRecordRouter(NewRecordHandler(&mockRecordService{}))

		rec := doRequest(r, "POST", "/profiles/"+testProfileID+"/records", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when profile does not exist", func(t *testing.T) {
		svc := &mockRecordService{
			addRecordFn: func(string, float64) (*models.DailyRecord, error) {
				return nil, apperrors.ErrProfileNotFound
			},
		}
		r := setupRecordRouter(NewRecordHandler(svc))

		rec := doRequest(r, "POST", "/profiles/"+testProfileID+"/records", `{"cash_balance":100}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestRecordHandler_GetRecords(t *testing.T) {
	t.Run("returns 200 with a page", func(t *testing.T) {
		svc := &mockRecordService{
			getRecordsFn: func(profileID string, page pagination.PageRequest) (*pagination.PageResponse[models.DailyRecord], error) {
				resp := pagination.NewPageResponse([]models.DailyRecord{
					{ProfileID: profileID, Day: 0},
					{ProfileID: profileID, Day: 1},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		r := setupRecordRouter(NewRecordHandler(svc))

		rec := doRequest(r, "GET", "/profiles/"+testProfileID+"/records", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 records, got %d", len(data))
		}
	})

	t.Run("returns 400 on malformed profile id", func(t *testing.T) {
		r := setupRecordRouter(NewRecordHandler(&mockRecordService{}))

		rec := doRequest(r, "GET", "/profiles/not-a-uuid/records", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecordHandler_GetSummary(t *testing.T) {
	t.Run("returns 200 with the overview", func(t *testing.T) {
		svc := &mockRecordService{
			getSummaryFn: func(string) (*services.Summary, error) {
				return &services.Summary{
					CurrentDay: 8,
					Weekday:    "Tuesday",
					Fleet:      models.FleetStats{Garages: 2, ParkingLots: 4, Trucks: 3},
				}, nil
			},
		}
		r := setupRecordRouter(NewRecordHandler(svc))

		rec := doRequest(r, "GET", "/profiles/"+testProfileID+"/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["current_day"] != float64(8) || summary["weekday"] != "Tuesday" {
			t.Errorf("unexpected summary: %v", summary)
		}
	})

	t.Run("returns 404 when profile does not exist", func(t *testing.T) {
		svc := &mockRecordService{
			getSummaryFn: func(string) (*services.Summary, error) {
				return nil, apperrors.ErrProfileNotFound
			},
		}
		r := setupRecordRouter(NewRecordHandler(svc))

		rec := doRequest(r, "GET", "/profiles/"+testProfileID+"/summary", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
