package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"truckledger/internal/handlers"
	"truckledger/internal/logger"
	"truckledger/internal/middleware"
	"truckledger/internal/models"
	"truckledger/internal/services"
	"truckledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Profile{},
		&models.Garage{},
		&models.Truck{},
		&models.Trailer{},
		&models.Driver{},
		&models.Loan{},
		&models.DailyRecord{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	recordService := services.NewRecordService(db)
	profileService := services.NewProfileService(db, recordService)
	assetService := services.NewAssetService(db)

	// Handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	assetHandler := handlers.NewAssetHandler(assetService)
	recordHandler := handlers.NewRecordHandler(recordService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	profiles := v1.Group("/profiles")
	profiles.POST("", profileHandler.CreateProfile)
	profiles.GET("", profileHandler.ListProfiles)
	profiles.GET("/:id", profileHandler.GetProfile)
	profiles.DELETE("/:id", profileHandler.DeleteProfile)
	profiles.GET("/:id/summary", recordHandler.GetSummary)

	profiles.POST("/:id/records", recordHandler.AddRecord)
	profiles.GET("/:id/records", recordHandler.GetRecords)

	profiles.PUT("/:id/garages", assetHandler.UpsertGarage)
	profiles.DELETE("/:id/garages/:assetID", assetHandler.RemoveGarage)
	profiles.PUT("/:id/trucks", assetHandler.UpsertTruck)
	profiles.DELETE("/:id/trucks/:assetID", assetHandler.RemoveTruck)
	profiles.PUT("/:id/trailers", assetHandler.UpsertTrailer)
	profiles.DELETE("/:id/trailers/:assetID", assetHandler.RemoveTrailer)
	profiles.PUT("/:id/drivers", assetHandler.UpsertDriver)
	profiles.DELETE("/:id/drivers/:assetID", assetHandler.RemoveDriver)
	profiles.PUT("/:id/loans", assetHandler.UpsertLoan)
	profiles.DELETE("/:id/loans/:assetID", assetHandler.RemoveLoan)
	profiles.POST("/:id/loans/:assetID/clear", assetHandler.ClearLoan)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createProfile creates a fresh day-0 ETS2 profile and returns its ID.
func (app *testApp) createProfile(t *testing.T, startingCash float64) string {
	t.Helper()
	body := fmt.Sprintf(
		`{"game":"ets2","player_name":"Janek","company_name":"Janek Spedition","currency":"EUR","starting_location":"Rotterdam","starting_cash":%v}`,
		startingCash)
	rec := app.request("POST", "/api/v1/profiles", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create profile failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	profile := result["profile"].(map[string]interface{})
	return profile["id"].(string)
}
