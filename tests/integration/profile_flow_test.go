package integration

import (
	"net/http"
	"testing"
)

func TestProfileFlow_CreateBootstrapAndReload(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create a fresh day-0 profile with 5000 starting cash
	profileID := app.createProfile(t, 5000)

	// Step 2: Reload the full aggregate
	rec := app.request("GET", "/api/v1/profiles/"+profileID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 getting profile, got %d: %s", rec.Code, rec.Body.String())
	}
	profile := parseJSON(t, rec)["profile"].(map[string]interface{})

	// Bootstrap seeded one small garage at the starting location
	garages := profile["garages"].([]interface{})
	if len(garages) != 1 {
		t.Fatalf("expected 1 starter garage, got %d", len(garages))
	}
	garage := garages[0].(map[string]interface{})
	if garage["size"] != "small" || garage["value"].(float64) != 0 || garage["location"] != "Rotterdam" {
		t.Errorf("unexpected starter garage: %v", garage)
	}

	// Bootstrap appended the day-0 record and advanced the day counter
	records := profile["daily_records"].([]interface{})
	if len(records) != 1 {
		t.Fatalf("expected 1 bootstrap record, got %d", len(records))
	}
	record := records[0].(map[string]interface{})
	if record["day"].(float64) != 0 || record["total_cap"].(float64) != 5000 {
		t.Errorf("unexpected bootstrap record: %v", record)
	}
	report := record["report"].(map[string]interface{})
	if report["cash_ratio"].(float64) != 1 {
		t.Errorf("expected cash ratio 1, got %v", report["cash_ratio"])
	}
	if profile["current_day"].(float64) != 1 {
		t.Errorf("expected current day 1, got %v", profile["current_day"])
	}
}

func TestProfileFlow_ValidationAndDeletion(t *testing.T) {
	app := setupApp(t)

	// ATS profiles cannot use European currencies
	rec := app.request("POST", "/api/v1/profiles",
		`{"game":"ats","player_name":"Janek","company_name":"Janek Trucking","currency":"SEK","starting_cash":1000}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for ats with SEK, got %d: %s", rec.Code, rec.Body.String())
	}

	// Create then delete
	profileID := app.createProfile(t, 2000)

	rec = app.request("DELETE", "/api/v1/profiles/"+profileID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting profile, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/profiles/"+profileID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after deletion, got %d", rec.Code)
	}

	// List no longer contains it
	rec = app.request("GET", "/api/v1/profiles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing profiles, got %d", rec.Code)
	}
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Errorf("expected empty profile index after deletion")
	}
}
