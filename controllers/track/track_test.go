package track

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"cargo-logistics/database"
	cargoService "cargo-logistics/services/cargo"
	cargoTypes "cargo-logistics/types/cargo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *cargoService.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	service := cargoService.NewService(db)
	controller := NewTrackController(service)

	app := fiber.New()
	app.Get("/api/cargo/track/:trackingNumber", controller.Track)
	return app, service
}

func TestTrack_ReturnsCompositeView(t *testing.T) {
	app, service := newTestApp(t)

	created, err := service.Create(cargoTypes.CargoCreateRequest{
		CustomerName:     "Acme Ltd",
		CustomerPhone:    "+971500000000",
		SalesRepName:     "Jane",
		CargoDescription: "<p>10 boxes</p>",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := service.AddFlightSegment(created.ID, cargoTypes.FlightSegmentRequest{
		FlightNumber:     "EK101",
		DepartureAirport: "DXB",
		ArrivalAirport:   "LHR",
		DepartureTime:    "2025-01-01T10:00",
		ArrivalTime:      "2025-01-01T14:00",
	}); err != nil {
		t.Fatalf("add segment failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/cargo/track/"+created.TrackingNumber, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status int `json:"status"`
		Data   struct {
			Cargo struct {
				TrackingNumber string `json:"tracking_number"`
				Status         string `json:"status"`
			} `json:"cargo"`
			FlightSegments []json.RawMessage `json:"flight_segments"`
			StatusHistory  []json.RawMessage `json:"status_history"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Data.Cargo.TrackingNumber != created.TrackingNumber {
		t.Fatalf("expected tracking number %q, got %q", created.TrackingNumber, body.Data.Cargo.TrackingNumber)
	}
	if body.Data.Cargo.Status != "received" {
		t.Fatalf("expected status received, got %q", body.Data.Cargo.Status)
	}
	if len(body.Data.FlightSegments) != 1 {
		t.Fatalf("expected 1 flight segment, got %d", len(body.Data.FlightSegments))
	}
	if len(body.Data.StatusHistory) != 0 {
		t.Fatalf("expected empty status history, got %d", len(body.Data.StatusHistory))
	}
}

func TestTrack_UnknownNumberGetsFriendlyNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/cargo/track/99999999999999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Message != "Cargo not found. Please check your tracking number and try again." {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
