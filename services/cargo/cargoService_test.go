package cargo

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"cargo-logistics/database"
	cargoModel "cargo-logistics/models/cargo"
	cargoTypes "cargo-logistics/types/cargo"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
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
	// A fresh connection would see an empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewService(db)
}

func createTestCargo(t *testing.T, s *Service) *cargoModel.Cargo {
	t.Helper()

	created, err := s.Create(cargoTypes.CargoCreateRequest{
		CustomerName:     "Acme Ltd",
		CustomerPhone:    "+971500000000",
		SalesRepName:     "Jane",
		CargoDescription: "<p>10 boxes</p>",
	})
	if err != nil {
		t.Fatalf("failed to create cargo: %v", err)
	}
	return created
}

var trackingNumberPattern = regexp.MustCompile(`^\d{14}$`)

func TestCreate_AssignsTrackingNumberAndInitialStatus(t *testing.T) {
	s := newTestService(t)

	created := createTestCargo(t, s)

	if !trackingNumberPattern.MatchString(created.TrackingNumber) {
		t.Fatalf("expected 14-digit tracking number, got %q", created.TrackingNumber)
	}
	if created.Status != cargoModel.StatusReceived {
		t.Fatalf("expected status %q, got %q", cargoModel.StatusReceived, created.Status)
	}
	if time.Since(created.CreatedAt) > 5*time.Second {
		t.Fatalf("expected created_at near now, got %v", created.CreatedAt)
	}
}

func TestCreate_MissingRequiredFieldFailsWithoutPersisting(t *testing.T) {
	s := newTestService(t)

	_, err := s.Create(cargoTypes.CargoCreateRequest{
		CustomerName:  "Acme Ltd",
		CustomerPhone: "+971500000000",
		// sales_rep_name and cargo_description missing
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "sales_rep_name" {
		t.Fatalf("expected sales_rep_name named, got %q", vErr.Field)
	}

	var count int64
	if err := s.DB.Model(&cargoModel.Cargo{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cargo rows, found %d", count)
	}
}

func TestCreate_SameSecondTrackingNumbersStayUnique(t *testing.T) {
	s := newTestService(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created, err := s.Create(cargoTypes.CargoCreateRequest{
			CustomerName:     "Acme Ltd",
			CustomerPhone:    "+971500000000",
			SalesRepName:     "Jane",
			CargoDescription: "<p>boxes</p>",
		})
		if errors.Is(err, ErrConflict) {
			// A surfaced conflict is acceptable; a silent overwrite is not.
			continue
		}
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if seen[created.TrackingNumber] {
			t.Fatalf("duplicate tracking number %q", created.TrackingNumber)
		}
		seen[created.TrackingNumber] = true
	}
}

func TestTrack_UnknownTrackingNumberIsNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Track("00000000000000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTrack_ReturnsOnlyOwnedRows(t *testing.T) {
	s := newTestService(t)

	first := createTestCargo(t, s)
	second := createTestCargo(t, s)

	segment := cargoTypes.FlightSegmentRequest{
		FlightNumber:     "EK101",
		DepartureAirport: "DXB",
		ArrivalAirport:   "LHR",
		DepartureTime:    "2025-01-01T10:00",
		ArrivalTime:      "2025-01-01T14:00",
	}
	if _, err := s.AddFlightSegment(first.ID, segment); err != nil {
		t.Fatalf("add segment failed: %v", err)
	}
	if _, err := s.AddFlightSegment(second.ID, segment); err != nil {
		t.Fatalf("add segment failed: %v", err)
	}
	if _, err := s.AddStatusHistory(first.ID, cargoTypes.StatusHistoryRequest{Status: "Departed origin"}); err != nil {
		t.Fatalf("add history failed: %v", err)
	}
	if _, err := s.AddStatusHistory(second.ID, cargoTypes.StatusHistoryRequest{Status: "Departed origin"}); err != nil {
		t.Fatalf("add history failed: %v", err)
	}

	result, err := s.Track(first.TrackingNumber)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if result.Cargo.ID != first.ID {
		t.Fatalf("expected cargo %d, got %d", first.ID, result.Cargo.ID)
	}
	if len(result.FlightSegments) != 1 || len(result.StatusHistory) != 1 {
		t.Fatalf("expected 1 segment and 1 history entry, got %d and %d",
			len(result.FlightSegments), len(result.StatusHistory))
	}
	for _, seg := range result.FlightSegments {
		if seg.CargoID != first.ID {
			t.Fatalf("segment %d belongs to cargo %d", seg.ID, seg.CargoID)
		}
	}
	for _, entry := range result.StatusHistory {
		if entry.CargoID != first.ID {
			t.Fatalf("history entry %d belongs to cargo %d", entry.ID, entry.CargoID)
		}
	}
}

func TestAddFlightSegment_RejectsUnparseableTime(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	_, err := s.AddFlightSegment(c.ID, cargoTypes.FlightSegmentRequest{
		FlightNumber:     "EK101",
		DepartureAirport: "DXB",
		ArrivalAirport:   "LHR",
		DepartureTime:    "not-a-date",
		ArrivalTime:      "2025-01-01T14:00",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "departure_time" {
		t.Fatalf("expected departure_time named, got %q", vErr.Field)
	}

	var count int64
	if err := s.DB.Model(&cargoModel.FlightSegment{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no segment rows, found %d", count)
	}
}

func TestAddFlightSegment_ParsesDatetimeLocalValues(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	segment, err := s.AddFlightSegment(c.ID, cargoTypes.FlightSegmentRequest{
		FlightNumber:     "EK101",
		DepartureAirport: "DXB",
		ArrivalAirport:   "LHR",
		DepartureTime:    "2025-01-01T10:00",
		ArrivalTime:      "2025-01-01T14:00",
	})
	if err != nil {
		t.Fatalf("add segment failed: %v", err)
	}

	wantDep := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	wantArr := time.Date(2025, 1, 1, 14, 0, 0, 0, time.Local)
	if !segment.DepartureTime.Equal(wantDep) {
		t.Fatalf("expected departure %v, got %v", wantDep, segment.DepartureTime)
	}
	if !segment.ArrivalTime.Equal(wantArr) {
		t.Fatalf("expected arrival %v, got %v", wantArr, segment.ArrivalTime)
	}
	if segment.Status != "Planned" {
		t.Fatalf("expected default status Planned, got %q", segment.Status)
	}
}

func TestUpdateFlightSegment_UnknownSegmentIsNotFound(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	_, err := s.UpdateFlightSegment(c.ID, 999, cargoTypes.FlightSegmentRequest{
		FlightNumber:     "EK102",
		DepartureAirport: "DXB",
		ArrivalAirport:   "JFK",
		DepartureTime:    "2025-01-02T10:00",
		ArrivalTime:      "2025-01-02T22:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDetails_IgnoresFieldsOutsideWhitelist(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	// A client smuggling status into the details payload must not move it.
	var req cargoTypes.CargoDetailsUpdateRequest
	payload := []byte(`{"status": "delivered", "customer_name": "X"}`)
	if err := json.Unmarshal(payload, &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	updated, err := s.UpdateDetails(c.ID, req)
	if err != nil {
		t.Fatalf("update details failed: %v", err)
	}
	if updated.CustomerName != "X" {
		t.Fatalf("expected customer name X, got %q", updated.CustomerName)
	}
	if updated.Status != cargoModel.StatusReceived {
		t.Fatalf("expected status unchanged, got %q", updated.Status)
	}
	if updated.TrackingNumber != c.TrackingNumber {
		t.Fatalf("tracking number changed from %q to %q", c.TrackingNumber, updated.TrackingNumber)
	}
}

func TestUpdateDetails_EmptyStringClearsNullableFields(t *testing.T) {
	s := newTestService(t)

	created, err := s.Create(cargoTypes.CargoCreateRequest{
		CustomerName:     "Acme Ltd",
		CustomerPhone:    "+971500000000",
		SalesRepName:     "Jane",
		CargoDescription: "<p>boxes</p>",
		Origin:           "DXB",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Origin == nil || *created.Origin != "DXB" {
		t.Fatalf("expected origin DXB, got %v", created.Origin)
	}
	if created.Weight != nil {
		t.Fatalf("expected weight NULL on create, got %q", *created.Weight)
	}

	empty := ""
	updated, err := s.UpdateDetails(created.ID, cargoTypes.CargoDetailsUpdateRequest{
		Origin: &empty,
		Weight: &empty,
	})
	if err != nil {
		t.Fatalf("update details failed: %v", err)
	}
	if updated.Origin != nil {
		t.Fatalf("expected origin NULL after clearing, got %q", *updated.Origin)
	}
	if updated.Weight != nil {
		t.Fatalf("expected weight to stay NULL, got %q", *updated.Weight)
	}
}

func TestUpdateDetails_RefreshesUpdatedAt(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	time.Sleep(10 * time.Millisecond)

	name := "New Name"
	updated, err := s.UpdateDetails(c.ID, cargoTypes.CargoDetailsUpdateRequest{CustomerName: &name})
	if err != nil {
		t.Fatalf("update details failed: %v", err)
	}
	if !updated.UpdatedAt.After(c.UpdatedAt) {
		t.Fatalf("expected updated_at to move forward: %v -> %v", c.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateStatus_UnknownIDIsNotFoundAndWritesNothing(t *testing.T) {
	s := newTestService(t)

	_, err := s.UpdateStatus(12345, cargoModel.StatusDelayed)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	if err := s.DB.Model(&cargoModel.Cargo{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cargo rows, found %d", count)
	}
}

func TestUpdateStatus_RejectsUnknownState(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	_, err := s.UpdateStatus(c.ID, cargoModel.CargoStatus("teleported"))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatus_DoesNotAppendHistory(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	updated, err := s.UpdateStatus(c.ID, cargoModel.StatusDelivered)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != cargoModel.StatusDelivered {
		t.Fatalf("expected status delivered, got %q", updated.Status)
	}

	history, err := s.ListStatusHistory(c.ID)
	if err != nil {
		t.Fatalf("list history failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("status update must not create timeline entries, found %d", len(history))
	}
}

func TestDelete_RemovesCargoAndOwnedRows(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	if _, err := s.AddFlightSegment(c.ID, cargoTypes.FlightSegmentRequest{
		FlightNumber:     "EK101",
		DepartureAirport: "DXB",
		ArrivalAirport:   "LHR",
		DepartureTime:    "2025-01-01T10:00",
		ArrivalTime:      "2025-01-01T14:00",
	}); err != nil {
		t.Fatalf("add segment failed: %v", err)
	}
	if _, err := s.AddStatusHistory(c.ID, cargoTypes.StatusHistoryRequest{Status: "Received at warehouse"}); err != nil {
		t.Fatalf("add history failed: %v", err)
	}

	if err := s.Delete(c.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := s.Track(c.TrackingNumber); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var segments, history int64
	if err := s.DB.Model(&cargoModel.FlightSegment{}).Where("cargo_id = ?", c.ID).Count(&segments).Error; err != nil {
		t.Fatalf("count segments failed: %v", err)
	}
	if err := s.DB.Model(&cargoModel.StatusHistory{}).Where("cargo_id = ?", c.ID).Count(&history).Error; err != nil {
		t.Fatalf("count history failed: %v", err)
	}
	if segments != 0 || history != 0 {
		t.Fatalf("expected owned rows gone, found %d segments and %d history entries", segments, history)
	}
}

func TestDelete_UnknownIDIsNotFound(t *testing.T) {
	s := newTestService(t)

	if err := s.Delete(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListStatusHistory_NewestFirstAndReversible(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	statuses := []struct {
		status    string
		timestamp string
	}{
		{"Received at warehouse", "2025-01-01T08:00"},
		{"Departed origin", "2025-01-02T09:30"},
		{"Arrived at destination", "2025-01-03T18:45"},
	}
	for _, entry := range statuses {
		_, err := s.AddStatusHistory(c.ID, cargoTypes.StatusHistoryRequest{
			Status:    entry.status,
			Timestamp: entry.timestamp,
		})
		if err != nil {
			t.Fatalf("add history failed: %v", err)
		}
	}

	history, err := s.ListStatusHistory(c.ID)
	if err != nil {
		t.Fatalf("list history failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	if history[0].Status != "Arrived at destination" || history[2].Status != "Received at warehouse" {
		t.Fatalf("expected newest-first ordering, got %q ... %q", history[0].Status, history[2].Status)
	}

	// The public view reverses to oldest-first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	if history[0].Status != "Received at warehouse" {
		t.Fatalf("expected oldest-first after reversal, got %q", history[0].Status)
	}
}

func TestAddStatusHistory_DefaultsTimestampToNow(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	entry, err := s.AddStatusHistory(c.ID, cargoTypes.StatusHistoryRequest{Status: "Customs cleared"})
	if err != nil {
		t.Fatalf("add history failed: %v", err)
	}
	if time.Since(entry.Timestamp) > 5*time.Second {
		t.Fatalf("expected timestamp near now, got %v", entry.Timestamp)
	}
}

func TestAddStatusHistory_MissingStatusFails(t *testing.T) {
	s := newTestService(t)
	c := createTestCargo(t, s)

	_, err := s.AddStatusHistory(c.ID, cargoTypes.StatusHistoryRequest{Details: "no status"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "status" {
		t.Fatalf("expected status named, got %q", vErr.Field)
	}
}

func TestList_PagesNewestFirstWithTotal(t *testing.T) {
	s := newTestService(t)

	for i := 0; i < 3; i++ {
		createTestCargo(t, s)
	}

	list, total, err := s.List(1, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows on page 1, got %d", len(list))
	}

	rest, _, err := s.List(2, 2)
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1 row on page 2, got %d", len(rest))
	}
}
