package cargo

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCargoCreateRequest_ValidateReportsJSONFieldNames(t *testing.T) {
	req := CargoCreateRequest{
		CustomerName:  "Acme Ltd",
		CustomerPhone: "+971500000000",
		// sales_rep_name and cargo_description missing
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected validator field errors, got %T", err)
	}
	if fieldErrs[0].Field() != "sales_rep_name" {
		t.Fatalf("expected json field name sales_rep_name, got %q", fieldErrs[0].Field())
	}
}

func TestCargoCreateRequest_ValidateAcceptsCompleteForm(t *testing.T) {
	req := CargoCreateRequest{
		CustomerName:     "Acme Ltd",
		CustomerPhone:    "+971500000000",
		SalesRepName:     "Jane",
		CargoDescription: "<p>10 boxes</p>",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestStatusUpdateRequest_ValidateEnforcesKnownStates(t *testing.T) {
	for _, status := range []string{"received", "in_transit", "delivered", "delayed"} {
		if err := (StatusUpdateRequest{Status: status}).Validate(); err != nil {
			t.Fatalf("expected %q accepted, got %v", status, err)
		}
	}

	err := (StatusUpdateRequest{Status: "teleported"}).Validate()
	if err == nil {
		t.Fatal("expected unknown status rejected")
	}
	if !strings.Contains(err.Error(), "status") {
		t.Fatalf("expected error to name the status field, got %v", err)
	}
}

func TestFlightSegmentRequest_ValidateRequiresTimes(t *testing.T) {
	req := FlightSegmentRequest{
		FlightNumber:     "EK101",
		DepartureAirport: "DXB",
		ArrivalAirport:   "LHR",
		DepartureTime:    "2025-01-01T10:00",
		// arrival_time missing
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected validator field errors, got %T", err)
	}
	if fieldErrs[0].Field() != "arrival_time" {
		t.Fatalf("expected arrival_time named, got %q", fieldErrs[0].Field())
	}
}
