package cargo

import (
	"cargo-logistics/types"
)

// CargoCreateRequest carries the admin form for a new shipment. The tracking
// number and status are never part of it; both are assigned server side.
type CargoCreateRequest struct {
	CustomerName     string `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerPhone    string `json:"customer_phone" validate:"required,min=1,max=50"`
	SalesRepName     string `json:"sales_rep_name" validate:"required,min=1,max=255"`
	CargoDescription string `json:"cargo_description" validate:"required,min=1"`
	Origin           string `json:"origin" validate:"omitempty"`
	Destination      string `json:"destination" validate:"omitempty"`
	Weight           string `json:"weight" validate:"omitempty,max=255"`
	Dimensions       string `json:"dimensions" validate:"omitempty,max=255"`
}

func (r CargoCreateRequest) Validate() error {
	return types.ValidateStruct(r)
}

// CargoDetailsUpdateRequest is the whitelisted partial update for customer and
// shipment details. Nil pointers mean "leave unchanged". Status and tracking
// number deliberately have no field here.
type CargoDetailsUpdateRequest struct {
	CustomerName     *string `json:"customer_name" validate:"omitempty,min=1,max=255"`
	CustomerPhone    *string `json:"customer_phone" validate:"omitempty,min=1,max=50"`
	SalesRepName     *string `json:"sales_rep_name" validate:"omitempty,min=1,max=255"`
	CargoDescription *string `json:"cargo_description" validate:"omitempty,min=1"`
	Origin           *string `json:"origin" validate:"omitempty"`
	Destination      *string `json:"destination" validate:"omitempty"`
	Weight           *string `json:"weight" validate:"omitempty,max=255"`
	Dimensions       *string `json:"dimensions" validate:"omitempty,max=255"`
}

// StatusUpdateRequest moves a cargo between the four coarse states.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=received in_transit delivered delayed"`
}

func (r StatusUpdateRequest) Validate() error {
	return types.ValidateStruct(r)
}

// FlightSegmentRequest carries one leg of an air shipment. Departure and
// arrival times arrive as strings from the admin form and are parsed by the
// service layer.
type FlightSegmentRequest struct {
	FlightNumber     string `json:"flight_number" validate:"required,min=1,max=255"`
	Airline          string `json:"airline" validate:"omitempty,max=255"`
	DepartureAirport string `json:"departure_airport" validate:"required,min=1,max=255"`
	ArrivalAirport   string `json:"arrival_airport" validate:"required,min=1,max=255"`
	DepartureTime    string `json:"departure_time" validate:"required"`
	ArrivalTime      string `json:"arrival_time" validate:"required"`
	Pieces           string `json:"pieces" validate:"omitempty,max=50"`
	Weight           string `json:"weight" validate:"omitempty,max=50"`
	Volume           string `json:"volume" validate:"omitempty,max=50"`
	Status           string `json:"status" validate:"omitempty,max=50"`
}

func (r FlightSegmentRequest) Validate() error {
	return types.ValidateStruct(r)
}

// StatusHistoryRequest appends one narrative entry to a cargo's timeline.
type StatusHistoryRequest struct {
	Status    string `json:"status" validate:"required,min=1,max=255"`
	Details   string `json:"details" validate:"omitempty"`
	Location  string `json:"location" validate:"omitempty,max=255"`
	Timestamp string `json:"timestamp" validate:"omitempty"` // defaults to now
}

func (r StatusHistoryRequest) Validate() error {
	return types.ValidateStruct(r)
}
