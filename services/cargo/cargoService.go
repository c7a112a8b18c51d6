package cargo

import (
	"errors"
	"time"

	cargoModel "cargo-logistics/models/cargo"
	cargoTypes "cargo-logistics/types/cargo"

	"gorm.io/gorm"
)

// Accepted layouts for flight and timeline timestamps. The admin form posts
// datetime-local values ("2006-01-02T15:04"); API clients tend to send
// RFC 3339.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// How many tracking numbers to try before giving up on a create.
const maxTrackingAttempts = 3

// Service owns the cargo lifecycle: tracking-number assignment, status and
// detail updates, the owned flight-segment and status-history collections,
// and the composite public tracking view.
type Service struct {
	DB *gorm.DB
}

// NewService creates a new cargo service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// TrackResult is the public tracking view: one cargo joined with its ordered
// sub-entity collections. StatusHistory arrives newest-first; the client
// reverses it for chronological display.
type TrackResult struct {
	Cargo          cargoModel.Cargo           `json:"cargo"`
	FlightSegments []cargoModel.FlightSegment `json:"flight_segments"`
	StatusHistory  []cargoModel.StatusHistory `json:"status_history"`
}

// Create validates the admin form, assigns a fresh tracking number and
// persists the cargo with status "received". A tracking-number collision is
// retried with a newly generated number before surfacing ErrConflict.
func (s *Service) Create(req cargoTypes.CargoCreateRequest) (*cargoModel.Cargo, error) {
	if err := req.Validate(); err != nil {
		return nil, fieldError(err)
	}

	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		trackingNumber, err := GenerateTrackingNumber(time.Now())
		if err != nil {
			return nil, err
		}

		c := cargoModel.Cargo{
			TrackingNumber:   trackingNumber,
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			SalesRepName:     req.SalesRepName,
			CargoDescription: req.CargoDescription,
			Status:           cargoModel.StatusReceived,
			Origin:           optional(req.Origin),
			Destination:      optional(req.Destination),
			Weight:           optional(req.Weight),
			Dimensions:       optional(req.Dimensions),
		}

		err = s.DB.Create(&c).Error
		if err == nil {
			return &c, nil
		}
		if !isDuplicateKey(err) {
			return nil, err
		}
	}

	return nil, ErrConflict
}

// GetByID fetches one cargo by primary key.
func (s *Service) GetByID(id uint) (*cargoModel.Cargo, error) {
	var c cargoModel.Cargo
	if err := s.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByTrackingNumber is the sole public-facing read path.
func (s *Service) GetByTrackingNumber(trackingNumber string) (*cargoModel.Cargo, error) {
	var c cargoModel.Cargo
	if err := s.DB.Where("tracking_number = ?", trackingNumber).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Track composes the cargo with its flight segments and status history for
// the public tracking page. The client polls this; every call answers from
// the store, no server-side state.
func (s *Service) Track(trackingNumber string) (*TrackResult, error) {
	c, err := s.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}

	segments, err := s.ListFlightSegments(c.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.ListStatusHistory(c.ID)
	if err != nil {
		return nil, err
	}

	return &TrackResult{
		Cargo:          *c,
		FlightSegments: segments,
		StatusHistory:  history,
	}, nil
}

// List returns one admin page of cargo, newest first, with the total count.
func (s *Service) List(page, limit int) ([]cargoModel.Cargo, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.DB.Model(&cargoModel.Cargo{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []cargoModel.Cargo
	err := s.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// UpdateStatus moves the coarse status field. It deliberately does NOT append
// a status-history entry; the timeline is maintained by a separate admin
// action (see AddStatusHistory).
func (s *Service) UpdateStatus(id uint, status cargoModel.CargoStatus) (*cargoModel.Cargo, error) {
	if !status.IsValid() {
		return nil, newValidationError("status", "must be one of received, in_transit, delivered, delayed")
	}

	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if err := s.DB.Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// UpdateDetails applies a whitelisted partial update. Only the fields carried
// by the request struct can change; anything else a client smuggles into the
// JSON body never reaches the store. updated_at is always refreshed.
func (s *Service) UpdateDetails(id uint, req cargoTypes.CargoDetailsUpdateRequest) (*cargoModel.Cargo, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		updates["customer_phone"] = *req.CustomerPhone
	}
	if req.SalesRepName != nil {
		updates["sales_rep_name"] = *req.SalesRepName
	}
	if req.CargoDescription != nil {
		updates["cargo_description"] = *req.CargoDescription
	}
	// The nullable columns normalize "" to NULL, same as Create.
	if req.Origin != nil {
		updates["origin"] = optional(*req.Origin)
	}
	if req.Destination != nil {
		updates["destination"] = optional(*req.Destination)
	}
	if req.Weight != nil {
		updates["weight"] = optional(*req.Weight)
	}
	if req.Dimensions != nil {
		updates["dimensions"] = optional(*req.Dimensions)
	}

	if err := s.DB.Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a cargo along with every owned flight segment and status
// history entry. The three deletes run in one transaction so a failure
// partway never leaves the cargo visible with orphaned children.
func (s *Service) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cargo_id = ?", id).Delete(&cargoModel.FlightSegment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cargo_id = ?", id).Delete(&cargoModel.StatusHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cargoModel.Cargo{}, id).Error
	})
}

// AddFlightSegment appends one leg to an existing cargo. Departure and
// arrival times must parse; a bad value fails with a validation error naming
// the offending field and persists nothing.
func (s *Service) AddFlightSegment(cargoID uint, req cargoTypes.FlightSegmentRequest) (*cargoModel.FlightSegment, error) {
	if err := req.Validate(); err != nil {
		return nil, fieldError(err)
	}
	if _, err := s.GetByID(cargoID); err != nil {
		return nil, err
	}

	departureTime, err := parseSegmentTime("departure_time", req.DepartureTime)
	if err != nil {
		return nil, err
	}
	arrivalTime, err := parseSegmentTime("arrival_time", req.ArrivalTime)
	if err != nil {
		return nil, err
	}

	segment := cargoModel.FlightSegment{
		CargoID:          cargoID,
		FlightNumber:     req.FlightNumber,
		Airline:          optional(req.Airline),
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureTime:    departureTime,
		ArrivalTime:      arrivalTime,
		Pieces:           optional(req.Pieces),
		Weight:           optional(req.Weight),
		Volume:           optional(req.Volume),
		Status:           segmentStatus(req.Status),
	}

	if err := s.DB.Create(&segment).Error; err != nil {
		return nil, err
	}
	return &segment, nil
}

// UpdateFlightSegment edits one leg in place, with the same time validation
// as AddFlightSegment. The segment must belong to the given cargo.
func (s *Service) UpdateFlightSegment(cargoID, segmentID uint, req cargoTypes.FlightSegmentRequest) (*cargoModel.FlightSegment, error) {
	if err := req.Validate(); err != nil {
		return nil, fieldError(err)
	}

	var segment cargoModel.FlightSegment
	err := s.DB.Where("id = ? AND cargo_id = ?", segmentID, cargoID).First(&segment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	departureTime, err := parseSegmentTime("departure_time", req.DepartureTime)
	if err != nil {
		return nil, err
	}
	arrivalTime, err := parseSegmentTime("arrival_time", req.ArrivalTime)
	if err != nil {
		return nil, err
	}

	segment.FlightNumber = req.FlightNumber
	segment.Airline = optional(req.Airline)
	segment.DepartureAirport = req.DepartureAirport
	segment.ArrivalAirport = req.ArrivalAirport
	segment.DepartureTime = departureTime
	segment.ArrivalTime = arrivalTime
	segment.Pieces = optional(req.Pieces)
	segment.Weight = optional(req.Weight)
	segment.Volume = optional(req.Volume)
	segment.Status = segmentStatus(req.Status)

	if err := s.DB.Save(&segment).Error; err != nil {
		return nil, err
	}
	return &segment, nil
}

// AddStatusHistory appends one immutable timeline entry. The timestamp
// defaults to insertion time when the admin leaves it blank.
func (s *Service) AddStatusHistory(cargoID uint, req cargoTypes.StatusHistoryRequest) (*cargoModel.StatusHistory, error) {
	if err := req.Validate(); err != nil {
		return nil, fieldError(err)
	}
	if _, err := s.GetByID(cargoID); err != nil {
		return nil, err
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		parsed, err := parseSegmentTime("timestamp", req.Timestamp)
		if err != nil {
			return nil, err
		}
		timestamp = parsed
	}

	entry := cargoModel.StatusHistory{
		CargoID:   cargoID,
		Status:    req.Status,
		Details:   optional(req.Details),
		Location:  optional(req.Location),
		Timestamp: timestamp,
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFlightSegments returns a cargo's legs in storage order.
func (s *Service) ListFlightSegments(cargoID uint) ([]cargoModel.FlightSegment, error) {
	var segments []cargoModel.FlightSegment
	err := s.DB.Where("cargo_id = ?", cargoID).Order("id ASC").Find(&segments).Error
	if err != nil {
		return nil, err
	}
	return segments, nil
}

// ListStatusHistory returns a cargo's timeline newest-first. The public
// tracking page reverses it to oldest-first before display.
func (s *Service) ListStatusHistory(cargoID uint) ([]cargoModel.StatusHistory, error) {
	var history []cargoModel.StatusHistory
	err := s.DB.Where("cargo_id = ?", cargoID).Order("timestamp DESC, id DESC").Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func parseSegmentTime(field, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newValidationError(field, "is not a valid date/time")
}

func segmentStatus(status string) string {
	if status == "" {
		return "Planned"
	}
	return status
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
