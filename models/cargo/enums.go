package cargo

// CargoStatus is the coarse shipment status shown in the admin list and the
// public tracking page. The storage column stays free text; the enumeration is
// enforced at the request layer.
type CargoStatus string

const (
	StatusReceived  CargoStatus = "received"
	StatusInTransit CargoStatus = "in_transit"
	StatusDelivered CargoStatus = "delivered"
	StatusDelayed   CargoStatus = "delayed"
)

// Helper methods for CargoStatus
func (cs CargoStatus) String() string {
	return string(cs)
}

func (cs CargoStatus) IsValid() bool {
	switch cs {
	case StatusReceived, StatusInTransit, StatusDelivered, StatusDelayed:
		return true
	default:
		return false
	}
}

// GetAllCargoStatuses returns all valid cargo statuses
func GetAllCargoStatuses() []CargoStatus {
	return []CargoStatus{
		StatusReceived,
		StatusInTransit,
		StatusDelivered,
		StatusDelayed,
	}
}
