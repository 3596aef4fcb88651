package domain

// DispatchStatus is the physical fulfillment state of a plate or transfer
// outcome, independent of ledger/approval status.
type DispatchStatus string

const (
	DispatchPending    DispatchStatus = "pending"
	DispatchDispatched DispatchStatus = "dispatched"
	DispatchReceived   DispatchStatus = "received"
)

// ValidDispatchStatus reports whether s is one of the known dispatch states.
func ValidDispatchStatus(s DispatchStatus) bool {
	switch s {
	case DispatchPending, DispatchDispatched, DispatchReceived:
		return true
	}
	return false
}

// Vehicle mirrors a registered vehicle and its number-plate application
// state. PlateApproved is only ever set while PlateApplied holds.
type Vehicle struct {
	VehicleID           string         `json:"vehicleId"`
	OwnerCNIC           string         `json:"ownerCNIC"`
	NumberPlate         *string        `json:"numberPlate"`
	PlateApplied        bool           `json:"plateApplied"`
	PlateApproved       bool           `json:"plateApproved"`
	PlateReceiptID      *string        `json:"plateReceiptId,omitempty"`
	PlateDispatchStatus DispatchStatus `json:"plateDispatchStatus"`
}

// PlateApplication is the officer-facing projection of a pending
// number-plate application.
type PlateApplication struct {
	VehicleID string `json:"vehicleId"`
	OwnerCNIC string `json:"ownerCNIC"`
}
