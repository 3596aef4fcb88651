package domain

// ReceiptType discriminates what a receipt identifier resolved to.
type ReceiptType string

const (
	ReceiptOwnershipTransfer ReceiptType = "ownership_transfer"
	ReceiptPlateApplication  ReceiptType = "number_plate_application"
)

// TrackingResult is the tagged union returned by receipt lookup. Exactly one
// of the per-type field groups is meaningful, selected by Type: Status for
// ownership transfers, Approved for plate applications.
type TrackingResult struct {
	Type           ReceiptType    `json:"type"`
	VehicleID      string         `json:"vehicleId"`
	Status         TransferStatus `json:"status,omitempty"`
	Approved       *bool          `json:"approved,omitempty"`
	DispatchStatus DispatchStatus `json:"dispatchStatus"`
}
