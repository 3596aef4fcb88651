package domain

type TransferStatus string

const (
	TransferRequested TransferStatus = "requested"
	TransferApproved  TransferStatus = "approved"
)

// OwnershipTransfer mirrors a transfer request. Status only ever moves
// requested -> approved; DispatchStatus is updated independently.
type OwnershipTransfer struct {
	TransferID     int64          `json:"transferId"`
	VehicleID      string         `json:"vehicleId"`
	OldOwnerCNIC   string         `json:"oldOwnerCNIC"`
	NewOwnerCNIC   string         `json:"newOwnerCNIC"`
	Status         TransferStatus `json:"status"`
	ReceiptID      string         `json:"receiptId"`
	DispatchStatus DispatchStatus `json:"dispatchStatus"`
}
