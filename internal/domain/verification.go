package domain

// PaymentRecord is the public projection of a payment returned by vehicle
// verification.
type PaymentRecord struct {
	ReceiptID   string `json:"receiptId"`
	Amount      int64  `json:"amount"`
	PaymentDate string `json:"paymentDate"`
}

// VehicleSummary is the public projection of a vehicle. All fields are null
// when no vehicle matched the queried identifier.
type VehicleSummary struct {
	VehicleID   *string `json:"vehicleId"`
	NumberPlate *string `json:"numberPlate"`
	OwnerCNIC   *string `json:"ownerCNIC"`
}

// VehicleVerification combines the payments and vehicle matching a CNIC or
// vehicle id.
type VehicleVerification struct {
	Payments []PaymentRecord `json:"payments"`
	Vehicle  VehicleSummary  `json:"vehicle"`
}
