package domain

import "time"

// Payment mirrors one confirmed tax payment. ReceiptID is the ledger
// transaction hash; rows are immutable once written.
type Payment struct {
	ReceiptID        string    `json:"receiptId"`
	CitizenName      string    `json:"citizenName"`
	CNIC             string    `json:"cnic"`
	AssetID          string    `json:"assetId"`
	Amount           int64     `json:"amount"`
	PaymentTimestamp time.Time `json:"paymentTimestamp"`
}
