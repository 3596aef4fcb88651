package http

import (
	"net/http"

	"excise-portal-backend/internal/service"
)

// CitizenHandler serves the citizen-facing ledger actions: each one submits
// a contract transaction and mirrors the confirmed result into the store.
type CitizenHandler struct {
	paymentSvc  service.PaymentService
	vehicleSvc  service.VehicleService
	transferSvc service.TransferService
}

func NewCitizenHandler(paymentSvc service.PaymentService, vehicleSvc service.VehicleService, transferSvc service.TransferService) *CitizenHandler {
	return &CitizenHandler{
		paymentSvc:  paymentSvc,
		vehicleSvc:  vehicleSvc,
		transferSvc: transferSvc,
	}
}

type payTaxRequest struct {
	CitizenName string `json:"citizenName" validate:"required"`
	CNIC        string `json:"cnic" validate:"required"`
	AssetID     string `json:"assetId" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
}

func (h *CitizenHandler) PayTax(w http.ResponseWriter, r *http.Request) {
	var req payTaxRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receiptID, err := h.paymentSvc.PayTax(r.Context(), req.CitizenName, req.CNIC, req.AssetID, req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"receiptId": receiptID,
		"status":    "Success",
	})
}

type registerVehicleRequest struct {
	OwnerCNIC string `json:"ownerCNIC" validate:"required"`
	VehicleID string `json:"vehicleId" validate:"required"`
}

func (h *CitizenHandler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	var req registerVehicleRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txHash, err := h.vehicleSvc.Register(r.Context(), req.OwnerCNIC, req.VehicleID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tx_hash": txHash,
		"status":  "Vehicle Registered",
	})
}

type applyNumberPlateRequest struct {
	VehicleID string `json:"vehicleId" validate:"required"`
}

func (h *CitizenHandler) ApplyNumberPlate(w http.ResponseWriter, r *http.Request) {
	var req applyNumberPlateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txHash, receiptID, err := h.vehicleSvc.ApplyPlate(r.Context(), req.VehicleID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tx_hash":   txHash,
		"receiptId": receiptID,
		"status":    "Number Plate Application Submitted",
	})
}

type ownershipTransferRequest struct {
	VehicleID    string `json:"vehicleId" validate:"required"`
	NewOwnerCNIC string `json:"newOwnerCNIC" validate:"required"`
}

func (h *CitizenHandler) RequestOwnershipTransfer(w http.ResponseWriter, r *http.Request) {
	var req ownershipTransferRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	// The requesting citizen's identity is recorded as the outgoing owner.
	txHash, receiptID, err := h.transferSvc.Request(r.Context(), req.VehicleID, req.NewOwnerCNIC, claims.Username)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tx_hash":   txHash,
		"receiptId": receiptID,
		"status":    "Ownership Transfer Requested",
	})
}
