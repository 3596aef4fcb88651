package http

import (
	"errors"
	"fmt"
	"net/http"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/service"
)

// OfficerHandler serves the officer actions: listings of pending work,
// guarded approvals, and dispatch-status updates.
type OfficerHandler struct {
	paymentSvc  service.PaymentService
	vehicleSvc  service.VehicleService
	transferSvc service.TransferService
	receiptSvc  service.ReceiptService
}

func NewOfficerHandler(paymentSvc service.PaymentService, vehicleSvc service.VehicleService, transferSvc service.TransferService, receiptSvc service.ReceiptService) *OfficerHandler {
	return &OfficerHandler{
		paymentSvc:  paymentSvc,
		vehicleSvc:  vehicleSvc,
		transferSvc: transferSvc,
		receiptSvc:  receiptSvc,
	}
}

func (h *OfficerHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListPayments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := make([]map[string]any, 0, len(payments))
	for _, p := range payments {
		summaries = append(summaries, map[string]any{
			"receiptId":   p.ReceiptID,
			"citizenName": p.CitizenName,
			"assetId":     p.AssetID,
			"amount":      p.Amount,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

type approveRequest struct {
	VehicleID string `json:"vehicleId" validate:"required"`
}

func (h *OfficerHandler) ApproveOwnershipTransfer(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.transferSvc.Approve(r.Context(), req.VehicleID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "Ownership transfer approved for vehicle " + req.VehicleID,
	})
}

func (h *OfficerHandler) ApproveNumberPlate(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.vehicleSvc.ApprovePlate(r.Context(), req.VehicleID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": fmt.Sprintf("Number plate approved for vehicle %s", req.VehicleID),
	})
}

func (h *OfficerHandler) ListPendingNumberPlates(w http.ResponseWriter, r *http.Request) {
	apps, err := h.vehicleSvc.ListPendingPlates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if apps == nil {
		apps = []domain.PlateApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *OfficerHandler) ListPendingOwnershipTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.transferSvc.ListPending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pending := make([]map[string]any, 0, len(transfers))
	for _, t := range transfers {
		pending = append(pending, map[string]any{
			"vehicleId":    t.VehicleID,
			"oldOwnerCNIC": t.OldOwnerCNIC,
			"newOwnerCNIC": t.NewOwnerCNIC,
		})
	}
	writeJSON(w, http.StatusOK, pending)
}

type updateDispatchRequest struct {
	ReceiptID      string `json:"receiptId" validate:"required"`
	DispatchStatus string `json:"dispatchStatus" validate:"required,oneof=pending dispatched received"`
}

func (h *OfficerHandler) UpdateDispatchStatus(w http.ResponseWriter, r *http.Request) {
	var req updateDispatchRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.receiptSvc.UpdateDispatch(r.Context(), req.ReceiptID, domain.DispatchStatus(req.DispatchStatus))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Receipt not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "Dispatch status updated"})
}
