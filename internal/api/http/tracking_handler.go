package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/service"
)

// TrackingHandler serves receipt tracking and public vehicle verification.
type TrackingHandler struct {
	vehicleSvc service.VehicleService
	receiptSvc service.ReceiptService
}

func NewTrackingHandler(vehicleSvc service.VehicleService, receiptSvc service.ReceiptService) *TrackingHandler {
	return &TrackingHandler{
		vehicleSvc: vehicleSvc,
		receiptSvc: receiptSvc,
	}
}

// VerifyVehicle is deliberately public: anyone can check the tax and plate
// standing of a vehicle by CNIC or vehicle id.
func (h *TrackingHandler) VerifyVehicle(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["id"]

	result, err := h.vehicleSvc.Verify(r.Context(), identifier)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *TrackingHandler) TrackReceipt(w http.ResponseWriter, r *http.Request) {
	receiptID := mux.Vars(r)["id"]

	result, err := h.receiptSvc.Track(r.Context(), receiptID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Receipt not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
