package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"excise-portal-backend/internal/domain"
)

// RegisterRoutes wires the portal's full HTTP surface onto router.
func RegisterRoutes(router *mux.Router, gate *SessionGate, auth *AuthHandler, citizen *CitizenHandler, officer *OfficerHandler, tracking *TrackingHandler) {
	// Pages
	router.HandleFunc("/", auth.Index(gate)).Methods("GET")
	router.HandleFunc("/login", auth.LoginForm).Methods("GET")
	router.HandleFunc("/login", auth.Login).Methods("POST")
	router.HandleFunc("/logout", auth.Logout).Methods("GET")
	router.HandleFunc("/citizen", gate.RequirePageSession(domain.RoleCitizen, auth.CitizenPage)).Methods("GET")
	router.HandleFunc("/officer", gate.RequirePageSession(domain.RoleOfficer, auth.OfficerPage)).Methods("GET")
	router.HandleFunc("/verify", auth.VerifyPage).Methods("GET")

	citizenOnly := gate.RequireRole(domain.RoleCitizen)
	officerOnly := gate.RequireRole(domain.RoleOfficer)

	// Public verification
	router.Handle("/api/verify_vehicle/{id}", http.HandlerFunc(tracking.VerifyVehicle)).Methods("GET")

	// Any logged-in user can track a receipt
	router.Handle("/api/track_receipt/{id}", gate.RequireSession(http.HandlerFunc(tracking.TrackReceipt))).Methods("GET")

	// Citizen actions
	router.Handle("/api/pay_tax", citizenOnly(http.HandlerFunc(citizen.PayTax))).Methods("POST")
	router.Handle("/api/register_vehicle", citizenOnly(http.HandlerFunc(citizen.RegisterVehicle))).Methods("POST")
	router.Handle("/api/apply_number_plate", citizenOnly(http.HandlerFunc(citizen.ApplyNumberPlate))).Methods("POST")
	router.Handle("/api/request_ownership_transfer", citizenOnly(http.HandlerFunc(citizen.RequestOwnershipTransfer))).Methods("POST")

	// Officer actions
	router.Handle("/api/payments", officerOnly(http.HandlerFunc(officer.ListPayments))).Methods("GET")
	router.Handle("/api/approve_ownership_transfer", officerOnly(http.HandlerFunc(officer.ApproveOwnershipTransfer))).Methods("POST")
	router.Handle("/api/approve_number_plate", officerOnly(http.HandlerFunc(officer.ApproveNumberPlate))).Methods("POST")
	router.Handle("/api/pending_numberplates", officerOnly(http.HandlerFunc(officer.ListPendingNumberPlates))).Methods("GET")
	router.Handle("/api/pending_ownershiptransfers", officerOnly(http.HandlerFunc(officer.ListPendingOwnershipTransfers))).Methods("GET")
	router.Handle("/api/update_dispatch_status", officerOnly(http.HandlerFunc(officer.UpdateDispatchStatus))).Methods("POST")
}
