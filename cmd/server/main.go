package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "excise-portal-backend/internal/api/http"
	"excise-portal-backend/internal/config"
	"excise-portal-backend/internal/jobs"
	"excise-portal-backend/internal/ledger"
	"excise-portal-backend/internal/logger"
	"excise-portal-backend/internal/repository/postgres"
	"excise-portal-backend/internal/scheduler"
	"excise-portal-backend/internal/security"
	"excise-portal-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local .env overrides, if present
	godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Excise Portal backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Ledger configuration", "rpc_url", cfg.Ledger.RPCURL, "contract", cfg.Ledger.ContractHash)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Ledger. An unreachable node is startup-fatal: the portal
	// must not serve ledger-backed actions it cannot complete.
	l := ledger.New(cfg.Ledger.RPCURL, cfg.Ledger.ContractHash, cfg.LedgerPollInterval(), cfg.LedgerWaitTimeout())
	pingCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := l.Ping(pingCtx); err != nil {
		logger.Error("Failed to reach ledger node", "error", err)
		log.Fatalf("Failed to reach ledger node: %v", err)
	}
	logger.Info("Ledger connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Secret, cfg.SessionTTL())
	gate := httpapi.NewSessionGate(tokenManager, cfg.Session.CookieName)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, l)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.PaymentRepository, l)
	transferSvc := service.NewTransferService(store.TransferRepository, l)
	receiptSvc := service.NewReceiptService(store.ReceiptRepository)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc, cfg.Session.CookieName, cfg.SessionTTL(), cfg.Session.SecureCookies)
	citizenHandler := httpapi.NewCitizenHandler(paymentSvc, vehicleSvc, transferSvc)
	officerHandler := httpapi.NewOfficerHandler(paymentSvc, vehicleSvc, transferSvc, receiptSvc)
	trackingHandler := httpapi.NewTrackingHandler(vehicleSvc, receiptSvc)

	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, gate, authHandler, citizenHandler, officerHandler, trackingHandler)

	// Background jobs
	jobRunner := jobs.NewJobRunner(l, store.VehicleRepository, store.TransferRepository)
	sched := scheduler.NewScheduler(jobRunner, cfg.Scheduler)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
