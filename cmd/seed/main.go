// Command seed provisions the portal database: it (re)creates the schema
// and inserts the demo accounts and vehicle fleet used in development.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"excise-portal-backend/internal/config"
	"excise-portal-backend/internal/domain"
)

const schema = `
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS vehicles;
DROP TABLE IF EXISTS payments;
DROP TABLE IF EXISTS ownership_transfers;

CREATE TABLE users (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('citizen', 'officer'))
);

CREATE TABLE vehicles (
    vehicle_id TEXT PRIMARY KEY,
    owner_cnic TEXT NOT NULL,
    number_plate TEXT,
    plate_applied BOOLEAN NOT NULL DEFAULT FALSE,
    plate_approved BOOLEAN NOT NULL DEFAULT FALSE,
    plate_receipt_id TEXT,
    plate_dispatch_status TEXT NOT NULL DEFAULT 'pending'
);

CREATE TABLE payments (
    receipt_id TEXT PRIMARY KEY,
    citizen_name TEXT NOT NULL,
    cnic TEXT NOT NULL,
    asset_id TEXT NOT NULL,
    amount BIGINT NOT NULL,
    payment_timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE ownership_transfers (
    transfer_id BIGSERIAL PRIMARY KEY,
    vehicle_id TEXT NOT NULL,
    old_owner_cnic TEXT NOT NULL,
    new_owner_cnic TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('requested', 'approved')),
    receipt_id TEXT,
    dispatch_status TEXT NOT NULL DEFAULT 'pending'
);
`

var citizenNames = []string{"Ali", "Sara", "Ahmed", "Nida", "Saad", "Fatima", "Hassan", "Ayesha", "Bilal", "Zara"}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Creating schema...")
	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	log.Println("Inserting sample data...")
	if err := insertSampleData(db); err != nil {
		log.Fatalf("Failed to insert sample data: %v", err)
	}
	log.Println("DB setup complete!")
}

func insertSampleData(db *sql.DB) error {
	if err := insertUser(db, "citizen1", "password123", domain.RoleCitizen); err != nil {
		return err
	}
	if err := insertUser(db, "officer1", "password123", domain.RoleOfficer); err != nil {
		return err
	}

	const cnicPrefix = "12345-1234567-"

	for i := 1; i <= 50; i++ {
		vehicleID := fmt.Sprintf("veh%03d", i)
		ownerCNIC := fmt.Sprintf("%s%d", cnicPrefix, 10+rand.Intn(90))

		if _, err := db.Exec(`INSERT INTO vehicles (vehicle_id, owner_cnic) VALUES ($1, $2)`, vehicleID, ownerCNIC); err != nil {
			return err
		}

		for n := 0; n < 1+rand.Intn(2); n++ {
			paidAt := time.Unix(1685000000+rand.Int63n(10000000), 0)
			_, err := db.Exec(
				`INSERT INTO payments (receipt_id, citizen_name, cnic, asset_id, amount, payment_timestamp)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				randomReceiptID(),
				citizenNames[rand.Intn(len(citizenNames))],
				ownerCNIC,
				vehicleID,
				[]int64{1000, 1500, 2000, 2500, 3000}[rand.Intn(5)],
				paidAt,
			)
			if err != nil {
				return err
			}
		}

		// A requested transfer on every 10th vehicle
		if i%10 == 0 {
			newOwnerCNIC := fmt.Sprintf("%s%d", cnicPrefix, 20+rand.Intn(80))
			_, err := db.Exec(
				`INSERT INTO ownership_transfers (vehicle_id, old_owner_cnic, new_owner_cnic, status, receipt_id, dispatch_status)
				 VALUES ($1, $2, $3, 'requested', $4, 'pending')`,
				vehicleID, ownerCNIC, newOwnerCNIC, randomReceiptID(),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func insertUser(db *sql.DB, username, password string, role domain.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)`, username, string(hash), role)
	return err
}

const receiptAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomReceiptID() string {
	b := make([]byte, 32)
	for i := range b {
		b[i] = receiptAlphabet[rand.Intn(len(receiptAlphabet))]
	}
	return string(b)
}
