package main

import (
	"log"
	"os"
	"time"

	"workerconnect/internal/database"
)

// Cron-style job clearing expired email OTP state from worker accounts.
// Consumed codes are cleared on verify; this sweeps the abandoned ones.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	res := db.Exec(
		`UPDATE workers SET otp_hash = '', otp_expires_at = NULL WHERE otp_expires_at IS NOT NULL AND otp_expires_at < ?`,
		time.Now(),
	)
	if res.Error != nil {
		log.Fatalf("otp cleanup failed: %v", res.Error)
	}

	log.Printf("auth cleanup completed: workers=%d", res.RowsAffected)
}
