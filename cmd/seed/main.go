package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"workerconnect/internal/database"
	"workerconnect/internal/domain"
)

// Development seeder: wipes and repopulates the database with sample
// customers, verified workers, and reviews. Never run against production.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "workerconnect.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Customer{},
		&domain.Worker{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM workers")
	db.Exec("DELETE FROM customers")

	log.Println("Creating customers...")
	customers := []domain.Customer{}
	customerNames := []string{"Asha Patel", "Rohan Mehta", "Priya Sharma"}
	for i, name := range customerNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.Customer{
			Name:          name,
			Email:         fmt.Sprintf("customer%d@example.com", i+1),
			Phone:         fmt.Sprintf("91234567%02d", i+10),
			PasswordHash:  string(hash),
			Location:      "Mumbai",
			ProfilePicURL: domain.DefaultProfilePicURL,
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}
	log.Println("Customers created: customer1@example.com / customer123 ...")

	log.Println("Creating workers...")
	workerSamples := []struct {
		name       string
		occupation string
		skills     []string
		location   string
		years      int
		price      float64
	}{
		{"Ravi Kumar", "Plumber", []string{"Pipe Fitting", "Leak Repair"}, "Pune", 8, 450},
		{"Suresh Yadav", "Electrician", []string{"Wiring", "Appliance Repair"}, "Mumbai", 12, 600},
		{"Manoj Singh", "Carpenter", []string{"Furniture", "Polishing"}, "Delhi", 5, 500},
		{"Anil Verma", "Painter", []string{"Interior", "Exterior"}, "Pune", 3, 350},
	}

	workers := []domain.Worker{}
	for i, sample := range workerSamples {
		hash, _ := bcrypt.GenerateFromPassword([]byte("worker123"), bcrypt.DefaultCost)
		worker := domain.Worker{
			Name:            sample.name,
			Email:           fmt.Sprintf("worker%d@example.com", i+1),
			Phone:           fmt.Sprintf("98765432%02d", i+10),
			PasswordHash:    string(hash),
			Location:        sample.location,
			ProfilePicURL:   domain.DefaultProfilePicURL,
			Occupation:      sample.occupation,
			Skills:          sample.skills,
			ExperienceYears: sample.years,
			Bio:             fmt.Sprintf("%s with %d years of experience.", sample.occupation, sample.years),
			PriceHint:       sample.price,
			Availability:    domain.AvailabilityAvailable,
			AadharNumber:    fmt.Sprintf("1234567890%02d", i+10),
			EmailVerified:   true,
		}
		db.Create(&worker)
		workers = append(workers, worker)
	}
	log.Println("Workers created (verified): worker1@example.com / worker123 ...")

	log.Println("Creating reviews...")
	comments := []string{
		"Arrived on time and fixed everything in one visit.",
		"Good work, slightly expensive.",
		"Very professional, would hire again.",
	}
	for i, comment := range comments {
		author := customers[i%len(customers)]
		review := domain.Review{
			WorkerID:     workers[i%len(workers)].ID,
			AuthorID:     author.ID,
			Rating:       4 + i%2,
			Comment:      comment,
			AuthorName:   author.Name,
			AuthorPicURL: author.ProfilePicURL,
			CreatedAt:    time.Now().Add(-time.Duration(i) * 24 * time.Hour),
		}
		db.Create(&review)
	}

	log.Println("Seed completed.")
}
