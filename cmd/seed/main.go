package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/trip-planner/api-go/config"
	"github.com/trip-planner/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the demo user the web client logs in as. Safe to run repeatedly:
// the insert upserts keyed on email, so an existing row keeps its id.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db := config.InitDB()

	if err := seedDemoUser(db); err != nil {
		log.Fatal("Failed to seed demo user:", err)
	}

	log.Printf("Seeded demo user %s", demoEmail)
}

const demoEmail = "demo@trip-planner.local"

func seedDemoUser(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        demoEmail,
		Name:         "Demo Traveler",
		PasswordHash: string(hashed),
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password_hash", "updated_at"}),
	}).Create(&user).Error
}
