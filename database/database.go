package database

import (
	"fmt"
	"log"

	"wavectf/config"
	"wavectf/models"
	"wavectf/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultAdminPassword = "admin"

// Connect opens the database connection, migrates the models and populates the
// database with default values if needed. The returned handle is also stored in
// the package-level DB used by the plain CRUD handlers; the scoring engine gets
// it injected explicitly.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := Populate(db); err != nil {
		return nil, fmt.Errorf("failed to populate database: %w", err)
	}

	DB = db
	return db, nil
}

// Migrate creates or updates the schema. Teams come first because users carry
// the team foreign key.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Challenge{},
		&models.Solve{},
	)
}

// Populate seeds a default admin account and a starter set of challenges when
// the corresponding tables are empty.
func Populate(db *gorm.DB) error {
	var countUser int64
	if err := db.Model(&models.User{}).Count(&countUser).Error; err != nil {
		return err
	}

	if countUser == 0 {
		password := DefaultAdminPassword
		if config.DefaultAdminPassword != "" {
			password = config.DefaultAdminPassword
		}

		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}

		admin := models.User{
			Username: "admin",
			Email:    "admin@admin.com",
			Password: hashed,
			IsAdmin:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Default admin user created")
	}

	var countChallenge int64
	if err := db.Model(&models.Challenge{}).Count(&countChallenge).Error; err != nil {
		return err
	}

	if countChallenge == 0 {
		challenges := []models.Challenge{
			{
				Title:       "WiFi Sniffing 101",
				Description: "Capture and analyze WiFi traffic to find the hidden flag.",
				Category:    "Wireless",
				Difficulty:  "Easy",
				Points:      100,
				Flag:        "FLAG{WIFI_SNIFFING_BASICS}",
				IsActive:    true,
			},
			{
				Title:       "IoT Device Analysis",
				Description: "Analyze the firmware of an IoT device to find vulnerabilities.",
				Category:    "IoT",
				Difficulty:  "Medium",
				Points:      200,
				Flag:        "FLAG{IOT_SECURITY_101}",
				IsActive:    true,
			},
			{
				Title:       "Bluetooth Security",
				Description: "Find the vulnerability in the Bluetooth communication.",
				Category:    "Wireless",
				Difficulty:  "Hard",
				Points:      300,
				Flag:        "FLAG{BLUETOOTH_HACK}",
				IsActive:    true,
			},
			{
				Title:       "RF Signal Analysis",
				Description: "Analyze the RF signal to decode the secret message.",
				Category:    "RF",
				Difficulty:  "Medium",
				Points:      250,
				Flag:        "FLAG{RF_ANALYSIS}",
				IsActive:    true,
			},
		}
		if err := db.Create(&challenges).Error; err != nil {
			return err
		}
		log.Println("Default challenges created")
	}

	return nil
}
