package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"wavectf/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway on-disk sqlite database. A file (rather than
// :memory:) plus busy_timeout is required for the concurrency tests, where
// several goroutines write through the same pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "wavectf_test.db") +
		"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Team{}, &models.User{}, &models.Challenge{}, &models.Solve{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "irrelevant",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createChallenge(t *testing.T, db *gorm.DB, title string, points int, flag string, active bool) models.Challenge {
	t.Helper()

	challenge := models.Challenge{
		Title:       title,
		Description: "test challenge",
		Category:    "Wireless",
		Difficulty:  "Easy",
		Points:      points,
		Flag:        flag,
		IsActive:    active,
	}
	if err := db.Create(&challenge).Error; err != nil {
		t.Fatalf("create challenge %s: %v", title, err)
	}
	// gorm skips zero values for columns with a default, so flip explicitly
	if !active {
		if err := db.Model(&challenge).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate challenge %s: %v", title, err)
		}
	}
	return challenge
}

func userScore(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("reload user %d: %v", userID, err)
	}
	return user.Score
}

func teamScore(t *testing.T, db *gorm.DB, teamID uint) int {
	t.Helper()

	var team models.Team
	if err := db.First(&team, "id = ?", teamID).Error; err != nil {
		t.Fatalf("reload team %d: %v", teamID, err)
	}
	return team.Score
}

func solveCount(t *testing.T, db *gorm.DB, userID, challengeID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Solve{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Count(&count).Error; err != nil {
		t.Fatalf("count solves: %v", err)
	}
	return count
}
