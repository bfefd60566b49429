package challenges

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"wavectf/database"
	"wavectf/middleware"
	"wavectf/models"
	"wavectf/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandlerTestDB(t *testing.T) *gorm.DB {
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

	previous := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = previous })

	return db
}

func submitRequest(t *testing.T, user models.User, challengeID uint, flag string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(SubmitFlagRequest{Flag: flag})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/challenges/%d/submit", challengeID), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", challengeID)}}
	c.Set(middleware.ContextUserKey, user)

	return c, w
}

// The user in the request context was loaded before the solve, so the handler
// must report the score the store holds after crediting, not the snapshot.
func TestSubmitFlagReturnsFreshScore(t *testing.T) {
	db := newHandlerTestDB(t)

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "irrelevant"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	challenge := models.Challenge{
		Title:       "WIFI-101",
		Description: "test challenge",
		Category:    "Wireless",
		Difficulty:  "Easy",
		Points:      100,
		Flag:        "FLAG{X}",
		IsActive:    true,
	}
	if err := db.Create(&challenge).Error; err != nil {
		t.Fatalf("create challenge: %v", err)
	}
	// Bump the stored score without touching the in-memory user, which keeps
	// playing the role of the auth-time snapshot.
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("score", 150).Error; err != nil {
		t.Fatalf("seed score: %v", err)
	}
	if user.Score != 0 {
		t.Fatalf("expected stale snapshot score 0, got %d", user.Score)
	}

	h := &Handler{Submissions: services.NewSubmissionService(db, nil)}

	// Context snapshot still carries score 0
	c, w := submitRequest(t, user, challenge.ID, "FLAG{X}")
	h.SubmitFlag(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SubmitFlagResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Points != 100 {
		t.Fatalf("expected 100 points, got %d", resp.Points)
	}
	if resp.Score != 250 {
		t.Fatalf("expected score 250, got %d", resp.Score)
	}
}
