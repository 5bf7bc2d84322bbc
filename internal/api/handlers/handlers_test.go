package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"channel-radio/internal/api/middleware"
	"channel-radio/internal/models"
	"channel-radio/internal/schedule"
)

var testSecret = []byte("test-secret")

// setupInMemoryDB creates a throwaway DB for testing
func setupInMemoryDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory DB: %v", err)
	}
	if err := db.AutoMigrate(&models.Show{}, &models.DJSlot{}, &models.Favorite{}); err != nil {
		t.Fatalf("Migration failed: %v", err)
	}
	return db
}

func testToken(t *testing.T, sub string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func TestGetGrid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupInMemoryDB(t)

	// Seed a show with two sub-slots on a fixed day. The handler interprets
	// the date parameter in server-local time, so the seed uses it too.
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 1, hour, min, 0, 0, time.Local)
	}
	shows := []models.Show{
		{
			ID: "club-hour", Name: "Club Hour",
			StartTime: at(14, 0), EndTime: at(15, 30),
			Slots: []models.DJSlot{
				{ID: "b", DJName: "B", StartTime: at(14, 0), EndTime: at(15, 0)},
				{ID: "c", DJName: "C", StartTime: at(15, 0), EndTime: at(15, 30)},
			},
		},
		{ID: "morning-mix", Name: "Morning Mix", StartTime: at(9, 0), EndTime: at(11, 0)},
	}
	if err := db.Create(&shows).Error; err != nil {
		t.Fatalf("Seeding failed: %v", err)
	}

	router := gin.New()
	h := NewScheduleHandler(db, schedule.DefaultLayout)
	router.GET("/grid", h.GetGrid)

	req := httptest.NewRequest(http.MethodGet, "/grid?date="+day.Format("2006-01-02"), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status %d, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Date        string `json:"date"`
		WindowStart int    `json:"window_start"`
		WindowEnd   int    `json:"window_end"`
		Slots       []struct {
			Name   string  `json:"name"`
			DJName string  `json:"dj_name"`
			Top    float64 `json:"top"`
			Height float64 `json:"height"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}

	if len(resp.Slots) != 3 {
		t.Fatalf("Expected 3 slots (1 plain + 2 sub-slots), got %d", len(resp.Slots))
	}
	if resp.Slots[0].Name != "Morning Mix" {
		t.Errorf("First slot should be Morning Mix, got %q", resp.Slots[0].Name)
	}
	if resp.WindowStart >= resp.WindowEnd {
		t.Errorf("Degenerate window [%d, %d]", resp.WindowStart, resp.WindowEnd)
	}
	if resp.Date != day.Format("2006-01-02") {
		t.Errorf("Date echo mismatch: %q", resp.Date)
	}
}

func TestGetGrid_InvalidDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewScheduleHandler(setupInMemoryDB(t), schedule.DefaultLayout)
	router.GET("/grid", h.GetGrid)

	req := httptest.NewRequest(http.MethodGet, "/grid?date=March-1st", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad date, got %d", w.Code)
	}
}

func TestFavoritesCRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupInMemoryDB(t)

	router := gin.New()
	h := NewFavoriteHandler(db)
	authed := router.Group("/", middleware.RequireAuth(testSecret))
	authed.GET("/favorites", h.GetFavorites)
	authed.POST("/favorites", h.CreateFavorite)
	authed.DELETE("/favorites/:id", h.DeleteFavorite)

	token := testToken(t, "user-1")
	do := func(method, path, body, tok string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 1. No token -> rejected
	if w := do(http.MethodGet, "/favorites", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}

	// 2. Create
	w := do(http.MethodPost, "/favorites", `{"term":"Ana","station_id":"station-a"}`, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Create failed: %d, %s", w.Code, w.Body.String())
	}
	var created models.Favorite
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.UserID != "user-1" || created.Term != "Ana" {
		t.Errorf("Created favorite wrong: %+v", created)
	}

	// 3. Blank term rejected
	if w := do(http.MethodPost, "/favorites", `{"term":"   "}`, token); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank term, got %d", w.Code)
	}

	// 4. List
	w = do(http.MethodGet, "/favorites", "", token)
	var favs []models.Favorite
	json.Unmarshal(w.Body.Bytes(), &favs)
	if len(favs) != 1 {
		t.Fatalf("Expected 1 favorite, got %d", len(favs))
	}

	// 5. Another user can't delete it
	otherToken := testToken(t, "user-2")
	if w := do(http.MethodDelete, fmt.Sprintf("/favorites/%d", created.ID), "", otherToken); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 deleting someone else's favorite, got %d", w.Code)
	}

	// 6. Owner deletes
	if w := do(http.MethodDelete, fmt.Sprintf("/favorites/%d", created.ID), "", token); w.Code != http.StatusOK {
		t.Errorf("Delete failed: %d", w.Code)
	}
	w = do(http.MethodGet, "/favorites", "", token)
	favs = nil
	json.Unmarshal(w.Body.Bytes(), &favs)
	if len(favs) != 0 {
		t.Errorf("Favorite still listed after delete")
	}
}
