package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/config"
	"github.com/GeetAtGit/ReportVerse/internal/db"
)

// An unconnected manager fails its ping, which is exactly the degraded path
// a dead database produces at runtime.
func TestHealthAnswers200WhenDatabaseIsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	connManager := db.NewConnectionManager(&config.Config{}, zerolog.Nop())
	controller := NewHealthController(connManager, "1.0.0", zerolog.Nop())

	router := gin.New()
	router.GET("/api/health", controller.Health)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "degraded" {
		t.Errorf("status = %q, want degraded", body.Status)
	}
	if body.Database != "down" {
		t.Errorf("database = %q, want down", body.Database)
	}
	if body.Version != "1.0.0" {
		t.Errorf("version = %q", body.Version)
	}
	if body.System.Goroutines <= 0 {
		t.Errorf("goroutines = %d, want > 0", body.System.Goroutines)
	}
}
