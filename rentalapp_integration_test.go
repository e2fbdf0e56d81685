package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hostkeep/rental-app/router"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/store"
	"github.com/hostkeep/rental-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestApp(t *testing.T) (*gin.Engine, *services.LifecycleService) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	s, err := store.New(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	lifecycle := services.NewLifecycleService(s)
	return router.SetupRouter(lifecycle, services.NewGeminiService()), lifecycle
}

func doRequest(t *testing.T, r *gin.Engine, method, url, role string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Active-Role", role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]interface{})
	return data
}

// TestEndToEndFlow walks the whole lifecycle: a cleaner reports a visit
// with an issue, maintenance sees the ticket on the board and resolves
// it, the admin reads the aggregated dashboard and asks for a summary.
func TestEndToEndFlow(t *testing.T) {
	r, _ := setupTestApp(t)

	// The property list is seeded on first load and visible to every role.
	w := doRequest(t, r, "GET", "/api/properties", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var propsResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &propsResp))
	properties := propsResp["data"].([]interface{})
	assert.Len(t, properties, 29)
	propertyID := properties[0].(map[string]interface{})["id"].(string)

	// Cleaner submits a visit with an issue.
	w = doRequest(t, r, "POST", "/api/cleaner/visits", "Cleaner", map[string]interface{}{
		"propertyId":   propertyID,
		"cleanerName":  "Dana",
		"date":         "2026-08-31",
		"timeStarted":  "09:00",
		"timeFinished": "11:00",
		"issuesFound":  true,
		"ticket": map[string]interface{}{
			"issueDescription": "Dishwasher door won't latch",
			"issuePhoto":       "YmVmb3Jl",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	ticket := decodeData(t, w)["ticket"].(map[string]interface{})
	ticketID := ticket["id"].(string)
	assert.Equal(t, "TICKET-001", ticketID)

	// Maintenance sees it on the open board.
	w = doRequest(t, r, "GET", "/api/maintenance/tickets/open", "Maintenance", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var boardResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &boardResp))
	board := boardResp["data"].([]interface{})
	assert.Len(t, board, 1)

	// ...and resolves it.
	w = doRequest(t, r, "POST", "/api/maintenance/tickets/"+ticketID+"/resolve", "Maintenance", map[string]interface{}{
		"maintenancePersonName": "Ray",
		"notes":                 "Replaced the latch assembly",
		"afterPhoto":            "YWZ0ZXI=",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	maintLog := decodeData(t, w)
	assert.Equal(t, "YmVmb3Jl", maintLog["beforePhoto"])

	// The board is empty again.
	w = doRequest(t, r, "GET", "/api/maintenance/tickets/open", "Maintenance", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var emptyResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &emptyResp))
	assert.Nil(t, emptyResp["data"])

	// Admin reads the aggregated dashboard.
	w = doRequest(t, r, "GET", "/api/admin/dashboard", "Admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	stats := decodeData(t, w)
	assert.Equal(t, float64(1), stats["total_cleaner_logs"])
	ticketStats := stats["ticket_stats"].(map[string]interface{})
	assert.Equal(t, float64(1), ticketStats["resolved"])

	// Without a Gemini key the summary degrades to the fixed string.
	w = doRequest(t, r, "POST", "/api/admin/maintenance-summary", "Admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.MsgNotConfigured, decodeData(t, w)["summary"])
}

func TestRoleSwitcherGatesViews(t *testing.T) {
	r, _ := setupTestApp(t)

	// The default role is Cleaner, which cannot see the admin view.
	w := doRequest(t, r, "GET", "/api/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "GET", "/api/maintenance/tickets/open", "Cleaner", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "GET", "/api/maintenance/tickets/open", "Maintenance", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown roles are rejected outright.
	w = doRequest(t, r, "GET", "/api/properties", "Owner", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
