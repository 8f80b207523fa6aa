package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/api/health", Health)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPathIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-4", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		if _, ok := PathID(c); ok {
			t.Errorf("PathID accepted %q", raw)
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %q, got %d", raw, w.Code)
		}
	}
}

func TestQueryList(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?status=Pending,Accepted&status=Completed", nil)

	got := QueryList(c, "status")
	want := []string{"Pending", "Accepted", "Completed"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCreateTripRejectsBadPayload(t *testing.T) {
	r := gin.New()
	r.POST("/api/trips", CreateTrip)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
