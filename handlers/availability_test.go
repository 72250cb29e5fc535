package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"caresync/models"

	"github.com/gin-gonic/gin"
)

type stubAvailability struct {
	slots []string
	err   error

	gotProvider string
	gotDate     string
}

func (s *stubAvailability) GetFreeSlots(providerID, date string) ([]string, error) {
	s.gotProvider = providerID
	s.gotDate = date
	return s.slots, s.err
}

func newAvailabilityRouter(stub *stubAvailability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/availability", NewAvailabilityHandler(stub).GetFreeSlotsHandler)
	return r
}

func TestGetFreeSlotsMissingParams(t *testing.T) {
	r := newAvailabilityRouter(&stubAvailability{})

	for _, target := range []string{
		"/api/availability",
		"/api/availability?providerId=doc-1",
		"/api/availability?date=2025-06-02",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON body: %v", target, err)
		}
		if body["error"] != "Missing params" {
			t.Fatalf("%s: expected Missing params error, got %q", target, body["error"])
		}
	}
}

func TestGetFreeSlotsSuccess(t *testing.T) {
	stub := &stubAvailability{slots: []string{"9:00 AM", "9:30 AM"}}
	r := newAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?providerId=doc-1&date=2025-06-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if stub.gotProvider != "doc-1" || stub.gotDate != "2025-06-02" {
		t.Fatalf("query params not forwarded: provider=%q date=%q", stub.gotProvider, stub.gotDate)
	}

	var resp models.FreeSlotsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !reflect.DeepEqual(resp.Slots, []string{"9:00 AM", "9:30 AM"}) {
		t.Fatalf("unexpected slots: %v", resp.Slots)
	}
}

func TestGetFreeSlotsStoreFailureDegradesToEmpty(t *testing.T) {
	stub := &stubAvailability{err: errors.New("mongo is down")}
	r := newAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?providerId=doc-1&date=2025-06-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on store failure, got %d", w.Code)
	}

	var resp models.FreeSlotsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Slots == nil || len(resp.Slots) != 0 {
		t.Fatalf("expected empty slot list, got %v", resp.Slots)
	}
}
