package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/mock"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/changerequest"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func TestGetChangeRequestHandler_CacheMiss(t *testing.T) {
	validID := uuid.NewUUID()
	record := &model.ChangeRequest{
		ID:         validID,
		EntityName: model.EntityKitchen,
		EntityID:   uuid.NewUUID(),
		Action:     model.ActionKitchenProfileUpdated,
		Status:     model.ChangeRequestStatusInitiated,
		CreatedAt:  time.Now().UTC(),
	}
	mockSvc := &mock.MockChangeRequestReader{GetOut: record}
	cache := &mock.Cache{}
	h := GetChangeRequestHandler(mockSvc, cache)

	req := httptest.NewRequest(http.MethodGet, "/change-requests/"+validID.String(), nil)
	req = withAuthContext(req, &validID, nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	var got model.ChangeRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("JSON decode = %v (body=%q)", err, rec.Body.String())
	}
	if got.ID != validID {
		t.Errorf("id = %s; want %s", got.ID, validID)
	}
	if !mockSvc.GetCalled {
		t.Error("reader was not called on a cache miss")
	}
	if !cache.SetCalled {
		t.Error("details were not written back to the cache")
	}
	if cache.SetTTL != changeRequestCacheTTL {
		t.Errorf("cache TTL = %v; want %v", cache.SetTTL, changeRequestCacheTTL)
	}
}

func TestGetChangeRequestHandler_CacheHit(t *testing.T) {
	validID := uuid.NewUUID()
	cached := []byte(`{"id":"` + validID.String() + `","status":"INITIATED"}`)
	mockSvc := &mock.MockChangeRequestReader{}
	cache := &mock.Cache{GetOut: cached}
	h := GetChangeRequestHandler(mockSvc, cache)

	req := httptest.NewRequest(http.MethodGet, "/change-requests/"+validID.String(), nil)
	req = withAuthContext(req, &validID, nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != string(cached) {
		t.Errorf("body = %q; want the cached payload %q", rec.Body.String(), cached)
	}
	if mockSvc.GetCalled {
		t.Error("reader must not be called on a cache hit")
	}
}

func TestGetChangeRequestHandler_CacheErrorFallsThrough(t *testing.T) {
	validID := uuid.NewUUID()
	mockSvc := &mock.MockChangeRequestReader{GetOut: &model.ChangeRequest{ID: validID}}
	cache := &mock.Cache{GetErr: errors.New("redis down")}
	h := GetChangeRequestHandler(mockSvc, cache)

	req := httptest.NewRequest(http.MethodGet, "/change-requests/"+validID.String(), nil)
	req = withAuthContext(req, &validID, nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !mockSvc.GetCalled {
		t.Error("reader must serve the request when the cache is unavailable")
	}
}

func TestGetChangeRequestHandler_Errors(t *testing.T) {
	validID := uuid.NewUUID()

	tests := []struct {
		name           string
		ctxID          *uuid.UUID
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing id",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ID is required",
		},
		{
			name:           "not found",
			ctxID:          &validID,
			svcErr:         changerequest.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Change request not found",
		},
		{
			name:           "service error",
			ctxID:          &validID,
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Could not get change request details",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockChangeRequestReader{GetErr: tc.svcErr}
			h := GetChangeRequestHandler(mockSvc, &mock.Cache{})

			req := httptest.NewRequest(http.MethodGet, "/change-requests/"+validID.String(), nil)
			req = withAuthContext(req, tc.ctxID, nil)
			rec := httptest.NewRecorder()

			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBodySubstr)
			}
		})
	}
}
