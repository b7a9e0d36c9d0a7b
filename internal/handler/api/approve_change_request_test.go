package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/mock"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/approval"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func TestApproveChangeRequestHandler(t *testing.T) {
	requestID := uuid.NewUUID()
	reviewerID := uuid.NewUUID()

	tests := []struct {
		name           string
		ctxID          *uuid.UUID
		ctxUserID      *uuid.UUID
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing id",
			ctxUserID:      &reviewerID,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ID is required",
		},
		{
			name:           "missing reviewer",
			ctxID:          &requestID,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "reviewer identity is required",
		},
		{
			name:           "not found",
			ctxID:          &requestID,
			ctxUserID:      &reviewerID,
			svcErr:         approval.ErrRequestNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Change request not found",
		},
		{
			name:           "already finalised",
			ctxID:          &requestID,
			ctxUserID:      &reviewerID,
			svcErr:         approval.ErrWorkflowConflict,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "already finalised",
		},
		{
			name:           "staging missing",
			ctxID:          &requestID,
			ctxUserID:      &reviewerID,
			svcErr:         approval.ErrStagingNotFound,
			wantStatus:     http.StatusUnprocessableEntity,
			wantBodySubstr: "Staged data",
		},
		{
			name:           "service error",
			ctxID:          &requestID,
			ctxUserID:      &reviewerID,
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Could not approve change request",
		},
		{
			name:       "happy path",
			ctxID:      &requestID,
			ctxUserID:  &reviewerID,
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockApprovalEngine{ApproveErr: tc.svcErr}
			h := ApproveChangeRequestHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/change-requests/"+requestID.String()+"/approve", nil)
			req = withAuthContext(req, tc.ctxID, tc.ctxUserID)
			rec := httptest.NewRecorder()

			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusNoContent {
				if rec.Body.Len() != 0 {
					t.Errorf("expected empty body, got %q", rec.Body.String())
				}
				if mockSvc.RequestID != requestID {
					t.Errorf("service got request ID = %s; want %s", mockSvc.RequestID, requestID)
				}
				if mockSvc.ReviewerID != reviewerID {
					t.Errorf("service got reviewer ID = %s; want %s", mockSvc.ReviewerID, reviewerID)
				}
				return
			}
			if !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBodySubstr)
			}
		})
	}
}
