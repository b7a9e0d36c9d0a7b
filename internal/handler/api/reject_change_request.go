package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/api_context"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/approval"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/validation"
)

type RejectChangeRequestRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func RejectChangeRequestHandler(svc port.ApprovalEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		reviewerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "reviewer identity is required", nil)
			return
		}

		var req RejectChangeRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		if err := svc.Reject(r.Context(), id, reviewerID, req.Reason); err != nil {
			switch {
			case errors.Is(err, approval.ErrRequestNotFound):
				WriteError(w, http.StatusNotFound, "Change request not found", nil)
			case errors.Is(err, approval.ErrWorkflowConflict):
				WriteError(w, http.StatusConflict, "Change request already finalised", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not reject change request", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully rejected change request #%s", id)
	}
}
