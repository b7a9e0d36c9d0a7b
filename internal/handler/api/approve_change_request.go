package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/api_context"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/approval"
)

func ApproveChangeRequestHandler(svc port.ApprovalEngine) http.HandlerFunc {
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

		if err := svc.Approve(r.Context(), id, reviewerID); err != nil {
			switch {
			case errors.Is(err, approval.ErrRequestNotFound):
				WriteError(w, http.StatusNotFound, "Change request not found", nil)
			case errors.Is(err, approval.ErrWorkflowConflict):
				WriteError(w, http.StatusConflict, "Change request already finalised", nil)
			case errors.Is(err, approval.ErrStagingNotFound):
				WriteError(w, http.StatusUnprocessableEntity, "Staged data for this change request is missing", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not approve change request", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully approved change request #%s", id)
	}
}
