package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type ListChangeRequestsResponse struct {
	ChangeRequests []*model.ChangeRequest `json:"changeRequests"`
}

// ListChangeRequestsHandler lists change requests, open ones first. Filters
// come from query parameters: entityName, entityId, status, limit, offset.
func ListChangeRequestsHandler(svc port.ChangeRequestReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := port.ChangeRequestFilter{
			EntityName: q.Get("entityName"),
			Status:     model.ChangeRequestStatus(q.Get("status")),
		}
		if raw := q.Get("entityId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "entityId is not a valid UUID", nil)
				return
			}
			filter.EntityID = &id
		}
		if raw := q.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "limit must be an integer", nil)
				return
			}
			filter.Limit = n
		}
		if raw := q.Get("offset"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				WriteError(w, http.StatusBadRequest, "offset must be a non-negative integer", nil)
				return
			}
			filter.Offset = n
		}

		reqs, err := svc.ListChangeRequests(r.Context(), filter)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list change requests", err)
			return
		}
		if reqs == nil {
			reqs = []*model.ChangeRequest{}
		}

		RespondJSON(w, http.StatusOK, ListChangeRequestsResponse{ChangeRequests: reqs})
		log.Printf("✅  Successfully listed %d change requests", len(reqs))
	}
}
