package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/api_context"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/changerequest"
)

// changeRequestCacheTTL bounds staleness of the cached details payload. The
// approval engine also invalidates the entry on finalisation.
const changeRequestCacheTTL = 5 * time.Minute

func GetChangeRequestHandler(svc port.ChangeRequestReader, cache port.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if raw, err := cache.GetChangeRequestDetails(r.Context(), id); err != nil {
			log.Printf("⚠️  Cache lookup failed for change request #%s: %v", id, err)
		} else if raw != nil {
			RespondRawJSON(w, http.StatusOK, raw)
			log.Printf("✅  Returning cached change request #%s", id)
			return
		}

		req, err := svc.GetChangeRequest(r.Context(), id)
		if err != nil {
			if errors.Is(err, changerequest.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Change request not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get change request details", err)
			return
		}

		raw, err := json.Marshal(req)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not encode change request", err)
			return
		}
		cache.SetChangeRequestDetails(r.Context(), id, raw, changeRequestCacheTTL)

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for change request #%s", id)
	}
}
