package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/api_context"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
)

func GetMediaHandler(svc port.MediaGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		asset, err := svc.GetMedia(r.Context(), id)
		if err != nil {
			if errors.Is(err, media.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get media details", err)
			return
		}

		RespondJSON(w, http.StatusOK, asset)
		log.Printf("✅  Successfully returned details for media #%s", id)
	}
}
