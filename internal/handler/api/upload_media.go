package api

import (
	"log"
	"net/http"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/api_context"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/validation"
)

// maxUploadBytes bounds the multipart form held in memory before spilling
// to disk.
const maxUploadBytes = 32 << 20

type UploadMediaResponse struct {
	MediaID string `json:"mediaId"`
}

type uploadMediaFields struct {
	CategoryType string `validate:"omitempty,oneof=standard logo banner gallery"`
	MediaType    string `validate:"required,oneof=image video audio"`
}

// UploadMediaHandler accepts a multipart upload for a kitchen, stores the
// original and answers 202 with the new media id. Processing happens
// asynchronously; the caller polls GET /medias/{id} for the outcome.
func UploadMediaHandler(svc port.UploadAccepter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kitchenID, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "kitchen ID is required", nil)
			return
		}
		requesterID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "requester identity is required", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		fields := uploadMediaFields{
			CategoryType: r.FormValue("categoryType"),
			MediaType:    r.FormValue("mediaType"),
		}
		if errs := validation.ValidateStruct(fields); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		id, err := svc.AcceptUpload(r.Context(), port.AcceptUploadInput{
			KitchenID:    kitchenID,
			RequesterID:  requesterID,
			CategoryType: fields.CategoryType,
			MediaType:    model.MediaType(fields.MediaType),
			FileName:     header.Filename,
			ContentType:  header.Header.Get("Content-Type"),
			Size:         header.Size,
			Reader:       file,
		})
		if err != nil {
			// a zero id means the accept itself failed; otherwise the asset
			// exists and only the publish step broke, which the uploader can
			// observe through the asset status
			if id == (uuid.UUID{}) {
				WriteError(w, http.StatusInternalServerError, "could not accept upload", err)
				return
			}
			log.Printf("⚠️  Upload accepted but publish failed for media #%s: %v", id, err)
		}

		RespondJSON(w, http.StatusAccepted, UploadMediaResponse{MediaID: id.String()})
		log.Printf("✅  Accepted upload of media #%s for kitchen #%s", id, kitchenID)
	}
}
