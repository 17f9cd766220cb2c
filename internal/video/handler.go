// Package video issues signed URLs that let clients upload the site video
// straight to object storage.
package video

import (
	"net/http"
	"time"

	"github.com/bottle-template/service/internal/response"
	"github.com/bottle-template/service/internal/storage"
)

const (
	objectName  = "video.mp4"
	contentType = "video/mp4"
)

// URLResponse is the body of GET /video-url.
type URLResponse struct {
	VideoURL string `json:"video_url" example:"https://storage.example.com/bottle-template/video.mp4?X-Amz-Signature=..."`
}

// Handler holds the signed video URL endpoint.
type Handler struct {
	storage storage.Storage
	ttl     time.Duration
}

// NewHandler creates a video Handler whose URLs stay valid for ttl.
func NewHandler(store storage.Storage, ttl time.Duration) *Handler {
	return &Handler{storage: store, ttl: ttl}
}

// UploadURL godoc
//
//	@Summary		Signed video upload URL
//	@Description	Returns a V4-signed URL for PUTting video.mp4 (Content-Type video/mp4). The URL expires after five minutes by default.
//	@Tags			video
//	@Produce		json
//	@Success		200	{object}	URLResponse
//	@Failure		500
//	@Router			/video-url [get]
func (h *Handler) UploadURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.storage.PresignPut(r.Context(), objectName, h.ttl, contentType)
	if err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, URLResponse{VideoURL: url})
}
