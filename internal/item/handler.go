package item

import (
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/bottle-template/service/internal/response"
)

// itemIDRegex matches the item ids 1 through 6.
var itemIDRegex = regexp.MustCompile(`^[1-6]$`)

// maxImageMemory is how much of a multipart body is held in memory; the rest spills to disk.
const maxImageMemory = 32 << 20

// VerifyItemID reports whether s is a valid item id.
func VerifyItemID(s string) bool {
	return itemIDRegex.MatchString(s)
}

// Handler holds HTTP handlers for item endpoints.
type Handler struct {
	repo *Repository
	svc  *Service
}

// NewHandler creates a new item Handler.
func NewHandler(repo *Repository, svc *Service) *Handler {
	return &Handler{repo: repo, svc: svc}
}

// List godoc
//
//	@Summary		List items
//	@Description	Returns every item detail ordered by store key, each with an "image" field when an image was uploaded.
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}	object
//	@Failure		500
//	@Router			/item [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

// DeleteAll godoc
//
//	@Summary	Delete all items
//	@Tags		items
//	@Success	200
//	@Failure	500
//	@Router		/item [delete]
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteAll(r.Context()); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}

// PutDetail godoc
//
//	@Summary		Replace item detail
//	@Description	Stores the request body verbatim as the item's detail record.
//	@Tags			items
//	@Accept			json
//	@Param			id		path	int		true	"Item id (1-6)"
//	@Param			body	body	object	true	"Detail"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/item/{id}/detail [put]
func (h *Handler) PutDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !VerifyItemID(id) {
		response.BadRequest(w)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w)
		return
	}
	if err := h.repo.PutDetail(r.Context(), id, data); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}

// Delete godoc
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	int	true	"Item id (1-6)"
//	@Success	200
//	@Failure	400
//	@Failure	500
//	@Router		/item/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !VerifyItemID(id) {
		response.BadRequest(w)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}

// PutImage godoc
//
//	@Summary		Upload item image
//	@Description	Uploads the multipart "image" field to object storage as item-{id}.jpg and records its public URL.
//	@Tags			items
//	@Accept			mpfd
//	@Param			id		path		int		true	"Item id (1-6)"
//	@Param			image	formData	file	true	"JPEG image"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/item/{id}/image [put]
func (h *Handler) PutImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !VerifyItemID(id) {
		response.BadRequest(w)
		return
	}

	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		response.BadRequest(w)
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, _, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w)
		return
	}
	defer file.Close()

	if _, err := h.svc.UploadImage(r.Context(), id, file); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}
