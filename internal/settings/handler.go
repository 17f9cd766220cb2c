package settings

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/bottle-template/service/internal/response"
)

// idRegex matches the decimal ids 1 through 30, without leading zeros.
var idRegex = regexp.MustCompile(`^(30|[12][0-9]|[1-9])$`)

// VerifyID reports whether s is a valid config entry id.
func VerifyID(s string) bool {
	return idRegex.MatchString(s)
}

// Handler holds HTTP handlers for config entry endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a new settings Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
//
//	@Summary		List config entries
//	@Description	Returns every stored config entry as a JSON array, ordered by store key lexicographically (config:10 sorts before config:2).
//	@Tags			config
//	@Produce		json
//	@Success		200	{array}	object
//	@Failure		500
//	@Router			/config [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.List(r.Context())
	if err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

// DeleteAll godoc
//
//	@Summary	Delete all config entries
//	@Tags		config
//	@Success	200
//	@Failure	500
//	@Router		/config [delete]
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteAll(r.Context()); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}

// Get godoc
//
//	@Summary		Get config entry
//	@Description	Returns the stored bytes of one entry verbatim.
//	@Tags			config
//	@Produce		json
//	@Param			id	path	int	true	"Entry id (1-30)"
//	@Success		200	{object}	object
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/config/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !VerifyID(id) {
		response.BadRequest(w)
		return
	}

	data, err := h.repo.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.Raw(w, data)
}

// Put godoc
//
//	@Summary		Replace config entry
//	@Description	Stores the request body verbatim under the entry id, replacing any previous value.
//	@Tags			config
//	@Accept			json
//	@Param			id		path	int		true	"Entry id (1-30)"
//	@Param			body	body	object	true	"Entry"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/config/{id} [put]
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !VerifyID(id) {
		response.BadRequest(w)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w)
		return
	}
	if err := h.repo.Put(r.Context(), id, data); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}

// Delete godoc
//
//	@Summary	Delete config entry
//	@Tags		config
//	@Param		id	path	int	true	"Entry id (1-30)"
//	@Success	200
//	@Failure	400
//	@Failure	500
//	@Router		/config/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !VerifyID(id) {
		response.BadRequest(w)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}
