// Package profile stores the singleton site profile.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bottle-template/service/internal/kv"
	"github.com/bottle-template/service/internal/response"
)

// Key is the store key of the profile.
const Key = "profile"

// ErrNotFound is returned when no profile has been stored yet.
var ErrNotFound = errors.New("profile not found")

// Repository handles profile persistence.
type Repository struct {
	store kv.Store
}

// NewRepository creates a new Repository over store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Get returns the stored profile bytes.
func (r *Repository) Get(ctx context.Context) ([]byte, error) {
	b, err := r.store.Get(ctx, Key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return b, nil
}

// Put replaces the profile with data.
func (r *Repository) Put(ctx context.Context, data []byte) error {
	if err := r.store.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// Handler holds HTTP handlers for the profile endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a new profile Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Get godoc
//
//	@Summary	Get profile
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	object
//	@Failure	404
//	@Failure	500
//	@Router		/profile [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.Get(r.Context())
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
//	@Summary		Replace profile
//	@Description	Stores the request body verbatim as the profile.
//	@Tags			profile
//	@Accept			json
//	@Param			body	body	object	true	"Profile"
//	@Success		200
//	@Failure		500
//	@Router			/profile [put]
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w)
		return
	}
	if err := h.repo.Put(r.Context(), data); err != nil {
		response.InternalError(w, r, err)
		return
	}
	response.OK(w)
}
