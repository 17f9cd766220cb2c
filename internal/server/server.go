// Package server assembles the HTTP router for the API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/bottle-template/service/internal/item"
	"github.com/bottle-template/service/internal/kv"
	appMiddleware "github.com/bottle-template/service/internal/middleware"
	"github.com/bottle-template/service/internal/profile"
	"github.com/bottle-template/service/internal/response"
	"github.com/bottle-template/service/internal/scratch"
	"github.com/bottle-template/service/internal/settings"
	"github.com/bottle-template/service/internal/storage"
	"github.com/bottle-template/service/internal/video"
)

// BasePath is the prefix every API route is mounted under.
const BasePath = "/api"

const healthBody = "It's fine"

// Deps are the long-lived collaborators shared by every request.
type Deps struct {
	Store       kv.Store
	Storage     storage.Storage
	Scratch     *scratch.Dir
	VideoURLTTL time.Duration

	// JWTSecret, when set, requires a bearer token on PUT and DELETE routes.
	JWTSecret      string
	SwaggerEnabled bool
}

// New wires repositories, services and handlers into a chi router.
func New(d Deps) http.Handler {
	// Wire dependencies: repository → service → handler
	settingsHandler := settings.NewHandler(settings.NewRepository(d.Store))
	profileHandler := profile.NewHandler(profile.NewRepository(d.Store))

	itemRepo := item.NewRepository(d.Store)
	itemSvc := item.NewService(itemRepo, d.Storage, d.Scratch)
	itemHandler := item.NewHandler(itemRepo, itemSvc)

	videoHandler := video.NewHandler(d.Storage, d.VideoURLTTL)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(appMiddleware.Headers)
	r.Use(chiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	if d.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route(BasePath, func(r chi.Router) {
		r.Get("/health-check", healthCheck)

		// Reads
		r.Get("/config", settingsHandler.List)
		r.Get("/config/{id}", settingsHandler.Get)
		r.Get("/profile", profileHandler.Get)
		r.Get("/item", itemHandler.List)
		r.Get("/video-url", videoHandler.UploadURL)

		// Writes
		r.Group(func(r chi.Router) {
			if d.JWTSecret != "" {
				r.Use(appMiddleware.RequireAuth(d.JWTSecret))
			}
			r.Delete("/config", settingsHandler.DeleteAll)
			r.Put("/config/{id}", settingsHandler.Put)
			r.Delete("/config/{id}", settingsHandler.Delete)

			r.Put("/profile", profileHandler.Put)

			r.Delete("/item", itemHandler.DeleteAll)
			r.Put("/item/{id}/detail", itemHandler.PutDetail)
			r.Put("/item/{id}/image", itemHandler.PutImage)
			r.Delete("/item/{id}", itemHandler.Delete)
		})
	})

	return r
}

// healthCheck godoc
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"It's fine"
//	@Router		/health-check [get]
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response.Raw(w, []byte(healthBody))
}
