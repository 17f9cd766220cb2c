// Package response provides shared response writers for HTTP handlers.
//
// Error responses carry a status code only; clients never see backend error text.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

// Raw writes body verbatim with a 200 status.
func Raw(w http.ResponseWriter, body []byte) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Status writes an empty response with the given status code.
func Status(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// OK writes an empty 200 response.
func OK(w http.ResponseWriter) {
	Status(w, http.StatusOK)
}

// BadRequest writes an empty 400 response.
func BadRequest(w http.ResponseWriter) {
	Status(w, http.StatusBadRequest)
}

// Unauthorized writes an empty 401 response.
func Unauthorized(w http.ResponseWriter) {
	Status(w, http.StatusUnauthorized)
}

// NotFound writes an empty 404 response.
func NotFound(w http.ResponseWriter) {
	Status(w, http.StatusNotFound)
}

// MethodNotAllowed writes an empty 405 response.
func MethodNotAllowed(w http.ResponseWriter) {
	Status(w, http.StatusMethodNotAllowed)
}

// InternalError logs err against the request and writes an empty 500.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithFields(log.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": middleware.GetReqID(r.Context()),
	}).WithError(err).Error("request failed")
	Status(w, http.StatusInternalServerError)
}
