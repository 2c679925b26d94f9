// backend/internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fenestra/internal/application/usecase"
	catalogdom "fenestra/internal/domain/catalog"
	cartdom "fenestra/internal/domain/cart"
	orderdom "fenestra/internal/domain/order"
	photodom "fenestra/internal/domain/photo"
	profiledom "fenestra/internal/domain/profile"
	quotedom "fenestra/internal/domain/quote"
	stockdom "fenestra/internal/domain/stockitem"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// writeErr maps domain and usecase errors onto HTTP responses. Validation
// errors carry their per-field detail so the storefront can mark inputs.
func writeErr(w http.ResponseWriter, err error) {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation_failed",
			"fields": ve.Fields,
		})
		return
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, quotedom.ErrNotFound),
		errors.Is(err, photodom.ErrNotFound),
		errors.Is(err, profiledom.ErrNotFound),
		errors.Is(err, stockdom.ErrNotFound),
		errors.Is(err, catalogdom.ErrVariantNotFound),
		errors.Is(err, usecase.ErrCartNotFound):
		code = http.StatusNotFound

	case errors.Is(err, quotedom.ErrForbidden),
		errors.Is(err, usecase.ErrPhotoForbidden):
		code = http.StatusForbidden

	case errors.Is(err, usecase.ErrInvalidArgument),
		errors.Is(err, usecase.ErrUnknownCategory),
		errors.Is(err, usecase.ErrNoConceptDraft),
		errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrCheckoutInvalidMethod),
		errors.Is(err, quotedom.ErrNotConcept),
		errors.Is(err, cartdom.ErrInvalidCart),
		errors.Is(err, orderdom.ErrEmptyCart),
		errors.Is(err, photodom.ErrTooLarge),
		errors.Is(err, photodom.ErrNotAnImage):
		code = http.StatusBadRequest
	}

	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid json body")
		return false
	}
	return true
}
