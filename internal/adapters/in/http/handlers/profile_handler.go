// backend/internal/adapters/in/http/handlers/profile_handler.go
package handlers

import (
	"net/http"

	"fenestra/internal/adapters/in/http/middleware"
	"fenestra/internal/application/usecase"
)

// ProfileHandler serves GET /profile for the authenticated customer.
type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) http.Handler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	p, err := h.uc.Get(r.Context(), owner)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
