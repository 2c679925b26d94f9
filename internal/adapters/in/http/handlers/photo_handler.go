// backend/internal/adapters/in/http/handlers/photo_handler.go
package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"fenestra/internal/adapters/in/http/middleware"
	"fenestra/internal/application/usecase"
)

// PhotoHandler serves customer photo attachments (auth required):
//
//	POST   /photos              {fileName, mimeType, data(base64)}
//	GET    /photos/{id}/url
//	DELETE /photos/{id}
type PhotoHandler struct {
	uc *usecase.PhotoUsecase
}

func NewPhotoHandler(uc *usecase.PhotoUsecase) http.Handler {
	return &PhotoHandler{uc: uc}
}

func (h *PhotoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/photos"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case r.Method == http.MethodPost && rest == "":
		h.upload(w, r, owner)

	case r.Method == http.MethodGet && len(parts) == 2 && parts[1] == "url":
		h.resolveURL(w, r, parts[0])

	case r.Method == http.MethodDelete && len(parts) == 1 && parts[0] != "":
		h.delete(w, r, owner, parts[0])

	default:
		notFound(w)
	}
}

func (h *PhotoHandler) upload(w http.ResponseWriter, r *http.Request, owner string) {
	var req struct {
		FileName string `json:"fileName"`
		MimeType string `json:"mimeType"`
		Data     string `json:"data"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		badRequest(w, "invalid base64 data")
		return
	}

	p, err := h.uc.Upload(r.Context(), owner, req.FileName, req.MimeType, data)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PhotoHandler) resolveURL(w http.ResponseWriter, r *http.Request, id string) {
	url, err := h.uc.ResolveURL(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *PhotoHandler) delete(w http.ResponseWriter, r *http.Request, owner, id string) {
	if err := h.uc.Delete(r.Context(), owner, id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
