// backend/internal/adapters/in/http/handlers/quote_handler.go
package handlers

import (
	"net/http"
	"strings"

	"fenestra/internal/adapters/in/http/middleware"
	"fenestra/internal/application/usecase"
	quotedom "fenestra/internal/domain/quote"
)

// QuoteHandler serves the draft aggregate workflow (auth required):
//
//	GET    /quotes
//	GET    /quotes/{id}
//	DELETE /quotes/{id}
//	POST   /quotes/items    (append a configured item)
//	POST   /quotes/submit   (submit all concept drafts)
type QuoteHandler struct {
	uc *usecase.QuoteUsecase
}

func NewQuoteHandler(uc *usecase.QuoteUsecase) http.Handler {
	return &QuoteHandler{uc: uc}
}

func (h *QuoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/quotes"), "/")

	switch {
	case r.Method == http.MethodGet && rest == "":
		h.list(w, r, owner)

	case r.Method == http.MethodPost && rest == "items":
		h.appendItem(w, r, owner)

	case r.Method == http.MethodPost && rest == "submit":
		h.submit(w, r, owner)

	case r.Method == http.MethodGet && rest != "":
		h.get(w, r, owner, rest)

	case r.Method == http.MethodDelete && rest != "":
		h.delete(w, r, owner, rest)

	default:
		notFound(w)
	}
}

func (h *QuoteHandler) list(w http.ResponseWriter, r *http.Request, owner string) {
	quotes, err := h.uc.List(r.Context(), owner)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) get(w http.ResponseWriter, r *http.Request, owner, id string) {
	q, err := h.uc.Get(r.Context(), owner, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) appendItem(w http.ResponseWriter, r *http.Request, owner string) {
	var req struct {
		ItemID        string            `json:"itemId"`
		Model         string            `json:"model"`
		Category      string            `json:"category"`
		Collection    string            `json:"collection"`
		Variant       string            `json:"variant"`
		FormData      map[string]string `json:"formData"`
		PhotoRefs     []string          `json:"photoRefs"`
		ModelImageRef string            `json:"modelImageRef"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	q, err := h.uc.AppendItem(r.Context(), owner, usecase.AppendItemInput{
		ItemID:        req.ItemID,
		Model:         req.Model,
		Category:      req.Category,
		Collection:    req.Collection,
		Variant:       req.Variant,
		FormData:      req.FormData,
		PhotoRefs:     req.PhotoRefs,
		ModelImageRef: req.ModelImageRef,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *QuoteHandler) submit(w http.ResponseWriter, r *http.Request, owner string) {
	var req quotedom.CustomerDetails
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.uc.SubmitAll(r.Context(), owner, req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *QuoteHandler) delete(w http.ResponseWriter, r *http.Request, owner, id string) {
	if err := h.uc.DeleteDraft(r.Context(), owner, id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
