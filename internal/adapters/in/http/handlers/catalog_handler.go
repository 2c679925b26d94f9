// backend/internal/adapters/in/http/handlers/catalog_handler.go
package handlers

import (
	"net/http"
	"strings"

	"fenestra/internal/application/usecase"
)

// CatalogHandler serves the selection steps of the wizard:
//
//	GET /catalog/categories
//	GET /catalog/models?category=
//	GET /catalog/variants/{collection}
//	GET /catalog/variants/{collection}/{name}
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/catalog"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case rest == "categories":
		writeJSON(w, http.StatusOK, h.uc.Categories())

	case rest == "models":
		models, err := h.uc.Models(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models)

	case rest == "variants":
		collections, err := h.uc.Collections(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, collections)

	case len(parts) == 2 && parts[0] == "variants":
		variants, err := h.uc.Variants(r.Context(), parts[1])
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, variants)

	case len(parts) == 3 && parts[0] == "variants":
		v, err := h.uc.Variant(r.Context(), parts[1], parts[2])
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)

	default:
		notFound(w)
	}
}

// SchemaHandler resolves the form field set for a selection:
//
//	GET /configurator/schema?category=&collection=&variant=&material=
type SchemaHandler struct {
	uc *usecase.CatalogUsecase
}

func NewSchemaHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &SchemaHandler{uc: uc}
}

func (h *SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	schema, err := h.uc.Schema(r.Context(), q.Get("category"), q.Get("collection"), q.Get("variant"), q.Get("material"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schema)
}
