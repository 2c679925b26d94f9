// backend/internal/adapters/in/http/handlers/stockitem_handler.go
package handlers

import (
	"net/http"
	"strings"

	"fenestra/internal/application/usecase"
)

// StockItemHandler serves the shop listing (public, read-only):
//
//	GET /stock-items
//	GET /stock-items/{id}
type StockItemHandler struct {
	uc *usecase.StockItemUsecase
}

func NewStockItemHandler(uc *usecase.StockItemUsecase) http.Handler {
	return &StockItemHandler{uc: uc}
}

func (h *StockItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/stock-items"), "/")
	if id == "" {
		items, err := h.uc.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	item, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
