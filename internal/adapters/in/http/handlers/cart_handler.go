// backend/internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"net/http"
	"strings"

	"fenestra/internal/adapters/in/http/middleware"
	"fenestra/internal/application/usecase"
	orderdom "fenestra/internal/domain/order"
)

// CartHandler serves the shop cart and checkout (auth required):
//
//	GET    /cart
//	POST   /cart/items                 {stockItemId, qty}
//	PUT    /cart/items/{stockItemId}   {qty}
//	DELETE /cart/items/{stockItemId}
//	POST   /cart/checkout
type CartHandler struct {
	carts    *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
}

func NewCartHandler(carts *usecase.CartUsecase, checkout *usecase.CheckoutUsecase) http.Handler {
	return &CartHandler{carts: carts, checkout: checkout}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/cart"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case r.Method == http.MethodGet && rest == "":
		h.get(w, r, owner)

	case r.Method == http.MethodPost && rest == "items":
		h.addItem(w, r, owner)

	case r.Method == http.MethodPut && len(parts) == 2 && parts[0] == "items":
		h.setQty(w, r, owner, parts[1])

	case r.Method == http.MethodDelete && len(parts) == 2 && parts[0] == "items":
		h.removeItem(w, r, owner, parts[1])

	case r.Method == http.MethodPost && rest == "checkout":
		h.doCheckout(w, r, owner)

	default:
		notFound(w)
	}
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request, owner string) {
	c, err := h.carts.GetOrCreate(r.Context(), owner)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, owner string) {
	var req struct {
		StockItemID string `json:"stockItemId"`
		Qty         int    `json:"qty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Qty <= 0 {
		req.Qty = 1
	}

	c, err := h.carts.AddItem(r.Context(), owner, req.StockItemID, req.Qty)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) setQty(w http.ResponseWriter, r *http.Request, owner, stockItemID string) {
	var req struct {
		Qty int `json:"qty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.carts.SetQty(r.Context(), owner, stockItemID, req.Qty)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request, owner, stockItemID string) {
	c, err := h.carts.RemoveItem(r.Context(), owner, stockItemID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) doCheckout(w http.ResponseWriter, r *http.Request, owner string) {
	var req struct {
		Method   string                `json:"method"`
		Customer orderdom.CustomerInfo `json:"customer"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	conf, err := h.checkout.Checkout(r.Context(), owner, req.Customer, orderdom.DeliveryMethod(req.Method))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}
