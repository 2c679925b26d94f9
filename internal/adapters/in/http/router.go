// backend/internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"fenestra/internal/adapters/in/http/handlers"
	"fenestra/internal/adapters/in/http/middleware"
	usecase "fenestra/internal/application/usecase"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUsecase
	StockUC    *usecase.StockItemUsecase
	QuoteUC    *usecase.QuoteUsecase
	PhotoUC    *usecase.PhotoUsecase
	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase
	ProfileUC  *usecase.ProfileUsecase

	// Auth wraps customer routes. Catalog, schema and stock remain public
	// so the marketing pages work without a session.
	Auth *middleware.AuthMiddleware
}

// NewRouter wires the public and authenticated route groups and applies
// the outer middleware chain (panic recovery, CORS).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Public routes.
	if deps.CatalogUC != nil {
		mux.Handle("/catalog/", handlers.NewCatalogHandler(deps.CatalogUC))
		mux.Handle("/configurator/schema", handlers.NewSchemaHandler(deps.CatalogUC))
	}

	if deps.StockUC != nil {
		stock := handlers.NewStockItemHandler(deps.StockUC)
		mux.Handle("/stock-items", stock)
		mux.Handle("/stock-items/", stock)
	}

	// Authenticated routes.
	authed := func(h http.Handler) http.Handler {
		if deps.Auth == nil {
			return h
		}
		return deps.Auth.Handler(h)
	}

	if deps.PhotoUC != nil {
		photos := authed(handlers.NewPhotoHandler(deps.PhotoUC))
		mux.Handle("/photos", photos)
		mux.Handle("/photos/", photos)
	}

	if deps.QuoteUC != nil {
		quotes := authed(handlers.NewQuoteHandler(deps.QuoteUC))
		mux.Handle("/quotes", quotes)
		mux.Handle("/quotes/", quotes)
	}

	if deps.CartUC != nil && deps.CheckoutUC != nil {
		cart := authed(handlers.NewCartHandler(deps.CartUC, deps.CheckoutUC))
		mux.Handle("/cart", cart)
		mux.Handle("/cart/", cart)
	}

	if deps.ProfileUC != nil {
		mux.Handle("/profile", authed(handlers.NewProfileHandler(deps.ProfileUC)))
	}

	return middleware.Recover(middleware.CORS(mux))
}
