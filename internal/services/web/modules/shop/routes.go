package shop

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	signedIn := func(fn http.HandlerFunc) http.Handler { return session.RequireSignedIn(fn) }

	mux.HandleFunc(http.MethodGet+" "+routepath.ShopPrefix+"{$}", h.handleCatalog)
	mux.HandleFunc(http.MethodGet+" "+routepath.ShopCart, h.handleCart)
	mux.HandleFunc(http.MethodPost+" "+routepath.ShopCartAdd, h.handleCartAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.ShopCartUpdate, h.handleCartUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.ShopCartRemove, h.handleCartRemove)
	mux.HandleFunc(http.MethodPost+" "+routepath.ShopCartCoupon, h.handleCartCoupon)
	for _, path := range []string{routepath.ShopCartAdd, routepath.ShopCartUpdate, routepath.ShopCartRemove, routepath.ShopCartCoupon} {
		mux.HandleFunc(http.MethodGet+" "+path, httpx.MethodNotAllowed(http.MethodPost))
	}

	mux.Handle(http.MethodGet+" "+routepath.ShopCheckout, signedIn(h.handleCheckout))
	mux.Handle(http.MethodPost+" "+routepath.ShopCheckoutNext, signedIn(h.handleCheckoutNext))
	mux.Handle(http.MethodPost+" "+routepath.ShopCheckoutBack, signedIn(h.handleCheckoutBack))
	mux.Handle(http.MethodPost+" "+routepath.ShopCheckoutSubmit, signedIn(h.handleCheckoutSubmit))
	mux.HandleFunc(http.MethodGet+" "+routepath.ShopPrefix+"{rest...}", h.WriteNotFound)
}
