package coupons

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCoupons, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.CouponsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCouponPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCouponEditPattern, h.handleEdit)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCouponEditPattern, h.handleEditSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCouponDeletePattern, h.handleDeleteDialog)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCouponDeletePattern, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.CouponsPrefix+"{rest...}", h.WriteNotFound)
}
