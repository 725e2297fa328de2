package coupons

import (
	"context"
	"net/http"
	"time"

	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

const listPageSize = 10

type handlers struct {
	modulehandler.Base
	service service
	runner  *confirm.Runner
}

func newHandlers(s service, runner *confirm.Runner, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, runner: runner}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	query := listview.ParseQuery(r.URL.Query())
	coupons, err := h.service.listCoupons(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	now := h.service.now()
	filtered := listview.Filter(coupons,
		listview.MatchText(query.Search, func(c Coupon) string { return c.Code }),
		listview.MatchEqual(query.Category, func(c Coupon) string { return c.Status(now) }),
		listview.MatchDay(query.Day(), time.UTC, func(c Coupon) time.Time { return c.ValidUntil }),
	)
	h.WritePage(w, r, webtemplates.T(loc, "web.coupons.title"), http.StatusOK, listView(listPage{
		Query: query,
		Page:  listview.Paginate(filtered, query.Page, listPageSize),
		Empty: listview.EmptyState(len(coupons), len(filtered)),
		Now:   now,
	}, loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	coupon, err := h.service.coupon(r.Context(), r.PathValue("couponID"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, coupon.Code, http.StatusOK, detailView(coupon, h.service.now(), loc))
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.service.coupon(r.Context(), r.PathValue("couponID"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeEdit(w, r, http.StatusOK, editPage{ID: coupon.ID, Form: formFor(coupon)})
}

func (h handlers) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	couponID := r.PathValue("couponID")
	form := EditForm{
		Code:       r.FormValue("code"),
		Discount:   r.FormValue("discount_percentage"),
		UsageLimit: r.FormValue("usage_limit"),
		Active:     r.FormValue("is_active") != "",
		ValidUntil: r.FormValue("valid_until"),
	}
	msg, problems, err := h.service.editCoupon(r.Context(), couponID, form)
	if problems != nil {
		h.writeEdit(w, r, http.StatusUnprocessableEntity, editPage{ID: couponID, Form: form, FieldErrors: problems})
		return
	}
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		h.writeEdit(w, r, apperrors.HTTPStatus(err), editPage{ID: couponID, Form: form, Error: weberror.PublicMessage(loc, err)})
		return
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.coupons.notice_updated").WithMessage(msg), routepath.AppCoupon(couponID))
}

func (h handlers) writeEdit(w http.ResponseWriter, r *http.Request, status int, page editPage) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.coupons.edit_title"), status, editView(page, loc))
}

func (h handlers) handleDeleteDialog(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeDialog(w, r, h, h.deleteAction(w, r))
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeConfirm(w, r, h, h.deleteAction(w, r))
}

func (h handlers) deleteAction(w http.ResponseWriter, r *http.Request) confirm.Action {
	loc, _ := h.PageLocalizer(w, r)
	couponID := r.PathValue("couponID")
	return confirm.Action{
		Key: "coupon:delete:" + couponID,
		Dialog: confirm.NewDialog(loc,
			webtemplates.T(loc, "web.coupons.delete_title"),
			webtemplates.T(loc, "web.coupons.delete_body"),
			routepath.AppCouponDelete(couponID),
			routepath.AppCoupons,
		),
		Run: func(ctx context.Context) (string, error) {
			return h.service.deleteCoupon(ctx, couponID)
		},
		SuccessKey: "web.coupons.notice_deleted",
		Redirect:   routepath.AppCoupons,
	}
}
