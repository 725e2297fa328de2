package shop

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

// SessionState loads and saves per-browser shop state.
type SessionState interface {
	Ensure(http.ResponseWriter, *http.Request) (storage.Session, *http.Request, error)
	LoadSlot(context.Context, storage.Session, string, any) (bool, error)
	SaveSlot(context.Context, storage.Session, string, any) error
	ClearSlot(context.Context, storage.Session, string) error
}

const catalogPageSize = 9

type handlers struct {
	modulehandler.Base
	service service
	state   SessionState
}

func newHandlers(s service, state SessionState, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, state: state}
}

// loadCart returns the request's cart without creating a session.
func (h handlers) loadCart(r *http.Request) Cart {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return Cart{}
	}
	var cart Cart
	if _, err := h.state.LoadSlot(r.Context(), sess, session.SlotCart, &cart); err != nil {
		log.Printf("shop cart load failed session=%s err=%v", sess.ID, err)
		return Cart{}
	}
	return cart
}

// updateCart applies mutate to the session cart and saves the result.
func (h handlers) updateCart(w http.ResponseWriter, r *http.Request, mutate func(context.Context, Cart) (Cart, error)) (*http.Request, error) {
	sess, r, err := h.state.Ensure(w, r)
	if err != nil {
		return r, err
	}
	var cart Cart
	if _, err := h.state.LoadSlot(r.Context(), sess, session.SlotCart, &cart); err != nil {
		return r, err
	}
	next, err := mutate(r.Context(), cart)
	if err != nil {
		return r, err
	}
	return r, h.state.SaveSlot(r.Context(), sess, session.SlotCart, next)
}

func (h handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	products, err := h.service.listProducts(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	query := listview.ParseQuery(r.URL.Query())
	filtered := listview.Filter(products,
		listview.MatchText(query.Search,
			func(p Product) string { return p.Name },
			func(p Product) string { return p.Description },
		),
		listview.MatchEqual(query.Category, func(p Product) string { return p.Category }),
	)
	page := listview.Paginate(filtered, query.Page, catalogPageSize)
	h.WritePage(w, r, webtemplates.T(loc, "web.shop.title"), http.StatusOK, catalogView(catalogPage{
		Query:      query,
		Page:       page,
		Empty:      listview.EmptyState(len(products), len(filtered)),
		Categories: productCategories(products),
		Currency:   h.service.config.Currency,
		CartCount:  h.loadCart(r).Count(),
	}, loc))
}

func (h handlers) handleCart(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	cart := h.loadCart(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.shop.cart_title"), http.StatusOK, cartView(cartPage{
		Cart:     cart,
		Totals:   h.service.totals(cart),
		Currency: h.service.config.Currency,
	}, loc))
}

func (h handlers) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	quantity := formQuantity(r, 1)
	r, err := h.updateCart(w, r, func(ctx context.Context, cart Cart) (Cart, error) {
		return h.service.addToCart(ctx, cart, r.FormValue("product_id"), r.FormValue("variant_id"), quantity)
	})
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.shop.notice_added"), routepath.ShopCart)
}

func (h handlers) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	quantity := formQuantity(r, 0)
	r, err := h.updateCart(w, r, func(_ context.Context, cart Cart) (Cart, error) {
		return cart.SetQuantity(r.FormValue("item_id"), quantity)
	})
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.shop.notice_updated"), returnPath(r))
}

func (h handlers) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	r, err := h.updateCart(w, r, func(_ context.Context, cart Cart) (Cart, error) {
		return cart.Remove(r.FormValue("item_id")), nil
	})
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.shop.notice_removed"), returnPath(r))
}

// handleCartCoupon validates a coupon, from the cart page or the checkout
// cart step. A rejected coupon leaves the cart unchanged and reports the
// backend message as a toast.
func (h handlers) handleCartCoupon(w http.ResponseWriter, r *http.Request) {
	r, err := h.updateCart(w, r, func(ctx context.Context, cart Cart) (Cart, error) {
		return h.service.applyCoupon(ctx, cart, r.FormValue("coupon_code"))
	})
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		h.FlashAndRedirect(w, r, flash.NoticeError("").WithMessage(weberror.PublicMessage(loc, err)), returnPath(r))
		return
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.shop.notice_coupon_applied"), returnPath(r))
}

// formQuantity parses the quantity field, returning fallback when absent.
func formQuantity(r *http.Request, fallback int) int {
	raw := strings.TrimSpace(r.FormValue("quantity"))
	if raw == "" {
		return fallback
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return quantity
}

// returnPath is where a cart mutation lands: the checkout when posted from
// it, otherwise the cart page.
func returnPath(r *http.Request) string {
	if next := routepath.SafeNext(r.FormValue("return")); next == routepath.ShopCheckout {
		return next
	}
	return routepath.ShopCart
}

func productCategories(products []Product) []string {
	seen := map[string]bool{}
	var categories []string
	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		key := strings.ToLower(category)
		if category == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, category)
	}
	return categories
}
