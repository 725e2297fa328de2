package shop

import (
	"errors"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/platform/wizard"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
	"github.com/google/uuid"
)

// loadCheckout restores the wizard for the session, starting a new run when
// none is stored, and attaches the current cart.
func (h handlers) loadCheckout(w http.ResponseWriter, r *http.Request) (storage.Session, *http.Request, CheckoutState, error) {
	sess, r, err := h.state.Ensure(w, r)
	if err != nil {
		return sess, r, CheckoutState{}, err
	}
	var state CheckoutState
	found, err := h.state.LoadSlot(r.Context(), sess, session.SlotCheckout, &state)
	if err != nil {
		log.Printf("shop checkout load failed session=%s err=%v", sess.ID, err)
		found = false
	}
	if !found {
		state = startCheckout()
	}
	state = checkoutWizard.Normalize(state)
	if strings.TrimSpace(state.Draft.IdempotencyKey) == "" {
		state.Draft.IdempotencyKey = uuid.NewString()
	}
	var cart Cart
	if _, err := h.state.LoadSlot(r.Context(), sess, session.SlotCart, &cart); err != nil {
		return sess, r, state, err
	}
	state.Draft.Cart = cart
	return sess, r, state, nil
}

func (h handlers) saveCheckout(r *http.Request, sess storage.Session, state CheckoutState) error {
	return h.state.SaveSlot(r.Context(), sess, session.SlotCheckout, state)
}

func (h handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess, r, state, err := h.loadCheckout(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.saveCheckout(r, sess, state); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeCheckout(w, r, http.StatusOK, state, nil, "")
}

// handleCheckoutNext captures the details form when on that step, then
// validates and advances. Invalid input re-renders the same step.
func (h handlers) handleCheckoutNext(w http.ResponseWriter, r *http.Request) {
	sess, r, state, err := h.loadCheckout(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if state.Current == StepDetails {
		state.Draft.Details = detailsFromForm(r)
	}
	next, fieldErrs := checkoutWizard.Next(state)
	if err := h.saveCheckout(r, sess, next); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if len(fieldErrs) > 0 {
		h.writeCheckout(w, r, http.StatusUnprocessableEntity, next, fieldErrs, "")
		return
	}
	httpx.WriteRedirect(w, r, routepath.ShopCheckout)
}

func (h handlers) handleCheckoutBack(w http.ResponseWriter, r *http.Request) {
	sess, r, state, err := h.loadCheckout(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.saveCheckout(r, sess, checkoutWizard.Back(state)); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.ShopCheckout)
}

// handleCheckoutSubmit places the order once. On success the cart and wizard
// are cleared and the browser goes to the payment page; on failure every
// entered value stays so the user can retry with the same idempotency key.
func (h handlers) handleCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	sess, r, state, err := h.loadCheckout(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	paymentURL, _, err := wizard.Submit(r.Context(), checkoutWizard, state, h.service.placeOrder)
	if err != nil {
		var incomplete *wizard.IncompleteError
		switch {
		case errors.Is(err, wizard.ErrNotFinalStep):
			httpx.WriteRedirect(w, r, routepath.ShopCheckout)
		case errors.As(err, &incomplete):
			state.Current = incomplete.Step
			if saveErr := h.saveCheckout(r, sess, state); saveErr != nil {
				h.WriteError(w, r, saveErr)
				return
			}
			h.writeCheckout(w, r, http.StatusUnprocessableEntity, state, incomplete.Fields, "")
		default:
			loc, _ := h.PageLocalizer(w, r)
			status := apperrors.HTTPStatus(err)
			if status < http.StatusBadRequest {
				status = http.StatusInternalServerError
			}
			h.writeCheckout(w, r, status, state, nil, weberror.PublicMessage(loc, err))
		}
		return
	}
	for _, slot := range []string{session.SlotCart, session.SlotCheckout} {
		if err := h.state.ClearSlot(r.Context(), sess, slot); err != nil {
			log.Printf("shop checkout cleanup failed session=%s slot=%s err=%v", sess.ID, slot, err)
		}
	}
	httpx.WriteRedirect(w, r, paymentURL)
}

func (h handlers) writeCheckout(w http.ResponseWriter, r *http.Request, status int, state CheckoutState, fieldErrs formvalidate.FieldErrors, submitErr string) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.shop.checkout.title"), status, checkoutView(checkoutPage{
		State:       state,
		Totals:      h.service.totals(state.Draft.Cart),
		Currency:    h.service.config.Currency,
		FieldErrors: fieldErrs,
		SubmitError: submitErr,
	}, loc))
}

func detailsFromForm(r *http.Request) CustomerDetails {
	field := func(name string) string { return strings.TrimSpace(r.FormValue(name)) }
	return CustomerDetails{
		FirstName:  field("first_name"),
		LastName:   field("last_name"),
		Email:      field("email"),
		Phone:      field("phone"),
		Address:    field("address"),
		City:       field("city"),
		State:      field("state"),
		PostalCode: field("postal_code"),
	}
}
