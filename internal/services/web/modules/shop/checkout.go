package shop

import (
	"strconv"

	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/arenahq/arena/internal/services/web/platform/wizard"
	"github.com/google/uuid"
)

// Checkout steps, 1-based.
const (
	StepCart = iota + 1
	StepDetails
	StepReview
)

// CustomerDetails is the details step form.
type CustomerDetails struct {
	FirstName  string `json:"first_name" form:"first_name" validate:"required,max=80"`
	LastName   string `json:"last_name" form:"last_name" validate:"required,max=80"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Phone      string `json:"phone" form:"phone" validate:"required,phone_digits"`
	Address    string `json:"address" form:"address" validate:"required,max=200"`
	City       string `json:"city" form:"city" validate:"required,max=80"`
	State      string `json:"state" form:"state" validate:"required,max=80"`
	PostalCode string `json:"postal_code" form:"postal_code" validate:"required,max=12"`
}

// CheckoutDraft is the data the checkout wizard collects. The cart lives in
// its own session slot and is attached on every request.
type CheckoutDraft struct {
	Cart           Cart            `json:"-"`
	Details        CustomerDetails `json:"details"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// CheckoutState is the persisted checkout wizard.
type CheckoutState = wizard.State[CheckoutDraft]

var checkoutWizard = wizard.New(
	wizard.Step[CheckoutDraft]{Name: "cart", Validate: validateCartStep},
	wizard.Step[CheckoutDraft]{Name: "details", Validate: validateDetailsStep},
	wizard.Step[CheckoutDraft]{Name: "review"},
)

// startCheckout begins a wizard run with its own idempotency key, which every
// submission retry of this run reuses.
func startCheckout() CheckoutState {
	return checkoutWizard.Start(CheckoutDraft{IdempotencyKey: uuid.NewString()})
}

func validateCartStep(draft CheckoutDraft) formvalidate.FieldErrors {
	var errs formvalidate.FieldErrors
	if draft.Cart.Empty() {
		errs = errs.Add("cart", "web.shop.cart_empty")
	}
	for _, item := range draft.Cart.Items {
		if item.Quantity < 1 || item.Quantity > MaxQuantity {
			errs = errs.Add("quantity-"+item.ID, "web.shop.error.quantity_invalid")
		}
	}
	return errs
}

func validateDetailsStep(draft CheckoutDraft) formvalidate.FieldErrors {
	return formvalidate.Struct(draft.Details)
}

// stepLabelKey returns the localization key naming step n.
func stepLabelKey(n int) string {
	name := checkoutWizard.StepName(n)
	if name == "" {
		return "web.shop.checkout.step_" + strconv.Itoa(n)
	}
	return "web.shop.checkout.step_" + name
}
