package shop

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
	"github.com/shopspring/decimal"
)

type catalogPage struct {
	Query      listview.Query
	Page       listview.Page[Product]
	Empty      listview.Empty
	Categories []string
	Currency   string
	CartCount  int
}

type cartPage struct {
	Cart     Cart
	Totals   Totals
	Currency string
}

type checkoutPage struct {
	State       CheckoutState
	Totals      Totals
	Currency    string
	FieldErrors formvalidate.FieldErrors
	SubmitError string
}

func catalogView(page catalogPage, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "shop-catalog"),
		webtemplates.El("header", webtemplates.As("class", "page-header"),
			webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.title"))),
			webtemplates.El("a", webtemplates.As("class", "cart-link", "href", routepath.ShopCart),
				webtemplates.Text(webtemplates.T(loc, "web.shop.cart_count", page.CartCount)),
			),
		),
		webtemplates.ListFilters(webtemplates.FilterForm{
			Action:     routepath.ShopPrefix,
			Query:      page.Query,
			Categories: page.Categories,
		}, loc),
		webtemplates.ListEmpty(page.Empty, "web.shop.empty", loc),
		webtemplates.When(len(page.Page.Items) > 0, webtemplates.El("div", webtemplates.As("class", "product-grid"),
			webtemplates.Each(page.Page.Items, func(product Product) templ.Component {
				return productCard(product, page.Currency, loc)
			}),
		)),
		webtemplates.ListPagination(routepath.ShopPrefix, page.Query, page.Page, loc),
	)
}

func productCard(product Product, currency string, loc webtemplates.Localizer) templ.Component {
	var variantInput templ.Component
	switch len(product.Variants) {
	case 0:
	case 1:
		variantInput = webtemplates.HiddenInput("variant_id", product.Variants[0].ID)
	default:
		options := make([]templ.Component, 0, len(product.Variants))
		for _, variant := range product.Variants {
			options = append(options, webtemplates.El("option", webtemplates.As("value", variant.ID),
				webtemplates.Text(variant.Name+" · "+formatMoney(currency, variant.Price)),
			))
		}
		variantInput = webtemplates.El("label", nil,
			webtemplates.Text(webtemplates.T(loc, "web.shop.variant")),
			webtemplates.El("select", webtemplates.As("name", "variant_id"), options...),
		)
	}
	return webtemplates.El("article", webtemplates.As("class", "product-card"),
		webtemplates.When(product.ImageURL != "", webtemplates.El("img", webtemplates.As("src", product.ImageURL, "alt", product.Name, "loading", "lazy"))),
		webtemplates.El("h2", nil, webtemplates.Text(product.Name)),
		webtemplates.When(product.Category != "", webtemplates.El("p", webtemplates.As("class", "category"), webtemplates.Text(product.Category))),
		webtemplates.El("p", webtemplates.As("class", "price"), webtemplates.Text(formatMoney(currency, product.Price))),
		webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCartAdd),
			webtemplates.HiddenInput("product_id", product.ID),
			variantInput,
			webtemplates.Field(webtemplates.FormField{
				Name:  "quantity",
				Label: webtemplates.T(loc, "web.shop.quantity"),
				Type:  "number",
				Value: "1",
				Attrs: webtemplates.As("min", "1", "max", strconv.Itoa(MaxQuantity)),
			}),
			webtemplates.El("button", webtemplates.As("type", "submit", "class", "button"), webtemplates.Text(webtemplates.T(loc, "web.shop.add_to_cart"))),
		),
	)
}

func cartView(page cartPage, loc webtemplates.Localizer) templ.Component {
	if page.Cart.Empty() {
		return webtemplates.El("section", webtemplates.As("class", "shop-cart"),
			webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.cart_title"))),
			webtemplates.EmptyMessage(webtemplates.T(loc, "web.shop.cart_empty")),
			webtemplates.ButtonLink(routepath.ShopPrefix, webtemplates.T(loc, "web.shop.continue_shopping")),
		)
	}
	return webtemplates.El("section", webtemplates.As("class", "shop-cart"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.cart_title"))),
		cartTable(page.Cart, page.Currency, true, routepath.ShopCart, loc),
		couponForm(page.Cart, routepath.ShopCart, loc),
		totalsView(page.Totals, page.Currency, loc),
		webtemplates.El("div", webtemplates.As("class", "actions"),
			webtemplates.ButtonLink(routepath.ShopPrefix, webtemplates.T(loc, "web.shop.continue_shopping")),
			webtemplates.ButtonLink(routepath.ShopCheckout, webtemplates.T(loc, "web.shop.checkout_action")),
		),
	)
}

// cartTable lists cart lines. Editable tables carry quantity and remove
// forms that return to returnTo.
func cartTable(cart Cart, currency string, editable bool, returnTo string, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("table", webtemplates.As("class", "cart-lines"),
		webtemplates.El("thead", nil, webtemplates.El("tr", nil,
			webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.product"))),
			webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.unit_price"))),
			webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.quantity"))),
			webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.line_total"))),
			webtemplates.When(editable, webtemplates.El("th", nil)),
		)),
		webtemplates.El("tbody", nil, webtemplates.Each(cart.Items, func(item CartItem) templ.Component {
			name := item.ProductName
			if item.VariantName != "" {
				name += " (" + item.VariantName + ")"
			}
			var quantity templ.Component = webtemplates.Text(strconv.Itoa(item.Quantity))
			var remove templ.Component
			if editable {
				quantity = webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCartUpdate, "class", "inline"),
					webtemplates.HiddenInput("item_id", item.ID),
					webtemplates.HiddenInput("return", returnTo),
					webtemplates.El("input", webtemplates.As("type", "number", "name", "quantity", "value", strconv.Itoa(item.Quantity), "min", "1", "max", strconv.Itoa(MaxQuantity), "aria-label", webtemplates.T(loc, "web.shop.quantity"))),
					webtemplates.El("button", webtemplates.As("type", "submit", "class", "button"), webtemplates.Text(webtemplates.T(loc, "web.shop.update"))),
				)
				remove = webtemplates.El("td", nil, webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCartRemove, "class", "inline"),
					webtemplates.HiddenInput("item_id", item.ID),
					webtemplates.HiddenInput("return", returnTo),
					webtemplates.El("button", webtemplates.As("type", "submit", "class", "button link"), webtemplates.Text(webtemplates.T(loc, "web.shop.remove"))),
				))
			}
			return webtemplates.El("tr", webtemplates.As("id", "line-"+item.ID),
				webtemplates.El("td", nil, webtemplates.Text(name)),
				webtemplates.El("td", nil, webtemplates.Text(formatMoney(currency, item.UnitPrice))),
				webtemplates.El("td", nil, quantity),
				webtemplates.El("td", webtemplates.As("class", "line-total"), webtemplates.Text(formatMoney(currency, LineTotal(item)))),
				remove,
			)
		})),
	)
}

func couponForm(cart Cart, returnTo string, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCartCoupon, "class", "coupon-form"),
		webtemplates.HiddenInput("return", returnTo),
		webtemplates.Field(webtemplates.FormField{
			Name:  "coupon_code",
			Label: webtemplates.T(loc, "web.shop.coupon_code"),
			Value: cart.CouponCode,
		}),
		webtemplates.El("button", webtemplates.As("type", "submit", "class", "button"), webtemplates.Text(webtemplates.T(loc, "web.shop.apply_coupon"))),
		webtemplates.When(cart.CouponCode != "", webtemplates.El("p", webtemplates.As("class", "coupon-applied"),
			webtemplates.Text(webtemplates.T(loc, "web.shop.coupon_applied", cart.CouponCode, cart.DiscountPercent.String())),
		)),
	)
}

func totalsView(totals Totals, currency string, loc webtemplates.Localizer) templ.Component {
	row := func(key string, amount decimal.Decimal, class string) templ.Component {
		return webtemplates.Group(
			webtemplates.El("dt", nil, webtemplates.Text(webtemplates.T(loc, key))),
			webtemplates.El("dd", webtemplates.As("class", class), webtemplates.Text(formatMoney(currency, amount))),
		)
	}
	return webtemplates.El("dl", webtemplates.As("class", "totals"),
		row("web.shop.subtotal", totals.Subtotal, "subtotal"),
		webtemplates.When(totals.Discount.IsPositive(), row("web.shop.discount", totals.Discount.Neg(), "discount")),
		row("web.shop.tax", totals.Tax, "tax"),
		row("web.shop.total", totals.Total, "total"),
	)
}

func checkoutView(page checkoutPage, loc webtemplates.Localizer) templ.Component {
	state := page.State
	draft := state.Draft
	var body templ.Component
	switch state.Current {
	case StepCart:
		body = webtemplates.Group(
			webtemplates.When(page.FieldErrors.Has("cart"), webtemplates.ErrorBanner(page.FieldErrors.Message(loc, "cart"))),
			webtemplates.When(!draft.Cart.Empty(), webtemplates.Group(
				cartTable(draft.Cart, page.Currency, true, routepath.ShopCheckout, loc),
				couponForm(draft.Cart, routepath.ShopCheckout, loc),
			)),
			totalsView(page.Totals, page.Currency, loc),
			stepActions(state, loc),
		)
	case StepDetails:
		body = detailsForm(draft.Details, page.FieldErrors, state, loc)
	default:
		body = webtemplates.Group(
			webtemplates.ErrorBanner(page.SubmitError),
			webtemplates.El("h2", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.review_items"))),
			cartTable(draft.Cart, page.Currency, false, "", loc),
			totalsView(page.Totals, page.Currency, loc),
			webtemplates.El("h2", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.review_details"))),
			detailsSummary(draft.Details, loc),
			webtemplates.El("div", webtemplates.As("class", "wizard-actions"),
				backButton(loc),
				webtemplates.When(checkoutWizard.IsFinal(state),
					webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCheckoutSubmit, "hx-post", routepath.ShopCheckoutSubmit, "hx-disabled-elt", "find button"),
						webtemplates.El("button", webtemplates.As("type", "submit", "class", "button primary"), webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.submit"))),
					),
				),
			),
		)
	}
	return webtemplates.El("section", webtemplates.As("class", "checkout", "data-step", checkoutWizard.StepName(state.Current)),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.title"))),
		stepIndicator(state.Current, loc),
		body,
	)
}

func stepIndicator(current int, loc webtemplates.Localizer) templ.Component {
	steps := make([]int, checkoutWizard.Steps())
	for idx := range steps {
		steps[idx] = idx + 1
	}
	return webtemplates.El("ol", webtemplates.As("class", "wizard-steps"),
		webtemplates.Each(steps, func(n int) templ.Component {
			attrs := webtemplates.As("class", "wizard-step")
			if n == current {
				attrs = webtemplates.As("class", "wizard-step current", "aria-current", "step")
			}
			return webtemplates.El("li", attrs, webtemplates.Text(strconv.Itoa(n)+". "+webtemplates.T(loc, stepLabelKey(n))))
		}),
	)
}

func detailsForm(details CustomerDetails, errs formvalidate.FieldErrors, state CheckoutState, loc webtemplates.Localizer) templ.Component {
	field := func(name, inputType, value string) templ.Component {
		return webtemplates.Field(webtemplates.FormField{
			Name:     name,
			Label:    webtemplates.T(loc, "web.shop.details."+name),
			Type:     inputType,
			Value:    value,
			Error:    errs.Message(loc, name),
			Required: true,
		})
	}
	return webtemplates.Group(
		webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCheckoutNext, "class", "details-form", "novalidate", "novalidate"),
			field("first_name", "text", details.FirstName),
			field("last_name", "text", details.LastName),
			field("email", "email", details.Email),
			field("phone", "tel", details.Phone),
			field("address", "text", details.Address),
			field("city", "text", details.City),
			field("state", "text", details.State),
			field("postal_code", "text", details.PostalCode),
			webtemplates.El("button", webtemplates.As("type", "submit", "class", "button primary"), webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.next"))),
		),
		webtemplates.El("div", webtemplates.As("class", "wizard-actions"), backButton(loc)),
	)
}

func detailsSummary(details CustomerDetails, loc webtemplates.Localizer) templ.Component {
	row := func(name, value string) templ.Component {
		return webtemplates.Group(
			webtemplates.El("dt", nil, webtemplates.Text(webtemplates.T(loc, "web.shop.details."+name))),
			webtemplates.El("dd", nil, webtemplates.Text(value)),
		)
	}
	return webtemplates.El("dl", webtemplates.As("class", "details-summary"),
		row("first_name", details.FirstName),
		row("last_name", details.LastName),
		row("email", details.Email),
		row("phone", details.Phone),
		row("address", details.Address),
		row("city", details.City),
		row("state", details.State),
		row("postal_code", details.PostalCode),
	)
}

// stepActions renders back and next for steps without their own form.
func stepActions(state CheckoutState, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("div", webtemplates.As("class", "wizard-actions"),
		webtemplates.When(state.Current > 1, backButton(loc)),
		webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCheckoutNext),
			webtemplates.El("button", webtemplates.As("type", "submit", "class", "button primary"), webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.next"))),
		),
	)
}

func backButton(loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.ShopCheckoutBack),
		webtemplates.El("button", webtemplates.As("type", "submit", "class", "button"), webtemplates.Text(webtemplates.T(loc, "web.shop.checkout.back"))),
	)
}
