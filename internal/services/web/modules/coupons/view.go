package coupons

import (
	"time"

	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

var statuses = []string{StatusActive, StatusInactive, StatusExpired, StatusExhausted}

type listPage struct {
	Query listview.Query
	Page  listview.Page[Coupon]
	Empty listview.Empty
	Now   time.Time
}

type editPage struct {
	ID          string
	Form        EditForm
	FieldErrors formvalidate.FieldErrors
	Error       string
}

func listView(page listPage, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "admin-coupons"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.coupons.title"))),
		webtemplates.ListFilters(webtemplates.FilterForm{
			Action:     routepath.AppCoupons,
			Query:      page.Query,
			Categories: statuses,
			ShowDate:   true,
		}, loc),
		webtemplates.ListEmpty(page.Empty, "web.coupons.empty", loc),
		webtemplates.When(len(page.Page.Items) > 0, webtemplates.El("table", webtemplates.As("class", "data-table"),
			webtemplates.El("thead", nil, webtemplates.El("tr", nil,
				th(loc, "web.coupons.col_code"),
				th(loc, "web.coupons.col_discount"),
				th(loc, "web.coupons.col_usage"),
				th(loc, "web.coupons.col_valid_until"),
				th(loc, "web.coupons.col_status"),
				webtemplates.El("th", nil),
			)),
			webtemplates.El("tbody", nil, webtemplates.Each(page.Page.Items, func(c Coupon) templ.Component {
				return row(c, page.Now, loc)
			})),
		)),
		webtemplates.ListPagination(routepath.AppCoupons, page.Query, page.Page, loc),
	)
}

func th(loc webtemplates.Localizer, key string) templ.Component {
	return webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, key)))
}

func row(c Coupon, now time.Time, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("tr", nil,
		webtemplates.El("td", nil, webtemplates.El("a", webtemplates.As("href", routepath.AppCoupon(c.ID)), webtemplates.Text(c.Code))),
		webtemplates.El("td", nil, webtemplates.Text(c.Discount.String()+"%")),
		webtemplates.El("td", nil, webtemplates.Text(usage(c, loc))),
		webtemplates.El("td", nil, webtemplates.Text(formatDate(c.ValidUntil))),
		webtemplates.El("td", nil, webtemplates.Text(webtemplates.T(loc, "web.coupons.status."+c.Status(now)))),
		webtemplates.El("td", nil, webtemplates.ModalTrigger(routepath.AppCouponDelete(c.ID), webtemplates.T(loc, "web.confirm.delete"))),
	)
}

func usage(c Coupon, loc webtemplates.Localizer) string {
	if c.UsageLimit <= 0 {
		return webtemplates.T(loc, "web.coupons.usage_unlimited", c.TimesUsed)
	}
	return webtemplates.T(loc, "web.coupons.usage_limited", c.TimesUsed, c.UsageLimit)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func detailView(c Coupon, now time.Time, loc webtemplates.Localizer) templ.Component {
	item := func(key, value string) templ.Component {
		return webtemplates.Group(
			webtemplates.El("dt", nil, webtemplates.Text(webtemplates.T(loc, key))),
			webtemplates.El("dd", nil, webtemplates.Text(value)),
		)
	}
	return webtemplates.El("section", webtemplates.As("class", "coupon-detail"),
		webtemplates.El("h1", nil, webtemplates.Text(c.Code)),
		webtemplates.El("dl", nil,
			item("web.coupons.col_discount", c.Discount.String()+"%"),
			item("web.coupons.col_usage", usage(c, loc)),
			item("web.coupons.col_valid_from", formatDate(c.ValidFrom)),
			item("web.coupons.col_valid_until", formatDate(c.ValidUntil)),
			item("web.coupons.col_status", webtemplates.T(loc, "web.coupons.status."+c.Status(now))),
		),
		webtemplates.El("div", webtemplates.As("class", "actions"),
			webtemplates.ButtonLink(routepath.AppCouponEdit(c.ID), webtemplates.T(loc, "web.coupons.edit")),
			webtemplates.ModalTrigger(routepath.AppCouponDelete(c.ID), webtemplates.T(loc, "web.confirm.delete")),
			webtemplates.El("a", webtemplates.As("href", routepath.AppCoupons), webtemplates.Text(webtemplates.T(loc, "web.coupons.back"))),
		),
	)
}

func editView(page editPage, loc webtemplates.Localizer) templ.Component {
	action := routepath.AppCouponEdit(page.ID)
	activeAttrs := webtemplates.As("id", "field-is_active", "type", "checkbox", "name", "is_active", "value", "true")
	if page.Form.Active {
		activeAttrs = append(activeAttrs, webtemplates.Flag("checked"))
	}
	return webtemplates.El("section", webtemplates.As("class", "coupon-edit"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.coupons.edit_title"))),
		webtemplates.ErrorBanner(page.Error),
		webtemplates.El("form", webtemplates.As("method", "post", "action", action, "novalidate", "novalidate"),
			webtemplates.Field(webtemplates.FormField{
				Name:     "code",
				Label:    webtemplates.T(loc, "web.coupons.col_code"),
				Value:    page.Form.Code,
				Error:    page.FieldErrors.Message(loc, "code"),
				Required: true,
			}),
			webtemplates.Field(webtemplates.FormField{
				Name:     "discount_percentage",
				Label:    webtemplates.T(loc, "web.coupons.col_discount"),
				Type:     "number",
				Value:    page.Form.Discount,
				Error:    page.FieldErrors.Message(loc, "discount_percentage"),
				Required: true,
				Attrs:    webtemplates.As("min", "0", "max", "100", "step", "0.01"),
			}),
			webtemplates.Field(webtemplates.FormField{
				Name:  "usage_limit",
				Label: webtemplates.T(loc, "web.coupons.usage_limit"),
				Type:  "number",
				Value: page.Form.UsageLimit,
				Error: page.FieldErrors.Message(loc, "usage_limit"),
				Attrs: webtemplates.As("min", "0", "step", "1"),
			}),
			webtemplates.Field(webtemplates.FormField{
				Name:  "valid_until",
				Label: webtemplates.T(loc, "web.coupons.col_valid_until"),
				Type:  "date",
				Value: page.Form.ValidUntil,
				Error: page.FieldErrors.Message(loc, "valid_until"),
			}),
			webtemplates.El("div", webtemplates.As("class", "field checkbox"),
				webtemplates.El("input", activeAttrs),
				webtemplates.El("label", webtemplates.As("for", "field-is_active"), webtemplates.Text(webtemplates.T(loc, "web.coupons.is_active"))),
			),
			webtemplates.El("div", webtemplates.As("class", "actions"),
				webtemplates.El("button", webtemplates.As("type", "submit", "class", "button primary"), webtemplates.Text(webtemplates.T(loc, "web.coupons.save"))),
				webtemplates.El("a", webtemplates.As("href", routepath.AppCoupon(page.ID)), webtemplates.Text(webtemplates.T(loc, "web.confirm.cancel"))),
			),
		),
	)
}
