// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Login  = "/login"
	Logout = "/logout"
	Health = "/up"

	NewsPrefix        = "/news/"
	NewsPattern       = NewsPrefix + "{slug}"
	NewsLikePattern   = NewsPrefix + "{newsID}/like"
	NewsUnlikePattern = NewsPrefix + "{newsID}/unlike"

	ShopPrefix         = "/shop/"
	ShopCart           = "/shop/cart"
	ShopCartAdd        = "/shop/cart/add"
	ShopCartUpdate     = "/shop/cart/update"
	ShopCartRemove     = "/shop/cart/remove"
	ShopCartCoupon     = "/shop/cart/coupon"
	ShopCheckout       = "/shop/checkout"
	ShopCheckoutNext   = "/shop/checkout/next"
	ShopCheckoutBack   = "/shop/checkout/back"
	ShopCheckoutSubmit = "/shop/checkout/submit"

	InvitesPrefix        = "/invites/"
	InvitePattern        = InvitesPrefix + "{inviteID}"
	InviteAcceptPattern  = InvitesPrefix + "{inviteID}/accept"
	InviteDeclinePattern = InvitesPrefix + "{inviteID}/decline"

	TeamsPrefix = "/teams/"
	TeamPattern = TeamsPrefix + "{teamID}"

	AppPrefix         = "/app/"
	AppDashboard      = "/app/dashboard"
	DashboardPrefix   = "/app/dashboard/"
	AppDashboardStats = DashboardPrefix + "stats"

	AppNews              = "/app/news"
	AdminNewsPrefix      = "/app/news/"
	AppNewsDeletePattern = AdminNewsPrefix + "{newsID}/delete"

	AppEvents             = "/app/events"
	EventsPrefix          = "/app/events/"
	AppEventDeletePattern = EventsPrefix + "{eventID}/delete"

	AppCoupons             = "/app/coupons"
	CouponsPrefix          = "/app/coupons/"
	AppCouponPattern       = CouponsPrefix + "{couponID}"
	AppCouponEditPattern   = CouponsPrefix + "{couponID}/edit"
	AppCouponDeletePattern = CouponsPrefix + "{couponID}/delete"

	AppTeamsPrefix     = "/app/teams/"
	AppTeamPattern     = AppTeamsPrefix + "{teamID}"
	AppTeamKickPattern = AppTeamsPrefix + "{teamID}/members/{memberID}/kick"

	// NextQueryKey carries the post-login destination.
	NextQueryKey = "next"
)

// LoginWithNext returns the login route that returns to next after sign-in.
// Only local absolute paths are kept.
func LoginWithNext(next string) string {
	next = SafeNext(next)
	if next == "" || next == Root {
		return Login
	}
	return Login + "?" + url.Values{NextQueryKey: []string{next}}.Encode()
}

// SafeNext returns next when it is a local absolute path, otherwise "".
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return ""
	}
	return next
}

// News returns the public article route.
func News(slug string) string {
	return NewsPrefix + escapeSegment(slug)
}

// NewsLike returns the like action route for an article.
func NewsLike(newsID string) string {
	return NewsPrefix + escapeSegment(newsID) + "/like"
}

// NewsUnlike returns the unlike action route for an article.
func NewsUnlike(newsID string) string {
	return NewsPrefix + escapeSegment(newsID) + "/unlike"
}

// Invite returns the invite response page.
func Invite(inviteID string) string {
	return InvitesPrefix + escapeSegment(inviteID)
}

// InviteAccept returns the invite accept action.
func InviteAccept(inviteID string) string {
	return Invite(inviteID) + "/accept"
}

// InviteDecline returns the invite decline action.
func InviteDecline(inviteID string) string {
	return Invite(inviteID) + "/decline"
}

// Team returns the public team page.
func Team(teamID string) string {
	return TeamsPrefix + escapeSegment(teamID)
}

// AppTeam returns the team roster management page.
func AppTeam(teamID string) string {
	return AppTeamsPrefix + escapeSegment(teamID)
}

// AppTeamKick returns the kick-member confirm route.
func AppTeamKick(teamID, memberID string) string {
	return AppTeam(teamID) + "/members/" + escapeSegment(memberID) + "/kick"
}

// AppNewsDelete returns the delete-article confirm route.
func AppNewsDelete(newsID string) string {
	return AdminNewsPrefix + escapeSegment(newsID) + "/delete"
}

// AppEventDelete returns the delete-event confirm route.
func AppEventDelete(eventID string) string {
	return EventsPrefix + escapeSegment(eventID) + "/delete"
}

// AppCoupon returns the coupon detail route.
func AppCoupon(couponID string) string {
	return CouponsPrefix + escapeSegment(couponID)
}

// AppCouponEdit returns the coupon edit route.
func AppCouponEdit(couponID string) string {
	return AppCoupon(couponID) + "/edit"
}

// AppCouponDelete returns the delete-coupon confirm route.
func AppCouponDelete(couponID string) string {
	return AppCoupon(couponID) + "/delete"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
