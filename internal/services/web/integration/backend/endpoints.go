package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login/",
		body:   map[string]string{"email": strings.TrimSpace(email), "password": password},
	}, &out)
	return out, err
}

// ListNews returns every published article.
func (c *Client) ListNews(ctx context.Context) ([]NewsItem, error) {
	var out struct {
		News []NewsItem `json:"news" validate:"required,dive"`
	}
	if err := c.do(ctx, call{method: http.MethodGet, path: "/auth/get-all-news/"}, &out); err != nil {
		return nil, err
	}
	return out.News, nil
}

// GetNews returns one article by id or slug.
func (c *Client) GetNews(ctx context.Context, lookup NewsLookup) (NewsItem, error) {
	var out struct {
		News *NewsItem `json:"news" validate:"required"`
	}
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/get-news-detail/",
		body:   lookup,
		auth:   requestHasToken(ctx),
	}, &out)
	if err != nil {
		return NewsItem{}, err
	}
	return *out.News, nil
}

// DeleteNews deletes an article and returns the backend message.
func (c *Client) DeleteNews(ctx context.Context, newsID string) (string, error) {
	return c.mutate(ctx, "/auth/delete-news/", map[string]string{"news_id": newsID})
}

// SetNewsLike likes or unlikes an article for the caller.
func (c *Client) SetNewsLike(ctx context.Context, newsID string, like bool) (string, error) {
	path := "/auth/unlike-news/"
	if like {
		path = "/auth/like-news/"
	}
	return c.mutate(ctx, path, map[string]string{"news_id": newsID})
}

// ListDraftedEvents returns drafted events; mine restricts them to the caller.
func (c *Client) ListDraftedEvents(ctx context.Context, mine bool) ([]Event, error) {
	path := "/events/get-drafted-events/"
	if mine {
		path = "/events/get-my-drafted-events/"
	}
	var out struct {
		Events []Event `json:"drafted_events" validate:"required,dive"`
	}
	if err := c.do(ctx, call{method: http.MethodGet, path: path, auth: true}, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// DeleteEvent deletes a drafted event.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) (string, error) {
	return c.mutate(ctx, "/events/delete-event/", map[string]string{"event_id": eventID})
}

// ListCoupons returns every coupon.
func (c *Client) ListCoupons(ctx context.Context) ([]Coupon, error) {
	var out struct {
		Coupons []Coupon `json:"coupons" validate:"required,dive"`
	}
	if err := c.do(ctx, call{method: http.MethodGet, path: "/shop/get-all-coupons/", auth: true}, &out); err != nil {
		return nil, err
	}
	return out.Coupons, nil
}

// GetCoupon returns one coupon.
func (c *Client) GetCoupon(ctx context.Context, couponID string) (Coupon, error) {
	var out struct {
		Coupon *Coupon `json:"coupon_details" validate:"required"`
	}
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/shop/get-coupon-details/",
		body:   map[string]string{"coupon_id": couponID},
		auth:   true,
	}, &out)
	if err != nil {
		return Coupon{}, err
	}
	return *out.Coupon, nil
}

// EditCoupon updates a coupon.
func (c *Client) EditCoupon(ctx context.Context, edit CouponEdit) (string, error) {
	return c.mutate(ctx, "/shop/edit-coupon/", edit)
}

// DeleteCoupon deletes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, couponID string) (string, error) {
	return c.mutate(ctx, "/shop/delete-coupon/", map[string]string{"coupon_id": couponID})
}

// ValidateCoupon quotes a coupon against the given cart lines. Lines are
// only present when the backend prices the cart itself.
func (c *Client) ValidateCoupon(ctx context.Context, code string, items []CheckoutItem) (CouponQuote, []QuotedLine, error) {
	var out struct {
		Coupon    *CouponQuote `json:"coupon" validate:"required"`
		LineItems []QuotedLine `json:"line_items" validate:"dive"`
	}
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/shop/validate-coupon/",
		body:   map[string]any{"coupon_code": strings.TrimSpace(code), "items": items},
		auth:   requestHasToken(ctx),
	}, &out)
	if err != nil {
		return CouponQuote{}, nil, err
	}
	return *out.Coupon, out.LineItems, nil
}

// ListProducts returns the shop catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out struct {
		Products []Product `json:"products" validate:"required,dive"`
	}
	if err := c.do(ctx, call{method: http.MethodGet, path: "/shop/get-all-products/"}, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// BuyNow submits an order and returns the external payment URL. The
// idempotency key lets the backend collapse retried submissions.
func (c *Client) BuyNow(ctx context.Context, order CheckoutRequest, idempotencyKey string) (string, error) {
	var out struct {
		AuthorizationURL string `json:"authorization_url" validate:"required,url"`
	}
	rc := call{method: http.MethodPost, path: "/shop/buy-now/", body: order, auth: true}
	if key := strings.TrimSpace(idempotencyKey); key != "" {
		rc.headers = map[string]string{"Idempotency-Key": key}
	}
	if err := c.do(ctx, rc, &out); err != nil {
		return "", err
	}
	return out.AuthorizationURL, nil
}

// RespondInvite accepts or declines a team invite.
func (c *Client) RespondInvite(ctx context.Context, inviteID string, accept bool) (string, error) {
	action := "decline"
	if accept {
		action = "accept"
	}
	return c.mutate(ctx, "/team/respond-invite/"+url.PathEscape(inviteID)+"/", map[string]string{"action": action})
}

// GetTeam returns a team and its roster.
func (c *Client) GetTeam(ctx context.Context, teamID string) (Team, error) {
	var out struct {
		Team *Team `json:"team" validate:"required"`
	}
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/team/get-team-details/",
		body:   map[string]string{"team_id": teamID},
		auth:   requestHasToken(ctx),
	}, &out)
	if err != nil {
		return Team{}, err
	}
	return *out.Team, nil
}

// KickTeamMember removes a member from a team.
func (c *Client) KickTeamMember(ctx context.Context, teamID, memberID string) (string, error) {
	return c.mutate(ctx, "/team/kick-team-member/", map[string]string{"team_id": teamID, "member_id": memberID})
}
