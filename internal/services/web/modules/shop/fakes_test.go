package shop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
	"github.com/shopspring/decimal"
)

// fakeGateway implements ShopGateway with configurable results and call
// tracking.
type fakeGateway struct {
	mu         sync.Mutex
	products   []Product
	listErr    error
	quote      CouponQuote
	couponErr  error
	paymentURL string
	buyErr     error
	buyCalls   int
	buyKeys    []string
	lastOrder  Order
}

var _ ShopGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListProducts(context.Context) ([]Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeGateway) ValidateCoupon(_ context.Context, code string, _ []OrderLine) (CouponQuote, error) {
	if f.couponErr != nil {
		return CouponQuote{}, f.couponErr
	}
	quote := f.quote
	if quote.Code == "" {
		quote.Code = code
	}
	return quote, nil
}

func (f *fakeGateway) BuyNow(_ context.Context, order Order, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buyCalls++
	f.buyKeys = append(f.buyKeys, key)
	f.lastOrder = order
	if f.buyErr != nil {
		return "", f.buyErr
	}
	return f.paymentURL, nil
}

func testCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Team Jersey", Category: "Apparel", Price: decimal.NewFromInt(100), Variants: []Variant{
			{ID: "v-m", Name: "M", Price: decimal.NewFromInt(100)},
			{ID: "v-l", Name: "L", Price: decimal.NewFromInt(110)},
		}},
		{ID: "p2", Name: "Mouse Pad", Category: "Gear", Price: decimal.RequireFromString("25.50")},
		{ID: "p3", Name: "Cap", Category: "Apparel", Price: decimal.NewFromInt(40)},
	}
}

// fakeState is a single-session SessionState backed by a map.
type fakeState struct {
	mu    sync.Mutex
	sess  storage.Session
	slots map[string][]byte
}

var _ SessionState = (*fakeState)(nil)

func newFakeState(signedIn bool) *fakeState {
	sess := storage.Session{ID: "sess-1"}
	if signedIn {
		sess.UserID = "user-1"
		sess.Username = "ana"
		sess.AccessToken = "token-1"
	}
	return &fakeState{sess: sess, slots: map[string][]byte{}}
}

func (f *fakeState) Ensure(_ http.ResponseWriter, r *http.Request) (storage.Session, *http.Request, error) {
	return f.sess, r.WithContext(session.WithSession(r.Context(), f.sess)), nil
}

func (f *fakeState) LoadSlot(_ context.Context, _ storage.Session, slot string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.slots[slot]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(payload, dst)
}

func (f *fakeState) SaveSlot(_ context.Context, _ storage.Session, slot string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[slot] = payload
	return nil
}

func (f *fakeState) ClearSlot(_ context.Context, _ storage.Session, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.slots, slot)
	return nil
}

func (f *fakeState) cart() Cart {
	var cart Cart
	_, _ = f.LoadSlot(context.Background(), f.sess, session.SlotCart, &cart)
	return cart
}

func (f *fakeState) checkout() (CheckoutState, bool) {
	var state CheckoutState
	ok, _ := f.LoadSlot(context.Background(), f.sess, session.SlotCheckout, &state)
	return state, ok
}

// request builds a request carrying the fake session.
func (f *fakeState) request(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(session.WithSession(req.Context(), f.sess))
}
