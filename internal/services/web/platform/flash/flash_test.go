package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
)

func roundTrip(t *testing.T, writer Writer, notice Notice) (Notice, bool, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/app/coupons", nil)
	writeRR := httptest.NewRecorder()
	writer.Write(writeRR, req, notice)
	header := writeRR.Header().Get("Set-Cookie")
	if header == "" {
		return Notice{}, false, writeRR
	}
	cookie, err := http.ParseSetCookie(header)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)
	readRR := httptest.NewRecorder()
	got, ok := writer.ReadAndClear(readRR, req)
	return got, ok, readRR
}

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	notice, ok, readRR := roundTrip(t, Writer{}, NoticeSuccess("web.coupons.notice_deleted"))
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess || notice.Key != "web.coupons.notice_deleted" {
		t.Fatalf("notice = %+v", notice)
	}
	cleared := readRR.Header().Get("Set-Cookie")
	if !strings.Contains(cleared, "Max-Age=0") {
		t.Fatalf("expected clearing cookie, got %q", cleared)
	}
}

func TestMessageRoundTripsAndIsTruncated(t *testing.T) {
	t.Parallel()

	notice, ok, _ := roundTrip(t, Writer{}, NoticeError("errors.generic").WithMessage("Coupon already expired"))
	if !ok || notice.Message != "Coupon already expired" {
		t.Fatalf("notice = %+v, ok = %v", notice, ok)
	}

	long := strings.Repeat("x", 400)
	notice, ok, _ = roundTrip(t, Writer{}, Notice{Kind: KindInfo, Message: long})
	if !ok {
		t.Fatal("expected notice")
	}
	if got := len([]rune(notice.Message)); got != maxMessageRunes {
		t.Fatalf("message runes = %d, want %d", got, maxMessageRunes)
	}
}

func TestWriteSkipsInvalidNotices(t *testing.T) {
	t.Parallel()

	if _, ok, _ := roundTrip(t, Writer{}, Notice{Kind: KindSuccess}); ok {
		t.Fatal("expected empty notice to be skipped")
	}
	if _, ok, _ := roundTrip(t, Writer{}, Notice{Kind: "loud", Key: "k"}); ok {
		t.Fatal("expected unknown kind to be skipped")
	}
}

func TestWriteHonoursSchemePolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Writer{Policy: requestmeta.SchemePolicy{TrustForwardedProto: true}}.Write(rr, req, NoticeSuccess("k"))
	if !strings.Contains(rr.Header().Get("Set-Cookie"), "Secure") {
		t.Fatalf("expected Secure cookie, got %q", rr.Header().Get("Set-Cookie"))
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "!!!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Fatal("expected garbage cookie to be rejected")
	}
}
