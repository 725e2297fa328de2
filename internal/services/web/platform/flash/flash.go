// Package flash provides one-time web notices (toasts) persisted across
// redirects in a short-lived cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
)

// CookieName is the canonical cookie used for one-time web notices.
const CookieName = "arena_flash"

// maxMessageRunes bounds relayed backend text so the cookie stays small.
const maxMessageRunes = 280

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice stores one flash message. Message is literal text (usually relayed
// from the backend) and wins over Key, which is a localization key.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message,omitempty"`
}

// NoticeSuccess creates a success notice for the provided localization key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// NoticeError creates an error notice for the provided localization key.
func NoticeError(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

// WithMessage returns a copy of n carrying literal text.
func (n Notice) WithMessage(message string) Notice {
	n.Message = message
	return n
}

// Writer writes and clears notices under one scheme policy.
type Writer struct {
	Policy requestmeta.SchemePolicy
}

// Write stores a flash notice cookie for the next page render.
func (fw Writer) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, fw.Policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires any flash notice cookie.
func (fw Writer) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, fw.Policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ReadAndClear reads and clears the flash notice cookie.
func (fw Writer) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	fw.Clear(w, r)
	return decodeNotice(cookie.Value)
}

// Write stores a notice using the default scheme policy.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	Writer{}.Write(w, r, notice)
}

// ReadAndClear reads a notice using the default scheme policy.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	return Writer{}.ReadAndClear(w, r)
}

func decodeNotice(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalizeNotice(notice)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	notice.Message = truncate(strings.TrimSpace(notice.Message), maxMessageRunes)
	if notice.Key == "" && notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit-1]) + "…"
}
