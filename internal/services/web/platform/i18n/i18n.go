// Package i18n resolves the request language and the message printer used by
// web templates.
package i18n

import (
	"net/http"
	"strings"

	platformi18n "github.com/arenahq/arena/internal/platform/i18n"
	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangCookie persists an explicit language choice.
	LangCookie = "arena_lang"
	// LangParam switches language for one request and persists the choice.
	LangParam = "lang"

	langCookieMaxAge = 365 * 24 * 60 * 60
)

// Localizer formats localized copy. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// ResolveLanguage returns an explicit language preference for a request, such
// as one stored on the signed-in profile.
type ResolveLanguage func(*http.Request) string

// ResolveTag picks the request language from the lang query parameter, then
// the resolver, then the language cookie, then Accept-Language.
func ResolveTag(r *http.Request, resolve ResolveLanguage) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag()
	}
	if tag, ok := queryTag(r); ok {
		return tag
	}
	if resolve != nil {
		if tag, ok := platformi18n.ParseTag(resolve(r)); ok {
			return tag
		}
	}
	if cookie, err := r.Cookie(LangCookie); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag
		}
	}
	return platformi18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}

// ResolveLocalizer returns the printer and language string for r. An explicit
// lang query parameter is persisted to the language cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolve ResolveLanguage) (Localizer, string) {
	tag := ResolveTag(r, resolve)
	if explicit, ok := queryTag(r); ok && w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     LangCookie,
			Value:    explicit.String(),
			Path:     "/",
			MaxAge:   langCookieMaxAge,
			HttpOnly: true,
			Secure:   requestmeta.IsHTTPSWithPolicy(r, requestmeta.SchemePolicy{}),
			SameSite: http.SameSiteLaxMode,
		})
	}
	return Printer(tag), tag.String()
}

// Printer returns a localizer for tag.
func Printer(tag language.Tag) Localizer {
	return message.NewPrinter(tag)
}

func queryTag(r *http.Request) (language.Tag, bool) {
	if r == nil || r.URL == nil {
		return language.Tag{}, false
	}
	value := strings.TrimSpace(r.URL.Query().Get(LangParam))
	if value == "" {
		return language.Tag{}, false
	}
	return platformi18n.ParseTag(value)
}
