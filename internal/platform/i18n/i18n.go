// Package i18n defines the locales arena supports and how loose language
// input is normalized onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	// Registers embedded catalogs with x/text/message on import.
	_ "github.com/arenahq/arena/internal/platform/i18n/catalog"
)

var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("pt-BR"),
}

var matcher = language.NewMatcher(supportedTags)

// DefaultTag is the locale used when nothing better matches.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// SupportedTags returns a copy of the supported locale tags in display order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses one explicit locale value such as a query parameter or
// cookie. It reports false for blank, malformed or unsupported values.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Tag{}, false
	}
	return supportedFor(matched), true
}

// MatchAcceptLanguage picks the best supported tag for an Accept-Language
// header value, falling back to DefaultTag.
func MatchAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultTag()
	}
	matched, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedFor(matched)
}

// supportedFor strips matcher extensions (e.g. "-u-rg-") so callers always
// receive one of supportedTags.
func supportedFor(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		if supported == tag {
			return supported
		}
	}
	for _, supported := range supportedTags {
		if supportedBase, _ := supported.Base(); supportedBase == base {
			return supported
		}
	}
	return DefaultTag()
}
