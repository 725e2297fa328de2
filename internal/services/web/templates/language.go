package templates

import (
	"net/url"
	"strings"

	platformi18n "github.com/arenahq/arena/internal/platform/i18n"
	webi18n "github.com/arenahq/arena/internal/services/web/platform/i18n"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with the active one marked.
func LanguageOptions(page PageContext) []LanguageOption {
	tags := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(tags))
	for _, tag := range tags {
		value := tag.String()
		options = append(options, LanguageOption{
			Tag:    value,
			Label:  T(page.Loc, "core.language."+value),
			URL:    LanguageURL(page.CurrentPath, page.CurrentQuery, value),
			Active: strings.EqualFold(value, page.Lang),
		})
	}
	return options
}

// LanguageURL returns path with the lang query parameter set to tag.
func LanguageURL(path, rawQuery, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(webi18n.LangParam, tag)
	return path + "?" + values.Encode()
}
