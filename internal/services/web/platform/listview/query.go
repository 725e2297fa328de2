package listview

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query parameter names shared by every list page.
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamDate     = "date"
	ParamPage     = "page"
	ParamScope    = "scope"
)

// DateLayout is the calendar-day format used by date filters.
const DateLayout = "2006-01-02"

// Query is list state carried in the URL.
type Query struct {
	Search   string
	Category string
	Date     string
	Scope    string
	Page     int
}

// ParseQuery reads list state from URL values. Invalid pages become 1.
func ParseQuery(values url.Values) Query {
	q := Query{
		Search:   strings.TrimSpace(values.Get(ParamSearch)),
		Category: strings.TrimSpace(values.Get(ParamCategory)),
		Date:     strings.TrimSpace(values.Get(ParamDate)),
		Scope:    strings.TrimSpace(values.Get(ParamScope)),
		Page:     1,
	}
	if page, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage))); err == nil && page > 0 {
		q.Page = page
	}
	if _, err := time.Parse(DateLayout, q.Date); err != nil {
		q.Date = ""
	}
	return q
}

// Day returns the parsed date filter, or the zero time.
func (q Query) Day() time.Time {
	day, err := time.Parse(DateLayout, q.Date)
	if err != nil {
		return time.Time{}
	}
	return day
}

// With returns q with one filter changed. Changing any filter value resets
// the page to 1; setting ParamPage changes only the page.
func (q Query) With(key, value string) Query {
	value = strings.TrimSpace(value)
	switch key {
	case ParamPage:
		if page, err := strconv.Atoi(value); err == nil && page > 0 {
			q.Page = page
		}
		return q
	case ParamSearch:
		if q.Search == value {
			return q
		}
		q.Search = value
	case ParamCategory:
		if q.Category == value {
			return q
		}
		q.Category = value
	case ParamDate:
		if q.Date == value {
			return q
		}
		q.Date = value
	case ParamScope:
		if q.Scope == value {
			return q
		}
		q.Scope = value
	default:
		return q
	}
	q.Page = 1
	return q
}

// Values encodes q. Page 1 is omitted so filter links never pin a page.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set(ParamSearch, q.Search)
	}
	if q.Category != "" {
		values.Set(ParamCategory, q.Category)
	}
	if q.Date != "" {
		values.Set(ParamDate, q.Date)
	}
	if q.Scope != "" {
		values.Set(ParamScope, q.Scope)
	}
	if q.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return values
}

// URL returns path with q encoded.
func (q Query) URL(path string) string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// PageURL returns the URL for page n with the same filters.
func (q Query) PageURL(path string, n int) string {
	q.Page = n
	if n < 1 {
		q.Page = 1
	}
	return q.URL(path)
}

// Filtered reports whether any filter is active.
func (q Query) Filtered() bool {
	return q.Search != "" || q.Category != "" || q.Date != ""
}
