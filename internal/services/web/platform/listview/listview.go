// Package listview filters and paginates in-memory lists fetched from the
// backend, and carries list state in URL query parameters.
package listview

import (
	"strings"
	"time"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// MatchText keeps items where any field contains query, case-insensitively.
// A blank query matches everything.
func MatchText[T any](query string, fields ...func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), query) {
				return true
			}
		}
		return false
	}
}

// MatchEqual keeps items whose field equals value, case-insensitively. A
// blank value matches everything.
func MatchEqual[T any](value string, field func(T) string) Predicate[T] {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return func(item T) bool {
		return strings.EqualFold(strings.TrimSpace(field(item)), value)
	}
}

// MatchDay keeps items whose time falls on day's calendar date in loc. A zero
// day matches everything; items with a zero time never match a set day.
func MatchDay[T any](day time.Time, loc *time.Location, field func(T) time.Time) Predicate[T] {
	if day.IsZero() {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	wantYear, wantMonth, wantDay := day.Date()
	return func(item T) bool {
		at := field(item)
		if at.IsZero() {
			return false
		}
		year, month, d := at.In(loc).Date()
		return year == wantYear && month == wantMonth && d == wantDay
	}
}

// Filter returns the items kept by every predicate, in source order. Nil
// predicates are skipped. The input is never modified and the result is never
// nil.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func keep[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Page is one slice of a filtered list.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// DefaultPageSize is used when callers pass a non-positive size.
const DefaultPageSize = 10

// Paginate slices items into page number (1-based), clamped to the valid
// range. TotalPages is at least 1 so an empty list renders one empty page.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	start := (number - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	slice := make([]T, end-start)
	copy(slice, items[start:end])
	return Page[T]{
		Items:      slice,
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Ellipsis marks a collapsed run of pages in a Window.
const Ellipsis = 0

// Window returns the page numbers to display. When total exceeds visible, the
// first and last pages are always shown, pages around current fill the rest,
// and gaps collapse to Ellipsis.
func Window(current, total, visible int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if visible < 5 {
		visible = 5
	}
	if total <= visible {
		out := make([]int, total)
		for idx := range out {
			out[idx] = idx + 1
		}
		return out
	}

	inner := visible - 2
	start := current - inner/2
	if start < 2 {
		start = 2
	}
	end := start + inner - 1
	if end > total-1 {
		end = total - 1
		start = end - inner + 1
	}
	if start > 2 {
		start++
	}
	if end < total-1 {
		end--
	}

	out := []int{1}
	if start > 2 {
		out = append(out, Ellipsis)
	}
	for page := start; page <= end; page++ {
		out = append(out, page)
	}
	if end < total-1 {
		out = append(out, Ellipsis)
	}
	return append(out, total)
}

// Empty distinguishes why a list renders nothing.
type Empty int

const (
	// EmptyNone means the list has items to show.
	EmptyNone Empty = iota
	// EmptyNoData means the source itself is empty.
	EmptyNoData
	// EmptyNoMatch means the source has items but none match the filters.
	EmptyNoMatch
)

// EmptyState classifies an empty result.
func EmptyState(sourceLen, filteredLen int) Empty {
	switch {
	case sourceLen == 0:
		return EmptyNoData
	case filteredLen == 0:
		return EmptyNoMatch
	default:
		return EmptyNone
	}
}
