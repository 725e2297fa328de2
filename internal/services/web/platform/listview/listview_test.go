package listview

import (
	"net/url"
	"reflect"
	"testing"
	"time"
)

type article struct {
	Title    string
	Author   string
	Category string
	At       time.Time
}

func sampleArticles() []article {
	day := func(d int) time.Time { return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC) }
	return []article{
		{Title: "Finals recap", Author: "ana", Category: "tournament", At: day(1)},
		{Title: "Patch notes", Author: "bo", Category: "game", At: day(1)},
		{Title: "Roster change", Author: "cy", Category: "team", At: day(2)},
		{Title: "Qualifier bracket", Author: "ana", Category: "Tournament", At: day(2)},
		{Title: "Community night", Author: "di", Category: "community", At: day(3)},
		{Title: "Coaching tips", Author: "ed", Category: "guide", At: day(3)},
		{Title: "Spring split", Author: "fi", Category: "tournament", At: day(4)},
		{Title: "Meta report", Author: "gu", Category: "game", At: day(4)},
		{Title: "Jersey drop", Author: "ha", Category: "shop", At: day(5)},
		{Title: "Stream schedule", Author: "io", Category: "community", At: time.Time{}},
	}
}

func byCategory(a article) string { return a.Category }

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	items := sampleArticles()
	pred := MatchEqual("tournament", byCategory)
	once := Filter(items, pred)
	twice := Filter(once, pred)
	if len(once) != 3 {
		t.Fatalf("len(once) = %d, want 3", len(once))
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice changed the result: %v vs %v", once, twice)
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	t.Parallel()

	items := sampleArticles()
	before := append([]article(nil), items...)
	got := Filter(items, MatchText("ana", func(a article) string { return a.Title }, func(a article) string { return a.Author }))
	if len(got) != 2 || got[0].Title != "Finals recap" || got[1].Title != "Qualifier bracket" {
		t.Fatalf("Filter() = %v", got)
	}
	if !reflect.DeepEqual(items, before) {
		t.Fatal("Filter mutated its input")
	}
}

func TestFilterCombinesPredicates(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	got := Filter(sampleArticles(),
		MatchEqual("TOURNAMENT", byCategory),
		MatchDay(day, time.UTC, func(a article) time.Time { return a.At }),
		MatchText("", func(a article) string { return a.Title }),
	)
	if len(got) != 1 || got[0].Title != "Qualifier bracket" {
		t.Fatalf("Filter() = %v", got)
	}
}

func TestMatchDayUsesLocation(t *testing.T) {
	t.Parallel()

	saoPaulo := time.FixedZone("BRT", -3*60*60)
	late := article{At: time.Date(2026, time.March, 2, 1, 0, 0, 0, time.UTC)}
	pred := MatchDay(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), saoPaulo, func(a article) time.Time { return a.At })
	if !pred(late) {
		t.Fatal("01:00 UTC on the 2nd is the 1st in BRT")
	}
	if pred(article{}) {
		t.Fatal("zero time must not match a set day")
	}
}

func TestEmptySourceYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	for _, items := range [][]article{nil, {}} {
		got := Filter(items,
			MatchEqual("tournament", byCategory),
			MatchText("x", func(a article) string { return a.Title }),
			MatchDay(time.Now(), nil, func(a article) time.Time { return a.At }),
		)
		if got == nil || len(got) != 0 {
			t.Fatalf("Filter(empty) = %#v, want empty non-nil", got)
		}
		page := Paginate(got, 3, 5)
		if page.Number != 1 || page.TotalPages != 1 || len(page.Items) != 0 {
			t.Fatalf("Paginate(empty) = %+v", page)
		}
	}
}

func TestPaginateClampsAndSlices(t *testing.T) {
	t.Parallel()

	items := sampleArticles()
	tests := []struct {
		name       string
		number     int
		size       int
		wantNumber int
		wantLen    int
		wantFirst  string
	}{
		{name: "first", number: 1, size: 4, wantNumber: 1, wantLen: 4, wantFirst: "Finals recap"},
		{name: "last partial", number: 3, size: 4, wantNumber: 3, wantLen: 2, wantFirst: "Jersey drop"},
		{name: "beyond end", number: 9, size: 4, wantNumber: 3, wantLen: 2, wantFirst: "Jersey drop"},
		{name: "below start", number: -2, size: 4, wantNumber: 1, wantLen: 4, wantFirst: "Finals recap"},
		{name: "default size", number: 1, size: 0, wantNumber: 1, wantLen: 10, wantFirst: "Finals recap"},
	}
	for _, tc := range tests {
		page := Paginate(items, tc.number, tc.size)
		if page.Number != tc.wantNumber || len(page.Items) != tc.wantLen || page.Items[0].Title != tc.wantFirst {
			t.Fatalf("%s: Paginate() = %+v", tc.name, page)
		}
		if page.TotalItems != 10 {
			t.Fatalf("%s: TotalItems = %d", tc.name, page.TotalItems)
		}
	}
	if page := Paginate(items, 2, 4); !page.HasPrev() || !page.HasNext() || page.TotalPages != 3 {
		t.Fatalf("page 2 = %+v", page)
	}
}

func TestWindowCollapsesWithEllipsis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current int
		total   int
		want    []int
	}{
		{current: 1, total: 1, want: []int{1}},
		{current: 2, total: 5, want: []int{1, 2, 3, 4, 5}},
		{current: 1, total: 20, want: []int{1, 2, 3, 4, 5, Ellipsis, 20}},
		{current: 10, total: 20, want: []int{1, Ellipsis, 9, 10, 11, Ellipsis, 20}},
		{current: 20, total: 20, want: []int{1, Ellipsis, 16, 17, 18, 19, 20}},
		{current: 99, total: 20, want: []int{1, Ellipsis, 16, 17, 18, 19, 20}},
	}
	for _, tc := range tests {
		if got := Window(tc.current, tc.total, 7); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Window(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
		}
	}
}

func TestChangingAnyFilterResetsPage(t *testing.T) {
	t.Parallel()

	base := ParseQuery(url.Values{"q": {"finals"}, "category": {"tournament"}, "page": {"3"}})
	if base.Page != 3 {
		t.Fatalf("Page = %d, want 3", base.Page)
	}
	for _, key := range []string{ParamSearch, ParamCategory, ParamDate, ParamScope} {
		if got := base.With(key, "2026-03-01"); got.Page != 1 {
			t.Fatalf("With(%s) page = %d, want 1", key, got.Page)
		}
	}
	if got := base.With(ParamSearch, "finals"); got.Page != 3 {
		t.Fatalf("unchanged filter reset page to %d", got.Page)
	}
	if got := base.With(ParamPage, "4"); got.Page != 4 || got.Search != "finals" {
		t.Fatalf("With(page) = %+v", got)
	}
}

func TestQueryEncoding(t *testing.T) {
	t.Parallel()

	q := ParseQuery(url.Values{"q": {" finals "}, "date": {"not-a-date"}, "page": {"zero"}})
	if q.Search != "finals" || q.Date != "" || q.Page != 1 {
		t.Fatalf("ParseQuery() = %+v", q)
	}
	if got := q.URL("/news/"); got != "/news/?q=finals" {
		t.Fatalf("URL() = %q", got)
	}
	if got := q.PageURL("/news/", 2); got != "/news/?page=2&q=finals" {
		t.Fatalf("PageURL() = %q", got)
	}
	if got := (Query{}).URL("/news/"); got != "/news/" {
		t.Fatalf("URL() = %q", got)
	}
	if !q.Filtered() || (Query{Page: 2}).Filtered() {
		t.Fatal("unexpected Filtered()")
	}
	if day := ParseQuery(url.Values{"date": {"2026-03-01"}}).Day(); day.Day() != 1 {
		t.Fatalf("Day() = %v", day)
	}
}

func TestEmptyState(t *testing.T) {
	t.Parallel()

	if EmptyState(0, 0) != EmptyNoData || EmptyState(5, 0) != EmptyNoMatch || EmptyState(5, 2) != EmptyNone {
		t.Fatal("unexpected empty state classification")
	}
}
