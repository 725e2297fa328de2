package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		Root:              "/",
		Login:             "/login",
		Logout:            "/logout",
		Health:            "/up",
		AppDashboard:      "/app/dashboard",
		AppDashboardStats: "/app/dashboard/stats",
		ShopCheckout:      "/shop/checkout",
		AppCoupons:        "/app/coupons",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestRouteBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "news", got: News("finals recap"), want: "/news/finals%20recap"},
		{name: "news like", got: NewsLike("7"), want: "/news/7/like"},
		{name: "news unlike", got: NewsUnlike("7"), want: "/news/7/unlike"},
		{name: "invite accept", got: InviteAccept("a/b"), want: "/invites/a%2Fb/accept"},
		{name: "invite decline", got: InviteDecline("i1"), want: "/invites/i1/decline"},
		{name: "team", got: Team(" t1 "), want: "/teams/t1"},
		{name: "team kick", got: AppTeamKick("t1", "m2"), want: "/app/teams/t1/members/m2/kick"},
		{name: "news delete", got: AppNewsDelete("n1"), want: "/app/news/n1/delete"},
		{name: "event delete", got: AppEventDelete("e1"), want: "/app/events/e1/delete"},
		{name: "coupon edit", got: AppCouponEdit("c1"), want: "/app/coupons/c1/edit"},
		{name: "coupon delete", got: AppCouponDelete("c1"), want: "/app/coupons/c1/delete"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestLoginWithNextKeepsOnlyLocalPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		next string
		want string
	}{
		{next: "", want: "/login"},
		{next: "/", want: "/login"},
		{next: "/app/coupons", want: "/login?next=%2Fapp%2Fcoupons"},
		{next: "//evil.example", want: "/login"},
		{next: "https://evil.example/app", want: "/login"},
		{next: "/\\evil.example", want: "/login"},
	}
	for _, tc := range tests {
		if got := LoginWithNext(tc.next); got != tc.want {
			t.Fatalf("LoginWithNext(%q) = %q, want %q", tc.next, got, tc.want)
		}
	}
}
