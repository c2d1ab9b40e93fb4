package repeatform

import "testing"

func TestMountPath_JoinsBaseAndPrefix(t *testing.T) {
	cases := []struct {
		base string
		fns  []OptionFn
		want string
	}{
		{base: "", want: "/api/repeatform"},
		{base: "/", want: "/api/repeatform"},
		{base: "/admin", want: "/admin/api/repeatform"},
		{base: "admin/", want: "/admin/api/repeatform"},
		{base: "/v1", fns: []OptionFn{WithRoutePrefix("forms/")}, want: "/v1/forms"},
	}
	for _, tc := range cases {
		if got := MountPath(tc.base, tc.fns...); got != tc.want {
			t.Fatalf("MountPath(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}
}

func TestRegisterRoutes_RequiresMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, ""); err == nil {
		t.Fatal("expected error for nil mux")
	}
}

func TestInstancesPath_MatchesRegisteredRoute(t *testing.T) {
	cases := []struct {
		prefix string
		id     string
		want   string
	}{
		{prefix: "/api/repeatform", id: "abc", want: "/api/repeatform/sessions/abc/instances"},
		{prefix: "/api/repeatform/", id: "abc", want: "/api/repeatform/sessions/abc/instances"},
		{prefix: "/admin/api/repeatform", id: "s1", want: "/admin/api/repeatform/sessions/s1/instances"},
	}
	for _, tc := range cases {
		if got := InstancesPath(tc.prefix, tc.id); got != tc.want {
			t.Fatalf("InstancesPath(%q, %q) = %q, want %q", tc.prefix, tc.id, got, tc.want)
		}
	}
}
