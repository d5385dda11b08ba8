package utils

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Golden Bakery", "golden-bakery"},
		{"Cafe House", "cafe-house"},
		{"TTMM", "ttmm"},
		{"  Hangout   Cafe  ", "hangout-cafe"},
		{"Rosie's Diner", "rosies-diner"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
