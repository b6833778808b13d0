package maps

import (
	"strings"
	"testing"
)

func TestSearchURL(t *testing.T) {
	got := SearchURL("서울 경복궁")
	if !strings.HasPrefix(got, "https://www.google.com/maps/search/?api=1&query=") {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if strings.Contains(got, "서울") {
		t.Errorf("location not escaped: %s", got)
	}
}

func TestRouteURL(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		want      string
		contains  []string
		excludes  []string
	}{
		{
			name:      "no locations",
			locations: nil,
			want:      "",
		},
		{
			name:      "single location is a search link",
			locations: []string{"Gyeongbokgung"},
			want:      "https://www.google.com/maps/search/?api=1&query=Gyeongbokgung",
		},
		{
			name:      "two locations have no waypoints",
			locations: []string{"A", "B"},
			want:      "https://www.google.com/maps/dir/?api=1&origin=A&destination=B",
		},
		{
			name:      "interior locations become ordered waypoints",
			locations: []string{"A", "B", "C", "D"},
			contains:  []string{"origin=A", "destination=D", "waypoints=B%7CC"},
		},
		{
			name:      "waypoints preserve order",
			locations: []string{"A", "C", "B", "D"},
			contains:  []string{"waypoints=C%7CB"},
			excludes:  []string{"waypoints=B%7CC"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RouteURL(tc.locations)
			if tc.want != "" || len(tc.contains) == 0 {
				if got != tc.want {
					t.Fatalf("RouteURL(%v) = %q, want %q", tc.locations, got, tc.want)
				}
			}
			for _, sub := range tc.contains {
				if !strings.Contains(got, sub) {
					t.Errorf("RouteURL(%v) = %q, missing %q", tc.locations, got, sub)
				}
			}
			for _, sub := range tc.excludes {
				if strings.Contains(got, sub) {
					t.Errorf("RouteURL(%v) = %q, should not contain %q", tc.locations, got, sub)
				}
			}
		})
	}
}
