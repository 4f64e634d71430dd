package route

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     Route
	}{
		{"empty fragment", "", Route{Kind: List}},
		{"bare hash", "#", Route{Kind: List}},
		{"unknown fragment", "somewhere/else", Route{Kind: List}},
		{"play", "play/6f1c2a9e", Route{Kind: Detail, PlayID: "6f1c2a9e"}},
		{"play with hash", "#play/6f1c2a9e", Route{Kind: Detail, PlayID: "6f1c2a9e"}},
		{"play without id", "play/", Route{Kind: List}},
		{"performance", "performance/ab34", Route{Kind: Seats, PerformanceID: "ab34"}},
		{"performance without id", "performance/", Route{Kind: List}},
		{"bookings", "bookings", Route{Kind: Bookings}},
		{"bookings with hash", "#bookings", Route{Kind: Bookings}},
		{"bookings with suffix", "bookings/extra", Route{Kind: List}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.fragment)
			if got != tt.want {
				t.Fatalf("Resolve(%q) = %+v, want %+v", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	routes := []Route{
		{Kind: List},
		{Kind: Detail, PlayID: "6f1c2a9e"},
		{Kind: Seats, PerformanceID: "ab34"},
		{Kind: Bookings},
	}

	for _, r := range routes {
		if got := Resolve(r.Fragment()); got != r {
			t.Fatalf("Resolve(%q) = %+v, want %+v", r.Fragment(), got, r)
		}
	}
}
