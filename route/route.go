package route

import "strings"

// Kind identifies one of the four views.
type Kind int

const (
	List Kind = iota
	Detail
	Seats
	Bookings
)

const (
	seatsPrefix   = "performance/"
	detailPrefix  = "play/"
	bookingsToken = "bookings"
)

// Route is the resolved view identity plus parameters derived from a
// location fragment.
type Route struct {
	Kind          Kind
	PlayID        string
	PerformanceID string
}

// Resolve maps a location fragment to exactly one route. Matching is
// prefix-based and ordered; anything unrecognized, including the empty
// fragment, falls back to the list view.
func Resolve(fragment string) Route {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	switch {
	case strings.HasPrefix(fragment, seatsPrefix):
		if id := fragment[len(seatsPrefix):]; id != "" {
			return Route{Kind: Seats, PerformanceID: id}
		}
	case strings.HasPrefix(fragment, detailPrefix):
		if id := fragment[len(detailPrefix):]; id != "" {
			return Route{Kind: Detail, PlayID: id}
		}
	case fragment == bookingsToken:
		return Route{Kind: Bookings}
	}
	return Route{Kind: List}
}

// Fragment re-encodes the route to the fragment that resolves back to it.
func (r Route) Fragment() string {
	switch r.Kind {
	case Detail:
		return detailPrefix + r.PlayID
	case Seats:
		return seatsPrefix + r.PerformanceID
	case Bookings:
		return bookingsToken
	default:
		return ""
	}
}
