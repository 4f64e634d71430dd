package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/google/uuid"
	"theater-tickets-cli/model"
)

const maxUpcomingBadges = 4

type playItem struct {
	play   model.Play
	badges []string
}

func (p playItem) Title() string {
	if p.play.Author != "" {
		return fmt.Sprintf("%s • %s", p.play.Title, p.play.Author)
	}
	return p.play.Title
}

func (p playItem) Description() string {
	parts := []string{}
	if p.play.Genre != "" {
		parts = append(parts, p.play.Genre)
	}
	if p.play.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%d min", p.play.Duration))
	}
	if p.play.PosterURL != "" {
		parts = append(parts, "poster")
	} else {
		parts = append(parts, "no poster")
	}
	if len(p.badges) > 0 {
		parts = append(parts, "next: "+strings.Join(p.badges, ", "))
	} else {
		parts = append(parts, "no upcoming performances")
	}
	return strings.Join(parts, " • ")
}

func (p playItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{p.play.Title, p.play.Author, p.play.Genre}, " "))
}

func buildPlayItems(plays []model.Play, now time.Time) []list.Item {
	items := make([]list.Item, 0, len(plays))
	for _, play := range plays {
		items = append(items, playItem{
			play:   play,
			badges: upcomingBadges(play.Performances, now, maxUpcomingBadges),
		})
	}
	return items
}

// upcomingBadges keeps the server's date order and formats times in the
// viewer's locale.
func upcomingBadges(performances []model.Performance, now time.Time, limit int) []string {
	var badges []string
	for _, performance := range performances {
		if len(badges) >= limit {
			break
		}
		if !performance.Bookable() || !performance.Date.After(now) {
			continue
		}
		badges = append(badges, performance.Date.Local().Format("02 Jan 15:04"))
	}
	return badges
}

type performanceItem struct {
	performance model.Performance
}

func (p performanceItem) Title() string {
	return p.performance.Date.Local().Format("Mon, 02 Jan 2006 15:04")
}

func (p performanceItem) Description() string {
	if p.performance.Bookable() {
		return p.performance.Status + " • enter to pick seats"
	}
	return p.performance.Status
}

func (p performanceItem) FilterValue() string {
	return strings.ToLower(p.performance.Status + " " + p.Title())
}

func buildPerformanceItems(performances []model.Performance) []list.Item {
	items := make([]list.Item, 0, len(performances))
	for _, performance := range performances {
		items = append(items, performanceItem{performance: performance})
	}
	return items
}

type bookingItem struct {
	booking model.Booking
}

func (b bookingItem) Title() string {
	if b.booking.Performance != nil {
		when := b.booking.Performance.Date.Local().Format("02 Jan 15:04")
		if b.booking.Performance.Play != nil {
			return fmt.Sprintf("%s • %s", b.booking.Performance.Play.Title, when)
		}
		return "Performance • " + when
	}
	return "Booking " + shortId(b.booking.Id)
}

func (b bookingItem) Description() string {
	parts := []string{b.booking.Status}
	if count := len(b.booking.Seats); count > 0 {
		parts = append(parts, fmt.Sprintf("%d seat(s)", count))
	}
	parts = append(parts, "total "+formatPrice(b.booking.TotalPrice))
	if b.booking.Cancellable() {
		if !b.booking.ExpiresAt.IsZero() {
			parts = append(parts, "expires "+b.booking.ExpiresAt.Local().Format("02 Jan 15:04"))
		}
		parts = append(parts, "c cancel")
	}
	return strings.Join(parts, " • ")
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(b.booking.Status + " " + b.Title())
}

func buildBookingItems(bookings []model.Booking) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, bookingItem{booking: booking})
	}
	return items
}

func shortId(id uuid.UUID) string {
	return id.String()[:8]
}

func formatPrice(price int) string {
	return fmt.Sprintf("%d ₽", price)
}
