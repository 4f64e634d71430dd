package checkout

import "github.com/google/uuid"

// Item is one staged seat: the performance-seat id and the price observed at
// fetch time.
type Item struct {
	PerformanceSeatId uuid.UUID
	Price             int
}

// Cart stages seat selections for a single performance before the booking is
// committed server-side. Selection order is preserved and a performance-seat
// id appears at most once.
type Cart struct {
	performanceId uuid.UUID
	items         []Item
}

func NewCart(performanceId uuid.UUID) *Cart {
	return &Cart{performanceId: performanceId}
}

func (c *Cart) PerformanceId() uuid.UUID {
	return c.performanceId
}

// Toggle adds the seat if absent and removes it if present, so two toggles
// with the same seat are a no-op.
func (c *Cart) Toggle(performanceSeatId uuid.UUID, price int) {
	if c.Remove(performanceSeatId) {
		return
	}
	c.items = append(c.items, Item{PerformanceSeatId: performanceSeatId, Price: price})
}

// Remove drops the seat from the cart and reports whether it was staged.
func (c *Cart) Remove(performanceSeatId uuid.UUID) bool {
	for i, item := range c.items {
		if item.PerformanceSeatId == performanceSeatId {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Contains(performanceSeatId uuid.UUID) bool {
	for _, item := range c.items {
		if item.PerformanceSeatId == performanceSeatId {
			return true
		}
	}
	return false
}

func (c *Cart) Count() int {
	return len(c.items)
}

func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// SeatIds returns the staged performance-seat ids in selection order.
func (c *Cart) SeatIds() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.PerformanceSeatId)
	}
	return ids
}

func (c *Cart) Items() []Item {
	return append([]Item{}, c.items...)
}

func (c *Cart) Clear() {
	c.items = nil
}
