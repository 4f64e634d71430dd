package checkout

import (
	"errors"

	"github.com/google/uuid"
)

// Phase is the seat-selection lifecycle for one performance.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSelecting
	PhaseSubmitting
)

var (
	ErrEmptyCart      = errors.New("no seats selected")
	ErrSubmitInFlight = errors.New("a booking submission is already in flight")
)

// Session owns the cart for one performance and drives its phase machine:
// Idle until the first toggle, Selecting while seats are staged, Submitting
// while a booking request is in flight. A failed submit returns to Selecting
// with the cart intact; a successful one clears the cart.
type Session struct {
	cart  *Cart
	phase Phase
}

func NewSession(performanceId uuid.UUID) *Session {
	return &Session{cart: NewCart(performanceId), phase: PhaseIdle}
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Cart() *Cart {
	return s.cart
}

// Toggle stages or unstages a seat. Rejected while a submit is in flight.
func (s *Session) Toggle(performanceSeatId uuid.UUID, price int) bool {
	if s.phase == PhaseSubmitting {
		return false
	}
	s.cart.Toggle(performanceSeatId, price)
	s.settlePhase()
	return true
}

// BeginSubmit moves to Submitting. It fails without any network side effect
// when the cart is empty or another submit is still in flight.
func (s *Session) BeginSubmit() error {
	if s.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	if s.cart.Count() == 0 {
		return ErrEmptyCart
	}
	s.phase = PhaseSubmitting
	return nil
}

// FinishSubmit records the submit outcome. Success clears the cart; failure
// keeps the selection so the user can retry or adjust it.
func (s *Session) FinishSubmit(success bool) {
	if s.phase != PhaseSubmitting {
		return
	}
	if success {
		s.cart.Clear()
	}
	s.settlePhase()
}

// Prune drops staged seats missing from the still-available id set, used
// after a rejected submit refreshes seat availability. Returns the number of
// seats removed.
func (s *Session) Prune(available map[uuid.UUID]bool) int {
	removed := 0
	for _, item := range s.cart.Items() {
		if !available[item.PerformanceSeatId] {
			s.cart.Remove(item.PerformanceSeatId)
			removed++
		}
	}
	s.settlePhase()
	return removed
}

func (s *Session) settlePhase() {
	if s.cart.Count() == 0 {
		s.phase = PhaseIdle
	} else {
		s.phase = PhaseSelecting
	}
}
