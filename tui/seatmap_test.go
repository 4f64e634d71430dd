package tui

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"theater-tickets-cli/checkout"
	"theater-tickets-cli/model"
)

func seatAt(row, number, price int, status string) model.PerformanceSeat {
	return model.PerformanceSeat{
		Id:     uuid.New(),
		Price:  price,
		Status: status,
		Seat:   &model.Seat{Id: uuid.New(), Row: row, Number: number, Category: "stalls"},
	}
}

func TestNewSeatGridOrdersRowsAndSeats(t *testing.T) {
	seats := []model.PerformanceSeat{
		seatAt(10, 2, 500, model.SeatAvailable),
		seatAt(2, 3, 500, model.SeatAvailable),
		seatAt(2, 1, 500, model.SeatAvailable),
		seatAt(10, 1, 500, model.SeatAvailable),
	}

	grid := newSeatGrid(seats)
	if len(grid.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(grid.rows))
	}
	if grid.rowNumbers[0] != 2 || grid.rowNumbers[1] != 10 {
		t.Fatalf("row numbers = %v, want [2 10]", grid.rowNumbers)
	}
	if grid.rows[0][0].Seat.Number != 1 || grid.rows[0][1].Seat.Number != 3 {
		t.Fatalf("row 2 seat order = [%d %d]", grid.rows[0][0].Seat.Number, grid.rows[0][1].Seat.Number)
	}
}

func TestSeatGridMoveClamps(t *testing.T) {
	grid := newSeatGrid([]model.PerformanceSeat{
		seatAt(1, 1, 500, model.SeatAvailable),
		seatAt(1, 2, 500, model.SeatAvailable),
		seatAt(2, 1, 750, model.SeatAvailable),
	})

	grid.move(-5, -5)
	if grid.cursorRow != 0 || grid.cursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", grid.cursorRow, grid.cursorCol)
	}

	grid.move(5, 5)
	if grid.cursorRow != 1 || grid.cursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", grid.cursorRow, grid.cursorCol)
	}
}

func TestSeatTokens(t *testing.T) {
	available := seatAt(1, 1, 500, model.SeatAvailable)
	reserved := seatAt(1, 2, 500, model.SeatReserved)
	sold := seatAt(1, 3, 500, model.SeatSold)

	cart := checkout.NewCart(uuid.New())
	cart.Toggle(available.Id, available.Price)

	if got := seatToken(available, cart); got != "()" {
		t.Fatalf("selected token = %q", got)
	}
	if got := seatToken(reserved, cart); got != "##" {
		t.Fatalf("reserved token = %q", got)
	}
	if got := seatToken(sold, cart); got != "XX" {
		t.Fatalf("sold token = %q", got)
	}
	if got := seatToken(available, nil); got != "[]" {
		t.Fatalf("available token = %q", got)
	}
}

func TestRenderSeatGridShowsStageAndLegend(t *testing.T) {
	grid := newSeatGrid([]model.PerformanceSeat{
		seatAt(1, 1, 500, model.SeatAvailable),
		seatAt(1, 2, 500, model.SeatSold),
	})

	out := renderSeatGrid(grid, nil)
	if !strings.Contains(out, "STAGE") {
		t.Fatal("render is missing the stage bar")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatal("render is missing the legend")
	}
	if !strings.Contains(out, "Available: 1 • Reserved: 0 • Sold: 1 • Total: 2") {
		t.Fatalf("render is missing the summary:\n%s", out)
	}
}

func TestRenderSeatGridEmpty(t *testing.T) {
	out := renderSeatGrid(newSeatGrid(nil), nil)
	if !strings.Contains(out, "No seats published") {
		t.Fatalf("empty render = %q", out)
	}
}
