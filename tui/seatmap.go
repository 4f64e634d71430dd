package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"theater-tickets-cli/checkout"
	"theater-tickets-cli/model"
)

// seatGrid arranges a performance's seats for terminal rendering: rows
// ascending by ordinal (numeric comparison), seats ascending by number within
// a row. The cursor is the interactive handle; only available seats react to
// a toggle.
type seatGrid struct {
	rows        [][]model.PerformanceSeat
	rowNumbers  []int
	cursorRow   int
	cursorCol   int
	showNumbers bool
}

func newSeatGrid(seats []model.PerformanceSeat) seatGrid {
	byRow := map[int][]model.PerformanceSeat{}
	for _, seat := range seats {
		if seat.Seat == nil {
			continue
		}
		byRow[seat.Seat.Row] = append(byRow[seat.Seat.Row], seat)
	}

	rowNumbers := make([]int, 0, len(byRow))
	for row := range byRow {
		rowNumbers = append(rowNumbers, row)
	}
	sort.Ints(rowNumbers)

	rows := make([][]model.PerformanceSeat, 0, len(rowNumbers))
	for _, row := range rowNumbers {
		line := byRow[row]
		sort.Slice(line, func(i, j int) bool {
			return line[i].Seat.Number < line[j].Seat.Number
		})
		rows = append(rows, line)
	}
	return seatGrid{rows: rows, rowNumbers: rowNumbers}
}

func (g seatGrid) empty() bool {
	return len(g.rows) == 0
}

func (g seatGrid) current() (model.PerformanceSeat, bool) {
	if g.cursorRow < 0 || g.cursorRow >= len(g.rows) {
		return model.PerformanceSeat{}, false
	}
	line := g.rows[g.cursorRow]
	if g.cursorCol < 0 || g.cursorCol >= len(line) {
		return model.PerformanceSeat{}, false
	}
	return line[g.cursorCol], true
}

func (g *seatGrid) move(dRow, dCol int) {
	if len(g.rows) == 0 {
		return
	}
	g.cursorRow = clamp(g.cursorRow+dRow, 0, len(g.rows)-1)
	g.cursorCol = clamp(g.cursorCol+dCol, 0, len(g.rows[g.cursorRow])-1)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

type gridCounts struct {
	available int
	reserved  int
	sold      int
	total     int
}

func (g seatGrid) counts() gridCounts {
	var result gridCounts
	for _, line := range g.rows {
		for _, seat := range line {
			result.total++
			switch seat.Status {
			case model.SeatAvailable:
				result.available++
			case model.SeatReserved:
				result.reserved++
			case model.SeatSold:
				result.sold++
			}
		}
	}
	return result
}

func renderSeatGrid(g seatGrid, cart *checkout.Cart) string {
	if g.empty() {
		return "No seats published for this performance."
	}

	styleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	styleReserved := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleSold := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleCursor := lipgloss.NewStyle().Reverse(true)

	cellWidth := 2
	if g.showNumbers {
		for _, line := range g.rows {
			for _, seat := range line {
				if width := len(fmt.Sprintf("%d", seat.Seat.Number)); width > cellWidth {
					cellWidth = width
				}
			}
		}
	}

	rowWidth := 2
	for _, row := range g.rowNumbers {
		if width := len(fmt.Sprintf("%d", row)); width > rowWidth {
			rowWidth = width
		}
	}

	gridWidth := 0
	for _, line := range g.rows {
		if width := len(line)*(cellWidth+1) - 1; width > gridWidth {
			gridWidth = width
		}
	}

	stageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	stageBorderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	var b strings.Builder
	indent := strings.Repeat(" ", rowWidth+1)
	stage := stageBarBlock(gridWidth, "STAGE")
	b.WriteString(indent + stageBorderStyle.Render(stage.top) + "\n")
	b.WriteString(indent + stageStyle.Render(stage.mid) + "\n")
	b.WriteString(indent + stageBorderStyle.Render(stage.bot) + "\n\n")

	for r, line := range g.rows {
		b.WriteString(fmt.Sprintf("%*d ", rowWidth, g.rowNumbers[r]))
		for c, seat := range line {
			text := seatToken(seat, cart)
			if g.showNumbers {
				text = fmt.Sprintf("%d", seat.Seat.Number)
			}
			rendered := padCell(text, cellWidth)
			switch {
			case r == g.cursorRow && c == g.cursorCol:
				rendered = styleCursor.Render(rendered)
			case cart != nil && cart.Contains(seat.Id):
				rendered = styleSelected.Render(rendered)
			case seat.Status == model.SeatAvailable:
				rendered = styleAvailable.Render(rendered)
			case seat.Status == model.SeatReserved:
				rendered = styleReserved.Render(rendered)
			case seat.Status == model.SeatSold:
				rendered = styleSold.Render(rendered)
			}
			b.WriteString(rendered)
			if c < len(line)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*d\n", rowWidth, g.rowNumbers[r]))
	}

	legend := "Legend: [] available • () selected • ## reserved • XX sold"
	if g.showNumbers {
		legend = "Legend: color shows status • numbers are seat labels"
	}
	counts := g.counts()
	summary := fmt.Sprintf("Available: %d • Reserved: %d • Sold: %d • Total: %d",
		counts.available, counts.reserved, counts.sold, counts.total)
	return b.String() + "\n" + hint(legend) + "\n" + hint(summary)
}

func seatToken(seat model.PerformanceSeat, cart *checkout.Cart) string {
	if cart != nil && cart.Contains(seat.Id) {
		return "()"
	}
	switch seat.Status {
	case model.SeatAvailable:
		return "[]"
	case model.SeatReserved:
		return "##"
	case model.SeatSold:
		return "XX"
	default:
		return "  "
	}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type stageBlock struct {
	top string
	mid string
	bot string
}

func stageBarBlock(width int, label string) stageBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return stageBlock{top: border, mid: mid, bot: bottom}
}
