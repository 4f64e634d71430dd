package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"theater-tickets-cli/checkout"
	"theater-tickets-cli/model"
	"theater-tickets-cli/route"
	"theater-tickets-cli/service"
	"theater-tickets-cli/store"
)

type appState int

const (
	stateLoadingPlays appState = iota
	statePlayList
	stateLoadingPlay
	statePlayDetail
	stateLoadingSeats
	stateSelectSeats
	statePromptContact
	stateSubmitting
	statePromptPhone
	stateLoadingBookings
	stateBookings
	stateConfirmCancel
	stateCancelling
	stateError
)

type appModel struct {
	client *service.Client
	logger *logrus.Logger

	state appState
	err   error

	width  int
	height int

	// route is the active view identity; navSeq invalidates fetches that were
	// issued for a previous activation.
	route  route.Route
	navSeq int

	plays []model.Play
	play  model.Play

	performance model.Performance
	grid        seatGrid
	session     *checkout.Session
	submitNote  string

	bookings     []model.Booking
	phone        string
	name         string
	notice       string
	cancelTarget model.Booking

	playList        list.Model
	performanceList list.Model
	bookingList     list.Model

	phoneInput   textinput.Model
	nameInput    textinput.Model
	contactFocus int

	spinner spinner.Model
}

type errMsg struct {
	seq int
	err error
}

type playsMsg struct {
	seq   int
	plays []model.Play
	err   error
}

type playMsg struct {
	seq  int
	play model.Play
	err  error
}

type seatViewMsg struct {
	seq         int
	performance model.Performance
	seats       []model.PerformanceSeat
	err         error
}

type seatRefreshMsg struct {
	seq   int
	seats []model.PerformanceSeat
	err   error
}

type bookingsMsg struct {
	seq      int
	bookings []model.Booking
	err      error
}

type bookingCreatedMsg struct {
	seq     int
	booking model.Booking
	err     error
}

type bookingCancelledMsg struct {
	seq int
	err error
}

func New(client *service.Client, logger *logrus.Logger) tea.Model {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	m := appModel{
		client: client,
		logger: logger,
		route:  route.Route{Kind: route.List},
		state:  stateLoadingPlays,
		navSeq: 1,
	}

	m.playList = newList("Plays")
	m.performanceList = newList("Performances")
	m.bookingList = newList("My Bookings")

	phone := textinput.New()
	phone.Placeholder = "+70000000000"
	phone.CharLimit = 32
	m.phoneInput = phone

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 64
	m.nameInput = name

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchPlaysCmd(m.navSeq), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case statePromptContact:
			return m.updateContactPrompt(msg)
		case statePromptPhone:
			return m.updatePhonePrompt(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		m.err = msg.err
		m.state = stateError
		return m, nil

	case playsMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.failCmd(msg.seq, "load plays", msg.err)
		}
		m.plays = msg.plays
		m.playList.SetItems(buildPlayItems(msg.plays, time.Now()))
		m.state = statePlayList
		return m, nil

	case playMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.failCmd(msg.seq, "load play", msg.err)
		}
		m.play = msg.play
		m.performanceList.Title = "Performances • " + msg.play.Title
		m.performanceList.SetItems(buildPerformanceItems(msg.play.Performances))
		m.state = statePlayDetail
		return m, nil

	case seatViewMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.failCmd(msg.seq, "load seats", msg.err)
		}
		m.performance = msg.performance
		if msg.performance.Play != nil {
			m.play = *msg.performance.Play
		}
		m.grid = newSeatGrid(msg.seats)
		m.session = checkout.NewSession(msg.performance.Id)
		m.submitNote = ""
		m.state = stateSelectSeats
		return m, nil

	case seatRefreshMsg:
		if msg.seq != m.navSeq || m.state != stateSelectSeats {
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Error("seat refresh after rejected booking failed")
			return m, nil
		}
		return m.applySeatRefresh(msg.seats), nil

	case bookingsMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.failCmd(msg.seq, "load bookings", msg.err)
		}
		m.bookings = msg.bookings
		m.bookingList.SetItems(buildBookingItems(msg.bookings))
		m.state = stateBookings
		return m, nil

	case bookingCreatedMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		return m.finishSubmit(msg)

	case bookingCancelledMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Error("cancel booking failed")
			m.notice = userMessage(msg.err)
			m.state = stateBookings
			return m, nil
		}
		m.notice = "Booking cancelled."
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(m.navSeq, m.phone), m.spinner.Tick)
	}

	var cmd tea.Cmd
	switch m.state {
	case statePlayList:
		m.playList, cmd = m.playList.Update(msg)
	case statePlayDetail:
		m.performanceList, cmd = m.performanceList.Update(msg)
	case stateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

// navigate resolves a location fragment and activates exactly one view,
// re-running that view's data loading. The sequence bump makes any fetch
// still in flight for the previous activation land as a no-op.
func (m appModel) navigate(fragment string) (appModel, tea.Cmd) {
	next := route.Resolve(fragment)
	m.navSeq++
	m.err = nil
	m.notice = ""
	if m.route.Kind == route.Seats {
		// the cart lives only while its seats view is active
		m.session = nil
		m.submitNote = ""
	}
	m.route = next

	switch next.Kind {
	case route.List:
		m.state = stateLoadingPlays
		return m, tea.Batch(m.fetchPlaysCmd(m.navSeq), m.spinner.Tick)
	case route.Detail:
		m.state = stateLoadingPlay
		return m, tea.Batch(m.fetchPlayCmd(m.navSeq, next.PlayID), m.spinner.Tick)
	case route.Seats:
		m.state = stateLoadingSeats
		return m, tea.Batch(m.fetchSeatViewCmd(m.navSeq, next.PerformanceID), m.spinner.Tick)
	case route.Bookings:
		if m.phone != "" {
			m.state = stateLoadingBookings
			return m, tea.Batch(m.fetchBookingsCmd(m.navSeq, m.phone), m.spinner.Tick)
		}
		if recent, ok := store.RecentContact(); ok {
			m.phoneInput.SetValue(recent.Phone)
			m.phoneInput.CursorEnd()
		}
		m.phoneInput.Focus()
		m.state = statePromptPhone
		return m, nil
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "b":
		if m.state == statePlayList || m.state == statePlayDetail {
			next, cmd := m.navigate("bookings")
			return next, cmd, true
		}
	case "n":
		switch m.state {
		case stateConfirmCancel:
			m.state = stateBookings
			return m, nil, true
		case stateSelectSeats:
			m.grid.showNumbers = !m.grid.showNumbers
			return m, nil, true
		}
	case "y":
		if m.state == stateConfirmCancel {
			m.state = stateCancelling
			return m, tea.Batch(m.cancelBookingCmd(m.navSeq, m.cancelTarget.Id), m.spinner.Tick), true
		}
	case "c":
		switch m.state {
		case stateSelectSeats:
			next, cmd := m.openContactPrompt()
			return next, cmd, true
		case stateBookings:
			return m.openCancelConfirm()
		}
	case "p":
		if m.state == stateBookings {
			m.phoneInput.SetValue(m.phone)
			m.phoneInput.CursorEnd()
			m.phoneInput.Focus()
			m.state = statePromptPhone
			return m, nil, true
		}
	case "up", "k":
		if m.state == stateSelectSeats {
			m.grid.move(-1, 0)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSelectSeats {
			m.grid.move(1, 0)
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSelectSeats {
			m.grid.move(0, -1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSelectSeats {
			m.grid.move(0, 1)
			return m, nil, true
		}
	case " ":
		if m.state == stateSelectSeats {
			return m.toggleSeatAtCursor()
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case statePlayList:
			item, ok := m.playList.SelectedItem().(playItem)
			if !ok {
				return m, nil, true
			}
			next, cmd := m.navigate("play/" + item.play.Id.String())
			return next, cmd, true
		case statePlayDetail:
			item, ok := m.performanceList.SelectedItem().(performanceItem)
			if !ok || !item.performance.Bookable() {
				return m, nil, true
			}
			next, cmd := m.navigate("performance/" + item.performance.Id.String())
			return next, cmd, true
		case stateSelectSeats:
			return m.toggleSeatAtCursor()
		case stateBookings:
			return m.openCancelConfirm()
		case stateConfirmCancel:
			m.state = stateCancelling
			return m, tea.Batch(m.cancelBookingCmd(m.navSeq, m.cancelTarget.Id), m.spinner.Tick), true
		case stateError:
			next, cmd := m.navigate(m.route.Fragment())
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (m appModel) goBack() (appModel, tea.Cmd) {
	switch m.state {
	case statePlayDetail:
		return m.navigate("")
	case stateSelectSeats, stateSubmitting:
		return m.navigate(m.detailFragment())
	case statePromptContact:
		m.state = stateSelectSeats
		return m, nil
	case statePromptPhone, stateBookings:
		return m.navigate("")
	case stateConfirmCancel:
		m.state = stateBookings
		return m, nil
	case stateError:
		return m.navigate(m.errorParentFragment())
	}
	return m, nil
}

func (m appModel) detailFragment() string {
	if m.performance.Play != nil {
		return "play/" + m.performance.Play.Id.String()
	}
	if m.play.Id != uuid.Nil {
		return "play/" + m.play.Id.String()
	}
	return ""
}

func (m appModel) errorParentFragment() string {
	if m.route.Kind == route.Seats && m.play.Id != uuid.Nil {
		return "play/" + m.play.Id.String()
	}
	return ""
}

func (m appModel) toggleSeatAtCursor() (appModel, tea.Cmd, bool) {
	if m.session == nil {
		return m, nil, true
	}
	seat, ok := m.grid.current()
	if !ok {
		return m, nil, true
	}
	// only available seats are interactive; a selected seat may always be
	// unselected
	if !seat.Available() && !m.session.Cart().Contains(seat.Id) {
		return m, nil, true
	}
	m.session.Toggle(seat.Id, seat.Price)
	return m, nil, true
}

func (m appModel) openContactPrompt() (appModel, tea.Cmd) {
	if m.session == nil || m.session.Cart().Count() == 0 {
		return m, nil
	}
	if m.phoneInput.Value() == "" {
		if recent, ok := store.RecentContact(); ok {
			m.phoneInput.SetValue(recent.Phone)
			m.nameInput.SetValue(recent.Name)
		}
	}
	m.contactFocus = 0
	m.phoneInput.Focus()
	m.phoneInput.CursorEnd()
	m.nameInput.Blur()
	m.state = statePromptContact
	return m, nil
}

func (m appModel) openCancelConfirm() (appModel, tea.Cmd, bool) {
	item, ok := m.bookingList.SelectedItem().(bookingItem)
	if !ok || !item.booking.Cancellable() {
		return m, nil, true
	}
	m.cancelTarget = item.booking
	m.state = stateConfirmCancel
	return m, nil, true
}

func (m appModel) updateContactPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectSeats
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if m.contactFocus == 0 {
			m.contactFocus = 1
			m.phoneInput.Blur()
			m.nameInput.Focus()
			m.nameInput.CursorEnd()
		} else {
			m.contactFocus = 0
			m.nameInput.Blur()
			m.phoneInput.Focus()
			m.phoneInput.CursorEnd()
		}
		return m, nil
	case "enter":
		if m.contactFocus == 0 {
			m.contactFocus = 1
			m.phoneInput.Blur()
			m.nameInput.Focus()
			m.nameInput.CursorEnd()
			return m, nil
		}
		phone := strings.TrimSpace(m.phoneInput.Value())
		name := strings.TrimSpace(m.nameInput.Value())
		if phone == "" || name == "" {
			// empty input aborts the booking without a network call
			m.submitNote = "Booking aborted: phone and name are required."
			m.state = stateSelectSeats
			return m, nil
		}
		if err := m.session.BeginSubmit(); err != nil {
			m.submitNote = err.Error()
			m.state = stateSelectSeats
			return m, nil
		}
		m.phone = phone
		m.name = name
		m.state = stateSubmitting
		return m, tea.Batch(m.submitBookingCmd(m.navSeq), m.spinner.Tick)
	}

	var cmd tea.Cmd
	if m.contactFocus == 0 {
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updatePhonePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		next, cmd := m.navigate("")
		return next, cmd
	case "enter":
		phone := strings.TrimSpace(m.phoneInput.Value())
		if phone == "" {
			// empty input aborts the lookup without a network call
			next, cmd := m.navigate("")
			return next, cmd
		}
		m.phone = phone
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(m.navSeq, phone), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	return m, cmd
}

func (m appModel) finishSubmit(msg bookingCreatedMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	if msg.err != nil {
		m.logger.WithError(msg.err).Error("create booking rejected")
		m.session.FinishSubmit(false)
		m.submitNote = userMessage(msg.err)
		m.state = stateSelectSeats
		// the rejection usually means seat state moved underneath us; refresh
		// the availability snapshot
		return m, m.refreshSeatsCmd(m.navSeq)
	}

	m.session.FinishSubmit(true)
	_ = store.RememberContact(store.Contact{Phone: m.phone, Name: m.name})
	next, cmd := m.navigate("bookings")
	return next, cmd
}

// applySeatRefresh swaps in a fresh availability snapshot after a rejected
// submit, keeping cursor position and dropping staged seats that are gone.
func (m appModel) applySeatRefresh(seats []model.PerformanceSeat) appModel {
	cursorRow, cursorCol := m.grid.cursorRow, m.grid.cursorCol
	showNumbers := m.grid.showNumbers
	m.grid = newSeatGrid(seats)
	m.grid.showNumbers = showNumbers
	m.grid.move(cursorRow, cursorCol)

	if m.session == nil {
		return m
	}
	available := map[uuid.UUID]bool{}
	for _, seat := range seats {
		if seat.Available() {
			available[seat.Id] = true
		}
	}
	if removed := m.session.Prune(available); removed > 0 {
		m.submitNote += fmt.Sprintf(" %d selected seat(s) are no longer available.", removed)
	}
	return m
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingPlays, stateLoadingPlay, stateLoadingSeats,
		stateLoadingBookings, stateSubmitting, stateCancelling:
		return true
	default:
		return false
	}
}

func (m appModel) failCmd(seq int, op string, err error) tea.Cmd {
	m.logger.WithError(err).WithField("op", op).Error("view load failed")
	return func() tea.Msg {
		return errMsg{seq: seq, err: err}
	}
}

// userMessage keeps the server's own rejection text verbatim and hides
// transport details behind a generic line.
func userMessage(err error) string {
	if msg, ok := service.ServerMessage(err); ok {
		return msg
	}
	return "Request failed, please try again."
}

func (m appModel) fetchPlaysCmd(seq int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		plays, err := client.GetPlays(context.Background())
		return playsMsg{seq: seq, plays: plays, err: err}
	}
}

func (m appModel) fetchPlayCmd(seq int, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		playId, err := uuid.Parse(id)
		if err != nil {
			return playMsg{seq: seq, err: fmt.Errorf("invalid play id %q", id)}
		}
		play, err := client.GetPlay(context.Background(), playId)
		return playMsg{seq: seq, play: play, err: err}
	}
}

// fetchSeatViewCmd loads the performance and its seat availability in
// parallel; the view is all-or-nothing because seat prices depend on both.
func (m appModel) fetchSeatViewCmd(seq int, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		performanceId, err := uuid.Parse(id)
		if err != nil {
			return seatViewMsg{seq: seq, err: fmt.Errorf("invalid performance id %q", id)}
		}

		var (
			performance model.Performance
			seats       []model.PerformanceSeat
		)
		group, ctx := errgroup.WithContext(context.Background())
		group.Go(func() error {
			var err error
			performance, err = client.GetPerformance(ctx, performanceId)
			return err
		})
		group.Go(func() error {
			var err error
			seats, err = client.GetPerformanceSeats(ctx, performanceId)
			return err
		})
		if err := group.Wait(); err != nil {
			return seatViewMsg{seq: seq, err: err}
		}
		return seatViewMsg{seq: seq, performance: performance, seats: seats}
	}
}

func (m appModel) refreshSeatsCmd(seq int) tea.Cmd {
	client := m.client
	performanceId := m.performance.Id
	return func() tea.Msg {
		seats, err := client.GetPerformanceSeats(context.Background(), performanceId)
		return seatRefreshMsg{seq: seq, seats: seats, err: err}
	}
}

func (m appModel) fetchBookingsCmd(seq int, phone string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		bookings, err := client.GetBookings(context.Background(), phone)
		return bookingsMsg{seq: seq, bookings: bookings, err: err}
	}
}

func (m appModel) submitBookingCmd(seq int) tea.Cmd {
	client := m.client
	phone, name := m.phone, m.name
	cart := m.session.Cart()
	performanceId := cart.PerformanceId()
	seatIds := cart.SeatIds()
	return func() tea.Msg {
		booking, err := client.CreateBooking(context.Background(), phone, name, performanceId, seatIds)
		return bookingCreatedMsg{seq: seq, booking: booking, err: err}
	}
}

func (m appModel) cancelBookingCmd(seq int, id uuid.UUID) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.CancelBooking(context.Background(), id)
		return bookingCancelledMsg{seq: seq, err: err}
	}
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingPlays, stateLoadingPlay, stateLoadingSeats,
		stateLoadingBookings, stateSubmitting, stateCancelling:
		return header + "\n\n" + m.loadingView()
	case statePlayList:
		return header + "\n\n" + m.playList.View()
	case statePlayDetail:
		return header + "\n\n" + m.playDetailView()
	case stateSelectSeats:
		return header + "\n\n" + m.seatView()
	case statePromptContact:
		return header + "\n\n" + m.contactView()
	case statePromptPhone:
		return header + "\n\n" + m.phoneView()
	case stateBookings:
		return header + "\n\n" + m.bookingsView()
	case stateConfirmCancel:
		return header + "\n\n" + m.confirmCancelView()
	case stateError:
		return header + "\n\n" + m.errorView()
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Theater Box Office")
	sub := []string{}
	if m.play.Title != "" && (m.state == statePlayDetail || m.state == stateSelectSeats || m.state == statePromptContact || m.state == stateSubmitting) {
		sub = append(sub, "Play: "+m.play.Title)
	}
	if !m.performance.Date.IsZero() && (m.state == stateSelectSeats || m.state == statePromptContact || m.state == stateSubmitting) {
		sub = append(sub, "Performance: "+m.performance.Date.Local().Format("02 Jan 15:04"))
	}
	if m.phone != "" && (m.state == stateBookings || m.state == stateConfirmCancel || m.state == stateCancelling) {
		sub = append(sub, "Phone: "+m.phone)
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back"
	switch m.state {
	case statePlayList:
		hints = "ctrl+c quit • type to filter • enter open play • b my bookings"
	case statePlayDetail:
		hints = "ctrl+c quit • esc back • type to filter • enter pick seats • b my bookings"
	case stateSelectSeats:
		hints = "ctrl+c quit • esc back • arrows move • space toggle seat • c book • n numbers"
	case stateBookings:
		hints = "ctrl+c quit • esc back • type to filter • c cancel booking • p change phone"
	case statePromptContact:
		hints = "enter confirm • tab switch field • esc abort"
	case statePromptPhone:
		hints = "enter confirm • esc back"
	case stateConfirmCancel:
		hints = "y confirm cancel • n keep booking"
	case stateError:
		hints = "enter reload • esc back • ctrl+c quit"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateLoadingPlays:
		title = "Loading plays"
	case stateLoadingPlay:
		title = "Loading play"
	case stateLoadingSeats:
		title = "Loading seats"
	case stateLoadingBookings:
		title = "Loading bookings"
	case stateSubmitting:
		title = "Submitting booking"
	case stateCancelling:
		title = "Cancelling booking"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) playDetailView() string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(m.play.Title)}
	if m.play.Author != "" {
		lines = append(lines, "by "+m.play.Author)
	}
	meta := []string{}
	if m.play.Genre != "" {
		meta = append(meta, m.play.Genre)
	}
	if m.play.Duration > 0 {
		meta = append(meta, fmt.Sprintf("%d min", m.play.Duration))
	}
	if len(meta) > 0 {
		lines = append(lines, hint(strings.Join(meta, " • ")))
	}
	if m.play.Description != "" {
		lines = append(lines, "", m.play.Description)
	}
	if m.play.PosterURL != "" {
		lines = append(lines, hint("poster: "+m.play.PosterURL))
	}
	return strings.Join(lines, "\n") + "\n\n" + m.performanceList.View()
}

func (m appModel) seatView() string {
	var cart *checkout.Cart
	if m.session != nil {
		cart = m.session.Cart()
	}
	sections := []string{renderSeatGrid(m.grid, cart)}
	if seat, ok := m.grid.current(); ok && seat.Seat != nil {
		sections = append(sections, hint(fmt.Sprintf("Row %d Seat %d • %s • %s • %s",
			seat.Seat.Row, seat.Seat.Number, seat.Seat.Category, formatPrice(seat.Price), seat.Status)))
	}
	if cart != nil && cart.Count() > 0 {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Render(
			fmt.Sprintf("Selected %d seat(s) • Total %s • press c to book", cart.Count(), formatPrice(cart.Total()))))
	}
	if m.submitNote != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.submitNote))
	}
	return strings.Join(sections, "\n")
}

func (m appModel) contactView() string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Book seats")}
	if m.session != nil {
		cart := m.session.Cart()
		lines = append(lines, hint(fmt.Sprintf("%d seat(s) • total %s", cart.Count(), formatPrice(cart.Total()))))
	}
	lines = append(lines, "",
		"Phone: "+m.phoneInput.View(),
		"Name:  "+m.nameInput.View(),
	)
	return strings.Join(lines, "\n")
}

func (m appModel) phoneView() string {
	return strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("My bookings"),
		hint("Bookings are looked up by the phone number used to book."),
		"",
		"Phone: " + m.phoneInput.View(),
	}, "\n")
}

func (m appModel) bookingsView() string {
	view := m.bookingList.View()
	if m.notice != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(m.notice)
	}
	return view
}

func (m appModel) confirmCancelView() string {
	target := bookingItem{booking: m.cancelTarget}
	return strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("Cancel this booking?"),
		"",
		target.Title(),
		hint(target.Description()),
		"",
		"Press y to cancel the booking, n to keep it.",
	}, "\n")
}

func (m appModel) errorView() string {
	message := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("Failed to load data.")
	return message + "\n\n" + hint("Press enter to reload, esc to go back, or ctrl+c to quit.")
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return false
		}
		if isReservedKey(m.state, msg.Runes[0]) {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

// isReservedKey keeps single-letter actions working on the lists that define
// them; everything else feeds the filter.
func isReservedKey(state appState, r rune) bool {
	switch state {
	case statePlayList, statePlayDetail:
		return r == 'q' || r == 'b'
	case stateBookings:
		return r == 'q' || r == 'c' || r == 'p'
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case statePlayList:
		return &m.playList
	case statePlayDetail:
		return &m.performanceList
	case stateBookings:
		return &m.bookingList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.playList.SetSize(m.width, h)
	m.performanceList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
