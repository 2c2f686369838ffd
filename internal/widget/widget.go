// Package widget holds the calendar's view state and the user operations
// that mutate it. Each operation is a synchronous state change; Render
// derives the whole page from the current state.
package widget

import (
	"time"

	"github.com/cexcal-dev/cexcal/internal/calendar"
	"github.com/cexcal-dev/cexcal/internal/model"
	"github.com/cexcal-dev/cexcal/internal/render"
	"github.com/cexcal-dev/cexcal/internal/stats"
)

// Index looks up listings for the widget.
type Index interface {
	ForDate(key, exchange string) []model.Listing
	Exchanges() []string
	All() []model.Listing
}

// ViewState is the navigable state of the calendar.
type ViewState struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Exchange string     `json:"exchange"` // empty = no filter
}

// Page is everything needed to draw the widget for one state.
type Page struct {
	ViewState
	Header    string                       `json:"header"`
	Weekdays  [calendar.DaysPerWeek]string `json:"weekdays"`
	Weeks     [][]render.DayView           `json:"weeks"`
	Exchanges []string                     `json:"exchanges"`
	Stats     stats.Report                 `json:"stats"`
	Modal     *render.ModalView            `json:"modal,omitempty"`
}

// Widget owns the single view state. It is not safe for concurrent use.
type Widget struct {
	index Index
	now   func() time.Time
	state ViewState
	modal *render.ModalView
}

// Option configures a Widget.
type Option func(*Widget)

// WithClock replaces time.Now as the source of the initial month and of
// the "today" marker.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// WithExchange starts the widget with an exchange filter.
func WithExchange(exchange string) Option {
	return func(w *Widget) { w.state.Exchange = exchange }
}

// New creates a widget showing the current month with no filter.
func New(index Index, opts ...Option) *Widget {
	w := &Widget{index: index, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	today := w.now()
	w.state.Year = today.Year()
	w.state.Month = today.Month()
	return w
}

// State returns a copy of the view state.
func (w *Widget) State() ViewState {
	return w.state
}

// PrevMonth moves to the previous month.
func (w *Widget) PrevMonth() {
	w.state.Year, w.state.Month = calendar.Prev(w.state.Year, w.state.Month)
}

// NextMonth moves to the next month.
func (w *Widget) NextMonth() {
	w.state.Year, w.state.Month = calendar.Next(w.state.Year, w.state.Month)
}

// GoTo jumps to year/month.
func (w *Widget) GoTo(year int, month time.Month) {
	w.state.Year, w.state.Month = year, month
}

// SetExchange sets the exchange filter. An empty name clears it.
func (w *Widget) SetExchange(exchange string) {
	w.state.Exchange = exchange
}

// SelectDay opens the modal for key with the day's filtered listings.
func (w *Widget) SelectDay(key string) {
	m := render.Modal(key, w.index.ForDate(key, w.state.Exchange))
	w.modal = &m
}

// CloseModal hides the modal. Closing a hidden modal does nothing.
func (w *Widget) CloseModal() {
	w.modal = nil
}

// DismissOutside handles a pointer interaction outside the modal content.
func (w *Widget) DismissOutside() {
	w.CloseModal()
}

// ModalOpen reports whether the modal is shown.
func (w *Widget) ModalOpen() bool {
	return w.modal != nil
}

// Render derives the page for the current state.
func (w *Widget) Render() Page {
	s := w.state
	cells := calendar.Build(s.Year, s.Month, w.now())

	days := make([]render.DayView, len(cells))
	for i, c := range cells {
		days[i] = render.Day(c, w.index.ForDate(c.Key, s.Exchange))
	}

	p := Page{
		ViewState: s,
		Header:    render.MonthHeader(s.Year, s.Month),
		Weekdays:  calendar.Weekdays,
		Exchanges: w.index.Exchanges(),
		Stats:     stats.Aggregate(w.index.All(), s.Year, s.Month),
	}
	p.Weeks = calendar.Weeks(days)
	if w.modal != nil {
		m := *w.modal
		p.Modal = &m
	}
	return p
}
