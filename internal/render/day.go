// Package render derives the per-day and modal views of the calendar from
// grid cells and listings. It holds no state and performs no output.
package render

import (
	"github.com/cexcal-dev/cexcal/internal/calendar"
	"github.com/cexcal-dev/cexcal/internal/model"
)

// Entry is one listing summary line in a day cell.
type Entry struct {
	Exchange  string `json:"exchange"`
	TypeLabel string `json:"type_label"`
	TypeClass string `json:"type_class"` // "event-spot", "event-perp", ...
	Category  string `json:"category"`   // visual category, e.g. "exchange-binance"
	Token     string `json:"token"`
	Summary   string `json:"summary"` // "{exchange}-{typeLabel}-{token}"
}

// DayView is the rendered content of one grid cell.
type DayView struct {
	calendar.Cell
	HasEvents bool    `json:"has_events"`
	Count     int     `json:"count"`
	Entries   []Entry `json:"entries"`
}

// NewEntry derives the summary line for a listing.
func NewEntry(l model.Listing) Entry {
	t := l.ResolvedType()
	exchange := l.ExchangeOr(UnknownExchange)
	return Entry{
		Exchange:  exchange,
		TypeLabel: t.Label(),
		TypeClass: "event-" + t.Class(),
		Category:  Category(exchange),
		Token:     l.DisplayToken(UnknownToken),
		Summary:   l.Title(UnknownExchange, UnknownToken),
	}
}

// Day renders a cell with its listings. Every listing gets an entry.
func Day(cell calendar.Cell, events []model.Listing) DayView {
	v := DayView{Cell: cell, Count: len(events), HasEvents: len(events) > 0}
	for _, l := range events {
		v.Entries = append(v.Entries, NewEntry(l))
	}
	return v
}
