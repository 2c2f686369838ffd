package render

import (
	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/model"
)

// Detail is the full detail block for one listing in the modal.
type Detail struct {
	Header     string `json:"header"`
	TypeLabel  string `json:"type_label"`
	BadgeClass string `json:"badge_class"` // "type-spot", "type-perp", ...
	Category   string `json:"category"`
	Time       string `json:"time,omitempty"`
	Pairs      string `json:"pairs,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ModalView is the day detail dialog.
type ModalView struct {
	Key     string   `json:"date"`
	Heading string   `json:"heading"`
	Empty   bool     `json:"empty"`
	Message string   `json:"message,omitempty"` // set when Empty
	Details []Detail `json:"details"`
}

// NewDetail derives the detail block for a listing. Optional lines are left
// empty when the listing lacks them.
func NewDetail(l model.Listing) Detail {
	t := l.ResolvedType()
	return Detail{
		Header:     l.Title(ModalUnknownExchange, ModalUnknownToken),
		TypeLabel:  t.Label(),
		BadgeClass: "type-" + t.Class(),
		Category:   Category(l.Exchange),
		Time:       l.Time,
		Pairs:      l.Pairs,
		Notes:      l.Notes,
	}
}

// Modal renders the detail dialog for key. A day without listings shows
// NoListingsMessage instead of an empty list.
func Modal(key string, events []model.Listing) ModalView {
	v := ModalView{Key: key, Heading: key}
	if t, err := datekey.Parse(key); err == nil {
		v.Heading = DateHeading(t)
	}

	if len(events) == 0 {
		v.Empty = true
		v.Message = NoListingsMessage
		return v
	}
	for _, l := range events {
		v.Details = append(v.Details, NewDetail(l))
	}
	return v
}
