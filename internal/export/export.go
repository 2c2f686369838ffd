// Package export writes a month of listings as ICS, CSV or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cexcal-dev/cexcal/internal/dataset"
	"github.com/cexcal-dev/cexcal/internal/listings"
	"github.com/cexcal-dev/cexcal/internal/model"
)

// Formats lists the supported export formats.
var Formats = []string{"ics", "csv", "json"}

const (
	// ICSProductID identifies the generator in ICS output.
	ICSProductID = "-//cexcal//Listing Calendar//ZH"
	icsUIDDomain = "cexcal.local"
)

// Params describes what is being exported.
type Params struct {
	Year     int
	Month    time.Month
	Exchange string    // empty = all exchanges
	Stamp    time.Time // DTSTAMP for ICS; zero means time.Now
}

// Filename returns the attachment filename for format.
func (p Params) Filename(format string) string {
	name := fmt.Sprintf("cex_listings_%04d-%02d", p.Year, int(p.Month))
	if p.Exchange != "" {
		name += "_" + sanitize(p.Exchange)
	}
	return name + "." + format
}

// ContentType returns the MIME type for format.
func ContentType(format string) string {
	switch format {
	case "ics":
		return "text/calendar; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Select returns the listings of the month, restricted to the exchange when set.
func Select(ls []model.Listing, p Params) []model.Listing {
	var out []model.Listing
	for _, l := range listings.InMonth(ls, p.Year, p.Month) {
		if p.Exchange != "" && l.Exchange != p.Exchange {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Write writes listings in format.
func Write(w io.Writer, format string, p Params, ls []model.Listing) error {
	switch format {
	case "ics":
		return WriteICS(w, p, ls)
	case "csv":
		return (&dataset.CSVCodec{}).Write(w, ls)
	case "json":
		return WriteJSON(w, p, ls)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteJSON writes the month, filter and listings as one JSON object.
func WriteJSON(w io.Writer, p Params, ls []model.Listing) error {
	if ls == nil {
		ls = []model.Listing{}
	}
	data := map[string]any{
		"year":     p.Year,
		"month":    int(p.Month),
		"exchange": p.Exchange,
		"listings": ls,
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON export: %w", err)
	}
	return nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, s)
}
