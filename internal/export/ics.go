package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/model"
	"github.com/cexcal-dev/cexcal/internal/render"
)

// WriteICS writes listings as all-day VEVENTs. Listings whose date is not a
// valid key are skipped.
func WriteICS(w io.Writer, p Params, ls []model.Listing) error {
	stamp := p.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	dtstamp := stamp.UTC().Format("20060102T150405Z")

	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\r\n", args...)
	}

	name := render.MonthHeader(p.Year, p.Month)
	if p.Exchange != "" {
		name += " " + p.Exchange
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", ICSProductID)
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")
	line("X-WR-CALNAME:%s", escapeText("CEX Listings "+name))

	seen := make(map[string]int)
	for i, l := range ls {
		date, err := datekey.Parse(l.Date)
		if err != nil {
			log.Warnf("ics export: skipping listing %d: %v", i+1, err)
			continue
		}

		t := l.ResolvedType()
		base := eventUID(l)
		uid := base
		if n := seen[base]; n > 0 {
			uid = uuid.NewSHA1(icsUIDNamespace, []byte(fmt.Sprintf("%s#%d", base, n))).String()
		}
		seen[base]++

		line("BEGIN:VEVENT")
		line("UID:%s@%s", uid, icsUIDDomain)
		line("DTSTAMP:%s", dtstamp)
		line("DTSTART;VALUE=DATE:%s", date.Format("20060102"))
		line("DTEND;VALUE=DATE:%s", date.AddDate(0, 0, 1).Format("20060102"))
		line("SUMMARY:%s", escapeText(l.Title(render.UnknownExchange, render.UnknownToken)))
		line("CATEGORIES:%s", t.Label())
		if desc := description(l); desc != "" {
			line("DESCRIPTION:%s", escapeText(desc))
		}
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return bw.Flush()
}

var icsUIDNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(icsUIDDomain))

// eventUID derives a name-based UUID from every field of the listing, so the
// UID stays stable across exports and differs whenever any field differs.
// Repeated identical listings are told apart by their occurrence number.
func eventUID(l model.Listing) string {
	fields := []string{l.Date, l.Exchange, string(l.Type), l.Token, l.TokenDisplay, l.Time, l.Pairs, l.Notes}
	return uuid.NewSHA1(icsUIDNamespace, []byte(strings.Join(fields, "\x1f"))).String()
}

func description(l model.Listing) string {
	var parts []string
	if l.Time != "" {
		parts = append(parts, render.TimeLabel+l.Time)
	}
	if l.Pairs != "" {
		parts = append(parts, render.PairsLabel+l.Pairs)
	}
	if l.Notes != "" {
		parts = append(parts, render.NotesLabel+l.Notes)
	}
	return strings.Join(parts, "\n")
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

func escapeText(s string) string {
	return icsEscaper.Replace(s)
}
