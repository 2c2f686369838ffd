package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/export"
	"github.com/cexcal-dev/cexcal/internal/model"
	"github.com/cexcal-dev/cexcal/internal/stats"
	"github.com/cexcal-dev/cexcal/internal/widget"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// filterForm is the exchange selector submission. An empty exchange clears
// the filter.
type filterForm struct {
	Exchange string `schema:"exchange"`
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(s.page())); err != nil {
		log.Errorf("rendering page: %v", err)
		http.Error(w, ErrInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("writing page: %v", err)
	}
}

func (s *Server) handlePrev(w http.ResponseWriter, r *http.Request) {
	s.update((*widget.Widget).PrevMonth)
	redirectHome(w, r)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.update((*widget.Widget).NextMonth)
	redirectHome(w, r)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidForm, http.StatusBadRequest)
		return
	}
	var form filterForm
	if err := formDecoder.Decode(&form, r.PostForm); err != nil {
		log.Warnf("handleFilter: failed to decode form: %v", err)
		http.Error(w, ErrInvalidForm, http.StatusBadRequest)
		return
	}
	s.update(func(wg *widget.Widget) { wg.SetExchange(form.Exchange) })
	redirectHome(w, r)
}

func (s *Server) handleSelectDay(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if !datekey.Valid(date) {
		http.Error(w, ErrInvalidDate, http.StatusBadRequest)
		return
	}
	s.update(func(wg *widget.Widget) { wg.SelectDay(date) })
	redirectHome(w, r)
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	s.update((*widget.Widget).DismissOutside)
	redirectHome(w, r)
}

// handleCalendar returns the page for the requested month and filter without
// touching the shared widget. The modal is always closed.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, month, msg := s.parseMonth(q)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	wg := widget.New(s.index, widget.WithClock(s.now), widget.WithExchange(q.Get("exchange")))
	wg.GoTo(year, month)
	writeJSON(w, wg.Render())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if !datekey.Valid(date) {
		http.Error(w, ErrInvalidDate, http.StatusBadRequest)
		return
	}
	exchange := r.URL.Query().Get("exchange")
	events := s.index.ForDate(date, exchange)
	if events == nil {
		events = []model.Listing{}
	}
	writeJSON(w, map[string]any{
		"date":     date,
		"exchange": exchange,
		"listings": events,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	year, month, msg := s.parseMonth(r.URL.Query())
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	writeJSON(w, stats.Aggregate(s.index.All(), year, month))
}

func (s *Server) handleExchanges(w http.ResponseWriter, r *http.Request) {
	names := s.index.Exchanges()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, names)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, month, msg := s.parseMonth(q)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	format := q.Get("format")
	if format == "" {
		format = "ics"
	}
	if !slices.Contains(export.Formats, format) {
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
		return
	}

	p := export.Params{Year: year, Month: month, Exchange: q.Get("exchange"), Stamp: s.now()}
	var buf bytes.Buffer
	if err := export.Write(&buf, format, p, export.Select(s.index.All(), p)); err != nil {
		log.Errorf("handleDownload: %v", err)
		http.Error(w, ErrInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+p.Filename(format)+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("writing download: %v", err)
	}
}

// parseMonth reads the optional year and month query parameters, defaulting
// to the current month. A non-empty msg describes the first invalid value.
func (s *Server) parseMonth(q url.Values) (year int, month time.Month, msg string) {
	now := s.now()
	year, month = now.Year(), now.Month()

	if v := q.Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 || y > 9999 {
			return 0, 0, ErrInvalidYear
		}
		year = y
	}
	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, ErrInvalidMonth
		}
		month = time.Month(m)
	}
	return year, month, ""
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}
