// Package stats aggregates per-exchange listing counts for a month.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/listings"
	"github.com/cexcal-dev/cexcal/internal/model"
)

// EmptyMessage is shown when the month has no listings.
const EmptyMessage = "该月暂无数据"

// Row holds the counts for one exchange.
type Row struct {
	Exchange  string          `json:"exchange"`
	Total     int             `json:"total"`
	Spot      int             `json:"spot"`
	Perp      int             `json:"perp"`
	PreMarket int             `json:"pre_market"`
	Alpha     int             `json:"alpha"`
	Share     decimal.Decimal `json:"share"` // percent of MonthTotal, one decimal place
}

// Count returns the count for a listing type, or 0 for unknown types.
func (r Row) Count(t model.ListingType) int {
	switch t {
	case model.TypeSpot:
		return r.Spot
	case model.TypePerp:
		return r.Perp
	case model.TypePreMarket:
		return r.PreMarket
	case model.TypeAlpha:
		return r.Alpha
	}
	return 0
}

// Report is the stats panel for one month.
type Report struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	First      string     `json:"first"`
	Last       string     `json:"last"`
	MonthTotal int        `json:"month_total"` // sum of row totals
	Rows       []Row      `json:"rows"`
}

// Empty reports whether the month has no exchange listings.
func (r Report) Empty() bool {
	return len(r.Rows) == 0
}

var hundred = decimal.NewFromInt(100)

// Aggregate counts the listings of year/month per exchange. Rows are ordered
// by total descending; ties keep alphabetical order. Listings without an
// exchange are not counted.
func Aggregate(ls []model.Listing, year int, month time.Month) Report {
	first, last := datekey.MonthRange(year, month)
	report := Report{Year: year, Month: month, First: first, Last: last}

	inMonth := listings.InRange(ls, first, last)

	for _, exchange := range listings.DistinctExchanges(inMonth) {
		group := byExchange(inMonth, exchange)
		row := Row{
			Exchange:  exchange,
			Total:     len(group),
			Spot:      countType(group, model.TypeSpot),
			Perp:      countType(group, model.TypePerp),
			PreMarket: countType(group, model.TypePreMarket),
			Alpha:     countType(group, model.TypeAlpha),
		}
		report.Rows = append(report.Rows, row)
		report.MonthTotal += row.Total
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Total > report.Rows[j].Total
	})

	if report.MonthTotal > 0 {
		total := decimal.NewFromInt(int64(report.MonthTotal))
		for i := range report.Rows {
			report.Rows[i].Share = decimal.NewFromInt(int64(report.Rows[i].Total)).
				Mul(hundred).
				DivRound(total, 1)
		}
	}

	return report
}

func byExchange(ls []model.Listing, exchange string) []model.Listing {
	var group []model.Listing
	for _, l := range ls {
		if l.Exchange == exchange {
			group = append(group, l)
		}
	}
	return group
}

// countType matches the raw type field; listings without a type count toward
// the exchange total only.
func countType(ls []model.Listing, t model.ListingType) int {
	n := 0
	for _, l := range ls {
		if l.Type == t {
			n++
		}
	}
	return n
}
