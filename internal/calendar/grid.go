// Package calendar builds the 6x7 month grid and moves the month cursor.
package calendar

import (
	"time"

	"github.com/cexcal-dev/cexcal/internal/datekey"
)

const (
	// DaysPerWeek is the number of grid columns. Weeks start on Sunday.
	DaysPerWeek = 7
	// Rows is the number of grid rows.
	Rows = 6
	// CellCount is the fixed number of cells in a month grid.
	CellCount = Rows * DaysPerWeek
)

// Weekdays holds the column headings, Sunday first.
var Weekdays = [DaysPerWeek]string{"日", "一", "二", "三", "四", "五", "六"}

// Cell is one day slot in the month grid.
type Cell struct {
	Day     int    `json:"day"`
	Key     string `json:"date"` // "YYYY-MM-DD"
	InMonth bool   `json:"in_month"`
	Today   bool   `json:"today"`
}

// Build returns the CellCount cells for year/month: trailing days of the
// previous month, every day of the month, then leading days of the next
// month. Today is marked only on in-month cells.
func Build(year int, month time.Month, today time.Time) []Cell {
	cells := make([]Cell, 0, CellCount)
	todayKey := datekey.FromTime(today)

	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	daysInMonth := datekey.DaysIn(year, month)
	daysInPrev := datekey.DaysIn(year, month-1)

	for i := lead - 1; i >= 0; i-- {
		day := daysInPrev - i
		cells = append(cells, Cell{Day: day, Key: datekey.Format(year, month-1, day)})
	}

	for day := 1; day <= daysInMonth; day++ {
		key := datekey.Format(year, month, day)
		cells = append(cells, Cell{Day: day, Key: key, InMonth: true, Today: key == todayKey})
	}

	// Continue the day counter past the month end; Format rolls it into the
	// next month and year.
	remaining := CellCount - len(cells)
	for i := 1; i <= remaining; i++ {
		cells = append(cells, Cell{Day: i, Key: datekey.Format(year, month, daysInMonth+i)})
	}

	return cells
}

// Weeks splits cells into rows of DaysPerWeek.
func Weeks[T any](cells []T) [][]T {
	var rows [][]T
	for i := 0; i < len(cells); i += DaysPerWeek {
		end := i + DaysPerWeek
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[i:end])
	}
	return rows
}

// Prev returns the month before year/month, rolling January back to
// December of the previous year.
func Prev(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// Next returns the month after year/month, rolling December over to
// January of the next year.
func Next(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
