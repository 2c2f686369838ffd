package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cexcal-dev/cexcal/internal/listings"
	"github.com/cexcal-dev/cexcal/internal/model"
	"github.com/cexcal-dev/cexcal/internal/render"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 10, 0, 0, 0, time.UTC) }
}

func newWidget(t *testing.T, ls []model.Listing, opts ...Option) *Widget {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock(2024, time.March, 15))}, opts...)
	return New(listings.NewService(ls), opts...)
}

func findDay(t *testing.T, p Page, key string) render.DayView {
	t.Helper()
	for _, week := range p.Weeks {
		for _, d := range week {
			if d.Key == key {
				return d
			}
		}
	}
	t.Fatalf("day %s not in page", key)
	return render.DayView{}
}

func badgeCount(p Page) int {
	n := 0
	for _, week := range p.Weeks {
		for _, d := range week {
			if d.HasEvents {
				n++
			}
		}
	}
	return n
}

func TestNew_StartsAtClockMonth(t *testing.T) {
	w := newWidget(t, nil)
	assert.Equal(t, ViewState{Year: 2024, Month: time.March}, w.State())
	assert.False(t, w.ModalOpen())
}

func TestRender_SingleListingBadge(t *testing.T) {
	w := newWidget(t, []model.Listing{
		{Date: "2024-03-05", Exchange: "Binance", Type: model.TypeSpot, Token: "ABC"},
	})

	p := w.Render()
	assert.Equal(t, "2024年 三月", p.Header)
	require.Len(t, p.Weeks, 6)
	assert.Equal(t, 1, badgeCount(p))

	day := findDay(t, p, "2024-03-05")
	assert.True(t, day.HasEvents)
	assert.Equal(t, 1, day.Count)
	require.Len(t, day.Entries, 1)
	assert.Equal(t, "Binance-Spot-ABC", day.Entries[0].Summary)

	today := findDay(t, p, "2024-03-15")
	assert.True(t, today.Today)
}

func TestSetExchange_FiltersBadgesAndRestores(t *testing.T) {
	w := newWidget(t, []model.Listing{
		{Date: "2024-03-05", Exchange: "Binance", Token: "ABC"},
		{Date: "2024-03-05", Exchange: "OKX", Token: "ABC"},
		{Date: "2024-03-09", Exchange: "OKX", Token: "XYZ"},
	})

	p := w.Render()
	assert.Equal(t, 2, badgeCount(p))
	assert.Equal(t, 2, findDay(t, p, "2024-03-05").Count)

	w.SetExchange("Binance")
	p = w.Render()
	assert.Equal(t, "Binance", p.Exchange)
	assert.Equal(t, 1, badgeCount(p))
	assert.Equal(t, 1, findDay(t, p, "2024-03-05").Count)
	assert.False(t, findDay(t, p, "2024-03-09").HasEvents)

	// Stats ignore the filter.
	assert.Len(t, p.Stats.Rows, 2)

	w.SetExchange("")
	p = w.Render()
	assert.Equal(t, 2, badgeCount(p))
	assert.Equal(t, 2, findDay(t, p, "2024-03-05").Count)
}

func TestRender_ExchangeOptions(t *testing.T) {
	w := newWidget(t, []model.Listing{
		{Date: "2023-01-01", Exchange: "OKX"},
		{Date: "2024-03-05", Exchange: "Binance"},
		{Date: "2024-03-06"},
	})
	assert.Equal(t, []string{"Binance", "OKX"}, w.Render().Exchanges)
}

func TestNavigation_YearRollover(t *testing.T) {
	w := New(listings.NewService(nil), WithClock(fixedClock(2024, time.December, 1)))

	w.NextMonth()
	assert.Equal(t, 2025, w.State().Year)
	assert.Equal(t, time.January, w.State().Month)

	w.PrevMonth()
	w.PrevMonth()
	assert.Equal(t, 2024, w.State().Year)
	assert.Equal(t, time.November, w.State().Month)

	w.GoTo(2025, time.January)
	w.PrevMonth()
	assert.Equal(t, 2024, w.State().Year)
	assert.Equal(t, time.December, w.State().Month)
}

func TestNavigation_KeepsFilter(t *testing.T) {
	w := newWidget(t, nil, WithExchange("OKX"))
	w.NextMonth()
	assert.Equal(t, "OKX", w.State().Exchange)
}

func TestRender_StatsFollowMonth(t *testing.T) {
	w := newWidget(t, []model.Listing{
		{Date: "2024-03-05", Exchange: "A", Type: model.TypeSpot},
		{Date: "2024-04-05", Exchange: "B", Type: model.TypePerp},
	})

	p := w.Render()
	require.Len(t, p.Stats.Rows, 1)
	assert.Equal(t, "A", p.Stats.Rows[0].Exchange)

	w.NextMonth()
	p = w.Render()
	require.Len(t, p.Stats.Rows, 1)
	assert.Equal(t, "B", p.Stats.Rows[0].Exchange)

	w.NextMonth()
	assert.True(t, w.Render().Stats.Empty())
}

func TestSelectDay_EmptyShowsPlaceholder(t *testing.T) {
	w := newWidget(t, nil)
	w.SelectDay("2024-03-07")

	require.True(t, w.ModalOpen())
	m := w.Render().Modal
	require.NotNil(t, m)
	assert.True(t, m.Empty)
	assert.Equal(t, render.NoListingsMessage, m.Message)
	assert.Empty(t, m.Details)
}

func TestSelectDay_UsesFilter(t *testing.T) {
	w := newWidget(t, []model.Listing{
		{Date: "2024-03-05", Exchange: "Binance", Token: "ABC"},
		{Date: "2024-03-05", Exchange: "OKX", Token: "ABC"},
	})

	w.SetExchange("OKX")
	w.SelectDay("2024-03-05")

	m := w.Render().Modal
	require.NotNil(t, m)
	require.Len(t, m.Details, 1)
	assert.Equal(t, "OKX-Spot-ABC", m.Details[0].Header)
	assert.Equal(t, "2024年 3月 5日", m.Heading)
}

func TestCloseModal_Idempotent(t *testing.T) {
	w := newWidget(t, nil)

	w.CloseModal()
	assert.False(t, w.ModalOpen())

	w.SelectDay("2024-03-05")
	w.DismissOutside()
	assert.False(t, w.ModalOpen())
	assert.Nil(t, w.Render().Modal)

	w.DismissOutside()
	w.CloseModal()
	assert.False(t, w.ModalOpen())
}
