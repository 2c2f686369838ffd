package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cexcal-dev/cexcal/internal/model"
)

var stamp = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testListings() []model.Listing {
	return []model.Listing{
		{Date: "2024-02-29", Exchange: "Binance", Token: "OLD"},
		{Date: "2024-03-05", Exchange: "Binance", Type: model.TypeSpot, Token: "ABC", Time: "08:00 UTC", Pairs: "ABC/USDT"},
		{Date: "2024-03-18", Exchange: "OKX", Type: model.TypePerp, Token: "XYZ", Notes: "Perp, USDT margined; 50x"},
		{Date: "2024-04-01", Exchange: "OKX", Token: "NEW"},
	}
}

func TestSelect(t *testing.T) {
	p := Params{Year: 2024, Month: time.March}
	got := Select(testListings(), p)
	require.Len(t, got, 2)
	assert.Equal(t, "ABC", got[0].Token)
	assert.Equal(t, "XYZ", got[1].Token)

	p.Exchange = "OKX"
	got = Select(testListings(), p)
	require.Len(t, got, 1)
	assert.Equal(t, "XYZ", got[0].Token)
}

func TestWriteICS(t *testing.T) {
	p := Params{Year: 2024, Month: time.March, Stamp: stamp}
	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, p, Select(testListings(), p)))
	body := buf.String()

	for _, field := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ICSProductID,
		"METHOD:PUBLISH",
		"END:VCALENDAR",
	} {
		assert.Contains(t, body, field)
	}

	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
	assert.Contains(t, body, "DTSTART;VALUE=DATE:20240305")
	assert.Contains(t, body, "DTEND;VALUE=DATE:20240306")
	assert.Contains(t, body, "DTSTAMP:20240301T120000Z")
	assert.Contains(t, body, "SUMMARY:Binance-Spot-ABC")
	assert.Contains(t, body, "SUMMARY:OKX-Perp-XYZ")
	assert.Contains(t, body, "CATEGORIES:Perp")
	assert.Contains(t, body, `DESCRIPTION:时间：08:00 UTC\n交易对：ABC/USDT`)
	assert.Contains(t, body, `详情：Perp\, USDT margined\; 50x`)
	assert.Contains(t, body, "UID:"+eventUID(Select(testListings(), p)[0])+"@cexcal.local")
	assert.True(t, strings.HasSuffix(body, "END:VCALENDAR\r\n"))
}

func icsUIDs(t *testing.T, ls []model.Listing) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, Params{Year: 2024, Month: time.March, Stamp: stamp}, ls))
	var uids []string
	for _, line := range strings.Split(buf.String(), "\r\n") {
		if uid, ok := strings.CutPrefix(line, "UID:"); ok {
			uids = append(uids, uid)
		}
	}
	return uids
}

func TestWriteICS_UIDsAreDistinct(t *testing.T) {
	ls := []model.Listing{
		{Date: "2024-03-05", Exchange: "币安", Token: "ABC"},
		{Date: "2024-03-05", Exchange: "火币", Token: "ABC"},
		{Date: "2024-03-05", Exchange: "Binance", Token: "代币一"},
		{Date: "2024-03-05", Exchange: "Binance", Token: "代币二"},
		{Date: "2024-03-05", Exchange: "OKX", Token: "DUP"},
		{Date: "2024-03-05", Exchange: "OKX", Token: "DUP"},
	}

	uids := icsUIDs(t, ls)
	require.Len(t, uids, len(ls))
	seen := make(map[string]bool)
	for _, uid := range uids {
		assert.False(t, seen[uid], "duplicate UID %s", uid)
		seen[uid] = true
		assert.True(t, strings.HasSuffix(uid, "@cexcal.local"), uid)
	}
}

func TestWriteICS_UIDsAreStable(t *testing.T) {
	p := Params{Year: 2024, Month: time.March}
	assert.Equal(t, icsUIDs(t, Select(testListings(), p)), icsUIDs(t, Select(testListings(), p)))
}

func TestWriteICS_SkipsMalformedDates(t *testing.T) {
	var buf bytes.Buffer
	err := WriteICS(&buf, Params{Year: 2024, Month: time.March, Stamp: stamp}, []model.Listing{
		{Date: "2024/03/05", Exchange: "Binance"},
		{Date: "2024-03-06", Exchange: "Binance"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "BEGIN:VEVENT"))
}

func TestWriteJSON(t *testing.T) {
	p := Params{Year: 2024, Month: time.March, Exchange: "OKX"}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", p, Select(testListings(), p)))

	var got struct {
		Year     int             `json:"year"`
		Month    int             `json:"month"`
		Exchange string          `json:"exchange"`
		Listings []model.Listing `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, "OKX", got.Exchange)
	require.Len(t, got.Listings, 1)
	assert.Equal(t, "XYZ", got.Listings[0].Token)
}

func TestWriteJSON_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Params{Year: 2024, Month: time.May}, nil))
	assert.Contains(t, buf.String(), `"listings":[]`)
}

func TestWriteCSV(t *testing.T) {
	p := Params{Year: 2024, Month: time.March}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", p, Select(testListings(), p)))

	body := buf.String()
	assert.True(t, strings.HasPrefix(body, "date,exchange,type,token,token_display,time,pairs,notes\n"))
	assert.Contains(t, body, "2024-03-05,Binance,spot,ABC,,08:00 UTC,ABC/USDT,")
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", Params{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "cex_listings_2024-03.ics", Params{Year: 2024, Month: time.March}.Filename("ics"))
	assert.Equal(t, "cex_listings_2024-12_Gate_io.csv", Params{Year: 2024, Month: time.December, Exchange: "Gate.io"}.Filename("csv"))
}

func TestContentType(t *testing.T) {
	assert.Contains(t, ContentType("ics"), "text/calendar")
	assert.Contains(t, ContentType("csv"), "text/csv")
	assert.Contains(t, ContentType("json"), "application/json")
}
