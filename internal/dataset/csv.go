package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/cexcal-dev/cexcal/internal/model"
)

// Header is the CSV header row, in column order.
const Header = "date,exchange,type,token,token_display,time,pairs,notes"

// CSVCodec handles CSV datasets with a header row matching Header.
type CSVCodec struct{}

// Format returns the codec name.
func (c *CSVCodec) Format() string { return "csv" }

// Parse reads listings from CSV.
func (c *CSVCodec) Parse(r io.Reader) ([]model.Listing, error) {
	var listings []model.Listing
	if err := gocsv.Unmarshal(r, &listings); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading listings CSV: %w", err)
	}
	if len(listings) == 0 {
		return nil, nil
	}
	return listings, nil
}

// Write writes listings as CSV with a header row.
func (c *CSVCodec) Write(w io.Writer, listings []model.Listing) error {
	if listings == nil {
		listings = []model.Listing{}
	}
	if err := gocsv.Marshal(&listings, w); err != nil {
		return fmt.Errorf("writing listings CSV: %w", err)
	}
	return nil
}
