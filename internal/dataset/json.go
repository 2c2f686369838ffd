package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cexcal-dev/cexcal/internal/model"
)

// JSONCodec handles the JSON array format produced by the listing scraper
// (cex_listings.json).
type JSONCodec struct{}

// Format returns the codec name.
func (c *JSONCodec) Format() string { return "json" }

// Parse decodes a JSON array of listings.
func (c *JSONCodec) Parse(r io.Reader) ([]model.Listing, error) {
	var listings []model.Listing
	if err := json.NewDecoder(r).Decode(&listings); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding listings JSON: %w", err)
	}
	return listings, nil
}

// Write encodes listings as an indented JSON array.
func (c *JSONCodec) Write(w io.Writer, listings []model.Listing) error {
	if listings == nil {
		listings = []model.Listing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(listings); err != nil {
		return fmt.Errorf("encoding listings JSON: %w", err)
	}
	return nil
}
