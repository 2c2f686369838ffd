// Package dataset reads and writes listing datasets.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cexcal-dev/cexcal/internal/model"
)

// Codec converts a dataset file to and from listings.
type Codec interface {
	Parse(r io.Reader) ([]model.Listing, error)
	Write(w io.Writer, listings []model.Listing) error
	Format() string
}

// Registry holds codecs keyed by format name.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec. Panics on duplicate format.
func (r *Registry) Register(c Codec) {
	key := strings.ToLower(c.Format())
	if _, ok := r.codecs[key]; ok {
		panic("duplicate dataset format: " + key)
	}
	r.codecs[key] = c
}

// Get returns the codec for format, or nil.
func (r *Registry) Get(format string) Codec {
	return r.codecs[strings.ToLower(format)]
}

// ForPath returns the codec matching the file extension of path.
func (r *Registry) ForPath(path string) (Codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	c := r.Get(ext)
	if c == nil {
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
	return c, nil
}

// DefaultRegistry returns a registry with the JSON and CSV codecs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONCodec{})
	r.Register(&CSVCodec{})
	return r
}

// Load reads a dataset file, choosing the codec by extension.
func Load(path string) ([]model.Listing, error) {
	codec, err := DefaultRegistry().ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	listings, err := codec.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return listings, nil
}

// Save writes listings to path, choosing the codec by extension.
func Save(path string, listings []model.Listing) error {
	codec, err := DefaultRegistry().ForPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating dataset dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	defer f.Close()

	if err := codec.Write(f, listings); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return nil
}
