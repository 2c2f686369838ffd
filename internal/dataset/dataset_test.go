package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cexcal-dev/cexcal/internal/model"
)

func TestLoadTestdata_JSON(t *testing.T) {
	listings, err := Load("../../testdata/listings.json")
	require.NoError(t, err)
	require.Len(t, listings, 6)

	first := listings[0]
	assert.Equal(t, "2024-03-05", first.Date)
	assert.Equal(t, "Binance", first.Exchange)
	assert.Equal(t, model.TypeSpot, first.Type)
	assert.Equal(t, "Alphabet (ABC)", first.TokenDisplay)
	assert.Equal(t, "ABC/USDT", first.Pairs)

	// Absent fields stay empty.
	assert.Empty(t, listings[4].Type)
	assert.Empty(t, listings[5].Exchange)
}

func TestLoadTestdata_CSVMatchesJSON(t *testing.T) {
	fromJSON, err := Load("../../testdata/listings.json")
	require.NoError(t, err)
	fromCSV, err := Load("../../testdata/listings.csv")
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromCSV)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "listings.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dataset format")
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLoad(t *testing.T) {
	for _, ext := range []string{"json", "csv"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data", "listings."+ext)
			require.NoError(t, Save(path, Sample()))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Sample(), got)
		})
	}
}

func TestJSONCodec_Empty(t *testing.T) {
	c := &JSONCodec{}
	got, err := c.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONCodec_Malformed(t *testing.T) {
	_, err := (&JSONCodec{}).Parse(strings.NewReader(`[{"date": 5}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding listings JSON")
}

func TestCSVCodec_HeaderOnly(t *testing.T) {
	got, err := (&CSVCodec{}).Parse(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCSVCodec_WritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVCodec{}).Write(&buf, Sample()[:1]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2025-11-03,Binance,spot,SENT,"))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("JSON"))
	assert.NotNil(t, r.Get("csv"))
	assert.Nil(t, r.Get("xml"))

	assert.Panics(t, func() { r.Register(&JSONCodec{}) })

	c, err := r.ForPath("/tmp/x/listings.CSV")
	require.NoError(t, err)
	assert.Equal(t, "csv", c.Format())
}

func TestSample(t *testing.T) {
	for _, l := range Sample() {
		assert.NotEmpty(t, l.Date)
		assert.NotEmpty(t, l.Exchange)
		assert.True(t, l.ResolvedType().Known(), "sample %s has unknown type", l.Token)
	}
}
