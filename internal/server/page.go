package server

import (
	_ "embed"
	"html/template"

	"github.com/cexcal-dev/cexcal/internal/model"
	"github.com/cexcal-dev/cexcal/internal/render"
	"github.com/cexcal-dev/cexcal/internal/stats"
	"github.com/cexcal-dev/cexcal/internal/widget"
)

//go:embed page.html.tmpl
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// pageData is the template input: the rendered widget plus fixed labels.
type pageData struct {
	widget.Page
	Types        []model.ListingType
	AllExchanges string
	EmptyStats   string
	TimeLabel    string
	PairsLabel   string
	NotesLabel   string
}

func newPageData(p widget.Page) pageData {
	return pageData{
		Page:         p,
		Types:        model.Types,
		AllExchanges: render.AllExchanges,
		EmptyStats:   stats.EmptyMessage,
		TimeLabel:    render.TimeLabel,
		PairsLabel:   render.PairsLabel,
		NotesLabel:   render.NotesLabel,
	}
}
