// Package estimate exposes the two parsing entry points of the
// normalization engine, one per supported document format. Parsers are
// cheap to construct and not safe for concurrent use; callers parsing
// documents in parallel use one parser per goroutine (there is no shared
// state to protect).
package estimate

import (
	"strings"

	"github.com/Farhaan96/CollisionOS-sub009/internal/adapter/flat"
	"github.com/Farhaan96/CollisionOS-sub009/internal/adapter/markup"
	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/normalize"
	"github.com/Farhaan96/CollisionOS-sub009/internal/record"
)

// adapterFunc is the contract both format adapters satisfy.
type adapterFunc func(raw []byte, tr *record.Tracker) (*record.Tree, error)

// Parser converts raw estimate documents of one format into ParseResults.
// It keeps the diagnostics of its most recent parse for UnknownTags.
type Parser struct {
	format  domain.DocumentFormat
	adapt   adapterFunc
	tracker *record.Tracker
}

// NewMarkupParser creates a parser for the structured markup format.
func NewMarkupParser() *Parser {
	return &Parser{format: domain.FormatMarkup, adapt: markup.Parse, tracker: record.NewTracker()}
}

// NewFlatParser creates a parser for the pipe-delimited flat format.
func NewFlatParser() *Parser {
	return &Parser{format: domain.FormatFlat, adapt: flat.Parse, tracker: record.NewTracker()}
}

// Format returns the document format this parser handles.
func (p *Parser) Format() domain.DocumentFormat {
	return p.format
}

// Parse converts one raw document into a ParseResult. The only failures are
// ErrEmptyInput (markup path) and MalformedDocumentError; every other
// anomaly is absorbed into defaults and unknown-tag diagnostics.
func (p *Parser) Parse(raw []byte) (*domain.ParseResult, error) {
	tr := record.NewTracker()
	p.tracker = tr

	tree, err := p.adapt(raw, tr)
	if err != nil {
		return nil, err
	}
	return normalize.New(tr).Normalize(tree), nil
}

// UnknownTags returns the diagnostics collected during the most recent
// Parse call, in encounter order.
func (p *Parser) UnknownTags() []string {
	return p.tracker.Tags()
}

// ParseMarkup parses one markup document with a fresh parser.
func ParseMarkup(raw []byte) (*domain.ParseResult, error) {
	return NewMarkupParser().Parse(raw)
}

// ParseFlat parses one flat document with a fresh parser.
func ParseFlat(raw []byte) (*domain.ParseResult, error) {
	return NewFlatParser().Parse(raw)
}

// DetectFormat sniffs which adapter should handle raw: documents whose
// first non-space byte is '<' are markup, everything else is flat.
func DetectFormat(raw []byte) domain.DocumentFormat {
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "<") {
		return domain.FormatMarkup
	}
	return domain.FormatFlat
}

// NewParser returns a parser for the given format.
func NewParser(format domain.DocumentFormat) *Parser {
	if format == domain.FormatMarkup {
		return NewMarkupParser()
	}
	return NewFlatParser()
}
