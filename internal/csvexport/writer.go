package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row, one row per estimate line.
var columns = []string{
	"Document Number",
	"Claim Number",
	"VIN",
	"Source System",
	"Line Number",
	"Line Type",
	"Description",
	"Part Number",
	"OEM Part Number",
	"Price",
	"Quantity",
	"Labor Operation",
	"Labor Hours",
	"Labor Rate",
	"Taxable",
}

// Writer wraps csv.Writer for exporting parse results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResult converts a parse result to one CSV row per estimate line and
// writes them in document line order.
func (w *Writer) WriteResult(res *domain.ParseResult) error {
	for i := range res.Lines {
		row := lineToRow(res, &res.Lines[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// lineToRow converts one estimate line to a string slice. Columns for the
// absent detail variants stay empty.
func lineToRow(res *domain.ParseResult, l *domain.EstimateLine) []string {
	row := make([]string, len(columns))

	row[0] = res.Identities.DocumentNumber
	row[1] = res.Identities.ClaimNumber
	row[2] = res.Identities.VIN
	row[3] = res.Meta.SourceSystem
	row[4] = strconv.Itoa(l.LineNumber)
	row[5] = string(l.Type)
	row[6] = l.Description

	switch {
	case l.Part != nil:
		row[7] = l.Part.PartNumber
		row[8] = l.Part.OEMPartNumber
		row[9] = formatMoney(l.Part.Price)
		row[10] = strconv.Itoa(l.Part.Quantity)
		row[14] = formatBool(l.Part.Taxable)
	case l.Labor != nil:
		row[11] = l.Labor.Operation
		row[12] = l.Labor.Hours.String()
		row[13] = formatMoney(l.Labor.Rate)
		row[14] = formatBool(l.Labor.Taxable)
	case l.Other != nil:
		row[9] = formatMoney(l.Other.Price)
		row[14] = formatBool(l.Other.Taxable)
	}
	return row
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in an export filename.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized export filename.
// Format: {sanitized_document_number}_{YYYY-MM-DD}.csv
func BuildFilename(documentNumber string) string {
	sanitized := SanitizeFilename(documentNumber)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
