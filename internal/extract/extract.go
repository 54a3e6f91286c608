// Package extract converts heterogeneous raw scalar representations from
// vendor documents into typed values. Every function is pure and total:
// unexpected input degrades to a deterministic default, never an error, so
// a structurally unusual document cannot abort a parse from here.
package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Text returns the literal string behind raw. Plain strings pass through
// unchanged. Numeric values are formatted. A single-key wrapper map (the
// "text node" shape some vendor exports produce) yields its inner literal.
// Any other structured value is serialized as stable JSON rather than
// rejected. nil yields "".
func Text(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		if len(v) == 1 {
			for _, inner := range v {
				if s, ok := inner.(string); ok {
					return s
				}
			}
		}
	}
	b, err := json.Marshal(raw)
	if err != nil {
		// Marshal only fails on unsupported kinds (channels, funcs);
		// fall back to the fmt rendering so the caller still gets text.
		return fmt.Sprintf("%v", raw)
	}
	return string(b)
}

// Decimal parses raw as an arbitrary-precision decimal after stripping
// currency symbols, group separators and surrounding whitespace. Empty or
// non-numeric input yields zero.
func Decimal(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int parses raw as an integer, tolerating a trailing decimal point form
// such as "3.0". Empty or non-numeric input yields 0.
func Int(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// Bool reports whether raw is a truthy indicator. Recognized values
// (case-insensitive): "true", "t", "yes", "y", "1". Everything else,
// including empty input, is false.
func Bool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}

// Date layouts accepted from vendor documents.
const (
	layoutCompactDate = "20060102"
	layoutISODate     = "2006-01-02"
	layoutCompactTime = "150405"
)

// Date parses raw in "YYYYMMDD" compact form or ISO "YYYY-MM-DD" form.
// Invalid or empty input yields (zero, false), never an error or a
// zero-date sentinel dressed up as a value.
func Date(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{layoutCompactDate, layoutISODate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateTime combines a date string with an optional "HHMMSS" time-of-day.
// A missing or unparseable time defaults to midnight. An unparseable date
// yields (zero, false).
func DateTime(date, tod string) (time.Time, bool) {
	d, ok := Date(date)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(layoutCompactTime, strings.TrimSpace(tod))
	if err != nil {
		return d, true
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
}
