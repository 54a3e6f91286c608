// Package flat parses the pipe-delimited flat-record estimate format into
// the format-agnostic record tree. It performs no domain normalization.
package flat

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/profile"
	"github.com/Farhaan96/CollisionOS-sub009/internal/record"
)

// Delimiter separates fields within one flat record.
const Delimiter = "|"

var (
	errNilInput    = errors.New("nil input")
	errBinaryInput = errors.New("input is not text")
)

// Parse reads a flat document into a record.Tree, grouping records by their
// record-type code (the first field of each line). Rows shorter than the
// minimum field count for their type are not discarded silently; they are
// captured by the tracker with the record type and raw line.
//
// Empty input succeeds with an empty tree so the normalizer applies full
// defaults; only nil input or non-text binary content fails, with a
// MalformedDocumentError. The markup adapter rejects empty input outright;
// the asymmetry is inherited vendor behavior kept for compatibility.
func Parse(raw []byte, tr *record.Tracker) (*record.Tree, error) {
	if raw == nil {
		return nil, domain.NewMalformedDocumentError("flat", errNilInput)
	}
	if !utf8.Valid(raw) {
		return nil, domain.NewMalformedDocumentError("flat", errBinaryInput)
	}

	rows := make(map[string][]record.Row)
	var all []record.Row
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, Delimiter)
		code := strings.TrimSpace(fields[0])

		spec, known := profile.FlatRecord(code)
		if known && len(fields) < spec.MinFields {
			tr.Addf("flat record %s: short line: %q", code, line)
			continue
		}

		row := record.Row{
			Type:   code,
			Fields: fields[1:],
			Raw:    line,
			Seq:    len(all),
		}
		rows[code] = append(rows[code], row)
		all = append(all, row)
	}

	return &record.Tree{
		Format: domain.FormatFlat,
		Rows:   rows,
		All:    all,
	}, nil
}
