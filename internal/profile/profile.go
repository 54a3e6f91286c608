// Package profile holds the static profile tables describing known structural
// variants across estimating platforms. New vendors are additive data
// changes here, never new branching in the adapters or normalizer.
package profile

// sourceSystems maps vendor identifier strings, as they appear in document
// headers, to canonical source-system labels. Lookup is case-sensitive on
// the raw string; common capitalizations are listed explicitly.
var sourceSystems = map[string]string{
	"CCC ONE":                "ccc",
	"CCC One":                "ccc",
	"CCC Pathways":           "ccc",
	"CCC":                    "ccc",
	"Mitchell":               "mitchell",
	"MITCHELL":               "mitchell",
	"Mitchell International": "mitchell",
	"Mitchell Estimating":    "mitchell",
	"Audatex":                "audatex",
	"AUDATEX":                "audatex",
	"Audatex Estimating":     "audatex",
	"Web-Est":                "webest",
	"WebEst":                 "webest",
}

// SourceSystem returns the canonical label for a raw vendor string. An
// unmapped vendor string passes through unchanged so a new platform never
// fails a parse.
func SourceSystem(raw string) string {
	if canonical, ok := sourceSystems[raw]; ok {
		return canonical
	}
	return raw
}

// markupRoots lists every historically-used top-level element name under
// which a markup estimate document may be declared.
var markupRoots = map[string]bool{
	"VehicleDamageEstimateAddRq": true,
	"EstimateDocument":           true,
	"DamageEstimateUpload":       true,
}

// IsMarkupRoot reports whether tag is an accepted markup root element name.
func IsMarkupRoot(tag string) bool {
	return markupRoots[tag]
}

// MarkupRoots returns the accepted markup root element names.
func MarkupRoots() []string {
	roots := make([]string, 0, len(markupRoots))
	for tag := range markupRoots {
		roots = append(roots, tag)
	}
	return roots
}

// FlatRecordSpec describes the expected layout of one flat record type.
// MinFields counts the record-type code itself.
type FlatRecordSpec struct {
	MinFields int
}

// flatRecords holds the layout table for the flat (pipe-delimited) format,
// keyed by record-type code.
var flatRecords = map[string]FlatRecordSpec{
	"HDR": {MinFields: 3}, // doc number, vendor [, create date, create time]
	"CLM": {MinFields: 2}, // claim number [, policy number, deductible]
	"CUS": {MinFields: 3}, // first, last [, company, email, phone, address, gst exempt]
	"VEH": {MinFields: 2}, // vin [, year, make, model, trim, odometer, odo unit, ...]
	"LIN": {MinFields: 4}, // line number, description, line type code
	"PRT": {MinFields: 4}, // line number, part number, price [, oem, qty, type, source, taxable]
	"LAB": {MinFields: 4}, // line number, operation, hours [, rate, type, stages, taxable]
	"MAT": {MinFields: 3}, // line number, price [, taxable]
	"TTL": {MinFields: 3}, // total type, amount
}

// FlatRecord returns the layout spec for a record-type code, and whether the
// code is known at all.
func FlatRecord(code string) (FlatRecordSpec, bool) {
	spec, ok := flatRecords[code]
	return spec, ok
}
