package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Identities holds the unique business keys extracted from a document.
// Fields may be empty strings when the document omits them, never unset.
type Identities struct {
	DocumentNumber string `json:"document_number"`
	ClaimNumber    string `json:"claim_number"`
	VIN            string `json:"vin"`
}

// Claim holds insurance claim details beyond the claim number (which lives
// in Identities as a business key).
type Claim struct {
	PolicyNumber string          `json:"policy_number"`
	Deductible   decimal.Decimal `json:"deductible"`
}

// Customer is the normalized party that owns the estimate.
type Customer struct {
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	CompanyName string       `json:"company_name"`
	Type        CustomerType `json:"type"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	GSTPayable  bool         `json:"gst_payable"`
}

// Vehicle is the normalized vehicle under repair. Year is 0 when the
// document does not supply a model year. Odometer is always kilometers.
type Vehicle struct {
	VIN           string `json:"vin"`
	Year          int    `json:"year"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Trim          string `json:"trim"`
	Odometer      int    `json:"odometer_km"`
	Drivable      bool   `json:"drivable"`
	BodyStyle     string `json:"body_style"`
	Engine        string `json:"engine"`
	Transmission  string `json:"transmission"`
	FuelType      string `json:"fuel_type"`
	ExteriorColor string `json:"exterior_color"`
	InteriorColor string `json:"interior_color"`
}

// PartDetail is the payload of a part line.
type PartDetail struct {
	PartNumber    string          `json:"part_number"`
	OEMPartNumber string          `json:"oem_part_number"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	PartType      string          `json:"part_type"`
	SourceCode    string          `json:"source_code"`
	Taxable       bool            `json:"taxable"`
}

// LaborDetail is the payload of a labor line.
type LaborDetail struct {
	Operation   string          `json:"operation"`
	Hours       decimal.Decimal `json:"hours"`
	Rate        decimal.Decimal `json:"rate"`
	LaborType   string          `json:"labor_type"`
	PaintStages int             `json:"paint_stages"`
	Taxable     bool            `json:"taxable"`
}

// OtherChargeDetail is the payload of a miscellaneous material/charge line.
type OtherChargeDetail struct {
	Price   decimal.Decimal `json:"price"`
	Taxable bool            `json:"taxable"`
}

// EstimateLine is one itemized damage line. Type is the discriminant and
// at most one of Part, Labor, Other is non-nil; construct lines through
// NewPartLine, NewLaborLine, NewOtherChargeLine or NewBareLine so the
// invariant holds by construction.
type EstimateLine struct {
	LineNumber  int                `json:"line_number"`
	Description string             `json:"description"`
	Type        LineType           `json:"line_type"`
	Part        *PartDetail        `json:"part_info,omitempty"`
	Labor       *LaborDetail       `json:"labor_info,omitempty"`
	Other       *OtherChargeDetail `json:"other_charges_info,omitempty"`
}

// NewPartLine builds a part line.
func NewPartLine(num int, desc string, part PartDetail) EstimateLine {
	return EstimateLine{LineNumber: num, Description: desc, Type: LineTypePart, Part: &part}
}

// NewLaborLine builds a labor line.
func NewLaborLine(num int, desc string, labor LaborDetail) EstimateLine {
	return EstimateLine{LineNumber: num, Description: desc, Type: LineTypeLabor, Labor: &labor}
}

// NewOtherChargeLine builds a material/other-charge line.
func NewOtherChargeLine(num int, desc string, other OtherChargeDetail) EstimateLine {
	return EstimateLine{LineNumber: num, Description: desc, Type: LineTypeOtherCharge, Other: &other}
}

// NewBareLine builds a line whose detail record was missing from the
// document. The line keeps its type and description and carries no payload.
func NewBareLine(num int, desc string, t LineType) EstimateLine {
	return EstimateLine{LineNumber: num, Description: desc, Type: t}
}

// HasDetail reports whether the line carries its detail payload.
func (l *EstimateLine) HasDetail() bool {
	return l.Part != nil || l.Labor != nil || l.Other != nil
}

// Part is a denormalized copy of a part line's detail plus its description,
// for consumers that want parts without line-type filtering.
type Part struct {
	LineNumber    int             `json:"line_number"`
	Description   string          `json:"description"`
	PartNumber    string          `json:"part_number"`
	OEMPartNumber string          `json:"oem_part_number"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	PartType      string          `json:"part_type"`
	SourceCode    string          `json:"source_code"`
	Taxable       bool            `json:"taxable"`
}

// Totals holds document-declared totals. They are taken verbatim from the
// document's summary section, never recomputed from lines; recomputation
// could mask discrepancies that should surface as diagnostics instead.
type Totals struct {
	Parts     decimal.Decimal `json:"parts"`
	Labor     decimal.Decimal `json:"labor"`
	Materials decimal.Decimal `json:"materials"`
	Gross     decimal.Decimal `json:"gross"`
}

// Meta carries parse provenance and diagnostics. DocumentCreatedAt is the
// creation timestamp the vendor stamped on the document, nil when absent or
// unparseable.
type Meta struct {
	SourceSystem      string     `json:"source_system"`
	ImportedAt        time.Time  `json:"imported_at"`
	DocumentCreatedAt *time.Time `json:"document_created_at,omitempty"`
	UnknownTags       []string   `json:"unknown_tags"`
}

// ParseResult is the vendor-neutral output of one parse call. It is built
// once by the normalizer and never mutated afterward.
type ParseResult struct {
	Identities Identities     `json:"identities"`
	Claim      Claim          `json:"claim"`
	Customer   Customer       `json:"customer"`
	Vehicle    Vehicle        `json:"vehicle"`
	Lines      []EstimateLine `json:"lines"`
	Parts      []Part         `json:"parts"`
	Totals     Totals         `json:"totals"`
	Meta       Meta           `json:"meta"`
}

// EstimateImport is the record handed to the persistence collaborator after
// a document has been parsed (or has failed to parse).
type EstimateImport struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	FileName       string         `db:"file_name" json:"file_name"`
	StorageBucket  string         `db:"storage_bucket" json:"storage_bucket"`
	StorageKey     string         `db:"storage_key" json:"storage_key"`
	Format         DocumentFormat `db:"format" json:"format"`
	SourceSystem   string         `db:"source_system" json:"source_system"`
	DocumentNumber string         `db:"document_number" json:"document_number"`
	ClaimNumber    string         `db:"claim_number" json:"claim_number"`
	VIN            string         `db:"vin" json:"vin"`
	Status         ImportStatus   `db:"status" json:"status"`
	ParseError     string         `db:"parse_error" json:"parse_error"`
	UnknownTags    int            `db:"unknown_tags" json:"unknown_tags"`
	ImportedAt     time.Time      `db:"imported_at" json:"imported_at"`
}
