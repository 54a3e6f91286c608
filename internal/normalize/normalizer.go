// Package normalize maps the adapters' record trees onto the canonical
// domain entities, applying defaulting rules, customer classification,
// tax inference and line-detail linkage. Anything it does not recognize is
// handed to the tracker and the walk continues; normalization itself never
// fails.
package normalize

import (
	"strings"
	"time"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/extract"
	"github.com/Farhaan96/CollisionOS-sub009/internal/profile"
	"github.com/Farhaan96/CollisionOS-sub009/internal/record"
)

// Normalizer walks one record tree and produces a ParseResult. An instance
// is scoped to a single parse call; it shares no state across documents.
type Normalizer struct {
	tr  *record.Tracker
	now func() time.Time
}

// New creates a Normalizer reporting unknown elements to tr.
func New(tr *record.Tracker) *Normalizer {
	return &Normalizer{tr: tr, now: time.Now}
}

// draft accumulates raw header, party, vehicle, line and totals fields
// while walking a tree, before defaulting and assembly.
type draft struct {
	docNum     string
	vendorRaw  string
	createDate string
	createTime string

	claimNum      string
	policyNum     string
	deductibleRaw string

	firstName  string
	lastName   string
	company    string
	email      string
	phone      string
	address    string
	exemptRaw  string
	exemptSeen bool

	vehicle domain.Vehicle
	odoRaw  string
	odoUnit string

	lines  []domain.EstimateLine
	totals domain.Totals
}

// Normalize converts the tree into an immutable ParseResult. The tree's
// format selects the walker; both converge on the same assembly path.
func (n *Normalizer) Normalize(tree *record.Tree) *domain.ParseResult {
	d := &draft{}
	switch tree.Format {
	case domain.FormatMarkup:
		if tree.Root != nil {
			n.walkMarkup(tree.Root, d)
		}
	case domain.FormatFlat:
		n.walkFlat(tree, d)
	default:
		n.tr.Addf("unrecognized tree format %q", tree.Format)
	}
	return n.assemble(d)
}

// assemble applies defaulting rules and builds the final result value.
// Lines and parts are always non-nil so serialized results carry empty
// sequences, never null.
func (n *Normalizer) assemble(d *draft) *domain.ParseResult {
	d.vehicle.Odometer = normalizeOdometer(d.odoRaw, d.odoUnit)
	if d.lines == nil {
		d.lines = []domain.EstimateLine{}
	}

	res := &domain.ParseResult{
		Identities: domain.Identities{
			DocumentNumber: d.docNum,
			ClaimNumber:    d.claimNum,
			VIN:            d.vehicle.VIN,
		},
		Claim: domain.Claim{
			PolicyNumber: d.policyNum,
			Deductible:   extract.Decimal(d.deductibleRaw),
		},
		Customer: buildCustomer(d),
		Vehicle:  d.vehicle,
		Lines:    d.lines,
		Parts:    deriveParts(d.lines),
		Totals:   d.totals,
		Meta: domain.Meta{
			SourceSystem: profile.SourceSystem(d.vendorRaw),
			ImportedAt:   n.now().UTC(),
			UnknownTags:  n.tr.Tags(),
		},
	}

	if created, ok := extract.DateTime(d.createDate, d.createTime); ok {
		res.Meta.DocumentCreatedAt = &created
	}
	return res
}

// buildCustomer classifies the party and infers GST treatment. A non-empty
// company name means an organization that pays GST; an explicit exemption
// flag always overrides the inferred default, for persons and organizations
// alike. A document with no party data at all yields the placeholder
// customer.
func buildCustomer(d *draft) domain.Customer {
	c := domain.Customer{
		FirstName:   d.firstName,
		LastName:    d.lastName,
		CompanyName: d.company,
		Email:       d.email,
		Phone:       d.phone,
		Address:     d.address,
	}

	if c.FirstName == "" && c.LastName == "" && c.CompanyName == "" {
		c.FirstName = domain.DefaultCustomerFirstName
		c.LastName = domain.DefaultCustomerLastName
	}

	if c.CompanyName != "" {
		c.Type = domain.CustomerTypeOrganization
		c.GSTPayable = true
	} else {
		c.Type = domain.CustomerTypePerson
		c.GSTPayable = false
	}

	if d.exemptSeen {
		c.GSTPayable = !extract.Bool(d.exemptRaw)
	}
	return c
}

// deriveParts produces one Part per line whose role is "part", carrying the
// line's description alongside the part detail.
func deriveParts(lines []domain.EstimateLine) []domain.Part {
	parts := []domain.Part{}
	for i := range lines {
		l := &lines[i]
		if l.Type != domain.LineTypePart || l.Part == nil {
			continue
		}
		parts = append(parts, domain.Part{
			LineNumber:    l.LineNumber,
			Description:   l.Description,
			PartNumber:    l.Part.PartNumber,
			OEMPartNumber: l.Part.OEMPartNumber,
			Price:         l.Part.Price,
			Quantity:      l.Part.Quantity,
			PartType:      l.Part.PartType,
			SourceCode:    l.Part.SourceCode,
			Taxable:       l.Part.Taxable,
		})
	}
	return parts
}

// milesToKm is the conversion factor applied when a document reports the
// odometer in miles.
const milesToKm = 1.60934

// normalizeOdometer converts a raw reading to kilometers. Mile readings are
// converted and rounded; unknown units are treated as kilometers.
func normalizeOdometer(raw, unit string) int {
	val := extract.Int(raw)
	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "MI", "MILE", "MILES":
		return int(float64(val)*milesToKm + 0.5)
	default:
		return val
	}
}

// applyTotal writes one document-declared total into the totals struct per
// its total-type keyword. Unrecognized keywords are tracked; absent
// categories stay decimal zero so downstream arithmetic never null-checks.
func (n *Normalizer) applyTotal(totals *domain.Totals, totalType, amount, path string) {
	switch strings.ToLower(strings.TrimSpace(totalType)) {
	case "parts":
		totals.Parts = extract.Decimal(amount)
	case "labor", "labour":
		totals.Labor = extract.Decimal(amount)
	case "materials", "material":
		totals.Materials = extract.Decimal(amount)
	case "gross", "total":
		totals.Gross = extract.Decimal(amount)
	default:
		n.tr.Addf("%s: unrecognized total type %q", path, totalType)
	}
}
