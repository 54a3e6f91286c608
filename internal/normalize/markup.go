package normalize

import (
	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/extract"
	"github.com/Farhaan96/CollisionOS-sub009/internal/record"
)

// walkMarkup maps the markup tree onto the draft. Every section walks its
// children exhaustively: recognized tags are extracted, everything else goes
// to the tracker with its path so a vendor quirk is diagnosable later.
func (n *Normalizer) walkMarkup(root *record.Node, d *draft) {
	for _, child := range root.Children {
		switch child.Tag {
		case "DocumentInfo":
			n.markupDocumentInfo(child, d)
		case "ClaimInfo":
			n.markupClaimInfo(child, d)
		case "AdminInfo":
			n.markupAdminInfo(child, d)
		case "VehicleInfo":
			n.markupVehicleInfo(child, d)
		case "DamageLineInfo":
			d.lines = append(d.lines, n.markupDamageLine(child, root.Tag))
		case "TotalsInfo":
			n.applyTotal(&d.totals, child.ChildText("TotalTypeDesc"), child.ChildText("TotalAmt"), root.Tag+"/TotalsInfo")
		default:
			n.tr.Add(root.Tag + "/" + child.Tag)
		}
	}
}

func (n *Normalizer) markupDocumentInfo(node *record.Node, d *draft) {
	for _, c := range node.Children {
		switch c.Tag {
		case "DocumentNum":
			d.docNum = c.Text
		case "VendorCode":
			d.vendorRaw = c.Text
		case "CreateDate":
			d.createDate = c.Text
		case "CreateTime":
			d.createTime = c.Text
		default:
			n.tr.Add("DocumentInfo/" + c.Tag)
		}
	}
}

func (n *Normalizer) markupClaimInfo(node *record.Node, d *draft) {
	for _, c := range node.Children {
		switch c.Tag {
		case "ClaimNum":
			d.claimNum = c.Text
		case "PolicyNum":
			d.policyNum = c.Text
		case "DeductibleAmt":
			d.deductibleRaw = c.Text
		default:
			n.tr.Add("ClaimInfo/" + c.Tag)
		}
	}
}

func (n *Normalizer) markupAdminInfo(node *record.Node, d *draft) {
	for _, c := range node.Children {
		switch c.Tag {
		case "Owner":
			if party := c.Child("Party"); party != nil {
				n.markupParty(party, d)
			}
		default:
			n.tr.Add("AdminInfo/" + c.Tag)
		}
	}
}

func (n *Normalizer) markupParty(node *record.Node, d *draft) {
	for _, c := range node.Children {
		switch c.Tag {
		case "PersonInfo":
			d.firstName = c.ChildText("FirstName")
			d.lastName = c.ChildText("LastName")
		case "OrgInfo":
			d.company = c.ChildText("CompanyName")
		case "ContactInfo":
			d.email = c.ChildText("Email")
			d.phone = c.ChildText("Phone")
			d.address = c.ChildText("Address")
		case "GSTExemptInd":
			d.exemptRaw = c.Text
			d.exemptSeen = true
		default:
			n.tr.Add("AdminInfo/Owner/Party/" + c.Tag)
		}
	}
}

func (n *Normalizer) markupVehicleInfo(node *record.Node, d *draft) {
	for _, c := range node.Children {
		switch c.Tag {
		case "VINInfo":
			d.vehicle.VIN = c.ChildText("VIN")
		case "ModelYear":
			d.vehicle.Year = extract.Int(c.Text)
		case "MakeDesc":
			d.vehicle.Make = c.Text
		case "ModelName":
			d.vehicle.Model = c.Text
		case "TrimLevel":
			d.vehicle.Trim = c.Text
		case "OdometerInfo":
			d.odoRaw = c.ChildText("Reading")
			d.odoUnit = c.ChildText("Unit")
		case "DrivableInd":
			d.vehicle.Drivable = extract.Bool(c.Text)
		case "BodyStyle":
			d.vehicle.BodyStyle = c.Text
		case "EngineDesc":
			d.vehicle.Engine = c.Text
		case "TransmissionDesc":
			d.vehicle.Transmission = c.Text
		case "FuelType":
			d.vehicle.FuelType = c.Text
		case "ExteriorColor":
			d.vehicle.ExteriorColor = c.Text
		case "InteriorColor":
			d.vehicle.InteriorColor = c.Text
		default:
			n.tr.Add("VehicleInfo/" + c.Tag)
		}
	}
}

// markupDamageLine maps one DamageLineInfo element. The nested detail record
// decides the line type; exactly one of the three detail payloads ends up on
// the line, the first in document order when a document carries several. The
// walk always covers every child so unknown tags after the detail are still
// tracked. A line carrying no detail sub-record is kept with its type code
// and description only.
func (n *Normalizer) markupDamageLine(node *record.Node, rootTag string) domain.EstimateLine {
	num := extract.Int(node.ChildText("LineNum"))
	desc := node.ChildText("LineDesc")

	var (
		part  *domain.PartDetail
		labor *domain.LaborDetail
		other *domain.OtherChargeDetail
		found bool
	)

	for _, c := range node.Children {
		switch c.Tag {
		case "LineNum", "LineDesc", "LineTypeCode":
			// handled above / below
		case "PartInfo":
			if !found {
				found = true
				part = &domain.PartDetail{
					PartNumber:    c.ChildText("PartNum"),
					OEMPartNumber: c.ChildText("OEMPartNum"),
					Price:         extract.Decimal(c.ChildText("PartPrice")),
					Quantity:      extract.Int(c.ChildText("Quantity")),
					PartType:      c.ChildText("PartType"),
					SourceCode:    c.ChildText("SourceCode"),
					Taxable:       extract.Bool(c.ChildText("TaxableInd")),
				}
			}
		case "LaborInfo":
			if !found {
				found = true
				labor = &domain.LaborDetail{
					Operation:   c.ChildText("LaborOperation"),
					Hours:       extract.Decimal(c.ChildText("LaborHours")),
					Rate:        extract.Decimal(c.ChildText("LaborRate")),
					LaborType:   c.ChildText("LaborType"),
					PaintStages: extract.Int(c.ChildText("PaintStages")),
					Taxable:     extract.Bool(c.ChildText("TaxableInd")),
				}
			}
		case "OtherChargesInfo":
			if !found {
				found = true
				other = &domain.OtherChargeDetail{
					Price:   extract.Decimal(c.ChildText("Price")),
					Taxable: extract.Bool(c.ChildText("TaxableInd")),
				}
			}
		default:
			n.tr.Add(rootTag + "/DamageLineInfo/" + c.Tag)
		}
	}

	switch {
	case part != nil:
		return domain.NewPartLine(num, desc, *part)
	case labor != nil:
		return domain.NewLaborLine(num, desc, *labor)
	case other != nil:
		return domain.NewOtherChargeLine(num, desc, *other)
	}
	return domain.NewBareLine(num, desc, n.lineType(node.ChildText("LineTypeCode"), rootTag+"/DamageLineInfo"))
}

// lineType maps a vendor line-type code onto the domain discriminant.
// Unrecognized codes are tracked and fall back to other-charge.
func (n *Normalizer) lineType(code, path string) domain.LineType {
	switch code {
	case "PRT":
		return domain.LineTypePart
	case "LAB":
		return domain.LineTypeLabor
	case "OTH", "MAT", "":
		return domain.LineTypeOtherCharge
	default:
		n.tr.Addf("%s: unrecognized line type code %q", path, code)
		return domain.LineTypeOtherCharge
	}
}
