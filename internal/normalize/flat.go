package normalize

import (
	"strings"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/extract"
	"github.com/Farhaan96/CollisionOS-sub009/internal/profile"
	"github.com/Farhaan96/CollisionOS-sub009/internal/record"
)

// Flat record field layouts, by position after the record-type code. The
// minimum counts enforced by the adapter live in the vendor profile table;
// optional trailing fields simply read as empty here.
//
//	HDR  doc number | vendor | create date | create time
//	CLM  claim number | policy number | deductible
//	CUS  first | last | company | email | phone | address | gst exempt
//	VEH  vin | year | make | model | trim | odometer | odo unit | drivable |
//	     body style | engine | transmission | fuel | ext color | int color
//	LIN  line number | description | line type code
//	PRT  line number | part number | price | oem part | qty | part type |
//	     source code | taxable
//	LAB  line number | operation | hours | rate | labor type | stages | taxable
//	MAT  line number | price | taxable
//	TTL  total type | amount

// walkFlat maps grouped flat rows onto the draft. Header-level record types
// take the first row of their kind; damage lines preserve document order and
// are linked to their detail rows by line number.
func (n *Normalizer) walkFlat(tree *record.Tree, d *draft) {
	if hdr, ok := firstRow(tree, "HDR"); ok {
		d.docNum = hdr.Field(0)
		d.vendorRaw = hdr.Field(1)
		d.createDate = hdr.Field(2)
		d.createTime = hdr.Field(3)
	}
	if clm, ok := firstRow(tree, "CLM"); ok {
		d.claimNum = clm.Field(0)
		d.policyNum = clm.Field(1)
		d.deductibleRaw = clm.Field(2)
	}
	if cus, ok := firstRow(tree, "CUS"); ok {
		d.firstName = cus.Field(0)
		d.lastName = cus.Field(1)
		d.company = cus.Field(2)
		d.email = cus.Field(3)
		d.phone = cus.Field(4)
		d.address = cus.Field(5)
		// A trailing empty field is not an explicit exemption flag.
		if strings.TrimSpace(cus.Field(6)) != "" {
			d.exemptRaw = cus.Field(6)
			d.exemptSeen = true
		}
	}
	if veh, ok := firstRow(tree, "VEH"); ok {
		d.vehicle = domain.Vehicle{
			VIN:           veh.Field(0),
			Year:          extract.Int(veh.Field(1)),
			Make:          veh.Field(2),
			Model:         veh.Field(3),
			Trim:          veh.Field(4),
			Drivable:      extract.Bool(veh.Field(7)),
			BodyStyle:     veh.Field(8),
			Engine:        veh.Field(9),
			Transmission:  veh.Field(10),
			FuelType:      veh.Field(11),
			ExteriorColor: veh.Field(12),
			InteriorColor: veh.Field(13),
		}
		d.odoRaw = veh.Field(5)
		d.odoUnit = veh.Field(6)
	}

	linked := n.flatLines(tree, d)

	for _, ttl := range tree.RowsOf("TTL") {
		n.applyTotal(&d.totals, ttl.Field(0), ttl.Field(1), "TTL")
	}

	lineNums := make(map[int]bool)
	for _, lin := range tree.RowsOf("LIN") {
		lineNums[extract.Int(lin.Field(0))] = true
	}

	// One sweep in document order keeps diagnostics deterministic across
	// parses of the same input. Neither unlinked details nor unmapped
	// record types are failures.
	for _, row := range tree.All {
		switch row.Type {
		case "PRT", "LAB", "MAT":
			if linked[row.Seq] {
				continue
			}
			num := extract.Int(row.Field(0))
			if lineNums[num] {
				n.tr.Addf("flat record %s: line %d already linked: %q", row.Type, num, row.Raw)
			} else {
				n.tr.Addf("flat record %s: no matching line %d: %q", row.Type, num, row.Raw)
			}
		default:
			if _, known := profile.FlatRecord(row.Type); !known {
				n.tr.Addf("flat record %s: no mapping rule: %q", row.Type, row.Raw)
			}
		}
	}
}

// flatLines links LIN rows to their PRT/LAB/MAT detail rows by line number
// and reports which detail rows were consumed, keyed by row sequence. When
// several detail rows claim the same line number the first one in document
// order wins; a line with no matching detail is kept bare. Unconsumed detail
// rows are tracked by the caller's document-order sweep.
func (n *Normalizer) flatLines(tree *record.Tree, d *draft) map[int]bool {
	parts := make(map[int]record.Row)
	for _, row := range tree.RowsOf("PRT") {
		num := extract.Int(row.Field(0))
		if _, ok := parts[num]; !ok {
			parts[num] = row
		}
	}
	labors := make(map[int]record.Row)
	for _, row := range tree.RowsOf("LAB") {
		num := extract.Int(row.Field(0))
		if _, ok := labors[num]; !ok {
			labors[num] = row
		}
	}
	materials := make(map[int]record.Row)
	for _, row := range tree.RowsOf("MAT") {
		num := extract.Int(row.Field(0))
		if _, ok := materials[num]; !ok {
			materials[num] = row
		}
	}
	linked := make(map[int]bool)

	for _, lin := range tree.RowsOf("LIN") {
		num := extract.Int(lin.Field(0))
		desc := lin.Field(1)

		if row, ok := parts[num]; ok {
			linked[row.Seq] = true
			d.lines = append(d.lines, domain.NewPartLine(num, desc, domain.PartDetail{
				PartNumber:    row.Field(1),
				Price:         extract.Decimal(row.Field(2)),
				OEMPartNumber: row.Field(3),
				Quantity:      extract.Int(row.Field(4)),
				PartType:      row.Field(5),
				SourceCode:    row.Field(6),
				Taxable:       extract.Bool(row.Field(7)),
			}))
			continue
		}
		if row, ok := labors[num]; ok {
			linked[row.Seq] = true
			d.lines = append(d.lines, domain.NewLaborLine(num, desc, domain.LaborDetail{
				Operation:   row.Field(1),
				Hours:       extract.Decimal(row.Field(2)),
				Rate:        extract.Decimal(row.Field(3)),
				LaborType:   row.Field(4),
				PaintStages: extract.Int(row.Field(5)),
				Taxable:     extract.Bool(row.Field(6)),
			}))
			continue
		}
		if row, ok := materials[num]; ok {
			linked[row.Seq] = true
			d.lines = append(d.lines, domain.NewOtherChargeLine(num, desc, domain.OtherChargeDetail{
				Price:   extract.Decimal(row.Field(1)),
				Taxable: extract.Bool(row.Field(2)),
			}))
			continue
		}

		d.lines = append(d.lines, domain.NewBareLine(num, desc, n.lineType(lin.Field(2), "LIN")))
	}

	return linked
}

func firstRow(tree *record.Tree, code string) (record.Row, bool) {
	rows := tree.RowsOf(code)
	if len(rows) == 0 {
		return record.Row{}, false
	}
	return rows[0], true
}
