// Package xlsxexport renders a parse result as an Excel workbook with a
// summary sheet and a lines sheet, for operators who review estimates in
// spreadsheets.
package xlsxexport

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

const (
	summarySheet = "Summary"
	linesSheet   = "Lines"
)

var lineColumns = []any{
	"Line Number", "Line Type", "Description",
	"Part Number", "OEM Part Number", "Price", "Quantity",
	"Labor Operation", "Labor Hours", "Labor Rate", "Taxable",
}

// Write renders res as an XLSX workbook onto w.
func Write(w io.Writer, res *domain.ParseResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSummary(f, res); err != nil {
		return err
	}

	if _, err := f.NewSheet(linesSheet); err != nil {
		return fmt.Errorf("create lines sheet: %w", err)
	}
	if err := writeLines(f, res); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, res *domain.ParseResult) error {
	customer := res.Customer.FirstName + " " + res.Customer.LastName
	if res.Customer.Type == domain.CustomerTypeOrganization {
		customer = res.Customer.CompanyName
	}

	rows := [][]any{
		{"Document Number", res.Identities.DocumentNumber},
		{"Claim Number", res.Identities.ClaimNumber},
		{"VIN", res.Identities.VIN},
		{"Source System", res.Meta.SourceSystem},
		{"Imported At", res.Meta.ImportedAt.Format(time.RFC3339)},
		{"Customer", customer},
		{"Customer Type", string(res.Customer.Type)},
		{"GST Payable", res.Customer.GSTPayable},
		{"Vehicle", vehicleLabel(&res.Vehicle)},
		{"Odometer (km)", res.Vehicle.Odometer},
		{"Parts Total", res.Totals.Parts.StringFixed(2)},
		{"Labor Total", res.Totals.Labor.StringFixed(2)},
		{"Materials Total", res.Totals.Materials.StringFixed(2)},
		{"Gross Total", res.Totals.Gross.StringFixed(2)},
		{"Unknown Tags", len(res.Meta.UnknownTags)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeLines(f *excelize.File, res *domain.ParseResult) error {
	if err := f.SetSheetRow(linesSheet, "A1", &lineColumns); err != nil {
		return fmt.Errorf("lines header: %w", err)
	}

	for i := range res.Lines {
		l := &res.Lines[i]
		row := make([]any, len(lineColumns))
		row[0] = l.LineNumber
		row[1] = string(l.Type)
		row[2] = l.Description
		switch {
		case l.Part != nil:
			row[3] = l.Part.PartNumber
			row[4] = l.Part.OEMPartNumber
			row[5] = l.Part.Price.StringFixed(2)
			row[6] = l.Part.Quantity
			row[10] = l.Part.Taxable
		case l.Labor != nil:
			row[7] = l.Labor.Operation
			row[8] = l.Labor.Hours.String()
			row[9] = l.Labor.Rate.StringFixed(2)
			row[10] = l.Labor.Taxable
		case l.Other != nil:
			row[5] = l.Other.Price.StringFixed(2)
			row[10] = l.Other.Taxable
		}
		if err := f.SetSheetRow(linesSheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return fmt.Errorf("lines row %d: %w", i+2, err)
		}
	}
	return nil
}

func vehicleLabel(v *domain.Vehicle) string {
	label := fmt.Sprintf("%s %s %s", v.Make, v.Model, v.Trim)
	if v.Year > 0 {
		label = strconv.Itoa(v.Year) + " " + label
	}
	return label
}
