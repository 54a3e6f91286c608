package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

func TestWrite_Workbook(t *testing.T) {
	res := &domain.ParseResult{
		Identities: domain.Identities{DocumentNumber: "EST-1001", ClaimNumber: "CLM-77", VIN: "1FTEX1EP4FKE12345"},
		Customer: domain.Customer{
			CompanyName: "ABC Corp",
			Type:        domain.CustomerTypeOrganization,
			GSTPayable:  true,
		},
		Vehicle: domain.Vehicle{Year: 2015, Make: "Ford", Model: "F-150", Trim: "XLT", Odometer: 84000},
		Lines: []domain.EstimateLine{
			domain.NewPartLine(1, "Front bumper cover", domain.PartDetail{
				PartNumber: "FB-221", Price: decimal.RequireFromString("450"), Quantity: 1, Taxable: true,
			}),
			domain.NewLaborLine(2, "Refinish bumper", domain.LaborDetail{
				Operation: "Refinish", Hours: decimal.RequireFromString("2.5"), Rate: decimal.RequireFromString("105"),
			}),
		},
		Totals: domain.Totals{
			Parts: decimal.RequireFromString("450"),
			Gross: decimal.RequireFromString("712.50"),
		},
		Meta: domain.Meta{SourceSystem: "ccc", UnknownTags: []string{"VehicleInfo/Frobnicator"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Summary", "Lines"}, f.GetSheetList())

	docNum, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "EST-1001", docNum)

	customer, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "ABC Corp", customer)

	vehicle, err := f.GetCellValue("Summary", "B9")
	require.NoError(t, err)
	assert.Equal(t, "2015 Ford F-150 XLT", vehicle)

	gross, err := f.GetCellValue("Summary", "B14")
	require.NoError(t, err)
	assert.Equal(t, "712.50", gross)

	rows, err := f.GetRows("Lines")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 lines
	assert.Equal(t, "Line Number", rows[0][0])
	assert.Equal(t, "part", rows[1][1])
	assert.Equal(t, "Refinish", rows[2][7])
}
