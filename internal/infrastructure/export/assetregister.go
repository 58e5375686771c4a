// Package export renders the asset register as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"art/internal/application/asset/dto"
)

const (
	RegisterSheet       = "Asset Register"
	RegisterContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var registerColumns = []struct {
	header string
	width  float64
}{
	{"UUID", 38},
	{"Asset Code", 15},
	{"Serial Number", 20},
	{"Category", 15},
	{"Sub Category", 15},
	{"Type", 15},
	{"Make", 15},
	{"Model Number", 20},
	{"Status", 12},
	{"Assigned To", 25},
	{"Verified", 10},
	{"Purchase Date", 14},
	{"Notes", 40},
	{"Created At", 20},
}

// RegisterHeader returns the column titles in sheet order.
func RegisterHeader() []string {
	out := make([]string, len(registerColumns))
	for i, c := range registerColumns {
		out[i] = c.header
	}
	return out
}

// WriteAssetRegister writes one header row and one row per entry.
func WriteAssetRegister(w io.Writer, entries []*dto.RegisterEntryDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(RegisterSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, c := range registerColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(RegisterSheet, col, col, c.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	header := RegisterHeader()
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(RegisterSheet, "A1", &row); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(RegisterSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		values := []interface{}{
			e.UUID,
			e.AssetCode,
			e.SerialNumber,
			e.Category,
			e.SubCategory,
			e.Type,
			e.Make,
			e.ModelNumber,
			e.CurrentStatus,
			e.AssignedTo,
			yesNo(e.Verified),
			e.PurchaseDate,
			e.Notes,
			e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(RegisterSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(RegisterSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
