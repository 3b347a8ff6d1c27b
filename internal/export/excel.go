package export

import (
	"fmt"

	"github.com/Cesliva/steelnest/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	sheetCuttingList    = "Cutting List"
	sheetGroupSummary   = "Group Summary"
	sheetRecommendation = "Recommendation"
)

// ExportExcel writes the nesting result as an Excel workbook with a cutting
// list sheet, a per-group summary sheet, and (when optimization ran) a stock
// recommendation sheet.
func ExportExcel(path string, result model.NestingResult) error {
	if len(result.Groups) == 0 {
		return fmt.Errorf("no material groups to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetCuttingList); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeCuttingListSheet(f, result, headerStyle); err != nil {
		return err
	}
	if err := writeGroupSummarySheet(f, result, headerStyle); err != nil {
		return err
	}
	if result.Recommendation != nil {
		if err := writeRecommendationSheet(f, result.Recommendation, headerStyle); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeCuttingListSheet emits one row per piece per bar.
func writeCuttingListSheet(f *excelize.File, result model.NestingResult, headerStyle int) error {
	widths := []float64{20, 10, 6, 16, 10, 10, 12, 12, 14, 12}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetCuttingList, col, col, w); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}

	header := []interface{}{
		"Group", "Grade", "Bar", "Stock Length (in)",
		"Piece", "Line", "Drawing", "Detail",
		"Cut Length (in)", "Weight (lbs)",
	}
	if err := f.SetSheetRow(sheetCuttingList, "A1", &header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheetCuttingList, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	rowNum := 2
	for _, group := range result.Groups {
		groupLabel := group.Key.ShapeType + " " + group.Key.SizeDesignation
		for barIdx, bar := range group.Bars {
			for _, p := range bar.Pieces {
				cell, _ := excelize.CoordinatesToCellName(1, rowNum)
				row := []interface{}{
					groupLabel, group.Key.Grade, barIdx + 1, bar.StockLengthIn,
					p.ID, p.LineID, p.DrawingNumber, p.DetailNumber,
					p.LengthIn, p.WeightLbs,
				}
				if err := f.SetSheetRow(sheetCuttingList, cell, &row); err != nil {
					return err
				}
				rowNum++
			}
		}
	}
	return nil
}

// writeGroupSummarySheet emits one row per material group plus a totals row.
func writeGroupSummarySheet(f *excelize.File, result model.NestingResult, headerStyle int) error {
	if _, err := f.NewSheet(sheetGroupSummary); err != nil {
		return err
	}

	header := []interface{}{
		"Shape", "Size", "Grade", "Bars", "Pieces",
		"Used (in)", "Waste (in)", "Waste %", "Weight (lbs)",
	}
	if err := f.SetSheetRow(sheetGroupSummary, "A1", &header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheetGroupSummary, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	rowNum := 2
	for _, g := range result.Groups {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{
			g.Key.ShapeType, g.Key.SizeDesignation, g.Key.Grade,
			len(g.Bars), g.PieceCount(),
			g.UsedLength(), g.WasteLength(), g.WastePercentage(), g.TotalWeight(),
		}
		if err := f.SetSheetRow(sheetGroupSummary, cell, &row); err != nil {
			return err
		}
		rowNum++
	}

	cell, _ := excelize.CoordinatesToCellName(1, rowNum)
	totals := []interface{}{
		"TOTAL", "", "",
		result.TotalStockBars(), result.TotalPieces(),
		"", "", result.TotalWastePercentage(), result.TotalWeight(),
	}
	return f.SetSheetRow(sheetGroupSummary, cell, &totals)
}

// writeRecommendationSheet emits the chosen stock length and its alternatives.
func writeRecommendationSheet(f *excelize.File, rec *model.StockRecommendation, headerStyle int) error {
	if _, err := f.NewSheet(sheetRecommendation); err != nil {
		return err
	}

	header := []interface{}{"Rank", "Stock Length (ft)", "Bars", "Waste %", "Efficiency %"}
	if err := f.SetSheetRow(sheetRecommendation, "A1", &header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheetRecommendation, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	options := append([]model.StockOption{rec.StockOption}, rec.Alternatives...)
	for i, opt := range options {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		label := i + 1
		row := []interface{}{
			label, opt.StockLengthFt, opt.Quantity, opt.WastePercentage, opt.Efficiency,
		}
		if err := f.SetSheetRow(sheetRecommendation, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
