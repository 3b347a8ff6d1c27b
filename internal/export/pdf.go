// Package export provides functionality for exporting nesting results to
// various file formats.
package export

import (
	"fmt"

	"github.com/Cesliva/steelnest/internal/model"
	"github.com/go-pdf/fpdf"
)

// pieceColor represents an RGB color for a placed piece segment.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	barHeight    = 12.0 // rendered height of one stock bar strip
	barSpacing   = 9.0  // vertical gap between bar strips
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates a PDF cut report for a nesting result. Each material
// group is rendered on its own page(s) with one horizontal strip per stock
// bar, followed by a summary page with overall statistics and the stock
// recommendation when one was produced.
func ExportPDF(path string, result model.NestingResult, settings model.NestSettings) error {
	if len(result.Groups) == 0 {
		return fmt.Errorf("no material groups to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, group := range result.Groups {
		renderGroupPages(pdf, group)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// renderGroupPages draws one material group, one strip per stock bar,
// starting a fresh page whenever the current one fills up.
func renderGroupPages(pdf *fpdf.Fpdf, group model.MaterialGroup) {
	pdf.AddPage()
	renderGroupHeader(pdf, group)

	y := drawAreaTop
	for i, bar := range group.Bars {
		if y+barHeight+barSpacing > pageHeight-marginBottom {
			pdf.AddPage()
			renderGroupHeader(pdf, group)
			y = drawAreaTop
		}
		renderBarStrip(pdf, bar, i+1, y)
		y += barHeight + barSpacing
	}
}

// renderGroupHeader draws the group title and stats line at the page top.
func renderGroupHeader(pdf *fpdf.Fpdf, group model.MaterialGroup) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s %s (%s)", group.Key.ShapeType, group.Key.SizeDesignation, group.Key.Grade)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Bars: %d | Pieces: %d | Used: %.1f\" | Waste: %.1f\" (%.1f%%) | Weight: %.0f lbs",
		len(group.Bars), group.PieceCount(), group.UsedLength(), group.WasteLength(),
		group.WastePercentage(), group.TotalWeight())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
}

// renderBarStrip draws one stock bar as a horizontal strip with its piece
// segments and trailing waste.
func renderBarStrip(pdf *fpdf.Fpdf, bar model.StockBar, barNum int, y float64) {
	drawWidth := pageWidth - marginLeft - marginRight - 20
	scale := drawWidth / bar.StockLengthIn

	// Bar number to the left of the strip
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y+barHeight/2-2)
	pdf.CellFormat(16, 4, fmt.Sprintf("Bar %d", barNum), "", 0, "L", false, 0, "")

	stripX := marginLeft + 20

	// Full bar outline (steel gray)
	pdf.SetFillColor(225, 228, 232)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(stripX, y, bar.StockLengthIn*scale, barHeight, "FD")

	// Piece segments
	x := stripX
	for i, p := range bar.Pieces {
		col := pieceColors[i%len(pieceColors)]
		segW := p.LengthIn * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, segW, barHeight, "FD")

		if segW > 14 {
			pdf.SetFont("Helvetica", "", barFontSize(segW))
			label := fmt.Sprintf("%.1f\"", p.LengthIn)
			if p.DetailNumber != "" {
				label = p.DetailNumber + " " + label
			}
			labelW := pdf.GetStringWidth(label)
			if labelW < segW-2 {
				pdf.SetXY(x+(segW-labelW)/2, y+barHeight/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
		x += segW
	}

	// Waste annotation to the right of the strip
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	waste := fmt.Sprintf("waste %.1f\"", bar.WasteLength())
	pdf.SetXY(stripX, y+barHeight+0.5)
	pdf.CellFormat(drawWidth, 4, waste, "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.NestingResult, settings model.NestSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Nesting Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Stock Length", fmt.Sprintf("%.0f ft", result.StockLengthFt)},
		{"Total Stock Bars", fmt.Sprintf("%d", result.TotalStockBars())},
		{"Total Pieces", fmt.Sprintf("%d", result.TotalPieces())},
		{"Total Weight", fmt.Sprintf("%.0f lbs", result.TotalWeight())},
		{"Overall Waste", fmt.Sprintf("%.1f%%", result.TotalWastePercentage())},
		{"Overall Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-group breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{55, 30, 25, 25, 35, 35, 30}
	headers := []string{"Material", "Grade", "Bars", "Pieces", "Waste", "Efficiency", "Weight"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, group := range result.Groups {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%s %s", group.Key.ShapeType, group.Key.SizeDesignation),
			group.Key.Grade,
			fmt.Sprintf("%d", len(group.Bars)),
			fmt.Sprintf("%d", group.PieceCount()),
			fmt.Sprintf("%.1f%%", group.WastePercentage()),
			fmt.Sprintf("%.1f%%", 100-group.WastePercentage()),
			fmt.Sprintf("%.0f lbs", group.TotalWeight()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Stock recommendation section
	if rec := result.Recommendation; rec != nil {
		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Stock Recommendation", "", 0, "L", false, 0, "")
		y += 9

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		text := fmt.Sprintf("Buy %d x %.0f ft (waste %.2f%%, efficiency %.2f%%)",
			rec.Quantity, rec.StockLengthFt, rec.WastePercentage, rec.Efficiency)
		pdf.CellFormat(200, 6, text, "", 0, "L", false, 0, "")
		y += 7

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(80, 80, 80)
		for _, alt := range rec.Alternatives {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- alternative: %d x %.0f ft (waste %.2f%%)",
				alt.Quantity, alt.StockLengthFt, alt.WastePercentage)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
		pdf.SetTextColor(0, 0, 0)
	}

	// Settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Nest Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Kerf Width", fmt.Sprintf("%.3f\"", settings.KerfWidth)},
		{"Stock Rounding", fmt.Sprintf("%.3f\"", settings.StockRoundingIncrement)},
		{"Optimization", fmt.Sprintf("%t", settings.RunOptimization)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by SteelNest - Material Nesting Engine", "", 0, "C", false, 0, "")
}

// barFontSize returns an appropriate font size for a segment width.
func barFontSize(w float64) float64 {
	switch {
	case w > 40:
		return 8
	case w > 20:
		return 7
	default:
		return 6
	}
}
