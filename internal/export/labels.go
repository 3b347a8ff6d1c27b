package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Cesliva/steelnest/internal/model"
	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	PieceID       string  `json:"piece"`
	LineID        string  `json:"line"`
	Material      string  `json:"material"`
	Grade         string  `json:"grade"`
	DrawingNumber string  `json:"drawing,omitempty"`
	DetailNumber  string  `json:"detail,omitempty"`
	LengthIn      float64 `json:"length_in"`
	BarIndex      int     `json:"bar"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for all placed pieces.
// Each label carries the material, cut length, drawing/detail numbers, and a
// QR code encoding piece metadata as JSON. Labels are laid out on a standard
// label sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, result model.NestingResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no pieces placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for piece %q: %w", label.PieceID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%d", info.PieceID, info.BarIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Material designation (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	material := info.Material
	if pdf.GetStringWidth(material) > textW {
		for len(material) > 0 && pdf.GetStringWidth(material+"...") > textW {
			material = material[:len(material)-1]
		}
		material += "..."
	}
	pdf.CellFormat(textW, 4.5, material, "", 1, "L", false, 0, "")

	// Cut length and grade
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.3f\" %s", info.LengthIn, info.Grade)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Bar and traceability info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	barInfo := fmt.Sprintf("Bar %d | Line %s", info.BarIndex, info.LineID)
	pdf.CellFormat(textW, 3, barInfo, "", 1, "L", false, 0, "")

	if info.DrawingNumber != "" || info.DetailNumber != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		ref := fmt.Sprintf("Dwg %s  Dtl %s", info.DrawingNumber, info.DetailNumber)
		pdf.CellFormat(textW, 3, ref, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a nesting result for use
// in testing or alternative export formats. Bar indices run across the whole
// job in group order, matching the cutting list.
func CollectLabelInfos(result model.NestingResult) []LabelInfo {
	var labels []LabelInfo
	barNum := 0
	for _, group := range result.Groups {
		material := group.Key.ShapeType + " " + group.Key.SizeDesignation
		for _, bar := range group.Bars {
			barNum++
			for _, p := range bar.Pieces {
				labels = append(labels, LabelInfo{
					PieceID:       p.ID,
					LineID:        p.LineID,
					Material:      material,
					Grade:         group.Key.Grade,
					DrawingNumber: p.DrawingNumber,
					DetailNumber:  p.DetailNumber,
					LengthIn:      p.LengthIn,
					BarIndex:      barNum,
				})
			}
		}
	}
	return labels
}
