package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Cesliva/steelnest/internal/model"
)

// cuttingListHeader is the column layout of the cutting list CSV.
var cuttingListHeader = []string{
	"Group", "Grade", "Bar", "Stock Length (in)",
	"Piece", "Line", "Drawing", "Detail",
	"Cut Length (in)", "Weight (lbs)",
}

// ExportCSV writes the cutting list as CSV: one row per piece per bar, in
// group and bar order, with drawing/detail numbers for traceability back to
// the estimate.
func ExportCSV(path string, result model.NestingResult) error {
	if len(result.Groups) == 0 {
		return fmt.Errorf("no material groups to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create cutting list: %w", err)
	}

	if err := writeCuttingList(csv.NewWriter(f), result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeCuttingList emits the header and all piece rows.
func writeCuttingList(w *csv.Writer, result model.NestingResult) error {
	if err := w.Write(cuttingListHeader); err != nil {
		return err
	}

	for _, group := range result.Groups {
		groupLabel := group.Key.ShapeType + " " + group.Key.SizeDesignation
		for barIdx, bar := range group.Bars {
			for _, p := range bar.Pieces {
				row := []string{
					groupLabel,
					group.Key.Grade,
					strconv.Itoa(barIdx + 1),
					strconv.FormatFloat(bar.StockLengthIn, 'f', 3, 64),
					p.ID,
					p.LineID,
					p.DrawingNumber,
					p.DetailNumber,
					strconv.FormatFloat(p.LengthIn, 'f', 3, 64),
					strconv.FormatFloat(p.WeightLbs, 'f', 1, 64),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
	}

	w.Flush()
	return w.Error()
}
