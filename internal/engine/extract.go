// Package engine implements the material nesting engine: piece extraction,
// material grouping, best-fit-decreasing bar packing, and stock-length
// optimization. All entry points are pure functions of their inputs; given
// identical input ordering and configuration the output is reproducible
// bit for bit.
package engine

import (
	"strings"

	"github.com/Cesliva/steelnest/internal/model"
	"github.com/google/uuid"
)

// materialTypePlate marks lines that are sheet material rather than linear
// stock. Plates are not linearly nested.
const materialTypePlate = "plate"

// ExtractPieces expands estimating lines into individual unit-quantity cut
// pieces. Void lines, plate lines, and lines with a non-positive resolved
// length are skipped. A line of quantity N yields N independent pieces.
// When a line carries no weight per foot and a catalog is supplied, the
// weight is resolved from the catalog; weight is reporting-only and never
// affects packing.
func ExtractPieces(lines []model.LineItem, settings model.NestSettings, catalog *model.Catalog) []model.Piece {
	var pieces []model.Piece
	for _, line := range lines {
		if line.Status == model.StatusVoid {
			continue
		}
		if strings.EqualFold(line.MaterialType, materialTypePlate) {
			continue
		}

		length := model.ToInches(line.LengthFt, line.LengthIn)
		if length <= 0 {
			continue
		}
		if line.UseStockRounding {
			length = model.RoundUpToIncrement(length, settings.StockRoundingIncrement)
		}

		weightPerFoot := line.WeightPerFoot
		if weightPerFoot == 0 && catalog != nil {
			weightPerFoot = catalog.WeightPerFoot(line.ShapeType, line.SizeDesignation)
		}

		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			pieces = append(pieces, model.Piece{
				ID:              uuid.New().String()[:8],
				LineID:          line.ID,
				DrawingNumber:   line.DrawingNumber,
				DetailNumber:    line.DetailNumber,
				ShapeType:       line.ShapeType,
				SizeDesignation: line.SizeDesignation,
				Grade:           line.Grade,
				CoatingSystem:   line.CoatingSystem,
				LengthIn:        length,
				WeightLbs:       weightPerFoot * length / model.InchesPerFoot,
			})
		}
	}
	return pieces
}
