package engine

import (
	"fmt"
	"sort"

	"github.com/Cesliva/steelnest/internal/model"
)

// PieceTooLongError reports a piece that cannot fit an empty stock bar. This
// is a data or configuration problem the caller must resolve; the packer
// never drops or truncates such a piece.
type PieceTooLongError struct {
	LineID        string
	PieceID       string
	PieceLengthIn float64
	KerfIn        float64
	StockLengthIn float64
}

func (e *PieceTooLongError) Error() string {
	return fmt.Sprintf("piece %s (line %s) needs %.3f\" (%.3f\" + %.3f\" kerf) but stock is only %.3f\"",
		e.PieceID, e.LineID, e.PieceLengthIn+e.KerfIn, e.PieceLengthIn, e.KerfIn, e.StockLengthIn)
}

// packPieces packs pieces into fixed-length stock bars using best-fit
// decreasing: pieces sorted longest first, each placed into the open bar
// that leaves the least residual space. Ties in piece length keep their
// original extraction order; that tie-break is part of the contract, not an
// accident of sort stability.
//
// Each placed piece charges its length plus one kerf allowance against the
// bar, the last piece in a bar included.
func packPieces(pieces []model.Piece, stockLengthFt, kerf float64) ([]model.StockBar, error) {
	stockLengthIn := stockLengthFt * model.InchesPerFoot

	sorted := make([]model.Piece, len(pieces))
	copy(sorted, pieces)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LengthIn > sorted[j].LengthIn
	})

	var bars []model.StockBar
	for _, piece := range sorted {
		required := piece.LengthIn + kerf
		if required > stockLengthIn {
			return nil, &PieceTooLongError{
				LineID:        piece.LineID,
				PieceID:       piece.ID,
				PieceLengthIn: piece.LengthIn,
				KerfIn:        kerf,
				StockLengthIn: stockLengthIn,
			}
		}

		// Best fit: among bars with room, take the one that would be left
		// with the least free space after placement.
		bestIdx := -1
		bestResidual := 0.0
		for i := range bars {
			residual := stockLengthIn - bars[i].UsedLength - required
			if residual < 0 {
				continue
			}
			if bestIdx < 0 || residual < bestResidual {
				bestIdx = i
				bestResidual = residual
			}
		}

		if bestIdx < 0 {
			bars = append(bars, model.StockBar{StockLengthIn: stockLengthIn})
			bestIdx = len(bars) - 1
		}
		bars[bestIdx].Pieces = append(bars[bestIdx].Pieces, piece)
		bars[bestIdx].UsedLength += required
	}

	return bars, nil
}
