package engine

import (
	"fmt"
	"sort"

	"github.com/Cesliva/steelnest/internal/model"
)

// wasteTieTolerance is the waste-percentage difference below which two
// candidates are treated as equal; the one needing fewer bars then wins.
// Keeps the recommendation from flip-flopping between numerically identical
// options.
const wasteTieTolerance = 0.01

// optimizeStockLength packs the full piece population once per candidate
// stock length and ranks the candidates by waste percentage. The evaluation
// is deliberately run across all groups at once: the best length depends on
// the whole mix of piece lengths, even though actual cutting is later done
// per group.
//
// Candidates that cannot hold some piece are excluded from the ranking. If
// every candidate is excluded the population is unpackable at any offered
// length and an error is returned.
func optimizeStockLength(pieces []model.Piece, candidatesFt []float64, kerf float64) (*model.StockRecommendation, error) {
	if len(candidatesFt) == 0 {
		return nil, fmt.Errorf("no candidate stock lengths to evaluate")
	}
	if len(pieces) == 0 {
		return &model.StockRecommendation{
			StockOption: model.StockOption{
				StockLengthFt: candidatesFt[0],
				Efficiency:    100,
			},
		}, nil
	}

	var options []model.StockOption
	var lastErr error
	for _, lengthFt := range candidatesFt {
		bars, err := packPieces(pieces, lengthFt, kerf)
		if err != nil {
			lastErr = err
			continue
		}
		lengthIn := lengthFt * model.InchesPerFoot
		var wasteIn float64
		for _, b := range bars {
			wasteIn += b.WasteLength()
		}
		wastePct := wasteIn / (float64(len(bars)) * lengthIn) * 100.0
		options = append(options, model.StockOption{
			StockLengthFt:   lengthFt,
			Quantity:        len(bars),
			WastePercentage: wastePct,
			Efficiency:      100.0 - wastePct,
		})
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no candidate stock length can hold every piece: %w", lastErr)
	}

	// Rank by waste ascending; near-equal waste falls back to fewer bars.
	sort.SliceStable(options, func(i, j int) bool {
		di := options[i].WastePercentage - options[j].WastePercentage
		if di < -wasteTieTolerance {
			return true
		}
		if di > wasteTieTolerance {
			return false
		}
		return options[i].Quantity < options[j].Quantity
	})

	rec := &model.StockRecommendation{StockOption: options[0]}
	for _, alt := range options[1:] {
		if len(rec.Alternatives) == 3 {
			break
		}
		rec.Alternatives = append(rec.Alternatives, alt)
	}
	return rec, nil
}
