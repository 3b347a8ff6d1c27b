package engine

import (
	"fmt"

	"github.com/Cesliva/steelnest/internal/model"
)

// Nester is the public entry point of the nesting engine.
type Nester struct {
	Settings model.NestSettings
	// Catalog resolves missing weight-per-foot values during extraction.
	// Optional; nil disables the lookup.
	Catalog *model.Catalog
}

// New returns a Nester for the given settings.
func New(settings model.NestSettings) *Nester {
	return &Nester{Settings: settings}
}

// Nest runs the full pipeline: extraction, grouping, stock-length selection,
// and per-group packing. All groups are cut at a single stock length; when
// optimization is enabled that length is chosen by evaluating the candidate
// set against the whole piece population, otherwise the caller's desired
// length (default 20 ft) is used directly.
func (n *Nester) Nest(lines []model.LineItem) (model.NestingResult, error) {
	if err := n.Settings.Validate(); err != nil {
		return model.NestingResult{}, fmt.Errorf("invalid nest settings: %w", err)
	}

	pieces := ExtractPieces(lines, n.Settings, n.Catalog)
	if len(pieces) == 0 {
		return model.NestingResult{}, nil
	}

	groups := groupPieces(pieces)

	stockLengthFt := n.Settings.DesiredStockLengthFt
	if stockLengthFt == 0 {
		stockLengthFt = model.DefaultStockLengthFt
	}

	var recommendation *model.StockRecommendation
	if n.Settings.RunOptimization {
		rec, err := optimizeStockLength(pieces, n.Settings.EffectiveCandidatesFt(), n.Settings.KerfWidth)
		if err != nil {
			return model.NestingResult{}, err
		}
		recommendation = rec
		stockLengthFt = rec.StockLengthFt
	}

	result := model.NestingResult{
		StockLengthFt:  stockLengthFt,
		Recommendation: recommendation,
	}
	for _, g := range groups {
		bars, err := packPieces(g.pieces, stockLengthFt, n.Settings.KerfWidth)
		if err != nil {
			return model.NestingResult{}, fmt.Errorf("group %s: %w", g.key, err)
		}
		result.Groups = append(result.Groups, model.MaterialGroup{Key: g.key, Bars: bars})
	}
	return result, nil
}
