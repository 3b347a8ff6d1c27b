package model

import "fmt"

// NestSettings holds nesting engine configuration.
type NestSettings struct {
	// StockRoundingIncrement is the round-up granularity in inches applied to
	// lines that flag stock rounding.
	StockRoundingIncrement float64 `json:"stock_rounding_increment"`
	// KerfWidth is the saw blade allowance in inches, charged once per piece.
	KerfWidth float64 `json:"kerf_width"`
	// CandidateStockLengthsFt are the stock lengths the optimizer evaluates.
	CandidateStockLengthsFt []float64 `json:"candidate_stock_lengths_ft"`
	// DesiredStockLengthFt is the caller's preferred stock length. With
	// optimization off it is used directly; with optimization on it joins the
	// candidate set. Zero means unset.
	DesiredStockLengthFt float64 `json:"desired_stock_length_ft"`
	// RunOptimization enables the stock-length optimization pass.
	RunOptimization bool `json:"run_optimization"`
}

// Default configuration values.
const (
	DefaultStockRoundingIncrement = 0.125 // 1/8"
	DefaultKerfWidth              = 0.125 // 1/8" saw blade
	DefaultStockLengthFt          = 20.0
)

// DefaultCandidateStockLengthsFt returns the standard mill lengths evaluated
// by the optimizer.
func DefaultCandidateStockLengthsFt() []float64 {
	return []float64{20, 40, 60}
}

// DefaultSettings returns NestSettings populated with standard defaults.
func DefaultSettings() NestSettings {
	return NestSettings{
		StockRoundingIncrement:  DefaultStockRoundingIncrement,
		KerfWidth:               DefaultKerfWidth,
		CandidateStockLengthsFt: DefaultCandidateStockLengthsFt(),
		DesiredStockLengthFt:    DefaultStockLengthFt,
		RunOptimization:         true,
	}
}

// Validate rejects configurations that would produce nonsensical packing
// results. It is called at the engine boundary before any packing runs.
func (s NestSettings) Validate() error {
	if s.StockRoundingIncrement <= 0 {
		return fmt.Errorf("stock rounding increment must be positive, got %g", s.StockRoundingIncrement)
	}
	if s.KerfWidth < 0 {
		return fmt.Errorf("kerf width must not be negative, got %g", s.KerfWidth)
	}
	if s.RunOptimization && len(s.CandidateStockLengthsFt) == 0 {
		return fmt.Errorf("optimization requires at least one candidate stock length")
	}
	for _, ft := range s.CandidateStockLengthsFt {
		if ft <= 0 {
			return fmt.Errorf("candidate stock length must be positive, got %g ft", ft)
		}
	}
	if s.DesiredStockLengthFt < 0 {
		return fmt.Errorf("desired stock length must not be negative, got %g ft", s.DesiredStockLengthFt)
	}
	return nil
}

// EffectiveCandidatesFt returns the candidate set for an optimization run:
// the configured candidates unioned with the desired length when it is set
// and not already present. Order is preserved so results stay deterministic.
func (s NestSettings) EffectiveCandidatesFt() []float64 {
	candidates := make([]float64, len(s.CandidateStockLengthsFt))
	copy(candidates, s.CandidateStockLengthsFt)
	if s.DesiredStockLengthFt > 0 {
		found := false
		for _, ft := range candidates {
			if ft == s.DesiredStockLengthFt {
				found = true
				break
			}
		}
		if !found {
			candidates = append(candidates, s.DesiredStockLengthFt)
		}
	}
	return candidates
}
