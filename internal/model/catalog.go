package model

import "github.com/google/uuid"

// ShapePreset is a reusable material definition used to resolve weight per
// foot when an estimating line arrives without one.
type ShapePreset struct {
	ID              string  `json:"id"`
	ShapeType       string  `json:"shape_type"`
	SizeDesignation string  `json:"size_designation"`
	Grade           string  `json:"grade"`
	WeightPerFoot   float64 `json:"weight_per_foot"` // lbs/ft
}

// NewShapePreset creates a ShapePreset with a generated ID.
func NewShapePreset(shapeType, sizeDesignation, grade string, weightPerFoot float64) ShapePreset {
	return ShapePreset{
		ID:              uuid.New().String()[:8],
		ShapeType:       shapeType,
		SizeDesignation: sizeDesignation,
		Grade:           grade,
		WeightPerFoot:   weightPerFoot,
	}
}

// StockLengthPreset is a purchasable mill length.
type StockLengthPreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LengthFt float64 `json:"length_ft"`
}

// NewStockLengthPreset creates a StockLengthPreset with a generated ID.
func NewStockLengthPreset(name string, lengthFt float64) StockLengthPreset {
	return StockLengthPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		LengthFt: lengthFt,
	}
}

// Catalog holds the user's saved shape presets and stock lengths.
type Catalog struct {
	Shapes       []ShapePreset       `json:"shapes"`
	StockLengths []StockLengthPreset `json:"stock_lengths"`
}

// DefaultCatalog returns a catalog populated with common wide-flange shapes
// and the standard mill lengths.
func DefaultCatalog() Catalog {
	return Catalog{
		Shapes: []ShapePreset{
			NewShapePreset("W", "W8x10", "A992", 10.0),
			NewShapePreset("W", "W10x22", "A992", 22.0),
			NewShapePreset("W", "W12x26", "A992", 26.0),
			NewShapePreset("W", "W16x31", "A992", 31.0),
			NewShapePreset("HSS", "HSS4x4x1/4", "A500B", 12.21),
			NewShapePreset("HSS", "HSS6x6x3/8", "A500B", 27.48),
			NewShapePreset("L", "L3x3x1/4", "A36", 4.9),
			NewShapePreset("C", "C8x11.5", "A36", 11.5),
		},
		StockLengths: []StockLengthPreset{
			NewStockLengthPreset("20' mill length", 20),
			NewStockLengthPreset("40' mill length", 40),
			NewStockLengthPreset("60' mill length", 60),
		},
	}
}

// FindShape returns a pointer to the first preset matching the size
// designation (and shape type when given), or nil.
func (c *Catalog) FindShape(shapeType, sizeDesignation string) *ShapePreset {
	for i := range c.Shapes {
		s := &c.Shapes[i]
		if s.SizeDesignation != sizeDesignation {
			continue
		}
		if shapeType == "" || s.ShapeType == shapeType {
			return s
		}
	}
	return nil
}

// WeightPerFoot looks up the weight per foot for a size designation.
// Returns 0 when the catalog has no matching preset.
func (c *Catalog) WeightPerFoot(shapeType, sizeDesignation string) float64 {
	if s := c.FindShape(shapeType, sizeDesignation); s != nil {
		return s.WeightPerFoot
	}
	return 0
}

// StockLengthsFt returns the catalog's stock lengths in feet, in catalog order.
func (c *Catalog) StockLengthsFt() []float64 {
	lengths := make([]float64, len(c.StockLengths))
	for i, s := range c.StockLengths {
		lengths[i] = s.LengthFt
	}
	return lengths
}
