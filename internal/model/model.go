package model

import "github.com/google/uuid"

// LineStatus is the lifecycle state of an estimating line.
type LineStatus string

const (
	StatusActive LineStatus = "active"
	StatusVoid   LineStatus = "void"
)

// LineItem is one estimating line as handed over by the estimating UI or an
// import. It is read-only to the nesting engine; only active, non-plate lines
// with a positive resolved length participate in nesting.
type LineItem struct {
	ID               string     `json:"id"`
	Status           LineStatus `json:"status"`
	MaterialType     string     `json:"material_type"` // e.g. "beam", "tube", "plate"
	ShapeType        string     `json:"shape_type,omitempty"`
	SizeDesignation  string     `json:"size_designation,omitempty"` // e.g. "W12x26"
	Grade            string     `json:"grade,omitempty"`            // e.g. "A992"
	CoatingSystem    string     `json:"coating_system,omitempty"`   // display only
	DrawingNumber    string     `json:"drawing_number,omitempty"`
	DetailNumber     string     `json:"detail_number,omitempty"`
	LengthFt         float64    `json:"length_ft"`
	LengthIn         float64    `json:"length_in"`
	Quantity         int        `json:"quantity"`
	WeightPerFoot    float64    `json:"weight_per_foot"` // lbs/ft
	UseStockRounding bool       `json:"use_stock_rounding"`
}

// NewLineItem creates a LineItem with a generated ID and active status.
func NewLineItem(shapeType, sizeDesignation, grade string, lengthFt, lengthIn float64, qty int) LineItem {
	return LineItem{
		ID:              uuid.New().String()[:8],
		Status:          StatusActive,
		MaterialType:    "beam",
		ShapeType:       shapeType,
		SizeDesignation: sizeDesignation,
		Grade:           grade,
		LengthFt:        lengthFt,
		LengthIn:        lengthIn,
		Quantity:        qty,
	}
}

// Piece is one unit of cut material: a line of quantity N expands into N
// independent pieces. Pieces are created once during extraction and are
// immutable thereafter.
type Piece struct {
	ID              string  `json:"id"`
	LineID          string  `json:"line_id"`
	DrawingNumber   string  `json:"drawing_number,omitempty"`
	DetailNumber    string  `json:"detail_number,omitempty"`
	ShapeType       string  `json:"shape_type"`
	SizeDesignation string  `json:"size_designation"`
	Grade           string  `json:"grade"`
	CoatingSystem   string  `json:"coating_system,omitempty"`
	LengthIn        float64 `json:"length_in"` // resolved cut length in inches
	WeightLbs       float64 `json:"weight_lbs"`
}

// GroupKey identifies nest-compatible material: pieces with the same key are
// cut from the same raw stock. Coating is deliberately absent — it is carried
// on pieces for display only.
type GroupKey struct {
	ShapeType       string `json:"shape_type"`
	SizeDesignation string `json:"size_designation"`
	Grade           string `json:"grade"`
}

// UnknownField is substituted for a missing identity field so that pieces
// lacking identity still group together instead of being dropped.
const UnknownField = "Unknown"

// KeyForPiece builds the group key for a piece, normalizing empty fields.
func KeyForPiece(p Piece) GroupKey {
	k := GroupKey{ShapeType: p.ShapeType, SizeDesignation: p.SizeDesignation, Grade: p.Grade}
	if k.ShapeType == "" {
		k.ShapeType = UnknownField
	}
	if k.SizeDesignation == "" {
		k.SizeDesignation = UnknownField
	}
	if k.Grade == "" {
		k.Grade = UnknownField
	}
	return k
}

// String renders the key in its canonical "shape|size|grade" form.
func (k GroupKey) String() string {
	return k.ShapeType + "|" + k.SizeDesignation + "|" + k.Grade
}

// StockBar is one raw bar of stock with the pieces assigned to it. UsedLength
// includes one kerf allowance per placed piece. Bars are never resized after
// the packing pass for their group closes.
type StockBar struct {
	StockLengthIn float64 `json:"stock_length_in"`
	Pieces        []Piece `json:"pieces"`
	UsedLength    float64 `json:"used_length"`
}

// WasteLength returns the unused length of the bar in inches.
func (b StockBar) WasteLength() float64 {
	return b.StockLengthIn - b.UsedLength
}

// WastePercentage returns the unused portion of the bar as a percentage.
func (b StockBar) WastePercentage() float64 {
	if b.StockLengthIn == 0 {
		return 0
	}
	return b.WasteLength() / b.StockLengthIn * 100.0
}

// MaterialGroup is the nesting result for one material identity: its bars plus
// aggregate totals derived from them.
type MaterialGroup struct {
	Key  GroupKey   `json:"key"`
	Bars []StockBar `json:"bars"`
}

// PieceCount returns the number of pieces placed across the group's bars.
func (g MaterialGroup) PieceCount() int {
	var n int
	for _, b := range g.Bars {
		n += len(b.Pieces)
	}
	return n
}

// UsedLength returns the total used length across the group's bars in inches.
func (g MaterialGroup) UsedLength() float64 {
	var total float64
	for _, b := range g.Bars {
		total += b.UsedLength
	}
	return total
}

// CapacityLength returns the total purchased stock length in inches.
func (g MaterialGroup) CapacityLength() float64 {
	var total float64
	for _, b := range g.Bars {
		total += b.StockLengthIn
	}
	return total
}

// WasteLength returns the total unused length across the group's bars.
func (g MaterialGroup) WasteLength() float64 {
	return g.CapacityLength() - g.UsedLength()
}

// WastePercentage returns group waste over group capacity as a percentage.
func (g MaterialGroup) WastePercentage() float64 {
	capacity := g.CapacityLength()
	if capacity == 0 {
		return 0
	}
	return g.WasteLength() / capacity * 100.0
}

// TotalWeight returns the summed piece weight of the group in lbs.
func (g MaterialGroup) TotalWeight() float64 {
	var total float64
	for _, b := range g.Bars {
		for _, p := range b.Pieces {
			total += p.WeightLbs
		}
	}
	return total
}

// StockOption is one evaluated candidate stock length.
type StockOption struct {
	StockLengthFt   float64 `json:"stock_length_ft"`
	Quantity        int     `json:"quantity"` // bars required
	WastePercentage float64 `json:"waste_percentage"`
	Efficiency      float64 `json:"efficiency"`
}

// StockRecommendation is the optimizer's chosen stock length with up to three
// ranked alternatives.
type StockRecommendation struct {
	StockOption
	Alternatives []StockOption `json:"alternatives,omitempty"`
}

// NestingResult is the full output of a nesting run.
type NestingResult struct {
	StockLengthFt  float64              `json:"stock_length_ft"` // length used for all groups
	Groups         []MaterialGroup      `json:"groups"`
	Recommendation *StockRecommendation `json:"recommendation,omitempty"`
}

// TotalStockBars returns the number of stock bars across all groups.
func (r NestingResult) TotalStockBars() int {
	var n int
	for _, g := range r.Groups {
		n += len(g.Bars)
	}
	return n
}

// TotalPieces returns the number of placed pieces across all groups.
func (r NestingResult) TotalPieces() int {
	var n int
	for _, g := range r.Groups {
		n += g.PieceCount()
	}
	return n
}

// TotalWeight returns the summed piece weight across all groups in lbs.
func (r NestingResult) TotalWeight() float64 {
	var total float64
	for _, g := range r.Groups {
		total += g.TotalWeight()
	}
	return total
}

// TotalWastePercentage returns grand waste over grand capacity. It is computed
// from total inches rather than averaging per-group percentages, so small
// groups do not skew the figure.
func (r NestingResult) TotalWastePercentage() float64 {
	var waste, capacity float64
	for _, g := range r.Groups {
		waste += g.WasteLength()
		capacity += g.CapacityLength()
	}
	if capacity == 0 {
		return 0
	}
	return waste / capacity * 100.0
}

// TotalEfficiency returns overall material usage percentage.
func (r NestingResult) TotalEfficiency() float64 {
	var capacity float64
	for _, g := range r.Groups {
		capacity += g.CapacityLength()
	}
	if capacity == 0 {
		return 0
	}
	return 100.0 - r.TotalWastePercentage()
}
