package model

import "testing"

func TestDefaultCatalogLookup(t *testing.T) {
	cat := DefaultCatalog()

	if got := cat.WeightPerFoot("W", "W12x26"); got != 26.0 {
		t.Errorf("WeightPerFoot(W12x26) = %g, want 26", got)
	}
	if got := cat.WeightPerFoot("", "W12x26"); got != 26.0 {
		t.Errorf("empty shape type should still match by size, got %g", got)
	}
	if got := cat.WeightPerFoot("W", "W99x999"); got != 0 {
		t.Errorf("unknown size should return 0, got %g", got)
	}
}

func TestFindShapeRespectsShapeType(t *testing.T) {
	cat := Catalog{Shapes: []ShapePreset{
		NewShapePreset("HSS", "6x6", "A500B", 27.48),
		NewShapePreset("L", "6x6", "A36", 14.9),
	}}
	s := cat.FindShape("L", "6x6")
	if s == nil {
		t.Fatal("expected match")
	}
	if s.WeightPerFoot != 14.9 {
		t.Errorf("matched wrong preset: %+v", s)
	}
}

func TestStockLengthsFt(t *testing.T) {
	cat := DefaultCatalog()
	lengths := cat.StockLengthsFt()
	want := []float64{20, 40, 60}
	if len(lengths) != len(want) {
		t.Fatalf("got %v, want %v", lengths, want)
	}
	for i := range want {
		if lengths[i] != want[i] {
			t.Fatalf("got %v, want %v", lengths, want)
		}
	}
}
