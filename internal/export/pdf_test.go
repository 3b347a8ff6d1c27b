package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cesliva/steelnest/internal/model"
)

// buildTestResult creates a realistic two-group nesting result for testing.
func buildTestResult() model.NestingResult {
	return model.NestingResult{
		StockLengthFt: 20,
		Groups: []model.MaterialGroup{
			{
				Key: model.GroupKey{ShapeType: "W", SizeDesignation: "W12x26", Grade: "A992"},
				Bars: []model.StockBar{
					{
						StockLengthIn: 240,
						UsedLength:    228.25,
						Pieces: []model.Piece{
							{ID: "p1", LineID: "l1", ShapeType: "W", SizeDesignation: "W12x26", Grade: "A992",
								DrawingNumber: "E101", DetailNumber: "B1", LengthIn: 114, WeightLbs: 247},
							{ID: "p2", LineID: "l1", ShapeType: "W", SizeDesignation: "W12x26", Grade: "A992",
								DrawingNumber: "E101", DetailNumber: "B1", LengthIn: 114, WeightLbs: 247},
						},
					},
					{
						StockLengthIn: 240,
						UsedLength:    114.125,
						Pieces: []model.Piece{
							{ID: "p3", LineID: "l1", ShapeType: "W", SizeDesignation: "W12x26", Grade: "A992",
								DrawingNumber: "E101", DetailNumber: "B1", LengthIn: 114, WeightLbs: 247},
						},
					},
				},
			},
			{
				Key: model.GroupKey{ShapeType: "L", SizeDesignation: "L3x3x1/4", Grade: "A36"},
				Bars: []model.StockBar{
					{
						StockLengthIn: 240,
						UsedLength:    60.125,
						Pieces: []model.Piece{
							{ID: "p4", LineID: "l2", ShapeType: "L", SizeDesignation: "L3x3x1/4", Grade: "A36",
								LengthIn: 60, WeightLbs: 24.5},
						},
					},
				},
			},
		},
		Recommendation: &model.StockRecommendation{
			StockOption: model.StockOption{StockLengthFt: 40, Quantity: 2, WastePercentage: 4.2, Efficiency: 95.8},
			Alternatives: []model.StockOption{
				{StockLengthFt: 60, Quantity: 2, WastePercentage: 12.3, Efficiency: 87.7},
				{StockLengthFt: 20, Quantity: 3, WastePercentage: 33.1, Efficiency: 66.9},
			},
		},
	}
}

func buildTestSettings() model.NestSettings {
	return model.DefaultSettings()
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cut_report.pdf")

	result := buildTestResult()
	settings := buildTestSettings()

	err := ExportPDF(path, result, settings)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// 2 group pages plus summary should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.NestingResult{}, buildTestSettings())
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_NoRecommendation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_rec.pdf")

	result := buildTestResult()
	result.Recommendation = nil

	err := ExportPDF(path, result, buildTestSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_ManyBars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_bars.pdf")

	// More bars than fit one page, and more pieces than colors, to exercise
	// pagination and color cycling.
	bars := make([]model.StockBar, 12)
	for i := range bars {
		pieces := make([]model.Piece, 10)
		for j := range pieces {
			pieces[j] = model.Piece{
				ID:       fmt.Sprintf("p%d_%d", i, j),
				LineID:   "l1",
				LengthIn: 22,
			}
		}
		bars[i] = model.StockBar{StockLengthIn: 240, UsedLength: 221.25, Pieces: pieces}
	}

	result := model.NestingResult{
		StockLengthFt: 20,
		Groups: []model.MaterialGroup{
			{Key: model.GroupKey{ShapeType: "HSS", SizeDesignation: "HSS4x4x1/4", Grade: "A500B"}, Bars: bars},
		},
	}

	err := ExportPDF(path, result, buildTestSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestBarFontSize(t *testing.T) {
	tests := []struct {
		w    float64
		want float64
	}{
		{50, 8},
		{30, 7},
		{15, 6},
	}
	for _, tt := range tests {
		got := barFontSize(tt.w)
		if got != tt.want {
			t.Errorf("barFontSize(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}
