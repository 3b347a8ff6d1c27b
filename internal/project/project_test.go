package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cesliva/steelnest/internal/model"
)

func TestSaveLoadProject_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.json")

	p := model.NewProject()
	p.Name = "Warehouse Frame"
	p.Lines = append(p.Lines, model.NewLineItem("W", "W12x26", "A992", 20, 6, 4))
	p.Settings.KerfWidth = 0.25
	p.Settings.RunOptimization = true

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject returned error: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}

	if loaded.Name != "Warehouse Frame" {
		t.Errorf("expected name 'Warehouse Frame', got '%s'", loaded.Name)
	}
	if len(loaded.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(loaded.Lines))
	}
	if loaded.Lines[0].SizeDesignation != "W12x26" {
		t.Errorf("expected size 'W12x26', got '%s'", loaded.Lines[0].SizeDesignation)
	}
	if loaded.Lines[0].Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", loaded.Lines[0].Quantity)
	}
	if loaded.Settings.KerfWidth != 0.25 {
		t.Errorf("expected kerf 0.25, got %f", loaded.Settings.KerfWidth)
	}
	if !loaded.Settings.RunOptimization {
		t.Error("expected optimization enabled")
	}
	if loaded.Result != nil {
		t.Error("expected no result on a fresh project")
	}
}

func TestSaveProject_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "job.json")

	if err := SaveProject(path, model.NewProject()); err != nil {
		t.Fatalf("SaveProject returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("project file was not created: %v", err)
	}
}

func TestSaveLoadProject_WithResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.json")

	p := model.NewProject()
	p.Result = &model.NestingResult{
		StockLengthFt: 40,
		Groups: []model.MaterialGroup{
			{
				Key: model.GroupKey{ShapeType: "W", SizeDesignation: "W12x26", Grade: "A992"},
				Bars: []model.StockBar{
					{StockLengthIn: 480, UsedLength: 456.5, Pieces: []model.Piece{
						{ID: "p1", LineID: "l1", LengthIn: 228.25},
					}},
				},
			},
		},
	}

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject returned error: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}

	if loaded.Result == nil {
		t.Fatal("expected result to survive the round trip")
	}
	if loaded.Result.StockLengthFt != 40 {
		t.Errorf("expected stock length 40, got %f", loaded.Result.StockLengthFt)
	}
	if len(loaded.Result.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(loaded.Result.Groups))
	}
	if loaded.Result.Groups[0].Bars[0].UsedLength != 456.5 {
		t.Errorf("expected used length 456.5, got %f", loaded.Result.Groups[0].Bars[0].UsedLength)
	}
}

func TestLoadProject_FileNotFound(t *testing.T) {
	_, err := LoadProject("/nonexistent/job.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadProject_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadProject(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadProject_NilLinesNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.json")
	if err := os.WriteFile(path, []byte(`{"name":"X","settings":{}}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}
	if loaded.Lines == nil {
		t.Error("expected Lines to be normalized to an empty slice")
	}
}
