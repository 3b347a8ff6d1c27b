package export

import (
	"path/filepath"
	"testing"

	"github.com/Cesliva/steelnest/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestExportExcel_CreatesWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nesting.xlsx")

	if err := ExportExcel(path, buildTestResult()); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open exported workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Cutting List", "Group Summary", "Recommendation"}
	if len(sheets) != len(want) {
		t.Fatalf("expected %d sheets, got %d: %v", len(want), len(sheets), sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("expected sheet %d to be %q, got %q", i, name, sheets[i])
		}
	}
}

func TestExportExcel_CuttingListRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nesting.xlsx")

	if err := ExportExcel(path, buildTestResult()); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Cutting List")
	if err != nil {
		t.Fatalf("cannot read cutting list sheet: %v", err)
	}

	// Header plus one row per piece
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "Group" {
		t.Errorf("expected header row, got %v", rows[0])
	}
	if rows[1][0] != "W W12x26" {
		t.Errorf("expected group 'W W12x26', got '%s'", rows[1][0])
	}
	if rows[1][4] != "p1" {
		t.Errorf("expected piece 'p1', got '%s'", rows[1][4])
	}
	if rows[3][2] != "2" {
		t.Errorf("expected third piece on bar 2, got '%s'", rows[3][2])
	}
	if rows[4][1] != "A36" {
		t.Errorf("expected grade 'A36' on angle row, got '%s'", rows[4][1])
	}
}

func TestExportExcel_GroupSummaryTotals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nesting.xlsx")

	result := buildTestResult()
	if err := ExportExcel(path, result); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Group Summary")
	if err != nil {
		t.Fatalf("cannot read summary sheet: %v", err)
	}

	// Header, two group rows, totals row
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[1][0] != "W" || rows[1][1] != "W12x26" {
		t.Errorf("unexpected first group row: %v", rows[1])
	}
	if rows[3][0] != "TOTAL" {
		t.Errorf("expected TOTAL row, got %v", rows[3])
	}
	if rows[3][3] != "3" {
		t.Errorf("expected 3 total bars, got '%s'", rows[3][3])
	}
	if rows[3][4] != "4" {
		t.Errorf("expected 4 total pieces, got '%s'", rows[3][4])
	}
}

func TestExportExcel_RecommendationSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nesting.xlsx")

	if err := ExportExcel(path, buildTestResult()); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Recommendation")
	if err != nil {
		t.Fatalf("cannot read recommendation sheet: %v", err)
	}

	// Header, chosen option, two alternatives
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[1][1] != "40" {
		t.Errorf("expected chosen length 40, got '%s'", rows[1][1])
	}
	if rows[2][1] != "60" {
		t.Errorf("expected first alternative 60, got '%s'", rows[2][1])
	}
}

func TestExportExcel_NoRecommendationSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nesting.xlsx")

	result := buildTestResult()
	result.Recommendation = nil
	if err := ExportExcel(path, result); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open exported workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, s := range sheets {
		if s == "Recommendation" {
			t.Error("did not expect a Recommendation sheet")
		}
	}
}

func TestExportExcel_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	err := ExportExcel(path, model.NestingResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
