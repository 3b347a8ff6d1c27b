// Package importer provides CSV and Excel import functionality for estimating
// line items. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Cesliva/steelnest/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Lines    []model.LineItem
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Shape         int
	Size          int
	Grade         int
	LengthFt      int
	LengthIn      int
	Quantity      int
	WeightPerFoot int
	Drawing       int
	Detail        int
	Coating       int
	Rounding      int
	Status        int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"shape":    {"shape", "shape type", "type", "section"},
	"size":     {"size", "size designation", "designation", "member", "section size"},
	"grade":    {"grade", "material grade", "spec", "astm"},
	"lengthft": {"length ft", "length (ft)", "ft", "feet", "length"},
	"lengthin": {"length in", "length (in)", "in", "inches"},
	"quantity": {"quantity", "qty", "count", "num", "pcs", "pieces"},
	"weight":   {"weight per foot", "weight/ft", "wt/ft", "lbs/ft", "unit weight"},
	"drawing":  {"drawing", "drawing number", "dwg", "dwg no"},
	"detail":   {"detail", "detail number", "piece mark", "mark"},
	"coating":  {"coating", "coating system", "finish", "paint"},
	"rounding": {"stock rounding", "rounding", "round up", "round"},
	"status":   {"status", "state"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV
// delimiter. It tries comma, semicolon, tab, and pipe. The delimiter that
// produces the most consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column
// role. Returns the mapping and true if a header was detected, or a default
// positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Shape: -1, Size: -1, Grade: -1,
		LengthFt: -1, LengthIn: -1, Quantity: -1,
		WeightPerFoot: -1, Drawing: -1, Detail: -1,
		Coating: -1, Rounding: -1, Status: -1,
	}

	fields := map[string]*int{
		"shape":    &mapping.Shape,
		"size":     &mapping.Size,
		"grade":    &mapping.Grade,
		"lengthft": &mapping.LengthFt,
		"lengthin": &mapping.LengthIn,
		"quantity": &mapping.Quantity,
		"weight":   &mapping.WeightPerFoot,
		"drawing":  &mapping.Drawing,
		"detail":   &mapping.Detail,
		"coating":  &mapping.Coating,
		"rounding": &mapping.Rounding,
		"status":   &mapping.Status,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if idx := fields[role]; *idx == -1 {
						*idx = i
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Shape, Size, Grade, Length ft, Length in, Quantity
		return ColumnMapping{
			Shape: 0, Size: 1, Grade: 2,
			LengthFt: 3, LengthIn: 4, Quantity: 5,
			WeightPerFoot: -1, Drawing: -1, Detail: -1,
			Coating: -1, Rounding: -1, Status: -1,
		}, false
	}

	return mapping, true
}

// parseFlag converts a yes/no style cell to a boolean.
// Returns the value and whether the string was recognized.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1", "x":
		return true, true
	case "", "n", "no", "false", "0", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a LineItem from a row using the given column mapping.
// Returns the line, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.LineItem, string, string) {
	sizeDesignation := getCell(row, mapping.Size)
	if sizeDesignation == "" {
		return model.LineItem{}, fmt.Sprintf("%s: Missing size designation", rowLabel), ""
	}

	ftStr := getCell(row, mapping.LengthFt)
	if ftStr == "" {
		return model.LineItem{}, fmt.Sprintf("%s: Missing length value", rowLabel), ""
	}
	lengthFt, err := strconv.ParseFloat(ftStr, 64)
	if err != nil {
		return model.LineItem{}, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, ftStr), ""
	}

	var lengthIn float64
	if inStr := getCell(row, mapping.LengthIn); inStr != "" {
		lengthIn, err = strconv.ParseFloat(inStr, 64)
		if err != nil {
			return model.LineItem{}, fmt.Sprintf("%s: Invalid length inches '%s'", rowLabel, inStr), ""
		}
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return model.LineItem{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
	}

	if lengthFt < 0 || lengthIn < 0 || qty <= 0 {
		return model.LineItem{}, fmt.Sprintf("%s: Length and quantity must be positive", rowLabel), ""
	}

	line := model.NewLineItem(getCell(row, mapping.Shape), sizeDesignation, getCell(row, mapping.Grade), lengthFt, lengthIn, qty)
	line.DrawingNumber = getCell(row, mapping.Drawing)
	line.DetailNumber = getCell(row, mapping.Detail)
	line.CoatingSystem = getCell(row, mapping.Coating)

	var warning string
	if wStr := getCell(row, mapping.WeightPerFoot); wStr != "" {
		w, err := strconv.ParseFloat(wStr, 64)
		if err != nil {
			warning = fmt.Sprintf("%s: Invalid weight per foot '%s', ignoring", rowLabel, wStr)
		} else {
			line.WeightPerFoot = w
		}
	}

	if rStr := getCell(row, mapping.Rounding); rStr != "" {
		flag, ok := parseFlag(rStr)
		if ok {
			line.UseStockRounding = flag
		} else if warning == "" {
			warning = fmt.Sprintf("%s: Unknown rounding flag '%s', defaulting to off", rowLabel, rStr)
		}
	}

	if strings.EqualFold(getCell(row, mapping.Status), string(model.StatusVoid)) {
		line.Status = model.StatusVoid
	}

	return line, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports estimating lines from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports estimating lines from a CSV reader with a
// specific delimiter. Useful for testing or when the delimiter is known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports estimating lines from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into line items.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Size == -1 {
			missing = append(missing, "Size")
		}
		if mapping.LengthFt == -1 {
			missing = append(missing, "Length")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check whether the length column of the first row is
		// numeric. If not, treat the row as an unrecognized header and keep
		// the positional mapping.
		if len(rows[0]) >= 4 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][3]), 64); err != nil {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		line, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Lines = append(result.Lines, line)
	}

	return result
}
