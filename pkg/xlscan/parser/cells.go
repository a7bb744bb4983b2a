// Package parser provides the workbook views used by the scanner.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FormulaPrefix marks cell content as a formula.
const FormulaPrefix = "="

// Cell is a non-empty cell read from the formula view of a sheet.
type Cell struct {
	// Address is the cell name (e.g. "C1").
	Address string
	// Row and Col are 1-based coordinates.
	Row int
	Col int
	// Raw is the stored content: formula text with its leading "=" for
	// formula cells, otherwise the typed literal value.
	Raw interface{}
}

// Text returns the raw content as a string when it is textual.
func (c Cell) Text() (string, bool) {
	s, ok := c.Raw.(string)
	return s, ok
}

// IsFormula reports whether the raw content is text starting with "=".
func (c Cell) IsFormula() bool {
	s, ok := c.Text()
	return ok && strings.HasPrefix(s, FormulaPrefix)
}

// ScanCells reads every non-empty cell of a sheet in row-major order.
func ScanCells(f *excelize.File, sheetName string) ([]Cell, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	merged, err := mergedRanges(f, sheetName)
	if err != nil {
		return nil, err
	}

	var cells []Cell
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		for colIdx, cellValue := range row {
			colNum := colIdx + 1
			if isCovered(merged, colNum, rowNum) {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return nil, err
			}

			// Formula cells show up in the grid even without a cached value.
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if formula != "" {
				if !strings.HasPrefix(formula, FormulaPrefix) {
					formula = FormulaPrefix + formula
				}
				cells = append(cells, Cell{Address: cellName, Row: rowNum, Col: colNum, Raw: formula})
				continue
			}

			if cellValue == "" {
				continue
			}

			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells = append(cells, Cell{
				Address: cellName,
				Row:     rowNum,
				Col:     colNum,
				Raw:     typedValue(cellType, cellValue),
			})
		}
	}

	return cells, nil
}

// mergedRange is a merged area in 1-based coordinates.
type mergedRange struct {
	startCol, startRow, endCol, endRow int
}

// covers reports whether the cell is hidden by the merged range. Only the
// top-left cell of a merged range holds content; excelize resolves the
// others to it.
func (m mergedRange) covers(col, row int) bool {
	if col == m.startCol && row == m.startRow {
		return false
	}
	return col >= m.startCol && col <= m.endCol && row >= m.startRow && row <= m.endRow
}

func mergedRanges(f *excelize.File, sheetName string) ([]mergedRange, error) {
	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	ranges := make([]mergedRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, mergedRange{startCol, startRow, endCol, endRow})
	}
	return ranges, nil
}

func isCovered(ranges []mergedRange, col, row int) bool {
	for _, m := range ranges {
		if m.covers(col, row) {
			return true
		}
	}
	return false
}

// typedValue converts raw cell content according to the stored cell type.
// Text stays text even when it looks like a number.
func typedValue(cellType excelize.CellType, raw string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
