package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding range of the given cells (e.g. "A1:D10"),
// or "" when there are none.
func UsedRange(cells []Cell) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(cells)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol, minRow)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the 1-based bounding box of cells, -1 when empty.
func findDataBounds(cells []Cell) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, c := range cells {
		if minRow < 0 || c.Row < minRow {
			minRow = c.Row
		}
		if maxRow < 0 || c.Row > maxRow {
			maxRow = c.Row
		}
		if minCol < 0 || c.Col < minCol {
			minCol = c.Col
		}
		if maxCol < 0 || c.Col > maxCol {
			maxCol = c.Col
		}
	}

	return
}
