package parser

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

var errViewClosed = errors.New("value view is closed")

// ValueView is a read-only view of the cached values stored in a workbook.
// It holds its own excelize handle, separate from the one cells are scanned
// from, and reports what a spreadsheet tool last computed without evaluating
// anything itself.
type ValueView struct {
	f      *excelize.File
	sheets map[string]error // sheet name -> memoized availability
}

// OpenValueView opens the workbook at path. The caller must call Close.
func OpenValueView(path string) (*ValueView, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, err
	}
	return &ValueView{f: f, sheets: make(map[string]error)}, nil
}

// Close releases the underlying workbook.
func (v *ValueView) Close() error {
	if v == nil || v.f == nil {
		return nil
	}
	err := v.f.Close()
	v.f = nil
	return err
}

// CheckSheet reports whether cached values can be read for a sheet.
func (v *ValueView) CheckSheet(sheetName string) error {
	if v.f == nil {
		return errViewClosed
	}
	if err, ok := v.sheets[sheetName]; ok {
		return err
	}
	err := v.checkSheet(sheetName)
	v.sheets[sheetName] = err
	return err
}

func (v *ValueView) checkSheet(sheetName string) error {
	idx, err := v.f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	if idx == -1 {
		return excelize.ErrSheetNotExist{SheetName: sheetName}
	}
	return nil
}

// Lookup returns the cached value of a single cell. Cells without a cached
// value report false.
func (v *ValueView) Lookup(sheetName, cellName string) (interface{}, bool) {
	if v.CheckSheet(sheetName) != nil {
		return nil, false
	}
	raw, err := v.f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return nil, false
	}
	cellType, err := v.f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, false
	}
	return typedValue(cellType, raw), true
}
