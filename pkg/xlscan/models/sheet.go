package models

// SheetReport represents the scan result for a single sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:D10").
	UsedRange string `json:"used_range,omitempty" yaml:"used_range,omitempty"`
	// Keywords contains keyword-matched cells in row-major order.
	Keywords []KeywordCell `json:"keywords" yaml:"keywords"`
	// Formulas contains every formula cell in row-major order.
	Formulas []FormulaCell `json:"formulas" yaml:"formulas"`
	// Literals contains every literal cell (verbose mode only).
	Literals []LiteralCell `json:"literals,omitempty" yaml:"literals,omitempty"`
	// FormulaCount is the number of formula cells on the sheet.
	FormulaCount int `json:"formula_count" yaml:"formula_count"`
	// LiteralCount is the number of non-empty literal cells on the sheet.
	LiteralCount int `json:"literal_count" yaml:"literal_count"`
}
