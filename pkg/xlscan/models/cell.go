// Package models defines the report structures produced by a workbook scan.
package models

// KeywordCell is a cell whose text contains one of the configured keywords.
type KeywordCell struct {
	// Address is the cell address within its sheet (e.g. "B7").
	Address string `json:"address" yaml:"address"`
	// Value is the raw cell content: the literal text or the formula text.
	Value interface{} `json:"value" yaml:"value"`
	// Keyword is the keyword that matched.
	Keyword string `json:"keyword" yaml:"keyword"`
	// Formula reports whether the matched content is a formula.
	Formula bool `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// FormulaCell is a cell holding a formula together with its cached value.
type FormulaCell struct {
	// Address is the cell address within its sheet.
	Address string `json:"address" yaml:"address"`
	// Formula is the raw formula text including the leading "=".
	Formula string `json:"formula" yaml:"formula"`
	// Value is the last value computed by a spreadsheet tool, nil when the
	// file carries none.
	Value interface{} `json:"value" yaml:"value"`
	// Resolved reports whether a cached value was found.
	Resolved bool `json:"resolved" yaml:"resolved"`
}

// LiteralCell is a non-formula cell with its typed value.
type LiteralCell struct {
	Address string      `json:"address" yaml:"address"`
	Value   interface{} `json:"value" yaml:"value"`
}
