package models

// Report is the workbook-level scan result.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets holds one entry per scanned sheet, in workbook order.
	Sheets []SheetReport `json:"sheets" yaml:"sheets"`
}

// SheetNames returns the names of the scanned sheets in order.
func (r *Report) SheetNames() []string {
	names := make([]string, len(r.Sheets))
	for i, s := range r.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the report for the named sheet, or nil.
func (r *Report) Sheet(name string) *SheetReport {
	for i := range r.Sheets {
		if r.Sheets[i].Name == name {
			return &r.Sheets[i]
		}
	}
	return nil
}
