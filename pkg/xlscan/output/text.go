package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/xlscan/pkg/xlscan/models"
)

var (
	sectionRule = strings.Repeat("=", 50)
	sheetRule   = strings.Repeat("-", 30)
)

// Unavailable is printed in place of a formula value the file does not cache.
const Unavailable = "(unavailable)"

// WriteText writes the human-readable report: the sheet list, then per
// sheet the keyword-matched cells and the formula cells with their values.
func WriteText(w io.Writer, report *models.Report) error {
	tw := &textWriter{w: w}

	tw.printf("Sheets in workbook: %s\n", strings.Join(report.SheetNames(), ", "))
	tw.printf("\n%s\n\n", sectionRule)

	for _, sheet := range report.Sheets {
		tw.printf("SHEET: %s\n", sheet.Name)
		tw.printf("%s\n", sheetRule)

		tw.printf("\nKey Input/Output cells:\n")
		for _, kc := range sheet.Keywords {
			tw.printf("  %s: %s\n", kc.Address, FormatValue(kc.Value))
		}

		tw.printf("\nKey Formulas:\n")
		for _, fc := range sheet.Formulas {
			tw.printf("  %s: %s\n", fc.Address, fc.Formula)
			value := Unavailable
			if fc.Resolved {
				value = FormatValue(fc.Value)
			}
			tw.printf("       -> Value: %s\n", value)
		}

		if len(sheet.Literals) > 0 {
			tw.printf("\nAll Values:\n")
			for _, lc := range sheet.Literals {
				tw.printf("  %s: %s\n", lc.Address, FormatValue(lc.Value))
			}
		}

		tw.printf("\n%s\n\n", sectionRule)
	}

	return tw.err
}

// FormatValue renders a cell value for the text report.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return Unavailable
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(val)
	}
}

// textWriter keeps the first write error so rendering code stays linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
