package xlscan

import (
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/xlscan/pkg/xlscan/models"
	"github.com/ukaji3/xlscan/pkg/xlscan/parser"
	"github.com/xuri/excelize/v2"
)

// Scan reads the workbook at path and reports keyword-matched cells and
// formula cells per sheet. Any failure to open or read the workbook is a
// *SourceError matching ErrSourceUnavailable; no partial report is returned.
func Scan(path string, opts Options) (*models.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, NewSourceError(path, "", err)
	}
	defer f.Close()

	s := &scanner{
		path:    path,
		opts:    opts,
		log:     opts.logger().With("book", filepath.Base(path)),
		matcher: parser.NewKeywordMatcher(opts.keywords()),
	}
	defer s.closeValues()

	sheetList, err := selectSheets(f.GetSheetList(), opts.Sheets)
	if err != nil {
		return nil, NewSourceError(path, "", err)
	}

	report := &models.Report{
		BookName: filepath.Base(path),
		Sheets:   make([]models.SheetReport, 0, len(sheetList)),
	}
	for _, sheetName := range sheetList {
		sheet, err := s.scanSheet(f, sheetName)
		if err != nil {
			return nil, NewSourceError(path, sheetName, err)
		}
		report.Sheets = append(report.Sheets, *sheet)
	}

	return report, nil
}

// selectSheets applies the sheet filter while keeping workbook order.
func selectSheets(all, wanted []string) ([]string, error) {
	if len(wanted) == 0 {
		return all, nil
	}
	present := make(map[string]bool, len(all))
	for _, name := range all {
		present[name] = true
	}
	keep := make(map[string]bool, len(wanted))
	for _, name := range wanted {
		if !present[name] {
			return nil, excelize.ErrSheetNotExist{SheetName: name}
		}
		keep[name] = true
	}

	var result []string
	for _, name := range all {
		if keep[name] {
			result = append(result, name)
		}
	}
	return result, nil
}

type scanner struct {
	path    string
	opts    Options
	log     *slog.Logger
	matcher *parser.KeywordMatcher

	// values is the cached-value view, opened on the first formula cell.
	values       *parser.ValueView
	valuesOpened bool
	warned       map[string]bool
}

func (s *scanner) scanSheet(f *excelize.File, sheetName string) (*models.SheetReport, error) {
	cells, err := parser.ScanCells(f, sheetName)
	if err != nil {
		return nil, err
	}

	includeLiterals := s.opts.ShouldIncludeLiterals()
	sheet := &models.SheetReport{
		Name:      sheetName,
		UsedRange: parser.UsedRange(cells),
		Keywords:  []models.KeywordCell{},
		Formulas:  []models.FormulaCell{},
	}

	for _, cell := range cells {
		isFormula := cell.IsFormula()
		if text, ok := cell.Text(); ok {
			if kw, ok := s.matcher.Match(text); ok {
				sheet.Keywords = append(sheet.Keywords, models.KeywordCell{
					Address: cell.Address,
					Value:   text,
					Keyword: kw,
					Formula: isFormula,
				})
			}
		}

		if isFormula {
			formula, _ := cell.Text()
			value, resolved := s.resolve(sheetName, cell.Address)
			sheet.Formulas = append(sheet.Formulas, models.FormulaCell{
				Address:  cell.Address,
				Formula:  formula,
				Value:    value,
				Resolved: resolved,
			})
			sheet.FormulaCount++
			continue
		}

		sheet.LiteralCount++
		if includeLiterals {
			sheet.Literals = append(sheet.Literals, models.LiteralCell{
				Address: cell.Address,
				Value:   cell.Raw,
			})
		}
	}

	s.log.Debug("sheet scanned",
		"sheet", sheetName,
		"used_range", sheet.UsedRange,
		"formulas", sheet.FormulaCount,
		"literals", sheet.LiteralCount,
		"keywords", len(sheet.Keywords))

	return sheet, nil
}

// resolve returns the cached value of a formula cell. A missing value is
// reported as (nil, false) and is never an error.
func (s *scanner) resolve(sheetName, cellName string) (interface{}, bool) {
	if !s.opts.ShouldResolveValues() {
		return nil, false
	}
	view := s.valueView()
	if view == nil {
		return nil, false
	}
	if err := view.CheckSheet(sheetName); err != nil {
		if !s.warned[sheetName] {
			if s.warned == nil {
				s.warned = make(map[string]bool)
			}
			s.warned[sheetName] = true
			s.log.Warn("cached values unavailable for sheet", "sheet", sheetName, "error", err)
		}
		return nil, false
	}
	return view.Lookup(sheetName, cellName)
}

// valueView derives the cached-value view at most once per scan.
func (s *scanner) valueView() *parser.ValueView {
	if s.valuesOpened {
		return s.values
	}
	s.valuesOpened = true

	view, err := parser.OpenValueView(s.path)
	if err != nil {
		s.log.Warn("cached values unavailable", "error", err)
		return nil
	}
	s.log.Debug("cached value view opened")
	s.values = view
	return view
}

func (s *scanner) closeValues() {
	if s.values != nil {
		if err := s.values.Close(); err != nil {
			s.log.Debug("closing cached value view", "error", err)
		}
	}
}
