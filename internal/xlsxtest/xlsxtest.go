// Package xlsxtest writes minimal xlsx packages for tests, including cached
// formula values that excelize cannot produce through its public API.
package xlsxtest

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Cell describes one cell of a fixture sheet.
type Cell struct {
	// Ref is the cell name, e.g. "C1".
	Ref string
	// Formula is the formula text without the leading "=".
	Formula string
	// Value is the stored value. For formula cells it is the cached result;
	// leave it empty for a formula without a cached value.
	Value string
	// Type is the OOXML cell type: "" or "n" (number), "s" (shared string),
	// "str", "inlineStr", "b", or "e".
	Type string
}

// Sheet describes one fixture sheet.
type Sheet struct {
	Name  string
	Cells []Cell
}

// Write creates an xlsx package at path holding the given sheets.
func Write(t testing.TB, path string, sheets ...Sheet) {
	t.Helper()

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	var sst []string
	sstIndex := map[string]int{}

	parts := map[string]string{
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` +
			`</Relationships>`,
	}

	var contentTypes, workbook, workbookRels strings.Builder
	contentTypes.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` +
		`<Override PartName="/xl/sharedStrings.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"/>`)
	workbook.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><sheets>`)
	workbookRels.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)

	for i, sheet := range sheets {
		id := i + 1
		fmt.Fprintf(&contentTypes, `<Override PartName="/xl/worksheets/sheet%d.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`, id)
		fmt.Fprintf(&workbook, `<sheet name="%s" sheetId="%d" r:id="rId%d"/>`, escape(sheet.Name), id, id)
		fmt.Fprintf(&workbookRels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet%d.xml"/>`, id, id)
		parts[fmt.Sprintf("xl/worksheets/sheet%d.xml", id)] = sheetXML(t, sheet, func(s string) int {
			if idx, ok := sstIndex[s]; ok {
				return idx
			}
			sstIndex[s] = len(sst)
			sst = append(sst, s)
			return len(sst) - 1
		})
	}

	contentTypes.WriteString(`</Types>`)
	workbook.WriteString(`</sheets></workbook>`)
	workbookRels.WriteString(`</Relationships>`)
	parts["[Content_Types].xml"] = contentTypes.String()
	parts["xl/workbook.xml"] = workbook.String()
	parts["xl/_rels/workbook.xml.rels"] = workbookRels.String()

	var sstXML strings.Builder
	fmt.Fprintf(&sstXML, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="%d" uniqueCount="%d">`, len(sst), len(sst))
	for _, s := range sst {
		fmt.Fprintf(&sstXML, `<si><t>%s</t></si>`, escape(s))
	}
	sstXML.WriteString(`</sst>`)
	parts["xl/sharedStrings.xml"] = sstXML.String()

	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create part %s: %v", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			t.Fatalf("write part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close package: %v", err)
	}
}

func sheetXML(t testing.TB, sheet Sheet, sharedString func(string) int) string {
	t.Helper()

	type placed struct {
		col, row int
		cell     Cell
	}
	cells := make([]placed, 0, len(sheet.Cells))
	for _, c := range sheet.Cells {
		col, row, err := excelize.CellNameToCoordinates(c.Ref)
		if err != nil {
			t.Fatalf("bad cell ref %q: %v", c.Ref, err)
		}
		cells = append(cells, placed{col: col, row: row, cell: c})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].row != cells[j].row {
			return cells[i].row < cells[j].row
		}
		return cells[i].col < cells[j].col
	})

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`)
	currentRow := 0
	for _, p := range cells {
		if p.row != currentRow {
			if currentRow != 0 {
				b.WriteString(`</row>`)
			}
			fmt.Fprintf(&b, `<row r="%d">`, p.row)
			currentRow = p.row
		}
		c := p.cell
		if c.Type != "" {
			fmt.Fprintf(&b, `<c r="%s" t="%s">`, c.Ref, c.Type)
		} else {
			fmt.Fprintf(&b, `<c r="%s">`, c.Ref)
		}
		if c.Formula != "" {
			fmt.Fprintf(&b, `<f>%s</f>`, escape(c.Formula))
		}
		switch {
		case c.Type == "inlineStr":
			fmt.Fprintf(&b, `<is><t>%s</t></is>`, escape(c.Value))
		case c.Type == "s":
			fmt.Fprintf(&b, `<v>%d</v>`, sharedString(c.Value))
		case c.Value != "":
			fmt.Fprintf(&b, `<v>%s</v>`, escape(c.Value))
		}
		b.WriteString(`</c>`)
	}
	if currentRow != 0 {
		b.WriteString(`</row>`)
	}
	b.WriteString(`</sheetData></worksheet>`)
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
