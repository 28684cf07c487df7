package taxonomy

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"github.com/xuri/excelize/v2"
)

// LoadTable reads a taxonomy export into a raw table. Real exports arrive as
// a genuine XLSX workbook, as CSV, or as an HTML table saved with an .xls
// extension (what web apps emit as "Excel"); the format is picked by
// extension with a content sniff for the HTML-in-.xls case.
func LoadTable(path, sheet string) (dto.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, sheet)
	case ".csv":
		return loadCSV(path)
	case ".html", ".htm":
		return loadHTML(path)
	case ".xls":
		if looksLikeHTML(path) {
			return loadHTML(path)
		}
		return dto.Table{}, fmt.Errorf("legacy binary .xls is not supported: %s", path)
	}
	return dto.Table{}, fmt.Errorf("unsupported taxonomy source format: %s", path)
}

func looksLikeHTML(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return false
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			continue
		}
		return b == '<'
	}
}

func loadXLSX(path, sheet string) (dto.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dto.Table{}, fmt.Errorf("excelize.OpenFile: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		// The requested sheet may be absent in older exports; fall back to
		// the first one.
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			return dto.Table{}, fmt.Errorf("excelize.GetRows: %w", err)
		}
	}

	return tableFromRows(rows), nil
}

func loadCSV(path string) (dto.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return dto.Table{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return dto.Table{}, fmt.Errorf("csv.ReadAll: %w", err)
	}

	return tableFromRows(rows), nil
}

func loadHTML(path string) (dto.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return dto.Table{}, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return dto.Table{}, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	var rows [][]string
	doc.Find("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	return tableFromRows(rows), nil
}

// tableFromRows splits the first non-empty row off as the header.
func tableFromRows(rows [][]string) dto.Table {
	for i, row := range rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			return dto.Table{Header: row, Rows: rows[i+1:]}
		}
	}
	return dto.Table{}
}
