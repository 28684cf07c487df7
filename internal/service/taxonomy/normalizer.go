package taxonomy

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical column names of the normalized question-bank table.
const (
	ColGoalNo          = "goal_no"
	ColGoalTitle       = "goal_title"
	ColTargetCode      = "target_code"
	ColTargetTitle     = "target_title"
	ColIndicatorCode   = "indicator_code"
	ColIndicatorTitle  = "indicator_title"
	ColQuestion1       = "question_1"
	ColQuestion2       = "question_2"
	ColQuestion3       = "question_3"
	ColGRICodes        = "gri_codes"
	ColTSRSCodes       = "tsrs_codes"
	ColResponsibleUnit = "responsible_unit"
	ColDataSource      = "data_source"
	ColDataMethod      = "data_method"
	ColFrequency       = "frequency"
	ColUnit            = "unit"
	ColDataQuality     = "data_quality"
	ColNotes           = "notes"
)

var requiredColumns = []string{ColGoalNo, ColIndicatorCode, ColIndicatorTitle}

// columnAliases maps each canonical column to the ordered list of header
// spellings seen across export batches; the first alias present in the
// source wins. Comparison is case-insensitive, whitespace-trimmed and
// diacritic-folded, so each spelling also covers its lost-diacritic form.
// Spellings that drop letters outright (mojibake from a bad encoding pass)
// are listed explicitly.
var columnAliases = map[string][]string{
	ColGoalNo: {
		"goal_no", "SDG No", "SDG No.", "SDGNo", "sdg_no",
		"Sürdürülebilir Kalkınma Hedefi No:", "Srdrlebilir Kalknma Hedefi No:",
		"Hedef No", "Goal No", "SDG",
	},
	ColGoalTitle: {
		"goal_title", "SDG Başlık", "SDG Başlığı", "SDG Title", "Goal Title", "sdg_title",
	},
	ColTargetCode: {
		"target_code", "Alt Hedef Kodu", "AltHedefKodu", "Target Code",
	},
	ColTargetTitle: {
		"target_title", "Alt Hedef Tanımı (TR)", "Alt Hedef Tanımı", "Target Description (TR)", "target_title_tr",
	},
	ColIndicatorCode: {
		"indicator_code", "Gösterge Kodu", "Indicator Code", "Gösterge",
	},
	ColIndicatorTitle: {
		"indicator_title", "Gösterge Tanımı (TR)", "Gösterge Tanımı", "Indicator Description (TR)",
		"Indicator Title (TR)", "title_tr",
	},
	ColQuestion1: {"question_1", "Soru 1", "Question 1"},
	ColQuestion2: {"question_2", "Soru 2", "Question 2"},
	ColQuestion3: {"question_3", "Soru 3", "Question 3"},
	ColGRICodes: {
		"gri_codes", "GRI Bağlantısı", "GRI Connections", "GRI",
	},
	ColTSRSCodes: {
		"tsrs_codes", "TSRS Bağlantısı", "TSRS Connections", "TSRS",
	},
	ColResponsibleUnit: {
		"responsible_unit", "Sorumlu Birim/Kişi", "Sorumlu", "Responsible Unit/Person",
	},
	ColDataSource: {"data_source", "Veri Kaynağı", "Data Source"},
	ColDataMethod: {"data_method", "Veri Yöntemi", "Data Method"},
	ColFrequency:  {"frequency", "Ölçüm Sıklığı", "Measurement Frequency"},
	ColUnit:       {"unit", "Birim", "Unit"},
	ColDataQuality: {
		"data_quality", "Veri Kalitesi", "Data Quality",
	},
	ColNotes: {"notes", "Notlar / Bağımlılıklar", "Notlar", "Notes"},
}

var leadingDigitsRe = regexp.MustCompile(`^(\d+)`)

// MissingColumnsError reports the required columns that could not be
// resolved by alias lookup or derivation.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Map(func(r rune) rune {
		// Dotless ı has no combining-mark decomposition, fold it by hand so
		// KALKINMA and Kalkınma land on the same key.
		if r == 'ı' {
			return 'i'
		}
		return r
	}),
	norm.NFC,
)

// foldHeader prepares a header cell for alias comparison: trim, strip
// combining diacritics, lowercase.
func foldHeader(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Normalize maps a raw source table onto the canonical column set. It is a
// pure transform: cell values pass through untouched, only the header is
// resolved. When a required column cannot be resolved (after the GoalNo
// derivation fallback) it fails closed with a MissingColumnsError and no
// rows.
func Normalize(table dto.Table) ([]dto.Row, error) {
	headerIdx := make(map[string]int, len(table.Header))
	for i, h := range table.Header {
		key := foldHeader(h)
		if _, ok := headerIdx[key]; !ok && key != "" {
			headerIdx[key] = i
		}
	}

	resolved := make(map[string]int, len(columnAliases))
	for canonical, aliasList := range columnAliases {
		for _, alias := range aliasList {
			if idx, ok := headerIdx[foldHeader(alias)]; ok {
				resolved[canonical] = idx
				break
			}
		}
	}

	// Derivation fallback: a missing GoalNo is recoverable from the leading
	// digits of the indicator (or target) code.
	deriveGoalNo := false
	if _, ok := resolved[ColGoalNo]; !ok {
		_, hasIndicator := resolved[ColIndicatorCode]
		_, hasTarget := resolved[ColTargetCode]
		deriveGoalNo = hasIndicator || hasTarget
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := resolved[col]; ok {
			continue
		}
		if col == ColGoalNo && deriveGoalNo {
			continue
		}
		missing = append(missing, col)
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	cell := func(raw []string, col string) string {
		idx, ok := resolved[col]
		if !ok || idx >= len(raw) {
			return ""
		}
		return raw[idx]
	}

	rows := make([]dto.Row, 0, len(table.Rows))
	for _, raw := range table.Rows {
		row := make(dto.Row, len(resolved))
		for canonical := range resolved {
			row[canonical] = cell(raw, canonical)
		}

		if deriveGoalNo {
			prefix := leadingDigitsRe.FindString(strings.TrimSpace(cell(raw, ColIndicatorCode)))
			if prefix == "" {
				prefix = leadingDigitsRe.FindString(strings.TrimSpace(cell(raw, ColTargetCode)))
			}
			row[ColGoalNo] = prefix
		}

		rows = append(rows, row)
	}

	return rows, nil
}
