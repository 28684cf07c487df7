package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
)

func canonicalHeader() []string {
	return []string{
		ColGoalNo, ColGoalTitle, ColTargetCode, ColTargetTitle,
		ColIndicatorCode, ColIndicatorTitle, ColQuestion1, ColQuestion2, ColQuestion3,
		ColGRICodes, ColTSRSCodes, ColResponsibleUnit, ColDataSource, ColFrequency,
	}
}

func sampleRow() []string {
	return []string{
		"13", "Climate Action", "13.2", "Integrate climate measures",
		"13.2.1", "Countries with NDCs", "Is a reduction plan in place?", "Is progress tracked?", "",
		"GRI 305", "TSRS E1", "Sustainability Office", "Annual report", "Yearly",
	}
}

func TestNormalizeCanonicalHeader(t *testing.T) {
	rows, err := Normalize(dto.Table{Header: canonicalHeader(), Rows: [][]string{sampleRow()}})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "13", rows[0].Get(ColGoalNo))
	assert.Equal(t, "13.2.1", rows[0].Get(ColIndicatorCode))
	assert.Equal(t, "Countries with NDCs", rows[0].Get(ColIndicatorTitle))
	assert.Equal(t, "GRI 305", rows[0].Get(ColGRICodes))
}

// Every accepted alias must normalize to the same table as the canonical
// spelling.
func TestNormalizeAliasRoundTrip(t *testing.T) {
	canonical, err := Normalize(dto.Table{Header: canonicalHeader(), Rows: [][]string{sampleRow()}})
	require.NoError(t, err)

	for canonicalCol, aliasList := range columnAliases {
		for _, alias := range aliasList {
			header := canonicalHeader()
			for i, col := range header {
				if col == canonicalCol {
					header[i] = alias
				}
			}

			rows, err := Normalize(dto.Table{Header: header, Rows: [][]string{sampleRow()}})
			require.NoErrorf(t, err, "alias %q for %s", alias, canonicalCol)
			require.Len(t, rows, 1)
			assert.Equalf(t, canonical[0], rows[0], "alias %q for %s", alias, canonicalCol)
		}
	}
}

func TestNormalizeTurkishHeaders(t *testing.T) {
	cases := []struct {
		name   string
		goalNo string
	}{
		{name: "official spelling", goalNo: "Sürdürülebilir Kalkınma Hedefi No:"},
		{name: "corrupted encoding", goalNo: "Srdrlebilir Kalknma Hedefi No:"},
		{name: "padded and upper", goalNo: "  SÜRDÜRÜLEBILIR KALKINMA HEDEFI NO:  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := []string{
				tc.goalNo, "SDG Başlık", "Alt Hedef Kodu", "Alt Hedef Tanımı (TR)",
				"Gösterge Kodu", "Gösterge Tanımı (TR)", "Soru 1", "Soru 2", "Soru 3",
			}
			row := []string{"7", "Erişilebilir Enerji", "7.1", "Enerji erişimi", "7.1.1", "Elektriğe erişim", "Soru bir", "", ""}

			rows, err := Normalize(dto.Table{Header: header, Rows: [][]string{row}})
			require.NoError(t, err)
			require.Len(t, rows, 1)

			assert.Equal(t, "7", rows[0].Get(ColGoalNo))
			assert.Equal(t, "7.1.1", rows[0].Get(ColIndicatorCode))
			assert.Equal(t, "Soru bir", rows[0].Get(ColQuestion1))
		})
	}
}

func TestNormalizeDerivesGoalNo(t *testing.T) {
	header := []string{ColIndicatorCode, ColIndicatorTitle, ColTargetCode}

	rows, err := Normalize(dto.Table{Header: header, Rows: [][]string{
		{"13.2.1", "Countries with NDCs", "13.2"},
		{"", "no code here", "9.1"},
	}})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "13", rows[0].Get(ColGoalNo))
	// Falls back to the target code prefix when the indicator code is blank.
	assert.Equal(t, "9", rows[1].Get(ColGoalNo))
}

func TestNormalizeFailsClosed(t *testing.T) {
	header := []string{ColGoalTitle, ColQuestion1}

	rows, err := Normalize(dto.Table{Header: header, Rows: [][]string{{"Climate Action", "q"}}})
	assert.Nil(t, rows)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.ElementsMatch(t,
		[]string{ColGoalNo, ColIndicatorCode, ColIndicatorTitle},
		missingErr.Columns)
}

func TestNormalizeShortRows(t *testing.T) {
	rows, err := Normalize(dto.Table{Header: canonicalHeader(), Rows: [][]string{
		{"13", "Climate Action"}, // export trimmed trailing cells
	}})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "13", rows[0].Get(ColGoalNo))
	assert.Equal(t, "", rows[0].Get(ColIndicatorCode))
}

func TestFoldHeader(t *testing.T) {
	assert.Equal(t, foldHeader("Gösterge Kodu"), foldHeader("  GOSTERGE KODU "))
	assert.Equal(t, "sdg no", foldHeader(" SDG No "))
}
