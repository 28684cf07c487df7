package dto

// Table is one raw tabular source: the header row as found in the export and
// the data rows below it. Loaders produce it; the normalizer consumes it.
type Table struct {
	Header []string
	Rows   [][]string
}

// Row is a single normalized row keyed by canonical column name. Missing
// cells read as "".
type Row map[string]string

func (r Row) Get(col string) string { return r[col] }
