// SPDX-License-Identifier: MIT

package features

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Table is an assembled feature table. Each row is the concatenation of all
// feature vectors for one matrix followed by its label.
type Table struct {
	Key     string      `msgpack:"key"`
	Columns []string    `msgpack:"columns"`
	Rows    [][]float64 `msgpack:"rows"`
}

// Labels returns the last column of every row.
func (t Table) Labels() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		if len(r) > 0 {
			out[i] = r[len(r)-1]
		}
	}

	return out
}

// WriteCSV writes the table as CSV with a header row of column names.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.Columns) > 0 {
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
	}
	rec := make([]string, 0, len(t.Columns))
	for _, r := range t.Rows {
		rec = rec[:0]
		for _, v := range r {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
