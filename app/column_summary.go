package app

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// ColumnSummary describes the values written to one sheet column
type ColumnSummary struct {
	Label  string  `json:"label"`
	Column int     `json:"column"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

type columnCollector struct {
	labels map[int]string
	values map[int][]float64
}

func newColumnCollector() *columnCollector {
	return &columnCollector{
		labels: make(map[int]string),
		values: make(map[int][]float64),
	}
}

func (c *columnCollector) add(label string, column int, values []float64) {
	c.labels[column] = label
	c.values[column] = append(c.values[column], values...)
}

// summaries returns one entry per column in column order. Columns without
// values report a zero count.
func (c *columnCollector) summaries() []ColumnSummary {
	cols := make([]int, 0, len(c.labels))
	for col := range c.labels {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	out := make([]ColumnSummary, 0, len(cols))
	for _, col := range cols {
		data := stats.Float64Data(c.values[col])
		s := ColumnSummary{Label: c.labels[col], Column: col, Count: data.Len()}
		if s.Count > 0 {
			s.Min, _ = data.Min()
			s.Max, _ = data.Max()
			s.Mean, _ = data.Mean()
		}
		out = append(out, s)
	}
	return out
}
