package history

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rileyhilliard/glancehist/internal/errors"
)

// DateKey is the reserved series key holding the sample timestamps.
const DateKey = "date"

// Table is an immutable snapshot of one plugin's history. Every series is
// aligned by index with the date axis; a NaN marks a sample where the series
// had no value.
type Table struct {
	dates  []time.Time
	series map[string][]float64
}

// NewTable builds a table from a date axis and named series.
// Returns an error if any series length differs from the date axis or a
// series uses the reserved date key.
func NewTable(dates []time.Time, series map[string][]float64) (*Table, error) {
	t := &Table{
		dates:  append([]time.Time(nil), dates...),
		series: make(map[string][]float64, len(series)),
	}

	for key, values := range series {
		if key == DateKey {
			return nil, errors.New(errors.ErrHistory,
				fmt.Sprintf("Series name '%s' is reserved", DateKey),
				"Rename the series")
		}
		if len(values) != len(dates) {
			return nil, errors.New(errors.ErrHistory,
				fmt.Sprintf("Series '%s' has %d values but %d dates", key, len(values), len(dates)),
				"Every series must hold one value per sample")
		}
		t.series[key] = append([]float64(nil), values...)
	}

	return t, nil
}

// Len returns the number of samples in the table.
func (t *Table) Len() int {
	return len(t.dates)
}

// Dates returns the date axis.
func (t *Table) Dates() []time.Time {
	return t.dates
}

// Has reports whether key names a stored series or the date axis.
func (t *Table) Has(key string) bool {
	if key == DateKey {
		return true
	}
	_, ok := t.series[key]
	return ok
}

// Keys returns the date key followed by every series key in lexicographic order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.series)+1)
	for k := range t.series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append([]string{DateKey}, keys...)
}

// Values returns the series stored under key, or nil if absent.
// The date axis is returned as Unix seconds.
func (t *Table) Values(key string) []float64 {
	if key == DateKey {
		out := make([]float64, len(t.dates))
		for i, d := range t.dates {
			out[i] = float64(d.UnixNano()) / float64(time.Second)
		}
		return out
	}
	return t.series[key]
}

// Latest returns the most recent non-NaN value of a series.
func (t *Table) Latest(key string) (float64, bool) {
	values := t.Values(key)
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			return values[i], true
		}
	}
	return 0, false
}
