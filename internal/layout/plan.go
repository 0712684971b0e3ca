// Package layout decides how many columns the focused workspace should
// have, which windows land in which column, and the exact action sequence
// that builds the arrangement.
package layout

import "math"

// Columns returns the column count for n windows: min(ceil(sqrt(n)), n).
// This approximates a roughly square grid while never producing an empty
// column. Defined as 1 for n = 0, though callers short-circuit before
// doing any column math on an empty workspace.
func Columns(n int) int {
	if n == 0 {
		return 1
	}
	c := int(math.Ceil(math.Sqrt(float64(n))))
	if c > n {
		c = n
	}
	return c
}

// Distribute splits n windows across c columns. Each column takes
// ceil(n/c) windows, filled left to right; the last column may be short.
// Columns whose slice would start past n are not emitted, so no column is
// ever empty.
func Distribute(n, c int) []int {
	perColumn := (n + c - 1) / c
	var counts []int
	for i := 0; i < c; i++ {
		start := i * perColumn
		if start >= n {
			break
		}
		end := start + perColumn
		if end > n {
			end = n
		}
		counts = append(counts, end-start)
	}
	return counts
}

// Plan is a computed column arrangement for one workspace.
type Plan struct {
	Windows   int     `yaml:"windows"    json:"windows"`
	Columns   int     `yaml:"columns"    json:"columns"`
	PerColumn int     `yaml:"per_column" json:"per_column"`
	Counts    []int   `yaml:"counts"     json:"counts"`
	WidthPct  float64 `yaml:"width_pct"  json:"width_pct"`
}

// NewPlan computes the arrangement for n windows using the sqrt rule.
func NewPlan(n int) Plan {
	return NewPlanWithColumns(n, 0)
}

// NewPlanWithColumns computes the arrangement for n windows. A positive
// columns value overrides the sqrt rule, clamped to at most one column per
// window; zero or negative means automatic.
func NewPlanWithColumns(n, columns int) Plan {
	c := columns
	if c <= 0 {
		c = Columns(n)
	} else if c > n && n > 0 {
		c = n
	}
	return Plan{
		Windows:   n,
		Columns:   c,
		PerColumn: (n + c - 1) / c,
		Counts:    Distribute(n, c),
		WidthPct:  100 / float64(c),
	}
}
