package layout

import (
	"math"
	"testing"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{17, 5},
	}
	for _, tt := range tests {
		if got := Columns(tt.n); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestColumnsLaw(t *testing.T) {
	for n := 1; n <= 500; n++ {
		c := Columns(n)
		want := int(math.Ceil(math.Sqrt(float64(n))))
		if want > n {
			want = n
		}
		if c != want {
			t.Fatalf("Columns(%d) = %d, want %d", n, c, want)
		}
		if c < 1 || c > n {
			t.Fatalf("Columns(%d) = %d out of range [1, %d]", n, c, n)
		}
	}
}

func TestColumnsSelfApplication(t *testing.T) {
	// Columns(Columns(n)) never grows.
	for n := 2; n <= 200; n++ {
		c := Columns(n)
		if Columns(c) > c {
			t.Fatalf("Columns(Columns(%d)) = %d > %d", n, Columns(c), c)
		}
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		n, c int
		want []int
	}{
		{1, 1, []int{1}},
		{4, 2, []int{2, 2}},
		{5, 3, []int{2, 2, 1}},
		{9, 3, []int{3, 3, 3}},
		{7, 3, []int{3, 3, 1}},
	}
	for _, tt := range tests {
		got := Distribute(tt.n, tt.c)
		if len(got) != len(tt.want) {
			t.Errorf("Distribute(%d, %d) = %v, want %v", tt.n, tt.c, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Distribute(%d, %d) = %v, want %v", tt.n, tt.c, got, tt.want)
				break
			}
		}
	}
}

func TestDistributeLaw(t *testing.T) {
	// The slices cover all n windows exactly, and no emitted column is
	// empty.
	for n := 1; n <= 300; n++ {
		c := Columns(n)
		counts := Distribute(n, c)
		sum := 0
		for i, count := range counts {
			if count == 0 {
				t.Fatalf("n=%d c=%d: column %d is empty", n, c, i)
			}
			sum += count
		}
		if sum != n {
			t.Fatalf("n=%d c=%d: counts %v sum to %d", n, c, counts, sum)
		}
	}
}

func TestNewPlan(t *testing.T) {
	p := NewPlan(5)
	if p.Columns != 3 || p.PerColumn != 2 {
		t.Errorf("NewPlan(5): got columns=%d per=%d, want 3, 2", p.Columns, p.PerColumn)
	}
	if len(p.Counts) != 3 || p.Counts[2] != 1 {
		t.Errorf("NewPlan(5): counts = %v, want [2 2 1]", p.Counts)
	}

	p = NewPlan(1)
	if p.Columns != 1 || p.WidthPct != 100 {
		t.Errorf("NewPlan(1): got columns=%d width=%v, want 1 column at 100%%", p.Columns, p.WidthPct)
	}
}

func TestNewPlanWithColumns(t *testing.T) {
	// Explicit count wins over the sqrt rule.
	p := NewPlanWithColumns(9, 2)
	if p.Columns != 2 || p.PerColumn != 5 {
		t.Errorf("override: got columns=%d per=%d, want 2, 5", p.Columns, p.PerColumn)
	}

	// Clamped to one column per window.
	p = NewPlanWithColumns(3, 10)
	if p.Columns != 3 {
		t.Errorf("clamp: got columns=%d, want 3", p.Columns)
	}

	// Zero and negative fall back to automatic.
	if p := NewPlanWithColumns(4, 0); p.Columns != 2 {
		t.Errorf("auto (0): got columns=%d, want 2", p.Columns)
	}
	if p := NewPlanWithColumns(4, -1); p.Columns != 2 {
		t.Errorf("auto (-1): got columns=%d, want 2", p.Columns)
	}
}
