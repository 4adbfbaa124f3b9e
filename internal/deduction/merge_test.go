package deduction

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/starbattle/internal/domain"
)

func TestMergeCollapsesIdenticalCells(t *testing.T) {
	c := domain.CellCoord{Row: 1, Col: 2}
	a := domain.NewCellDeduction(c, domain.Star, "t1", "first")
	b := domain.NewCellDeduction(c, domain.Star, "t2", "second")

	merged, conflicts := Merge([]domain.Deduction{a}, []domain.Deduction{b})
	if len(conflicts) != 0 {
		t.Fatalf("agreeing deductions reported a conflict: %v", conflicts)
	}
	if len(merged) != 1 || merged[0].Technique != "t1" {
		t.Fatalf("want one merged deduction keeping the prior entry, got %v", merged)
	}
}

func TestMergeReportsCellConflict(t *testing.T) {
	c := domain.CellCoord{Row: 1, Col: 2}
	a := domain.NewCellDeduction(c, domain.Star, "t1", "star it")
	b := domain.NewCellDeduction(c, domain.Cross, "t2", "cross it")
	other := domain.NewCellDeduction(domain.CellCoord{Row: 3, Col: 3}, domain.Star, "t1", "unrelated")

	merged, conflicts := Merge([]domain.Deduction{a, other}, []domain.Deduction{b})
	if len(conflicts) != 1 || conflicts[0] != c {
		t.Fatalf("want the disputed coordinate reported, got %v", conflicts)
	}
	// Neither side of the dispute may survive; the unrelated one must.
	if len(merged) != 1 || merged[0].Cell != other.Cell {
		t.Fatalf("want only the unrelated deduction to survive, got %v", merged)
	}
}

func TestMergePrefersExactOverBound(t *testing.T) {
	cells := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 2}}
	bound := domain.NewAreaDeduction(domain.AreaRow, 0, cells, "t1", "bound")
	bound.MaxStars = 1
	exact := domain.NewAreaDeduction(domain.AreaRow, 0, cells, "t2", "exact")
	exact.StarsRequired = 1

	merged, _ := Merge([]domain.Deduction{bound}, []domain.Deduction{exact})
	if len(merged) != 1 || merged[0].StarsRequired != 1 {
		t.Fatalf("exact count must win over a bare bound, got %v", merged)
	}
}

func TestMergePrefersNarrowerRange(t *testing.T) {
	cells := []domain.CellCoord{{Row: 0, Col: 0}}
	wide := domain.NewAreaDeduction(domain.AreaRow, 0, cells, "t1", "wide")
	wide.MinStars, wide.MaxStars = 0, 2
	narrow := domain.NewAreaDeduction(domain.AreaRow, 0, cells, "t2", "narrow")
	narrow.MinStars, narrow.MaxStars = 1, 2

	merged, _ := Merge([]domain.Deduction{wide}, []domain.Deduction{narrow})
	if len(merged) != 1 || merged[0].MinStars != 1 {
		t.Fatalf("narrower range must win, got %v", merged)
	}
}

func TestMergeAppendsAreaRelations(t *testing.T) {
	rel := domain.NewAreaRelationDeduction([]domain.AreaRef{{Type: domain.AreaRow, ID: 0}}, 2, "t", "")
	merged, _ := Merge([]domain.Deduction{rel}, []domain.Deduction{rel})
	if len(merged) != 2 {
		t.Fatalf("area-relations are unkeyed and always append, got %d entries", len(merged))
	}
}

// Merge order must not matter beyond the documented tighter-bound tie-break.
func TestMergeStability(t *testing.T) {
	cells := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 2}}
	a := domain.NewAreaDeduction(domain.AreaRow, 0, cells, "ta", "a")
	a.MinStars, a.MaxStars = 0, 2
	b := domain.NewAreaDeduction(domain.AreaRow, 0, cells, "tb", "b")
	b.StarsRequired = 1
	c := domain.NewCellDeduction(domain.CellCoord{Row: 2, Col: 2}, domain.Star, "tc", "c")

	ab, _ := Merge([]domain.Deduction{a, b}, nil)
	left, _ := Merge(ab, []domain.Deduction{c})
	aa, _ := Merge([]domain.Deduction{a}, nil)
	right, _ := Merge(aa, []domain.Deduction{b, c})

	if diff := cmp.Diff(left, right); diff != "" {
		t.Fatalf("merge result depends on grouping (-left +right):\n%s", diff)
	}
}
