package solver

import (
	"testing"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/validator"
)

func TestResolveExclusiveSets(t *testing.T) {
	e := New(validator.New(), nil)
	s := domain.NewState(rowsDef(6, 1))
	set := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4}}

	t.Run("last candidate is starred", func(t *testing.T) {
		st := s.Clone()
		st.SetMark(domain.CellCoord{Row: 0, Col: 0}, domain.Cross)
		st.SetMark(domain.CellCoord{Row: 0, Col: 2}, domain.Cross)
		d := domain.NewExclusiveSetDeduction("row 0 candidates", set, 1, "confinement", "one star lives here")

		h := e.resolveExclusiveSets(st, []domain.Deduction{d})
		if h == nil || h.Kind != domain.PlaceStar {
			t.Fatalf("want a forced star, got %+v", h)
		}
		if len(h.ResultCells) != 1 || h.ResultCells[0] != (domain.CellCoord{Row: 0, Col: 4}) {
			t.Fatalf("result cells = %v, want [(0,4)]", h.ResultCells)
		}
	})

	t.Run("met set crosses leftovers", func(t *testing.T) {
		st := s.Clone()
		st.SetMark(domain.CellCoord{Row: 0, Col: 0}, domain.Star)
		d := domain.NewExclusiveSetDeduction("row 0 candidates", set, 1, "confinement", "one star lives here")

		h := e.resolveExclusiveSets(st, []domain.Deduction{d})
		if h == nil || h.Kind != domain.PlaceCross {
			t.Fatalf("want leftover crosses, got %+v", h)
		}
		if len(h.ResultCells) != 2 {
			t.Fatalf("result cells = %v, want the two open set cells", h.ResultCells)
		}
	})
}

func TestResolveBoundsMinFill(t *testing.T) {
	// A block proven obligatorily starred with one open cell left: the min
	// bound alone forces the star, no exact requirement needed.
	e := New(validator.New(), nil)
	s := domain.NewState(rowsDef(6, 1))
	s.SetMark(domain.CellCoord{Row: 2, Col: 2}, domain.Cross)
	s.SetMark(domain.CellCoord{Row: 2, Col: 3}, domain.Cross)
	s.SetMark(domain.CellCoord{Row: 3, Col: 2}, domain.Cross)

	d := domain.NewBlockDeduction(domain.CellCoord{Row: 2, Col: 2}, true, "block-capacity", "block must hold a star")
	d.MinStars = 1

	h := e.resolveBounds(s, []domain.Deduction{d})
	if h == nil || h.Kind != domain.PlaceStar {
		t.Fatalf("want the min bound promoted to a star, got %+v", h)
	}
	if len(h.ResultCells) != 1 || h.ResultCells[0] != (domain.CellCoord{Row: 3, Col: 3}) {
		t.Fatalf("result cells = %v, want [(3,3)]", h.ResultCells)
	}
}

func TestResolveCrossConstraints(t *testing.T) {
	// An exclusive set collapsed to its last mandatory cell, intersected with
	// the column that contains it.
	e := New(validator.New(), nil)
	s := domain.NewState(rowsDef(6, 1))
	s.SetMark(domain.CellCoord{Row: 1, Col: 3}, domain.Cross)

	set := domain.NewExclusiveSetDeduction("region 2 candidates",
		[]domain.CellCoord{{Row: 1, Col: 3}, {Row: 1, Col: 4}}, 1, "confinement", "")
	colCells := make([]domain.CellCoord, 0, 6)
	for r := 0; r < 6; r++ {
		colCells = append(colCells, domain.CellCoord{Row: r, Col: 4})
	}
	area := domain.NewAreaDeduction(domain.AreaColumn, 4, colCells, "area-count", "")

	h := e.resolveCrossConstraints(s, []domain.Deduction{set, area})
	if h == nil || h.Kind != domain.PlaceStar {
		t.Fatalf("want the intersection starred, got %+v", h)
	}
	if len(h.ResultCells) != 1 || h.ResultCells[0] != (domain.CellCoord{Row: 1, Col: 4}) {
		t.Fatalf("result cells = %v, want [(1,4)]", h.ResultCells)
	}
	if h.Highlights == nil || len(h.Highlights.Cols) != 1 || h.Highlights.Cols[0] != 4 {
		t.Fatalf("highlights = %+v, want column 4", h.Highlights)
	}
}
