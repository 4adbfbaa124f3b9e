package technique

import (
	"sort"
	"testing"

	"svw.info/starbattle/internal/domain"
)

// mDef carves an M-shaped pentomino out of the top rows of a 5x5 two-star
// board: region 1 is {(0,0),(0,2),(1,0),(1,1),(1,2)}, peaks at columns 0 and
// 2 with the valley at column 1.
func mDef() *domain.PuzzleDef {
	return &domain.PuzzleDef{
		Size:         5,
		StarsPerUnit: 2,
		Regions: domain.RegionsFromStrings([]string{
			"12122",
			"11122",
			"33333",
			"44444",
			"55555",
		}),
	}
}

func TestMShapeFillsSaturatedRegion(t *testing.T) {
	s := domain.NewState(mDef())
	for _, c := range []domain.CellCoord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}} {
		s.SetMark(c, domain.Cross)
	}

	hints := NewMShapeDetector().FindHints(s)
	if len(hints) != 1 {
		t.Fatalf("got %d hints %v, want one fill hint", len(hints), hints)
	}
	h := hints[0]
	if h.Kind != domain.PlaceStar || h.Technique != MShape {
		t.Fatalf("got %s/%s, want place-star/m-shape", h.Kind, h.Technique)
	}
	cells := append([]domain.CellCoord(nil), h.ResultCells...)
	sort.Slice(cells, func(i, j int) bool { return cells[i].Col < cells[j].Col })
	want := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 2}}
	if len(cells) != 2 || cells[0] != want[0] || cells[1] != want[1] {
		t.Fatalf("fill cells = %v, want %v", cells, want)
	}
}

func TestMShapeCrossesSmotheringValley(t *testing.T) {
	// Region 1 is the three-cell M core {(0,0),(1,1),(0,2)}: a star in the
	// valley would touch both peaks and leave no room for two stars.
	def := &domain.PuzzleDef{
		Size:         5,
		StarsPerUnit: 2,
		Regions: domain.RegionsFromStrings([]string{
			"12122",
			"21222",
			"33333",
			"44444",
			"55555",
		}),
	}
	s := domain.NewState(def)

	hints := NewMShapeDetector().FindHints(s)
	if len(hints) != 1 {
		t.Fatalf("got %d hints %v, want one valley cross", len(hints), hints)
	}
	h := hints[0]
	if h.Kind != domain.PlaceCross || h.Technique != MShape {
		t.Fatalf("got %s/%s, want place-cross/m-shape", h.Kind, h.Technique)
	}
	if len(h.ResultCells) != 1 || h.ResultCells[0] != (domain.CellCoord{Row: 1, Col: 1}) {
		t.Fatalf("cross cells = %v, want the valley cell (1,1)", h.ResultCells)
	}
}

func TestMShapeIgnoresLooseRegions(t *testing.T) {
	// Same M region but untouched: far more open cells than missing stars.
	s := domain.NewState(mDef())
	if hints := NewMShapeDetector().FindHints(s); len(hints) != 0 {
		t.Fatalf("loose region must not hint, got %v", hints)
	}
}
