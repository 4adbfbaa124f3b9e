package technique

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// BandRelationDetector reasons over bands of adjacent rows or columns. A band
// of k lines owes exactly k*quota stars, so the lines form one linked
// area-relation; and once whole regions sit inside the band, the band cells
// outside those regions owe exactly the difference, which comes out as an
// exclusive set.
type BandRelationDetector struct{}

func NewBandRelationDetector() *BandRelationDetector { return &BandRelationDetector{} }

func (*BandRelationDetector) Name() string { return BandRelation }

func (d *BandRelationDetector) Analyze(s *domain.State) []domain.Deduction {
	var out []domain.Deduction
	for _, t := range []domain.AreaType{domain.AreaRow, domain.AreaColumn} {
		for k := 2; k <= 3 && k < s.Size(); k++ {
			for start := 0; start+k <= s.Size(); start++ {
				out = d.analyzeBand(s, t, start, k, out)
			}
		}
	}
	return out
}

func (d *BandRelationDetector) analyzeBand(s *domain.State, t domain.AreaType, start, k int, out []domain.Deduction) []domain.Deduction {
	quota := s.Def.StarsPerUnit
	label := "rows"
	if t == domain.AreaColumn {
		label = "columns"
	}

	var refs []domain.AreaRef
	var bandCells []domain.CellCoord
	bandEmpty := 0
	for i := start; i < start+k; i++ {
		cells := s.AreaCells(t, i)
		empties := s.EmptyCells(cells)
		bandEmpty += len(empties)
		bandCells = append(bandCells, cells...)
		refs = append(refs, domain.AreaRef{Type: t, ID: i, Cells: empties})
	}
	if bandEmpty == 0 {
		return out
	}
	bandRemaining := k*quota - s.CountMark(bandCells, domain.Star)
	if bandRemaining < 0 {
		return out
	}

	rel := domain.NewAreaRelationDeduction(refs, bandRemaining, BandRelation,
		fmt.Sprintf("%s %d-%d need %d more stars between them", label, start, start+k-1, bandRemaining))
	out = append(out, rel)

	// Regions wholly inside the band consume a known share; the remainder
	// lands on the band cells outside them.
	inBand := func(c domain.CellCoord) bool {
		i := c.Row
		if t == domain.AreaColumn {
			i = c.Col
		}
		return i >= start && i < start+k
	}
	contained := map[int]bool{}
	containedRemaining := 0
	for id := 1; id <= s.Size(); id++ {
		cells := s.AreaCells(domain.AreaRegion, id)
		if len(cells) == 0 {
			continue
		}
		whole := true
		for _, c := range cells {
			if !inBand(c) {
				whole = false
				break
			}
		}
		if !whole {
			continue
		}
		contained[id] = true
		if rem := quota - s.CountMark(cells, domain.Star); rem > 0 {
			containedRemaining += rem
		}
	}
	if len(contained) == 0 {
		return out
	}
	var leftover []domain.CellCoord
	for _, c := range bandCells {
		if s.Mark(c) == domain.Empty && !contained[s.RegionAt(c)] {
			leftover = append(leftover, c)
		}
	}
	required := bandRemaining - containedRemaining
	if len(leftover) == 0 || required < 0 {
		return out
	}
	out = append(out, domain.NewExclusiveSetDeduction(
		fmt.Sprintf("%s %d-%d outside contained regions", label, start, start+k-1),
		leftover, required, BandRelation,
		fmt.Sprintf("%d regions fit entirely inside %s %d-%d, leaving %d stars for the cells around them", len(contained), label, start, start+k-1, required)))
	return out
}
