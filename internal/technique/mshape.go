package technique

import (
	"fmt"
	"sort"

	"svw.info/starbattle/internal/domain"
)

// MShapeDetector recognizes regions whose cells form two raised peaks with a
// lower valley column between them. When the region is nearly out of room,
// the valley collapses: a star there would touch too many peak cells to
// leave space for the remaining stars, so the valley is crossed; and when
// the open cells exactly match the stars still required, they all star.
type MShapeDetector struct{}

func NewMShapeDetector() *MShapeDetector { return &MShapeDetector{} }

func (*MShapeDetector) Name() string { return MShape }

func (d *MShapeDetector) FindHints(s *domain.State) []domain.Hint {
	var hints []domain.Hint
	for id := 1; id <= s.Size(); id++ {
		cells := s.AreaCells(domain.AreaRegion, id)
		if len(cells) == 0 {
			continue
		}
		empties := s.EmptyCells(cells)
		remaining := s.Def.StarsPerUnit - s.CountMark(cells, domain.Star)
		if remaining <= 0 || len(empties) == 0 {
			continue
		}
		valleys := valleyColumns(cells)
		if len(valleys) == 0 {
			continue
		}
		// Only act when the region is nearly saturated.
		if len(empties)-remaining > 1 {
			continue
		}

		if len(empties) == remaining {
			h := domain.NewHint(domain.PlaceStar, MShape, empties,
				fmt.Sprintf("region %d forms an M with exactly %d open cells for its %d missing stars", id, len(empties), remaining))
			h.Highlights = &domain.Highlights{Regions: []int{id}}
			hints = append(hints, h)
			continue
		}

		var crosses []domain.CellCoord
		for _, c := range cells {
			if s.Mark(c) != domain.Empty || !valleys[c.Col] {
				continue
			}
			// Star the valley cell hypothetically: every empty it touches is
			// lost, and what survives must still fit the other stars.
			free := 0
			for _, e := range empties {
				if e != c && !domain.Adjacent(e, c) {
					free++
				}
			}
			if free < remaining-1 {
				crosses = append(crosses, c)
			}
		}
		if len(crosses) > 0 {
			h := domain.NewHint(domain.PlaceCross, MShape, crosses,
				fmt.Sprintf("a star in the valley of region %d would smother its peaks; %d stars would no longer fit", id, remaining))
			h.Highlights = &domain.Highlights{Regions: []int{id}}
			hints = append(hints, h)
		}
	}
	return hints
}

// valleyColumns maps the columns of a region that sit strictly lower than
// both direct neighbors, measured by the topmost cell per column.
func valleyColumns(cells []domain.CellCoord) map[int]bool {
	top := map[int]int{}
	for _, c := range cells {
		if t, ok := top[c.Col]; !ok || c.Row < t {
			top[c.Col] = c.Row
		}
	}
	if len(top) < 3 {
		return nil
	}
	cols := make([]int, 0, len(top))
	for c := range top {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	valleys := map[int]bool{}
	for _, c := range cols {
		l, lok := top[c-1]
		r, rok := top[c+1]
		if lok && rok && top[c] > l && top[c] > r {
			valleys[c] = true
		}
	}
	if len(valleys) == 0 {
		return nil
	}
	return valleys
}
