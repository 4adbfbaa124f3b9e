// Package deduction holds the utilities between the technique detectors and
// the solver: dropping deductions the live state has already overtaken, and
// merging the detectors' combined output down to one entry per key.
package deduction

import "svw.info/starbattle/internal/domain"

// FilterValid drops every deduction already satisfied or contradicted by the
// live state. The surviving list is what the resolution strategies consume.
// Filtering is idempotent: running it twice yields the same list.
func FilterValid(s *domain.State, ds []domain.Deduction) []domain.Deduction {
	out := ds[:0:0]
	for _, d := range ds {
		if alive(s, &d) {
			out = append(out, d)
		}
	}
	return out
}

func alive(s *domain.State, d *domain.Deduction) bool {
	switch d.Kind {
	case domain.KindCell:
		// Satisfied and contradicted targets both drop; a contradiction is
		// surfaced by the merge step when two live deductions disagree, not
		// by keeping a stale entry around.
		return s.Mark(d.Cell) == domain.Empty
	case domain.KindArea:
		return candidatesAlive(s, d, d.Cells)
	case domain.KindBlock:
		return candidatesAlive(s, d, d.BlockCells(s.Size()))
	case domain.KindExclusiveSet:
		// A met requirement is not yet satisfied while empties remain: the
		// resolution still owes them crosses. Overshooting the requirement
		// contradicts the set and drops it.
		if len(s.EmptyCells(d.Cells)) == 0 {
			return false
		}
		return s.CountMark(d.Cells, domain.Star) <= d.StarsRequired
	case domain.KindAreaRelation:
		for _, a := range d.Areas {
			if len(s.EmptyCells(a.Cells)) > 0 {
				return true
			}
		}
		return false
	}
	return false
}

// candidatesAlive keeps an area/block/exclusive-set deduction while its
// candidate set still has empty cells and its exact requirement, if any, is
// not already met by placed stars.
func candidatesAlive(s *domain.State, d *domain.Deduction, cells []domain.CellCoord) bool {
	if len(s.EmptyCells(cells)) == 0 {
		return false
	}
	if d.StarsRequired != domain.Unspec && s.CountMark(cells, domain.Star) >= d.StarsRequired {
		return false
	}
	return true
}
