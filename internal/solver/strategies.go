package solver

import (
	"fmt"
	"sort"
	"strings"

	"svw.info/starbattle/internal/domain"
)

// maxBundledCells caps how many simultaneously certain cells one hint may
// carry; the contract is one clear logical step, not a board dump.
const maxBundledCells = 10

// resolveCells collapses every per-cell deduction into a star set and a
// cross set. Conflicting forced marks never reach this point (the merge step
// withholds them and the engine aborts the cycle), so the sets are disjoint.
func (e *Engine) resolveCells(s *domain.State, ds []domain.Deduction) *domain.Hint {
	var cells []domain.Deduction
	for _, d := range ds {
		if d.Kind == domain.KindCell {
			cells = append(cells, d)
		}
	}
	if len(cells) == 0 {
		return nil
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Cell.Row != cells[j].Cell.Row {
			return cells[i].Cell.Row < cells[j].Cell.Row
		}
		return cells[i].Cell.Col < cells[j].Cell.Col
	})

	if len(cells) == 1 {
		d := cells[0]
		kind := domain.PlaceCross
		if d.Mark == domain.Star {
			kind = domain.PlaceStar
		}
		h := domain.NewHint(kind, d.Technique, []domain.CellCoord{d.Cell}, d.Explanation)
		h.Highlights = &domain.Highlights{Cells: []domain.CellCoord{d.Cell}}
		return &h
	}

	if len(cells) > maxBundledCells {
		cells = cells[:maxBundledCells]
	}
	var coords []domain.CellCoord
	var techniques []string
	seenTech := map[string]bool{}
	stars, crosses := 0, 0
	kinds := map[string]domain.HintKind{}
	for _, d := range cells {
		coords = append(coords, d.Cell)
		if !seenTech[d.Technique] {
			seenTech[d.Technique] = true
			techniques = append(techniques, d.Technique)
		}
		if d.Mark == domain.Star {
			stars++
			kinds[d.Cell.Key()] = domain.PlaceStar
		} else {
			crosses++
			kinds[d.Cell.Key()] = domain.PlaceCross
		}
	}
	kind := domain.PlaceCross
	if stars > 0 {
		kind = domain.PlaceStar
	}
	h := domain.NewHint(kind, strings.Join(techniques, "+"), coords,
		fmt.Sprintf("%d cells are forced at once", len(coords)))
	if stars > 0 && crosses > 0 {
		h.CellKinds = kinds
	}
	h.Highlights = &domain.Highlights{Cells: coords}
	return &h
}

// resolveAreas turns a single area deduction into a move when a unit has
// exactly one candidate left for its missing star, when no further stars are
// allowed, or when the minimum bound pins its one candidate.
func (e *Engine) resolveAreas(s *domain.State, ds []domain.Deduction) *domain.Hint {
	for _, d := range ds {
		if d.Kind != domain.KindArea {
			continue
		}
		if h := resolveCandidates(s, &d, d.Cells, areaHighlights(&d)); h != nil {
			return h
		}
	}
	return nil
}

// resolveBlocks is the same logic specialized to 2x2 blocks, with coarse
// block coordinates doubled to cell coordinates on expansion.
func (e *Engine) resolveBlocks(s *domain.State, ds []domain.Deduction) *domain.Hint {
	for _, d := range ds {
		if d.Kind != domain.KindBlock {
			continue
		}
		cells := d.BlockCells(s.Size())
		if h := resolveCandidates(s, &d, cells, &domain.Highlights{Cells: cells}); h != nil {
			return h
		}
	}
	return nil
}

// resolveCandidates applies the shared area/block endgame rules to one
// deduction's candidate cells.
func resolveCandidates(s *domain.State, d *domain.Deduction, cells []domain.CellCoord, hl *domain.Highlights) *domain.Hint {
	empties := s.EmptyCells(cells)
	if len(empties) == 0 {
		return nil
	}
	placed := s.CountMark(cells, domain.Star)

	if d.StarsRequired != domain.Unspec {
		rem := d.StarsRequired - placed
		if rem == 1 && len(empties) == 1 {
			h := domain.NewHint(domain.PlaceStar, d.Technique, empties, d.Explanation)
			h.Highlights = hl
			return &h
		}
	}
	if d.MaxStars != domain.Unspec && d.MaxStars-placed <= 0 {
		h := domain.NewHint(domain.PlaceCross, d.Technique, empties, d.Explanation)
		h.Highlights = hl
		return &h
	}
	if d.MinStars != domain.Unspec && d.MinStars-placed == 1 && len(empties) == 1 {
		h := domain.NewHint(domain.PlaceStar, d.Technique, empties, d.Explanation)
		h.Highlights = hl
		return &h
	}
	return nil
}

// resolveExclusiveSets stars the last candidate of a set one star short, and
// crosses everything left in a set whose requirement is already met.
func (e *Engine) resolveExclusiveSets(s *domain.State, ds []domain.Deduction) *domain.Hint {
	for _, d := range ds {
		if d.Kind != domain.KindExclusiveSet {
			continue
		}
		empties := s.EmptyCells(d.Cells)
		if len(empties) == 0 {
			continue
		}
		rem := d.StarsRequired - s.CountMark(d.Cells, domain.Star)
		if rem == 1 && len(empties) == 1 {
			h := domain.NewHint(domain.PlaceStar, d.Technique, empties, d.Explanation)
			h.Highlights = &domain.Highlights{Cells: d.Cells}
			return &h
		}
		if rem <= 0 {
			h := domain.NewHint(domain.PlaceCross, d.Technique, empties,
				fmt.Sprintf("%s already holds its %d stars", d.SetName, d.StarsRequired))
			h.Highlights = &domain.Highlights{Cells: d.Cells}
			return &h
		}
	}
	return nil
}

// resolveBounds promotes a [min,max] bound to certainty when the remaining
// requirement exactly fills the remaining candidates.
func (e *Engine) resolveBounds(s *domain.State, ds []domain.Deduction) *domain.Hint {
	for _, d := range ds {
		var cells []domain.CellCoord
		var hl *domain.Highlights
		switch d.Kind {
		case domain.KindArea:
			cells, hl = d.Cells, areaHighlights(&d)
		case domain.KindBlock:
			cells = d.BlockCells(s.Size())
			hl = &domain.Highlights{Cells: cells}
		default:
			continue
		}
		empties := s.EmptyCells(cells)
		if len(empties) == 0 {
			continue
		}
		placed := s.CountMark(cells, domain.Star)
		fill := d.StarsRequired != domain.Unspec && d.StarsRequired-placed == len(empties)
		minFill := d.MinStars != domain.Unspec && d.MinStars-placed == len(empties)
		if fill || minFill {
			h := domain.NewHint(domain.PlaceStar, d.Technique, empties, d.Explanation)
			h.Highlights = hl
			return &h
		}
	}
	return nil
}

// resolveAreaRelations forces the lone candidate of a linked area group whose
// combined remaining requirement has collapsed to one.
func (e *Engine) resolveAreaRelations(s *domain.State, ds []domain.Deduction) *domain.Hint {
	for _, d := range ds {
		if d.Kind != domain.KindAreaRelation {
			continue
		}
		seen := map[domain.CellCoord]bool{}
		var empties []domain.CellCoord
		placed := 0
		for _, a := range d.Areas {
			for _, c := range a.Cells {
				if seen[c] {
					continue
				}
				seen[c] = true
				switch s.Mark(c) {
				case domain.Empty:
					empties = append(empties, c)
				case domain.Star:
					placed++
				}
			}
		}
		if d.TotalStars-placed == 1 && len(empties) == 1 {
			h := domain.NewHint(domain.PlaceStar, d.Technique, empties, d.Explanation)
			return &h
		}
	}
	return nil
}

// resolveCrossConstraints intersects an exclusive set that must star all of
// its empties with an area containing it; a single-cell intersection is a
// forced star.
func (e *Engine) resolveCrossConstraints(s *domain.State, ds []domain.Deduction) *domain.Hint {
	for _, x := range ds {
		if x.Kind != domain.KindExclusiveSet {
			continue
		}
		empX := s.EmptyCells(x.Cells)
		remX := x.StarsRequired - s.CountMark(x.Cells, domain.Star)
		if len(empX) != remX || len(empX) != 1 {
			continue
		}
		for _, a := range ds {
			if a.Kind != domain.KindArea {
				continue
			}
			if !subset(empX, s.EmptyCells(a.Cells)) {
				continue
			}
			h := domain.NewHint(domain.PlaceStar, x.Technique, empX,
				fmt.Sprintf("%s must star its last open cell", x.SetName))
			h.Highlights = areaHighlights(&a)
			return &h
		}
	}
	return nil
}

func subset(sub, super []domain.CellCoord) bool {
	in := make(map[domain.CellCoord]bool, len(super))
	for _, c := range super {
		in[c] = true
	}
	for _, c := range sub {
		if !in[c] {
			return false
		}
	}
	return true
}

func areaHighlights(d *domain.Deduction) *domain.Highlights {
	switch d.AreaType {
	case domain.AreaRow:
		return &domain.Highlights{Rows: []int{d.AreaID}}
	case domain.AreaColumn:
		return &domain.Highlights{Cols: []int{d.AreaID}}
	case domain.AreaRegion:
		return &domain.Highlights{Regions: []int{d.AreaID}}
	}
	return nil
}
