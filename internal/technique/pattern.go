package technique

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// PatternDetector matches the canonical template library against the live
// board under every admissible transform: the four rotations, their mirror
// reflections, composed with an integer translation. A match requires the
// transformed star set to equal the board's stars restricted to the local
// footprint exactly, the candidate to be empty and in bounds, and every
// attached feature predicate to hold.
type PatternDetector struct {
	templates []Template
}

func NewPatternDetector() *PatternDetector {
	return &PatternDetector{templates: builtinTemplates()}
}

func (*PatternDetector) Name() string { return Pattern }

// transforms enumerates the dihedral symmetries of the grid.
var transforms = [8]func(domain.CellCoord) domain.CellCoord{
	func(c domain.CellCoord) domain.CellCoord { return c },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: c.Row, Col: -c.Col} },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: -c.Row, Col: c.Col} },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: -c.Row, Col: -c.Col} },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: c.Col, Col: c.Row} },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: c.Col, Col: -c.Row} },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: -c.Col, Col: c.Row} },
	func(c domain.CellCoord) domain.CellCoord { return domain.CellCoord{Row: -c.Col, Col: -c.Row} },
}

func (p *PatternDetector) FindHints(s *domain.State) []domain.Hint {
	var boardStars []domain.CellCoord
	n := s.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cc := domain.CellCoord{Row: r, Col: c}
			if s.Mark(cc) == domain.Star {
				boardStars = append(boardStars, cc)
			}
		}
	}
	if len(boardStars) == 0 {
		return nil
	}

	var hints []domain.Hint
	seen := map[string]bool{}
	for _, t := range p.templates {
		for _, xf := range transforms {
			stars := make([]domain.CellCoord, len(t.Stars))
			for i, st := range t.Stars {
				stars[i] = xf(st)
			}
			cand := xf(t.Candidate)
			// Anchor the first transformed star on each placed star.
			for _, anchor := range boardStars {
				dr, dc := anchor.Row-stars[0].Row, anchor.Col-stars[0].Col
				h, ok := p.matchAt(s, t, stars, cand, dr, dc)
				if !ok {
					continue
				}
				key := h.ResultCells[0].Key() + ":" + string(h.Kind)
				if !seen[key] {
					seen[key] = true
					hints = append(hints, h)
				}
			}
		}
	}
	return hints
}

func (p *PatternDetector) matchAt(s *domain.State, t Template, stars []domain.CellCoord, cand domain.CellCoord, dr, dc int) (domain.Hint, bool) {
	placed := make([]domain.CellCoord, len(stars))
	for i, st := range stars {
		c := domain.CellCoord{Row: st.Row + dr, Col: st.Col + dc}
		if !s.InBounds(c) || s.Mark(c) != domain.Star {
			return domain.Hint{}, false
		}
		placed[i] = c
	}
	target := domain.CellCoord{Row: cand.Row + dr, Col: cand.Col + dc}
	if !s.InBounds(target) || s.Mark(target) != domain.Empty {
		return domain.Hint{}, false
	}

	// The star set must match the footprint exactly: no stray star inside
	// the pattern's bounding box.
	minR, maxR := target.Row, target.Row
	minC, maxC := target.Col, target.Col
	inPattern := map[domain.CellCoord]bool{}
	for _, c := range placed {
		inPattern[c] = true
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			cc := domain.CellCoord{Row: r, Col: c}
			if s.Mark(cc) == domain.Star && !inPattern[cc] {
				return domain.Hint{}, false
			}
		}
	}

	for _, f := range t.Features {
		if !f.Eval(s, target) {
			return domain.Hint{}, false
		}
	}

	h := domain.NewHint(t.Place, Pattern, []domain.CellCoord{target},
		fmt.Sprintf("pattern %q: %s", t.Name, t.Explain))
	h.Details = fmt.Sprintf("matched at %s", target.Key())
	h.Highlights = &domain.Highlights{Cells: append(placed, target)}
	return h, true
}
