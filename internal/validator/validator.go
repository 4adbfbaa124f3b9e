package validator

import (
	"context"
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// RuleValidator performs the structural definition check and the board
// invariant check. Both are pure and report every problem they find;
// nothing is ever auto-repaired.
type RuleValidator struct{}

func New() *RuleValidator { return &RuleValidator{} }

// ValidateRegions checks that a definition is well formed: square grid,
// region ids in [1, size], every id present, one id per cell. Run once at
// load time, before any State is constructed from the definition.
func (v *RuleValidator) ValidateRegions(ctx context.Context, def *domain.PuzzleDef) ([]domain.Issue, error) {
	var issues []domain.Issue
	if def.Size < 1 {
		issues = append(issues, domain.Issue{Message: fmt.Sprintf("size must be at least 1, got %d", def.Size)})
		return issues, nil
	}
	if def.StarsPerUnit < 1 {
		issues = append(issues, domain.Issue{Message: fmt.Sprintf("starsPerUnit must be at least 1, got %d", def.StarsPerUnit)})
	}
	if len(def.Regions) != def.Size {
		issues = append(issues, domain.Issue{Message: fmt.Sprintf("regions grid has %d rows, want %d", len(def.Regions), def.Size)})
		return issues, nil
	}
	seen := make(map[int]bool, def.Size)
	for r, row := range def.Regions {
		if len(row) != def.Size {
			issues = append(issues, domain.Issue{Message: fmt.Sprintf("regions row %d has %d cells, want %d", r, len(row), def.Size)})
			continue
		}
		for c, id := range row {
			if id < 1 || id > def.Size {
				cell := domain.CellCoord{Row: r, Col: c}
				issues = append(issues, domain.Issue{
					Cell:    &cell,
					Message: fmt.Sprintf("region id %d out of range [1,%d]", id, def.Size),
				})
				continue
			}
			seen[id] = true
		}
	}
	for id := 1; id <= def.Size; id++ {
		if !seen[id] {
			issues = append(issues, domain.Issue{Message: fmt.Sprintf("region %d has no cells", id)})
		}
	}
	return issues, nil
}

// ValidateState reports every broken board invariant: a row, column, or
// region holding more stars than the quota, or two stars 8-adjacent. Used
// standalone and as the trial oracle for candidate hints.
func (v *RuleValidator) ValidateState(ctx context.Context, s *domain.State) ([]domain.Violation, error) {
	var out []domain.Violation
	n := s.Size()
	quota := s.Def.StarsPerUnit

	check := func(t domain.AreaType, id int, label string) {
		cells := s.AreaCells(t, id)
		var stars []domain.CellCoord
		for _, c := range cells {
			if s.Mark(c) == domain.Star {
				stars = append(stars, c)
			}
		}
		if len(stars) > quota {
			out = append(out, domain.Violation{
				Message: fmt.Sprintf("%s has %d stars, at most %d allowed", label, len(stars), quota),
				Cells:   stars,
			})
		}
	}
	for r := 0; r < n; r++ {
		check(domain.AreaRow, r, fmt.Sprintf("row %d", r))
	}
	for c := 0; c < n; c++ {
		check(domain.AreaColumn, c, fmt.Sprintf("column %d", c))
	}
	for id := 1; id <= n; id++ {
		check(domain.AreaRegion, id, fmt.Sprintf("region %d", id))
	}

	// Adjacency: scan right/down directions only so each pair reports once.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a := domain.CellCoord{Row: r, Col: c}
			if s.Mark(a) != domain.Star {
				continue
			}
			for _, d := range [4]domain.CellCoord{{Row: 0, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
				b := domain.CellCoord{Row: r + d.Row, Col: c + d.Col}
				if s.InBounds(b) && s.Mark(b) == domain.Star {
					out = append(out, domain.Violation{
						Message: fmt.Sprintf("stars at %s and %s touch", a.Key(), b.Key()),
						Cells:   []domain.CellCoord{a, b},
					})
				}
			}
		}
	}
	return out, nil
}
