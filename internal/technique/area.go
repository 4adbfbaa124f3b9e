package technique

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// AreaCounter emits one area deduction per row, column, and region that still
// has open cells: the empty candidates plus the exact number of stars that
// must land among them. A unit whose quota is already met gets a zero
// MaxStars bound instead, so its leftover cells resolve to crosses.
type AreaCounter struct{}

func NewAreaCounter() *AreaCounter { return &AreaCounter{} }

func (*AreaCounter) Name() string { return AreaCount }

func (a *AreaCounter) Analyze(s *domain.State) []domain.Deduction {
	var out []domain.Deduction
	n := s.Size()
	for r := 0; r < n; r++ {
		out = a.analyzeArea(s, domain.AreaRow, r, fmt.Sprintf("row %d", r), out)
	}
	for c := 0; c < n; c++ {
		out = a.analyzeArea(s, domain.AreaColumn, c, fmt.Sprintf("column %d", c), out)
	}
	for id := 1; id <= n; id++ {
		out = a.analyzeArea(s, domain.AreaRegion, id, fmt.Sprintf("region %d", id), out)
	}
	return out
}

func (a *AreaCounter) analyzeArea(s *domain.State, t domain.AreaType, id int, label string, out []domain.Deduction) []domain.Deduction {
	cells := s.AreaCells(t, id)
	empties := s.EmptyCells(cells)
	if len(empties) == 0 {
		return out
	}
	remaining := s.Def.StarsPerUnit - s.CountMark(cells, domain.Star)
	if remaining <= 0 {
		d := domain.NewAreaDeduction(t, id, empties, AreaCount,
			fmt.Sprintf("%s already holds all of its stars", label))
		d.MaxStars = 0
		return append(out, d)
	}
	d := domain.NewAreaDeduction(t, id, empties, AreaCount,
		fmt.Sprintf("%s needs %d more stars among %d open cells", label, remaining, len(empties)))
	d.StarsRequired = remaining
	d.MinStars = remaining
	d.MaxStars = remaining
	return append(out, d)
}
