package technique

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// ConfinementDetector finds units whose open cells are confined to another
// unit: a region living entirely in one row or column, or a row/column whose
// open cells all share one region. The confined cell set carries an exact
// star requirement, which the exclusive-set and cross-constraint strategies
// consume.
type ConfinementDetector struct{}

func NewConfinementDetector() *ConfinementDetector { return &ConfinementDetector{} }

func (*ConfinementDetector) Name() string { return Confinement }

func (d *ConfinementDetector) Analyze(s *domain.State) []domain.Deduction {
	var out []domain.Deduction
	n := s.Size()
	quota := s.Def.StarsPerUnit

	for id := 1; id <= n; id++ {
		cells := s.AreaCells(domain.AreaRegion, id)
		empties := s.EmptyCells(cells)
		remaining := quota - s.CountMark(cells, domain.Star)
		if len(empties) == 0 || remaining <= 0 {
			continue
		}
		if r, ok := sameRow(empties); ok {
			out = append(out, domain.NewExclusiveSetDeduction(
				fmt.Sprintf("region %d within row %d", id, r),
				empties, remaining, Confinement,
				fmt.Sprintf("all open cells of region %d sit in row %d, which must take the region's %d remaining stars", id, r, remaining)))
		}
		if c, ok := sameCol(empties); ok {
			out = append(out, domain.NewExclusiveSetDeduction(
				fmt.Sprintf("region %d within column %d", id, c),
				empties, remaining, Confinement,
				fmt.Sprintf("all open cells of region %d sit in column %d, which must take the region's %d remaining stars", id, c, remaining)))
		}
	}

	lines := []struct {
		t     domain.AreaType
		label string
	}{{domain.AreaRow, "row"}, {domain.AreaColumn, "column"}}
	for _, line := range lines {
		for i := 0; i < n; i++ {
			cells := s.AreaCells(line.t, i)
			empties := s.EmptyCells(cells)
			remaining := quota - s.CountMark(cells, domain.Star)
			if len(empties) == 0 || remaining <= 0 {
				continue
			}
			if id, ok := sameRegion(s, empties); ok {
				out = append(out, domain.NewExclusiveSetDeduction(
					fmt.Sprintf("%s %d within region %d", line.label, i, id),
					empties, remaining, Confinement,
					fmt.Sprintf("all open cells of %s %d belong to region %d, which must take the %s's %d remaining stars", line.label, i, id, line.label, remaining)))
			}
		}
	}
	return out
}

func sameRow(cells []domain.CellCoord) (int, bool) {
	for _, c := range cells[1:] {
		if c.Row != cells[0].Row {
			return 0, false
		}
	}
	return cells[0].Row, true
}

func sameCol(cells []domain.CellCoord) (int, bool) {
	for _, c := range cells[1:] {
		if c.Col != cells[0].Col {
			return 0, false
		}
	}
	return cells[0].Col, true
}

func sameRegion(s *domain.State, cells []domain.CellCoord) (int, bool) {
	id := s.RegionAt(cells[0])
	for _, c := range cells[1:] {
		if s.RegionAt(c) != id {
			return 0, false
		}
	}
	return id, true
}
