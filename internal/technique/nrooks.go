package technique

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// NRooksDetector applies only to 10x10 boards with two stars per unit, viewed
// as a 5x5 grid of 2x2 blocks. Each block holds at most one star and each
// block-row and block-column holds four, so exactly one block per block-row
// and block-column is starless. Those starless blocks form an n-rooks
// placement on the coarse grid, which lets a single remaining candidate be
// forced from the rook structure alone.
type NRooksDetector struct{}

func NewNRooksDetector() *NRooksDetector { return &NRooksDetector{} }

func (*NRooksDetector) Name() string { return NRooks }

func (d *NRooksDetector) Analyze(s *domain.State) []domain.Deduction {
	if s.Size() != 10 || s.Def.StarsPerUnit != 2 {
		return nil
	}
	var out []domain.Deduction
	out = d.rookLines(s, out)
	out = d.forcedBlocks(s, out)
	return out
}

// rookLines stars the last open cells of any line whose open-cell count has
// collapsed to exactly its missing stars.
func (d *NRooksDetector) rookLines(s *domain.State, out []domain.Deduction) []domain.Deduction {
	lines := []struct {
		t     domain.AreaType
		label string
	}{{domain.AreaRow, "row"}, {domain.AreaColumn, "column"}}
	for _, line := range lines {
		for i := 0; i < s.Size(); i++ {
			cells := s.AreaCells(line.t, i)
			empties := s.EmptyCells(cells)
			remaining := s.Def.StarsPerUnit - s.CountMark(cells, domain.Star)
			if remaining <= 0 || len(empties) != remaining {
				continue
			}
			for _, c := range empties {
				out = append(out, domain.NewCellDeduction(c, domain.Star, NRooks,
					fmt.Sprintf("%s %d has exactly %d open cells for its %d missing stars", line.label, i, len(empties), remaining)))
			}
		}
	}
	return out
}

// blockState classifies one coarse block.
type blockState int

const (
	blockStarred blockState = iota
	blockMustEmpty
	blockUndetermined
)

// forcedBlocks finds a block-row with no identified starless block yet whose
// candidate is pinned down by its block-column: every competing block in that
// column already carries a star or belongs to a block-row whose starless
// block is known to sit elsewhere.
func (d *NRooksDetector) forcedBlocks(s *domain.State, out []domain.Deduction) []domain.Deduction {
	const coarse = 5
	var states [coarse][coarse]blockState
	rowHasEmpty := [coarse]bool{}

	for br := 0; br < coarse; br++ {
		for bc := 0; bc < coarse; bc++ {
			states[br][bc] = classify(s, br, bc)
			if states[br][bc] == blockMustEmpty {
				rowHasEmpty[br] = true
			}
		}
	}

	for br := 0; br < coarse; br++ {
		if rowHasEmpty[br] {
			continue
		}
		for bc := 0; bc < coarse; bc++ {
			if states[br][bc] != blockUndetermined {
				continue
			}
			forced := true
			for br2 := 0; br2 < coarse; br2++ {
				if br2 == br || states[br2][bc] == blockStarred {
					continue
				}
				if states[br2][bc] == blockMustEmpty || !rowHasEmpty[br2] {
					// The column's starless block may still land at br2.
					forced = false
					break
				}
				// rowHasEmpty[br2] elsewhere: block (br2,bc) must hold a star.
			}
			if !forced {
				continue
			}
			for _, c := range blockCells(br, bc) {
				if s.Mark(c) == domain.Empty {
					out = append(out, domain.NewCellDeduction(c, domain.Cross, NRooks,
						fmt.Sprintf("block (%d,%d) is the only place the starless block of block-row %d and block-column %d can go", br, bc, br, bc)))
				}
			}
		}
	}
	return out
}

func blockCells(br, bc int) []domain.CellCoord {
	return []domain.CellCoord{
		{Row: br * 2, Col: bc * 2}, {Row: br * 2, Col: bc*2 + 1},
		{Row: br*2 + 1, Col: bc * 2}, {Row: br*2 + 1, Col: bc*2 + 1},
	}
}

func classify(s *domain.State, br, bc int) blockState {
	cells := blockCells(br, bc)
	for _, c := range cells {
		if s.Mark(c) == domain.Star {
			return blockStarred
		}
	}
	for _, c := range cells {
		if !provablyStarless(s, c) {
			return blockUndetermined
		}
	}
	return blockMustEmpty
}

// provablyStarless holds when a cell can be ruled out without a hint: already
// crossed, its row/column/region quota met, or 8-adjacent to a placed star.
func provablyStarless(s *domain.State, c domain.CellCoord) bool {
	switch s.Mark(c) {
	case domain.Cross:
		return true
	case domain.Star:
		return false
	}
	quota := s.Def.StarsPerUnit
	if s.CountMark(s.AreaCells(domain.AreaRow, c.Row), domain.Star) >= quota {
		return true
	}
	if s.CountMark(s.AreaCells(domain.AreaColumn, c.Col), domain.Star) >= quota {
		return true
	}
	if s.CountMark(s.AreaCells(domain.AreaRegion, s.RegionAt(c)), domain.Star) >= quota {
		return true
	}
	return s.AdjacentStar(c)
}
