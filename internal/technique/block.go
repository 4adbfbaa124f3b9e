package technique

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// BlockCapacityDetector reasons about 2x2 blocks. Adjacency caps any 2x2
// window at one star, so a window already holding a star forbids stars in its
// remaining cells; that covers the full 8-neighborhood of every placed star
// through the four windows containing it. Star-free blocks of the coarse
// tiling get the capacity bound itself, which later strategies can tighten
// against band constraints.
type BlockCapacityDetector struct{}

func NewBlockCapacityDetector() *BlockCapacityDetector { return &BlockCapacityDetector{} }

func (*BlockCapacityDetector) Name() string { return BlockCapacity }

func (b *BlockCapacityDetector) Analyze(s *domain.State) []domain.Deduction {
	var out []domain.Deduction
	n := s.Size()

	// Cell-granular windows around placed stars.
	for r := 0; r <= n-2; r++ {
		for c := 0; c <= n-2; c++ {
			d := domain.NewBlockDeduction(domain.CellCoord{Row: r, Col: c}, true, BlockCapacity, "")
			cells := d.BlockCells(n)
			stars := s.CountMark(cells, domain.Star)
			if stars == 0 || len(s.EmptyCells(cells)) == 0 {
				continue
			}
			d.MaxStars = stars
			d.Explanation = fmt.Sprintf("the 2x2 block at %s already holds a star; its other cells cannot", d.Block.Key())
			out = append(out, d)
		}
	}

	// Coarse tiling blocks, capacity bound only.
	for br := 0; br*2 < n; br++ {
		for bc := 0; bc*2 < n; bc++ {
			d := domain.NewBlockDeduction(domain.CellCoord{Row: br, Col: bc}, false, BlockCapacity, "")
			cells := d.BlockCells(n)
			if s.CountMark(cells, domain.Star) > 0 || len(s.EmptyCells(cells)) == 0 {
				continue
			}
			d.MaxStars = 1
			d.Explanation = fmt.Sprintf("block (%d,%d) can hold at most one star", br, bc)
			out = append(out, d)
		}
	}
	return out
}
