package domain

// AreaCells lists the cells of a row, column, or region. Row and column ids
// are 0-based offsets; region ids are the 1-based values from the definition.
func (s *State) AreaCells(t AreaType, id int) []CellCoord {
	n := s.Def.Size
	var out []CellCoord
	switch t {
	case AreaRow:
		for c := 0; c < n; c++ {
			out = append(out, CellCoord{Row: id, Col: c})
		}
	case AreaColumn:
		for r := 0; r < n; r++ {
			out = append(out, CellCoord{Row: r, Col: id})
		}
	case AreaRegion:
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if s.Def.Regions[r][c] == id {
					out = append(out, CellCoord{Row: r, Col: c})
				}
			}
		}
	}
	return out
}

// CountMark counts cells among the given set currently holding mark m.
func (s *State) CountMark(cells []CellCoord, m CellMark) int {
	n := 0
	for _, c := range cells {
		if s.Mark(c) == m {
			n++
		}
	}
	return n
}

// EmptyCells filters the given set down to the still-empty cells.
func (s *State) EmptyCells(cells []CellCoord) []CellCoord {
	var out []CellCoord
	for _, c := range cells {
		if s.Mark(c) == Empty {
			out = append(out, c)
		}
	}
	return out
}

// Neighbors8 returns the in-bounds 8-neighborhood of c.
func (s *State) Neighbors8(c CellCoord) []CellCoord {
	var out []CellCoord
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nb := CellCoord{Row: c.Row + dr, Col: c.Col + dc}
			if s.InBounds(nb) {
				out = append(out, nb)
			}
		}
	}
	return out
}

// AdjacentStar reports whether any 8-neighbor of c holds a star.
func (s *State) AdjacentStar(c CellCoord) bool {
	for _, nb := range s.Neighbors8(c) {
		if s.Mark(nb) == Star {
			return true
		}
	}
	return false
}

// Adjacent reports 8-adjacency between two cells.
func Adjacent(a, b CellCoord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1 && !(dr == 0 && dc == 0)
}
