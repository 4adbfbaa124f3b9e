package technique

import "svw.info/starbattle/internal/domain"

// Feature is a symbolic predicate a template can attach to its candidate
// cell, evaluated after the geometric match.
type Feature struct {
	Name string
	Eval func(s *domain.State, c domain.CellCoord) bool
}

// RingFeature holds when the candidate sits exactly one cell in from the
// boundary on some side. This is the inner ring, not the literal edge: on a
// 10x10 board it is true at (1,5) and (5,1) and false at (0,5) and (5,5).
var RingFeature = Feature{
	Name: "candidate on outer ring",
	Eval: func(s *domain.State, c domain.CellCoord) bool {
		n := s.Size()
		return c.Row == 1 || c.Row == n-2 || c.Col == 1 || c.Col == n-2
	},
}

// Template is a canonical pattern on an abstract board: a star layout, one
// candidate cell, the polarity to force, and optional feature predicates.
// Templates are matched under every rotation, reflection, and translation;
// the star set must equal the board's stars restricted to the transformed
// footprint exactly.
type Template struct {
	Name      string
	Stars     []domain.CellCoord
	Candidate domain.CellCoord
	Place     domain.HintKind
	Features  []Feature
	Explain   string
}

// builtinTemplates is the canonical library. All entries are conservative:
// each candidate is adjacent to at least one matched star, so the declared
// polarity is forced whenever the geometry matches.
func builtinTemplates() []Template {
	return []Template{
		{
			Name:      "diagonal-touch",
			Stars:     []domain.CellCoord{{Row: 0, Col: 0}},
			Candidate: domain.CellCoord{Row: 1, Col: 1},
			Place:     domain.PlaceCross,
			Explain:   "the cell touches a star diagonally",
		},
		{
			Name:      "side-touch",
			Stars:     []domain.CellCoord{{Row: 0, Col: 0}},
			Candidate: domain.CellCoord{Row: 0, Col: 1},
			Place:     domain.PlaceCross,
			Explain:   "the cell sits directly beside a star",
		},
		{
			Name:      "gap-center",
			Stars:     []domain.CellCoord{{Row: 0, Col: 0}, {Row: 2, Col: 2}},
			Candidate: domain.CellCoord{Row: 1, Col: 1},
			Place:     domain.PlaceCross,
			Explain:   "the cell sits between two stars a knight's-gap apart and touches both",
		},
		{
			Name:      "ring-pinch",
			Stars:     []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 2}},
			Candidate: domain.CellCoord{Row: 1, Col: 1},
			Place:     domain.PlaceCross,
			Features:  []Feature{RingFeature},
			Explain:   "on the outer ring, the cell under a split star pair touches both stars",
		},
	}
}
