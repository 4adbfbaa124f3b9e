package domain

import "fmt"

// PuzzleDef describes a Star Battle board: side length, the star quota every
// row, column, and region must meet, and the region partition. Region ids run
// 1..Size. A definition is validated once at load time and never auto-repaired.
type PuzzleDef struct {
	Size         int     `json:"size"`
	StarsPerUnit int     `json:"starsPerUnit"`
	Regions      [][]int `json:"regions"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Key renders a stable string form, used as a map key where JSON needs one.
func (c CellCoord) Key() string { return fmt.Sprintf("r%dc%d", c.Row, c.Col) }

// State is a board in play: the definition plus the current cell marks.
// Only the owning caller mutates it; the solver clones it for trial checks.
type State struct {
	Def  *PuzzleDef   `json:"def"`
	Grid [][]CellMark `json:"grid"`
}

// NewState returns an all-empty state over def.
func NewState(def *PuzzleDef) *State {
	g := make([][]CellMark, def.Size)
	for i := range g {
		g[i] = make([]CellMark, def.Size)
	}
	return &State{Def: def, Grid: g}
}

// Clone copies the grid; the definition is shared (it is immutable after load).
func (s *State) Clone() *State {
	g := make([][]CellMark, len(s.Grid))
	for i, row := range s.Grid {
		g[i] = append([]CellMark(nil), row...)
	}
	return &State{Def: s.Def, Grid: g}
}

func (s *State) Size() int { return s.Def.Size }

func (s *State) InBounds(c CellCoord) bool {
	return c.Row >= 0 && c.Row < s.Def.Size && c.Col >= 0 && c.Col < s.Def.Size
}

func (s *State) Mark(c CellCoord) CellMark { return s.Grid[c.Row][c.Col] }

func (s *State) SetMark(c CellCoord, m CellMark) { s.Grid[c.Row][c.Col] = m }

func (s *State) RegionAt(c CellCoord) int { return s.Def.Regions[c.Row][c.Col] }

// Issue reports a structural problem in a PuzzleDef.
type Issue struct {
	Cell    *CellCoord `json:"cell,omitempty"`
	Message string     `json:"message"`
}

// Violation reports a broken board invariant in a State.
type Violation struct {
	Message string      `json:"message"`
	Cells   []CellCoord `json:"cells,omitempty"`
}

// Puzzle is a persisted board with metadata.
type Puzzle struct {
	ID        string       `json:"id,omitempty"`
	Name      string       `json:"name,omitempty"`
	Def       PuzzleDef    `json:"def"`
	Grid      [][]CellMark `json:"grid,omitempty"`
	CreatedAt int64        `json:"createdAt,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
