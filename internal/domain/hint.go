package domain

import "sync/atomic"

var hintSeq atomic.Int64

// Highlights groups display aids a consumer may render alongside a hint.
type Highlights struct {
	Cells   []CellCoord `json:"cells,omitempty"`
	Rows    []int       `json:"rows,omitempty"`
	Cols    []int       `json:"cols,omitempty"`
	Regions []int       `json:"regions,omitempty"`
}

// Hint is a single validated move for the consumer to apply. ID is a
// process-wide monotonic counter with no semantic meaning. When one hint
// mixes stars and crosses, CellKinds overrides Kind per cell (keyed by
// CellCoord.Key).
type Hint struct {
	ID          int64               `json:"id"`
	Kind        HintKind            `json:"kind"`
	Technique   string              `json:"technique"`
	ResultCells []CellCoord         `json:"resultCells"`
	Explanation string              `json:"explanation"`
	Details     string              `json:"details,omitempty"`
	Highlights  *Highlights         `json:"highlights,omitempty"`
	CellKinds   map[string]HintKind `json:"cellKinds,omitempty"`
}

// NewHint stamps a fresh id onto a hint.
func NewHint(kind HintKind, technique string, cells []CellCoord, explanation string) Hint {
	return Hint{
		ID:          hintSeq.Add(1),
		Kind:        kind,
		Technique:   technique,
		ResultCells: cells,
		Explanation: explanation,
	}
}

// MarkFor returns the mark the hint places on cell c.
func (h *Hint) MarkFor(c CellCoord) CellMark {
	if h.CellKinds != nil {
		if k, ok := h.CellKinds[c.Key()]; ok {
			return k.Mark()
		}
	}
	return h.Kind.Mark()
}

// Apply writes the hint's marks into the given state. The engine only calls
// this on clones; committing a hint to the live state is the caller's move.
func (h *Hint) Apply(s *State) {
	for _, c := range h.ResultCells {
		s.SetMark(c, h.MarkFor(c))
	}
}
