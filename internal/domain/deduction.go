package domain

// Unspec marks an absent optional bound on a Deduction.
const Unspec = -1

// AreaRef names one area inside an area-relation deduction, together with the
// empty candidate cells the producing technique saw in it.
type AreaRef struct {
	Type  AreaType    `json:"type"`
	ID    int         `json:"id"`
	Cells []CellCoord `json:"cells,omitempty"`
}

// Deduction is one locally proven constraint, not yet a committed move.
// Kind selects which fields are meaningful. Deductions are recomputed fresh
// every solve cycle and never persisted.
type Deduction struct {
	Kind        DeductionKind `json:"kind"`
	Technique   string        `json:"technique"`
	Explanation string        `json:"explanation"`

	// cell: one coordinate and the forced mark.
	Cell CellCoord `json:"cell,omitempty"`
	Mark CellMark  `json:"mark,omitempty"`

	// area: the unit and its empty candidates at production time.
	AreaType AreaType `json:"areaType,omitempty"`
	AreaID   int      `json:"areaId,omitempty"`

	// area and exclusive-set candidate cells. Block cells are derived from
	// Block/CellUnits against the live state instead.
	Cells []CellCoord `json:"cells,omitempty"`

	// Optional bounds, Unspec when absent. StarsRequired is an exact count
	// over the candidate cells; Min/MaxStars bracket it. Block deductions may
	// carry MinStars > 0: a second pass against a region band can prove a
	// block obligatorily starred, and that class of deduction must stay
	// expressible.
	MinStars      int `json:"minStars,omitempty"`
	MaxStars      int `json:"maxStars,omitempty"`
	StarsRequired int `json:"starsRequired,omitempty"`

	// block: top-left coordinate of a 2x2 block. CellUnits tells whether the
	// coordinate is already cell-granular or counts coarse-grid blocks.
	Block     CellCoord `json:"block,omitempty"`
	CellUnits bool      `json:"cellUnits,omitempty"`

	// exclusive-set display name.
	SetName string `json:"setName,omitempty"`

	// area-relation: linked areas sharing one combined requirement.
	Areas      []AreaRef `json:"areas,omitempty"`
	TotalStars int       `json:"totalStars,omitempty"`
}

// NewCellDeduction forces one cell to the given mark.
func NewCellDeduction(c CellCoord, m CellMark, technique, explanation string) Deduction {
	return Deduction{
		Kind: KindCell, Technique: technique, Explanation: explanation,
		Cell: c, Mark: m,
		MinStars: Unspec, MaxStars: Unspec, StarsRequired: Unspec,
	}
}

// NewAreaDeduction constrains the empty candidates of one row/column/region.
func NewAreaDeduction(t AreaType, id int, cells []CellCoord, technique, explanation string) Deduction {
	return Deduction{
		Kind: KindArea, Technique: technique, Explanation: explanation,
		AreaType: t, AreaID: id, Cells: cells,
		MinStars: Unspec, MaxStars: Unspec, StarsRequired: Unspec,
	}
}

// NewBlockDeduction constrains a 2x2 block. cellUnits selects the coordinate
// granularity; coarse coordinates are doubled when resolved.
func NewBlockDeduction(block CellCoord, cellUnits bool, technique, explanation string) Deduction {
	return Deduction{
		Kind: KindBlock, Technique: technique, Explanation: explanation,
		Block: block, CellUnits: cellUnits,
		MinStars: Unspec, MaxStars: Unspec, StarsRequired: Unspec,
	}
}

// NewExclusiveSetDeduction fixes an exact star count on an arbitrary cell set.
func NewExclusiveSetDeduction(name string, cells []CellCoord, starsRequired int, technique, explanation string) Deduction {
	return Deduction{
		Kind: KindExclusiveSet, Technique: technique, Explanation: explanation,
		SetName: name, Cells: cells,
		MinStars: Unspec, MaxStars: Unspec, StarsRequired: starsRequired,
	}
}

// NewAreaRelationDeduction links areas under one combined star requirement.
func NewAreaRelationDeduction(areas []AreaRef, totalStars int, technique, explanation string) Deduction {
	return Deduction{
		Kind: KindAreaRelation, Technique: technique, Explanation: explanation,
		Areas: areas, TotalStars: totalStars,
		MinStars: Unspec, MaxStars: Unspec, StarsRequired: Unspec,
	}
}

// BlockCells expands a block deduction's coordinate to its board cells,
// doubling coarse-grid coordinates and clipping at the board edge.
func (d *Deduction) BlockCells(size int) []CellCoord {
	r0, c0 := d.Block.Row, d.Block.Col
	if !d.CellUnits {
		r0, c0 = r0*2, c0*2
	}
	var out []CellCoord
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			c := CellCoord{Row: r0 + dr, Col: c0 + dc}
			if c.Row < size && c.Col < size && c.Row >= 0 && c.Col >= 0 {
				out = append(out, c)
			}
		}
	}
	return out
}
