package domain

// CellMark is the content of one board cell.
type CellMark uint8

const (
	Empty CellMark = iota
	Star
	Cross
)

func (m CellMark) String() string {
	switch m {
	case Star:
		return "star"
	case Cross:
		return "cross"
	default:
		return "empty"
	}
}

// HintKind tells the consumer what to place on the result cells.
type HintKind string

const (
	PlaceStar  HintKind = "place-star"
	PlaceCross HintKind = "place-cross"
)

// Mark converts the hint kind to the cell mark it places.
func (k HintKind) Mark() CellMark {
	if k == PlaceStar {
		return Star
	}
	return Cross
}

// AreaType distinguishes the three unit kinds that share the star quota.
type AreaType string

const (
	AreaRow    AreaType = "row"
	AreaColumn AreaType = "column"
	AreaRegion AreaType = "region"
)

// DeductionKind tags the variants of Deduction.
type DeductionKind string

const (
	KindCell         DeductionKind = "cell"
	KindArea         DeductionKind = "area"
	KindBlock        DeductionKind = "block"
	KindExclusiveSet DeductionKind = "exclusive-set"
	KindAreaRelation DeductionKind = "area-relation"
)
