package deduction

import (
	"fmt"
	"sort"
	"strings"

	"svw.info/starbattle/internal/domain"
)

// Merge combines a prior deduction list with newly produced ones, keyed per
// kind. Identical entries collapse; area, block, and exclusive-set collisions
// resolve through Tighter; area-relations are always appended unkeyed.
//
// Two cell deductions disagreeing on the forced mark for the same coordinate
// are an unresolved conflict: both are withheld and the coordinate is
// reported, so the inconsistency propagates instead of being silently
// resolved in either direction.
func Merge(prior, next []domain.Deduction) (merged []domain.Deduction, conflicts []domain.CellCoord) {
	index := make(map[string]int)
	conflicted := make(map[string]domain.CellCoord)

	add := func(d domain.Deduction) {
		k := key(&d)
		if k == "" {
			merged = append(merged, d)
			return
		}
		if _, bad := conflicted[k]; bad {
			return
		}
		i, ok := index[k]
		if !ok {
			index[k] = len(merged)
			merged = append(merged, d)
			return
		}
		if d.Kind == domain.KindCell {
			if merged[i].Mark != d.Mark {
				conflicted[k] = d.Cell
				merged[i].Kind = "" // tombstone, compacted below
			}
			return // identical forced mark collapses to one
		}
		merged[i] = Tighter(merged[i], d)
	}

	for _, d := range prior {
		add(d)
	}
	for _, d := range next {
		add(d)
	}

	if len(conflicted) > 0 {
		compact := merged[:0]
		for _, d := range merged {
			if d.Kind != "" {
				compact = append(compact, d)
			}
		}
		merged = compact
		for _, c := range conflicted {
			conflicts = append(conflicts, c)
		}
		sort.Slice(conflicts, func(i, j int) bool {
			if conflicts[i].Row != conflicts[j].Row {
				return conflicts[i].Row < conflicts[j].Row
			}
			return conflicts[i].Col < conflicts[j].Col
		})
	}
	return merged, conflicts
}

// key derives the merge identity of a deduction; empty means unkeyed.
func key(d *domain.Deduction) string {
	switch d.Kind {
	case domain.KindCell:
		return "cell:" + d.Cell.Key()
	case domain.KindArea:
		return fmt.Sprintf("area:%s:%d", d.AreaType, d.AreaID)
	case domain.KindBlock:
		return fmt.Sprintf("block:%s:%t", d.Block.Key(), d.CellUnits)
	case domain.KindExclusiveSet:
		keys := make([]string, len(d.Cells))
		for i, c := range d.Cells {
			keys[i] = c.Key()
		}
		sort.Strings(keys)
		return "xset:" + strings.Join(keys, ",")
	}
	return ""
}
