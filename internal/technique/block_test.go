package technique

import (
	"testing"

	"svw.info/starbattle/internal/domain"
)

func TestBlockCapacity(t *testing.T) {
	s := domain.NewState(rowsDef(4, 1))
	s.SetMark(domain.CellCoord{Row: 1, Col: 1}, domain.Star)

	ds := NewBlockCapacityDetector().Analyze(s)

	var windows, coarse int
	for _, d := range ds {
		if d.Kind != domain.KindBlock {
			t.Fatalf("unexpected deduction kind %q", d.Kind)
		}
		if d.CellUnits {
			windows++
			if d.MaxStars != 1 {
				t.Fatalf("starred window must cap at its star count, got %+v", d)
			}
		} else {
			coarse++
			if d.MaxStars != 1 {
				t.Fatalf("coarse block cap = %d, want 1", d.MaxStars)
			}
		}
	}
	// The star sits in four 2x2 windows; three coarse tiling blocks stay
	// star-free.
	if windows != 4 || coarse != 3 {
		t.Fatalf("got %d windows and %d coarse blocks, want 4 and 3", windows, coarse)
	}
}
