// Package technique holds the deduction technique library. Every detector is
// a pure, deterministic function of a state; the library is a fixed,
// declared-order list with no shared state between techniques.
package technique

import "svw.info/starbattle/internal/ports"

// Technique tags carried on deductions and hints.
const (
	AreaCount     = "area-count"
	BlockCapacity = "block-capacity"
	Confinement   = "confinement"
	BandRelation  = "band-relation"
	NRooks        = "n-rooks"
	MShape        = "m-shape"
	Pattern       = "pattern"
)

// Detectors returns the deduction-producing techniques in the order they run
// every solve cycle.
func Detectors() []ports.Detector {
	return []ports.Detector{
		NewAreaCounter(),
		NewBlockCapacityDetector(),
		NewConfinementDetector(),
		NewBandRelationDetector(),
		NewNRooksDetector(),
	}
}

// HintDetectors returns the shape-based techniques that yield ready-made
// hints, consulted after the deduction strategies.
func HintDetectors() []ports.HintDetector {
	return []ports.HintDetector{
		NewMShapeDetector(),
		NewPatternDetector(),
	}
}
