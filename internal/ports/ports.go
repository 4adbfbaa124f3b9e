package ports

import (
	"context"
	"time"

	"svw.info/starbattle/internal/domain"
)

// Stats captures performance characteristics of a solve cycle.
type Stats struct {
	Deductions int // deductions surviving the filter this cycle
	Duration   time.Duration
}

// Detector is one deduction technique: a pure, deterministic function of a
// state. Detectors never mutate their input and never depend on another
// detector's output within a cycle.
type Detector interface {
	Name() string
	Analyze(s *domain.State) []domain.Deduction
}

// HintDetector is a shape-based technique that yields ready-made hints
// instead of raw deductions.
type HintDetector interface {
	Name() string
	FindHints(s *domain.State) []domain.Hint
}

// Solver returns the next deductively certain move, or nil when none exists.
// Returning no hint is a normal terminal result, not an error.
type Solver interface {
	Solve(ctx context.Context, s *domain.State) (*domain.Hint, Stats, error)
}

// Validator checks definitions at load time and state invariants during play.
type Validator interface {
	ValidateRegions(ctx context.Context, def *domain.PuzzleDef) ([]domain.Issue, error)
	ValidateState(ctx context.Context, s *domain.State) ([]domain.Violation, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
