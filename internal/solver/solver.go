// Package solver arbitrates the technique detectors' output into at most one
// safe hint per call. Nothing here guesses: a cycle either collapses some
// ambiguity into a deductively certain move or returns no hint at all.
package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"svw.info/starbattle/internal/deduction"
	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/ports"
	"svw.info/starbattle/internal/technique"
)

// Engine runs every detector, filters and merges their deductions, and walks
// the resolution strategies in fixed priority order. Every candidate hint is
// re-validated on a cloned state before it may leave the engine.
type Engine struct {
	detectors []ports.Detector
	hinters   []ports.HintDetector
	validator ports.Validator
	logger    *slog.Logger
}

// New wires the default technique library against the given validator.
func New(v ports.Validator, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		detectors: technique.Detectors(),
		hinters:   technique.HintDetectors(),
		validator: v,
		logger:    logger,
	}
}

// Solve returns the next certain move for s, or nil when no technique can
// prove one. The input state is never mutated; trial applications run on
// clones only.
func (e *Engine) Solve(ctx context.Context, s *domain.State) (*domain.Hint, ports.Stats, error) {
	start := time.Now()
	done := func(h *domain.Hint, st ports.Stats) (*domain.Hint, ports.Stats, error) {
		st.Duration = time.Since(start)
		return h, st, nil
	}

	var raw []domain.Deduction
	for _, det := range e.detectors {
		raw = append(raw, det.Analyze(s)...)
	}
	raw = deduction.FilterValid(s, raw)
	ds, conflicts := deduction.Merge(nil, raw)
	stats := ports.Stats{Deductions: len(ds)}

	if len(conflicts) > 0 {
		// Two techniques proved opposite marks for the same cell. That means
		// a technique bug or an already-broken board; withholding the hint
		// beats trusting either side.
		e.logger.Warn("conflicting forced marks, withholding hint",
			"cells", len(conflicts), "first", conflicts[0].Key())
		return done(nil, stats)
	}

	strategies := []struct {
		name string
		run  func(*domain.State, []domain.Deduction) *domain.Hint
	}{
		{"cells", e.resolveCells},
		{"areas", e.resolveAreas},
		{"blocks", e.resolveBlocks},
		{"exclusive-sets", e.resolveExclusiveSets},
		{"bounds", e.resolveBounds},
		{"area-relations", e.resolveAreaRelations},
		{"cross-constraints", e.resolveCrossConstraints},
	}
	for _, strat := range strategies {
		h := strat.run(s, ds)
		if h == nil {
			continue
		}
		if e.trialValid(ctx, s, h) {
			e.fillDetails(h, len(ds))
			return done(h, stats)
		}
		e.logger.Debug("candidate hint failed trial validation",
			"strategy", strat.name, "technique", h.Technique)
	}

	// Shape-based techniques deliver ready-made hints; they are the weakest
	// rung and go through the same trial validation.
	for _, hd := range e.hinters {
		for _, h := range hd.FindHints(s) {
			h := h
			if e.trialValid(ctx, s, &h) {
				e.fillDetails(&h, len(ds))
				return done(&h, stats)
			}
			e.logger.Debug("candidate hint failed trial validation",
				"detector", hd.Name(), "technique", h.Technique)
		}
	}
	return done(nil, stats)
}

// trialValid applies the hint to a clone and checks every board invariant.
// This is the backstop: no individually correct technique should ever trip
// it, but a buggy one must never surface as an unsound move.
func (e *Engine) trialValid(ctx context.Context, s *domain.State, h *domain.Hint) bool {
	trial := s.Clone()
	h.Apply(trial)
	violations, err := e.validator.ValidateState(ctx, trial)
	if err != nil {
		e.logger.Warn("trial validation error", "err", err)
		return false
	}
	return len(violations) == 0
}

func (e *Engine) fillDetails(h *domain.Hint, surviving int) {
	if h.Details == "" {
		h.Details = fmt.Sprintf("%d deductions in play this cycle", surviving)
	}
}
