package usecase

import (
	"context"
	"errors"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, s *domain.State) (*domain.Hint, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, s)
}

func (u *Service) ValidateState(ctx context.Context, s *domain.State) ([]domain.Violation, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.ValidateState(ctx, s)
}

func (u *Service) ValidateRegions(ctx context.Context, def *domain.PuzzleDef) ([]domain.Issue, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.ValidateRegions(ctx, def)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
