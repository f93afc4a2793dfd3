package targeting

import (
	"errors"

	"github.com/agencydash/analytics-dashboard-api/infrastructure/repository"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
)

var (
	ErrTeamRequired   = errors.New("team is required")
	ErrNegativeTarget = errors.New("target values must be non-negative")
)

// TargetService manages the per-team goal values the scorecard compares
// against. Zero is a valid value and means "no target set"; negative values
// are the only thing rejected.
type TargetService interface {
	ListTargets() (domain.TargetsByTeam, error)
	GetTargets(team string) (domain.TeamTargets, error)
	SetTargets(team string, targets domain.TeamTargets) error
	ClearTargets(team string) error
}

type Service struct {
	targetsRepo repository.TeamTargetsRepository
}

func NewService(targetsRepo repository.TeamTargetsRepository) TargetService {
	return &Service{
		targetsRepo: targetsRepo,
	}
}

func (s *Service) ListTargets() (domain.TargetsByTeam, error) {
	return s.targetsRepo.GetAll()
}

// GetTargets returns the stored targets for a team, or the all-zero target
// object when none are stored.
func (s *Service) GetTargets(team string) (domain.TeamTargets, error) {
	targets, err := s.targetsRepo.GetByTeam(team)
	if err != nil {
		return domain.TeamTargets{}, err
	}

	if targets == nil {
		return domain.TeamTargets{}, nil
	}

	return *targets, nil
}

func (s *Service) SetTargets(team string, targets domain.TeamTargets) error {
	if team == "" {
		return ErrTeamRequired
	}

	if !targets.IsValid() {
		return ErrNegativeTarget
	}

	return s.targetsRepo.SaveOrUpdate(team, targets)
}

func (s *Service) ClearTargets(team string) error {
	if team == "" {
		return ErrTeamRequired
	}

	return s.targetsRepo.Delete(team)
}
