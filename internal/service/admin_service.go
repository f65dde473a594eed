package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// ── admin module errors ──

var (
	ErrNotSubmitted    = errors.New("decision requires a submitted dossier")
	ErrInvalidDecision = errors.New("unknown decision status")
)

// AdminService handles jury-side review and decision recording.
type AdminService interface {
	List(ctx context.Context, req *dto.AdminTeamListRequest) ([]dto.TeamResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.TeamResponse, error)
	Decide(ctx context.Context, teamID string, req *dto.DecisionRequest) (*dto.TeamResponse, error)
}

type adminService struct {
	rules  *config.RulesConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates the AdminService.
func NewAdminService(rules *config.RulesConfig, repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{rules: rules, repo: repo, logger: logger}
}

func (s *adminService) List(ctx context.Context, req *dto.AdminTeamListRequest) ([]dto.TeamResponse, int64, error) {
	filters := &repository.TeamListFilters{
		Region: req.Region,
		Theme:  req.Theme,
		Status: model.TeamStatus(req.Status),
	}

	teams, total, err := s.repo.Team.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("admin list teams failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, *toTeamResponse(&teams[i], s.rules, true))
	}

	return result, total, nil
}

func (s *adminService) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return toTeamResponse(team, s.rules, true), nil
}

// Decide records the jury decision on a submitted dossier.
// The total score is derived from base and bonus, never client-supplied.
func (s *adminService) Decide(ctx context.Context, teamID string, req *dto.DecisionRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("lookup team failed", zap.String("id", teamID), zap.Error(err))
		return nil, err
	}

	if team.Status != model.TeamStatusSubmitted {
		return nil, ErrNotSubmitted
	}

	status, ok := model.DecisionStatus(req.Status)
	if !ok {
		return nil, ErrInvalidDecision
	}

	now := time.Now()
	team.Status = status
	team.ScoreBase = req.ScoreBase
	team.ScoreBonus = req.ScoreBonus
	team.DecisionComment = req.Comment
	team.DecidedAt = &now

	if req.ScoreBase != nil || req.ScoreBonus != nil {
		total := 0
		if req.ScoreBase != nil {
			total += *req.ScoreBase
		}
		if req.ScoreBonus != nil {
			total += *req.ScoreBonus
		}
		team.ScoreTotal = &total
	} else {
		team.ScoreTotal = nil
	}

	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("record decision failed", zap.String("id", teamID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("decision recorded",
		zap.String("team_id", teamID),
		zap.String("decision", string(status)),
	)

	decided, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return toTeamResponse(decided, s.rules, true), nil
}
