package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// ── dossier module errors ──

var (
	ErrRosterIncomplete = errors.New("roster is not full, dossier cannot be submitted")
	ErrAlreadySubmitted = errors.New("dossier already submitted")
)

// ValidationError aggregates every failing field of a dossier submission.
// All fields are checked before returning so the caller sees the complete
// list, not just the first failure.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dossier validation failed on %d field(s)", len(e.Fields))
}

// DossierService handles final dossier submission.
type DossierService interface {
	Submit(ctx context.Context, teamID, callerID string, req *dto.SubmitDossierRequest) (*dto.TeamResponse, error)
}

type dossierService struct {
	rules  *config.RulesConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDossierService creates the DossierService.
func NewDossierService(rules *config.RulesConfig, repo *repository.Repository, logger *zap.Logger) DossierService {
	return &dossierService{rules: rules, repo: repo, logger: logger}
}

// Submit validates and records the dossier, moving the team to submitted.
//
// Precondition failures (wrong caller, wrong state, short roster) abort
// before validation; field failures abort before any write. The team record
// is only mutated once every check has passed.
func (s *dossierService) Submit(ctx context.Context, teamID, callerID string, req *dto.SubmitDossierRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("lookup team failed", zap.String("id", teamID), zap.Error(err))
		return nil, err
	}

	if team.LeaderID != callerID {
		return nil, ErrNotLeader
	}
	if team.Status.Locked() {
		return nil, ErrAlreadySubmitted
	}

	// authoritative roster count, not the preloaded slice
	count, err := s.repo.TeamMember.CountByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if int(count) < s.rules.TeamSize {
		return nil, ErrRosterIncomplete
	}

	if verr := s.validateFields(team, req); verr != nil {
		return nil, verr
	}

	now := time.Now()
	team.Description = req.Description
	team.MotivationURL = req.MotivationURL
	team.PitchVideoURL = req.PitchVideoURL
	team.PocURL = req.PocURL
	team.SecondaryTheme = req.SecondaryTheme
	team.SecondaryThemeDescription = req.SecondaryThemeDescription
	team.Status = model.TeamStatusSubmitted
	team.SubmittedAt = &now

	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("submit dossier failed", zap.String("id", teamID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("dossier submitted",
		zap.String("team_id", teamID),
		zap.String("theme", team.Theme),
	)

	submitted, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return toTeamResponse(submitted, s.rules, true), nil
}

// validateFields collects every field-level failure of the submission.
func (s *dossierService) validateFields(team *model.Team, req *dto.SubmitDossierRequest) *ValidationError {
	var fields []dto.FieldError

	if utf8.RuneCountInString(req.Description) < s.rules.MinDescriptionLen {
		fields = append(fields, dto.FieldError{
			Field:  "description",
			Reason: fmt.Sprintf("must be at least %d characters", s.rules.MinDescriptionLen),
		})
	}

	if !absoluteHTTPURL(req.MotivationURL) {
		fields = append(fields, dto.FieldError{
			Field:  "motivation_url",
			Reason: "must be an absolute http(s) URL",
		})
	}
	if !absoluteHTTPURL(req.PitchVideoURL) {
		fields = append(fields, dto.FieldError{
			Field:  "pitch_video_url",
			Reason: "must be an absolute http(s) URL",
		})
	}
	if req.PocURL != "" && !absoluteHTTPURL(req.PocURL) {
		fields = append(fields, dto.FieldError{
			Field:  "poc_url",
			Reason: "must be an absolute http(s) URL when provided",
		})
	}

	if req.SecondaryTheme != nil {
		if !model.ValidTheme(*req.SecondaryTheme) {
			fields = append(fields, dto.FieldError{
				Field:  "secondary_theme",
				Reason: "unknown theme",
			})
		} else if *req.SecondaryTheme == team.Theme {
			fields = append(fields, dto.FieldError{
				Field:  "secondary_theme",
				Reason: "must differ from the primary theme",
			})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// absoluteHTTPURL reports whether s parses as an absolute URL with an
// http or https scheme and a host.
func absoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
