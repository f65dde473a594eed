package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// ── profile module errors ──

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRegion   = errors.New("unknown region")
)

// ProfileService handles candidate profile reads and owner edits.
type ProfileService interface {
	GetByID(ctx context.Context, id string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfileService creates the ProfileService.
func NewProfileService(repo *repository.Repository, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

func (s *profileService) GetByID(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("lookup profile failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) Update(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("lookup profile failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.University != nil {
		profile.University = *req.University
	}
	if req.Level != nil {
		profile.Level = *req.Level
	}
	if req.Major != nil {
		profile.Major = *req.Major
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.TechSkills != nil {
		profile.TechSkills = dedupe(*req.TechSkills)
	}
	if req.MetierSkills != nil {
		profile.MetierSkills = dedupe(*req.MetierSkills)
	}
	if req.OtherSkills != nil {
		profile.OtherSkills = *req.OtherSkills
	}
	if req.Region != nil {
		if *req.Region != "" && !model.ValidRegion(*req.Region) {
			return nil, ErrInvalidRegion
		}
		profile.Region = *req.Region
	}
	if req.CVURL != nil {
		profile.CVURL = *req.CVURL
	}

	// completeness is derived, never client-supplied
	profile.IsComplete = profile.ComputeCompleteness()

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.logger.Error("update profile failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Profile.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toProfileResponse(updated), nil
}

// ── helpers ──

// dedupe keeps first occurrences, preserving order. Skill sets hold no
// duplicate entries.
func dedupe(in []string) model.StringArray {
	seen := make(map[string]struct{}, len(in))
	out := make(model.StringArray, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// toProfileResponse maps a profile model to its response shape.
func toProfileResponse(p *model.Profile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:           p.ProfileID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		University:   p.University,
		Level:        p.Level,
		Major:        p.Major,
		Gender:       p.Gender,
		TechSkills:   p.TechSkills,
		MetierSkills: p.MetierSkills,
		OtherSkills:  p.OtherSkills,
		Region:       p.Region,
		CVURL:        p.CVURL,
		IsComplete:   p.IsComplete,
		Role:         p.Role,
	}
	if resp.TechSkills == nil {
		resp.TechSkills = []string{}
	}
	if resp.MetierSkills == nil {
		resp.MetierSkills = []string{}
	}
	if p.CurrentTeamID != nil {
		resp.CurrentTeamID = *p.CurrentTeamID
	}
	if p.TeamRole != nil {
		resp.TeamRole = *p.TeamRole
	}
	return resp
}
