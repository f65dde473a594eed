package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
)

// TeamMemberRepository handles membership data access.
// CountByTeam is the authoritative roster count the accept flow re-reads
// immediately before its conditional write.
type TeamMemberRepository interface {
	CountByTeam(ctx context.Context, teamID string) (int64, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.TeamMember, error)
	GetByProfile(ctx context.Context, profileID string) (*model.TeamMember, error)
}

type teamMemberRepo struct {
	db *gorm.DB
}

// NewTeamMemberRepo creates the GORM implementation.
func NewTeamMemberRepo(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepo{db: db}
}

func (r *teamMemberRepo) CountByTeam(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

func (r *teamMemberRepo) ListByTeam(ctx context.Context, teamID string) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("team_id = ?", teamID).
		Order("created_at").
		Find(&members).Error
	return members, err
}

func (r *teamMemberRepo) GetByProfile(ctx context.Context, profileID string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}
