package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
)

// TeamListFilters narrows team listings.
type TeamListFilters struct {
	Region   string
	Theme    string
	Skill    string             // matches requested_skills
	Status   model.TeamStatus   // exact status
	OpenOnly bool               // excludes locked statuses
}

// TeamRepository handles team data access.
type TeamRepository interface {
	// CreateWithLeader creates the team, its leader membership row and the
	// founder's affiliation in one transaction.
	CreateWithLeader(ctx context.Context, team *model.Team, founder *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	UpdateStatus(ctx context.Context, teamID string, status model.TeamStatus) error
	List(ctx context.Context, filters *TeamListFilters, offset, limit int) ([]model.Team, int64, error)
	ListAll(ctx context.Context) ([]model.Team, error)
}

type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepo creates the GORM implementation.
func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) CreateWithLeader(ctx context.Context, team *model.Team, founder *model.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := &model.TeamMember{
			TeamID:    team.TeamID,
			ProfileID: founder.ProfileID,
			Role:      model.TeamRoleLeader,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		leaderRole := model.TeamRoleLeader
		return tx.Model(&model.Profile{}).
			Where("profile_id = ?", founder.ProfileID).
			Updates(map[string]interface{}{
				"current_team_id": team.TeamID,
				"team_role":       leaderRole,
			}).Error
	})
}

func (r *teamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.Profile").
		Where("team_id = ?", id).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) Update(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Omit("Members").Save(team).Error
}

func (r *teamRepo) UpdateStatus(ctx context.Context, teamID string, status model.TeamStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("team_id = ?", teamID).
		Update("status", status).Error
}

func (r *teamRepo) List(ctx context.Context, filters *TeamListFilters, offset, limit int) ([]model.Team, int64, error) {
	var teams []model.Team
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Team{})

	if filters != nil {
		if filters.Region != "" {
			db = db.Where("preferred_region = ?", filters.Region)
		}
		if filters.Theme != "" {
			db = db.Where("theme = ?", filters.Theme)
		}
		if filters.Skill != "" {
			db = db.Where("? = ANY(requested_skills)", filters.Skill)
		}
		if filters.Status != "" {
			db = db.Where("status = ?", filters.Status)
		}
		if filters.OpenOnly {
			db = db.Where("status IN ?", []model.TeamStatus{
				model.TeamStatusIncomplete,
				model.TeamStatusComplete,
			})
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Members").Preload("Members.Profile").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

func (r *teamRepo) ListAll(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.Profile").
		Order("created_at").
		Find(&teams).Error
	return teams, err
}
