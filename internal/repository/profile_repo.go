package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
)

// ProfileRepository handles candidate profile data access.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	// SetTeamAffiliation writes the affiliation pair; both nil clears it.
	SetTeamAffiliation(ctx context.Context, profileID string, teamID, teamRole *string) error
	List(ctx context.Context, offset, limit int) ([]model.Profile, int64, error)
	ListAll(ctx context.Context) ([]model.Profile, error)
}

type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepo creates the GORM implementation.
func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepo) SetTeamAffiliation(ctx context.Context, profileID string, teamID, teamRole *string) error {
	return r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("profile_id = ?", profileID).
		Updates(map[string]interface{}{
			"current_team_id": teamID,
			"team_role":       teamRole,
		}).Error
}

func (r *profileRepo) List(ctx context.Context, offset, limit int) ([]model.Profile, int64, error) {
	var profiles []model.Profile
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Profile{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *profileRepo) ListAll(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&profiles).Error
	return profiles, err
}
