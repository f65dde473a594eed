package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
)

// JoinRequestRepository handles join-request data access.
type JoinRequestRepository interface {
	Create(ctx context.Context, req *model.JoinRequest) error
	GetByID(ctx context.Context, id string) (*model.JoinRequest, error)
	HasPending(ctx context.Context, teamID, profileID string) (bool, error)
	ListByTeam(ctx context.Context, teamID string, status model.JoinRequestStatus) ([]model.JoinRequest, error)
	// Accept inserts the membership row, marks the request accepted and sets
	// the candidate's affiliation in one transaction.
	Accept(ctx context.Context, req *model.JoinRequest) error
	UpdateStatus(ctx context.Context, requestID string, status model.JoinRequestStatus) error
	// RejectAllPending rejects every pending request of a team except the
	// given one (pass "" to reject all). Returns the number of rows touched.
	RejectAllPending(ctx context.Context, teamID, exceptRequestID string) (int64, error)
	// ListStalePending returns pending requests whose team can no longer
	// admit anyone: locked status or full roster.
	ListStalePending(ctx context.Context, teamSize int) ([]model.JoinRequest, error)
}

type joinRequestRepo struct {
	db *gorm.DB
}

// NewJoinRequestRepo creates the GORM implementation.
func NewJoinRequestRepo(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepo{db: db}
}

func (r *joinRequestRepo) Create(ctx context.Context, req *model.JoinRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *joinRequestRepo) GetByID(ctx context.Context, id string) (*model.JoinRequest, error) {
	var req model.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Profile").
		Where("join_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *joinRequestRepo) HasPending(ctx context.Context, teamID, profileID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("team_id = ? AND profile_id = ? AND status = ?", teamID, profileID, model.JoinRequestPending).
		Count(&count).Error
	return count > 0, err
}

func (r *joinRequestRepo) ListByTeam(ctx context.Context, teamID string, status model.JoinRequestStatus) ([]model.JoinRequest, error) {
	db := r.db.WithContext(ctx).
		Preload("Profile").
		Where("team_id = ?", teamID)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var reqs []model.JoinRequest
	err := db.Order("created_at").Find(&reqs).Error
	return reqs, err
}

func (r *joinRequestRepo) Accept(ctx context.Context, req *model.JoinRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member := &model.TeamMember{
			TeamID:    req.TeamID,
			ProfileID: req.ProfileID,
			Role:      model.TeamRoleMember,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.JoinRequest{}).
			Where("join_request_id = ?", req.JoinRequestID).
			Update("status", model.JoinRequestAccepted).Error; err != nil {
			return err
		}

		memberRole := model.TeamRoleMember
		return tx.Model(&model.Profile{}).
			Where("profile_id = ?", req.ProfileID).
			Updates(map[string]interface{}{
				"current_team_id": req.TeamID,
				"team_role":       memberRole,
			}).Error
	})
}

func (r *joinRequestRepo) UpdateStatus(ctx context.Context, requestID string, status model.JoinRequestStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("join_request_id = ?", requestID).
		Update("status", status).Error
}

func (r *joinRequestRepo) RejectAllPending(ctx context.Context, teamID, exceptRequestID string) (int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("team_id = ? AND status = ?", teamID, model.JoinRequestPending)
	if exceptRequestID != "" {
		db = db.Where("join_request_id <> ?", exceptRequestID)
	}

	result := db.Update("status", model.JoinRequestRejected)
	return result.RowsAffected, result.Error
}

func (r *joinRequestRepo) ListStalePending(ctx context.Context, teamSize int) ([]model.JoinRequest, error) {
	lockedStatuses := []model.TeamStatus{
		model.TeamStatusSubmitted,
		model.TeamStatusSelected,
		model.TeamStatusWaitlist,
		model.TeamStatusRejected,
	}

	var reqs []model.JoinRequest
	err := r.db.WithContext(ctx).
		Joins("JOIN teams ON teams.team_id = join_requests.team_id").
		Where("join_requests.status = ?", model.JoinRequestPending).
		Where(
			"teams.status IN ? OR (SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = join_requests.team_id) >= ?",
			lockedStatuses, teamSize,
		).
		Find(&reqs).Error
	return reqs, err
}
