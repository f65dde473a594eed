package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Profile     ProfileRepository
	Team        TeamRepository
	TeamMember  TeamMemberRepository
	JoinRequest JoinRequestRepository
}

// NewRepository builds the aggregate over a gorm connection.
// Multi-row composites (team creation, request acceptance) run inside
// db.Transaction within the repo implementations, so services stay free of
// transaction plumbing and mockable.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Profile:     NewProfileRepo(db),
		Team:        NewTeamRepo(db),
		TeamMember:  NewTeamMemberRepo(db),
		JoinRequest: NewJoinRequestRepo(db),
	}
}
