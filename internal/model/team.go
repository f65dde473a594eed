package model

import "time"

// TeamStatus is the closed status enumeration of a team's dossier.
// Progression: incomplete → complete → submitted → selected|waitlist|rejected.
// External representations are validated through ParseTeamStatus at the I/O
// boundary; raw strings are never written to the status column elsewhere.
type TeamStatus string

const (
	TeamStatusIncomplete TeamStatus = "incomplete"
	TeamStatusComplete   TeamStatus = "complete"
	TeamStatusSubmitted  TeamStatus = "submitted"
	TeamStatusSelected   TeamStatus = "selected"
	TeamStatusWaitlist   TeamStatus = "waitlist"
	TeamStatusRejected   TeamStatus = "rejected"
)

// ParseTeamStatus validates an external status representation.
func ParseTeamStatus(s string) (TeamStatus, bool) {
	switch TeamStatus(s) {
	case TeamStatusIncomplete, TeamStatusComplete, TeamStatusSubmitted,
		TeamStatusSelected, TeamStatusWaitlist, TeamStatusRejected:
		return TeamStatus(s), true
	}
	return "", false
}

// Locked reports whether roster and content edits are forbidden.
// Every status from submitted onward is locked; waitlist is a terminal
// decision too and equally locks the record.
func (s TeamStatus) Locked() bool {
	switch s {
	case TeamStatusSubmitted, TeamStatusSelected, TeamStatusWaitlist, TeamStatusRejected:
		return true
	}
	return false
}

// Decided reports whether an administrative decision has been recorded.
func (s TeamStatus) Decided() bool {
	switch s {
	case TeamStatusSelected, TeamStatusWaitlist, TeamStatusRejected:
		return true
	}
	return false
}

// DecisionStatus validates an admin decision target.
func DecisionStatus(s string) (TeamStatus, bool) {
	switch TeamStatus(s) {
	case TeamStatusSelected, TeamStatusWaitlist, TeamStatusRejected:
		return TeamStatus(s), true
	}
	return "", false
}

// RosterStatus derives the pre-submission status from a member count.
// Idempotent by construction: it is the single place incomplete/complete is
// computed.
func RosterStatus(memberCount, teamSize int) TeamStatus {
	if memberCount >= teamSize {
		return TeamStatusComplete
	}
	return TeamStatusIncomplete
}

// Team maps to table teams.
type Team struct {
	TeamID                    string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name                      string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Description               string      `gorm:"type:text;not null;default:''"                  json:"description"`
	LeaderID                  string      `gorm:"type:uuid;not null"                             json:"leader_id"`
	Theme                     string      `gorm:"type:varchar(100);not null"                     json:"theme"`
	SecondaryTheme            *string     `gorm:"type:varchar(100)"                              json:"secondary_theme,omitempty"`
	SecondaryThemeDescription string      `gorm:"type:text;not null;default:''"                  json:"secondary_theme_description,omitempty"`
	PreferredRegion           string      `gorm:"type:varchar(50);not null"                      json:"preferred_region"`
	RequestedSkills           StringArray `gorm:"type:text[];not null;default:'{}'"              json:"requested_skills"`
	MotivationURL             string      `gorm:"type:text;not null;default:''"                  json:"motivation_url"`
	PitchVideoURL             string      `gorm:"type:text;not null;default:''"                  json:"pitch_video_url"`
	PocURL                    string      `gorm:"column:poc_url;type:text;not null;default:''"   json:"poc_url"`
	Status                    TeamStatus  `gorm:"type:varchar(20);not null;default:'incomplete'" json:"status"`
	ScoreBase                 *int        `json:"score_base,omitempty"`
	ScoreBonus                *int        `json:"score_bonus,omitempty"`
	ScoreTotal                *int        `json:"score_total,omitempty"`
	DecisionComment           string      `gorm:"type:text;not null;default:''"                  json:"decision_comment,omitempty"`
	SubmittedAt               *time.Time  `json:"submitted_at,omitempty"`
	DecidedAt                 *time.Time  `json:"decided_at,omitempty"`
	BaseModel

	Members []TeamMember `gorm:"foreignKey:TeamID;references:TeamID" json:"members,omitempty"`
}

// TableName sets the table name.
func (Team) TableName() string { return "teams" }
