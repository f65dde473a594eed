package model

// TeamMember is a membership row, table team_members.
// Uniqueness of profile_id (one team per candidate) and of the
// (team_id, profile_id) pair is enforced by the store; the team service
// checks the same invariants before writing.
type TeamMember struct {
	TeamMemberID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_member_id"`
	TeamID       string `gorm:"type:uuid;not null"                             json:"team_id"`
	ProfileID    string `gorm:"type:uuid;not null"                             json:"profile_id"`
	Role         string `gorm:"type:varchar(20);not null;default:'member'"     json:"role"` // leader | member
	BaseModel

	Profile *Profile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName sets the table name.
func (TeamMember) TableName() string { return "team_members" }
