package model

// Account roles.
const (
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
)

// Team roles.
const (
	TeamRoleLeader = "leader"
	TeamRoleMember = "member"
)

// Profile is a candidate profile, table profiles.
// CurrentTeamID and TeamRole are written exclusively by the team lifecycle
// service; they are non-null together or null together.
type Profile struct {
	ProfileID     string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"profile_id"`
	FirstName     string      `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName      string      `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Email         string      `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash  string      `gorm:"type:varchar(255);not null"                     json:"-"`
	Phone         string      `gorm:"type:varchar(30);not null;default:''"           json:"phone"`
	University    string      `gorm:"type:varchar(200);not null;default:''"          json:"university"`
	Level         string      `gorm:"type:varchar(50);not null;default:''"           json:"level"`
	Major         string      `gorm:"type:varchar(100);not null;default:''"          json:"major"`
	Gender        string      `gorm:"type:varchar(1);not null;default:'O'"           json:"gender"` // M | F | O
	TechSkills    StringArray `gorm:"type:text[];not null;default:'{}'"              json:"tech_skills"`
	MetierSkills  StringArray `gorm:"type:text[];not null;default:'{}'"              json:"metier_skills"`
	OtherSkills   string      `gorm:"type:text;not null;default:''"                  json:"other_skills"`
	Region        string      `gorm:"type:varchar(50);not null;default:''"           json:"region"`
	CVURL         string      `gorm:"column:cv_url;type:text;not null;default:''"    json:"cv_url"`
	IsComplete    bool        `gorm:"not null;default:false"                         json:"is_complete"`
	Role          string      `gorm:"type:varchar(20);not null;default:'candidate'"  json:"role"`
	CurrentTeamID *string     `gorm:"type:uuid"                                      json:"current_team_id,omitempty"`
	TeamRole      *string     `gorm:"type:varchar(20)"                               json:"team_role,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Profile) TableName() string { return "profiles" }

// FullName joins first and last name.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HasTeam reports whether the candidate is affiliated to a team.
func (p *Profile) HasTeam() bool {
	return p.CurrentTeamID != nil && *p.CurrentTeamID != ""
}

// ComputeCompleteness derives the is_complete flag from the profile content.
// The flag is server-derived, never trusted from the client.
func (p *Profile) ComputeCompleteness() bool {
	return p.FirstName != "" &&
		p.LastName != "" &&
		p.Phone != "" &&
		p.University != "" &&
		p.Level != "" &&
		len(p.TechSkills) > 0
}
