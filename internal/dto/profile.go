package dto

// ── profile requests ──

// UpdateProfileRequest carries owner-editable fields; nil leaves a field untouched.
// Team-affiliation fields are absent on purpose: only the team lifecycle
// service writes those.
type UpdateProfileRequest struct {
	FirstName    *string   `json:"first_name"    binding:"omitempty,min=2,max=100"`
	LastName     *string   `json:"last_name"     binding:"omitempty,min=2,max=100"`
	Phone        *string   `json:"phone"         binding:"omitempty,max=30"`
	University   *string   `json:"university"    binding:"omitempty,max=200"`
	Level        *string   `json:"level"         binding:"omitempty,max=50"`
	Major        *string   `json:"major"         binding:"omitempty,max=100"`
	Gender       *string   `json:"gender"        binding:"omitempty,oneof=M F O"`
	TechSkills   *[]string `json:"tech_skills"   binding:"omitempty,max=20"`
	MetierSkills *[]string `json:"metier_skills" binding:"omitempty,max=20"`
	OtherSkills  *string   `json:"other_skills"  binding:"omitempty,max=2000"`
	Region       *string   `json:"region"        binding:"omitempty,max=50"`
	CVURL        *string   `json:"cv_url"        binding:"omitempty,max=2000"`
}

// ── profile responses ──

// ProfileResponse is the candidate profile as served to its owner.
type ProfileResponse struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	University    string   `json:"university,omitempty"`
	Level         string   `json:"level,omitempty"`
	Major         string   `json:"major,omitempty"`
	Gender        string   `json:"gender"`
	TechSkills    []string `json:"tech_skills"`
	MetierSkills  []string `json:"metier_skills"`
	OtherSkills   string   `json:"other_skills,omitempty"`
	Region        string   `json:"region,omitempty"`
	CVURL         string   `json:"cv_url,omitempty"`
	IsComplete    bool     `json:"is_complete"`
	Role          string   `json:"role"`
	CurrentTeamID string   `json:"current_team_id,omitempty"`
	TeamRole      string   `json:"team_role,omitempty"`
}

// MemberResponse is a member summary inside a team snapshot.
type MemberResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Gender       string   `json:"gender"`
	Role         string   `json:"role"`
	TechSkills   []string `json:"tech_skills"`
	MetierSkills []string `json:"metier_skills"`
}
