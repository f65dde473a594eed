package dto

// ── team requests ──

// CreateTeamRequest founds a team; the caller becomes sole member and leader.
type CreateTeamRequest struct {
	Name            string   `json:"name"             binding:"required,min=2,max=100"`
	Description     string   `json:"description"      binding:"omitempty,max=5000"`
	Theme           string   `json:"theme"            binding:"required"`
	PreferredRegion string   `json:"preferred_region" binding:"required"`
	RequestedSkills []string `json:"requested_skills" binding:"omitempty,max=20"`
}

// TeamListRequest filters open-team discovery.
type TeamListRequest struct {
	PaginationRequest
	Region string `form:"region"`
	Theme  string `form:"theme"`
	Skill  string `form:"skill"`
}

// ApplyRequest is a candidate's application to a team.
type ApplyRequest struct {
	Message string `json:"message" binding:"omitempty,max=2000"`
}

// SubmitDossierRequest finalizes the dossier for jury evaluation.
// Field-level checks beyond the binding tags (absolute URLs, description
// length, secondary theme) are performed by the dossier service so every
// failure is reported per field.
type SubmitDossierRequest struct {
	Description               string  `json:"description"                 binding:"required"`
	MotivationURL             string  `json:"motivation_url"              binding:"required"`
	PitchVideoURL             string  `json:"pitch_video_url"             binding:"required"`
	PocURL                    string  `json:"poc_url"                     binding:"omitempty,max=2000"`
	SecondaryTheme            *string `json:"secondary_theme"             binding:"omitempty"`
	SecondaryThemeDescription string  `json:"secondary_theme_description" binding:"omitempty,max=5000"`
}

// ── team responses ──

// EligibilityReport is the compliance report of the eligibility evaluator.
// Total over any team snapshot, including partially-filled ones.
type EligibilityReport struct {
	SizeOK             bool `json:"size_ok"`
	MixityOK           bool `json:"mixity_ok"`
	DiversityOK        bool `json:"diversity_ok"`
	CoreSkillOK        bool `json:"core_skill_ok"`
	OverallOK          bool `json:"overall_ok"`
	MemberCount        int  `json:"member_count"`
	MixityCount        int  `json:"mixity_count"`
	DistinctTechSkills int  `json:"distinct_tech_skills"`
}

// TeamResponse is a team snapshot with its roster and compliance report.
type TeamResponse struct {
	ID                        string             `json:"id"`
	Name                      string             `json:"name"`
	Description               string             `json:"description,omitempty"`
	LeaderID                  string             `json:"leader_id"`
	Theme                     string             `json:"theme"`
	SecondaryTheme            string             `json:"secondary_theme,omitempty"`
	SecondaryThemeDescription string             `json:"secondary_theme_description,omitempty"`
	PreferredRegion           string             `json:"preferred_region"`
	RequestedSkills           []string           `json:"requested_skills"`
	MotivationURL             string             `json:"motivation_url,omitempty"`
	PitchVideoURL             string             `json:"pitch_video_url,omitempty"`
	PocURL                    string             `json:"poc_url,omitempty"`
	Status                    string             `json:"status"`
	ScoreBase                 *int               `json:"score_base,omitempty"`
	ScoreBonus                *int               `json:"score_bonus,omitempty"`
	ScoreTotal                *int               `json:"score_total,omitempty"`
	DecisionComment           string             `json:"decision_comment,omitempty"`
	Members                   []MemberResponse   `json:"members"`
	Eligibility               *EligibilityReport `json:"eligibility,omitempty"`
	CreatedAt                 string             `json:"created_at"`
}

// JoinRequestResponse is a join request as seen by the team leader.
type JoinRequestResponse struct {
	ID        string           `json:"id"`
	TeamID    string           `json:"team_id"`
	Status    string           `json:"status"`
	Message   string           `json:"message,omitempty"`
	Candidate *MemberResponse  `json:"candidate,omitempty"`
	CreatedAt string           `json:"created_at"`
}

// AcceptResponse reports the outcome of accepting a join request, including
// the cascade size when the acceptance filled the team.
type AcceptResponse struct {
	Request         JoinRequestResponse `json:"request"`
	TeamStatus      string              `json:"team_status"`
	MemberCount     int                 `json:"member_count"`
	CascadeRejected int64               `json:"cascade_rejected"`
}
