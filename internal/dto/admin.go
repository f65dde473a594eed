package dto

// ── admin requests ──

// AdminTeamListRequest filters the review listing.
type AdminTeamListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=incomplete complete submitted selected waitlist rejected"`
	Region string `form:"region"`
	Theme  string `form:"theme"`
}

// DecisionRequest records the jury decision on a submitted dossier.
type DecisionRequest struct {
	Status     string `json:"status"      binding:"required,oneof=selected waitlist rejected"`
	ScoreBase  *int   `json:"score_base"  binding:"omitempty,min=0,max=100"`
	ScoreBonus *int   `json:"score_bonus" binding:"omitempty,min=0,max=100"`
	Comment    string `json:"comment"     binding:"omitempty,max=5000"`
}

// ── admin responses ──

// MailDraftResponse is a decision notification assembled for manual dispatch
// through the admin's own mail client. Nothing is sent server-side.
type MailDraftResponse struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// ── catalog responses ──

// CatalogResponse serves the fixed enumerations of the edition.
type CatalogResponse struct {
	Themes       []string                     `json:"themes"`
	Regions      []RegionResponse             `json:"regions"`
	TechSkills   []string                     `json:"tech_skills"`
	MetierSkills map[string][]string          `json:"metier_skills"`
	IdealTeams   map[string]IdealTeamResponse `json:"ideal_teams"`
}

// IdealTeamResponse is the recommended skill mix for one theme.
type IdealTeamResponse struct {
	Tech   []string `json:"tech"`
	Metier []string `json:"metier"`
}

// RegionResponse is one regional stage.
type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}
