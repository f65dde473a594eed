package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// ── team module errors ──

var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrRequestNotFound      = errors.New("join request not found")
	ErrDuplicateAffiliation = errors.New("candidate already belongs to a team")
	ErrAlreadyAffiliated    = errors.New("candidate already belongs to a team")
	ErrAlreadyApplied       = errors.New("a pending request for this team already exists")
	ErrTeamFull             = errors.New("team has reached capacity")
	ErrTeamLocked           = errors.New("team is locked, no further changes allowed")
	ErrNotLeader            = errors.New("only the team leader may perform this action")
	ErrRequestNotPending    = errors.New("join request is no longer pending")
	ErrInvalidTheme         = errors.New("unknown theme")
)

// TeamService covers the team lifecycle: creation, discovery and the
// join-request flow.
//
// Every roster mutation funnels through this service; it is the single
// choke point where the state machine is enforced. After every write the
// affected aggregate is re-read from the store before a response is built;
// the store, not the in-memory view, is authoritative.
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest, founderID string) (*dto.TeamResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeamResponse, error)
	List(ctx context.Context, req *dto.TeamListRequest) ([]dto.TeamResponse, int64, error)
	Apply(ctx context.Context, teamID, candidateID string, req *dto.ApplyRequest) (*dto.JoinRequestResponse, error)
	ListRequests(ctx context.Context, teamID, callerID string) ([]dto.JoinRequestResponse, error)
	Accept(ctx context.Context, requestID, callerID string) (*dto.AcceptResponse, error)
	Reject(ctx context.Context, requestID, callerID string) (*dto.JoinRequestResponse, error)
}

type teamService struct {
	rules  *config.RulesConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService creates the TeamService.
func NewTeamService(rules *config.RulesConfig, repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{rules: rules, repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest, founderID string) (*dto.TeamResponse, error) {
	founder, err := s.repo.Profile.GetByID(ctx, founderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("lookup founder failed", zap.Error(err))
		return nil, err
	}

	if founder.HasTeam() {
		return nil, ErrDuplicateAffiliation
	}

	if !model.ValidTheme(req.Theme) {
		return nil, ErrInvalidTheme
	}
	if !model.ValidRegion(req.PreferredRegion) {
		return nil, ErrInvalidRegion
	}

	team := &model.Team{
		Name:            req.Name,
		Description:     req.Description,
		LeaderID:        founder.ProfileID,
		Theme:           req.Theme,
		PreferredRegion: req.PreferredRegion,
		RequestedSkills: dedupe(req.RequestedSkills),
		Status:          model.TeamStatusIncomplete,
	}

	if err := s.repo.Team.CreateWithLeader(ctx, team, founder); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// membership uniqueness tripped: the founder joined a team between
			// the check and the write
			return nil, ErrDuplicateAffiliation
		}
		s.logger.Error("create team failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Team.GetByID(ctx, team.TeamID)
	if err != nil {
		return nil, err
	}

	return toTeamResponse(created, s.rules, true), nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *teamService) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("lookup team failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toTeamResponse(team, s.rules, true), nil
}

func (s *teamService) List(ctx context.Context, req *dto.TeamListRequest) ([]dto.TeamResponse, int64, error) {
	filters := &repository.TeamListFilters{
		Region:   req.Region,
		Theme:    req.Theme,
		Skill:    req.Skill,
		OpenOnly: true,
	}

	teams, total, err := s.repo.Team.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list teams failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, *toTeamResponse(&teams[i], s.rules, false))
	}

	return result, total, nil
}

// ────────────────────── Apply ──────────────────────

func (s *teamService) Apply(ctx context.Context, teamID, candidateID string, req *dto.ApplyRequest) (*dto.JoinRequestResponse, error) {
	candidate, err := s.repo.Profile.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if candidate.HasTeam() {
		return nil, ErrAlreadyAffiliated
	}

	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if team.Status.Locked() {
		return nil, ErrTeamLocked
	}

	count, err := s.repo.TeamMember.CountByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if int(count) >= s.rules.TeamSize {
		return nil, ErrTeamFull
	}

	pending, err := s.repo.JoinRequest.HasPending(ctx, teamID, candidateID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrAlreadyApplied
	}

	request := &model.JoinRequest{
		TeamID:    teamID,
		ProfileID: candidateID,
		Status:    model.JoinRequestPending,
		Message:   req.Message,
	}

	if err := s.repo.JoinRequest.Create(ctx, request); err != nil {
		// the partial unique index is the backstop for a concurrent duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		s.logger.Error("create join request failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.JoinRequest.GetByID(ctx, request.JoinRequestID)
	if err != nil {
		return nil, err
	}

	return toJoinRequestResponse(created), nil
}

// ────────────────────── ListRequests ──────────────────────

func (s *teamService) ListRequests(ctx context.Context, teamID, callerID string) ([]dto.JoinRequestResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if team.LeaderID != callerID {
		return nil, ErrNotLeader
	}

	requests, err := s.repo.JoinRequest.ListByTeam(ctx, teamID, model.JoinRequestPending)
	if err != nil {
		s.logger.Error("list join requests failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.JoinRequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toJoinRequestResponse(&requests[i]))
	}

	return result, nil
}

// ────────────────────── Accept ──────────────────────

// Accept adds the requesting candidate to the roster.
//
// The member count is re-read from the store immediately before the
// conditional write: a concurrent application or acceptance may have changed
// it since the leader's view was rendered. On overshoot the operation aborts
// with ErrTeamFull and, as a corrective action, every remaining pending
// request of the team is rejected.
func (s *teamService) Accept(ctx context.Context, requestID, callerID string) (*dto.AcceptResponse, error) {
	request, err := s.repo.JoinRequest.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	team := request.Team
	if team == nil {
		team, err = s.repo.Team.GetByID(ctx, request.TeamID)
		if err != nil {
			return nil, err
		}
	}

	if team.LeaderID != callerID {
		return nil, ErrNotLeader
	}
	if request.Status != model.JoinRequestPending {
		return nil, ErrRequestNotPending
	}
	if team.Status.Locked() {
		return nil, ErrTeamLocked
	}

	// the candidate may have joined another team since applying
	candidate, err := s.repo.Profile.GetByID(ctx, request.ProfileID)
	if err != nil {
		return nil, err
	}
	if candidate.HasTeam() {
		if err := s.repo.JoinRequest.UpdateStatus(ctx, requestID, model.JoinRequestRejected); err != nil {
			s.logger.Error("reject stale join request failed", zap.Error(err))
		}
		return nil, ErrAlreadyAffiliated
	}

	// authoritative re-count right before the conditional write
	count, err := s.repo.TeamMember.CountByTeam(ctx, request.TeamID)
	if err != nil {
		return nil, err
	}
	if int(count) >= s.rules.TeamSize {
		// capacity reached behind our back: abort and clear the queue
		if _, err := s.repo.JoinRequest.RejectAllPending(ctx, request.TeamID, ""); err != nil {
			s.logger.Error("cascade reject after overshoot failed", zap.Error(err))
		}
		s.logger.Warn("accept aborted, team already full",
			zap.String("team_id", request.TeamID),
			zap.String("request_id", requestID),
		)
		return nil, ErrTeamFull
	}

	if err := s.repo.JoinRequest.Accept(ctx, request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// membership uniqueness tripped concurrently
			return nil, ErrAlreadyAffiliated
		}
		s.logger.Error("accept join request failed", zap.Error(err))
		return nil, err
	}

	// re-read the authoritative count, then re-derive the roster status
	newCount, err := s.repo.TeamMember.CountByTeam(ctx, request.TeamID)
	if err != nil {
		return nil, err
	}

	var cascaded int64
	if int(newCount) >= s.rules.TeamSize {
		// roster is full: no more capacity, clear every other pending request
		cascaded, err = s.repo.JoinRequest.RejectAllPending(ctx, request.TeamID, requestID)
		if err != nil {
			s.logger.Error("cascade reject on completion failed", zap.Error(err))
		}
	}

	newStatus := model.RosterStatus(int(newCount), s.rules.TeamSize)
	if newStatus != team.Status {
		if err := s.repo.Team.UpdateStatus(ctx, request.TeamID, newStatus); err != nil {
			s.logger.Error("update team status failed", zap.Error(err))
			return nil, err
		}
	}

	accepted, err := s.repo.JoinRequest.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return &dto.AcceptResponse{
		Request:         *toJoinRequestResponse(accepted),
		TeamStatus:      string(newStatus),
		MemberCount:     int(newCount),
		CascadeRejected: cascaded,
	}, nil
}

// ────────────────────── Reject ──────────────────────

func (s *teamService) Reject(ctx context.Context, requestID, callerID string) (*dto.JoinRequestResponse, error) {
	request, err := s.repo.JoinRequest.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	team := request.Team
	if team == nil {
		team, err = s.repo.Team.GetByID(ctx, request.TeamID)
		if err != nil {
			return nil, err
		}
	}

	if team.LeaderID != callerID {
		return nil, ErrNotLeader
	}
	if request.Status != model.JoinRequestPending {
		return nil, ErrRequestNotPending
	}

	if err := s.repo.JoinRequest.UpdateStatus(ctx, requestID, model.JoinRequestRejected); err != nil {
		s.logger.Error("reject join request failed", zap.Error(err))
		return nil, err
	}

	rejected, err := s.repo.JoinRequest.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return toJoinRequestResponse(rejected), nil
}

// ── mapping helpers ──

// toTeamResponse maps a team with its roster; withEligibility attaches the
// compliance report (skipped in listings to keep them light).
func toTeamResponse(t *model.Team, rules *config.RulesConfig, withEligibility bool) *dto.TeamResponse {
	resp := &dto.TeamResponse{
		ID:                        t.TeamID,
		Name:                      t.Name,
		Description:               t.Description,
		LeaderID:                  t.LeaderID,
		Theme:                     t.Theme,
		SecondaryThemeDescription: t.SecondaryThemeDescription,
		PreferredRegion:           t.PreferredRegion,
		RequestedSkills:           t.RequestedSkills,
		MotivationURL:             t.MotivationURL,
		PitchVideoURL:             t.PitchVideoURL,
		PocURL:                    t.PocURL,
		Status:                    string(t.Status),
		ScoreBase:                 t.ScoreBase,
		ScoreBonus:                t.ScoreBonus,
		ScoreTotal:                t.ScoreTotal,
		DecisionComment:           t.DecisionComment,
		CreatedAt:                 t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if t.SecondaryTheme != nil {
		resp.SecondaryTheme = *t.SecondaryTheme
	}
	if resp.RequestedSkills == nil {
		resp.RequestedSkills = []string{}
	}

	resp.Members = make([]dto.MemberResponse, 0, len(t.Members))
	for i := range t.Members {
		resp.Members = append(resp.Members, *toMemberResponse(&t.Members[i]))
	}

	if withEligibility {
		resp.Eligibility = EvaluateEligibility(t.Members, rules)
	}

	return resp
}

// toMemberResponse maps a membership row to its summary shape.
func toMemberResponse(m *model.TeamMember) *dto.MemberResponse {
	resp := &dto.MemberResponse{
		ID:   m.ProfileID,
		Role: m.Role,
	}
	if m.Profile != nil {
		resp.Name = m.Profile.FullName()
		resp.Gender = m.Profile.Gender
		resp.TechSkills = m.Profile.TechSkills
		resp.MetierSkills = m.Profile.MetierSkills
	}
	if resp.TechSkills == nil {
		resp.TechSkills = []string{}
	}
	if resp.MetierSkills == nil {
		resp.MetierSkills = []string{}
	}
	return resp
}

// toJoinRequestResponse maps a join request to its response shape.
func toJoinRequestResponse(r *model.JoinRequest) *dto.JoinRequestResponse {
	resp := &dto.JoinRequestResponse{
		ID:        r.JoinRequestID,
		TeamID:    r.TeamID,
		Status:    string(r.Status),
		Message:   r.Message,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.Profile != nil {
		resp.Candidate = &dto.MemberResponse{
			ID:           r.Profile.ProfileID,
			Name:         r.Profile.FullName(),
			Gender:       r.Profile.Gender,
			TechSkills:   r.Profile.TechSkills,
			MetierSkills: r.Profile.MetierSkills,
		}
		if resp.Candidate.TechSkills == nil {
			resp.Candidate.TechSkills = []string{}
		}
		if resp.Candidate.MetierSkills == nil {
			resp.Candidate.MetierSkills = []string{}
		}
	}
	return resp
}
