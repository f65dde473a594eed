package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// mockData is the shared in-memory store behind the mock repositories.
// Sharing it lets the composite operations (team creation, request
// acceptance) mutate membership and affiliation together, like the
// transactional repo implementations do.
type mockData struct {
	profiles map[string]*model.Profile
	teams    map[string]*model.Team
	members  []*model.TeamMember
	requests map[string]*model.JoinRequest

	seq int
}

func newMockData() *mockData {
	return &mockData{
		profiles: make(map[string]*model.Profile),
		teams:    make(map[string]*model.Team),
		requests: make(map[string]*model.JoinRequest),
	}
}

func (d *mockData) nextID(prefix string) string {
	d.seq++
	return fmt.Sprintf("%s-%d", prefix, d.seq)
}

func (d *mockData) memberCount(teamID string) int {
	n := 0
	for _, m := range d.members {
		if m.TeamID == teamID {
			n++
		}
	}
	return n
}

func (d *mockData) hasMembership(profileID string) bool {
	for _, m := range d.members {
		if m.ProfileID == profileID {
			return true
		}
	}
	return false
}

func (d *mockData) addMember(teamID, profileID, role string) error {
	if d.hasMembership(profileID) {
		return gorm.ErrDuplicatedKey
	}
	d.members = append(d.members, &model.TeamMember{
		TeamMemberID: d.nextID("tm"),
		TeamID:       teamID,
		ProfileID:    profileID,
		Role:         role,
	})
	return nil
}

func (d *mockData) setAffiliation(profileID string, teamID, role *string) {
	if p, ok := d.profiles[profileID]; ok {
		p.CurrentTeamID = teamID
		p.TeamRole = role
	}
}

// teamSnapshot returns a copy of the team with its roster attached, like the
// preloading GetByID of the real repo.
func (d *mockData) teamSnapshot(id string) (*model.Team, bool) {
	t, ok := d.teams[id]
	if !ok {
		return nil, false
	}
	snap := *t
	snap.Members = nil
	for _, m := range d.members {
		if m.TeamID != id {
			continue
		}
		mc := *m
		if p, ok := d.profiles[m.ProfileID]; ok {
			pc := *p
			mc.Profile = &pc
		}
		snap.Members = append(snap.Members, mc)
	}
	return &snap, true
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	d *mockData
}

func (m *mockProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	for _, p := range m.d.profiles {
		if strings.EqualFold(p.Email, profile.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if profile.ProfileID == "" {
		profile.ProfileID = m.d.nextID("p")
	}
	m.d.profiles[profile.ProfileID] = profile
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (*model.Profile, error) {
	if p, ok := m.d.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) GetByEmail(_ context.Context, email string) (*model.Profile, error) {
	for _, p := range m.d.profiles {
		if strings.EqualFold(p.Email, email) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	m.d.profiles[profile.ProfileID] = profile
	return nil
}

func (m *mockProfileRepo) SetTeamAffiliation(_ context.Context, profileID string, teamID, teamRole *string) error {
	m.d.setAffiliation(profileID, teamID, teamRole)
	return nil
}

func (m *mockProfileRepo) List(_ context.Context, offset, limit int) ([]model.Profile, int64, error) {
	all, _ := m.ListAll(context.Background())
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockProfileRepo) ListAll(_ context.Context) ([]model.Profile, error) {
	var result []model.Profile
	for _, p := range m.d.profiles {
		result = append(result, *p)
	}
	return result, nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	d *mockData
}

func (m *mockTeamRepo) CreateWithLeader(_ context.Context, team *model.Team, founder *model.Profile) error {
	if team.TeamID == "" {
		team.TeamID = m.d.nextID("t")
	}
	if m.d.hasMembership(founder.ProfileID) {
		return gorm.ErrDuplicatedKey
	}
	cp := *team
	m.d.teams[team.TeamID] = &cp
	if err := m.d.addMember(team.TeamID, founder.ProfileID, model.TeamRoleLeader); err != nil {
		return err
	}
	role := model.TeamRoleLeader
	m.d.setAffiliation(founder.ProfileID, &team.TeamID, &role)
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	if t, ok := m.d.teamSnapshot(id); ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) Update(_ context.Context, team *model.Team) error {
	if _, ok := m.d.teams[team.TeamID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *team
	cp.Members = nil
	m.d.teams[team.TeamID] = &cp
	return nil
}

func (m *mockTeamRepo) UpdateStatus(_ context.Context, teamID string, status model.TeamStatus) error {
	t, ok := m.d.teams[teamID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	return nil
}

func (m *mockTeamRepo) List(_ context.Context, filters *repository.TeamListFilters, offset, limit int) ([]model.Team, int64, error) {
	var matched []model.Team
	for id := range m.d.teams {
		t, _ := m.d.teamSnapshot(id)
		if filters != nil {
			if filters.Region != "" && t.PreferredRegion != filters.Region {
				continue
			}
			if filters.Theme != "" && t.Theme != filters.Theme {
				continue
			}
			if filters.Skill != "" && !t.RequestedSkills.Contains(filters.Skill) {
				continue
			}
			if filters.Status != "" && t.Status != filters.Status {
				continue
			}
			if filters.OpenOnly && t.Status.Locked() {
				continue
			}
		}
		matched = append(matched, *t)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockTeamRepo) ListAll(_ context.Context) ([]model.Team, error) {
	var result []model.Team
	for id := range m.d.teams {
		t, _ := m.d.teamSnapshot(id)
		result = append(result, *t)
	}
	return result, nil
}

// ── Mock TeamMemberRepository ──

type mockTeamMemberRepo struct {
	d *mockData
}

func (m *mockTeamMemberRepo) CountByTeam(_ context.Context, teamID string) (int64, error) {
	return int64(m.d.memberCount(teamID)), nil
}

func (m *mockTeamMemberRepo) ListByTeam(_ context.Context, teamID string) ([]model.TeamMember, error) {
	var result []model.TeamMember
	for _, mm := range m.d.members {
		if mm.TeamID != teamID {
			continue
		}
		mc := *mm
		if p, ok := m.d.profiles[mm.ProfileID]; ok {
			pc := *p
			mc.Profile = &pc
		}
		result = append(result, mc)
	}
	return result, nil
}

func (m *mockTeamMemberRepo) GetByProfile(_ context.Context, profileID string) (*model.TeamMember, error) {
	for _, mm := range m.d.members {
		if mm.ProfileID == profileID {
			mc := *mm
			return &mc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock JoinRequestRepository ──

type mockJoinRequestRepo struct {
	d *mockData
}

func (m *mockJoinRequestRepo) Create(_ context.Context, req *model.JoinRequest) error {
	for _, r := range m.d.requests {
		if r.TeamID == req.TeamID && r.ProfileID == req.ProfileID && r.Status == model.JoinRequestPending {
			return gorm.ErrDuplicatedKey
		}
	}
	if req.JoinRequestID == "" {
		req.JoinRequestID = m.d.nextID("jr")
	}
	cp := *req
	m.d.requests[req.JoinRequestID] = &cp
	return nil
}

func (m *mockJoinRequestRepo) GetByID(_ context.Context, id string) (*model.JoinRequest, error) {
	r, ok := m.d.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	if t, ok := m.d.teamSnapshot(r.TeamID); ok {
		cp.Team = t
	}
	if p, ok := m.d.profiles[r.ProfileID]; ok {
		pc := *p
		cp.Profile = &pc
	}
	return &cp, nil
}

func (m *mockJoinRequestRepo) HasPending(_ context.Context, teamID, profileID string) (bool, error) {
	for _, r := range m.d.requests {
		if r.TeamID == teamID && r.ProfileID == profileID && r.Status == model.JoinRequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJoinRequestRepo) ListByTeam(_ context.Context, teamID string, status model.JoinRequestStatus) ([]model.JoinRequest, error) {
	var result []model.JoinRequest
	for _, r := range m.d.requests {
		if r.TeamID != teamID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		cp := *r
		if p, ok := m.d.profiles[r.ProfileID]; ok {
			pc := *p
			cp.Profile = &pc
		}
		result = append(result, cp)
	}
	return result, nil
}

func (m *mockJoinRequestRepo) Accept(_ context.Context, req *model.JoinRequest) error {
	if err := m.d.addMember(req.TeamID, req.ProfileID, model.TeamRoleMember); err != nil {
		return err
	}
	if r, ok := m.d.requests[req.JoinRequestID]; ok {
		r.Status = model.JoinRequestAccepted
	}
	role := model.TeamRoleMember
	m.d.setAffiliation(req.ProfileID, &req.TeamID, &role)
	return nil
}

func (m *mockJoinRequestRepo) UpdateStatus(_ context.Context, requestID string, status model.JoinRequestStatus) error {
	r, ok := m.d.requests[requestID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	return nil
}

func (m *mockJoinRequestRepo) RejectAllPending(_ context.Context, teamID, exceptRequestID string) (int64, error) {
	var n int64
	for _, r := range m.d.requests {
		if r.TeamID != teamID || r.Status != model.JoinRequestPending {
			continue
		}
		if exceptRequestID != "" && r.JoinRequestID == exceptRequestID {
			continue
		}
		r.Status = model.JoinRequestRejected
		n++
	}
	return n, nil
}

func (m *mockJoinRequestRepo) ListStalePending(_ context.Context, teamSize int) ([]model.JoinRequest, error) {
	var result []model.JoinRequest
	for _, r := range m.d.requests {
		if r.Status != model.JoinRequestPending {
			continue
		}
		t, ok := m.d.teams[r.TeamID]
		if !ok {
			continue
		}
		if t.Status.Locked() || m.d.memberCount(r.TeamID) >= teamSize {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ── fixture ──

func newTestRepo() (*repository.Repository, *mockData) {
	d := newMockData()
	return &repository.Repository{
		Profile:     &mockProfileRepo{d: d},
		Team:        &mockTeamRepo{d: d},
		TeamMember:  &mockTeamMemberRepo{d: d},
		JoinRequest: &mockJoinRequestRepo{d: d},
	}, d
}
