package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/api/middleware"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock TeamService ──

type mockTeamService struct {
	createResult *dto.TeamResponse
	createErr    error
	applyResult  *dto.JoinRequestResponse
	applyErr     error
	acceptResult *dto.AcceptResponse
	acceptErr    error
}

func (m *mockTeamService) Create(_ context.Context, _ *dto.CreateTeamRequest, _ string) (*dto.TeamResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockTeamService) GetByID(_ context.Context, _ string) (*dto.TeamResponse, error) {
	return nil, service.ErrTeamNotFound
}
func (m *mockTeamService) List(_ context.Context, _ *dto.TeamListRequest) ([]dto.TeamResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockTeamService) Apply(_ context.Context, _, _ string, _ *dto.ApplyRequest) (*dto.JoinRequestResponse, error) {
	return m.applyResult, m.applyErr
}
func (m *mockTeamService) ListRequests(_ context.Context, _, _ string) ([]dto.JoinRequestResponse, error) {
	return nil, nil
}
func (m *mockTeamService) Accept(_ context.Context, _, _ string) (*dto.AcceptResponse, error) {
	return m.acceptResult, m.acceptErr
}
func (m *mockTeamService) Reject(_ context.Context, _, _ string) (*dto.JoinRequestResponse, error) {
	return nil, nil
}

// ── Mock DossierService ──

type mockDossierService struct {
	submitResult *dto.TeamResponse
	submitErr    error
}

func (m *mockDossierService) Submit(_ context.Context, _, _ string, _ *dto.SubmitDossierRequest) (*dto.TeamResponse, error) {
	return m.submitResult, m.submitErr
}

// ── helpers ──

func performJSON(h gin.HandlerFunc, method, target string, body interface{}, profileID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "some-id"}}
	if profileID != "" {
		c.Set(middleware.CtxProfileID, profileID)
	}

	h(c)
	return w
}

// ── Apply error mapping ──

func TestTeamHandler_Apply_ConflictMapping(t *testing.T) {
	cases := []struct {
		name     string
		svcErr   error
		wantHTTP int
		wantCode float64
	}{
		{"already affiliated", service.ErrAlreadyAffiliated, http.StatusConflict, 13002},
		{"team locked", service.ErrTeamLocked, http.StatusConflict, 13004},
		{"team full", service.ErrTeamFull, http.StatusConflict, 13005},
		{"already applied", service.ErrAlreadyApplied, http.StatusConflict, 13006},
		{"team missing", service.ErrTeamNotFound, http.StatusNotFound, 13001},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewTeamHandler(&mockTeamService{applyErr: tc.svcErr}, &mockDossierService{})

			w := performJSON(h.Apply, http.MethodPost, "/teams/some-id/apply", dto.ApplyRequest{}, "candidate-1")

			if w.Code != tc.wantHTTP {
				t.Errorf("expected HTTP %d, got %d", tc.wantHTTP, w.Code)
			}
			var resp response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if float64(resp.Code) != tc.wantCode {
				t.Errorf("expected business code %v, got %d", tc.wantCode, resp.Code)
			}
		})
	}
}

func TestTeamHandler_Apply_RequiresAuth(t *testing.T) {
	h := NewTeamHandler(&mockTeamService{}, &mockDossierService{})

	w := performJSON(h.Apply, http.MethodPost, "/teams/some-id/apply", dto.ApplyRequest{}, "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without injected identity, got %d", w.Code)
	}
}

// ── Submit validation details ──

func TestTeamHandler_Submit_ReportsFieldErrors(t *testing.T) {
	verr := &service.ValidationError{Fields: []dto.FieldError{
		{Field: "motivation_url", Reason: "must be an absolute http(s) URL"},
		{Field: "description", Reason: "must be at least 20 characters"},
	}}
	h := NewTeamHandler(&mockTeamService{}, &mockDossierService{submitErr: verr})

	w := performJSON(h.Submit, http.MethodPost, "/teams/some-id/submit", dto.SubmitDossierRequest{
		Description:   "x",
		MotivationURL: "not-a-url",
		PitchVideoURL: "also-bad",
	}, "leader-1")

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var resp struct {
		Code    int              `json:"code"`
		Details []dto.FieldError `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != 14001 {
		t.Errorf("expected business code 14001, got %d", resp.Code)
	}
	if len(resp.Details) != 2 {
		t.Errorf("expected 2 field errors in details, got %d", len(resp.Details))
	}
}

// ── Catalog payload ──

func TestCatalogHandler_Get_CarriesIdealTeams(t *testing.T) {
	h := NewCatalogHandler()

	w := performJSON(h.Get, http.MethodGet, "/catalog", nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data dto.CatalogResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data.IdealTeams) != len(resp.Data.Themes) {
		t.Errorf("expected an ideal composition per theme, got %d for %d themes",
			len(resp.Data.IdealTeams), len(resp.Data.Themes))
	}
	ideal, ok := resp.Data.IdealTeams["Gestion urbaine et territoriale"]
	if !ok || len(ideal.Tech) == 0 || len(ideal.Metier) == 0 {
		t.Errorf("urban theme must carry a populated recommendation, got %+v", ideal)
	}
}

// ── Accept success shape ──

func TestTeamHandler_Accept_ReturnsCascadeCount(t *testing.T) {
	h := NewTeamHandler(&mockTeamService{acceptResult: &dto.AcceptResponse{
		Request:         dto.JoinRequestResponse{ID: "jr-1", Status: "accepted"},
		TeamStatus:      "complete",
		MemberCount:     5,
		CascadeRejected: 3,
	}}, &mockDossierService{})

	w := performJSON(h.Accept, http.MethodPost, "/join-requests/some-id/accept", nil, "leader-1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data dto.AcceptResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.CascadeRejected != 3 || resp.Data.TeamStatus != "complete" {
		t.Errorf("unexpected accept payload: %+v", resp.Data)
	}
}
