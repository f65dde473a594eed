package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
)

// ── test fixture ──

func setupTestDossierService(t *testing.T) (DossierService, TeamService, *mockData, string) {
	t.Helper()
	repo, d := newTestRepo()
	teamSvc := NewTeamService(testRules(), repo, zap.NewNop())
	dossierSvc := NewDossierService(testRules(), repo, zap.NewNop())

	team := seedTeam(t, teamSvc, d, "alice")
	fillTeam(t, teamSvc, d, team.ID, "alice", 5)

	return dossierSvc, teamSvc, d, team.ID
}

func validSubmitRequest() *dto.SubmitDossierRequest {
	return &dto.SubmitDossierRequest{
		Description:   "Une plateforme de gestion participative des services municipaux.",
		MotivationURL: "https://drive.example.com/docs/motivation.pdf",
		PitchVideoURL: "https://video.example.com/pitch",
		PocURL:        "https://github.com/example/poc",
	}
}

// ── Submit ──

func TestDossierService_Submit_Success(t *testing.T) {
	svc, _, d, teamID := setupTestDossierService(t)

	result, err := svc.Submit(context.Background(), teamID, "alice", validSubmitRequest())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.Status != string(model.TeamStatusSubmitted) {
		t.Errorf("expected submitted, got %s", result.Status)
	}

	stored := d.teams[teamID]
	if stored.Status != model.TeamStatusSubmitted {
		t.Error("stored team must be submitted")
	}
	if stored.SubmittedAt == nil {
		t.Error("submission timestamp must be recorded")
	}
	if stored.MotivationURL != "https://drive.example.com/docs/motivation.pdf" {
		t.Error("dossier artifacts must be stored")
	}
}

func TestDossierService_Submit_NotLeader(t *testing.T) {
	svc, _, _, teamID := setupTestDossierService(t)

	_, err := svc.Submit(context.Background(), teamID, "filler-1", validSubmitRequest())
	if !errors.Is(err, ErrNotLeader) {
		t.Errorf("expected ErrNotLeader, got %v", err)
	}
}

func TestDossierService_Submit_RosterIncomplete(t *testing.T) {
	repo, d := newTestRepo()
	teamSvc := NewTeamService(testRules(), repo, zap.NewNop())
	svc := NewDossierService(testRules(), repo, zap.NewNop())
	team := seedTeam(t, teamSvc, d, "alice")

	_, err := svc.Submit(context.Background(), team.ID, "alice", validSubmitRequest())
	if !errors.Is(err, ErrRosterIncomplete) {
		t.Errorf("expected ErrRosterIncomplete, got %v", err)
	}
	if d.teams[team.ID].Status != model.TeamStatusIncomplete {
		t.Error("a refused submission must not mutate the team")
	}
}

func TestDossierService_Submit_Twice(t *testing.T) {
	svc, _, _, teamID := setupTestDossierService(t)

	if _, err := svc.Submit(context.Background(), teamID, "alice", validSubmitRequest()); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	_, err := svc.Submit(context.Background(), teamID, "alice", validSubmitRequest())
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestDossierService_Submit_CollectsAllFieldErrors(t *testing.T) {
	svc, _, d, teamID := setupTestDossierService(t)

	primary := d.teams[teamID].Theme
	req := &dto.SubmitDossierRequest{
		Description:    "too short",
		MotivationURL:  "not-a-url",
		PitchVideoURL:  "ftp://old.example.com/video",
		PocURL:         "/relative/path",
		SecondaryTheme: &primary,
	}

	_, err := svc.Submit(context.Background(), teamID, "alice", req)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{"description", "motivation_url", "pitch_video_url", "poc_url", "secondary_theme"} {
		if !got[want] {
			t.Errorf("expected a field error for %s, fields=%v", want, verr.Fields)
		}
	}

	// no partial write on validation failure
	if d.teams[teamID].Status != model.TeamStatusComplete {
		t.Error("failed validation must not mutate the team")
	}
	if d.teams[teamID].MotivationURL != "" {
		t.Error("failed validation must not store artifacts")
	}
}

func TestDossierService_Submit_DescriptionLengthInRunes(t *testing.T) {
	svc, _, _, teamID := setupTestDossierService(t)

	req := validSubmitRequest()
	// 20 multi-byte runes, fewer than 20 bytes would suggest
	req.Description = strings.Repeat("é", 20)

	if _, err := svc.Submit(context.Background(), teamID, "alice", req); err != nil {
		t.Errorf("20-rune description must pass the floor: %v", err)
	}
}

func TestDossierService_Submit_OptionalPocOmitted(t *testing.T) {
	svc, _, _, teamID := setupTestDossierService(t)

	req := validSubmitRequest()
	req.PocURL = ""

	if _, err := svc.Submit(context.Background(), teamID, "alice", req); err != nil {
		t.Errorf("empty optional poc url must pass: %v", err)
	}
}

func TestDossierService_Submit_DistinctSecondaryTheme(t *testing.T) {
	svc, _, _, teamID := setupTestDossierService(t)

	secondary := model.Themes[1]
	req := validSubmitRequest()
	req.SecondaryTheme = &secondary
	req.SecondaryThemeDescription = "Lien fort avec la valorisation des déchets."

	result, err := svc.Submit(context.Background(), teamID, "alice", req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.SecondaryTheme != secondary {
		t.Errorf("secondary theme must be stored, got %q", result.SecondaryTheme)
	}
}
