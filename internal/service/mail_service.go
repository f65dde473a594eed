package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// ── mail module errors ──

var ErrNotDecided = errors.New("no decision recorded for this team")

// MailService assembles decision notification drafts.
//
// Nothing is sent from the server. The draft is assembled deterministically
// from the team record so re-requesting the same decision always yields the
// same message, and handed to the admin's own mail client for dispatch.
type MailService interface {
	ComposeDecisionMail(ctx context.Context, teamID string) (*dto.MailDraftResponse, error)
}

type mailService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMailService creates the MailService.
func NewMailService(repo *repository.Repository, logger *zap.Logger) MailService {
	return &mailService{repo: repo, logger: logger}
}

func (s *mailService) ComposeDecisionMail(ctx context.Context, teamID string) (*dto.MailDraftResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("lookup team failed", zap.String("id", teamID), zap.Error(err))
		return nil, err
	}

	if !team.Status.Decided() {
		return nil, ErrNotDecided
	}

	to := make([]string, 0, len(team.Members))
	for i := range team.Members {
		if team.Members[i].Profile != nil && team.Members[i].Profile.Email != "" {
			to = append(to, team.Members[i].Profile.Email)
		}
	}
	sort.Strings(to)

	return &dto.MailDraftResponse{
		To:      to,
		Subject: decisionSubject(team),
		Body:    decisionBody(team),
	}, nil
}

func decisionSubject(team *model.Team) string {
	switch team.Status {
	case model.TeamStatusSelected:
		return fmt.Sprintf("Hackathon FNCT 2026 – Félicitations, l'équipe %s est sélectionnée", team.Name)
	case model.TeamStatusWaitlist:
		return fmt.Sprintf("Hackathon FNCT 2026 – L'équipe %s est sur liste d'attente", team.Name)
	default:
		return fmt.Sprintf("Hackathon FNCT 2026 – Décision concernant l'équipe %s", team.Name)
	}
}

func decisionBody(team *model.Team) string {
	var b strings.Builder

	b.WriteString("Bonjour,\n\n")

	switch team.Status {
	case model.TeamStatusSelected:
		fmt.Fprintf(&b, "Nous avons le plaisir de vous informer que votre équipe « %s » a été sélectionnée pour participer au Hackathon FNCT 2026.\n", team.Name)
	case model.TeamStatusWaitlist:
		fmt.Fprintf(&b, "Votre équipe « %s » a été placée sur liste d'attente pour le Hackathon FNCT 2026. Nous vous recontacterons si une place se libère.\n", team.Name)
	case model.TeamStatusRejected:
		fmt.Fprintf(&b, "Après examen de votre dossier, nous sommes au regret de vous informer que la candidature de l'équipe « %s » n'a pas été retenue pour le Hackathon FNCT 2026.\n", team.Name)
	}

	fmt.Fprintf(&b, "\nThème : %s\n", team.Theme)
	if team.PreferredRegion != "" {
		if region, ok := model.RegionByID(team.PreferredRegion); ok {
			fmt.Fprintf(&b, "Étape régionale : %s (%s)\n", region.Name, region.Date)
		} else {
			fmt.Fprintf(&b, "Étape régionale : %s\n", team.PreferredRegion)
		}
	}
	if team.ScoreTotal != nil {
		fmt.Fprintf(&b, "Score obtenu : %d\n", *team.ScoreTotal)
	}
	if team.DecisionComment != "" {
		fmt.Fprintf(&b, "\nCommentaire du jury :\n%s\n", team.DecisionComment)
	}

	b.WriteString("\nCordialement,\nL'équipe d'organisation du Hackathon FNCT 2026\n")

	return b.String()
}
