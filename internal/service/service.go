package service

import (
	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/jwt"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/redis"
)

// Service aggregates every business interface.
type Service struct {
	Auth    AuthService
	Profile ProfileService
	Team    TeamService
	Dossier DossierService
	Admin   AdminService
	Export  ExportService
	Mail    MailService
}

// NewService wires the service aggregate.
// rdb may be nil: the token blacklist then degrades to no-op revocation.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Profile: NewProfileService(repo, logger),
		Team:    NewTeamService(&cfg.Rules, repo, logger),
		Dossier: NewDossierService(&cfg.Rules, repo, logger),
		Admin:   NewAdminService(&cfg.Rules, repo, logger),
		Export:  NewExportService(repo, logger),
		Mail:    NewMailService(repo, logger),
	}
}
