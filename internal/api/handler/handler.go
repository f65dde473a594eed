package handler

import "github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Catalog *CatalogHandler
	Team    *TeamHandler
	Admin   *AdminHandler
	Export  *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth, svc.Profile),
		Profile: NewProfileHandler(svc.Profile),
		Catalog: NewCatalogHandler(),
		Team:    NewTeamHandler(svc.Team, svc.Dossier),
		Admin:   NewAdminHandler(svc.Admin, svc.Mail),
		Export:  NewExportHandler(svc.Export),
	}
}
