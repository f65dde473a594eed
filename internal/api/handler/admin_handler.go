package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

// AdminHandler jury-side review endpoints.
type AdminHandler struct {
	adminSvc service.AdminService
	mailSvc  service.MailService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(adminSvc service.AdminService, mailSvc service.MailService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, mailSvc: mailSvc}
}

// ListTeams returns teams for review, with compliance reports.
// GET /api/v1/admin/teams
func (h *AdminHandler) ListTeams(c *gin.Context) {
	var req dto.AdminTeamListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	list, total, err := h.adminSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetTeam returns one team for review.
// GET /api/v1/admin/teams/:id
func (h *AdminHandler) GetTeam(c *gin.Context) {
	result, err := h.adminSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 13001, "team not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Decide records the jury decision on a submitted dossier.
// POST /api/v1/admin/teams/:id/decision
func (h *AdminHandler) Decide(c *gin.Context) {
	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.adminSvc.Decide(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 13001, "team not found")
		case errors.Is(err, service.ErrNotSubmitted):
			response.Conflict(c, 15001, "decision requires a submitted dossier")
		case errors.Is(err, service.ErrInvalidDecision):
			response.BadRequest(c, 15002, "unknown decision status")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// DecisionMail assembles the decision notification draft.
// GET /api/v1/admin/teams/:id/decision-mail
func (h *AdminHandler) DecisionMail(c *gin.Context) {
	result, err := h.mailSvc.ComposeDecisionMail(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 13001, "team not found")
		case errors.Is(err, service.ErrNotDecided):
			response.Conflict(c, 15003, "no decision recorded for this team")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
