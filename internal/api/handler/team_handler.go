package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

// TeamHandler team lifecycle and dossier endpoints.
type TeamHandler struct {
	teamSvc    service.TeamService
	dossierSvc service.DossierService
}

// NewTeamHandler creates the TeamHandler.
func NewTeamHandler(teamSvc service.TeamService, dossierSvc service.DossierService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc, dossierSvc: dossierSvc}
}

// Create founds a team with the caller as leader.
// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.teamSvc.Create(c.Request.Context(), &req, profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateAffiliation):
			response.Conflict(c, 13002, "you already belong to a team")
		case errors.Is(err, service.ErrInvalidTheme):
			response.BadRequest(c, 13003, "unknown theme")
		case errors.Is(err, service.ErrInvalidRegion):
			response.BadRequest(c, 12002, "unknown region")
		case errors.Is(err, service.ErrProfileNotFound):
			response.NotFound(c, 12001, "profile not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get returns a team snapshot with its compliance report.
// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	result, err := h.teamSvc.GetByID(c.Request.Context(), c.Param("id"))
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

// List returns open teams for discovery.
// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	var req dto.TeamListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	list, total, err := h.teamSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Apply submits a join request to a team.
// POST /api/v1/teams/:id/apply
func (h *TeamHandler) Apply(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.teamSvc.Apply(c.Request.Context(), c.Param("id"), profileID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 13001, "team not found")
		case errors.Is(err, service.ErrAlreadyAffiliated):
			response.Conflict(c, 13002, "you already belong to a team")
		case errors.Is(err, service.ErrTeamLocked):
			response.Conflict(c, 13004, "team is locked")
		case errors.Is(err, service.ErrTeamFull):
			response.Conflict(c, 13005, "team is full")
		case errors.Is(err, service.ErrAlreadyApplied):
			response.Conflict(c, 13006, "you already applied to this team")
		case errors.Is(err, service.ErrProfileNotFound):
			response.NotFound(c, 12001, "profile not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ListRequests returns a team's pending join requests, leader only.
// GET /api/v1/teams/:id/requests
func (h *TeamHandler) ListRequests(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	result, err := h.teamSvc.ListRequests(c.Request.Context(), c.Param("id"), profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 13001, "team not found")
		case errors.Is(err, service.ErrNotLeader):
			response.Forbidden(c, 13007, "only the team leader may view requests")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Accept accepts a join request, leader only.
// POST /api/v1/join-requests/:id/accept
func (h *TeamHandler) Accept(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	result, err := h.teamSvc.Accept(c.Request.Context(), c.Param("id"), profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, 13009, "join request not found")
		case errors.Is(err, service.ErrNotLeader):
			response.Forbidden(c, 13007, "only the team leader may decide on requests")
		case errors.Is(err, service.ErrRequestNotPending):
			response.Conflict(c, 13008, "join request is no longer pending")
		case errors.Is(err, service.ErrTeamLocked):
			response.Conflict(c, 13004, "team is locked")
		case errors.Is(err, service.ErrTeamFull):
			response.Conflict(c, 13005, "team is full")
		case errors.Is(err, service.ErrAlreadyAffiliated):
			response.Conflict(c, 13002, "candidate already belongs to a team")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Reject rejects a join request, leader only.
// POST /api/v1/join-requests/:id/reject
func (h *TeamHandler) Reject(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	result, err := h.teamSvc.Reject(c.Request.Context(), c.Param("id"), profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, 13009, "join request not found")
		case errors.Is(err, service.ErrNotLeader):
			response.Forbidden(c, 13007, "only the team leader may decide on requests")
		case errors.Is(err, service.ErrRequestNotPending):
			response.Conflict(c, 13008, "join request is no longer pending")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Submit finalizes the dossier for jury evaluation, leader only.
// POST /api/v1/teams/:id/submit
func (h *TeamHandler) Submit(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.SubmitDossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.dossierSvc.Submit(c.Request.Context(), c.Param("id"), profileID, &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, 14001, "dossier validation failed", verr.Fields)
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 13001, "team not found")
		case errors.Is(err, service.ErrNotLeader):
			response.Forbidden(c, 13007, "only the team leader may submit the dossier")
		case errors.Is(err, service.ErrRosterIncomplete):
			response.Conflict(c, 14002, "roster is not full")
		case errors.Is(err, service.ErrAlreadySubmitted):
			response.Conflict(c, 14003, "dossier already submitted")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
