package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

// ProfileHandler candidate profile endpoints.
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler creates the ProfileHandler.
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// GetMe returns the caller's profile.
// GET /api/v1/profiles/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	result, err := h.profileSvc.GetByID(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			response.NotFound(c, 12001, "profile not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateMe edits the caller's profile.
// PUT /api/v1/profiles/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.profileSvc.Update(c.Request.Context(), profileID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			response.NotFound(c, 12001, "profile not found")
		case errors.Is(err, service.ErrInvalidRegion):
			response.BadRequest(c, 12002, "unknown region")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
