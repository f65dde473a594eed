package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

// CatalogHandler serves the fixed enumerations of the edition.
type CatalogHandler struct{}

// NewCatalogHandler creates the CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Get returns themes, regional stages and skill taxonomies.
// GET /api/v1/catalog
func (h *CatalogHandler) Get(c *gin.Context) {
	regions := make([]dto.RegionResponse, 0, len(model.Regions))
	for _, r := range model.Regions {
		regions = append(regions, dto.RegionResponse{ID: r.ID, Name: r.Name, Date: r.Date})
	}

	idealTeams := make(map[string]dto.IdealTeamResponse, len(model.IdealTeams))
	for theme, it := range model.IdealTeams {
		idealTeams[theme] = dto.IdealTeamResponse{Tech: it.Tech, Metier: it.Metier}
	}

	response.OK(c, dto.CatalogResponse{
		Themes:       model.Themes,
		Regions:      regions,
		TechSkills:   model.TechSkills,
		MetierSkills: model.MetierSkills,
		IdealTeams:   idealTeams,
	})
}
