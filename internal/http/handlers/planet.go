package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/missions-backend/internal/domain"
	"github.com/yungbote/missions-backend/internal/http/response"
	"github.com/yungbote/missions-backend/internal/platform/logger"
	"github.com/yungbote/missions-backend/internal/services"
)

const entityPlanet = "Planet"

type PlanetHandler struct {
	log     *logger.Logger
	service services.PlanetService
}

func NewPlanetHandler(log *logger.Logger, service services.PlanetService) *PlanetHandler {
	return &PlanetHandler{log: log.With("handler", "PlanetHandler"), service: service}
}

// GET /planets
func (h *PlanetHandler) List(c *gin.Context) {
	rows, err := h.service.List(requestDBC(c))
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	response.RespondOK(c, types.PlanetViews(rows))
}

// GET /planets/:id
func (h *PlanetHandler) Get(c *gin.Context) {
	id, err := parseID(c, entityPlanet)
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	row, err := h.service.Get(requestDBC(c), id)
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	response.RespondOK(c, row.View())
}

// POST /planets
// body: { "name": "...", "distance_from_earth": 0, "nearest_star": "..." }
func (h *PlanetHandler) Create(c *gin.Context) {
	var in types.PlanetInput
	if err := decodeJSON(c, &in); err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	row, err := h.service.Create(requestDBC(c), in)
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	response.RespondCreated(c, row.View())
}

// DELETE /planets/:id
func (h *PlanetHandler) Delete(c *gin.Context) {
	id, err := parseID(c, entityPlanet)
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	if err := h.service.Delete(requestDBC(c), id); err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /planets/:id/scientists
func (h *PlanetHandler) ListScientists(c *gin.Context) {
	id, err := parseID(c, entityPlanet)
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	rows, err := h.service.ListScientists(requestDBC(c), id)
	if err != nil {
		writeError(c, h.log, entityPlanet, err)
		return
	}
	response.RespondOK(c, types.Summaries(rows))
}
