package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/missions-backend/internal/domain"
	"github.com/yungbote/missions-backend/internal/http/response"
	"github.com/yungbote/missions-backend/internal/platform/logger"
	"github.com/yungbote/missions-backend/internal/services"
)

const entityScientist = "Scientist"

type ScientistHandler struct {
	log     *logger.Logger
	service services.ScientistService
}

func NewScientistHandler(log *logger.Logger, service services.ScientistService) *ScientistHandler {
	return &ScientistHandler{log: log.With("handler", "ScientistHandler"), service: service}
}

// GET /scientists
func (h *ScientistHandler) List(c *gin.Context) {
	rows, err := h.service.List(requestDBC(c))
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	response.RespondOK(c, types.Summaries(rows))
}

// GET /scientists/:id
func (h *ScientistHandler) Get(c *gin.Context) {
	id, err := parseID(c, entityScientist)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	row, err := h.service.Get(requestDBC(c), id)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	response.RespondOK(c, row.Detail())
}

// POST /scientists
// body: { "name": "...", "field_of_study": "..." }
func (h *ScientistHandler) Create(c *gin.Context) {
	var in types.ScientistInput
	if err := decodeJSON(c, &in); err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	row, err := h.service.Create(requestDBC(c), in)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	response.RespondCreated(c, row.Detail())
}

// PATCH /scientists/:id
// body: any subset of { "name": "...", "field_of_study": "..." }
func (h *ScientistHandler) Update(c *gin.Context) {
	id, err := parseID(c, entityScientist)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	var patch types.ScientistPatch
	if err := decodeJSON(c, &patch); err != nil {
		// a missing scientist reports 404 even when the body is also bad
		if _, getErr := h.service.Get(requestDBC(c), id); errors.Is(getErr, types.ErrNotFound) {
			err = getErr
		}
		writeError(c, h.log, entityScientist, err)
		return
	}
	row, err := h.service.Update(requestDBC(c), id, patch)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	response.RespondAccepted(c, row.Detail())
}

// DELETE /scientists/:id
func (h *ScientistHandler) Delete(c *gin.Context) {
	id, err := parseID(c, entityScientist)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	if err := h.service.Delete(requestDBC(c), id); err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /scientists/:id/planets
func (h *ScientistHandler) ListPlanets(c *gin.Context) {
	id, err := parseID(c, entityScientist)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	rows, err := h.service.ListPlanets(requestDBC(c), id)
	if err != nil {
		writeError(c, h.log, entityScientist, err)
		return
	}
	response.RespondOK(c, types.PlanetViews(rows))
}
