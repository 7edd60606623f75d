package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/missions-backend/internal/domain"
	"github.com/yungbote/missions-backend/internal/http/response"
	"github.com/yungbote/missions-backend/internal/platform/logger"
	"github.com/yungbote/missions-backend/internal/services"
)

const entityMission = "Mission"

type MissionHandler struct {
	log     *logger.Logger
	service services.MissionService
}

func NewMissionHandler(log *logger.Logger, service services.MissionService) *MissionHandler {
	return &MissionHandler{log: log.With("handler", "MissionHandler"), service: service}
}

// GET /missions
func (h *MissionHandler) List(c *gin.Context) {
	rows, err := h.service.List(requestDBC(c))
	if err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	response.RespondOK(c, types.MissionViews(rows))
}

// GET /missions/:id
func (h *MissionHandler) Get(c *gin.Context) {
	id, err := parseID(c, entityMission)
	if err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	row, err := h.service.Get(requestDBC(c), id)
	if err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	response.RespondOK(c, row.View())
}

// POST /missions
// body: { "name": "...", "scientist_id": 1, "planet_id": 1 }
func (h *MissionHandler) Create(c *gin.Context) {
	var in types.MissionInput
	if err := decodeJSON(c, &in); err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	row, err := h.service.Create(requestDBC(c), in)
	if err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	response.RespondCreated(c, row.View())
}

// DELETE /missions/:id
func (h *MissionHandler) Delete(c *gin.Context) {
	id, err := parseID(c, entityMission)
	if err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	if err := h.service.Delete(requestDBC(c), id); err != nil {
		writeError(c, h.log, entityMission, err)
		return
	}
	response.RespondNoContent(c)
}
