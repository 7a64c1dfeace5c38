// README: AI status endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripkit/internal/modules/planner"
)

type AIHandler struct {
	status *planner.StatusService
}

func NewAIHandler(status *planner.StatusService) *AIHandler {
	return &AIHandler{status: status}
}

func (h *AIHandler) Status(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.status.Status(c.Request.Context()))
}
