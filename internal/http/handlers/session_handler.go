// README: Session lifecycle handlers (create/get/delete).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/modules/planner"
	"planora/internal/types"
)

type SessionHandler struct {
	planner *planner.Service
}

func NewSessionHandler(svc *planner.Service) *SessionHandler {
	return &SessionHandler{planner: svc}
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.planner.CreateSession(c.Request.Context())
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, sess)
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.planner.GetSession(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sess)
}

// Delete handles DELETE /api/sessions/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.planner.DeleteSession(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writePlannerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
