// README: Itinerary export handler (standalone HTML download).
package handlers

import (
	"context"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/modules/planner"
	"planora/internal/types"
)

type ItineraryHandler struct {
	planner *planner.Service
}

func NewItineraryHandler(svc *planner.Service) *ItineraryHandler {
	return &ItineraryHandler{planner: svc}
}

// Render handles POST /api/sessions/:id/itinerary.html. An empty schedule is
// the benign no-output state and answers 204 without calling the model.
func (h *ItineraryHandler) Render(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	html, filename, err := h.planner.RenderHTML(ctx, types.ID(c.Param("id")))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	if html == "" {
		c.Status(http.StatusNoContent)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
