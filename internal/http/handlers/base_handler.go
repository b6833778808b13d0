// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/ai"
	"planora/internal/modules/itinerary"
	"planora/internal/modules/planner"
)

// Localized user-facing messages for upstream failures. Raw provider errors
// stay in the server log only.
const (
	msgGenerationFailed = "일정 생성에 실패했습니다. 다시 시도해 주세요."
	msgNoEntriesFound   = "텍스트에서 일정을 찾지 못했습니다. 내용을 확인해 주세요."
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrNoEntriesFound):
		writeError(c, http.StatusBadRequest, msgNoEntriesFound)
	case errors.Is(err, planner.ErrNotFound):
		writeError(c, http.StatusNotFound, "not found")
	case errors.Is(err, planner.ErrSessionLimit):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ai.ErrUpstream), errors.Is(err, itinerary.ErrGeneration):
		writeError(c, http.StatusBadGateway, msgGenerationFailed)
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
