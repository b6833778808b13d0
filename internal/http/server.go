// README: API gateway; registers HTTP routes and delegates to the planner service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/http/handlers"
	"planora/internal/http/middleware"
	"planora/internal/modules/planner"
)

type ServerDeps struct {
	Planner *planner.Service
}

type Server struct {
	planner *planner.Service
}

func NewServer(deps ServerDeps) *Server {
	return &Server{planner: deps.Planner}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	sessionHandler := handlers.NewSessionHandler(s.planner)
	plannerHandler := handlers.NewPlannerHandler(s.planner)
	itineraryHandler := handlers.NewItineraryHandler(s.planner)

	api := r.Group("/api")

	api.POST("/sessions", sessionHandler.Create)
	api.GET("/sessions/:id", sessionHandler.Get)
	api.DELETE("/sessions/:id", sessionHandler.Delete)

	api.POST("/sessions/:id/plan", plannerHandler.GeneratePlan)
	api.POST("/sessions/:id/narrative", plannerHandler.AddFromNarrative)

	api.POST("/sessions/:id/schedule", plannerHandler.AddEntry)
	api.PUT("/sessions/:id/schedule/:entryID", plannerHandler.UpdateEntry)
	api.DELETE("/sessions/:id/schedule/:entryID", plannerHandler.RemoveEntry)
	api.POST("/sessions/:id/schedule/:entryID/nearby", plannerHandler.FindNearby)
	api.POST("/sessions/:id/schedule/:entryID/promote", plannerHandler.PromoteNearbyPlace)

	api.POST("/sessions/:id/checklist", plannerHandler.AddChecklistItem)
	api.PUT("/sessions/:id/checklist/:itemID", plannerHandler.UpdateChecklistItem)
	api.POST("/sessions/:id/checklist/:itemID/toggle", plannerHandler.ToggleChecklistItem)
	api.DELETE("/sessions/:id/checklist/:itemID", plannerHandler.RemoveChecklistItem)

	api.POST("/sessions/:id/itinerary.html", itineraryHandler.Render)

	return r
}
