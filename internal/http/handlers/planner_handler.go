// README: Planner handlers: AI-driven plan/narrative flows and manual schedule/checklist edits.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"planora/internal/modules/itinerary"
	"planora/internal/modules/planner"
	"planora/internal/types"
)

// Generation responses can take a while; parsing and lookups are quicker.
const (
	generateTimeout = 90 * time.Second
	aiCallTimeout   = 30 * time.Second
)

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

type generatePlanReq struct {
	Destination string `json:"destination"`
	Concept     string `json:"concept"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PartySize   int    `json:"party_size"`
}

// GeneratePlan handles POST /api/sessions/:id/plan.
func (h *PlannerHandler) GeneratePlan(c *gin.Context) {
	var req generatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	sess, err := h.planner.GeneratePlan(ctx, types.ID(c.Param("id")),
		req.Destination, req.Concept, req.StartDate, req.EndDate, req.PartySize)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sess)
}

type narrativeReq struct {
	Text string `json:"text"`
}

// AddFromNarrative handles POST /api/sessions/:id/narrative.
func (h *PlannerHandler) AddFromNarrative(c *gin.Context) {
	var req narrativeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(c, http.StatusBadRequest, "text is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	entries, items, err := h.planner.AddFromNarrative(ctx, types.ID(c.Param("id")), req.Text)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"schedule_added":  entries,
		"checklist_added": items,
	})
}

type scheduleEntryReq struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Cost     string `json:"cost"`
	Location string `json:"location"`
}

func (r scheduleEntryReq) toEntry() itinerary.ScheduleEntry {
	return itinerary.ScheduleEntry{
		Date:     r.Date,
		Time:     r.Time,
		Activity: r.Activity,
		Cost:     r.Cost,
		Location: r.Location,
	}
}

// AddEntry handles POST /api/sessions/:id/schedule.
func (h *PlannerHandler) AddEntry(c *gin.Context) {
	var req scheduleEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	entry, err := h.planner.AddEntry(c.Request.Context(), types.ID(c.Param("id")), req.toEntry())
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, entry)
}

// UpdateEntry handles PUT /api/sessions/:id/schedule/:entryID.
func (h *PlannerHandler) UpdateEntry(c *gin.Context) {
	var req scheduleEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	entry, err := h.planner.UpdateEntry(c.Request.Context(), types.ID(c.Param("id")),
		types.ID(c.Param("entryID")), req.toEntry())
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, entry)
}

// RemoveEntry handles DELETE /api/sessions/:id/schedule/:entryID.
func (h *PlannerHandler) RemoveEntry(c *gin.Context) {
	err := h.planner.RemoveEntry(c.Request.Context(), types.ID(c.Param("id")), types.ID(c.Param("entryID")))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type nearbyReq struct {
	Category string `json:"category"`
}

// FindNearby handles POST /api/sessions/:id/schedule/:entryID/nearby.
func (h *PlannerHandler) FindNearby(c *gin.Context) {
	var req nearbyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	category, err := itinerary.ParsePlaceCategory(req.Category)
	if err != nil {
		writeError(c, http.StatusBadRequest, "category must be 맛집 or 명소")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), aiCallTimeout)
	defer cancel()

	places, err := h.planner.FindNearby(ctx, types.ID(c.Param("id")), types.ID(c.Param("entryID")), category)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"places": places})
}

type promoteReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// PromoteNearbyPlace handles POST /api/sessions/:id/schedule/:entryID/promote.
func (h *PlannerHandler) PromoteNearbyPlace(c *gin.Context) {
	var req promoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	entry, err := h.planner.PromoteNearbyPlace(c.Request.Context(), types.ID(c.Param("id")),
		types.ID(c.Param("entryID")), itinerary.NearbyPlace{
			Name:        req.Name,
			Description: req.Description,
			Address:     req.Address,
		})
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, entry)
}

type checklistReq struct {
	Text string `json:"text"`
}

// AddChecklistItem handles POST /api/sessions/:id/checklist.
func (h *PlannerHandler) AddChecklistItem(c *gin.Context) {
	var req checklistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	item, err := h.planner.AddChecklistItem(c.Request.Context(), types.ID(c.Param("id")), req.Text)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, item)
}

// UpdateChecklistItem handles PUT /api/sessions/:id/checklist/:itemID.
func (h *PlannerHandler) UpdateChecklistItem(c *gin.Context) {
	var req checklistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	item, err := h.planner.UpdateChecklistItem(c.Request.Context(), types.ID(c.Param("id")),
		types.ID(c.Param("itemID")), req.Text)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, item)
}

// ToggleChecklistItem handles POST /api/sessions/:id/checklist/:itemID/toggle.
func (h *PlannerHandler) ToggleChecklistItem(c *gin.Context) {
	item, err := h.planner.ToggleChecklistItem(c.Request.Context(), types.ID(c.Param("id")), types.ID(c.Param("itemID")))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, item)
}

// RemoveChecklistItem handles DELETE /api/sessions/:id/checklist/:itemID.
func (h *PlannerHandler) RemoveChecklistItem(c *gin.Context) {
	err := h.planner.RemoveChecklistItem(c.Request.Context(), types.ID(c.Param("id")), types.ID(c.Param("itemID")))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
