package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bouesti/journal-repository/internal/core/domain"
	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/bouesti/journal-repository/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves the administrator review endpoints. The services
// re-check admin rights on every call, so the middleware here is a fast
// path rather than the authority.
type adminHandler struct {
	journalService   portssvc.JournalSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

func newAdminHandler(js portssvc.JournalSvcFacade, ds portssvc.DashboardSvcFacade) *adminHandler {
	return &adminHandler{journalService: js, dashboardService: ds}
}

// registerAdminRoutes sets up the /admin routes.
func registerAdminRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, dashboardService portssvc.DashboardSvcFacade) {
	h := newAdminHandler(journalService, dashboardService)

	admin := rg.Group("/admin", middleware.AdminRequired())
	{
		admin.GET("/overview", h.overview)
		admin.GET("/journals/:status", h.listByStatus)
		admin.POST("/journals/:journalID/approve", h.approve)
		admin.POST("/journals/:journalID/reject", h.reject)
	}
}

// overview godoc
// @Summary Admin overview
// @Description Returns the full review queue grouped by status plus the distinct uploader count.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminOverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/overview [get]
func (h *adminHandler) overview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, _ := middleware.GetUserIDFromContext(c)

	overview, err := h.dashboardService.AdminOverview(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, logger, err, "Failed to load admin overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminOverviewResponse(overview))
}

// listByStatus godoc
// @Summary List journals by status
// @Description Returns every journal in the given review status (pending, approved or rejected).
// @Tags admin
// @Produce json
// @Param status path string true "Journal status" Enums(pending, approved, rejected)
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/journals/{status} [get]
func (h *adminHandler) listByStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, _ := middleware.GetUserIDFromContext(c)

	status, ok := parseStatus(c.Param("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Unknown journal status %q", c.Param("status"))})
		return
	}

	journals, err := h.dashboardService.ListByStatus(c.Request.Context(), callerID, status)
	if err != nil {
		respondError(c, logger, err, "Failed to list journals by status")
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalsResponse{Journals: dto.ToJournalResponseList(journals)})
}

// approve godoc
// @Summary Approve a journal
// @Description Marks the journal as Approved, making it publicly visible. Any prior decision is overwritten.
// @Tags admin
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.DecisionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/journals/{journalID}/approve [post]
func (h *adminHandler) approve(c *gin.Context) {
	h.decide(c, h.journalService.Approve, "approved")
}

// reject godoc
// @Summary Reject a journal
// @Description Marks the journal as Rejected. Any prior decision is overwritten.
// @Tags admin
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.DecisionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/journals/{journalID}/reject [post]
func (h *adminHandler) reject(c *gin.Context) {
	h.decide(c, h.journalService.Reject, "rejected")
}

func (h *adminHandler) decide(c *gin.Context, decide func(ctx context.Context, callerID, journalID string) (*domain.Journal, error), verb string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, _ := middleware.GetUserIDFromContext(c)
	journalID := c.Param("journalID")

	journal, err := decide(c.Request.Context(), callerID, journalID)
	if err != nil {
		respondError(c, logger, err, fmt.Sprintf("Failed to update journal %s", journalID))
		return
	}

	c.JSON(http.StatusOK, dto.DecisionResponse{
		JournalID: journal.JournalID,
		Title:     journal.Title,
		Status:    string(journal.Status),
		Message:   fmt.Sprintf("Journal %q has been %s.", journal.Title, verb),
	})
}

// parseStatus maps a path segment onto a journal status, case-insensitively.
func parseStatus(raw string) (domain.JournalStatus, bool) {
	switch strings.ToLower(raw) {
	case "pending":
		return domain.StatusPending, true
	case "approved":
		return domain.StatusApproved, true
	case "rejected":
		return domain.StatusRejected, true
	default:
		return "", false
	}
}
