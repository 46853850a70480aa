package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/bouesti/journal-repository/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the authenticated self-service endpoints.
type dashboardHandler struct {
	userService      portssvc.UserSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(us portssvc.UserSvcFacade, ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{userService: us, dashboardService: ds}
}

// registerDashboardRoutes sets up the /me routes.
func registerDashboardRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(userService, dashboardService)

	me := rg.Group("/me")
	{
		me.GET("/dashboard", h.myDashboard)
		me.GET("/journals", h.myJournals)
		me.PUT("/profile", h.updateProfile)
		me.POST("/password", h.changePassword)
	}
}

// myDashboard godoc
// @Summary User dashboard
// @Description Returns the caller's per-status journal counts together with their submissions.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/dashboard [get]
func (h *dashboardHandler) myDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	counts, err := h.dashboardService.DashboardCounts(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute dashboard counts")
		return
	}

	journals, err := h.dashboardService.MyJournals(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list your journals")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Uploaded: counts.Total,
		Pending:  counts.Pending,
		Approved: counts.Approved,
		Rejected: counts.Rejected,
		Journals: dto.ToJournalResponseList(journals),
	})
}

// myJournals godoc
// @Summary List own journals
// @Description Returns every journal the caller has uploaded, newest first.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/journals [get]
func (h *dashboardHandler) myJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	journals, err := h.dashboardService.MyJournals(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list your journals")
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalsResponse{Journals: dto.ToJournalResponseList(journals)})
}

// updateProfile godoc
// @Summary Update profile
// @Description Updates the caller's own profile fields. Omitted fields are left unchanged.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /me/profile [put]
func (h *dashboardHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the old password and replaces it with the new one.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong old password"
// @Security BearerAuth
// @Router /me/password [post]
func (h *dashboardHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), callerID, req); err != nil {
		respondError(c, logger, err, "Failed to change password")
		return
	}

	logger.Info("Password changed", slog.String("user_id", callerID))
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
