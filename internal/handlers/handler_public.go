package handlers

import (
	"net/http"

	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/bouesti/journal-repository/internal/middleware"
	"github.com/bouesti/journal-repository/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// publicHandler serves the unauthenticated read-only journal views.
type publicHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	latestLimit      int
}

func newPublicHandler(ds portssvc.DashboardSvcFacade, cfg *config.Config) *publicHandler {
	return &publicHandler{dashboardService: ds, latestLimit: cfg.HomeLatestLimit}
}

// registerPublicRoutes sets up the public homepage and search endpoints.
// These deliberately sit outside the authenticated group.
func registerPublicRoutes(r *gin.Engine, cfg *config.Config, dashboardService portssvc.DashboardSvcFacade) {
	h := newPublicHandler(dashboardService, cfg)

	public := r.Group("/api/v1/journals")
	{
		public.GET("/latest", h.latestJournals)
		public.GET("/search", h.searchJournals)
	}
}

// latestJournals godoc
// @Summary Latest approved journals
// @Description Returns the most recently uploaded approved journals for the homepage.
// @Tags public
// @Produce json
// @Param limit query int false "Maximum number of journals" default(6) maximum(50)
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journals/latest [get]
func (h *publicHandler) latestJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.LatestJournalsParams{Limit: h.latestLimit}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	journals, err := h.dashboardService.LatestApproved(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list latest journals")
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalsResponse{Journals: dto.ToJournalResponseList(journals)})
}

// searchJournals godoc
// @Summary Search approved journals
// @Description Matches the query against title, author username, department and keywords. An empty query returns no results.
// @Tags public
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} dto.SearchJournalsResponse
// @Failure 500 {object} ErrorResponse
// @Router /journals/search [get]
func (h *publicHandler) searchJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	journals, err := h.dashboardService.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, logger, err, "Failed to search journals")
		return
	}

	c.JSON(http.StatusOK, dto.SearchJournalsResponse{
		Query:   query,
		Results: dto.ToJournalResponseList(journals),
	})
}
