package handlers

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/bouesti/journal-repository/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles journal submission and retrieval.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers the authenticated journal routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.submitJournal)
		journals.GET("/:journalID", h.getJournal)
	}
}

// submitJournalForm binds the multipart submission: metadata fields plus the
// PDF itself. The pdffile rule rejects non-.pdf filenames at the boundary;
// the lifecycle engine re-validates before persisting.
type submitJournalForm struct {
	dto.SubmitJournalRequest
	PDFFile *multipart.FileHeader `form:"pdf_file" binding:"required,pdffile"`
}

// submitJournal godoc
// @Summary Submit a journal
// @Description Uploads a PDF with metadata; the submission enters the review queue in Pending status.
// @Tags journals
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param department formData string true "Department"
// @Param supervisor formData string false "Supervisor"
// @Param year formData int false "Publication year"
// @Param keywords formData string false "Keywords"
// @Param abstract formData string false "Abstract"
// @Param doi formData string false "Explicit DOI (generated when omitted)"
// @Param pdf_file formData file true "PDF document"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "DOI already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) submitJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var form submitJournalForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please upload a valid PDF file: " + err.Error()})
		return
	}

	file, err := form.PDFFile.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read uploaded file"})
		return
	}
	defer file.Close()

	upload := dto.UploadedFile{
		Filename: form.PDFFile.Filename,
		Size:     form.PDFFile.Size,
		Content:  file,
	}

	journal, err := h.journalService.Submit(c.Request.Context(), callerID, form.SubmitJournalRequest, upload)
	if err != nil {
		respondError(c, logger, err, "Failed to submit journal")
		return
	}

	logger.Info("Journal submitted",
		slog.String("journal_id", journal.JournalID),
		slog.String("doi", journal.DOI),
	)
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves a journal. Non-approved journals are only visible to their owner and administrators.
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	callerID, _ := middleware.GetUserIDFromContext(c)

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), callerID, journalID)
	if err != nil {
		respondError(c, logger, err, fmt.Sprintf("Failed to retrieve journal %s", journalID))
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
