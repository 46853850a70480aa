package dto

import (
	"io"
	"time"

	"github.com/bouesti/journal-repository/internal/core/domain"
)

// SubmitJournalRequest carries the metadata fields of a journal submission.
// The PDF itself arrives separately as an UploadedFile.
type SubmitJournalRequest struct {
	Title      string  `form:"title" binding:"required,max=255"`
	Department string  `form:"department" binding:"required,max=255"`
	Supervisor *string `form:"supervisor" binding:"omitempty,max=100"`
	Year       *int    `form:"year" binding:"omitempty,gt=0"`
	Keywords   *string `form:"keywords" binding:"omitempty,max=255"`
	Abstract   *string `form:"abstract"`
	DOI        *string `form:"doi" binding:"omitempty,max=100"`
}

// UploadedFile is the boundary representation of an uploaded artifact.
type UploadedFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// JournalResponse is the public view of a journal record.
type JournalResponse struct {
	JournalID  string    `json:"journalID"`
	OwnerID    string    `json:"ownerID"`
	AuthorID   string    `json:"authorID"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Abstract   *string   `json:"abstract,omitempty"`
	Keywords   *string   `json:"keywords,omitempty"`
	Supervisor *string   `json:"supervisor,omitempty"`
	Year       *int      `json:"year,omitempty"`
	PDFURL     string    `json:"pdfURL"`
	DOI        string    `json:"doi"`
	Status     string    `json:"status"`
	UploadDate time.Time `json:"uploadDate"`
}

// ToJournalResponse converts a domain.Journal to its response DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:  j.JournalID,
		OwnerID:    j.OwnerID,
		AuthorID:   j.AuthorID,
		Title:      j.Title,
		Department: j.Department,
		Abstract:   j.Abstract,
		Keywords:   j.Keywords,
		Supervisor: j.Supervisor,
		Year:       j.Year,
		PDFURL:     j.PDFURL,
		DOI:        j.DOI,
		Status:     string(j.Status),
		UploadDate: j.UploadDate,
	}
}

// ToJournalResponseList converts a slice of domain journals.
func ToJournalResponseList(journals []domain.Journal) []JournalResponse {
	out := make([]JournalResponse, len(journals))
	for i := range journals {
		out[i] = ToJournalResponse(&journals[i])
	}
	return out
}

// ListJournalsResponse wraps a list of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// SearchJournalsResponse wraps public search results.
type SearchJournalsResponse struct {
	Query   string            `json:"query"`
	Results []JournalResponse `json:"results"`
}

// LatestJournalsParams defines query parameters for the homepage listing.
// Limit is pre-seeded from configuration; a missing query parameter keeps it.
type LatestJournalsParams struct {
	Limit int `form:"limit" binding:"omitempty,gt=0,lte=50"`
}
