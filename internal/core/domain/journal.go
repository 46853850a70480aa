package domain

import "time"

// JournalStatus represents the review state of a submitted journal.
type JournalStatus string

const (
	StatusPending  JournalStatus = "Pending"
	StatusApproved JournalStatus = "Approved"
	StatusRejected JournalStatus = "Rejected"
)

// Journal represents a single submitted document with its metadata and review status.
type Journal struct {
	JournalID  string        `json:"journalID"`
	OwnerID    string        `json:"ownerID"`
	AuthorID   string        `json:"authorID"`
	Title      string        `json:"title"`
	Department string        `json:"department"`
	Abstract   *string       `json:"abstract,omitempty"`
	Keywords   *string       `json:"keywords,omitempty"`
	Supervisor *string       `json:"supervisor,omitempty"`
	Year       *int          `json:"year,omitempty"`
	PDFKey     string        `json:"pdfKey"`
	PDFURL     string        `json:"pdfURL"`
	DOI        string        `json:"doi"`
	Status     JournalStatus `json:"status"`
	UploadDate time.Time     `json:"uploadDate"`
}

// DashboardCounts holds per-owner journal totals for the user dashboard.
type DashboardCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// AdminOverview aggregates the global review queue for the administrator dashboard.
type AdminOverview struct {
	Pending        []Journal `json:"pending"`
	Approved       []Journal `json:"approved"`
	Rejected       []Journal `json:"rejected"`
	TotalUploaders int       `json:"totalUploaders"`
}
