package models

import "time"

// Journal mirrors the journals table.
type Journal struct {
	JournalID  string    `db:"journal_id"`
	OwnerID    string    `db:"owner_id"`
	AuthorID   string    `db:"author_id"`
	Title      string    `db:"title"`
	Department string    `db:"department"`
	Abstract   *string   `db:"abstract"`
	Keywords   *string   `db:"keywords"`
	Supervisor *string   `db:"supervisor"`
	Year       *int      `db:"year"`
	PDFKey     string    `db:"pdf_key"`
	PDFURL     string    `db:"pdf_url"`
	DOI        string    `db:"doi"`
	Status     string    `db:"status"`
	UploadDate time.Time `db:"upload_date"`
}
