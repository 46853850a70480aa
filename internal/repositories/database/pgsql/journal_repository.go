package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/bouesti/journal-repository/internal/core/domain"
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	"github.com/bouesti/journal-repository/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func toModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:  d.JournalID,
		OwnerID:    d.OwnerID,
		AuthorID:   d.AuthorID,
		Title:      d.Title,
		Department: d.Department,
		Abstract:   d.Abstract,
		Keywords:   d.Keywords,
		Supervisor: d.Supervisor,
		Year:       d.Year,
		PDFKey:     d.PDFKey,
		PDFURL:     d.PDFURL,
		DOI:        d.DOI,
		Status:     string(d.Status),
		UploadDate: d.UploadDate,
	}
}

func toDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:  m.JournalID,
		OwnerID:    m.OwnerID,
		AuthorID:   m.AuthorID,
		Title:      m.Title,
		Department: m.Department,
		Abstract:   m.Abstract,
		Keywords:   m.Keywords,
		Supervisor: m.Supervisor,
		Year:       m.Year,
		PDFKey:     m.PDFKey,
		PDFURL:     m.PDFURL,
		DOI:        m.DOI,
		Status:     domain.JournalStatus(m.Status),
		UploadDate: m.UploadDate,
	}
}

const journalColumns = `journal_id, owner_id, author_id, title, department, abstract, keywords, supervisor, year, pdf_key, pdf_url, doi, status, upload_date`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.OwnerID,
		&m.AuthorID,
		&m.Title,
		&m.Department,
		&m.Abstract,
		&m.Keywords,
		&m.Supervisor,
		&m.Year,
		&m.PDFKey,
		&m.PDFURL,
		&m.DOI,
		&m.Status,
		&m.UploadDate,
	)
	return m, err
}

func (r *PgxJournalRepository) queryJournals(ctx context.Context, query string, args ...any) ([]domain.Journal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, toDomainJournal(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", rows.Err())
	}
	return journals, nil
}

// SaveJournal inserts a new journal. The unique index on doi makes this
// insert the atomic check-then-insert for DOI uniqueness; collisions come
// back as ErrDuplicate.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	m := toModelJournal(journal)
	query := `
        INSERT INTO journals (` + journalColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.JournalID,
		m.OwnerID,
		m.AuthorID,
		m.Title,
		m.Department,
		m.Abstract,
		m.Keywords,
		m.Supervisor,
		m.Year,
		m.PDFKey,
		m.PDFURL,
		m.DOI,
		m.Status,
		m.UploadDate,
	)
	if err != nil {
		if terr := translateError(err); errors.Is(terr, apperrors.ErrDuplicate) {
			return terr
		}
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if terr := translateError(err); errors.Is(terr, apperrors.ErrNotFound) {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	j := toDomainJournal(m)
	return &j, nil
}

// UpdateJournalStatus overwrites the status unconditionally; concurrent
// decisions are last-writer-wins.
func (r *PgxJournalRepository) UpdateJournalStatus(ctx context.Context, journalID string, status domain.JournalStatus) error {
	query := `UPDATE journals SET status = $1 WHERE journal_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), journalID)
	if err != nil {
		return fmt.Errorf("failed to update journal status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxJournalRepository) FindLatestApproved(ctx context.Context, limit int) ([]domain.Journal, error) {
	query := `
        SELECT ` + journalColumns + `
        FROM journals
        WHERE LOWER(status) = LOWER($1)
        ORDER BY upload_date DESC
        LIMIT $2;
    `
	return r.queryJournals(ctx, query, string(domain.StatusApproved), limit)
}

// likeEscaper neutralizes LIKE metacharacters so user queries always match
// as literal substrings. A trailing backslash left unescaped would also make
// Postgres reject the pattern outright.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *PgxJournalRepository) SearchApproved(ctx context.Context, search string) ([]domain.Journal, error) {
	// Author matching goes through the users table so a search by uploader
	// username works the same way as title/department/keywords matching.
	query := `
        SELECT ` + journalColumnsPrefixed + `
        FROM journals j
        JOIN users u ON u.user_id = j.author_id
        WHERE LOWER(j.status) = LOWER($1)
          AND (
            j.title ILIKE '%' || $2 || '%'
            OR u.username ILIKE '%' || $2 || '%'
            OR j.department ILIKE '%' || $2 || '%'
            OR COALESCE(j.keywords, '') ILIKE '%' || $2 || '%'
          )
        ORDER BY j.upload_date DESC;
    `
	return r.queryJournals(ctx, query, string(domain.StatusApproved), escapeLike(search))
}

const journalColumnsPrefixed = `j.journal_id, j.owner_id, j.author_id, j.title, j.department, j.abstract, j.keywords, j.supervisor, j.year, j.pdf_key, j.pdf_url, j.doi, j.status, j.upload_date`

func (r *PgxJournalRepository) FindJournalsByOwner(ctx context.Context, ownerID string) ([]domain.Journal, error) {
	query := `
        SELECT ` + journalColumns + `
        FROM journals
        WHERE owner_id = $1
        ORDER BY upload_date DESC;
    `
	return r.queryJournals(ctx, query, ownerID)
}

func (r *PgxJournalRepository) FindJournalsByStatus(ctx context.Context, status domain.JournalStatus) ([]domain.Journal, error) {
	query := `
        SELECT ` + journalColumns + `
        FROM journals
        WHERE LOWER(status) = LOWER($1)
        ORDER BY upload_date DESC;
    `
	return r.queryJournals(ctx, query, string(status))
}
