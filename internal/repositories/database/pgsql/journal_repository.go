package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	"github.com/novaerp/accounting_backend/internal/models"
	"github.com/novaerp/accounting_backend/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry inserts the entry row and every detail row inside one database
// transaction. Nothing persists if any insert fails.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, details []domain.JournalDetail) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, reference_no, description, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.EntryDate,
		m.ReferenceNo,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reference number %s already exists", apperrors.ErrDuplicate, m.ReferenceNo)
		}
		return fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	detailQuery := `
		INSERT INTO journal_details (detail_id, entry_id, account_id, debit, credit, description, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, d := range details {
		md := mapping.ToModelJournalDetail(d)
		batch.Queue(detailQuery,
			md.DetailID,
			md.EntryID,
			md.AccountID,
			md.Debit,
			md.Credit,
			md.Description,
			md.LineNo,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert journal details for entry %s: %w", m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry with its detail lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, entry_date, reference_no, description, status, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.ReferenceNo,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	details, err := r.FindDetailsByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.Details = details
	return &entry, nil
}

// FindDetailsByEntryID retrieves the detail lines of one entry in line order,
// each annotated with the account's code and name.
func (r *PgxJournalRepository) FindDetailsByEntryID(ctx context.Context, entryID string) ([]domain.JournalDetail, error) {
	query := `
		SELECT d.detail_id, d.entry_id, d.account_id, a.code, a.name, d.debit, d.credit, d.description, d.line_no
		FROM journal_details d
		JOIN chart_of_accounts a ON a.account_id = d.account_id
		WHERE d.entry_id = $1
		ORDER BY d.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query details for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	details := []domain.JournalDetail{}
	for rows.Next() {
		var md models.JournalDetail
		err := rows.Scan(
			&md.DetailID,
			&md.EntryID,
			&md.AccountID,
			&md.AccountCode,
			&md.AccountName,
			&md.Debit,
			&md.Credit,
			&md.Description,
			&md.LineNo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detail row for entry %s: %w", entryID, err)
		}
		details = append(details, mapping.ToDomainJournalDetail(md))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detail rows for entry %s: %w", entryID, err)
	}

	return details, nil
}

// ListEntries retrieves entries matching the filter, newest first, with
// details eagerly loaded in one follow-up query.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, entry_date, reference_no, description, status, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE 1=1
	`
	args := []any{}
	argN := 1
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND entry_date >= $%d", argN)
		args = append(args, *filter.StartDate)
		argN++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND entry_date <= $%d", argN)
		args = append(args, *filter.EndDate)
		argN++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, string(*filter.Status))
		argN++
	}
	query += " ORDER BY entry_date DESC, entry_id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	entryIDs := []string{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntryDate,
			&m.ReferenceNo,
			&m.Description,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
		entryIDs = append(entryIDs, m.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	detailsByEntry, err := r.findDetailsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Details = detailsByEntry[entries[i].EntryID]
	}

	return entries, nil
}

// findDetailsByEntryIDs fetches the details of many entries in one query,
// grouped by entry ID.
func (r *PgxJournalRepository) findDetailsByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalDetail, error) {
	query := `
		SELECT d.detail_id, d.entry_id, d.account_id, a.code, a.name, d.debit, d.credit, d.description, d.line_no
		FROM journal_details d
		JOIN chart_of_accounts a ON a.account_id = d.account_id
		WHERE d.entry_id = ANY($1)
		ORDER BY d.entry_id, d.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query details for entry batch: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.JournalDetail, len(entryIDs))
	for rows.Next() {
		var md models.JournalDetail
		err := rows.Scan(
			&md.DetailID,
			&md.EntryID,
			&md.AccountID,
			&md.AccountCode,
			&md.AccountName,
			&md.Debit,
			&md.Credit,
			&md.Description,
			&md.LineNo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detail row during batch fetch: %w", err)
		}
		grouped[md.EntryID] = append(grouped[md.EntryID], mapping.ToDomainJournalDetail(md))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detail rows during batch fetch: %w", err)
	}

	return grouped, nil
}

// UpdateEntry updates a journal entry's date and description.
func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	query := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update journal entry %s: %w", m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEntryStatus moves an entry to a new status.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of journal entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
