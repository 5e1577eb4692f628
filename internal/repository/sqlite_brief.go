package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkowalczyk/briefdesk/internal/domain"
)

// SQLiteBriefRepo implements BriefRepo using a SQLite database. Summary
// columns serve the list view; the full draft rides along as a JSON payload
// so duplication and change requests can rebuild a working draft later.
type SQLiteBriefRepo struct {
	db *sql.DB
}

// NewSQLiteBriefRepo creates a new SQLiteBriefRepo.
func NewSQLiteBriefRepo(db *sql.DB) *SQLiteBriefRepo {
	return &SQLiteBriefRepo{db: db}
}

const briefColumns = `id, title, description, template_badge, due_date_label,
	line_item_count, token_total, has_provisional, status, payload, created_at`

func (r *SQLiteBriefRepo) Create(ctx context.Context, rec *domain.BriefRecord) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("encoding brief payload: %w", err)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = nowUTC()
	}

	query := `INSERT INTO briefs (` + briefColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Title,
		rec.Description,
		rec.TemplateBadge,
		rec.DueDateLabel,
		rec.LineItemCount,
		rec.TokenTotal,
		boolToInt(rec.HasProvisional),
		string(rec.Status),
		string(payload),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting brief: %w", err)
	}
	return nil
}

func (r *SQLiteBriefRepo) GetByID(ctx context.Context, id string) (*domain.BriefRecord, error) {
	query := `SELECT ` + briefColumns + ` FROM briefs WHERE id = ?`
	return r.scanBrief(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteBriefRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.BriefRecord, error) {
	if prefix == "" {
		return nil, ErrNotFound
	}
	query := `SELECT ` + briefColumns + ` FROM briefs WHERE id LIKE ? || '%' LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("resolving brief prefix: %w", err)
	}
	defer rows.Close()

	var matches []*domain.BriefRecord
	for rows.Next() {
		rec, err := r.scanBriefFromRows(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brief prefix matches: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, ErrAmbiguousPrefix
	}
}

func (r *SQLiteBriefRepo) List(ctx context.Context) ([]*domain.BriefRecord, error) {
	query := `SELECT ` + briefColumns + ` FROM briefs ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing briefs: %w", err)
	}
	defer rows.Close()

	var briefs []*domain.BriefRecord
	for rows.Next() {
		rec, err := r.scanBriefFromRows(rows)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating briefs: %w", err)
	}
	return briefs, nil
}

func (r *SQLiteBriefRepo) UpdateStatus(ctx context.Context, id string, status domain.BriefStatus) error {
	if !domain.ValidBriefStatuses[string(status)] {
		return fmt.Errorf("unknown brief status %q", status)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE briefs SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating brief status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating brief status: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteBriefRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM briefs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting brief: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting brief: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteBriefRepo) scanBrief(row *sql.Row) (*domain.BriefRecord, error) {
	rec, err := scanBriefRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *SQLiteBriefRepo) scanBriefFromRows(rows *sql.Rows) (*domain.BriefRecord, error) {
	return scanBriefRow(rows)
}

func scanBriefRow(s rowScanner) (*domain.BriefRecord, error) {
	var (
		rec            domain.BriefRecord
		hasProvisional int
		status         string
		payload        string
		createdAt      string
	)
	err := s.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.TemplateBadge,
		&rec.DueDateLabel,
		&rec.LineItemCount,
		&rec.TokenTotal,
		&hasProvisional,
		&status,
		&payload,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning brief: %w", err)
	}

	rec.HasProvisional = intToBool(hasProvisional)
	rec.Status = domain.BriefStatus(status)

	var draft domain.BriefDraft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		return nil, fmt.Errorf("decoding brief payload: %w", err)
	}
	rec.Payload = &draft

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing brief created_at: %w", err)
	}
	rec.CreatedAt = t

	return &rec, nil
}
