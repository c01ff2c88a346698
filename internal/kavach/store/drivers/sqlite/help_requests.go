package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type helpRequestsRepo struct {
	db dbtx
}

const helpRequestColumns = `id, user_id, type, description, location, priority, status, assigned_to, created_at, updated_at`

func scanHelpRequest(scan func(...any) error) (domain.HelpRequest, error) {
	var h domain.HelpRequest
	var desc, location, assignedTo sql.NullString
	err := scan(&h.ID, &h.UserID, &h.Type, &desc, &location, &h.Priority,
		&h.Status, &assignedTo, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.HelpRequest{}, err
	}
	h.Description = mapNullString(desc)
	h.Location = mapNullString(location)
	h.AssignedTo = mapNullString(assignedTo)
	return h, nil
}

func (r *helpRequestsRepo) GetHelpRequest(ctx context.Context, id string) (domain.HelpRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+helpRequestColumns+` FROM help_requests WHERE id = ?`, id)
	h, err := scanHelpRequest(row.Scan)
	if err != nil {
		return domain.HelpRequest{}, mapNotFound(err)
	}
	return h, nil
}

func (r *helpRequestsRepo) ListHelpRequests(ctx context.Context) ([]domain.HelpRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+helpRequestColumns+` FROM help_requests
		 ORDER BY CASE priority WHEN 'high' THEN 0 ELSE 1 END, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HelpRequest
	for rows.Next() {
		h, err := scanHelpRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *helpRequestsRepo) CreateHelpRequest(ctx context.Context, h domain.HelpRequest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO help_requests (id, user_id, type, description, location, priority, status, assigned_to, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.UserID, h.Type, mapStringNull(h.Description), mapStringNull(h.Location),
		h.Priority, h.Status, mapStringNull(h.AssignedTo), h.CreatedAt, h.UpdatedAt)
	return mapConstraint(err)
}

func (r *helpRequestsRepo) UpdateHelpRequestStatus(ctx context.Context, id, status, assignedTo string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE help_requests SET status = ?, assigned_to = ?, updated_at = ? WHERE id = ?`,
		status, mapStringNull(assignedTo), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *helpRequestsRepo) DeleteHelpRequest(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM help_requests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
