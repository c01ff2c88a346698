package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type alertsRepo struct {
	db dbtx
}

const alertColumns = `id, type, location, severity, description, resolved, created_by, created_at, updated_at`

func scanAlert(scan func(...any) error) (domain.Alert, error) {
	var a domain.Alert
	var desc sql.NullString
	err := scan(&a.ID, &a.Type, &a.Location, &a.Severity, &desc, &a.Resolved, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Alert{}, err
	}
	a.Description = mapNullString(desc)
	return a, nil
}

func (r *alertsRepo) GetAlert(ctx context.Context, id string) (domain.Alert, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE id = ?`, id)
	a, err := scanAlert(row.Scan)
	if err != nil {
		return domain.Alert{}, mapNotFound(err)
	}
	return a, nil
}

func (r *alertsRepo) ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY created_at DESC`
	if activeOnly {
		query = `SELECT ` + alertColumns + ` FROM alerts WHERE resolved = 0 ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Alert
	for rows.Next() {
		a, err := scanAlert(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *alertsRepo) CreateAlert(ctx context.Context, a domain.Alert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts (id, type, location, severity, description, resolved, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Type, a.Location, a.Severity, mapStringNull(a.Description),
		a.Resolved, a.CreatedBy, a.CreatedAt, a.UpdatedAt)
	return mapConstraint(err)
}

func (r *alertsRepo) UpdateAlert(ctx context.Context, a domain.Alert) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE alerts SET type = ?, location = ?, severity = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		a.Type, a.Location, a.Severity, mapStringNull(a.Description), time.Now().UTC(), a.ID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *alertsRepo) ResolveAlert(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE alerts SET resolved = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *alertsRepo) DeleteAlert(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alerts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *alertsRepo) CountActiveAlerts(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alerts WHERE resolved = 0`).Scan(&n)
	return n, err
}
