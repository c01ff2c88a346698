package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type lostFoundRepo struct {
	db dbtx
}

const lostFoundColumns = `id, type, title, description, last_seen_location, category, reporter_id, reporter_name, reporter_contact, status, created_at, updated_at`

func scanLostFound(scan func(...any) error) (domain.LostFoundReport, error) {
	var lf domain.LostFoundReport
	var desc, lastSeen, category, contact sql.NullString
	err := scan(&lf.ID, &lf.Type, &lf.Title, &desc, &lastSeen, &category,
		&lf.ReporterID, &lf.ReporterName, &contact, &lf.Status, &lf.CreatedAt, &lf.UpdatedAt)
	if err != nil {
		return domain.LostFoundReport{}, err
	}
	lf.Description = mapNullString(desc)
	lf.LastSeenLocation = mapNullString(lastSeen)
	lf.Category = mapNullString(category)
	lf.ReporterContact = mapNullString(contact)
	return lf, nil
}

func (r *lostFoundRepo) GetLostFoundReport(ctx context.Context, id string) (domain.LostFoundReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+lostFoundColumns+` FROM lost_found WHERE id = ?`, id)
	lf, err := scanLostFound(row.Scan)
	if err != nil {
		return domain.LostFoundReport{}, mapNotFound(err)
	}
	return lf, nil
}

func (r *lostFoundRepo) ListLostFoundReports(ctx context.Context) ([]domain.LostFoundReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+lostFoundColumns+` FROM lost_found ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LostFoundReport
	for rows.Next() {
		lf, err := scanLostFound(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, lf)
	}
	return out, rows.Err()
}

func (r *lostFoundRepo) CreateLostFoundReport(ctx context.Context, lf domain.LostFoundReport) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lost_found (id, type, title, description, last_seen_location, category, reporter_id, reporter_name, reporter_contact, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lf.ID, lf.Type, lf.Title, mapStringNull(lf.Description),
		mapStringNull(lf.LastSeenLocation), mapStringNull(lf.Category),
		lf.ReporterID, lf.ReporterName, mapStringNull(lf.ReporterContact),
		lf.Status, lf.CreatedAt, lf.UpdatedAt)
	return mapConstraint(err)
}

func (r *lostFoundRepo) UpdateLostFoundStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE lost_found SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *lostFoundRepo) DeleteLostFoundReport(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lost_found WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
