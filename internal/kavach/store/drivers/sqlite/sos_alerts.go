package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type sosAlertsRepo struct {
	db dbtx
}

const sosColumns = `id, user_id, user_name, phone, latitude, longitude, location, status, priority, created_at, updated_at`

func scanSOSAlert(scan func(...any) error) (domain.SOSAlert, error) {
	var s domain.SOSAlert
	var phone sql.NullString
	var lat, lng sql.NullFloat64
	err := scan(&s.ID, &s.UserID, &s.UserName, &phone, &lat, &lng,
		&s.Location, &s.Status, &s.Priority, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.SOSAlert{}, err
	}
	s.Phone = mapNullString(phone)
	s.Latitude = mapNullFloatPtr(lat)
	s.Longitude = mapNullFloatPtr(lng)
	return s, nil
}

func (r *sosAlertsRepo) GetSOSAlert(ctx context.Context, id string) (domain.SOSAlert, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sosColumns+` FROM sos_alerts WHERE id = ?`, id)
	s, err := scanSOSAlert(row.Scan)
	if err != nil {
		return domain.SOSAlert{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sosAlertsRepo) ListSOSAlerts(ctx context.Context, activeOnly bool) ([]domain.SOSAlert, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_alerts ORDER BY created_at DESC`
	if activeOnly {
		query = `SELECT ` + sosColumns + ` FROM sos_alerts WHERE status = 'active' ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SOSAlert
	for rows.Next() {
		s, err := scanSOSAlert(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sosAlertsRepo) CreateSOSAlert(ctx context.Context, s domain.SOSAlert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sos_alerts (id, user_id, user_name, phone, latitude, longitude, location, status, priority, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.UserName, mapStringNull(s.Phone),
		mapOptionalFloat(s.Latitude), mapOptionalFloat(s.Longitude),
		s.Location, s.Status, s.Priority, s.CreatedAt, s.UpdatedAt)
	return mapConstraint(err)
}

func (r *sosAlertsRepo) UpdateSOSAlertStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sos_alerts SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *sosAlertsRepo) ResolveStaleSOSAlerts(ctx context.Context, olderThanSeconds int64) (int64, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(olderThanSeconds) * time.Second)
	res, err := r.db.ExecContext(ctx,
		`UPDATE sos_alerts SET status = 'resolved', updated_at = ?
		 WHERE status = 'active' AND created_at < ?`,
		time.Now().UTC(), cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sosAlertsRepo) CountActiveSOSAlerts(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sos_alerts WHERE status = 'active'`).Scan(&n)
	return n, err
}
