package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type safeRoutesRepo struct {
	db dbtx
}

const safeRouteColumns = `id, from_point, to_point, distance, estimated_time, accessibility, waypoints, location_ids, created_at, updated_at`

func scanSafeRoute(scan func(...any) error) (domain.SafeRoute, error) {
	var sr domain.SafeRoute
	var distance, estimatedTime sql.NullString
	var waypoints, locationIDs string
	err := scan(&sr.ID, &sr.From, &sr.To, &distance, &estimatedTime,
		&sr.Accessibility, &waypoints, &locationIDs, &sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		return domain.SafeRoute{}, err
	}
	sr.Distance = mapNullString(distance)
	sr.EstimatedTime = mapNullString(estimatedTime)
	sr.Waypoints = unmarshalList(waypoints)
	sr.LocationIDs = unmarshalList(locationIDs)
	return sr, nil
}

func (r *safeRoutesRepo) GetSafeRoute(ctx context.Context, id string) (domain.SafeRoute, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+safeRouteColumns+` FROM safe_routes WHERE id = ?`, id)
	sr, err := scanSafeRoute(row.Scan)
	if err != nil {
		return domain.SafeRoute{}, mapNotFound(err)
	}
	return sr, nil
}

func (r *safeRoutesRepo) ListSafeRoutes(ctx context.Context) ([]domain.SafeRoute, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+safeRouteColumns+` FROM safe_routes ORDER BY from_point, to_point`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SafeRoute
	for rows.Next() {
		sr, err := scanSafeRoute(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *safeRoutesRepo) CreateSafeRoute(ctx context.Context, sr domain.SafeRoute) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO safe_routes (id, from_point, to_point, distance, estimated_time, accessibility, waypoints, location_ids, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sr.ID, sr.From, sr.To, mapStringNull(sr.Distance), mapStringNull(sr.EstimatedTime),
		sr.Accessibility, marshalList(sr.Waypoints), marshalList(sr.LocationIDs),
		sr.CreatedAt, sr.UpdatedAt)
	return mapConstraint(err)
}

func (r *safeRoutesRepo) UpdateSafeRoute(ctx context.Context, sr domain.SafeRoute) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE safe_routes SET from_point = ?, to_point = ?, distance = ?, estimated_time = ?, accessibility = ?, waypoints = ?, location_ids = ?, updated_at = ?
		 WHERE id = ?`,
		sr.From, sr.To, mapStringNull(sr.Distance), mapStringNull(sr.EstimatedTime),
		sr.Accessibility, marshalList(sr.Waypoints), marshalList(sr.LocationIDs),
		time.Now().UTC(), sr.ID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *safeRoutesRepo) DeleteSafeRoute(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM safe_routes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
