package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type locationsRepo struct {
	db dbtx
}

const locationColumns = `id, name, capacity, current_count, latitude, longitude, created_at, updated_at`

func scanLocation(scan func(...any) error) (domain.Location, error) {
	var l domain.Location
	var lat, lng sql.NullFloat64
	err := scan(&l.ID, &l.Name, &l.Capacity, &l.CurrentCount, &lat, &lng, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.Location{}, err
	}
	l.Latitude = mapNullFloatPtr(lat)
	l.Longitude = mapNullFloatPtr(lng)
	return l, nil
}

func (r *locationsRepo) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	l, err := scanLocation(row.Scan)
	if err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	return l, nil
}

func (r *locationsRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (id, name, capacity, current_count, latitude, longitude, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Capacity, l.CurrentCount,
		mapOptionalFloat(l.Latitude), mapOptionalFloat(l.Longitude),
		l.CreatedAt, l.UpdatedAt)
	return mapConstraint(err)
}

func (r *locationsRepo) UpdateLocation(ctx context.Context, l domain.Location) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE locations SET name = ?, capacity = ?, current_count = ?, latitude = ?, longitude = ?, updated_at = ?
		 WHERE id = ?`,
		l.Name, l.Capacity, l.CurrentCount,
		mapOptionalFloat(l.Latitude), mapOptionalFloat(l.Longitude),
		time.Now().UTC(), l.ID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *locationsRepo) UpdateLocationCount(ctx context.Context, id string, count int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE locations SET current_count = ?, updated_at = ? WHERE id = ?`,
		count, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *locationsRepo) DeleteLocation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
