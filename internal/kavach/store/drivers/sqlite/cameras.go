package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type camerasRepo struct {
	db dbtx
}

const cameraColumns = `id, name, location, zone, status, created_at, updated_at`

func scanCamera(scan func(...any) error) (domain.Camera, error) {
	var c domain.Camera
	var zone sql.NullString
	err := scan(&c.ID, &c.Name, &c.Location, &zone, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Camera{}, err
	}
	c.Zone = mapNullString(zone)
	return c, nil
}

func (r *camerasRepo) GetCamera(ctx context.Context, id string) (domain.Camera, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cameraColumns+` FROM cameras WHERE id = ?`, id)
	c, err := scanCamera(row.Scan)
	if err != nil {
		return domain.Camera{}, mapNotFound(err)
	}
	return c, nil
}

func (r *camerasRepo) ListCameras(ctx context.Context) ([]domain.Camera, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cameraColumns+` FROM cameras ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Camera
	for rows.Next() {
		c, err := scanCamera(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *camerasRepo) CreateCamera(ctx context.Context, c domain.Camera) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cameras (id, name, location, zone, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Location, mapStringNull(c.Zone), c.Status, c.CreatedAt, c.UpdatedAt)
	return mapConstraint(err)
}

func (r *camerasRepo) UpdateCamera(ctx context.Context, c domain.Camera) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cameras SET name = ?, location = ?, zone = ?, status = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Location, mapStringNull(c.Zone), c.Status, time.Now().UTC(), c.ID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *camerasRepo) UpdateCameraStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cameras SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *camerasRepo) DeleteCamera(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cameras WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
