package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type healthUnitsRepo struct {
	db dbtx
}

const healthUnitColumns = `id, name, location, staff_count, status, equipment, contact, created_at, updated_at`

func scanHealthUnit(scan func(...any) error) (domain.HealthUnit, error) {
	var h domain.HealthUnit
	var equipment string
	var contact sql.NullString
	err := scan(&h.ID, &h.Name, &h.Location, &h.StaffCount, &h.Status, &equipment, &contact, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.HealthUnit{}, err
	}
	h.Equipment = unmarshalList(equipment)
	h.Contact = mapNullString(contact)
	return h, nil
}

func (r *healthUnitsRepo) GetHealthUnit(ctx context.Context, id string) (domain.HealthUnit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+healthUnitColumns+` FROM health_units WHERE id = ?`, id)
	h, err := scanHealthUnit(row.Scan)
	if err != nil {
		return domain.HealthUnit{}, mapNotFound(err)
	}
	return h, nil
}

func (r *healthUnitsRepo) ListHealthUnits(ctx context.Context) ([]domain.HealthUnit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+healthUnitColumns+` FROM health_units ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HealthUnit
	for rows.Next() {
		h, err := scanHealthUnit(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *healthUnitsRepo) CreateHealthUnit(ctx context.Context, h domain.HealthUnit) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO health_units (id, name, location, staff_count, status, equipment, contact, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Location, h.StaffCount, h.Status,
		marshalList(h.Equipment), mapStringNull(h.Contact), h.CreatedAt, h.UpdatedAt)
	return mapConstraint(err)
}

func (r *healthUnitsRepo) UpdateHealthUnit(ctx context.Context, h domain.HealthUnit) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE health_units SET name = ?, location = ?, staff_count = ?, status = ?, equipment = ?, contact = ?, updated_at = ?
		 WHERE id = ?`,
		h.Name, h.Location, h.StaffCount, h.Status,
		marshalList(h.Equipment), mapStringNull(h.Contact), time.Now().UTC(), h.ID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *healthUnitsRepo) UpdateHealthUnitStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE health_units SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *healthUnitsRepo) DeleteHealthUnit(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_units WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
