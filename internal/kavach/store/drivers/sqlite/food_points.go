package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type foodPointsRepo struct {
	db dbtx
}

const foodPointColumns = `id, donor_id, donor_name, donor_contact, food_type, description, location, portions, time_available, status, created_at, updated_at`

func scanFoodPoint(scan func(...any) error) (domain.FoodPoint, error) {
	var f domain.FoodPoint
	var contact, desc, timeAvail sql.NullString
	err := scan(&f.ID, &f.DonorID, &f.DonorName, &contact, &f.FoodType, &desc,
		&f.Location, &f.Portions, &timeAvail, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.FoodPoint{}, err
	}
	f.DonorContact = mapNullString(contact)
	f.Description = mapNullString(desc)
	f.TimeAvailable = mapNullString(timeAvail)
	return f, nil
}

func (r *foodPointsRepo) GetFoodPoint(ctx context.Context, id string) (domain.FoodPoint, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+foodPointColumns+` FROM food_points WHERE id = ?`, id)
	f, err := scanFoodPoint(row.Scan)
	if err != nil {
		return domain.FoodPoint{}, mapNotFound(err)
	}
	return f, nil
}

func (r *foodPointsRepo) ListFoodPoints(ctx context.Context) ([]domain.FoodPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+foodPointColumns+` FROM food_points ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FoodPoint
	for rows.Next() {
		f, err := scanFoodPoint(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *foodPointsRepo) CreateFoodPoint(ctx context.Context, f domain.FoodPoint) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO food_points (id, donor_id, donor_name, donor_contact, food_type, description, location, portions, time_available, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.DonorID, f.DonorName, mapStringNull(f.DonorContact),
		f.FoodType, mapStringNull(f.Description), f.Location, f.Portions,
		mapStringNull(f.TimeAvailable), f.Status, f.CreatedAt, f.UpdatedAt)
	return mapConstraint(err)
}

func (r *foodPointsRepo) UpdateFoodPointStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE food_points SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *foodPointsRepo) DeleteFoodPoint(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_points WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
