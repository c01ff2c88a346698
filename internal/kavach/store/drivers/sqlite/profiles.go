package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, display_name, phone_number, role, created_at, updated_at
		 FROM profiles WHERE id = ?`, userID)

	var p domain.Profile
	var phone sql.NullString
	err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &phone, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.PhoneNumber = mapNullString(phone)
	return p, nil
}

func (r *profilesRepo) PutProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, display_name, phone_number, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email = excluded.email,
		   display_name = excluded.display_name,
		   phone_number = excluded.phone_number,
		   role = excluded.role,
		   updated_at = excluded.updated_at`,
		p.ID, p.Email, p.DisplayName, mapStringNull(p.PhoneNumber), p.Role, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *profilesRepo) UpdateProfileRole(ctx context.Context, userID, role string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = ?, updated_at = ? WHERE id = ?`,
		role, time.Now().UTC(), userID)
	return err
}
