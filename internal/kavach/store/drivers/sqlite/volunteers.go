package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type volunteersRepo struct {
	db dbtx
}

const volunteerColumns = `id, user_id, name, skills, languages, location, availability, contact, blood_group, rating, created_at, updated_at`

func scanVolunteer(scan func(...any) error) (domain.Volunteer, error) {
	var v domain.Volunteer
	var skills, languages string
	var location, contact, bloodGroup sql.NullString
	err := scan(&v.ID, &v.UserID, &v.Name, &skills, &languages, &location,
		&v.Availability, &contact, &bloodGroup, &v.Rating, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Volunteer{}, err
	}
	v.Skills = unmarshalList(skills)
	v.Languages = unmarshalList(languages)
	v.Location = mapNullString(location)
	v.Contact = mapNullString(contact)
	v.BloodGroup = mapNullString(bloodGroup)
	return v, nil
}

func (r *volunteersRepo) GetVolunteer(ctx context.Context, id string) (domain.Volunteer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE id = ?`, id)
	v, err := scanVolunteer(row.Scan)
	if err != nil {
		return domain.Volunteer{}, mapNotFound(err)
	}
	return v, nil
}

func (r *volunteersRepo) ListVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVolunteers(rows)
}

// SearchVolunteersBySkill does a coarse SQL prefilter on the JSON text, then
// an exact case-insensitive match in Go so "first aid" never matches
// "first aid training" backwards.
func (r *volunteersRepo) SearchVolunteersBySkill(ctx context.Context, skill string) ([]domain.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE skills LIKE ? ORDER BY rating DESC`,
		"%"+skill+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := collectVolunteers(rows)
	if err != nil {
		return nil, err
	}

	var out []domain.Volunteer
	for _, v := range all {
		for _, s := range v.Skills {
			if strings.EqualFold(s, skill) {
				out = append(out, v)
				break
			}
		}
	}
	return out, nil
}

func collectVolunteers(rows *sql.Rows) ([]domain.Volunteer, error) {
	var out []domain.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *volunteersRepo) CreateVolunteer(ctx context.Context, v domain.Volunteer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO volunteers (id, user_id, name, skills, languages, location, availability, contact, blood_group, rating, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.UserID, v.Name, marshalList(v.Skills), marshalList(v.Languages),
		mapStringNull(v.Location), v.Availability, mapStringNull(v.Contact),
		mapStringNull(v.BloodGroup), v.Rating, v.CreatedAt, v.UpdatedAt)
	return mapConstraint(err)
}

func (r *volunteersRepo) UpdateVolunteer(ctx context.Context, v domain.Volunteer) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE volunteers SET name = ?, skills = ?, languages = ?, location = ?, availability = ?, contact = ?, blood_group = ?, rating = ?, updated_at = ?
		 WHERE id = ?`,
		v.Name, marshalList(v.Skills), marshalList(v.Languages),
		mapStringNull(v.Location), v.Availability, mapStringNull(v.Contact),
		mapStringNull(v.BloodGroup), v.Rating, time.Now().UTC(), v.ID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *volunteersRepo) UpdateVolunteerAvailability(ctx context.Context, id, availability string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE volunteers SET availability = ?, updated_at = ? WHERE id = ?`,
		availability, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}

func (r *volunteersRepo) DeleteVolunteer(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM volunteers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
