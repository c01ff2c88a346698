package sqlite

import (
	"context"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

type mfaSessionsRepo struct {
	db dbtx
}

func (r *mfaSessionsRepo) CreateMFASession(ctx context.Context, s domain.MFASession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mfa_sessions (id, user_id, session_id, amr, attempts, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.SessionID, joinList(s.AMR), s.Attempts, s.CreatedAt, s.ExpiresAt)
	return mapConstraint(err)
}

func (r *mfaSessionsRepo) GetMFASession(ctx context.Context, mfaToken string) (domain.MFASession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, session_id, amr, attempts, created_at, expires_at
		 FROM mfa_sessions WHERE id = ? AND expires_at > ?`,
		mfaToken, time.Now().UTC())

	var s domain.MFASession
	var amr string
	err := row.Scan(&s.ID, &s.UserID, &s.SessionID, &amr, &s.Attempts, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return domain.MFASession{}, mapNotFound(err)
	}
	s.AMR = splitList(amr)
	return s, nil
}

func (r *mfaSessionsRepo) IncrementMFASessionAttempts(ctx context.Context, mfaToken string) (domain.MFASession, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE mfa_sessions SET attempts = attempts + 1 WHERE id = ?`, mfaToken)
	if err != nil {
		return domain.MFASession{}, err
	}
	return r.GetMFASession(ctx, mfaToken)
}

func (r *mfaSessionsRepo) DeleteMFASession(ctx context.Context, mfaToken string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM mfa_sessions WHERE id = ?`, mfaToken)
	return err
}

func (r *mfaSessionsRepo) DeleteExpiredMFASessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM mfa_sessions WHERE expires_at < ?`, time.Now().UTC())
	return err
}
