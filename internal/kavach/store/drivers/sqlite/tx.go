package sqlite

import (
	"context"
	"database/sql"

	"github.com/sevasetu/kavach/internal/kavach/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rollbacks; outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                 { return &usersRepo{db: t.tx} }
func (t *txStore) Profiles() store.Profiles           { return &profilesRepo{db: t.tx} }
func (t *txStore) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{db: t.tx} }
func (t *txStore) MFASessions() store.MFASessions     { return &mfaSessionsRepo{db: t.tx} }
func (t *txStore) Locations() store.Locations         { return &locationsRepo{db: t.tx} }
func (t *txStore) Alerts() store.Alerts               { return &alertsRepo{db: t.tx} }
func (t *txStore) SOSAlerts() store.SOSAlerts         { return &sosAlertsRepo{db: t.tx} }
func (t *txStore) HealthUnits() store.HealthUnits     { return &healthUnitsRepo{db: t.tx} }
func (t *txStore) Cameras() store.Cameras             { return &camerasRepo{db: t.tx} }
func (t *txStore) LostFound() store.LostFound         { return &lostFoundRepo{db: t.tx} }
func (t *txStore) Volunteers() store.Volunteers       { return &volunteersRepo{db: t.tx} }
func (t *txStore) FoodPoints() store.FoodPoints       { return &foodPointsRepo{db: t.tx} }
func (t *txStore) HelpRequests() store.HelpRequests   { return &helpRequestsRepo{db: t.tx} }
func (t *txStore) SafeRoutes() store.SafeRoutes       { return &safeRoutesRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts
