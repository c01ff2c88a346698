package sqlite

import (
	"database/sql"

	"github.com/sevasetu/kavach/internal/kavach/store"
)

// requireRowTouched turns a zero-row UPDATE/DELETE into ErrNotFound so
// services can tell a missing record from a successful no-op.
func requireRowTouched(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
