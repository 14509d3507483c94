package pg

import "context"

// Advisory lock keys. Structural tree changes take TreeLockKey exclusively,
// aggregate-only updates take it shared.
const (
	TreeLockKey int64 = 0x7472656500000001
)

// LockExclusive blocks until the transaction-scoped advisory lock is held. It
// is released on commit or rollback, so it must run inside TXManager.Begin.
func LockExclusive(ctx context.Context, db Database, key int64) error {
	_, err := db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key)
	return err
}

func LockShared(ctx context.Context, db Database, key int64) error {
	_, err := db.Exec(ctx, "SELECT pg_advisory_xact_lock_shared($1)", key)
	return err
}
