package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_pg.go -package=pg github.com/GlebRadaev/teamvest/internal/pg Database,TXManager

// Database is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type (
	txKey     struct{}
	commitKey struct{}
)

type commitHooks struct {
	fns []func()
}

// Conn routes every statement to the transaction stored in the context, or to
// the pool when there is none.
type Conn struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Conn {
	return &Conn{pool: pool}
}

func (c *Conn) db(ctx context.Context) Database {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return c.pool
}

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.db(ctx).Exec(ctx, sql, args...)
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.db(ctx).Query(ctx, sql, args...)
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.db(ctx).QueryRow(ctx, sql, args...)
}

func (c *Conn) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return c.db(ctx).CopyFrom(ctx, tableName, columnNames, rowSrc)
}

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Manager struct {
	pool txBeginner
	opts pgx.TxOptions
}

func NewTXManager(pool txBeginner) *Manager {
	return &Manager{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// Begin runs fn inside a transaction. A call made with a context that already
// carries a transaction joins it, so services compose into one atomic unit.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	hooks := &commitHooks{}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("rollback failed", zap.Error(rbErr))
			}
			return
		}
		if cErr := tx.Commit(ctx); cErr != nil {
			err = fmt.Errorf("commit transaction: %w", cErr)
			return
		}
		for _, hook := range hooks.fns {
			hook()
		}
	}()

	txCtx := context.WithValue(context.WithValue(ctx, txKey{}, tx), commitKey{}, hooks)
	return fn(txCtx)
}

// AfterCommit defers fn until the outermost transaction in ctx commits. A
// rolled back transaction drops fn. Without a transaction fn runs at once.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(commitKey{}).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn()
}

// InTx reports whether ctx carries a transaction started by a Manager.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(pgx.Tx)
	return ok
}
