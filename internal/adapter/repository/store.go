package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/pkg/textcodec"
)

var _ repository.TxManager = (*Store)(nil)

type txKey struct{}

type scanFunc func(dest ...any) error

// Store owns the driver shared by every repository and the transaction
// carried in request contexts.
type Store struct {
	drv dialect.Driver
	now func() time.Time
}

func NewStore(drv dialect.Driver) *Store {
	return &Store{drv: drv, now: func() time.Time { return time.Now().UTC() }}
}

// WithTx runs fn in a transaction. A context that already carries one is reused.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(dialect.Tx); ok {
		return fn(ctx)
	}
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", translateError(err))
	}
	return nil
}

func (s *Store) conn(ctx context.Context) dialect.ExecQuerier {
	if tx, ok := ctx.Value(txKey{}).(dialect.Tx); ok {
		return tx
	}
	return s.drv
}

func (s *Store) builder() *entsql.DialectBuilder {
	return entsql.Dialect(s.drv.Dialect())
}

func (s *Store) postgres() bool {
	return s.drv.Dialect() == dialect.Postgres
}

// lock adds a row lock where the dialect has one. SQLite runs on a single
// connection, so its transactions are already serialized.
func (s *Store) lock(sel *entsql.Selector) *entsql.Selector {
	if s.postgres() {
		return sel.ForUpdate()
	}
	return sel
}

func (s *Store) query(ctx context.Context, q entsql.Querier, each func(scan scanFunc) error) error {
	query, args := q.Query()
	var rows entsql.Rows
	if err := s.conn(ctx).Query(ctx, query, args, &rows); err != nil {
		return translateError(err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := each(rows.Scan); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *Store) exec(ctx context.Context, q entsql.Querier) (int64, error) {
	query, args := q.Query()
	var res entsql.Result
	if err := s.conn(ctx).Exec(ctx, query, args, &res); err != nil {
		return 0, translateError(err)
	}
	return res.RowsAffected()
}

// insert executes ib and returns the generated id.
func (s *Store) insert(ctx context.Context, ib *entsql.InsertBuilder) (int64, error) {
	if s.postgres() {
		var id int64
		err := s.query(ctx, ib.Returning("id"), func(scan scanFunc) error { return scan(&id) })
		return id, err
	}
	query, args := ib.Query()
	var res entsql.Result
	if err := s.conn(ctx).Exec(ctx, query, args, &res); err != nil {
		return 0, translateError(err)
	}
	return res.LastInsertId()
}

func (s *Store) count(ctx context.Context, t *entsql.SelectTable, preds []*entsql.Predicate) (int64, error) {
	sel := s.builder().Select(entsql.Count("*")).From(t)
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	var total int64
	err := s.query(ctx, sel, func(scan scanFunc) error { return scan(&total) })
	return total, err
}

func decodeText(table string, id int64, raw []byte) (string, error) {
	text, err := textcodec.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s %d: %v", entity.ErrDecode, table, id, err)
	}
	return text, nil
}
