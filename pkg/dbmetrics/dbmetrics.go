// Package dbmetrics wraps database/sql with query metrics and carries the
// active transaction executor through the context so repositories stay
// oblivious to transaction boundaries.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-FleetService/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on. Both *sql.DB,
// *sql.Tx and the metric wrappers satisfy it.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorKey struct{}

// WithExecutor stores the active transaction executor in the context
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor returns the executor stored in the context, or fallback when
// the call runs outside a transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// DB wraps *sql.DB and records per-query metrics
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap builds a metric-recording wrapper around db
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps db and starts the connection pool gauge collector,
// stopped by closing stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(serviceName, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(name string, stopCh <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetPoolStats(name, stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// BeginTx opens a metric-recording transaction
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

// Tx wraps *sql.Tx with the same per-query metrics as DB
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start), err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start), err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start), nil)
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
