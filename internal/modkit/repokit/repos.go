// Package repokit holds the shared types repositories are written against
package repokit

import (
	"context"

	"kudoswall/internal/platform/store"
)

// Queryer is the sql surface a bound repo uses
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

// Clickhouse is the columnar seam analytics repos read from
type Clickhouse = store.Clickhouse

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
