package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTxStore(t *testing.T) (*orderTxStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	tx, err := sqlx.NewDb(db, "mysql").Beginx()
	require.NoError(t, err)
	return &orderTxStore{tx: tx}, mock
}

const selectStockPattern = `SELECT stock FROM branch_stock WHERE branch_id = \? AND product_id = \? FOR UPDATE`

const decrementStockPattern = `UPDATE branch_stock\s+SET stock = stock - \?, is_available = IF\(stock > 0, is_available, 0\)\s+WHERE branch_id = \? AND product_id = \? AND stock >= \?`

// Reserving the last unit must decrement once and let the availability flag
// follow the decremented stock, not subtract the quantity a second time.
func TestReserveStockLastUnit(t *testing.T) {
	store, mock := newTxStore(t)

	mock.ExpectQuery(selectStockPattern).
		WithArgs(int64(5), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(1))
	mock.ExpectExec(decrementStockPattern).
		WithArgs(1, int64(5), int64(7), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.ReserveStock(context.Background(), 5, 7, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveStockInsufficient(t *testing.T) {
	store, mock := newTxStore(t)

	mock.ExpectQuery(selectStockPattern).
		WithArgs(int64(5), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(1))

	err := store.ReserveStock(context.Background(), 5, 7, 2)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveStockUntrackedProductIsNoop(t *testing.T) {
	store, mock := newTxStore(t)

	mock.ExpectQuery(selectStockPattern).
		WithArgs(int64(5), int64(7)).
		WillReturnError(sql.ErrNoRows)

	require.NoError(t, store.ReserveStock(context.Background(), 5, 7, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveStockStaleRowRejected(t *testing.T) {
	store, mock := newTxStore(t)

	mock.ExpectQuery(selectStockPattern).
		WithArgs(int64(5), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(3))
	mock.ExpectExec(decrementStockPattern).
		WithArgs(2, int64(5), int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.ReserveStock(context.Background(), 5, 7, 2)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.NoError(t, mock.ExpectationsWereMet())
}
