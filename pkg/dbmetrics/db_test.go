package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedQuery struct {
	operation string
	err       error
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   int
}

func (f *fakeRecorder) ObserveQuery(operation string, _ time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, recordedQuery{operation: operation, err: err})
}

func (f *fakeRecorder) SetPoolStats(sql.DBStats) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats++
}

func (f *fakeRecorder) operations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]string, 0, len(f.queries))
	for _, q := range f.queries {
		ops = append(ops, q.operation)
	}
	return ops
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", operation("  select id FROM parking_spots"))
	assert.Equal(t, "SELECT", operation("SELECT EXISTS( SELECT 1 FROM parking_spots )"))
	assert.Equal(t, "SELECT", operation("SELECT(1)"))
	assert.Equal(t, "INSERT", operation("INSERT INTO parking_spots"))
	assert.Equal(t, "UNKNOWN", operation("   "))
}

func TestDB_RecordsQueriesAndTransactions(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	rec := &fakeRecorder{}
	stop := make(chan struct{})
	defer close(stop)
	db := Wrap(sqlDB, rec, time.Hour, stop)

	mock.ExpectExec("DELETE FROM parking_spots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectCommit()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, "DELETE FROM parking_spots WHERE id = $1", 1)
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	var n int
	require.NoError(t, tx.QueryRowContext(ctx, "SELECT 1").Scan(&n))
	require.NoError(t, tx.Commit())

	assert.Equal(t, []string{"DELETE", "SELECT", "COMMIT"}, rec.operations())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	tx, err := sqlDB.Begin()
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(sqlDB), GetExecutor(ctx, sqlDB))

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, sqlDB))
}
