package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu         sync.Mutex
	operations []string
	statsCalls int
}

func (o *recordingObserver) ObserveDBQuery(operation string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, operation)
}

func (o *recordingObserver) SetDBStats(_ sql.DBStats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.statsCalls++
}

func (o *recordingObserver) stats() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.statsCalls
}

func TestDB_ObservesQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	observer := &recordingObserver{}
	wrapped := Wrap(db, observer)

	mock.ExpectExec("DELETE FROM blocked_dates").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM blocked_dates").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM blocked_dates WHERE id = $1", "x")
	require.NoError(t, err)
	rows, err := wrapped.QueryContext(context.Background(), "SELECT id FROM blocked_dates")
	require.NoError(t, err)
	rows.Close()

	assert.Equal(t, []string{"exec", "query"}, observer.operations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_NilObserver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = Wrap(db, nil).ExecContext(context.Background(), "UPDATE booking_settings SET scope = scope")
	assert.NoError(t, err)
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))

	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, wrapped))

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_NilKeepsContext(t *testing.T) {
	ctx := WithTx(context.Background(), nil)
	assert.False(t, IsInTransaction(ctx))
}

func TestWrapWithDefault_PublishesStatsUntilStopped(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	observer := &recordingObserver{}
	stopCh := make(chan struct{})
	WrapWithDefault(db, observer, stopCh)

	assert.Eventually(t, func() bool { return observer.stats() >= 1 }, time.Second, 10*time.Millisecond)
	close(stopCh)
}
