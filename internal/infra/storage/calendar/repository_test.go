package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/ptr"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

var blockedDateCols = []string{"id", "date", "reason", "created_at"}

var errDB = errors.New("db is down")

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO blocked_dates \(id,date,reason\) VALUES \(\$1,\$2,\$3\) RETURNING created_at`).
		WithArgs(sqlmock.AnyArg(), "2025-12-25", "Christmas").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.Create(context.Background(), &domain.BlockedDate{
		Date:   types.MustParseDate("2025-12-25"),
		Reason: ptr.Ptr("Christmas"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
}

func TestRepository_Create_NullReason(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO blocked_dates").
		WithArgs("fixed-id", "2025-01-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	created, err := repo.Create(context.Background(), &domain.BlockedDate{
		ID:   "fixed-id",
		Date: types.MustParseDate("2025-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", created.ID)
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO blocked_dates").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &domain.BlockedDate{Date: types.MustParseDate("2025-01-01")})
	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestRepository_Create_DBError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO blocked_dates").WillReturnError(errDB)

	_, err := repo.Create(context.Background(), &domain.BlockedDate{Date: types.MustParseDate("2025-01-01")})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrDuplicateDate)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, date, reason, created_at FROM blocked_dates WHERE id = \$1`).
		WithArgs("bd-1").
		WillReturnRows(sqlmock.NewRows(blockedDateCols).
			AddRow("bd-1", time.Date(2025, time.May, 9, 0, 0, 0, 0, time.UTC), nil, time.Now()))

	blocked, err := repo.GetByID(context.Background(), "bd-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-09", blocked.Date.String())
	assert.Nil(t, blocked.Reason)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM blocked_dates").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(blockedDateCols))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
}

func TestRepository_GetByDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM blocked_dates WHERE date = \$1`).
		WithArgs("2025-05-09").
		WillReturnRows(sqlmock.NewRows(blockedDateCols).
			AddRow("bd-1", "2025-05-09", "Maintenance", time.Now()))

	blocked, err := repo.GetByDate(context.Background(), types.MustParseDate("2025-05-09"))
	require.NoError(t, err)
	require.NotNil(t, blocked.Reason)
	assert.Equal(t, "Maintenance", *blocked.Reason)
}

func TestRepository_ExistsByDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM blocked_dates WHERE date = \$1 \)`).
		WithArgs("2025-05-09").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByDate(context.Background(), types.MustParseDate("2025-05-09"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_ListByRange(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM blocked_dates WHERE date >= \$1 AND date <= \$2 ORDER BY date ASC`).
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows(blockedDateCols).
			AddRow("a", "2025-01-01", nil, time.Now()).
			AddRow("b", "2025-01-07", "Staff training", time.Now()))

	list, err := repo.ListByRange(context.Background(), domain.BlockedDateRange{
		From: types.MustParseDate("2025-01-01"),
		To:   types.MustParseDate("2025-01-31"),
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "2025-01-07", list[1].Date.String())
}

func TestRepository_List_Unbounded(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, date, reason, created_at FROM blocked_dates ORDER BY date ASC`).
		WillReturnRows(sqlmock.NewRows(blockedDateCols))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_List_DBError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM blocked_dates").WillReturnError(errDB)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM blocked_dates WHERE id = \$1`).
		WithArgs("bd-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "bd-1"))
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM blocked_dates").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrBlockedDateNotFound)
}
