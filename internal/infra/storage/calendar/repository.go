package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdminService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

const tableBlockedDates = "blocked_dates"

// uniqueViolation код ошибки PostgreSQL для нарушения UNIQUE
const uniqueViolation = "23505"

var blockedDateColumns = []string{"id", "date", "reason", "created_at"}

// Repository репозиторий заблокированных дат календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заблокированную дату.
// ID генерируется на стороне сервиса, created_at - на стороне БД.
// При нарушении UNIQUE(date) возвращает ErrDuplicateDate.
func (r *Repository) Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if blocked.ID == "" {
		blocked.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableBlockedDates).
		Columns("id", "date", "reason").
		Values(blocked.ID, blocked.Date, blocked.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// GetByID получает заблокированную дату по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BlockedDate, error) {
	query, args, err := psqlbuilder.Select(blockedDateColumns...).
		From(tableBlockedDates).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	blocked, err := r.getOne(ctx, query, args)
	if err != nil {
		return nil, wrapGetError("GetByID", err)
	}
	return blocked, nil
}

// GetByDate получает запись для конкретного дня
func (r *Repository) GetByDate(ctx context.Context, date types.Date) (*domain.BlockedDate, error) {
	query, args, err := psqlbuilder.Select(blockedDateColumns...).
		From(tableBlockedDates).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	blocked, err := r.getOne(ctx, query, args)
	if err != nil {
		return nil, wrapGetError("GetByDate", err)
	}
	return blocked, nil
}

// ExistsByDate проверяет, заблокирован ли день
func (r *Repository) ExistsByDate(ctx context.Context, date types.Date) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableBlockedDates).
		Where(squirrel.Eq{"date": date}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByDate - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByDate - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// List возвращает все заблокированные даты по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedDate, error) {
	return r.ListByRange(ctx, domain.BlockedDateRange{})
}

// ListByRange возвращает заблокированные даты внутри окна [From, To] по возрастанию даты.
// Нулевые границы окна не ограничивают выборку.
func (r *Repository) ListByRange(ctx context.Context, window domain.BlockedDateRange) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockedDateColumns...).
		From(tableBlockedDates)

	if !window.From.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": window.From})
	}
	if !window.To.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": window.To})
	}

	query, args, err := selectBuilder.OrderBy("date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedDate, 0)

	for rows.Next() {
		blocked, err := scanBlockedDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRange - scan row: %v", ErrScanRow, err)
		}
		result = append(result, blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет заблокированную дату по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBlockedDates).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

// Helper methods

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) getOne(ctx context.Context, query string, args []interface{}) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	return scanBlockedDate(executor.QueryRowContext(ctx, query, args...))
}

func scanBlockedDate(row rowScanner) (*domain.BlockedDate, error) {
	var blocked domain.BlockedDate
	var reason sql.NullString
	var createdAt sql.NullTime

	if err := row.Scan(&blocked.ID, &blocked.Date, &reason, &createdAt); err != nil {
		return nil, err
	}

	if reason.Valid {
		blocked.Reason = &reason.String
	}
	blocked.CreatedAt = createdAt.Time

	return &blocked, nil
}

func wrapGetError(method string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBlockedDateNotFound
	}
	return fmt.Errorf("%w: %s - scan blocked date: %v", ErrScanRow, method, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
