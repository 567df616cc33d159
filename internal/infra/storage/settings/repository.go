package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdminService/pkg/psqlbuilder"
)

const tableBookingSettings = "booking_settings"

var settingsColumns = []string{
	"id",
	"scope",
	"slot_duration_minutes",
	"max_concurrent_bookings",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает настройки для scope
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookingSettings).
		Columns(
			"scope",
			"slot_duration_minutes",
			"max_concurrent_bookings",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			settings.Scope,
			settings.SlotDurationMinutes,
			settings.MaxConcurrentBookings,
			settings.AdvanceBookingDays,
			settings.MinBookingNoticeMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateScope
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

// GetByScope получает настройки по scope
func (r *Repository) GetByScope(ctx context.Context, scope string) (*domain.BookingSettings, error) {
	return r.getByScope(ctx, "GetByScope", scope, false)
}

// GetByScopeForUpdate получает настройки по scope и блокирует строку до конца транзакции.
// Вне транзакции ведет себя как GetByScope.
func (r *Repository) GetByScopeForUpdate(ctx context.Context, scope string) (*domain.BookingSettings, error) {
	return r.getByScope(ctx, "GetByScopeForUpdate", scope, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByScope(ctx context.Context, method, scope string, lock bool) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(settingsColumns...).
		From(tableBookingSettings).
		Where(squirrel.Eq{"scope": scope})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	settings, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan settings: %v", ErrScanRow, method, err)
	}

	return settings, nil
}

// List получает все настройки, глобальная запись первой
func (r *Repository) List(ctx context.Context) ([]*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From(tableBookingSettings).
		OrderBy(fmt.Sprintf("(scope = '%s') DESC", domain.GlobalSettingsScope), "scope ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingSettings, 0)

	for rows.Next() {
		settings, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, settings)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет настройки scope
func (r *Repository) Update(ctx context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookingSettings).
		Set("slot_duration_minutes", settings.SlotDurationMinutes).
		Set("max_concurrent_bookings", settings.MaxConcurrentBookings).
		Set("advance_booking_days", settings.AdvanceBookingDays).
		Set("min_booking_notice_minutes", settings.MinBookingNoticeMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"scope": settings.Scope}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&settings.ID, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

// Delete удаляет настройки scope
func (r *Repository) Delete(ctx context.Context, scope string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookingSettings).
		Where(squirrel.Eq{"scope": scope}).
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
		return ErrSettingsNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.BookingSettings, error) {
	var settings domain.BookingSettings
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&settings.ID,
		&settings.Scope,
		&settings.SlotDurationMinutes,
		&settings.MaxConcurrentBookings,
		&settings.AdvanceBookingDays,
		&settings.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}
