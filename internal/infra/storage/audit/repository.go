package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdminService/pkg/psqlbuilder"
)

const tableAuditLogs = "audit_logs"

var auditColumns = []string{
	"id",
	"user_id",
	"action",
	"table_name",
	"affected_entity_type",
	"affected_entity_id",
	"summary",
	"old_values",
	"new_values",
	"created_at",
}

// Repository журнал аудита (только добавление и чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал аудита. Записи никогда не изменяются и не удаляются.
func (r *Repository) Append(ctx context.Context, record *domain.AuditRecord) (*domain.AuditRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableAuditLogs).
		Columns(
			"id",
			"user_id",
			"action",
			"table_name",
			"affected_entity_type",
			"affected_entity_id",
			"summary",
			"old_values",
			"new_values",
		).
		Values(
			record.ID,
			record.ActorID,
			record.Action,
			record.TableName,
			record.EntityType,
			record.EntityID,
			record.Summary,
			record.OldValues,
			record.NewValues,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// List возвращает страницу журнала (created_at DESC) и общее количество записей по фильтру
func (r *Repository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Считаем общее количество записей по фильтру
	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(tableAuditLogs), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	// 2. Получаем страницу
	selectBuilder := applyFilter(psqlbuilder.Select(auditColumns...).From(tableAuditLogs), filter).
		OrderBy("created_at DESC")
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.AuditRecord, 0)

	for rows.Next() {
		var record domain.AuditRecord
		var entityID sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.ActorID,
			&record.Action,
			&record.TableName,
			&record.EntityType,
			&entityID,
			&record.Summary,
			&record.OldValues,
			&record.NewValues,
			&createdAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if entityID.Valid {
			record.EntityID = &entityID.String
		}
		record.CreatedAt = createdAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return records, total, nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.AuditFilter) squirrel.SelectBuilder {
	if filter.EntityType != nil && *filter.EntityType != "" {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"table_name": *filter.EntityType},
			squirrel.Eq{"affected_entity_type": *filter.EntityType},
		})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(*filter.Search) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"user_id": pattern},
			squirrel.ILike{"action": pattern},
		})
	}

	if filter.Since != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}

	return builder
}

// likeEscaper экранирует спецсимволы LIKE, поиск идет по подстроке буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
