package models

import (
	"time"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/changeset"
)

// Change описание отслеживаемой мутации для журнала аудита
type Change struct {
	Action     string
	EntityType string
	EntityID   *string
	Summary    string // пусто = сформировать из измененных полей
	Before     changeset.Object
	After      changeset.Object
}

// Status итог попытки записи в журнал
type Status string

const (
	StatusRecorded Status = "recorded"
	StatusFailed   Status = "failed"
)

// Result наблюдаемый итог записи аудита. Информационный: основная
// операция не зависит от него.
type Result struct {
	Status Status
	Record *domain.AuditRecord // nil при StatusFailed
	Err    error               // обернутая audit.ErrAuditWrite при StatusFailed
}

// Recorded сообщает, что запись сохранена
func (r Result) Recorded() bool {
	return r.Status == StatusRecorded
}

// ListRequest параметры консоли журнала аудита
type ListRequest struct {
	EntityType string // table_name или тип сущности
	Search     string // подстрока user_id или action, без учета регистра
	Days       int    // 0 = без ограничения по времени
	Page       int    // с 1
	PageSize   int    // 0 = размер по умолчанию
}

// RecordResponse запись журнала аудита
type RecordResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	Action        string           `json:"action"`
	TableName     string           `json:"tableName"`
	EntityType    string           `json:"entityType"`
	EntityID      *string          `json:"entityId,omitempty"`
	Summary       string           `json:"summary"`
	ChangedFields []string         `json:"changedFields"`
	OldValues     changeset.Object `json:"oldValues"`
	NewValues     changeset.Object `json:"newValues"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ListResponse страница журнала аудита
type ListResponse struct {
	Records  []RecordResponse `json:"records"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// FromDomainRecord конвертирует domain модель в DTO
func FromDomainRecord(r *domain.AuditRecord) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		UserID:        r.ActorID,
		Action:        r.Action,
		TableName:     r.TableName,
		EntityType:    r.EntityType,
		EntityID:      r.EntityID,
		Summary:       r.Summary,
		ChangedFields: r.ChangedFields(),
		OldValues:     r.OldValues,
		NewValues:     r.NewValues,
		CreatedAt:     r.CreatedAt,
	}
}
