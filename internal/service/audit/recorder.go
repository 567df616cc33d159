package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/pkg/changeset"
)

// Причины для метрики audit_write_failures_total
const (
	failureNoActor = "no_actor"
	failureStore   = "store"
)

var errEmptyActor = errors.New("empty actor id")

// Recorder пишет журнал аудита после успешных мутаций администратора.
// Ошибки записи поглощаются: логируются, учитываются в метриках и
// возвращаются только в models.Result.
type Recorder struct {
	repo     AuditRepository
	identity IdentityProvider
	metrics  Metrics
	logger   Logger
}

// NewRecorder создает новый экземпляр рекордера аудита
func NewRecorder(repo AuditRepository, identity IdentityProvider, metrics Metrics, logger Logger) *Recorder {
	return &Recorder{
		repo:     repo,
		identity: identity,
		metrics:  metrics,
		logger:   logger,
	}
}

// RecordChange вычисляет минимальный diff между Before и After и добавляет одну
// запись в журнал, даже если diff пустой
func (r *Recorder) RecordChange(ctx context.Context, change models.Change) models.Result {
	// 1. Определяем автора изменения
	actorID, err := r.identity.CurrentActor(ctx)
	if err == nil && actorID == "" {
		err = errEmptyActor
	}
	if err != nil {
		return r.fail(change, failureNoActor, fmt.Errorf("%w: resolve actor: %v", ErrAuditWrite, err))
	}

	// 2. Считаем diff
	diff := changeset.Diff(change.Before, change.After)

	summary := change.Summary
	if summary == "" {
		summary = changeset.Summary(change.EntityType, diff.Fields())
	}

	record := &domain.AuditRecord{
		ActorID:    actorID,
		Action:     change.Action,
		EntityType: change.EntityType,
		TableName:  domain.TableNameFor(change.EntityType),
		EntityID:   change.EntityID,
		Summary:    summary,
		OldValues:  diff.OldValues,
		NewValues:  diff.NewValues,
	}

	// 3. Сохраняем запись
	saved, err := r.repo.Append(ctx, record)
	if err != nil {
		return r.fail(change, failureStore, fmt.Errorf("%w: append: %v", ErrAuditWrite, err))
	}

	r.metrics.IncAuditWrite(string(models.StatusRecorded))
	r.logger.Info("RecordChange: recorded action=%s entity=%s id=%s changed=%d by actor=%s",
		saved.Action, saved.TableName, entityIDString(saved.EntityID), diff.NewValues.Len(), saved.ActorID)

	return models.Result{Status: models.StatusRecorded, Record: saved}
}

func (r *Recorder) fail(change models.Change, reason string, err error) models.Result {
	r.metrics.IncAuditWrite(string(models.StatusFailed))
	r.metrics.IncAuditWriteFailure(reason)
	r.logger.Error("RecordChange: failed to record action=%s entity=%s id=%s: %v",
		change.Action, change.EntityType, entityIDString(change.EntityID), err)

	return models.Result{Status: models.StatusFailed, Err: err}
}

func entityIDString(id *string) string {
	if id == nil {
		return "-"
	}
	return *id
}
