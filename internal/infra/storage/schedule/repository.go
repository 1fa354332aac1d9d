package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

// Repository репозиторий расписаний. Расписание хранится как 48 строк
// (resource_id, schedule_date, slot_index) на пару ресурс+дата.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает расписание ресурса на дату.
// Возвращает ErrScheduleNotFound, если расписание не материализовано.
func (r *Repository) Get(ctx context.Context, resourceID string, date string) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"resource_id",
		"resource_kind",
		"schedule_date",
		"slot_index",
		"status",
		"is_available",
	).
		From("schedule_slots").
		Where(squirrel.Eq{"resource_id": resourceID, "schedule_date": date}).
		OrderBy("slot_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedule domain.DaySchedule
	for rows.Next() {
		var slot domain.Slot
		var kind domain.ResourceKind
		if err := rows.Scan(
			&schedule.ResourceID,
			&kind,
			&schedule.Date,
			&slot.Index,
			&slot.Status,
			&slot.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: Get - scan slot: %v", ErrScanRow, err)
		}
		schedule.Kind = kind
		schedule.Slots = append(schedule.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - iterate rows: %v", ErrExecQuery, err)
	}

	if len(schedule.Slots) == 0 {
		return nil, ErrScheduleNotFound
	}
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrInvalidSchedule, err)
	}

	return &schedule, nil
}

// GetForDate получает все материализованные расписания указанного вида на
// дату, сгруппированные по ресурсу.
func (r *Repository) GetForDate(ctx context.Context, kind domain.ResourceKind, date string) (map[string]domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"resource_id",
		"resource_kind",
		"schedule_date",
		"slot_index",
		"status",
		"is_available",
	).
		From("schedule_slots").
		Where(squirrel.Eq{"resource_kind": kind, "schedule_date": date}).
		OrderBy("resource_id ASC, slot_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make(map[string]domain.DaySchedule)
	for rows.Next() {
		var (
			resourceID string
			slot       domain.Slot
			sch        domain.DaySchedule
		)
		if err := rows.Scan(
			&resourceID,
			&sch.Kind,
			&sch.Date,
			&slot.Index,
			&slot.Status,
			&slot.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: GetForDate - scan slot: %v", ErrScanRow, err)
		}

		existing, ok := schedules[resourceID]
		if !ok {
			existing = domain.DaySchedule{
				ResourceID: resourceID,
				Kind:       sch.Kind,
				Date:       sch.Date,
				Slots:      make([]domain.Slot, 0, domain.SlotsPerDay),
			}
		}
		existing.Slots = append(existing.Slots, slot)
		schedules[resourceID] = existing
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForDate - iterate rows: %v", ErrExecQuery, err)
	}

	// Неполные расписания не отдаём наружу: инвариант 48 слотов
	for id, sch := range schedules {
		if err := sch.Validate(); err != nil {
			return nil, fmt.Errorf("%w: GetForDate - resource %s: %v", ErrInvalidSchedule, id, err)
		}
	}

	return schedules, nil
}

// Put записывает расписание целиком, перезаписывая день атомарно в рамках
// переданного executor'а. Любой payload, нарушающий инвариант 48 слотов,
// отклоняется до записи.
func (r *Repository) Put(ctx context.Context, schedule *domain.DaySchedule) error {
	if err := schedule.Validate(); err != nil {
		return fmt.Errorf("%w: Put - %v", ErrInvalidSchedule, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	date := schedule.Date.Format(domain.DateFormat)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_slots").
		Where(squirrel.Eq{"resource_id": schedule.ResourceID, "schedule_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Put - execute delete: %v", ErrExecQuery, err)
	}

	insert := psqlbuilder.Insert("schedule_slots").
		Columns(
			"resource_id",
			"resource_kind",
			"schedule_date",
			"slot_index",
			"status",
			"is_available",
		)
	for _, slot := range schedule.Slots {
		insert = insert.Values(
			schedule.ResourceID,
			schedule.Kind,
			date,
			slot.Index,
			slot.Status,
			slot.IsAvailable,
		)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Put - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
