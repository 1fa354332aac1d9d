package task

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

var taskColumns = []string{
	"id",
	"driver_id",
	"vehicle_id",
	"task_date",
	"start_index",
	"duration_slots",
	"start_time",
	"end_time",
	"location_start",
	"location_end",
	"priority",
	"status",
	"vehicle_type",
	"vehicle_seats",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий задач
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую задачу.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tasks").
		Columns(
			"id",
			"driver_id",
			"vehicle_id",
			"task_date",
			"start_index",
			"duration_slots",
			"start_time",
			"end_time",
			"location_start",
			"location_end",
			"priority",
			"status",
			"vehicle_type",
			"vehicle_seats",
		).
		Values(
			t.ID,
			t.DriverID,
			t.VehicleID,
			t.Date.Format(domain.DateFormat),
			t.StartIndex,
			t.DurationSlots,
			t.StartTime,
			t.EndTime,
			t.LocationStart,
			t.LocationEnd,
			t.Priority,
			t.Status,
			t.VehicleType,
			t.VehicleSeats,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает задачу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListByDriver получает историю задач водителя.
// Опционально фильтрует по статусу.
func (r *Repository) ListByDriver(ctx context.Context, driverID string, status *domain.TaskStatus) ([]*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"driver_id": driverID}).
		OrderBy("task_date DESC, start_index DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDriver - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDriver - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDriver - scan task: %v", ErrScanRow, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDriver - iterate rows: %v", ErrExecQuery, err)
	}

	return tasks, nil
}

// UpdateStatus обновляет статус задачи. Жизненный цикл задачи продвигается
// внешними вызовами, движок расписаний статусы не меняет.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tasks").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Cancel переводит задачу в статус cancelled с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tasks").
		Set("status", domain.TaskStatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.DriverID,
		&t.VehicleID,
		&t.Date,
		&t.StartIndex,
		&t.DurationSlots,
		&t.StartTime,
		&t.EndTime,
		&t.LocationStart,
		&t.LocationEnd,
		&t.Priority,
		&t.Status,
		&t.VehicleType,
		&t.VehicleSeats,
		&t.CancellationReason,
		&t.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
