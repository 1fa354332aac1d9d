package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

// Repository репозиторий справочника ресурсов (водители и транспорт)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListDrivers возвращает всех водителей в стабильном порядке создания
func (r *Repository) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"license_number",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("drivers").
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDrivers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDrivers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.LicenseNumber,
			&d.IsActive,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListDrivers - scan driver: %v", ErrScanRow, err)
		}
		drivers = append(drivers, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDrivers - iterate rows: %v", ErrExecQuery, err)
	}

	return drivers, nil
}

// GetDriver получает водителя по ID
func (r *Repository) GetDriver(ctx context.Context, id string) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"license_number",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("drivers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDriver - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Driver
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.Name,
		&d.LicenseNumber,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDriver - scan driver: %v", ErrScanRow, err)
	}

	return &d, nil
}

// ListVehicles возвращает весь транспорт в стабильном порядке создания
func (r *Repository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"plate_number",
		"vehicle_type",
		"seats",
		"lifecycle_status",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("vehicles").
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(
			&v.ID,
			&v.PlateNumber,
			&v.VehicleType,
			&v.Seats,
			&v.LifecycleStatus,
			&v.IsActive,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListVehicles - scan vehicle: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - iterate rows: %v", ErrExecQuery, err)
	}

	return vehicles, nil
}

// GetVehicle получает транспортное средство по ID
func (r *Repository) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"plate_number",
		"vehicle_type",
		"seats",
		"lifecycle_status",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.PlateNumber,
		&v.VehicleType,
		&v.Seats,
		&v.LifecycleStatus,
		&v.IsActive,
		&v.CreatedAt,
		&v.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicle - scan vehicle: %v", ErrScanRow, err)
	}

	return &v, nil
}

// SetDriverActive переключает флаг isActive водителя
func (r *Repository) SetDriverActive(ctx context.Context, id string, active bool) error {
	return r.setActive(ctx, "drivers", id, active, ErrDriverNotFound)
}

// SetVehicleActive переключает флаг isActive транспортного средства
func (r *Repository) SetVehicleActive(ctx context.Context, id string, active bool) error {
	return r.setActive(ctx, "vehicles", id, active, ErrVehicleNotFound)
}

func (r *Repository) setActive(ctx context.Context, table, id string, active bool, notFound error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: setActive - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: setActive - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: setActive - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
