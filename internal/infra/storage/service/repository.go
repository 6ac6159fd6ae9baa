package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/pkg/dbmetrics"
	"github.com/m04kA/cappadocia-tours/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"hotel",
	"agency",
	"name",
	"description",
	"price",
	"capacity",
	"image_path",
	"created_at",
}

// Repository репозиторий для работы с услугами каталога
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"hotel",
			"agency",
			"name",
			"description",
			"price",
			"capacity",
			"image_path",
		).
		Values(
			service.HotelID,
			service.AgencyID,
			service.Name,
			service.Description,
			service.Price,
			service.Capacity,
			service.ImagePath,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time

	return service, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до изменения capacity
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// List получает услуги каталога, опционально только одного отеля
func (r *Repository) List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC")

	if filter.HotelID != nil {
		builder = builder.Where(squirrel.Eq{"hotel": *filter.HotelID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan service: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// UpdateCapacity устанавливает абсолютное значение capacity
func (r *Repository) UpdateCapacity(ctx context.Context, id int64, capacity int) (*domain.Service, error) {
	query, args, err := psqlbuilder.Update("services").
		Set("capacity", capacity).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCapacity - build update query: %v", ErrBuildQuery, err)
	}

	return r.updateReturning(ctx, "UpdateCapacity", query, args)
}

// AdjustCapacity изменяет capacity на delta, результат не опускается ниже 0
func (r *Repository) AdjustCapacity(ctx context.Context, id int64, delta int) (*domain.Service, error) {
	query, args, err := psqlbuilder.Update("services").
		Set("capacity", squirrel.Expr("GREATEST(capacity + ?, 0)", delta)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AdjustCapacity - build update query: %v", ErrBuildQuery, err)
	}

	return r.updateReturning(ctx, "AdjustCapacity", query, args)
}

// DecrementCapacity занимает одно место услуги.
// Возвращает ErrNoCapacity, если мест не осталось.
func (r *Repository) DecrementCapacity(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("capacity", squirrel.Expr("capacity - 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"capacity": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем отсутствие услуги и нулевой capacity
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrNoCapacity
	}

	return nil
}

// UpdateImagePath сохраняет ссылку на изображение услуги
func (r *Repository) UpdateImagePath(ctx context.Context, id int64, imagePath string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Update("services").
		Set("image_path", imagePath).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateImagePath - build update query: %v", ErrBuildQuery, err)
	}

	return r.updateReturning(ctx, "UpdateImagePath", query, args)
}

// Delete удаляет услугу
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
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
		return ErrServiceNotFound
	}

	return nil
}

// Count возвращает количество услуг
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("services").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) updateReturning(ctx context.Context, op, query string, args []interface{}) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return service, nil
}

func returningColumns() string {
	return strings.Join(serviceColumns, ", ")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var description, imagePath sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.HotelID,
		&service.AgencyID,
		&service.Name,
		&description,
		&service.Price,
		&service.Capacity,
		&imagePath,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	service.Description = description.String
	service.ImagePath = imagePath.String
	service.CreatedAt = createdAt.Time

	return &service, nil
}
