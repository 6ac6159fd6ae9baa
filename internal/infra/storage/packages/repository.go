package packages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/pkg/dbmetrics"
	"github.com/m04kA/cappadocia-tours/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"name",
	"surname",
	"nationality",
	"serial_number",
	"city",
	"age",
	"gender",
	`"group"`,
	"arrival_date",
	"departure_date",
	"hotel",
	"room_type",
	"services",
	"accepted",
	"created_at",
}

// Repository репозиторий для работы с бронированиями (packages)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. Список accepted всегда пустой
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services := pkg.Services
	if services == nil {
		services = []int64{}
	}

	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"name",
			"surname",
			"nationality",
			"serial_number",
			"city",
			"age",
			"gender",
			`"group"`,
			"arrival_date",
			"departure_date",
			"hotel",
			"room_type",
			"services",
			"accepted",
		).
		Values(
			pkg.Name,
			pkg.Surname,
			pkg.Nationality,
			pkg.SerialNumber,
			pkg.City,
			pkg.Age,
			pkg.Gender,
			pkg.Group,
			pkg.ArrivalDate,
			pkg.DepartureDate,
			pkg.HotelID,
			string(pkg.RoomType),
			pq.Array(services),
			pq.Array([]int64{}),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pkg.Services = services
	pkg.Accepted = []int64{}
	pkg.CreatedAt = createdAt.Time

	return pkg, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return pkg, nil
}

// List получает бронирования, опционально только одного отеля
func (r *Repository) List(ctx context.Context, filter domain.PackageFilter) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("created_at DESC", "id DESC")

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

	result := make([]*domain.Package, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan package: %v", ErrScanRow, err)
		}
		result = append(result, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// AppendAccepted добавляет ID услуги в конец списка accepted.
// Проверка на дубликаты здесь не выполняется.
func (r *Repository) AppendAccepted(ctx context.Context, id, serviceID int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("packages").
		Set("accepted", squirrel.Expr("array_append(accepted, ?::BIGINT)", serviceID)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(packageColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AppendAccepted - build update query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: AppendAccepted - execute update: %v", ErrExecQuery, err)
	}

	return pkg, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
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
		return ErrPackageNotFound
	}

	return nil
}

// Count возвращает общее количество бронирований
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "Count", nil)
}

// CountCreatedSince возвращает количество бронирований, созданных начиная с since
func (r *Repository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, "CountCreatedSince", squirrel.GtOrEq{"created_at": since})
}

func (r *Repository) count(ctx context.Context, op string, where squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").From("packages")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row rowScanner) (*domain.Package, error) {
	var pkg domain.Package
	var nationality, serialNumber, city, group sql.NullString
	var arrival, departure, createdAt sql.NullTime
	var roomType string
	var services, accepted pq.Int64Array

	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Surname,
		&nationality,
		&serialNumber,
		&city,
		&pkg.Age,
		&pkg.Gender,
		&group,
		&arrival,
		&departure,
		&pkg.HotelID,
		&roomType,
		&services,
		&accepted,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	pkg.Nationality = nationality.String
	pkg.SerialNumber = serialNumber.String
	pkg.City = city.String
	pkg.Group = group.String
	pkg.ArrivalDate = arrival.Time
	pkg.DepartureDate = departure.Time
	pkg.RoomType = domain.RoomType(roomType)
	pkg.Services = []int64(services)
	pkg.Accepted = []int64(accepted)
	pkg.CreatedAt = createdAt.Time

	if pkg.Services == nil {
		pkg.Services = []int64{}
	}
	if pkg.Accepted == nil {
		pkg.Accepted = []int64{}
	}

	return &pkg, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
