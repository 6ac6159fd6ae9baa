package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/pkg/dbmetrics"
	"github.com/m04kA/cappadocia-tours/pkg/psqlbuilder"
)

var hotelColumns = []string{
	"id",
	"name",
	"description",
	"created_at",
}

// Repository репозиторий для работы с отелями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает отель по ID (без услуг)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	hotel, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %v", ErrScanRow, err)
	}

	return hotel, nil
}

// List получает все отели, упорядоченные по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan hotel: %v", ErrScanRow, err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// Count возвращает количество отелей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("hotels").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHotel(row rowScanner) (*domain.Hotel, error) {
	var hotel domain.Hotel
	var description sql.NullString
	var createdAt sql.NullTime

	if err := row.Scan(&hotel.ID, &hotel.Name, &description, &createdAt); err != nil {
		return nil, err
	}

	hotel.Description = description.String
	hotel.CreatedAt = createdAt.Time

	return &hotel, nil
}
