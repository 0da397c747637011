package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/pkg/dbmetrics"
	"github.com/akimv/BarberHub-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочников: услуги, барберы, точки.
// Справочники read-only со стороны сервиса: наполняются миграциями
// и админским инструментарием вне этого репозитория.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices возвращает все активные услуги
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "price", "duration_minutes", "active", "created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServicesByIDs возвращает услуги по списку идентификаторов.
// Порядок результата не гарантируется; вызывающая сторона сверяет
// полноту множества сама (отсутствующий id — ошибка бизнес-логики, не слоя БД).
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "price", "duration_minutes", "active", "created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": ids, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetBarberByID получает барбера по ID
func (r *Repository) GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "full_name", "site_id", "active", "created_at", "updated_at",
	).
		From("barbers").
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&barber.FullName,
		&barber.SiteID,
		&barber.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - scan barber: %v", ErrScanRow, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return &barber, nil
}

// ListBarbers возвращает всех активных барберов
func (r *Repository) ListBarbers(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "full_name", "site_id", "active", "created_at", "updated_at",
	).
		From("barbers").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&barber.ID,
			&barber.FullName,
			&barber.SiteID,
			&barber.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBarbers - scan row: %v", ErrScanRow, err)
		}

		barber.CreatedAt = createdAt.Time
		barber.UpdatedAt = updatedAt.Time
		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetSiteByID получает точку по ID
func (r *Repository) GetSiteByID(ctx context.Context, id int64) (*domain.Site, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "active", "created_at", "updated_at",
	).
		From("sites").
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSiteByID - build select query: %v", ErrBuildQuery, err)
	}

	var site domain.Site
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&site.ID,
		&site.Name,
		&site.Address,
		&site.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSiteByID - scan site: %v", ErrScanRow, err)
	}

	site.CreatedAt = createdAt.Time
	site.UpdatedAt = updatedAt.Time

	return &site, nil
}

// ListSites возвращает все активные точки
func (r *Repository) ListSites(ctx context.Context) ([]*domain.Site, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "active", "created_at", "updated_at",
	).
		From("sites").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSites - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSites - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		var site domain.Site
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&site.ID,
			&site.Name,
			&site.Address,
			&site.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSites - scan row: %v", ErrScanRow, err)
		}

		site.CreatedAt = createdAt.Time
		site.UpdatedAt = updatedAt.Time
		sites = append(sites, &site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSites - rows error: %v", ErrScanRow, err)
	}

	return sites, nil
}

func scanService(rows *sql.Rows) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
