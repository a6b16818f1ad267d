package class

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	"github.com/m04kA/FitStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FitStudio-BookingService/pkg/psqlbuilder"
)

// classColumns полный набор колонок таблицы classes
var classColumns = []string{
	"id",
	"name",
	"type",
	"instructor",
	"difficulty",
	"start_time",
	"duration_minutes",
	"capacity",
	"booked_count",
	"equipment",
	"created_at",
	"updated_at",
}

// Update модель частичного обновления класса
// nil-поля не изменяются
type Update struct {
	Name            *string
	Type            *domain.ClassType
	Instructor      *string
	Difficulty      *domain.Difficulty
	StartTime       *time.Time
	DurationMinutes *int
	Capacity        *int
	Equipment       *[]string
}

// Repository репозиторий для работы с классами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория классов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый класс
// booked_count всегда инициализируется нулем независимо от входных данных
func (r *Repository) Create(ctx context.Context, class *domain.ClassSession) (*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("classes").
		Columns(
			"name",
			"type",
			"instructor",
			"difficulty",
			"start_time",
			"duration_minutes",
			"capacity",
			"booked_count",
			"equipment",
		).
		Values(
			class.Name,
			class.Type,
			class.Instructor,
			class.Difficulty,
			class.StartTime,
			class.DurationMinutes,
			class.Capacity,
			0,
			pq.Array(class.Equipment),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&class.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	class.BookedCount = 0
	class.CreatedAt = createdAt.Time
	class.UpdatedAt = updatedAt.Time

	return class, nil
}

// GetAll получает все классы, упорядоченные по времени начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ClassSession, error) {
	return r.selectClasses(ctx, "GetAll", r.baseSelect())
}

// GetByID получает класс по ID
// Внутри транзакции добавляет FOR UPDATE - блокировка строки нужна
// для перепроверки вместимости перед созданием бронирования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(classColumns...).
		From("classes").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	class, err := scanClassRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan class: %v", ErrScanRow, err)
	}

	return class, nil
}

// GetByInstructor получает классы по имени инструктора
func (r *Repository) GetByInstructor(ctx context.Context, instructor string) ([]*domain.ClassSession, error) {
	return r.selectClasses(ctx, "GetByInstructor",
		r.baseSelect().Where(squirrel.Eq{"instructor": instructor}))
}

// GetByType получает классы по типу
func (r *Repository) GetByType(ctx context.Context, classType domain.ClassType) ([]*domain.ClassSession, error) {
	return r.selectClasses(ctx, "GetByType",
		r.baseSelect().Where(squirrel.Eq{"type": classType}))
}

// GetByDateRange получает классы с началом в полуинтервале [from, to)
// Используется движком расписания для выборки недельного окна
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.ClassSession, error) {
	return r.selectClasses(ctx, "GetByDateRange",
		r.baseSelect().
			Where(squirrel.GtOrEq{"start_time": from}).
			Where(squirrel.Lt{"start_time": to}))
}

// GetAvailable получает классы со свободными местами
func (r *Repository) GetAvailable(ctx context.Context) ([]*domain.ClassSession, error) {
	return r.selectClasses(ctx, "GetAvailable",
		r.baseSelect().Where(squirrel.Expr("booked_count < capacity")))
}

// UpdateBookedCount устанавливает новое значение booked_count
// Значение вычисляется вызывающим кодом (usecase) под блокировкой строки,
// репозиторий его не пересчитывает
func (r *Repository) UpdateBookedCount(ctx context.Context, id int64, bookedCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("classes").
		Set("booked_count", bookedCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateBookedCount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBookedCount - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBookedCount - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}

// UpdateFields частично обновляет класс (nil-поля не трогаются)
func (r *Repository) UpdateFields(ctx context.Context, id int64, updates Update) (*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("classes").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(classColumns))

	if updates.Name != nil {
		updateBuilder = updateBuilder.Set("name", *updates.Name)
	}
	if updates.Type != nil {
		updateBuilder = updateBuilder.Set("type", *updates.Type)
	}
	if updates.Instructor != nil {
		updateBuilder = updateBuilder.Set("instructor", *updates.Instructor)
	}
	if updates.Difficulty != nil {
		updateBuilder = updateBuilder.Set("difficulty", *updates.Difficulty)
	}
	if updates.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *updates.StartTime)
	}
	if updates.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *updates.DurationMinutes)
	}
	if updates.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *updates.Capacity)
	}
	if updates.Equipment != nil {
		updateBuilder = updateBuilder.Set("equipment", pq.Array(*updates.Equipment))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	class, err := scanClassRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateFields - scan class: %v", ErrScanRow, err)
	}

	return class, nil
}

// Delete удаляет класс и возвращает удаленную запись
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("classes").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(classColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	class, err := scanClassRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - scan class: %v", ErrScanRow, err)
	}

	return class, nil
}

// baseSelect базовый SELECT по всем колонкам с сортировкой по времени начала
func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(classColumns...).
		From("classes").
		OrderBy("start_time ASC, id ASC")
}

// selectClasses выполняет SELECT и сканирует результат в слайс классов
func (r *Repository) selectClasses(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	classes := make([]*domain.ClassSession, 0)
	for rows.Next() {
		var class domain.ClassSession
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Type,
			&class.Instructor,
			&class.Difficulty,
			&class.StartTime,
			&class.DurationMinutes,
			&class.Capacity,
			&class.BookedCount,
			pq.Array(&class.Equipment),
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		class.CreatedAt = createdAt.Time
		class.UpdatedAt = updatedAt.Time
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return classes, nil
}

// scanClassRow сканирует одну строку в класс
func scanClassRow(row *sql.Row) (*domain.ClassSession, error) {
	var class domain.ClassSession
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.Type,
		&class.Instructor,
		&class.Difficulty,
		&class.StartTime,
		&class.DurationMinutes,
		&class.Capacity,
		&class.BookedCount,
		pq.Array(&class.Equipment),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	class.CreatedAt = createdAt.Time
	class.UpdatedAt = updatedAt.Time
	return &class, nil
}

// joinColumns собирает список колонок для RETURNING
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
