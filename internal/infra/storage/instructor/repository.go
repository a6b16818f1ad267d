package instructor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	"github.com/m04kA/FitStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FitStudio-BookingService/pkg/psqlbuilder"
)

// instructorColumns полный набор колонок таблицы instructors
var instructorColumns = []string{
	"id",
	"name",
	"specialties",
	"bio",
	"photo_url",
	"created_at",
	"updated_at",
}

// Update модель частичного обновления профиля инструктора
// nil-поля не изменяются
type Update struct {
	Name        *string
	Specialties *[]string
	Bio         *string
	PhotoURL    *string
}

// Repository репозиторий для работы с профилями инструкторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инструкторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый профиль инструктора
func (r *Repository) Create(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instructors").
		Columns(
			"name",
			"specialties",
			"bio",
			"photo_url",
		).
		Values(
			instructor.Name,
			pq.Array(instructor.Specialties),
			instructor.Bio,
			instructor.PhotoURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&instructor.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time

	return instructor, nil
}

// GetAll получает всех инструкторов, упорядоченных по имени
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Instructor, error) {
	return r.selectInstructors(ctx, "GetAll", r.baseSelect())
}

// GetByID получает инструктора по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	instructor, err := scanInstructorRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan instructor: %v", ErrScanRow, err)
	}

	return instructor, nil
}

// GetBySpecialty получает инструкторов с указанной специализацией
func (r *Repository) GetBySpecialty(ctx context.Context, specialty string) ([]*domain.Instructor, error) {
	return r.selectInstructors(ctx, "GetBySpecialty",
		r.baseSelect().Where(squirrel.Expr("specialties @> ARRAY[?]::text[]", specialty)))
}

// UpdateFields частично обновляет профиль инструктора (nil-поля не трогаются)
func (r *Repository) UpdateFields(ctx context.Context, id int64, updates Update) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("instructors").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(instructorColumns, ", "))

	if updates.Name != nil {
		updateBuilder = updateBuilder.Set("name", *updates.Name)
	}
	if updates.Specialties != nil {
		updateBuilder = updateBuilder.Set("specialties", pq.Array(*updates.Specialties))
	}
	if updates.Bio != nil {
		updateBuilder = updateBuilder.Set("bio", *updates.Bio)
	}
	if updates.PhotoURL != nil {
		updateBuilder = updateBuilder.Set("photo_url", *updates.PhotoURL)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	instructor, err := scanInstructorRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateFields - scan instructor: %v", ErrScanRow, err)
	}

	return instructor, nil
}

// Delete удаляет профиль инструктора и возвращает удаленную запись
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("instructors").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(instructorColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	instructor, err := scanInstructorRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - scan instructor: %v", ErrScanRow, err)
	}

	return instructor, nil
}

// baseSelect базовый SELECT по всем колонкам с сортировкой по имени
func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(instructorColumns...).
		From("instructors").
		OrderBy("name ASC, id ASC")
}

// selectInstructors выполняет SELECT и сканирует результат в слайс инструкторов
func (r *Repository) selectInstructors(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Instructor, error) {
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

	instructors := make([]*domain.Instructor, 0)
	for rows.Next() {
		var instructor domain.Instructor
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
			pq.Array(&instructor.Specialties),
			&instructor.Bio,
			&instructor.PhotoURL,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		instructor.CreatedAt = createdAt.Time
		instructor.UpdatedAt = updatedAt.Time
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return instructors, nil
}

// scanInstructorRow сканирует одну строку в инструктора
func scanInstructorRow(row *sql.Row) (*domain.Instructor, error) {
	var instructor domain.Instructor
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&instructor.ID,
		&instructor.Name,
		pq.Array(&instructor.Specialties),
		&instructor.Bio,
		&instructor.PhotoURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time
	return &instructor, nil
}
