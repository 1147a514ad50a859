package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/dbmetrics"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с расписаниями и перерывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarbershop получает расписание барбершопа вместе с перерывами
func (r *Repository) GetByBarbershop(ctx context.Context, barbershopID uuid.UUID) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barbershop_id",
		"days_of_week",
		"open_time",
		"close_time",
		"created_at",
		"updated_at",
	).
		From("schedules").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.Schedule
	var days pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.BarbershopID,
		&days,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - scan schedule: %v", ErrScanRow, err)
	}

	schedule.DaysOfWeek = make([]int, len(days))
	for i, day := range days {
		schedule.DaysOfWeek[i] = int(day)
	}
	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	breaks, err := r.getBreaks(ctx, executor, schedule.ID)
	if err != nil {
		return nil, err
	}
	schedule.Breaks = breaks

	return &schedule, nil
}

// Upsert создает или обновляет расписание барбершопа и заменяет его перерывы.
// Должен вызываться внутри транзакции (перерывы заменяются через DELETE + INSERT).
func (r *Repository) Upsert(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make(pq.Int64Array, len(schedule.DaysOfWeek))
	for i, day := range schedule.DaysOfWeek {
		days[i] = int64(day)
	}

	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("id", "barbershop_id", "days_of_week", "open_time", "close_time").
		Values(schedule.ID, schedule.BarbershopID, days, schedule.OpenTime, schedule.CloseTime).
		Suffix(`ON CONFLICT (barbershop_id) DO UPDATE SET
			days_of_week = EXCLUDED.days_of_week,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	if err := r.replaceBreaks(ctx, executor, schedule.ID, schedule.Breaks); err != nil {
		return nil, err
	}

	// Перечитываем перерывы, чтобы вернуть их с присвоенными ID
	breaks, err := r.getBreaks(ctx, executor, schedule.ID)
	if err != nil {
		return nil, err
	}
	schedule.Breaks = breaks

	return schedule, nil
}

func (r *Repository) getBreaks(ctx context.Context, executor DBExecutor, scheduleID uuid.UUID) ([]domain.Break, error) {
	query, args, err := psqlbuilder.Select("id", "schedule_id", "start_time", "end_time").
		From("schedule_breaks").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBreaks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.Break, 0)
	for rows.Next() {
		var brk domain.Break
		if err := rows.Scan(&brk.ID, &brk.ScheduleID, &brk.StartTime, &brk.EndTime); err != nil {
			return nil, fmt.Errorf("%w: getBreaks - scan break: %v", ErrScanRow, err)
		}
		breaks = append(breaks, brk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBreaks - iterate rows: %v", ErrExecQuery, err)
	}

	return breaks, nil
}

func (r *Repository) replaceBreaks(ctx context.Context, executor DBExecutor, scheduleID uuid.UUID, breaks []domain.Break) error {
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_breaks").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceBreaks - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: replaceBreaks - execute delete: %v", ErrExecQuery, err)
	}

	if len(breaks) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("schedule_breaks").
		Columns("id", "schedule_id", "start_time", "end_time")
	for _, brk := range breaks {
		id := brk.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		insert = insert.Values(id, scheduleID, brk.StartTime, brk.EndTime)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceBreaks - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: replaceBreaks - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
