package hours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/dbmetrics"
	"github.com/velora-spa/SchedulingService/pkg/psqlbuilder"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// Repository репозиторий для работы с рабочими часами мастеров.
// Одна строка = окно работы мастера в один день недели.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek получает все настроенные окна недели мастера, отсортированные по дню
func (r *Repository) GetWeek(ctx context.Context, therapistID int64) ([]domain.OperatingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"opens_at",
		"closes_at",
		"is_open",
	).
		From("operating_hours").
		Where(squirrel.Eq{"therapist_id": therapistID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.OperatingWindow, 0, 7)
	for rows.Next() {
		window, err := scanWindow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// GetByWeekday получает окно работы мастера на конкретный день недели.
// Возвращает ErrHoursNotConfigured, если расписание на этот день не задано.
func (r *Repository) GetByWeekday(ctx context.Context, therapistID int64, weekday time.Weekday) (domain.OperatingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"opens_at",
		"closes_at",
		"is_open",
	).
		From("operating_hours").
		Where(squirrel.Eq{"therapist_id": therapistID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	window, err := scanWindow(row.Scan)
	if err == sql.ErrNoRows {
		return domain.OperatingWindow{}, ErrHoursNotConfigured
	}
	if err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("%w: GetByWeekday - scan row: %v", ErrScanRow, err)
	}

	return window, nil
}

// ReplaceWeek атомарно заменяет недельное расписание мастера.
// Вызывается внутри транзакции (см. service/schedule), чтобы читатели
// не увидели наполовину обновленную неделю.
func (r *Repository) ReplaceWeek(ctx context.Context, therapistID int64, windows []domain.OperatingWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("operating_hours").
		Where(squirrel.Eq{"therapist_id": therapistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("operating_hours").
		Columns("therapist_id", "weekday", "opens_at", "closes_at", "is_open")

	for _, w := range windows {
		var opensAt, closesAt interface{}
		if w.IsOpen {
			opensAt = w.OpensAt
			closesAt = w.ClosesAt
		}
		insertBuilder = insertBuilder.Values(therapistID, int(w.Weekday), opensAt, closesAt, w.IsOpen)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindow сканирует одну строку в окно работы.
// Для закрытых дней opens_at/closes_at в БД могут быть NULL.
func scanWindow(scan func(dest ...interface{}) error) (domain.OperatingWindow, error) {
	var window domain.OperatingWindow
	var weekday int
	var opensAt, closesAt sql.NullString

	if err := scan(&weekday, &opensAt, &closesAt, &window.IsOpen); err != nil {
		return domain.OperatingWindow{}, err
	}

	window.Weekday = time.Weekday(weekday)

	if opensAt.Valid {
		var ts types.TimeString
		if err := ts.Scan(opensAt.String); err != nil {
			return domain.OperatingWindow{}, err
		}
		window.OpensAt = ts
	}
	if closesAt.Valid {
		var ts types.TimeString
		if err := ts.Scan(closesAt.String); err != nil {
			return domain.OperatingWindow{}, err
		}
		window.ClosesAt = ts
	}

	return window, nil
}
