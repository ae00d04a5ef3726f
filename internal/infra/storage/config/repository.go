package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/dbmetrics"
	"github.com/velora-spa/SchedulingService/pkg/psqlbuilder"
)

// configColumns полный список колонок таблицы slots_config в порядке сканирования
var configColumns = []string{
	"id",
	"salon_id",
	"therapist_id",
	"step_minutes",
	"admin_step_minutes",
	"lead_time_minutes",
	"advance_booking_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация конкретного мастера (salon_id, therapist_id)
// 2. Общесалонная конфигурация (salon_id, NULL)
// Возвращает ErrConfigNotFound, если нет ни той, ни другой.
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, salonID int64, therapistID *int64) (*domain.SlotsConfig, error) {
	if therapistID != nil {
		cfg, err := r.getBySalonAndTherapist(ctx, salonID, therapistID)
		if err == nil {
			return cfg, nil
		}
		if err != ErrConfigNotFound {
			return nil, err
		}
	}

	return r.getBySalonAndTherapist(ctx, salonID, nil)
}

// GetAllBySalon получает все конфигурации салона (общесалонную и все
// персональные), сначала общесалонную
func (r *Repository) GetAllBySalon(ctx context.Context, salonID int64) ([]*domain.SlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("slots_config").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("therapist_id ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.SlotsConfig, 0)
	for rows.Next() {
		cfg, err := scanConfig(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllBySalon - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllBySalon - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert создает или обновляет конфигурацию для пары (salon_id, therapist_id).
// Пара уникальна на уровне схемы, поэтому используется ON CONFLICT.
func (r *Repository) Upsert(ctx context.Context, config *domain.SlotsConfig) (*domain.SlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots_config").
		Columns(
			"salon_id",
			"therapist_id",
			"step_minutes",
			"admin_step_minutes",
			"lead_time_minutes",
			"advance_booking_days",
		).
		Values(
			config.SalonID,
			config.TherapistID,
			config.StepMinutes,
			config.AdminStepMinutes,
			config.LeadTimeMinutes,
			config.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (salon_id, COALESCE(therapist_id, 0)) DO UPDATE SET
			step_minutes = EXCLUDED.step_minutes,
			admin_step_minutes = EXCLUDED.admin_step_minutes,
			lead_time_minutes = EXCLUDED.lead_time_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots_config").
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
		return ErrConfigNotFound
	}

	return nil
}

func (r *Repository) getBySalonAndTherapist(ctx context.Context, salonID int64, therapistID *int64) (*domain.SlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From("slots_config").
		Where(squirrel.Eq{"salon_id": salonID})

	if therapistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"therapist_id": *therapistID})
	} else {
		selectBuilder = selectBuilder.Where("therapist_id IS NULL")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getBySalonAndTherapist - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	cfg, err := scanConfig(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBySalonAndTherapist - scan config: %v", ErrScanRow, err)
	}

	return cfg, nil
}

// scanConfig сканирует одну строку в конфигурацию
func scanConfig(scan func(dest ...interface{}) error) (*domain.SlotsConfig, error) {
	var config domain.SlotsConfig
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&config.ID,
		&config.SalonID,
		&config.TherapistID,
		&config.StepMinutes,
		&config.AdminStepMinutes,
		&config.LeadTimeMinutes,
		&config.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
