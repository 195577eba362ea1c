package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// HolidayRepo defines the persistence operations for public holidays.
type HolidayRepo interface {
	// Upsert inserts a holiday, or renames the existing holiday on the same
	// region and date.
	Upsert(ctx context.Context, h domain.Holiday) (domain.Holiday, error)

	// ListBetween returns the holidays of a region whose date falls within
	// [from, to], ordered by date.
	ListBetween(ctx context.Context, region string, from, to time.Time) ([]domain.Holiday, error)
}

// pgHolidayRepo is the Postgres implementation of HolidayRepo.
type pgHolidayRepo struct {
	db db
}

// NewHolidayRepo constructs a HolidayRepo backed by the provided db connection.
func NewHolidayRepo(db db) HolidayRepo {
	return &pgHolidayRepo{db: db}
}

// Upsert inserts a holiday or updates the name on a (region, date) conflict.
func (r *pgHolidayRepo) Upsert(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	const q = `
		INSERT INTO public_holidays (region, holiday_date, name)
		VALUES (@region, @holiday_date, @name)
		ON CONFLICT (region, holiday_date) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, region, holiday_date, name`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"region":       h.Region,
		"holiday_date": pgtype.Date{Time: h.Date, Valid: true},
		"name":         h.Name,
	})
	result, err := scanHoliday(row)
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("repo.HolidayRepo.Upsert: %w", err)
	}
	return result, nil
}

// ListBetween returns the holidays of a region within an inclusive date range.
func (r *pgHolidayRepo) ListBetween(ctx context.Context, region string, from, to time.Time) ([]domain.Holiday, error) {
	const q = `
		SELECT id, region, holiday_date, name
		FROM public_holidays
		WHERE region = @region
		  AND holiday_date BETWEEN @from AND @to
		ORDER BY holiday_date`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"region": region,
		"from":   pgtype.Date{Time: from, Valid: true},
		"to":     pgtype.Date{Time: to, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("repo.HolidayRepo.ListBetween: %w", err)
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HolidayRepo.ListBetween: scan: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HolidayRepo.ListBetween: rows: %w", err)
	}
	return holidays, nil
}

// scanHoliday maps a single public_holidays row into a domain.Holiday.
func scanHoliday(s scanner) (domain.Holiday, error) {
	var (
		h    domain.Holiday
		id   pgtype.UUID
		date pgtype.Date
	)

	if err := s.Scan(&id, &h.Region, &date, &h.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Holiday{}, domain.ErrNotFound
		}
		return domain.Holiday{}, err
	}

	h.ID = uuid.UUID(id.Bytes)
	h.Date = date.Time
	return h, nil
}
