package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// BookingRepo defines the persistence operations for bookings and their
// question/answer pairs. Bookings are written by the booking form; the
// quote service reads them.
type BookingRepo interface {
	// Create inserts a booking and returns the persisted record.
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// GetByID retrieves a booking by its UUID.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// AddAnswer stores one question/answer pair against a booking.
	AddAnswer(ctx context.Context, a domain.BookingAnswer) (domain.BookingAnswer, error)

	// ListAnswers returns the question/answer pairs of a booking, oldest first.
	ListAnswers(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingAnswer, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, guest_name, stay_dates, nights, package_id, funder, has_course,
	care_answer, care_summary, rooms, created_at, updated_at`

// Create inserts a booking row. JSON columns are encoded here so the
// database never sees Go-specific types.
func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings
			(guest_name, stay_dates, nights, package_id, funder, has_course, care_answer, care_summary, rooms)
		VALUES
			(@guest_name, @stay_dates, @nights, @package_id, @funder, @has_course, @care_answer, @care_summary, @rooms)
		RETURNING ` + bookingColumns

	summary, err := marshalNullable(b.CareSummary)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: care summary: %w", err)
	}
	rooms := b.Rooms
	if rooms == nil {
		rooms = []domain.SelectedRoom{}
	}
	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: rooms: %w", err)
	}
	var careAnswer []byte
	if len(b.CareAnswer) > 0 {
		careAnswer = b.CareAnswer
	}

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"guest_name":   b.GuestName,
		"stay_dates":   b.StayDates,
		"nights":       b.Nights,
		"package_id":   b.PackageID,
		"funder":       string(b.Funder),
		"has_course":   b.HasCourse,
		"care_answer":  careAnswer, // nil becomes NULL
		"care_summary": summary,
		"rooms":        roomsJSON,
	})
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a booking by primary key.
func (r *pgBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

// AddAnswer inserts a question/answer pair.
func (r *pgBookingRepo) AddAnswer(ctx context.Context, a domain.BookingAnswer) (domain.BookingAnswer, error) {
	const q = `
		INSERT INTO booking_answers (booking_id, question_key, answer)
		VALUES (@booking_id, @question_key, @answer)
		RETURNING id, booking_id, question_key, answer, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"booking_id":   a.BookingID,
		"question_key": a.QuestionKey,
		"answer":       a.Answer,
	})
	result, err := scanAnswer(row)
	if err != nil {
		return domain.BookingAnswer{}, fmt.Errorf("repo.BookingRepo.AddAnswer: %w", err)
	}
	return result, nil
}

// ListAnswers returns the answers of a booking ordered by creation time.
func (r *pgBookingRepo) ListAnswers(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingAnswer, error) {
	const q = `
		SELECT id, booking_id, question_key, answer, created_at
		FROM booking_answers
		WHERE booking_id = @booking_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListAnswers: %w", err)
	}
	defer rows.Close()

	var answers []domain.BookingAnswer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BookingRepo.ListAnswers: scan: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListAnswers: rows: %w", err)
	}
	return answers, nil
}

// marshalNullable encodes v as JSON, or returns nil (SQL NULL) for a nil pointer.
func marshalNullable(v *domain.CareAnalysis) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// scanBooking maps a single bookings row into a domain.Booking.
// A care summary that no longer decodes is dropped rather than failing the
// read; the raw answer is still there to rebuild it from.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b                 domain.Booking
		id, packageID     pgtype.UUID
		funder            string
		careAnswer        []byte
		summary, roomsRaw []byte
	)

	err := s.Scan(&id, &b.GuestName, &b.StayDates, &b.Nights, &packageID, &funder, &b.HasCourse,
		&careAnswer, &summary, &roomsRaw, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.PackageID = uuid.UUID(packageID.Bytes)
	b.Funder = domain.Funder(funder)
	if len(careAnswer) > 0 {
		b.CareAnswer = json.RawMessage(careAnswer)
	}
	if len(summary) > 0 {
		var analysis domain.CareAnalysis
		if err := json.Unmarshal(summary, &analysis); err == nil {
			b.CareSummary = &analysis
		}
	}
	b.Rooms = []domain.SelectedRoom{}
	if len(roomsRaw) > 0 {
		if err := json.Unmarshal(roomsRaw, &b.Rooms); err != nil {
			return domain.Booking{}, fmt.Errorf("decode rooms: %w", err)
		}
	}
	return b, nil
}

// scanAnswer maps a single booking_answers row into a domain.BookingAnswer.
func scanAnswer(s scanner) (domain.BookingAnswer, error) {
	var (
		a             domain.BookingAnswer
		id, bookingID pgtype.UUID
	)

	if err := s.Scan(&id, &bookingID, &a.QuestionKey, &a.Answer, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BookingAnswer{}, domain.ErrNotFound
		}
		return domain.BookingAnswer{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.BookingID = uuid.UUID(bookingID.Bytes)
	return a, nil
}
