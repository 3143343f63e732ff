package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"travel-planner/internal/domain/booking"
	"travel-planner/internal/infra"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (id, plan_id, flight_offer_id, hotel_offer_id, traveler_details, payment_details, confirmation, total_cost, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.PlanID(), b.FlightOfferID(), b.HotelOfferID(),
		b.TravelerDetails(), b.PaymentDetails(), b.Confirmation(),
		b.TotalCost(), string(b.Status()), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// UpdateStatus persists a status transition already validated by the entity.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID(), string(b.Status()), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	return nil
}

// UpdateTravelerDetails persists a traveler-details change already validated
// by the entity.
func (r *BookingRepository) UpdateTravelerDetails(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET traveler_details = $2, updated_at = $3 WHERE id = $1`,
		b.ID(), b.TravelerDetails(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update traveler details", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	return nil
}

const selectBookingSQL = `
SELECT id, plan_id, flight_offer_id, hotel_offer_id, traveler_details, payment_details, confirmation, total_cost, status, created_at, updated_at
FROM bookings`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBookingSQL+` WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, skip, limit int) ([]*booking.Booking, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings`).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	rows, err := r.db.Query(ctx, selectBookingSQL+` ORDER BY created_at DESC OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	bookings := make([]*booking.Booking, 0, limit)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, total, nil
}

// CountByStatus powers the metrics endpoint.
func (r *BookingRepository) CountByStatus(ctx context.Context) (map[booking.Status]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	defer rows.Close()

	counts := make(map[booking.Status]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking counts", err)
		}
		counts[booking.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking counts", err)
	}
	return counts, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, planID                  uuid.UUID
		flightOfferID, hotelOfferID string
		travelerDetails             map[string]string
		paymentDetails              map[string]string
		confirmation                booking.Confirmation
		totalCost                   float64
		status                      string
		createdAt, updatedAt        time.Time
	)
	err := row.Scan(&id, &planID, &flightOfferID, &hotelOfferID,
		&travelerDetails, &paymentDetails, &confirmation,
		&totalCost, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(id, planID, flightOfferID, hotelOfferID,
		travelerDetails, paymentDetails, confirmation, totalCost,
		booking.Status(status), createdAt, updatedAt), nil
}
