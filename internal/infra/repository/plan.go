package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/infra"
)

// DBTX is the subset of pgxpool.Pool the repositories need, so tests can
// substitute a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

const insertPlanSQL = `
INSERT INTO travel_plans (id, request, flights, hotels, selection, recommendations, created_at, updated_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	_, err := r.db.Exec(ctx, insertPlanSQL,
		p.ID(), p.Request(), p.Flights(), p.Hotels(), p.Selection(),
		p.Recommendations(), p.CreatedAt(), p.UpdatedAt(), p.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create plan", err)
	}
	return nil
}

const updatePlanSQL = `
UPDATE travel_plans
SET flights = $2, hotels = $3, selection = $4, recommendations = $5, updated_at = $6, expires_at = $7
WHERE id = $1`

// Update persists the result of a refresh. The request and creation time are
// immutable and never rewritten.
func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	tag, err := r.db.Exec(ctx, updatePlanSQL,
		p.ID(), p.Flights(), p.Hotels(), p.Selection(),
		p.Recommendations(), p.UpdatedAt(), p.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM travel_plans WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", pgx.ErrNoRows)
	}
	return nil
}

const selectPlanSQL = `
SELECT id, request, flights, hotels, selection, recommendations, created_at, updated_at, expires_at
FROM travel_plans`

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	row := r.db.QueryRow(ctx, selectPlanSQL+` WHERE id = $1`, id)
	p, err := scanPlan(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find plan", err)
	}
	return p, nil
}

// List returns a page of plans ordered by creation time descending, plus the
// total count for pagination.
func (r *PlanRepository) List(ctx context.Context, skip, limit int) ([]*plan.Plan, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM travel_plans`).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count plans", err)
	}

	rows, err := r.db.Query(ctx, selectPlanSQL+` ORDER BY created_at DESC OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list plans", err)
	}
	defer rows.Close()

	plans := make([]*plan.Plan, 0, limit)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan plan", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate plans", err)
	}
	return plans, total, nil
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM travel_plans`).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count plans", err)
	}
	return total, nil
}

func scanPlan(row pgx.Row) (*plan.Plan, error) {
	var (
		id                              uuid.UUID
		request                         travel.SearchRequest
		flights                         travel.FlightSet
		hotels                          travel.HotelSet
		selection                       plan.Selection
		recommendations                 []string
		createdAt, updatedAt, expiresAt time.Time
	)
	err := row.Scan(&id, &request, &flights, &hotels, &selection,
		&recommendations, &createdAt, &updatedAt, &expiresAt)
	if err != nil {
		return nil, err
	}
	return plan.ReconstructPlan(id, request, flights, hotels, selection,
		recommendations, createdAt, updatedAt, expiresAt), nil
}
