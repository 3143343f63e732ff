package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domplan "travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/infra"
	"travel-planner/internal/pkg/clock"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/queries"
)

var (
	ErrInvalidSearchRequest = errs.New("invalid search request")
	ErrPlanNotFoundWrite    = errs.New("plan not found")
)

type PlanCommands interface {
	CreatePlan(ctx context.Context, req travel.SearchRequest) (*queries.PlanView, error)
	// RefreshPlan validates the plan exists, then re-runs the pipeline in
	// the background. The returned channel yields the final outcome once.
	RefreshPlan(ctx context.Context, id uuid.UUID) (<-chan error, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
}

type planUseCaseImpl struct {
	repo      PlanRepository
	collector OfferCollector
	selector  OfferSelector
	advisor   RecommendationAdvisor
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPlanUseCase(
	repo PlanRepository,
	collector OfferCollector,
	selector OfferSelector,
	advisor RecommendationAdvisor,
	clk clock.Clock,
	logger *slog.Logger,
) PlanCommands {
	return &planUseCaseImpl{
		repo:      repo,
		collector: collector,
		selector:  selector,
		advisor:   advisor,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *planUseCaseImpl) CreatePlan(ctx context.Context, req travel.SearchRequest) (*queries.PlanView, error) {
	if err := req.Validate(uc.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchRequest)
	}

	p, err := uc.runPipeline(ctx, req, nil)
	if err != nil {
		return nil, err
	}

	// A cancelled request must not leave a half-built plan behind.
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "plan creation cancelled")
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "plan created",
		slog.String("plan_id", p.ID().String()),
		slog.String("destination", req.Destination),
		slog.Float64("total_cost", p.Selection().TotalCost),
		slog.Bool("over_budget", p.Selection().OverBudget))
	return queries.NewPlanView(p), nil
}

func (uc *planUseCaseImpl) RefreshPlan(ctx context.Context, id uuid.UUID) (<-chan error, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlanNotFoundWrite
		}
		return nil, err
	}

	done := make(chan error, 1)
	// Detached from the request context: the HTTP response returns before
	// the refresh finishes.
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		done <- uc.refresh(bgCtx, p)
	}()
	return done, nil
}

func (uc *planUseCaseImpl) refresh(ctx context.Context, p *domplan.Plan) error {
	refreshed, err := uc.runPipeline(ctx, p.Request(), p)
	if err != nil {
		uc.logger.ErrorContext(ctx, "plan refresh failed",
			slog.String("plan_id", p.ID().String()), slog.String("error", err.Error()))
		return err
	}
	if err := uc.repo.Update(ctx, refreshed); err != nil {
		uc.logger.ErrorContext(ctx, "plan refresh persist failed",
			slog.String("plan_id", p.ID().String()), slog.String("error", err.Error()))
		return err
	}
	uc.logger.InfoContext(ctx, "plan refreshed", slog.String("plan_id", p.ID().String()))
	return nil
}

// runPipeline executes collect, select, advise. With existing == nil it
// builds a new plan; otherwise it refreshes the given one in place.
func (uc *planUseCaseImpl) runPipeline(ctx context.Context, req travel.SearchRequest, existing *domplan.Plan) (*domplan.Plan, error) {
	flights, hotels, partial := uc.collector.Collect(ctx, req)
	if partial.Any() {
		uc.logger.WarnContext(ctx, "some providers failed",
			slog.Any("flight_sources", partial.FlightSources),
			slog.Any("hotel_sources", partial.HotelSources))
	}

	selection, err := uc.selector.Select(flights, hotels, req)
	if err != nil {
		return nil, errs.Wrap(err, "offer selection failed")
	}

	recommendations := uc.advisor.Advise(ctx, selection, req)

	services := &domplan.Services{Clock: uc.clock}
	if existing != nil {
		if err := existing.Refresh(services, flights, hotels, selection, recommendations); err != nil {
			return nil, err
		}
		return existing, nil
	}
	return domplan.NewPlan(services, req, flights, hotels, selection, recommendations)
}

func (uc *planUseCaseImpl) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPlanNotFoundWrite
		}
		return err
	}
	return nil
}
