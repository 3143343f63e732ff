//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	dombooking "travel-planner/internal/domain/booking"
	domplan "travel-planner/internal/domain/plan"
	"travel-planner/internal/infra"
	"travel-planner/internal/infra/repository"
	"travel-planner/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// timesEqual compares instants, not wall-clock representations. TIMESTAMPTZ
// round-trips change the location.
var timesEqual = cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })

func rebuildWithID(id uuid.UUID, p *domplan.Plan) *domplan.Plan {
	return domplan.ReconstructPlan(id, p.Request(), p.Flights(), p.Hotels(),
		p.Selection(), p.Recommendations(), p.CreatedAt(), p.UpdatedAt(), p.ExpiresAt())
}

func rebuildBookingWithID(id uuid.UUID, b *dombooking.Booking) *dombooking.Booking {
	return dombooking.ReconstructBooking(id, b.PlanID(), b.FlightOfferID(), b.HotelOfferID(),
		b.TravelerDetails(), b.PaymentDetails(), b.Confirmation(), b.TotalCost(),
		b.Status(), b.CreatedAt(), b.UpdatedAt())
}

type RepositoryIntegrationSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	plans    *repository.PlanRepository
	bookings *repository.BookingRepository
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.pool = setupDatabase(s.T())
	s.plans = repository.NewPlanRepository(s.pool)
	s.bookings = repository.NewBookingRepository(s.pool)
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	resetTables(s.T(), s.pool)
}

func (s *RepositoryIntegrationSuite) TestPlanRoundTrip() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()

	s.Require().NoError(s.plans.Create(ctx, p))

	got, err := s.plans.FindByID(ctx, p.ID())
	s.Require().NoError(err)

	s.Equal(p.ID(), got.ID())
	s.Empty(cmp.Diff(p.Request(), got.Request(), timesEqual))
	s.Empty(cmp.Diff(p.Flights(), got.Flights(), timesEqual))
	s.Empty(cmp.Diff(p.Hotels(), got.Hotels(), timesEqual))
	s.Empty(cmp.Diff(p.Selection(), got.Selection(), timesEqual))
	s.Equal(p.Recommendations(), got.Recommendations())
	s.True(got.CreatedAt().Equal(p.CreatedAt()))
	s.True(got.ExpiresAt().Equal(p.ExpiresAt()))
}

func (s *RepositoryIntegrationSuite) TestPlanUpdate() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	refreshed := builder.NewPlanBuilder().With(func(b *builder.PlanBuilder) {
		b.CreatedAt = b.CreatedAt.Add(6 * time.Hour)
	}).BuildEntity()
	// Rebuild under the original id so the update targets the stored row.
	refreshed = rebuildWithID(p.ID(), refreshed)

	s.Require().NoError(s.plans.Update(ctx, refreshed))

	got, err := s.plans.FindByID(ctx, p.ID())
	s.Require().NoError(err)
	s.True(got.UpdatedAt().Equal(refreshed.UpdatedAt()))
	s.True(got.ExpiresAt().Equal(refreshed.ExpiresAt()))
	// The original request and creation time survive a refresh untouched.
	s.True(got.CreatedAt().Equal(p.CreatedAt()))
	s.Empty(cmp.Diff(p.Request(), got.Request(), timesEqual))
}

func (s *RepositoryIntegrationSuite) TestPlanUpdateMissing() {
	err := s.plans.Update(context.Background(), builder.NewPlanBuilder().BuildEntity())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *RepositoryIntegrationSuite) TestPlanDuplicateID() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	err := s.plans.Create(ctx, p)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *RepositoryIntegrationSuite) TestPlanDelete() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	s.Require().NoError(s.plans.Delete(ctx, p.ID()))

	_, err := s.plans.FindByID(ctx, p.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))

	err = s.plans.Delete(ctx, p.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *RepositoryIntegrationSuite) TestPlanListPagination() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)
	var ids []uuid.UUID
	for i := range 5 {
		p := builder.NewPlanBuilder().With(func(b *builder.PlanBuilder) {
			b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		}).BuildEntity()
		s.Require().NoError(s.plans.Create(ctx, p))
		ids = append(ids, p.ID())
	}

	page, total, err := s.plans.List(ctx, 1, 2)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(page, 2)
	// Newest first, so skipping one lands on the second-newest.
	s.Equal(ids[3], page[0].ID())
	s.Equal(ids[2], page[1].ID())

	count, err := s.plans.Count(ctx)
	s.Require().NoError(err)
	s.Equal(int64(5), count)
}

func (s *RepositoryIntegrationSuite) TestBookingRoundTrip() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.PlanID = p.ID()
	}).BuildEntity()
	s.Require().NoError(s.bookings.Create(ctx, b))

	got, err := s.bookings.FindByID(ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(b.ID(), got.ID())
	s.Equal(p.ID(), got.PlanID())
	s.Equal(b.FlightOfferID(), got.FlightOfferID())
	s.Equal(b.TravelerDetails(), got.TravelerDetails())
	s.Equal(b.PaymentDetails(), got.PaymentDetails())
	s.Equal(b.Confirmation(), got.Confirmation())
	s.Equal(b.TotalCost(), got.TotalCost())
	s.Equal(dombooking.StatusConfirmed, got.Status())
}

func (s *RepositoryIntegrationSuite) TestBookingRequiresPlan() {
	b := builder.NewBookingBuilder().BuildEntity()
	err := s.bookings.Create(context.Background(), b)
	s.True(infra.IsKind(err, infra.KindForeignKeyViolated))
}

func (s *RepositoryIntegrationSuite) TestBookingStatusUpdate() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.PlanID = p.ID()
	}).BuildEntity()
	s.Require().NoError(s.bookings.Create(ctx, b))

	paid := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.PlanID = p.ID()
		bb.Status = dombooking.StatusPaid
	}).BuildEntity()
	paid = rebuildBookingWithID(b.ID(), paid)
	s.Require().NoError(s.bookings.UpdateStatus(ctx, paid))

	got, err := s.bookings.FindByID(ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(dombooking.StatusPaid, got.Status())

	missing := builder.NewBookingBuilder().BuildEntity()
	err = s.bookings.UpdateStatus(ctx, missing)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *RepositoryIntegrationSuite) TestBookingTravelerDetailsUpdate() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.PlanID = p.ID()
	}).BuildEntity()
	s.Require().NoError(s.bookings.Create(ctx, b))

	details := map[string]string{"name": "Ada Wong", "passport": "X1234567"}
	modified := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.PlanID = p.ID()
		bb.TravelerDetails = details
	}).BuildEntity()
	modified = rebuildBookingWithID(b.ID(), modified)
	s.Require().NoError(s.bookings.UpdateTravelerDetails(ctx, modified))

	got, err := s.bookings.FindByID(ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(details, got.TravelerDetails())

	missing := builder.NewBookingBuilder().BuildEntity()
	err = s.bookings.UpdateTravelerDetails(ctx, missing)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *RepositoryIntegrationSuite) TestBookingCountByStatus() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	statuses := []dombooking.Status{
		dombooking.StatusConfirmed,
		dombooking.StatusConfirmed,
		dombooking.StatusCancelled,
	}
	for _, status := range statuses {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.PlanID = p.ID()
			bb.Status = status
		}).BuildEntity()
		s.Require().NoError(s.bookings.Create(ctx, b))
	}

	counts, err := s.bookings.CountByStatus(ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), counts[dombooking.StatusConfirmed])
	s.Equal(int64(1), counts[dombooking.StatusCancelled])
}

func (s *RepositoryIntegrationSuite) TestCascadeDelete() {
	ctx := context.Background()
	p := builder.NewPlanBuilder().BuildEntity()
	s.Require().NoError(s.plans.Create(ctx, p))

	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.PlanID = p.ID()
	}).BuildEntity()
	s.Require().NoError(s.bookings.Create(ctx, b))

	s.Require().NoError(s.plans.Delete(ctx, p.ID()))

	_, err := s.bookings.FindByID(ctx, b.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}
