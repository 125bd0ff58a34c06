package usecase

import (
	"context"
	"sort"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

const upcomingCheckInLimit = 4

type DashboardUseCase struct {
	Deps
}

func NewDashboardUseCase(d Deps) *DashboardUseCase {
	return &DashboardUseCase{Deps: d}
}

// Execute summarises the current week. It never mutates the store.
func (uc *DashboardUseCase) Execute(ctx context.Context) (*DashboardOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := uc.now()
	out := &DashboardOutput{
		Today:            now.Format(entity.DateLayout),
		WeekOf:           entity.WeekOf(now),
		UpcomingCheckIns: []CheckIn{},
	}

	uc.Store.View(func(c *database.Collections) {
		for _, b := range c.Bookings.List() {
			if b.WeekOf == out.WeekOf {
				out.TrialsThisWeek++
			}
		}
		for _, f := range c.FollowUps.List() {
			if f.FollowUpStatus == entity.FollowUpWon || f.FollowUpStatus == entity.FollowUpLost {
				continue
			}
			out.FollowUpsAwaitingAction++
			if f.IsOverdue(out.Today) {
				out.OverdueFollowUps++
			}
		}
		for _, e := range c.Enrolments.List() {
			switch e.Status {
			case entity.EnrolmentActive:
				out.ActiveEnrolments++
			case entity.EnrolmentPendingPayment:
				out.PendingPayments++
			}
		}
		for _, s := range c.Classes.List() {
			out.OpenClassSpots += s.SpotsLeft()
		}
		for _, p := range c.Placements.List() {
			if p.Status == entity.InternshipCompleted || p.NextCheckIn < out.Today {
				continue
			}
			out.UpcomingCheckIns = append(out.UpcomingCheckIns, CheckIn{
				PlacementID: p.ID,
				Intern:      p.Intern,
				Mentor:      p.Mentor,
				Date:        p.NextCheckIn,
			})
		}
	})

	sort.SliceStable(out.UpcomingCheckIns, func(i, j int) bool {
		return out.UpcomingCheckIns[i].Date < out.UpcomingCheckIns[j].Date
	})
	if len(out.UpcomingCheckIns) > upcomingCheckInLimit {
		out.UpcomingCheckIns = out.UpcomingCheckIns[:upcomingCheckInLimit]
	}
	return out, nil
}
