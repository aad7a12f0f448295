package worklist

import "context"

// Repository fetches the four source collections. The by-date methods
// pre-slice on the stored date for efficiency; Aggregate still guards the
// date invariant itself. InboundReferrals feeds the pending-intake
// backlog and is deliberately not date-bounded.
type Repository interface {
	AppointmentsByDate(ctx context.Context, date string) ([]Appointment, error)
	TeleConsultsByDate(ctx context.Context, date string) ([]TeleConsult, error)
	HomeVisitsByDate(ctx context.Context, date string) ([]HomeVisit, error)
	ReferralsByDate(ctx context.Context, date string) ([]Referral, error)
	InboundReferrals(ctx context.Context) ([]Referral, error)
}
