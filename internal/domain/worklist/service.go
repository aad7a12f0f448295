package worklist

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// DailyTasks builds the merged worklist for a target date, optionally
// narrowed to one task kind. An empty typ means TypeAll. A failed source
// collection contributes zero tasks rather than failing the whole list;
// the failure is logged as a data-quality signal.
func (s *Service) DailyTasks(ctx context.Context, date, typ string) ([]Task, error) {
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}
	if typ == "" {
		typ = TypeAll
	}

	var src Sources
	var err error
	if src.Appointments, err = s.repo.AppointmentsByDate(ctx, date); err != nil {
		s.logger.Warn().Err(err).Str("date", date).Msg("appointment source unavailable")
	}
	if src.TeleConsults, err = s.repo.TeleConsultsByDate(ctx, date); err != nil {
		s.logger.Warn().Err(err).Str("date", date).Msg("tele-consult source unavailable")
	}
	if src.HomeVisits, err = s.repo.HomeVisitsByDate(ctx, date); err != nil {
		s.logger.Warn().Err(err).Str("date", date).Msg("home-visit source unavailable")
	}
	if src.Referrals, err = s.repo.ReferralsByDate(ctx, date); err != nil {
		s.logger.Warn().Err(err).Str("date", date).Msg("referral source unavailable")
	}

	return FilterByType(Aggregate(src, date), typ), nil
}

// PendingIntake returns the inbound referral backlog awaiting triage.
func (s *Service) PendingIntake(ctx context.Context) ([]Referral, error) {
	referrals, err := s.repo.InboundReferrals(ctx)
	if err != nil {
		return nil, err
	}
	return PendingIntake(referrals), nil
}
