package worklist

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// Date columns are selected as text: the models carry civil dates as
// "YYYY-MM-DD" strings and pgx cannot scan a native date into a string.
const (
	apptCols  = `id, patient_name, patient_hn, visit_date::text, visit_time, clinic, note, status`
	teleCols  = `id, patient_name, patient_hn, visit_date::text, visit_time, channel, status`
	visitCols = `id, patient_name, patient_hn, visit_date::text, visit_time, long_term_care, status`
	referCols = `id, patient_name, patient_hn, refer_date::text, refer_time, direction, from_hospital, status`
)

func (r *repoPG) AppointmentsByDate(ctx context.Context, date string) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointment WHERE visit_date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (Appointment, error) {
		var a Appointment
		err := row.Scan(&a.ID, &a.PatientName, &a.PatientHN, &a.Date, &a.Time, &a.Clinic, &a.Note, &a.Status)
		return a, err
	})
}

func (r *repoPG) TeleConsultsByDate(ctx context.Context, date string) ([]TeleConsult, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+teleCols+` FROM tele_consult WHERE visit_date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (TeleConsult, error) {
		var tc TeleConsult
		err := row.Scan(&tc.ID, &tc.PatientName, &tc.PatientHN, &tc.Date, &tc.Time, &tc.Channel, &tc.Status)
		return tc, err
	})
}

func (r *repoPG) HomeVisitsByDate(ctx context.Context, date string) ([]HomeVisit, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+visitCols+` FROM home_visit WHERE visit_date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (HomeVisit, error) {
		var v HomeVisit
		err := row.Scan(&v.ID, &v.PatientName, &v.PatientHN, &v.Date, &v.Time, &v.LongTermCare, &v.Status)
		return v, err
	})
}

func (r *repoPG) ReferralsByDate(ctx context.Context, date string) ([]Referral, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+referCols+` FROM referral WHERE refer_date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanReferral)
}

func (r *repoPG) InboundReferrals(ctx context.Context) ([]Referral, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+referCols+` FROM referral WHERE direction = $1 ORDER BY refer_date, id`, DirectionInbound)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanReferral)
}

func scanReferral(row pgx.Rows) (Referral, error) {
	var rf Referral
	err := row.Scan(&rf.ID, &rf.PatientName, &rf.PatientHN, &rf.Date, &rf.Time, &rf.Direction, &rf.FromHospital, &rf.Status)
	return rf, err
}

func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
