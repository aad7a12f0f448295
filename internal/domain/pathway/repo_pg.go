package pathway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const stageCols = `stage_id, age_offset_text, treatment_label, status, secondary_bookings`

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Stage, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+stageCols+` FROM pathway_stage WHERE patient_id = $1 ORDER BY position`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stages []Stage
	for rows.Next() {
		var st Stage
		var bookings []byte
		if err := rows.Scan(&st.ID, &st.AgeOffsetText, &st.TreatmentLabel, &st.Status, &bookings); err != nil {
			return nil, err
		}
		if len(bookings) > 0 {
			if err := json.Unmarshal(bookings, &st.SecondaryBookings); err != nil {
				return nil, fmt.Errorf("decode secondary bookings for stage %d: %w", st.ID, err)
			}
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}

// Replace swaps the patient's stored stage list in one transaction,
// keeping mutations atomic from the readers' perspective.
func (r *repoPG) Replace(ctx context.Context, patientID uuid.UUID, stages []Stage) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pathway_stage WHERE patient_id = $1`, patientID); err != nil {
		return err
	}
	for pos, st := range stages {
		bookings, err := json.Marshal(st.SecondaryBookings)
		if err != nil {
			return fmt.Errorf("encode secondary bookings for stage %d: %w", st.ID, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO pathway_stage (patient_id, stage_id, position, age_offset_text, treatment_label, status, secondary_bookings)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			patientID, st.ID, pos, st.AgeOffsetText, st.TreatmentLabel, st.Status, bookings); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
