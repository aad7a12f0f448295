package pathway

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository loads and replaces a patient's full stage list. Replace must
// apply the whole list atomically so mutations look like read-compute-swap
// to every reader.
type Repository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Stage, error)
	Replace(ctx context.Context, patientID uuid.UUID, stages []Stage) error
}

// PatientReader supplies the date of birth the target-date projection
// needs. Satisfied by the patient domain service; nil means the patient
// exists but has no recorded date of birth.
type PatientReader interface {
	BirthDate(ctx context.Context, patientID uuid.UUID) (*time.Time, error)
}
