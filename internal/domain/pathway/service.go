package pathway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Sadtavut2011/Thai-Cleft-Application-sub009/internal/platform/thaidate"
)

type Service struct {
	repo     Repository
	patients PatientReader
	logger   zerolog.Logger
}

func NewService(repo Repository, patients PatientReader, logger zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, logger: logger}
}

var validStatuses = map[Status]bool{
	StatusCompleted: true, StatusUpcoming: true, StatusOverdue: true,
}

// AddStage appends a new stage to the patient's pathway and returns it
// with its assigned id and projected target date.
func (s *Service) AddStage(ctx context.Context, patientID uuid.UUID, st Stage) (Stage, error) {
	if err := s.validate(&st); err != nil {
		return Stage{}, err
	}
	p, err := s.load(ctx, patientID)
	if err != nil {
		return Stage{}, err
	}
	st.ID = NewStageID
	saved := p.Add(st)
	if err := s.repo.Replace(ctx, patientID, p.Stages); err != nil {
		return Stage{}, err
	}
	return s.project(ctx, patientID, saved), nil
}

// UpdateStage replaces the stage with a matching id. An id of NewStageID
// discards the unsaved add; unknown ids are a tolerated no-op since
// callers act on ids they just read from the same pathway.
func (s *Service) UpdateStage(ctx context.Context, patientID uuid.UUID, st Stage) error {
	if st.ID == NewStageID {
		return nil
	}
	if err := s.validate(&st); err != nil {
		return err
	}
	p, err := s.load(ctx, patientID)
	if err != nil {
		return err
	}
	if !p.Update(st) {
		return nil
	}
	return s.repo.Replace(ctx, patientID, p.Stages)
}

// RemoveStage deletes the stage with the given id; NewStageID and unknown
// ids are no-ops.
func (s *Service) RemoveStage(ctx context.Context, patientID uuid.UUID, id int) error {
	if id == NewStageID {
		return nil
	}
	p, err := s.load(ctx, patientID)
	if err != nil {
		return err
	}
	if !p.Remove(id) {
		return nil
	}
	return s.repo.Replace(ctx, patientID, p.Stages)
}

// EditorView returns the pathway ordered for the stage editor, furthest
// milestone first, with display statuses and projected target dates.
func (s *Service) EditorView(ctx context.Context, patientID uuid.UUID) ([]StageView, error) {
	p, err := s.load(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.projectViews(ctx, patientID, p.EditorSortedView()), nil
}

// ProfileTimelineView returns the pathway in stored order for the patient
// profile timeline.
func (s *Service) ProfileTimelineView(ctx context.Context, patientID uuid.UUID) ([]StageView, error) {
	p, err := s.load(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.projectViews(ctx, patientID, p.ProfileTimelineView()), nil
}

func (s *Service) validate(st *Stage) error {
	if st.TreatmentLabel == "" {
		return fmt.Errorf("treatment_label is required")
	}
	if st.Status == "" {
		st.Status = StatusUpcoming
	}
	if !validStatuses[st.Status] {
		return fmt.Errorf("invalid status: %s", st.Status)
	}
	return nil
}

func (s *Service) load(ctx context.Context, patientID uuid.UUID) (*Pathway, error) {
	stages, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &Pathway{Stages: stages}, nil
}

func (s *Service) project(ctx context.Context, patientID uuid.UUID, st Stage) Stage {
	dob, err := s.patients.BirthDate(ctx, patientID)
	if err != nil {
		s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("patient lookup failed, projecting from fallback birth date")
		dob = nil
	}
	target, fellBack := thaidate.Project(dob, thaidate.ParseOffset(st.AgeOffsetText))
	if fellBack {
		s.logger.Warn().Str("patient_id", patientID.String()).Int("stage_id", st.ID).Msg("no date of birth on record, target date projected from fallback anchor")
	}
	st.TargetDate = target
	return st
}

func (s *Service) projectViews(ctx context.Context, patientID uuid.UUID, views []StageView) []StageView {
	dob, err := s.patients.BirthDate(ctx, patientID)
	if err != nil {
		s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("patient lookup failed, projecting from fallback birth date")
		dob = nil
	}
	if dob == nil && len(views) > 0 {
		s.logger.Warn().Str("patient_id", patientID.String()).Msg("no date of birth on record, target dates projected from fallback anchor")
	}
	for i := range views {
		views[i].TargetDate, _ = thaidate.Project(dob, thaidate.ParseOffset(views[i].AgeOffsetText))
	}
	return views
}
