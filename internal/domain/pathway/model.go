package pathway

import (
	"strings"

	"github.com/Sadtavut2011/Thai-Cleft-Application-sub009/internal/platform/thaidate"
)

// Status is the stored state of a pathway stage.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
	StatusOverdue   Status = "overdue"
)

// NewStageID marks a stage that has not been saved yet. At most one stage
// carries it at a time and it never persists.
const NewStageID = -1

// speechTherapyKeyword promotes a pending stage to overdue in display
// output. Fixed substring match kept as-is pending product clarification.
const speechTherapyKeyword = "ฝึกพูด"

// Booking is a sub-appointment nested under a stage. Read-only display
// data for this engine.
type Booking struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Stage is one milestone in a patient's treatment plan. AgeOffsetText is
// the scheduling source of truth; TargetDate is always derived from it
// plus the patient's date of birth, never entered directly.
type Stage struct {
	ID                int       `json:"id"`
	AgeOffsetText     string    `json:"age_offset_text"`
	TreatmentLabel    string    `json:"treatment_label"`
	TargetDate        string    `json:"target_date"`
	Status            Status    `json:"status"`
	SecondaryBookings []Booking `json:"secondary_bookings,omitempty"`
}

// DisplayStatus derives the effective status for rendering. A pending
// stage whose treatment label names speech therapy shows as overdue; the
// stored Status is left untouched.
func (s Stage) DisplayStatus() Status {
	if s.Status == StatusUpcoming && strings.Contains(s.TreatmentLabel, speechTherapyKeyword) {
		return StatusOverdue
	}
	return s.Status
}

// SortMonths is the stage's ordering key in the pathway editor: the age
// offset in months at year granularity (see thaidate.SortMonths).
func (s Stage) SortMonths() int {
	return thaidate.SortMonths(s.AgeOffsetText)
}

// StageView is a rendering-ready stage: the stored fields plus the derived
// display status and resolved target date.
type StageView struct {
	Stage
	DisplayStatus Status `json:"display_status"`
}
