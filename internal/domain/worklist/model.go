package worklist

// TaskType tags the source kind of a normalized daily task.
type TaskType string

const (
	TaskAppointment TaskType = "appointment"
	TaskTele        TaskType = "tele"
	TaskVisit       TaskType = "visit"
	TaskReferral    TaskType = "referral"

	// TypeAll requests every personal task kind from FilterByType.
	TypeAll = "all"
)

// Referral directions; only inbound ("Refer In") records enter the
// worklist and intake views.
const (
	DirectionInbound  = "in"
	DirectionOutbound = "out"
)

// ReferralStatusPending marks a referral awaiting intake.
const ReferralStatusPending = "pending"

// Appointment is a clinic appointment for a calendar date.
type Appointment struct {
	ID          int    `json:"id"`
	PatientName string `json:"patient_name"`
	PatientHN   string `json:"patient_hn"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Clinic      string `json:"clinic"`
	Note        string `json:"note"`
	Status      string `json:"status"`
}

// TeleConsult is a scheduled tele-consultation. Channel is "mobile" for
// app-based calls or "hospital" for calls run from a hospital station.
type TeleConsult struct {
	ID          int    `json:"id"`
	PatientName string `json:"patient_name"`
	PatientHN   string `json:"patient_hn"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Channel     string `json:"channel"`
	Status      string `json:"status"`
}

// HomeVisit is a scheduled home visit; LongTermCare marks a joint visit
// with the long-term-care team.
type HomeVisit struct {
	ID           int    `json:"id"`
	PatientName  string `json:"patient_name"`
	PatientHN    string `json:"patient_hn"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	LongTermCare bool   `json:"long_term_care"`
	Status       string `json:"status"`
}

// Referral is a patient transfer record between facilities.
type Referral struct {
	ID           int    `json:"id"`
	PatientName  string `json:"patient_name"`
	PatientHN    string `json:"patient_hn"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Direction    string `json:"direction"`
	FromHospital string `json:"from_hospital"`
	Status       string `json:"status"`
}

// Task is the normalized record every source kind maps into. Source
// carries the original item as an opaque passthrough.
type Task struct {
	ID          string   `json:"id"`
	Type        TaskType `json:"type"`
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	PatientName string   `json:"patient_name"`
	PatientHN   string   `json:"patient_hn"`
	Detail      string   `json:"detail"`
	Status      string   `json:"status"`
	Source      any      `json:"source,omitempty"`
}

// Sources bundles the four independent collections a day's worklist is
// drawn from. Any of them may be empty or nil.
type Sources struct {
	Appointments []Appointment
	TeleConsults []TeleConsult
	HomeVisits   []HomeVisit
	Referrals    []Referral
}
