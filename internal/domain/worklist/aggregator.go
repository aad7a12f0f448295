package worklist

import (
	"fmt"
	"sort"
)

// Display templates for the normalized task cards.
const (
	titleAppointment  = "นัดหมายคลินิก"
	titleTele         = "ให้คำปรึกษาทางไกล"
	titleVisit        = "เยี่ยมบ้าน"
	titleVisitLTC     = "เยี่ยมบ้านร่วมกับทีม LTC"
	titleReferral     = "รับส่งต่อผู้ป่วย (Refer In)"
	detailTeleMobile  = "ผ่านแอปพลิเคชันมือถือ"
	detailTeleInHouse = "ผ่านโรงพยาบาล"
)

// Aggregate merges the four source collections into one normalized task
// list for targetDate, ascending by time of day. Only records whose date
// equals targetDate are included; referrals additionally must be inbound.
// The caller supplies "today" so the merge stays deterministic.
func Aggregate(src Sources, targetDate string) []Task {
	var tasks []Task

	for _, a := range src.Appointments {
		if a.Date != targetDate {
			continue
		}
		detail := a.Clinic
		if a.Note != "" {
			detail = fmt.Sprintf("%s - %s", a.Clinic, a.Note)
		}
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("appt-%d", a.ID),
			Type:        TaskAppointment,
			Time:        a.Time,
			Title:       titleAppointment,
			PatientName: a.PatientName,
			PatientHN:   a.PatientHN,
			Detail:      detail,
			Status:      a.Status,
			Source:      a,
		})
	}

	for _, tc := range src.TeleConsults {
		if tc.Date != targetDate {
			continue
		}
		detail := detailTeleInHouse
		if tc.Channel == "mobile" {
			detail = detailTeleMobile
		}
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("tele-%d", tc.ID),
			Type:        TaskTele,
			Time:        tc.Time,
			Title:       titleTele,
			PatientName: tc.PatientName,
			PatientHN:   tc.PatientHN,
			Detail:      detail,
			Status:      tc.Status,
			Source:      tc,
		})
	}

	for _, v := range src.HomeVisits {
		if v.Date != targetDate {
			continue
		}
		title, detail := titleVisit, "เยี่ยมติดตามอาการที่บ้าน"
		if v.LongTermCare {
			title, detail = titleVisitLTC, "ออกเยี่ยมร่วมกับทีมดูแลระยะยาว"
		}
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("visit-%d", v.ID),
			Type:        TaskVisit,
			Time:        v.Time,
			Title:       title,
			PatientName: v.PatientName,
			PatientHN:   v.PatientHN,
			Detail:      detail,
			Status:      v.Status,
			Source:      v,
		})
	}

	for _, r := range src.Referrals {
		if r.Date != targetDate || r.Direction != DirectionInbound {
			continue
		}
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("refer-%d", r.ID),
			Type:        TaskReferral,
			Time:        r.Time,
			Title:       titleReferral,
			PatientName: r.PatientName,
			PatientHN:   r.PatientHN,
			Detail:      fmt.Sprintf("ส่งต่อจาก %s", r.FromHospital),
			Status:      r.Status,
			Source:      r,
		})
	}

	// Shared "HH:MM" format makes lexicographic comparison sufficient.
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Time < tasks[j].Time })
	return tasks
}

// FilterByType narrows a task list to one kind, or all kinds for TypeAll.
// Referral tasks never appear here regardless of the requested type: they
// belong to the pending-intake view, not the personal daily schedule.
func FilterByType(tasks []Task, typ string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Type == TaskReferral {
			continue
		}
		if typ == TypeAll || string(t.Type) == typ {
			out = append(out, t)
		}
	}
	return out
}

// PendingIntake is the referral backlog: every inbound referral still
// awaiting intake, with no date slice. An unset status counts as pending
// (a freshly received record has not been triaged yet). Kept separate
// from Aggregate on purpose; merging the two views would change product
// behavior.
func PendingIntake(referrals []Referral) []Referral {
	out := make([]Referral, 0, len(referrals))
	for _, r := range referrals {
		if r.Direction != DirectionInbound {
			continue
		}
		if r.Status == ReferralStatusPending || r.Status == "" {
			out = append(out, r)
		}
	}
	return out
}
