// Package thaidate converts between Thai age-offset labels ("2 ปี 3 เดือน",
// "แรกเกิด") and structured durations, and projects them from a birth date
// onto a Thai Buddhist-Era display date.
package thaidate

import (
	"fmt"
	"strings"
	"time"
)

// Newborn is the sentinel label for a zero offset.
const Newborn = "แรกเกิด"

const (
	yearUnit  = "ปี"
	monthUnit = "เดือน"
)

// FallbackBirthDate anchors projections when a patient has no usable date
// of birth. Placeholder value pending product confirmation.
var FallbackBirthDate = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// buddhistEraOffset is added to the Gregorian year for display only.
const buddhistEraOffset = 543

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// Offset is an age offset since birth. Months is kept in 0..11 by the
// serializer; parsing never produces an error, only a zero offset.
type Offset struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// ParseOffset extracts an Offset from a free-text age label. Empty, the
// newborn sentinel, and unparseable text all yield the zero offset: absence
// of a number means "unknown", not an error.
func ParseOffset(text string) Offset {
	text = strings.TrimSpace(text)
	if text == "" || text == Newborn {
		return Offset{}
	}
	if head, tail, ok := strings.Cut(text, yearUnit); ok {
		o := Offset{Years: firstInt(head)}
		if rest, _, found := strings.Cut(tail, monthUnit); found {
			o.Months = firstInt(rest)
		}
		return o
	}
	if head, _, ok := strings.Cut(text, monthUnit); ok {
		return Offset{Months: firstInt(head)}
	}
	return Offset{}
}

// String renders the canonical label. A zero offset is the newborn
// sentinel; months are normalized so the output never shows 12+ เดือน.
func (o Offset) String() string {
	o = o.normalized()
	if o.Years == 0 && o.Months == 0 {
		return Newborn
	}
	var parts []string
	if o.Years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", o.Years, yearUnit))
	}
	if o.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", o.Months, monthUnit))
	}
	return strings.Join(parts, " ")
}

func (o Offset) normalized() Offset {
	if o.Months > 11 {
		o.Years += o.Months / 12
		o.Months %= 12
	}
	return o
}

// TotalMonths returns the offset in whole months.
func (o Offset) TotalMonths() int { return o.Years*12 + o.Months }

// SortMonths converts an age label to the month count used for ordering
// pathway stages. When a years unit is present only the first number
// counts (year granularity: "1 ปี 11 เดือน" and "1 ปี 1 เดือน" both key 12);
// a bare number is taken as months; sentinel or unparseable text keys 0.
func SortMonths(text string) int {
	n := firstInt(text)
	if strings.Contains(text, yearUnit) {
		return n * 12
	}
	return n
}

// AddOffset advances dob by the offset with calendar-correct month
// arithmetic: month addition rolls into subsequent years and the day of
// month clamps to the last valid day of the resulting month (Feb 29 cases).
func AddOffset(dob time.Time, o Offset) time.Time {
	y := dob.Year() + o.Years
	m := int(dob.Month()) + o.Months
	y += (m - 1) / 12
	m = (m-1)%12 + 1
	d := dob.Day()
	if last := daysIn(y, time.Month(m)); d > last {
		d = last
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, dob.Location())
}

// Format renders t as "<day> <Thai month> <Buddhist year>". The era offset
// applies at display time only, never during arithmetic.
func Format(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+buddhistEraOffset)
}

// Project resolves the target display date for an offset applied to a
// patient's date of birth. A nil dob falls back to FallbackBirthDate; the
// second return reports that fallback so callers can surface the
// data-quality signal. Deterministic: no wall-clock dependency.
func Project(dob *time.Time, o Offset) (string, bool) {
	anchor := FallbackBirthDate
	fellBack := dob == nil
	if !fellBack {
		anchor = *dob
	}
	return Format(AddOffset(anchor, o)), fellBack
}

// firstInt returns the first run of ASCII digits in s, or 0 when none
// exists.
func firstInt(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	return n
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
