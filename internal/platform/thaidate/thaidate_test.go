package thaidate

import (
	"testing"
	"time"
)

func TestParseOffset_YearsAndMonths(t *testing.T) {
	got := ParseOffset("2 ปี 3 เดือน")
	if got != (Offset{Years: 2, Months: 3}) {
		t.Errorf("expected {2 3}, got %+v", got)
	}
}

func TestParseOffset_YearsOnly(t *testing.T) {
	if got := ParseOffset("10 ปี"); got != (Offset{Years: 10}) {
		t.Errorf("expected {10 0}, got %+v", got)
	}
}

func TestParseOffset_MonthsOnly(t *testing.T) {
	if got := ParseOffset("6 เดือน"); got != (Offset{Months: 6}) {
		t.Errorf("expected {0 6}, got %+v", got)
	}
}

func TestParseOffset_Newborn(t *testing.T) {
	if got := ParseOffset(Newborn); got != (Offset{}) {
		t.Errorf("expected zero offset, got %+v", got)
	}
}

func TestParseOffset_EmptyAndGarbage(t *testing.T) {
	for _, text := range []string{"", "   ", "ไม่ทราบ", "soon"} {
		if got := ParseOffset(text); got != (Offset{}) {
			t.Errorf("ParseOffset(%q) = %+v, expected zero offset", text, got)
		}
	}
}

func TestParseOffset_NoDigitsBeforeUnit(t *testing.T) {
	if got := ParseOffset("ปี"); got != (Offset{}) {
		t.Errorf("expected zero offset, got %+v", got)
	}
}

func TestOffsetString_Newborn(t *testing.T) {
	if got := (Offset{}).String(); got != Newborn {
		t.Errorf("expected %q, got %q", Newborn, got)
	}
}

func TestOffsetString_NormalizesMonths(t *testing.T) {
	if got := (Offset{Months: 13}).String(); got != "1 ปี 1 เดือน" {
		t.Errorf("expected normalized label, got %q", got)
	}
}

func TestOffsetString_OmitsZeroSegments(t *testing.T) {
	if got := (Offset{Years: 3}).String(); got != "3 ปี" {
		t.Errorf("got %q", got)
	}
	if got := (Offset{Months: 9}).String(); got != "9 เดือน" {
		t.Errorf("got %q", got)
	}
}

func TestOffset_RoundTrip(t *testing.T) {
	for years := 0; years <= 20; years++ {
		for months := 0; months <= 11; months++ {
			o := Offset{Years: years, Months: months}
			if got := ParseOffset(o.String()); got != o {
				t.Fatalf("round trip failed for %+v: got %+v (label %q)", o, got, o.String())
			}
		}
	}
}

func TestSortMonths_YearGranularity(t *testing.T) {
	a := SortMonths("1 ปี 11 เดือน")
	b := SortMonths("1 ปี 1 เดือน")
	if a != 12 || b != 12 {
		t.Errorf("expected both keys 12, got %d and %d", a, b)
	}
}

func TestSortMonths_BareMonths(t *testing.T) {
	if got := SortMonths("7 เดือน"); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestSortMonths_SentinelIsEarliest(t *testing.T) {
	if got := SortMonths(Newborn); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := SortMonths("???"); got != 0 {
		t.Errorf("expected 0 for unparseable text, got %d", got)
	}
}

func TestAddOffset_MonthRollover(t *testing.T) {
	dob := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	got := AddOffset(dob, Offset{Months: 14})
	if got.Year() != 2021 || got.Month() != time.August || got.Day() != 15 {
		t.Errorf("expected 2021-08-15, got %v", got)
	}
}

func TestAddOffset_ClampsLeapDay(t *testing.T) {
	dob := time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)
	got := AddOffset(dob, Offset{Years: 1})
	if got.Year() != 2021 || got.Month() != time.February || got.Day() != 28 {
		t.Errorf("expected clamp to 2021-02-28, got %v", got)
	}
}

func TestAddOffset_ClampsShortMonth(t *testing.T) {
	dob := time.Date(2021, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := AddOffset(dob, Offset{Months: 1})
	if got.Month() != time.February || got.Day() != 28 {
		t.Errorf("expected 2021-02-28, got %v", got)
	}
}

func TestFormat_BuddhistEra(t *testing.T) {
	d := time.Date(2021, time.August, 15, 0, 0, 0, 0, time.UTC)
	if got := Format(d); got != "15 สิงหาคม 2564" {
		t.Errorf("got %q", got)
	}
}

func TestProject_WithDOB(t *testing.T) {
	dob := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	got, fellBack := Project(&dob, Offset{Months: 14})
	if fellBack {
		t.Error("did not expect fallback with a valid dob")
	}
	if got != "15 สิงหาคม 2564" {
		t.Errorf("got %q", got)
	}
}

func TestProject_FallbackWhenDOBMissing(t *testing.T) {
	got, fellBack := Project(nil, Offset{Years: 1})
	if !fellBack {
		t.Error("expected fallback to be reported")
	}
	want := Format(AddOffset(FallbackBirthDate, Offset{Years: 1}))
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestProject_Deterministic(t *testing.T) {
	dob := time.Date(2018, time.March, 3, 0, 0, 0, 0, time.UTC)
	a, _ := Project(&dob, Offset{Years: 5, Months: 2})
	b, _ := Project(&dob, Offset{Years: 5, Months: 2})
	if a != b {
		t.Errorf("projection not deterministic: %q vs %q", a, b)
	}
}

func TestTotalMonths(t *testing.T) {
	if got := (Offset{Years: 2, Months: 5}).TotalMonths(); got != 29 {
		t.Errorf("expected 29, got %d", got)
	}
}
