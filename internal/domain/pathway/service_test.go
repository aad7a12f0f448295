package pathway

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mockRepo struct{ store map[uuid.UUID][]Stage }

func newMockRepo() *mockRepo { return &mockRepo{store: make(map[uuid.UUID][]Stage)} }
func (m *mockRepo) ListByPatient(_ context.Context, pid uuid.UUID) ([]Stage, error) {
	out := make([]Stage, len(m.store[pid])); copy(out, m.store[pid]); return out, nil
}
func (m *mockRepo) Replace(_ context.Context, pid uuid.UUID, stages []Stage) error {
	out := make([]Stage, len(stages)); copy(out, stages); m.store[pid] = out; return nil
}

type mockPatients struct{ dob map[uuid.UUID]*time.Time }

func (m *mockPatients) BirthDate(_ context.Context, pid uuid.UUID) (*time.Time, error) {
	return m.dob[pid], nil
}

func newTestService(repo *mockRepo, patients *mockPatients) *Service {
	return NewService(repo, patients, zerolog.Nop())
}

func TestAddStage_AssignsIDAndProjectsTargetDate(t *testing.T) {
	pid := uuid.New()
	dob := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(newMockRepo(), &mockPatients{dob: map[uuid.UUID]*time.Time{pid: &dob}})

	saved, err := svc.AddStage(context.Background(), pid, Stage{ID: NewStageID, AgeOffsetText: "1 ปี 2 เดือน", TreatmentLabel: "ผ่าตัดเพดานปาก"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("expected id 1, got %d", saved.ID)
	}
	if saved.TargetDate != "15 สิงหาคม 2564" {
		t.Errorf("unexpected target date %q", saved.TargetDate)
	}
}

func TestAddStage_MissingTreatment(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPatients{dob: map[uuid.UUID]*time.Time{}})
	if _, err := svc.AddStage(context.Background(), uuid.New(), Stage{AgeOffsetText: "1 ปี"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestAddStage_DefaultsToUpcoming(t *testing.T) {
	pid := uuid.New()
	repo := newMockRepo()
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{}})
	saved, err := svc.AddStage(context.Background(), pid, Stage{TreatmentLabel: "ฝึกพูด"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Status != StatusUpcoming {
		t.Errorf("expected upcoming, got %s", saved.Status)
	}
}

func TestUpdateStage_DiscardSentinelLeavesStore(t *testing.T) {
	pid := uuid.New()
	repo := newMockRepo()
	repo.store[pid] = []Stage{{ID: 1, TreatmentLabel: "a", Status: StatusUpcoming}}
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{}})

	if err := svc.UpdateStage(context.Background(), pid, Stage{ID: NewStageID, TreatmentLabel: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.store[pid]) != 1 || repo.store[pid][0].TreatmentLabel != "a" {
		t.Errorf("store altered by discard: %+v", repo.store[pid])
	}
}

func TestUpdateStage_UnknownIDIsSilent(t *testing.T) {
	pid := uuid.New()
	repo := newMockRepo()
	repo.store[pid] = []Stage{{ID: 1, TreatmentLabel: "a", Status: StatusUpcoming}}
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{}})

	if err := svc.UpdateStage(context.Background(), pid, Stage{ID: 42, TreatmentLabel: "x", Status: StatusUpcoming}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if repo.store[pid][0].TreatmentLabel != "a" {
		t.Errorf("store altered: %+v", repo.store[pid])
	}
}

func TestRemoveStage_DiscardSentinelLeavesStore(t *testing.T) {
	pid := uuid.New()
	repo := newMockRepo()
	repo.store[pid] = []Stage{{ID: 1}}
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{}})

	if err := svc.RemoveStage(context.Background(), pid, NewStageID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.store[pid]) != 1 {
		t.Errorf("store altered by discard: %+v", repo.store[pid])
	}
}

func TestRemoveStage_Removes(t *testing.T) {
	pid := uuid.New()
	repo := newMockRepo()
	repo.store[pid] = []Stage{{ID: 1}, {ID: 2}}
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{}})

	if err := svc.RemoveStage(context.Background(), pid, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.store[pid]) != 1 || repo.store[pid][0].ID != 2 {
		t.Errorf("unexpected store: %+v", repo.store[pid])
	}
}

func TestEditorView_SortsAndDerivesStatus(t *testing.T) {
	pid := uuid.New()
	dob := time.Date(2019, time.January, 10, 0, 0, 0, 0, time.UTC)
	repo := newMockRepo()
	repo.store[pid] = []Stage{
		{ID: 1, AgeOffsetText: "แรกเกิด", TreatmentLabel: "ผ่าตัดริมฝีปาก", Status: StatusCompleted},
		{ID: 2, AgeOffsetText: "2 ปี", TreatmentLabel: "ฝึกพูด", Status: StatusUpcoming},
	}
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{pid: &dob}})

	views, err := svc.EditorView(context.Background(), pid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].ID != 2 {
		t.Errorf("expected furthest stage first, got id %d", views[0].ID)
	}
	if views[0].DisplayStatus != StatusOverdue {
		t.Errorf("expected speech therapy stage displayed overdue, got %s", views[0].DisplayStatus)
	}
	if views[0].Status != StatusUpcoming {
		t.Errorf("stored status leaked mutation: %s", views[0].Status)
	}
	if views[0].TargetDate != "10 มกราคม 2564" {
		t.Errorf("unexpected target date %q", views[0].TargetDate)
	}
	if repo.store[pid][1].Status != StatusUpcoming {
		t.Errorf("repo copy mutated: %s", repo.store[pid][1].Status)
	}
}

func TestProfileTimelineView_KeepsStoredOrder(t *testing.T) {
	pid := uuid.New()
	repo := newMockRepo()
	repo.store[pid] = []Stage{
		{ID: 1, AgeOffsetText: "5 ปี", TreatmentLabel: "a", Status: StatusUpcoming},
		{ID: 2, AgeOffsetText: "แรกเกิด", TreatmentLabel: "b", Status: StatusCompleted},
	}
	svc := newTestService(repo, &mockPatients{dob: map[uuid.UUID]*time.Time{}})

	views, err := svc.ProfileTimelineView(context.Background(), pid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].ID != 1 || views[1].ID != 2 {
		t.Errorf("profile timeline re-sorted: %d %d", views[0].ID, views[1].ID)
	}
}
