package pathway

import "sort"

// Pathway is one patient's ordered stage list. All operations are pure,
// single-writer transformations over the caller's copy; identity lives in
// integer stage ids unique within the pathway.
type Pathway struct {
	Stages []Stage
}

// Add finalizes a new stage: it assigns max(existing ids)+1 (1 on an empty
// pathway), appends, and returns the stage as stored. The incoming id is
// ignored; callers hand in NewStageID.
func (p *Pathway) Add(s Stage) Stage {
	next := 1
	for _, st := range p.Stages {
		if st.ID >= next {
			next = st.ID + 1
		}
	}
	s.ID = next
	p.Stages = append(p.Stages, s)
	return s
}

// Update replaces the stage with a matching id. NewStageID means "discard
// the unsaved add" and leaves the list alone, as does an unknown id.
func (p *Pathway) Update(s Stage) bool {
	if s.ID == NewStageID {
		return false
	}
	for i, st := range p.Stages {
		if st.ID == s.ID {
			p.Stages[i] = s
			return true
		}
	}
	return false
}

// Remove filters out the stage with the given id. NewStageID and unknown
// ids are silent no-ops.
func (p *Pathway) Remove(id int) bool {
	if id == NewStageID {
		return false
	}
	for i, st := range p.Stages {
		if st.ID == id {
			p.Stages = append(p.Stages[:i], p.Stages[i+1:]...)
			return true
		}
	}
	return false
}

// EditorSortedView returns the stages ordered for the pathway editor:
// furthest age offset first, ties keeping source order (stable). The
// stored order is not mutated.
func (p *Pathway) EditorSortedView() []StageView {
	views := p.views()
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SortMonths() > views[j].SortMonths()
	})
	return views
}

// ProfileTimelineView returns the stages in source order. The profile
// timeline trusts the stored order rather than re-sorting, so it can
// legitimately disagree with the editor view.
func (p *Pathway) ProfileTimelineView() []StageView {
	return p.views()
}

func (p *Pathway) views() []StageView {
	views := make([]StageView, len(p.Stages))
	for i, st := range p.Stages {
		views[i] = StageView{Stage: st, DisplayStatus: st.DisplayStatus()}
	}
	return views
}
