package speech

import "github.com/voxhollow/descant/speech/document"

// tableMemory remembers the most recently reported table coordinates so
// repeated rows and columns inside one table stay quiet.
type tableMemory struct {
	tableID      string
	rowNumber    int
	rowSpan      int
	columnNumber int
	columnSpan   int
	treeLevel    int
}

// SubjectState is the cached snapshot of the last description of one
// subject. It is replaced wholesale after each successful describe call and
// never partially mutated.
type SubjectState struct {
	ControlFieldStack []*document.ControlField
	FormatField       *document.FormatField
	Indentation       string
}

// clone returns a copy safe to hand to a describe call as working state.
func (s *SubjectState) clone() *SubjectState {
	out := &SubjectState{Indentation: s.Indentation}
	out.ControlFieldStack = make([]*document.ControlField, len(s.ControlFieldStack))
	copy(out.ControlFieldStack, s.ControlFieldStack)
	out.FormatField = s.FormatField.Clone()
	return out
}

// subjectRegistry keys cached snapshots by a stable subject identifier.
// Entries are removed explicitly when the subject is disposed; there is no
// garbage-collection hook.
type subjectRegistry struct {
	states map[string]*SubjectState
}

func newSubjectRegistry() *subjectRegistry {
	return &subjectRegistry{states: make(map[string]*SubjectState)}
}

// lookup returns a working copy of the subject's snapshot, or an empty one
// on first contact.
func (r *subjectRegistry) lookup(subject string) *SubjectState {
	if st, ok := r.states[subject]; ok {
		return st.clone()
	}
	return &SubjectState{}
}

// commit replaces the subject's snapshot.
func (r *subjectRegistry) commit(subject string, st *SubjectState) {
	r.states[subject] = st
}

// invalidate forgets a subject.
func (r *subjectRegistry) invalidate(subject string) {
	delete(r.states, subject)
}
