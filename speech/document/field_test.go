package document

import "testing"

// TestControlFieldEqual tests identity-first comparison.
func TestControlFieldEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *ControlField
		expected bool
	}{
		{
			name:     "same identity ignores attributes",
			a:        &ControlField{UniqueID: "x", Name: "old"},
			b:        &ControlField{UniqueID: "x", Name: "new"},
			expected: true,
		},
		{
			name:     "different identity ignores attributes",
			a:        &ControlField{UniqueID: "x", Name: "same"},
			b:        &ControlField{UniqueID: "y", Name: "same"},
			expected: false,
		},
		{
			name:     "one-sided identity never matches",
			a:        &ControlField{UniqueID: "x"},
			b:        &ControlField{},
			expected: false,
		},
		{
			name:     "structural match",
			a:        &ControlField{Role: RoleLink, Name: "Home"},
			b:        &ControlField{Role: RoleLink, Name: "Home"},
			expected: true,
		},
		{
			name:     "structural mismatch",
			a:        &ControlField{Role: RoleLink, Name: "Home"},
			b:        &ControlField{Role: RoleLink, Name: "About"},
			expected: false,
		},
		{
			name:     "states compared as sets",
			a:        &ControlField{States: NewStateSet(StateChecked, StateVisited)},
			b:        &ControlField{States: NewStateSet(StateVisited, StateChecked)},
			expected: true,
		},
		{
			name:     "nil matches nil only",
			a:        nil,
			b:        &ControlField{},
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestPresentationCategory tests role classification.
func TestPresentationCategory(t *testing.T) {
	opts := PresentationOptions{ReportLandmarks: true}

	table := &ControlField{Role: RoleTable, TableID: "t"}

	tests := []struct {
		name      string
		field     *ControlField
		ancestors []*ControlField
		opts      PresentationOptions
		expected  PresentationCategory
	}{
		{"link", &ControlField{Role: RoleLink}, nil, opts, PresentationSingleLine},
		{"list", &ControlField{Role: RoleList}, nil, opts, PresentationContainer},
		{"list item", &ControlField{Role: RoleListItem}, nil, opts, PresentationMarker},
		{"cell in table", &ControlField{Role: RoleTableCell, TableID: "t"},
			[]*ControlField{table}, opts, PresentationCell},
		{"cell without table id", &ControlField{Role: RoleTableCell},
			[]*ControlField{table}, opts, PresentationLayout},
		{"cell outside its table", &ControlField{Role: RoleTableCell, TableID: "t2"},
			[]*ControlField{table}, opts, PresentationLayout},
		{"cell with no enclosing fields", &ControlField{Role: RoleTableCell, TableID: "t"},
			nil, opts, PresentationLayout},
		{"landmark reported", &ControlField{Role: RoleLandmark}, nil, opts, PresentationContainer},
		{"landmark unreported", &ControlField{Role: RoleLandmark}, nil,
			PresentationOptions{}, PresentationLayout},
		{"paragraph", &ControlField{Role: RoleParagraph}, nil, opts, PresentationLayout},
		{"paragraph under review", &ControlField{Role: RoleParagraph}, nil,
			PresentationOptions{ExtraDetail: true}, PresentationMarker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.field.PresentationCategory(tt.ancestors, tt.opts, ReasonCaret)
			if got != tt.expected {
				t.Errorf("PresentationCategory() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestFormatFieldMerge tests overlay semantics: zero values leave the
// target untouched.
func TestFormatFieldMerge(t *testing.T) {
	base := &FormatField{Language: "en", Bold: true, FontName: "Arial"}
	base.Merge(&FormatField{Language: "fr", FontSize: "12 pt"})

	if base.Language != "fr" {
		t.Errorf("Language = %q, want fr", base.Language)
	}
	if base.FontSize != "12 pt" {
		t.Errorf("FontSize = %q, want 12 pt", base.FontSize)
	}
	if !base.Bold || base.FontName != "Arial" {
		t.Error("existing attributes were clobbered by zero values")
	}

	base.Merge(nil)
	if base.Language != "fr" {
		t.Error("nil merge modified the target")
	}
}

// TestFormatFieldClone tests independence of the copy.
func TestFormatFieldClone(t *testing.T) {
	var nilField *FormatField
	if nilField.Clone() != nil {
		t.Error("Clone of nil = non-nil, want nil")
	}

	orig := &FormatField{Bold: true, Table: &TableInfo{ID: "t1", RowNumber: 1}}
	clone := orig.Clone()
	clone.Bold = false
	clone.Table.RowNumber = 9
	if !orig.Bold {
		t.Error("mutating the clone changed the original")
	}
	if orig.Table.RowNumber != 1 {
		t.Error("mutating the cloned table changed the original")
	}
}

// TestStateSet tests set operations used by the differ.
func TestStateSet(t *testing.T) {
	a := NewStateSet(StateChecked, StateVisited, StateExpanded)
	b := NewStateSet(StateChecked)

	if !a.Has(StateVisited) || b.Has(StateVisited) {
		t.Error("Has() misreports membership")
	}

	removed := a.Diff(b)
	if removed.Has(StateChecked) || !removed.Has(StateVisited) || !removed.Has(StateExpanded) {
		t.Errorf("Diff() = %v, want visited and expanded", removed.Sorted())
	}

	sorted := a.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] >= sorted[i] {
			t.Fatalf("Sorted() out of order: %v", sorted)
		}
	}
}

// TestStateWording tests spoken forms of states.
func TestStateWording(t *testing.T) {
	if got := StateReadOnly.String(); got != "read only" {
		t.Errorf("String() = %q, want %q", got, "read only")
	}
	if got := StateChecked.NegativeString(); got != "not checked" {
		t.Errorf("NegativeString() = %q, want %q", got, "not checked")
	}
	if got := StateExpanded.NegativeString(); got != "not expanded" {
		t.Errorf("NegativeString() = %q, want %q", got, "not expanded")
	}
	if StateFocusable.Spoken() {
		t.Error("Spoken(focusable) = true, want false")
	}
	if !StateChecked.Spoken() {
		t.Error("Spoken(checked) = false, want true")
	}
}

// TestReasonIsNavigation tests the quiet-navigation classification.
func TestReasonIsNavigation(t *testing.T) {
	for _, r := range []Reason{ReasonFocus, ReasonQuickNav} {
		if !r.IsNavigation() {
			t.Errorf("IsNavigation(%v) = false, want true", r)
		}
	}
	for _, r := range []Reason{ReasonCaret, ReasonSayAll, ReasonQuery, ReasonChange} {
		if r.IsNavigation() {
			t.Errorf("IsNavigation(%v) = true, want false", r)
		}
	}
}

// TestRoleValueSuppression tests roles whose value duplicates their state.
func TestRoleValueSuppression(t *testing.T) {
	for _, r := range []Role{RoleCheckBox, RoleRadioButton, RoleLink} {
		if !r.SilentValue() {
			t.Errorf("SilentValue(%v) = false, want true", r)
		}
	}
	if RoleEditableText.SilentValue() {
		t.Error("SilentValue(edit) = true, want false")
	}
	if !RoleEditableText.SilentOnFocus() {
		t.Error("SilentOnFocus(edit) = false, want true")
	}
	if RoleLink.SilentOnFocus() {
		t.Error("SilentOnFocus(link) = true, want false")
	}
}
