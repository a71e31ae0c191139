package models

import (
	"encoding/json"
	"testing"
)

// ============== State Tests ==============

func TestStateValues(t *testing.T) {
	tests := []struct {
		state    State
		expected uint8
	}{
		{StateNone, 0},
		{StateEqual, 1},
		{StateHashMismatch, 2},
		{StateLeftMissing, 4},
		{StateRightMissing, 8},
		{StateMissing, 12},
		{StateDifferent, 14},
		{StateAll, 15},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if uint8(tt.state) != tt.expected {
				t.Errorf("State %s = %d, want %d", tt.state, uint8(tt.state), tt.expected)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateNone, "None"},
		{StateEqual, "Equal"},
		{StateHashMismatch, "HashMismatch"},
		{StateLeftMissing, "LeftMissing"},
		{StateRightMissing, "RightMissing"},
		{StateMissing, "Missing"},
		{StateDifferent, "Different"},
		{StateAll, "All"},
		{StateEqual | StateLeftMissing, "Equal, LeftMissing"},
		{StateEqual | StateHashMismatch, "Equal, HashMismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStateDisplayName(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateEqual, "Equal"},
		{StateHashMismatch, "Hash Mismatch"},
		{StateLeftMissing, "Left Missing"},
		{StateRightMissing, "Right Missing"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStateMatches(t *testing.T) {
	base := []State{StateEqual, StateHashMismatch, StateLeftMissing, StateRightMissing}

	t.Run("AllSelectsEverything", func(t *testing.T) {
		for _, s := range base {
			if !s.Matches(StateAll) {
				t.Errorf("%s should match All", s)
			}
		}
	})

	t.Run("NoneSelectsNothing", func(t *testing.T) {
		for _, s := range base {
			if s.Matches(StateNone) {
				t.Errorf("%s should not match None", s)
			}
		}
	})

	t.Run("DifferentExcludesEqual", func(t *testing.T) {
		if StateEqual.Matches(StateDifferent) {
			t.Error("Equal should not match Different")
		}
		for _, s := range base[1:] {
			if !s.Matches(StateDifferent) {
				t.Errorf("%s should match Different", s)
			}
		}
	})

	t.Run("MissingSelectsBothSides", func(t *testing.T) {
		if !StateLeftMissing.Matches(StateMissing) || !StateRightMissing.Matches(StateMissing) {
			t.Error("both missing flags should match Missing")
		}
		if StateHashMismatch.Matches(StateMissing) {
			t.Error("HashMismatch should not match Missing")
		}
	})
}

func TestStateIsSingle(t *testing.T) {
	for _, s := range []State{StateEqual, StateHashMismatch, StateLeftMissing, StateRightMissing} {
		if !s.IsSingle() {
			t.Errorf("%s should be a single flag", s)
		}
	}
	for _, s := range []State{StateNone, StateMissing, StateDifferent, StateAll, State(16)} {
		if s.IsSingle() {
			t.Errorf("%d should not be a single flag", s)
		}
	}
}

func TestParseState(t *testing.T) {
	t.Run("ValidNames", func(t *testing.T) {
		for _, name := range StateNames() {
			s, err := ParseState(name)
			if err != nil {
				t.Fatalf("ParseState(%q) error = %v", name, err)
			}
			if s.String() != name {
				t.Errorf("ParseState(%q) = %s", name, s)
			}
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		s, err := ParseState("hashmismatch")
		if err != nil {
			t.Fatalf("ParseState() error = %v", err)
		}
		if s != StateHashMismatch {
			t.Errorf("ParseState() = %s, want HashMismatch", s)
		}
	})

	t.Run("UnknownName", func(t *testing.T) {
		_, err := ParseState("Bogus")
		if err == nil {
			t.Fatal("ParseState() should fail for unknown name")
		}
		ve, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("error type = %T, want *ValidationError", err)
		}
		if ve.Field != "mode" {
			t.Errorf("Field = %s, want mode", ve.Field)
		}
	})
}

func TestParseStates(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected State
	}{
		{"Empty", nil, StateNone},
		{"Single", []string{"Equal"}, StateEqual},
		{"Repeated", []string{"Equal", "LeftMissing"}, StateEqual | StateLeftMissing},
		{"CommaList", []string{"HashMismatch,RightMissing"}, StateHashMismatch | StateRightMissing},
		{"Composite", []string{"Missing", "Equal"}, StateMissing | StateEqual},
		{"SpacesAndBlanks", []string{" Equal , ", ""}, StateEqual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStates(tt.input)
			if err != nil {
				t.Fatalf("ParseStates() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseStates() = %s, want %s", got, tt.expected)
			}
		})
	}

	if _, err := ParseStates([]string{"Equal,Nope"}); err == nil {
		t.Error("ParseStates() should fail when any name is unknown")
	}
}

func TestStateJSON(t *testing.T) {
	data, err := json.Marshal(Comparison{Path: "/a", LeftHash: "A", RightHash: Missing, State: StateRightMissing})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	expected := `{"Path":"/a","LeftHash":"A","RightHash":"MISSING","State":"RightMissing"}`
	if string(data) != expected {
		t.Errorf("Marshal() = %s, want %s", data, expected)
	}

	var c Comparison
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if c.State != StateRightMissing {
		t.Errorf("State = %s, want RightMissing", c.State)
	}
}

// ============== Format Tests ==============

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"", FormatText},
		{"Text", FormatText},
		{"default", FormatText},
		{"CSV", FormatCSV},
		{"csv", FormatCSV},
		{"Json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("ParseFormat() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat() should fail for xml")
	}
}

// ============== Report Tests ==============

func sampleReport() *Report {
	return &Report{
		LeftRoot:  "/left",
		RightRoot: "/right",
		Comparisons: []Comparison{
			{Path: "/a.txt", LeftHash: "AA", RightHash: "AA", State: StateEqual},
			{Path: "/b.txt", LeftHash: "BB", RightHash: Missing, State: StateRightMissing},
			{Path: "/c.txt", LeftHash: Missing, RightHash: "CC", State: StateLeftMissing},
			{Path: "/d.txt", LeftHash: "D1", RightHash: "D2", State: StateHashMismatch},
		},
	}
}

func TestReportSummary(t *testing.T) {
	s := sampleReport().Summary()

	expected := Summary{
		LeftFiles:    3,
		RightFiles:   3,
		Equal:        1,
		HashMismatch: 1,
		RightMissing: 1,
		LeftMissing:  1,
		Total:        4,
	}
	if s != expected {
		t.Errorf("Summary() = %+v, want %+v", s, expected)
	}
}

func TestReportFilter(t *testing.T) {
	r := sampleReport()

	if got := r.Filter(StateAll); len(got) != 4 {
		t.Errorf("Filter(All) returned %d, want 4", len(got))
	}
	if got := r.Filter(StateNone); len(got) != 0 {
		t.Errorf("Filter(None) returned %d, want 0", len(got))
	}

	got := r.Filter(StateMissing)
	if len(got) != 2 || got[0].Path != "/b.txt" || got[1].Path != "/c.txt" {
		t.Errorf("Filter(Missing) = %+v", got)
	}
}

// ============== Options Tests ==============

func TestCompareOptionsValidate(t *testing.T) {
	valid := func() *CompareOptions {
		return &CompareOptions{
			LeftPath:   "/left",
			RightPath:  "/right",
			Filter:     StateDifferent,
			Format:     FormatText,
			BufferSize: 4096,
		}
	}

	t.Run("ValidOptions", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("EmptyLeftPath", func(t *testing.T) {
		o := valid()
		o.LeftPath = ""
		err := o.Validate()
		ve, ok := err.(*ValidationError)
		if !ok || ve.Field != "LeftPath" {
			t.Errorf("Validate() = %v, want LeftPath error", err)
		}
	})

	t.Run("EmptyRightPath", func(t *testing.T) {
		o := valid()
		o.RightPath = ""
		err := o.Validate()
		ve, ok := err.(*ValidationError)
		if !ok || ve.Field != "RightPath" {
			t.Errorf("Validate() = %v, want RightPath error", err)
		}
	})

	t.Run("UnknownFilterBits", func(t *testing.T) {
		o := valid()
		o.Filter = State(32)
		if err := o.Validate(); err == nil {
			t.Error("Validate() should fail for unknown filter bits")
		}
	})

	t.Run("SmallBufferSize", func(t *testing.T) {
		o := valid()
		o.BufferSize = MinBufferSize - 1
		if err := o.Validate(); err == nil {
			t.Error("Validate() should fail for small buffer size")
		}
	})

	t.Run("NegativeBandwidth", func(t *testing.T) {
		o := valid()
		o.BandwidthLimit = -1
		if err := o.Validate(); err == nil {
			t.Error("Validate() should fail for negative bandwidth")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "TestField",
		Message: "test message",
	}

	expected := "TestField: test message"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestFileSetLen(t *testing.T) {
	fs := &FileSet{
		RootPath: "/root",
		Records: []FileRecord{
			{RelativePath: "/x", Digest: "X"},
			{RelativePath: "/y/z", Digest: "Z"},
		},
	}

	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}

	var nilSet *FileSet
	if nilSet.Len() != 0 {
		t.Error("Len() of nil set should be 0")
	}
}
