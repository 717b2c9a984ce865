package scan_test

import (
	"testing"

	"svgtok/internal/scan"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		want  scan.Length
		rest  string
	}{
		{"30%", scan.Length{Number: 30, Unit: scan.UnitPercent}, ""},
		{"1em", scan.Length{Number: 1, Unit: scan.UnitEm}, ""},
		{"1ex", scan.Length{Number: 1, Unit: scan.UnitEx}, ""},
		{"1", scan.Length{Number: 1, Unit: scan.UnitNone}, ""},
		{"2.5px", scan.Length{Number: 2.5, Unit: scan.UnitPx}, ""},
		{"-1in", scan.Length{Number: -1, Unit: scan.UnitIn}, ""},
		{"1cm", scan.Length{Number: 1, Unit: scan.UnitCm}, ""},
		{"1mm", scan.Length{Number: 1, Unit: scan.UnitMm}, ""},
		{"1pt", scan.Length{Number: 1, Unit: scan.UnitPt}, ""},
		{"1pc", scan.Length{Number: 1, Unit: scan.UnitPc}, ""},
		{"1e2em", scan.Length{Number: 100, Unit: scan.UnitEm}, ""},
		// uppercase and unknown suffixes are not units
		{"1PX", scan.Length{Number: 1, Unit: scan.UnitNone}, "PX"},
		{"1vw", scan.Length{Number: 1, Unit: scan.UnitNone}, "vw"},
		{"1q", scan.Length{Number: 1, Unit: scan.UnitNone}, "q"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, _ := makeStream(tt.input)
			got, err := s.ParseLength()
			if err != nil {
				t.Fatalf("ParseLength(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if rest := string(s.Tail()); rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestParseLengthInvalid(t *testing.T) {
	s, _ := makeStream("em")
	_, err := s.ParseLength()
	if err == nil {
		t.Fatal("ParseLength(\"em\"): no error")
	}
}

func TestParseListLength(t *testing.T) {
	s, _ := makeStream("10px, 20% 5em")
	var got []scan.Length
	for !s.EOF() {
		l, err := s.ParseListLength()
		if err != nil {
			t.Fatalf("ParseListLength: %v", err)
		}
		got = append(got, l)
	}
	want := []scan.Length{
		{Number: 10, Unit: scan.UnitPx},
		{Number: 20, Unit: scan.UnitPercent},
		{Number: 5, Unit: scan.UnitEm},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
