package utils

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "no zero padding", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "seconds included", input: "09:30:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	for _, minutes := range []int{0, 570, 1439} {
		formatted := FormatClock(minutes)
		parsed, err := ParseClock(formatted)
		if err != nil {
			t.Fatalf("FormatClock(%d) = %q is not parseable: %v", minutes, formatted, err)
		}
		if parsed != minutes {
			t.Errorf("round trip of %d gave %d via %q", minutes, parsed, formatted)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{name: "disjoint before", s1: 60, e1: 120, s2: 120, e2: 180, want: false},
		{name: "disjoint after", s1: 180, e1: 240, s2: 60, e2: 120, want: false},
		{name: "identical", s1: 60, e1: 120, s2: 60, e2: 120, want: true},
		{name: "partial overlap start", s1: 60, e1: 120, s2: 90, e2: 150, want: true},
		{name: "partial overlap end", s1: 90, e1: 150, s2: 60, e2: 120, want: true},
		{name: "contained", s1: 60, e1: 180, s2: 90, e2: 120, want: true},
		{name: "containing", s1: 90, e1: 120, s2: 60, e2: 180, want: true},
		{name: "touching boundary", s1: 60, e1: 120, s2: 120, e2: 121, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
				t.Errorf("RangesOverlap(%d,%d,%d,%d) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
		})
	}
}

// The SQL overlap predicate is written as three OR-ed range conditions.
// Verify exhaustively that the disjunction is equivalent to the single
// s1 < e2 && s2 < e1 form over a small domain.
func TestOverlapDisjunctionEquivalence(t *testing.T) {
	const n = 12
	for s1 := 0; s1 < n; s1++ {
		for e1 := s1 + 1; e1 <= n; e1++ {
			for s2 := 0; s2 < n; s2++ {
				for e2 := s2 + 1; e2 <= n; e2++ {
					disjunction := (s1 <= s2 && e1 > s2) ||
						(s1 < e2 && e1 >= e2) ||
						(s1 >= s2 && e1 <= e2)
					if got := RangesOverlap(s1, e1, s2, e2); got != disjunction {
						t.Fatalf("mismatch at [%d,%d) vs [%d,%d): simple=%v disjunction=%v",
							s1, e1, s2, e2, got, disjunction)
					}
				}
			}
		}
	}
}
