package coachprompt

import (
	"strings"
	"testing"
)

func TestParseAdviceType(t *testing.T) {
	cases := []struct {
		in   string
		want AdviceType
	}{
		{"practice drills", AdviceTypePracticeDrills},
		{"Practice Drills", AdviceTypePracticeDrills},
		{"swing thoughts", AdviceTypeSwingThoughts},
		{"practice plan", AdviceTypePracticePlan},
		{"mental strategy", AdviceTypeMentalStrategy},
		{"analyze performance", AdviceTypeAnalyzePerformance},
		{"quick tip", AdviceTypeQuickTip},
		{"nonsense", AdviceTypeDefault},
		{"", AdviceTypeDefault},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseAdviceType(tc.in); got != tc.want {
				t.Fatalf("ParseAdviceType(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestInstructionsFallsBackToDefault(t *testing.T) {
	got := Instructions(AdviceType(99))
	if got != adviceInstructions[AdviceTypeDefault] {
		t.Fatalf("unknown advice type should use the default instructions, got %q", got)
	}
}

func TestInstructionsDistinctPerType(t *testing.T) {
	seen := map[string]AdviceType{}
	for a := AdviceTypeDefault; a <= AdviceTypeQuickTip; a++ {
		s := Instructions(a)
		if strings.TrimSpace(s) == "" {
			t.Fatalf("advice type %v has empty instructions", a)
		}
		if prev, dup := seen[s]; dup {
			t.Fatalf("advice types %v and %v share instructions", prev, a)
		}
		seen[s] = a
	}
}
