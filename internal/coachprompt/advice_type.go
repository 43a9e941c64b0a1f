package coachprompt

import "strings"

// AdviceType is the closed set of coaching output shapes. Parsing is
// case-insensitive and total: anything unrecognized resolves to
// AdviceTypeDefault rather than failing.
type AdviceType int

const (
	AdviceTypeDefault AdviceType = iota
	AdviceTypePracticeDrills
	AdviceTypeSwingThoughts
	AdviceTypePracticePlan
	AdviceTypeMentalStrategy
	AdviceTypeAnalyzePerformance
	AdviceTypeQuickTip
)

func ParseAdviceType(s string) AdviceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "practice drills":
		return AdviceTypePracticeDrills
	case "swing thoughts":
		return AdviceTypeSwingThoughts
	case "practice plan":
		return AdviceTypePracticePlan
	case "mental strategy":
		return AdviceTypeMentalStrategy
	case "analyze performance":
		return AdviceTypeAnalyzePerformance
	case "quick tip":
		return AdviceTypeQuickTip
	default:
		return AdviceTypeDefault
	}
}

var adviceInstructions = map[AdviceType]string{
	AdviceTypePracticeDrills:     "Provide 2-3 specific, actionable practice drills related to the focus area. Explain the purpose of each drill and how to perform it. Suggest quantities or success metrics if applicable.",
	AdviceTypeSwingThoughts:      "Suggest 2-3 simple, positive swing thoughts or feels relevant to the focus area and player's profile. Explain the intended effect of each thought.",
	AdviceTypePracticePlan:       "Outline a structured practice plan (e.g., for a 60-minute session) targeting the focus area. Allocate time to different activities (warm-up, drills, feel practice, simulated play).",
	AdviceTypeMentalStrategy:     "Offer 2-3 practical mental game strategies or mindset adjustments for the focus area. This could include pre-shot routine elements, visualization, or ways to handle pressure/mistakes.",
	AdviceTypeAnalyzePerformance: "Analyze the provided profile and session data. Identify 1-2 key strengths and 1-2 major areas for improvement related to the focus area. Suggest a priority for practice.",
	AdviceTypeQuickTip:           "Provide one concise, actionable tip or reminder related to the focus area that the player can easily implement in their next round or practice session.",
	AdviceTypeDefault:            "Provide general observations and actionable recommendations based on the player's profile and recent session notes for the specified focus area.",
}

// Instructions returns the instructional template for the advice type.
func Instructions(a AdviceType) string {
	if s, ok := adviceInstructions[a]; ok {
		return s
	}
	return adviceInstructions[AdviceTypeDefault]
}
