package coachprompt

import (
	"strings"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
)

// FocusArea is the closed set of skill categories a player can ask about.
// Parsing is case-insensitive and total: anything unrecognized resolves to
// FocusAreaOverall, which selects the entire profile.
type FocusArea int

const (
	FocusAreaOverall FocusArea = iota
	FocusAreaDriving
	FocusAreaIrons
	FocusAreaShortGame
	FocusAreaPutting
	FocusAreaMentalGame
	FocusAreaCourseManagement
	FocusAreaSwing
)

func ParseFocusArea(s string) FocusArea {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "driving":
		return FocusAreaDriving
	case "irons":
		return FocusAreaIrons
	case "short game", "chipping", "pitching", "bunkers":
		return FocusAreaShortGame
	case "putting":
		return FocusAreaPutting
	case "mental game":
		return FocusAreaMentalGame
	case "course management":
		return FocusAreaCourseManagement
	case "swing":
		return FocusAreaSwing
	default:
		return FocusAreaOverall
	}
}

// ContextFields selects the profile subset relevant to the focus area. The
// baseline trio (handicap, goals, playingFrequency) is always present; the
// same focus area against the same profile always yields the same map.
func ContextFields(f FocusArea, p *types.Profile) map[string]any {
	ctx := map[string]any{
		"handicap":         p.Handicap,
		"goals":            p.Goals,
		"playingFrequency": p.PlayingFrequency,
	}
	switch f {
	case FocusAreaDriving:
		ctx["driverMisses"] = p.DriverMisses
		ctx["driverMissDescription"] = p.DriverMissDescription
		ctx["driverStrengthRating"] = p.DriverStrengthRating
		ctx["driverInfo"] = p.DriverInfo
	case FocusAreaIrons:
		ctx["ironMisses"] = p.IronMisses
		ctx["ironMissDescription"] = p.IronMissDescription
		ctx["ironStrengthRating"] = p.IronStrengthRating
		ctx["ironInfo"] = p.IronInfo
	case FocusAreaShortGame:
		ctx["shortGameMisses"] = p.ShortGameMisses
		ctx["shortGameDescription"] = p.ShortGameDescription
		ctx["chippingRating"] = p.ChippingRating
		ctx["pitchingRating"] = p.PitchingRating
		ctx["bunkerRating"] = p.BunkerRating
		ctx["wedgeInfo"] = p.WedgeInfo
	case FocusAreaPutting:
		ctx["puttingMisses"] = p.PuttingMisses
		ctx["puttingDescription"] = p.PuttingDescription
		ctx["shortPuttRating"] = p.ShortPuttRating
		ctx["mediumPuttRating"] = p.MediumPuttRating
		ctx["lagPuttRating"] = p.LagPuttRating
		ctx["greenReadingRating"] = p.GreenReadingRating
		ctx["putterInfo"] = p.PutterInfo
	case FocusAreaMentalGame:
		ctx["mentalStrengths"] = p.MentalStrengths
		ctx["mentalWeaknesses"] = p.MentalWeaknesses
		ctx["mentalGameNotes"] = p.MentalGameNotes
		ctx["preShotRoutine"] = p.PreShotRoutine
		ctx["favoriteThoughts"] = p.FavoriteThoughts
	case FocusAreaCourseManagement:
		ctx["mentalStrengths"] = p.MentalStrengths
		ctx["mentalWeaknesses"] = p.MentalWeaknesses
	case FocusAreaSwing:
		ctx["swingFocus"] = p.SwingFocus
		ctx["driverMisses"] = p.DriverMisses
		ctx["ironMisses"] = p.IronMisses
		ctx["favoriteThoughts"] = p.FavoriteThoughts
	case FocusAreaOverall:
		for k, v := range fullProfileFields(p) {
			ctx[k] = v
		}
	}
	return ctx
}

// fullProfileFields enumerates every self-assessment field. Identity and
// timestamp columns stay out of the prompt.
func fullProfileFields(p *types.Profile) map[string]any {
	return map[string]any{
		"homeCourse":            p.HomeCourse,
		"yearsPlaying":          p.YearsPlaying,
		"driverMisses":          p.DriverMisses,
		"driverMissDescription": p.DriverMissDescription,
		"driverStrengthRating":  p.DriverStrengthRating,
		"ironMisses":            p.IronMisses,
		"ironMissDescription":   p.IronMissDescription,
		"ironStrengthRating":    p.IronStrengthRating,
		"swingFocus":            p.SwingFocus,
		"shortGameMisses":       p.ShortGameMisses,
		"shortGameDescription":  p.ShortGameDescription,
		"chippingRating":        p.ChippingRating,
		"pitchingRating":        p.PitchingRating,
		"bunkerRating":          p.BunkerRating,
		"puttingMisses":         p.PuttingMisses,
		"puttingDescription":    p.PuttingDescription,
		"shortPuttRating":       p.ShortPuttRating,
		"mediumPuttRating":      p.MediumPuttRating,
		"lagPuttRating":         p.LagPuttRating,
		"greenReadingRating":    p.GreenReadingRating,
		"mentalStrengths":       p.MentalStrengths,
		"mentalWeaknesses":      p.MentalWeaknesses,
		"mentalGameNotes":       p.MentalGameNotes,
		"preShotRoutine":        p.PreShotRoutine,
		"favoriteThoughts":      p.FavoriteThoughts,
		"driverInfo":            p.DriverInfo,
		"ironInfo":              p.IronInfo,
		"wedgeInfo":             p.WedgeInfo,
		"putterInfo":            p.PutterInfo,
	}
}
