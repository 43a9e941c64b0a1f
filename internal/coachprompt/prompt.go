// Package coachprompt turns a (focus area, advice type) request plus stored
// profile and journal data into the single-turn instruction block sent to
// the completion provider.
package coachprompt

import (
	"encoding/json"
	"fmt"
	"strings"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
)

// NoSessionsPlaceholder stands in for the session block when the player has
// no journal entries yet.
const NoSessionsPlaceholder = "No recent sessions available."

// MaxSessions bounds how many recent journal entries feed the prompt.
const MaxSessions = 3

// FormatSessions renders journal entries as dated text blocks. Entries are
// expected newest-first; at most MaxSessions are used.
func FormatSessions(entries []*types.JournalEntry) string {
	if len(entries) == 0 {
		return NoSessionsPlaceholder
	}
	if len(entries) > MaxSessions {
		entries = entries[:MaxSessions]
	}
	blocks := make([]string, 0, len(entries))
	for i, e := range entries {
		content := e.Content
		if strings.TrimSpace(content) == "" {
			content = "No detailed notes."
		}
		blocks = append(blocks, fmt.Sprintf("Session %d (%s):\n%s", i+1, e.CreatedAt.Format("1/2/2006"), content))
	}
	return strings.Join(blocks, "\n\n")
}

// Build assembles the full prompt. focusArea and adviceType are the raw
// request strings; the profile context has already been selected through
// ContextFields. json.Marshal sorts map keys, so the serialized context is
// stable for identical input.
func Build(focusArea, adviceType string, profileContext map[string]any, sessionSummary string) (string, error) {
	contextJSON, err := json.MarshalIndent(profileContext, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize profile context: %w", err)
	}
	instructions := Instructions(ParseAdviceType(adviceType))

	return fmt.Sprintf(`You are an expert AI Golf Coach. Analyze the following player information with a focus on '%s' and provide advice in the style of '%s'.

Player Profile Context (%s):
%s

Recent Session Notes Summary:
%s

Instructions:
%s

Format the response clearly using sections, headings, bullet points, or numbered lists as appropriate. Be encouraging and actionable.`,
		focusArea, adviceType, focusArea, contextJSON, sessionSummary, instructions), nil
}
