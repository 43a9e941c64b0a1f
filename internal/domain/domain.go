// Package domain re-exports the persisted model types so callers can import
// a single package as `types` instead of each entity package.
package domain

import (
	"github.com/fairwaylabs/golfcoach-backend/internal/domain/golf"
	"github.com/fairwaylabs/golfcoach-backend/internal/domain/user"
)

type User = user.User
type PublicUser = user.PublicUser

type Profile = golf.Profile
type JournalEntry = golf.JournalEntry
type AIRecommendation = golf.AIRecommendation
