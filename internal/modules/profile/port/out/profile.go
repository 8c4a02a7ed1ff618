package out

import (
	"context"

	"inward/internal/modules/profile/domain"
)

// Store persists the profile records. Each record occupies its own
// key; loads report absence instead of failing.
type Store interface {
	SavePreferences(ctx context.Context, p domain.Preferences)
	LoadPreferences(ctx context.Context) (domain.Preferences, bool)

	SaveValues(ctx context.Context, v domain.UserValues)
	LoadValues(ctx context.Context) (domain.UserValues, bool)

	SaveProgress(ctx context.Context, p domain.ModuleProgress)
	LoadProgress(ctx context.Context) (domain.ModuleProgress, bool)

	SaveBaseline(ctx context.Context, b domain.BaselineSnapshot)
	LoadBaseline(ctx context.Context) (domain.BaselineSnapshot, bool)

	SetOnboardingCompleted(ctx context.Context, completed bool)
	OnboardingCompleted(ctx context.Context) bool
}
