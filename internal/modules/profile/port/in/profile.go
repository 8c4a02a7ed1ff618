package in

import (
	"context"

	"inward/internal/modules/profile/domain"
)

// Usecase is the inbound surface of the profile module. Preferences
// and progress fall back to defaults when nothing is stored; values
// and baseline report absence.
type Usecase interface {
	Preferences(ctx context.Context) domain.Preferences
	SavePreferences(ctx context.Context, p domain.Preferences) error

	Values(ctx context.Context) (domain.UserValues, bool)
	SaveValues(ctx context.Context, topValues []string) (domain.UserValues, error)

	Progress(ctx context.Context) domain.ModuleProgress
	RecordLesson(ctx context.Context, track string) (domain.ModuleProgress, error)
	RecordPractice(ctx context.Context, track string) (domain.ModuleProgress, error)

	Baseline(ctx context.Context) (domain.BaselineSnapshot, bool)
	SaveBaseline(ctx context.Context, b domain.BaselineSnapshot) (domain.BaselineSnapshot, error)

	OnboardingCompleted(ctx context.Context) bool
	CompleteOnboarding(ctx context.Context) error
}
