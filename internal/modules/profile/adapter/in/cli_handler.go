package in

import (
	"context"

	"inward/internal/modules/profile/domain"
	profilein "inward/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Preferences(ctx context.Context) domain.Preferences {
	return h.usecase.Preferences(ctx)
}

func (h CLIHandler) SavePreferences(ctx context.Context, p domain.Preferences) error {
	return h.usecase.SavePreferences(ctx, p)
}

func (h CLIHandler) Values(ctx context.Context) (domain.UserValues, bool) {
	return h.usecase.Values(ctx)
}

func (h CLIHandler) SaveValues(ctx context.Context, topValues []string) (domain.UserValues, error) {
	return h.usecase.SaveValues(ctx, topValues)
}

func (h CLIHandler) Progress(ctx context.Context) domain.ModuleProgress {
	return h.usecase.Progress(ctx)
}

func (h CLIHandler) RecordLesson(ctx context.Context, track string) (domain.ModuleProgress, error) {
	return h.usecase.RecordLesson(ctx, track)
}

func (h CLIHandler) RecordPractice(ctx context.Context, track string) (domain.ModuleProgress, error) {
	return h.usecase.RecordPractice(ctx, track)
}

func (h CLIHandler) Baseline(ctx context.Context) (domain.BaselineSnapshot, bool) {
	return h.usecase.Baseline(ctx)
}

func (h CLIHandler) SaveBaseline(ctx context.Context, b domain.BaselineSnapshot) (domain.BaselineSnapshot, error) {
	return h.usecase.SaveBaseline(ctx, b)
}

func (h CLIHandler) OnboardingCompleted(ctx context.Context) bool {
	return h.usecase.OnboardingCompleted(ctx)
}

func (h CLIHandler) CompleteOnboarding(ctx context.Context) error {
	return h.usecase.CompleteOnboarding(ctx)
}
