package in

import (
	"context"

	"inward/internal/modules/journey/domain"
	"inward/internal/modules/journey/dto"
)

// Usecase is the journey controller's entire surface to the presentation
// layer. Every call is synchronous; the only deferred element behind it is
// the debounced save timer.
type Usecase interface {
	Current(ctx context.Context) (dto.JourneyOutput, error)
	StartNew(ctx context.Context) (dto.JourneyOutput, error)
	UpdateResponse(ctx context.Context, input dto.UpdateInput) error
	MarkRuleComplete(ctx context.Context, rule int) (dto.JourneyOutput, error)
	Reset(ctx context.Context) error
	ArchiveAndStartNew(ctx context.Context) (dto.JourneyOutput, error)
	History(ctx context.Context) ([]dto.JourneyOutput, error)
	Export(ctx context.Context) (string, error)
	Themes(ctx context.Context) ([]string, error)
	CurrentResponses(ctx context.Context) (domain.Responses, error)
	// Flush persists any pending debounced write; called on shutdown so the
	// last edit is never lost.
	Flush()
}
