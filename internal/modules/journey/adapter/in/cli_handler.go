package in

import (
	"context"

	"inward/internal/modules/journey/dto"
	journeyin "inward/internal/modules/journey/port/in"
)

type CLIHandler struct {
	usecase journeyin.Usecase
}

func NewCLIHandler(usecase journeyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (dto.JourneyOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) StartNew(ctx context.Context) (dto.JourneyOutput, error) {
	return h.usecase.StartNew(ctx)
}

func (h CLIHandler) Answer(ctx context.Context, rule, field, value string, slot int) error {
	return h.usecase.UpdateResponse(ctx, dto.UpdateInput{Rule: rule, Field: field, Value: value, Slot: slot})
}

func (h CLIHandler) Complete(ctx context.Context, rule int) (dto.JourneyOutput, error) {
	return h.usecase.MarkRuleComplete(ctx, rule)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Archive(ctx context.Context) (dto.JourneyOutput, error) {
	return h.usecase.ArchiveAndStartNew(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.JourneyOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Export(ctx context.Context) (string, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Themes(ctx context.Context) ([]string, error) {
	return h.usecase.Themes(ctx)
}

func (h CLIHandler) Flush() {
	h.usecase.Flush()
}
