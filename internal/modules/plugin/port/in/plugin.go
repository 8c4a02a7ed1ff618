package in

import (
	"context"

	"inward/internal/modules/plugin/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	GenerateInsight(ctx context.Context, input dto.InsightInput) (dto.InsightOutput, error)
}
