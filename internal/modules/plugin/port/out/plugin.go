package out

import (
	"context"

	"inward/internal/modules/plugin/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	GenerateInsight(ctx context.Context, manifest domain.Manifest, input domain.InsightRequest) (domain.InsightResult, error)
}
