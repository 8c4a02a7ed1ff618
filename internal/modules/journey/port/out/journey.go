package out

import (
	"context"

	"inward/internal/modules/journey/domain"
)

// CurrentStore is the single-slot repository for the journey in progress.
// At most one current journey exists; writes are best effort and failures
// are absorbed by the persistence layer.
type CurrentStore interface {
	Save(ctx context.Context, j domain.Journey)
	Load(ctx context.Context) (domain.Journey, bool)
	Clear(ctx context.Context)
}

// HistoryStore holds the bounded archive of completed journeys,
// most-recent-first.
type HistoryStore interface {
	List(ctx context.Context) []domain.Journey
	Replace(ctx context.Context, history []domain.Journey)
}

// NoteStore renders an archived journey as a human-readable note. Best
// effort: a failed note never fails the archival, so the returned path is
// empty when the note could not be written.
type NoteStore interface {
	Save(ctx context.Context, j domain.Journey, themes []string) string
}
