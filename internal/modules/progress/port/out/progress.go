package out

import (
	"context"

	"leseheft/internal/modules/progress/domain"
)

// Store owns the three persisted records: the session list, the stats
// singleton, and the in-progress session checkpoint. Readers degrade to
// defaults on malformed data; they never fail the caller over it.
type Store interface {
	Initialize(ctx context.Context) error
	ListSessions(ctx context.Context) ([]domain.CompletedSession, error)
	AppendSession(ctx context.Context, session domain.CompletedSession) error
	LoadStats(ctx context.Context) (domain.Stats, error)
	SaveStats(ctx context.Context, stats domain.Stats) error
	LoadCurrent(ctx context.Context) (domain.CurrentSession, error)
	SaveCurrent(ctx context.Context, current domain.CurrentSession) error
	ClearCurrent(ctx context.Context) error
	RemoveAll(ctx context.Context) error
}

// HistoryProjector maintains a derived, queryable index of completed
// sessions. It can always be rebuilt from the store.
type HistoryProjector interface {
	Reset(ctx context.Context) error
	UpsertSession(ctx context.Context, session domain.CompletedSession) error
}
