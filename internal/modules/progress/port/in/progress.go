package in

import (
	"context"

	"leseheft/internal/modules/progress/dto"
)

type Usecase interface {
	RecordCompletion(ctx context.Context, input dto.RecordInput) (dto.SessionOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Sessions(ctx context.Context) ([]dto.SessionOutput, error)
	RecentSessions(ctx context.Context, limit int) ([]dto.SessionOutput, error)
	SessionsForText(ctx context.Context, textID string) ([]dto.SessionOutput, error)
	BestScore(ctx context.Context, textID string) (int, error)
	HasCompleted(ctx context.Context, textID string) (bool, error)
	SaveCurrent(ctx context.Context, input dto.CurrentSessionInput) error
	CurrentSession(ctx context.Context) (dto.CurrentSessionOutput, error)
	ClearCurrent(ctx context.Context) error
	ExportAll(ctx context.Context) (string, error)
	ClearAll(ctx context.Context) error
	Reindex(ctx context.Context) (int, error)
}
