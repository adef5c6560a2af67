package in

import (
	"context"

	"leseheft/internal/modules/progress/dto"
	progressin "leseheft/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Sessions(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.Sessions(ctx)
}

func (h CLIHandler) RecentSessions(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	return h.usecase.RecentSessions(ctx, limit)
}

func (h CLIHandler) SessionsForText(ctx context.Context, textID string) ([]dto.SessionOutput, error) {
	return h.usecase.SessionsForText(ctx, textID)
}

func (h CLIHandler) BestScore(ctx context.Context, textID string) (int, error) {
	return h.usecase.BestScore(ctx, textID)
}

func (h CLIHandler) HasCompleted(ctx context.Context, textID string) (bool, error) {
	return h.usecase.HasCompleted(ctx, textID)
}

func (h CLIHandler) CurrentSession(ctx context.Context) (dto.CurrentSessionOutput, error) {
	return h.usecase.CurrentSession(ctx)
}

func (h CLIHandler) ClearCurrent(ctx context.Context) error {
	return h.usecase.ClearCurrent(ctx)
}

func (h CLIHandler) ExportAll(ctx context.Context) (string, error) {
	return h.usecase.ExportAll(ctx)
}

func (h CLIHandler) ClearAll(ctx context.Context) error {
	return h.usecase.ClearAll(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}
