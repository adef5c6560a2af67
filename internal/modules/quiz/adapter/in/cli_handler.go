package in

import (
	"context"

	"leseheft/internal/modules/quiz/dto"
	quizin "leseheft/internal/modules/quiz/port/in"
)

type CLIHandler struct {
	usecase quizin.Usecase
}

func NewCLIHandler(usecase quizin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Resume(ctx context.Context) (dto.AttemptView, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Abandon(ctx context.Context) error {
	return h.usecase.Abandon(ctx)
}

// TUIHandler exposes the full transition surface the interactive flow
// drives.
type TUIHandler struct {
	usecase quizin.Usecase
}

func NewTUIHandler(usecase quizin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Begin(ctx context.Context, textID string) (dto.AttemptView, error) {
	return h.usecase.Begin(ctx, textID)
}

func (h TUIHandler) Resume(ctx context.Context) (dto.AttemptView, error) {
	return h.usecase.Resume(ctx)
}

func (h TUIHandler) StartQuestions(ctx context.Context) (dto.AttemptView, bool, error) {
	return h.usecase.StartQuestions(ctx)
}

func (h TUIHandler) Select(ctx context.Context, option int) (dto.AttemptView, bool, error) {
	return h.usecase.Select(ctx, option)
}

func (h TUIHandler) Submit(ctx context.Context) (dto.AttemptView, bool, error) {
	return h.usecase.Submit(ctx)
}

func (h TUIHandler) Advance(ctx context.Context) (dto.AttemptView, bool, error) {
	return h.usecase.Advance(ctx)
}

func (h TUIHandler) Retreat(ctx context.Context) (dto.AttemptView, bool, error) {
	return h.usecase.Retreat(ctx)
}

func (h TUIHandler) Abandon(ctx context.Context) error {
	return h.usecase.Abandon(ctx)
}
