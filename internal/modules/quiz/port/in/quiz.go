package in

import (
	"context"

	"leseheft/internal/modules/quiz/dto"
)

// Usecase drives a single running attempt. Transition methods return the
// updated snapshot plus whether the operation was legal in the current
// phase; illegal operations change nothing and are not errors.
type Usecase interface {
	Begin(ctx context.Context, textID string) (dto.AttemptView, error)
	Resume(ctx context.Context) (dto.AttemptView, error)
	Current(ctx context.Context) (dto.AttemptView, error)
	StartQuestions(ctx context.Context) (dto.AttemptView, bool, error)
	Select(ctx context.Context, option int) (dto.AttemptView, bool, error)
	Submit(ctx context.Context) (dto.AttemptView, bool, error)
	Advance(ctx context.Context) (dto.AttemptView, bool, error)
	Retreat(ctx context.Context) (dto.AttemptView, bool, error)
	Abandon(ctx context.Context) error
}
