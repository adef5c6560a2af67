package usecase

import (
	"context"
	"fmt"
	"strings"

	"leseheft/internal/modules/quiz/domain"
	"leseheft/internal/modules/quiz/dto"
	quizin "leseheft/internal/modules/quiz/port/in"
	"leseheft/internal/modules/quiz/service"
	apperrors "leseheft/internal/platform/errors"
)

type Interactor struct {
	svc *service.AttemptService
}

func NewInteractor(svc *service.AttemptService) quizin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Begin(ctx context.Context, textID string) (dto.AttemptView, error) {
	if strings.TrimSpace(textID) == "" {
		return dto.AttemptView{}, fmt.Errorf("%w: text id must not be blank", apperrors.ErrInvalidInput)
	}
	attempt, err := i.svc.Begin(ctx, textID)
	if err != nil {
		return dto.AttemptView{}, err
	}
	return toView(attempt), nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.AttemptView, error) {
	attempt, err := i.svc.Resume(ctx)
	if err != nil {
		return dto.AttemptView{}, err
	}
	return toView(attempt), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.AttemptView, error) {
	attempt, err := i.svc.Current(ctx)
	if err != nil {
		return dto.AttemptView{}, err
	}
	return toView(attempt), nil
}

func (i *Interactor) StartQuestions(ctx context.Context) (dto.AttemptView, bool, error) {
	return i.apply(i.svc.StartQuestions(ctx))
}

func (i *Interactor) Select(ctx context.Context, option int) (dto.AttemptView, bool, error) {
	return i.apply(i.svc.Select(ctx, option))
}

func (i *Interactor) Submit(ctx context.Context) (dto.AttemptView, bool, error) {
	return i.apply(i.svc.Submit(ctx))
}

func (i *Interactor) Advance(ctx context.Context) (dto.AttemptView, bool, error) {
	return i.apply(i.svc.Advance(ctx))
}

func (i *Interactor) Retreat(ctx context.Context) (dto.AttemptView, bool, error) {
	return i.apply(i.svc.Retreat(ctx))
}

func (i *Interactor) Abandon(ctx context.Context) error {
	return i.svc.Abandon(ctx)
}

func (i *Interactor) apply(attempt domain.Attempt, changed bool, err error) (dto.AttemptView, bool, error) {
	if err != nil {
		return dto.AttemptView{}, false, err
	}
	return toView(attempt), changed, nil
}

func toView(attempt domain.Attempt) dto.AttemptView {
	view := dto.AttemptView{
		TextID:         attempt.TextID,
		TextTitle:      attempt.TextTitle,
		TextType:       attempt.TextType,
		Phase:          string(attempt.Phase),
		Index:          attempt.Index,
		TotalQuestions: len(attempt.Questions),
		Pending:        attempt.Pending,
		AnsweredCount:  len(attempt.Answers),
		CorrectCount:   attempt.CorrectCount(),
		TotalTime:      attempt.TotalTime(),
		Score:          attempt.Score(),
	}
	if attempt.Index >= 0 && attempt.Index < len(attempt.Questions) {
		q := attempt.Questions[attempt.Index]
		view.Question = dto.QuestionView{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	view.Answers = make([]dto.AnswerView, len(attempt.Answers))
	for idx, answer := range attempt.Answers {
		view.Answers[idx] = dto.AnswerView{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      answer.IsCorrect,
			TimeSpent:      answer.TimeSpent,
		}
	}
	return view
}
