package usecase

import (
	"context"
	"fmt"
	"strings"

	"leseheft/internal/modules/progress/domain"
	"leseheft/internal/modules/progress/dto"
	"leseheft/internal/modules/progress/service"
	apperrors "leseheft/internal/platform/errors"
)

const defaultRecentLimit = 5

type Interactor struct {
	recorder *service.RecorderService
}

func NewInteractor(recorder *service.RecorderService) *Interactor {
	return &Interactor{recorder: recorder}
}

func (i *Interactor) RecordCompletion(ctx context.Context, input dto.RecordInput) (dto.SessionOutput, error) {
	if strings.TrimSpace(input.TextID) == "" {
		return dto.SessionOutput{}, fmt.Errorf("%w: text id must not be blank", apperrors.ErrInvalidInput)
	}
	if input.TotalQuestions <= 0 {
		return dto.SessionOutput{}, fmt.Errorf("%w: total questions must be positive", apperrors.ErrInvalidInput)
	}
	session, err := i.recorder.RecordCompletion(ctx,
		input.TextID, input.TextTitle, input.TextType,
		input.TotalQuestions, answersToDomain(input.Answers), input.Score)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return sessionToOutput(session), nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.recorder.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		TotalSessions:       stats.TotalSessions,
		TotalCorrectAnswers: stats.TotalCorrectAnswers,
		TotalQuestions:      stats.TotalQuestions,
		AverageScore:        stats.AverageScore,
		TotalTimeSpent:      stats.TotalTimeSpent,
		TextsCompleted:      stats.TextsCompleted,
		LastActivity:        stats.LastActivity,
		StreakDays:          stats.StreakDays,
		LastStreakDate:      stats.LastStreakDate,
	}, nil
}

func (i *Interactor) Sessions(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.recorder.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	return sessionsToOutput(sessions), nil
}

func (i *Interactor) RecentSessions(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	sessions, err := i.recorder.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return sessionsToOutput(sessions), nil
}

func (i *Interactor) SessionsForText(ctx context.Context, textID string) ([]dto.SessionOutput, error) {
	if strings.TrimSpace(textID) == "" {
		return nil, fmt.Errorf("%w: text id must not be blank", apperrors.ErrInvalidInput)
	}
	sessions, err := i.recorder.ForText(ctx, textID)
	if err != nil {
		return nil, err
	}
	return sessionsToOutput(sessions), nil
}

func (i *Interactor) BestScore(ctx context.Context, textID string) (int, error) {
	if strings.TrimSpace(textID) == "" {
		return 0, fmt.Errorf("%w: text id must not be blank", apperrors.ErrInvalidInput)
	}
	return i.recorder.BestScore(ctx, textID)
}

func (i *Interactor) HasCompleted(ctx context.Context, textID string) (bool, error) {
	if strings.TrimSpace(textID) == "" {
		return false, fmt.Errorf("%w: text id must not be blank", apperrors.ErrInvalidInput)
	}
	return i.recorder.HasCompleted(ctx, textID)
}

func (i *Interactor) SaveCurrent(ctx context.Context, input dto.CurrentSessionInput) error {
	if strings.TrimSpace(input.TextID) == "" {
		return fmt.Errorf("%w: text id must not be blank", apperrors.ErrInvalidInput)
	}
	return i.recorder.SaveCurrent(ctx, domain.CurrentSession{
		TextID:               input.TextID,
		Answers:              answersToDomain(input.Answers),
		StartedAt:            input.StartedAt,
		CurrentQuestionIndex: input.CurrentQuestionIndex,
	})
}

func (i *Interactor) CurrentSession(ctx context.Context) (dto.CurrentSessionOutput, error) {
	current, err := i.recorder.LoadCurrent(ctx)
	if err != nil {
		return dto.CurrentSessionOutput{}, err
	}
	return dto.CurrentSessionOutput{
		TextID:               current.TextID,
		Answers:              answersToDTO(current.Answers),
		StartedAt:            current.StartedAt,
		CurrentQuestionIndex: current.CurrentQuestionIndex,
	}, nil
}

func (i *Interactor) ClearCurrent(ctx context.Context) error {
	return i.recorder.ClearCurrent(ctx)
}

func (i *Interactor) ExportAll(ctx context.Context) (string, error) {
	return i.recorder.ExportAll(ctx)
}

func (i *Interactor) ClearAll(ctx context.Context) error {
	return i.recorder.ClearAll(ctx)
}

func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	return i.recorder.Reindex(ctx)
}

func answersToDomain(answers []dto.Answer) []domain.Answer {
	converted := make([]domain.Answer, 0, len(answers))
	for _, answer := range answers {
		converted = append(converted, domain.Answer{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      answer.IsCorrect,
			TimeSpent:      answer.TimeSpent,
		})
	}
	return converted
}

func answersToDTO(answers []domain.Answer) []dto.Answer {
	converted := make([]dto.Answer, 0, len(answers))
	for _, answer := range answers {
		converted = append(converted, dto.Answer{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      answer.IsCorrect,
			TimeSpent:      answer.TimeSpent,
		})
	}
	return converted
}

func sessionToOutput(session domain.CompletedSession) dto.SessionOutput {
	return dto.SessionOutput{
		ID:             session.ID,
		TextID:         session.TextID,
		TextTitle:      session.TextTitle,
		TextType:       session.TextType,
		Answers:        answersToDTO(session.Answers),
		Score:          session.Score,
		CompletedAt:    session.CompletedAt,
		TotalQuestions: session.TotalQuestions,
		CorrectAnswers: session.CorrectAnswers,
		TotalTime:      session.TotalTime,
	}
}

func sessionsToOutput(sessions []domain.CompletedSession) []dto.SessionOutput {
	converted := make([]dto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		converted = append(converted, sessionToOutput(session))
	}
	return converted
}
