package service

import (
	"context"
	"sync"

	catalogdto "leseheft/internal/modules/catalog/dto"
	catalogin "leseheft/internal/modules/catalog/port/in"
	progressdto "leseheft/internal/modules/progress/dto"
	progressin "leseheft/internal/modules/progress/port/in"
	"leseheft/internal/modules/quiz/domain"
	"leseheft/internal/platform/clock"
	apperrors "leseheft/internal/platform/errors"
)

// AttemptService owns the one running attempt. Every successful
// transition is checkpointed through the progress module so a killed
// process can resume where it left off; finishing converts the attempt
// into a recorded session and drops the checkpoint.
type AttemptService struct {
	clock    clock.Clock
	catalog  catalogin.Usecase
	progress progressin.Usecase

	mu      sync.Mutex
	attempt *domain.Attempt
}

func NewAttemptService(clk clock.Clock, catalog catalogin.Usecase, progress progressin.Usecase) *AttemptService {
	return &AttemptService{clock: clk, catalog: catalog, progress: progress}
}

func (s *AttemptService) Begin(ctx context.Context, textID string) (domain.Attempt, error) {
	text, err := s.catalog.GetText(ctx, textID)
	if err != nil {
		return domain.Attempt{}, err
	}
	now := s.clock.Now()
	attempt := domain.NewAttempt(text.ID, text.Title, text.Type, toQuestions(text.Questions), now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt = attempt
	if err := s.checkpoint(ctx); err != nil {
		return domain.Attempt{}, err
	}
	return *attempt, nil
}

// Resume rebuilds the attempt from the persisted checkpoint.
func (s *AttemptService) Resume(ctx context.Context) (domain.Attempt, error) {
	current, err := s.progress.CurrentSession(ctx)
	if err != nil {
		return domain.Attempt{}, err
	}
	text, err := s.catalog.GetText(ctx, current.TextID)
	if err != nil {
		return domain.Attempt{}, err
	}
	attempt := domain.Resume(
		text.ID, text.Title, text.Type,
		toQuestions(text.Questions),
		toAnswers(current.Answers),
		current.CurrentQuestionIndex,
		current.StartedAt,
		s.clock.Now(),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt = attempt
	return *attempt, nil
}

func (s *AttemptService) Current(context.Context) (domain.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt == nil {
		return domain.Attempt{}, apperrors.ErrNoActiveAttempt
	}
	return *s.attempt, nil
}

func (s *AttemptService) StartQuestions(ctx context.Context) (domain.Attempt, bool, error) {
	return s.transition(ctx, func(a *domain.Attempt) bool {
		return a.StartQuestions(s.clock.Now())
	})
}

func (s *AttemptService) Select(ctx context.Context, option int) (domain.Attempt, bool, error) {
	return s.transition(ctx, func(a *domain.Attempt) bool {
		return a.SelectOption(option)
	})
}

func (s *AttemptService) Submit(ctx context.Context) (domain.Attempt, bool, error) {
	return s.transition(ctx, func(a *domain.Attempt) bool {
		return a.Submit(s.clock.Now())
	})
}

func (s *AttemptService) Advance(ctx context.Context) (domain.Attempt, bool, error) {
	return s.transition(ctx, func(a *domain.Attempt) bool {
		return a.Advance(s.clock.Now())
	})
}

func (s *AttemptService) Retreat(ctx context.Context) (domain.Attempt, bool, error) {
	return s.transition(ctx, func(a *domain.Attempt) bool {
		return a.Retreat(s.clock.Now())
	})
}

func (s *AttemptService) Abandon(ctx context.Context) error {
	s.mu.Lock()
	s.attempt = nil
	s.mu.Unlock()
	return s.progress.ClearCurrent(ctx)
}

func (s *AttemptService) transition(ctx context.Context, apply func(*domain.Attempt) bool) (domain.Attempt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt == nil {
		return domain.Attempt{}, false, apperrors.ErrNoActiveAttempt
	}
	if !apply(s.attempt) {
		return *s.attempt, false, nil
	}
	if s.attempt.Phase == domain.PhaseFinished {
		if err := s.record(ctx); err != nil {
			return domain.Attempt{}, false, err
		}
		return *s.attempt, true, nil
	}
	if err := s.checkpoint(ctx); err != nil {
		return domain.Attempt{}, false, err
	}
	return *s.attempt, true, nil
}

// checkpoint persists the attempt so it can be resumed. Caller holds the
// lock.
func (s *AttemptService) checkpoint(ctx context.Context) error {
	return s.progress.SaveCurrent(ctx, progressdto.CurrentSessionInput{
		TextID:               s.attempt.TextID,
		Answers:              fromAnswers(s.attempt.Answers),
		StartedAt:            s.attempt.StartedAt,
		CurrentQuestionIndex: s.attempt.Index,
	})
}

// record turns the finished attempt into a completed session. Caller
// holds the lock.
func (s *AttemptService) record(ctx context.Context) error {
	a := s.attempt
	_, err := s.progress.RecordCompletion(ctx, progressdto.RecordInput{
		TextID:         a.TextID,
		TextTitle:      a.TextTitle,
		TextType:       a.TextType,
		TotalQuestions: len(a.Questions),
		Answers:        fromAnswers(a.Answers),
		Score:          a.Score(),
	})
	return err
}

func toQuestions(questions []catalogdto.QuestionOutput) []domain.Question {
	converted := make([]domain.Question, len(questions))
	for i, q := range questions {
		converted[i] = domain.Question{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return converted
}

func toAnswers(answers []progressdto.Answer) []domain.Answer {
	converted := make([]domain.Answer, len(answers))
	for i, a := range answers {
		converted[i] = domain.Answer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      a.IsCorrect,
			TimeSpent:      a.TimeSpent,
		}
	}
	return converted
}

func fromAnswers(answers []domain.Answer) []progressdto.Answer {
	converted := make([]progressdto.Answer, len(answers))
	for i, a := range answers {
		converted[i] = progressdto.Answer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      a.IsCorrect,
			TimeSpent:      a.TimeSpent,
		}
	}
	return converted
}
