package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogout "leseheft/internal/modules/catalog/adapter/out"
	catalogsvc "leseheft/internal/modules/catalog/service"
	catalogusecase "leseheft/internal/modules/catalog/usecase"
	progressout "leseheft/internal/modules/progress/adapter/out"
	progressin "leseheft/internal/modules/progress/port/in"
	progresssvc "leseheft/internal/modules/progress/service"
	progressusecase "leseheft/internal/modules/progress/usecase"
	quizin "leseheft/internal/modules/quiz/port/in"
	quizsvc "leseheft/internal/modules/quiz/service"
	quizusecase "leseheft/internal/modules/quiz/usecase"
	apperrors "leseheft/internal/platform/errors"
	"leseheft/internal/platform/kv"
)

// stepClock advances by a fixed amount on every Now call, so question
// timing is deterministic without scripting each read.
type stepClock struct {
	current time.Time
	step    time.Duration
}

func (c *stepClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

type staticIDs struct{}

func (staticIDs) New() string { return "session-abc" }

func newQuiz(t *testing.T, clk *stepClock) (quizin.Usecase, progressin.Usecase) {
	t.Helper()
	catalog := catalogusecase.NewInteractor(catalogsvc.NewCatalogService(
		catalogout.NewVaultTextStore(t.TempDir()),
		catalogout.BuiltinTexts(),
	))
	progress := progressusecase.NewInteractor(progresssvc.NewRecorderService(
		clk, staticIDs{}, progressout.NewKVProgressStore(kv.NewMemoryStore()), nil,
	))
	quiz := quizusecase.NewInteractor(quizsvc.NewAttemptService(clk, catalog, progress))
	return quiz, progress
}

func TestFullAttemptRecordsSession(t *testing.T) {
	t.Parallel()
	clk := &stepClock{current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), step: 10 * time.Second}
	quiz, progress := newQuiz(t, clk)
	ctx := context.Background()

	view, err := quiz.Begin(ctx, "email-001")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if view.Phase != "reading" || view.TotalQuestions != 3 {
		t.Fatalf("begin view: phase=%s questions=%d", view.Phase, view.TotalQuestions)
	}

	// The attempt is checkpointed from the start.
	current, err := progress.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if current.TextID != "email-001" {
		t.Fatalf("checkpoint text %q", current.TextID)
	}

	view, ok, err := quiz.StartQuestions(ctx)
	if err != nil || !ok {
		t.Fatalf("start questions: ok=%v err=%v", ok, err)
	}
	if view.Phase != "answering" || view.Question.ID != "email-001-q1" {
		t.Fatalf("first question view: phase=%s id=%s", view.Phase, view.Question.ID)
	}

	// q1 and q2 correct, q3 wrong.
	for _, pick := range []int{1, 1, 0} {
		if _, ok, err := quiz.Select(ctx, pick); err != nil || !ok {
			t.Fatalf("select %d: ok=%v err=%v", pick, ok, err)
		}
		view, ok, err = quiz.Submit(ctx)
		if err != nil || !ok {
			t.Fatalf("submit: ok=%v err=%v", ok, err)
		}
		if view.Phase != "explained" {
			t.Fatalf("after submit: phase %s", view.Phase)
		}
		view, ok, err = quiz.Advance(ctx)
		if err != nil || !ok {
			t.Fatalf("advance: ok=%v err=%v", ok, err)
		}
	}

	if view.Phase != "finished" {
		t.Fatalf("final phase %s", view.Phase)
	}
	if view.Score != 67 || view.CorrectCount != 2 {
		t.Fatalf("final score=%d correct=%d", view.Score, view.CorrectCount)
	}

	// Finishing recorded the session and dropped the checkpoint.
	sessions, err := progress.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected one recorded session, got %d", len(sessions))
	}
	session := sessions[0]
	if session.ID != "session-abc" || session.TextID != "email-001" || session.TextType != "email" {
		t.Fatalf("recorded session %+v", session)
	}
	if session.Score != 67 || session.CorrectAnswers != 2 || session.TotalQuestions != 3 {
		t.Fatalf("recorded counts %+v", session)
	}
	if _, err := progress.CurrentSession(ctx); !errors.Is(err, apperrors.ErrNoCurrentSession) {
		t.Fatalf("checkpoint not cleared: %v", err)
	}
}

func TestIllegalTransitionsReportFalseWithoutError(t *testing.T) {
	t.Parallel()
	clk := &stepClock{current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), step: time.Second}
	quiz, _ := newQuiz(t, clk)
	ctx := context.Background()

	if _, err := quiz.Begin(ctx, "notice-001"); err != nil {
		t.Fatalf("begin: %v", err)
	}

	// Question operations are illegal while reading.
	if _, ok, err := quiz.Submit(ctx); err != nil || ok {
		t.Fatalf("submit while reading: ok=%v err=%v", ok, err)
	}
	if _, ok, err := quiz.Retreat(ctx); err != nil || ok {
		t.Fatalf("retreat while reading: ok=%v err=%v", ok, err)
	}

	quiz.StartQuestions(ctx)
	if _, ok, err := quiz.Submit(ctx); err != nil || ok {
		t.Fatalf("submit without selection: ok=%v err=%v", ok, err)
	}
	if view, ok, err := quiz.Select(ctx, 99); err != nil || ok || view.Pending != -1 {
		t.Fatalf("out-of-range selection: ok=%v pending=%d err=%v", ok, view.Pending, err)
	}
}

func TestResumeRestoresCheckpoint(t *testing.T) {
	t.Parallel()
	clk := &stepClock{current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), step: 5 * time.Second}
	quiz, _ := newQuiz(t, clk)
	ctx := context.Background()

	if _, err := quiz.Begin(ctx, "email-001"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	quiz.StartQuestions(ctx)
	quiz.Select(ctx, 1)
	quiz.Submit(ctx)
	quiz.Advance(ctx)

	view, err := quiz.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if view.TextID != "email-001" || view.Index != 1 || view.Phase != "answering" {
		t.Fatalf("resumed view: text=%s index=%d phase=%s", view.TextID, view.Index, view.Phase)
	}
	if view.AnsweredCount != 1 {
		t.Fatalf("resumed answers %d", view.AnsweredCount)
	}

	// Stepping back from the resumed question reviews the committed
	// answer.
	review, ok, err := quiz.Retreat(ctx)
	if err != nil || !ok {
		t.Fatalf("retreat: ok=%v err=%v", ok, err)
	}
	if review.Phase != "explained" || review.Pending != 1 {
		t.Fatalf("review view: phase=%s pending=%d", review.Phase, review.Pending)
	}
}

func TestAbandonClearsAttemptAndCheckpoint(t *testing.T) {
	t.Parallel()
	clk := &stepClock{current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), step: time.Second}
	quiz, progress := newQuiz(t, clk)
	ctx := context.Background()

	if _, err := quiz.Begin(ctx, "article-001"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := quiz.Abandon(ctx); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, err := quiz.Current(ctx); !errors.Is(err, apperrors.ErrNoActiveAttempt) {
		t.Fatalf("expected ErrNoActiveAttempt, got %v", err)
	}
	if _, err := progress.CurrentSession(ctx); !errors.Is(err, apperrors.ErrNoCurrentSession) {
		t.Fatalf("expected ErrNoCurrentSession, got %v", err)
	}
	if _, err := quiz.Resume(ctx); !errors.Is(err, apperrors.ErrNoCurrentSession) {
		t.Fatalf("resume after abandon: %v", err)
	}
}

func TestBeginRejectsUnknownText(t *testing.T) {
	t.Parallel()
	clk := &stepClock{current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), step: time.Second}
	quiz, _ := newQuiz(t, clk)

	if _, err := quiz.Begin(context.Background(), "missing"); !errors.Is(err, apperrors.ErrTextNotFound) {
		t.Fatalf("expected ErrTextNotFound, got %v", err)
	}
	if _, err := quiz.Begin(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
