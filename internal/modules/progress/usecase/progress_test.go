package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	progressout "leseheft/internal/modules/progress/adapter/out"
	"leseheft/internal/modules/progress/dto"
	"leseheft/internal/modules/progress/service"
	"leseheft/internal/modules/progress/usecase"
	apperrors "leseheft/internal/platform/errors"
	"leseheft/internal/platform/kv"
)

type fakeClock struct {
	times []time.Time
	index int
}

func (c *fakeClock) Now() time.Time {
	if c.index >= len(c.times) {
		return c.times[len(c.times)-1]
	}
	t := c.times[c.index]
	c.index++
	return t
}

type sequenceIDs struct{ next int }

func (g *sequenceIDs) New() string {
	g.next++
	return fmt.Sprintf("session-%03d", g.next)
}

func newFixture(times ...time.Time) (*usecase.Interactor, kv.Store) {
	store := kv.NewMemoryStore()
	recorder := service.NewRecorderService(
		&fakeClock{times: times},
		&sequenceIDs{},
		progressout.NewKVProgressStore(store),
		nil,
	)
	return usecase.NewInteractor(recorder), store
}

func record(t *testing.T, uc *usecase.Interactor, textID string, answers []dto.Answer, score int) dto.SessionOutput {
	t.Helper()
	session, err := uc.RecordCompletion(context.Background(), dto.RecordInput{
		TextID:         textID,
		TextTitle:      "Titel " + textID,
		TextType:       "email",
		TotalQuestions: len(answers),
		Answers:        answers,
		Score:          score,
	})
	if err != nil {
		t.Fatalf("record completion: %v", err)
	}
	return session
}

func TestRecordCompletionDerivesCountsAndUpdatesStats(t *testing.T) {
	t.Parallel()
	completedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	uc, _ := newFixture(completedAt)

	if err := uc.SaveCurrent(context.Background(), dto.CurrentSessionInput{
		TextID:    "email-001",
		StartedAt: completedAt.Add(-2 * time.Minute),
	}); err != nil {
		t.Fatalf("save current: %v", err)
	}

	session := record(t, uc, "email-001", []dto.Answer{
		{QuestionID: "q1", SelectedAnswer: 1, IsCorrect: true, TimeSpent: 10},
		{QuestionID: "q2", SelectedAnswer: 0, IsCorrect: false, TimeSpent: 12},
		{QuestionID: "q3", SelectedAnswer: 2, IsCorrect: true, TimeSpent: 8},
	}, 67)

	if session.ID != "session-001" {
		t.Fatalf("unexpected session id %q", session.ID)
	}
	if session.CorrectAnswers != 2 || session.TotalTime != 30 {
		t.Fatalf("derived counts: correct=%d time=%d", session.CorrectAnswers, session.TotalTime)
	}
	if !session.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed at %v", session.CompletedAt)
	}

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 1 || stats.TotalCorrectAnswers != 2 || stats.TotalQuestions != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.AverageScore != 67 || stats.TotalTimeSpent != 30 {
		t.Fatalf("unexpected averages %+v", stats)
	}
	if len(stats.TextsCompleted) != 1 || stats.TextsCompleted[0] != "email-001" {
		t.Fatalf("texts completed %v", stats.TextsCompleted)
	}
	if stats.StreakDays != 1 || stats.LastStreakDate != "2025-03-10" {
		t.Fatalf("streak %d / %q", stats.StreakDays, stats.LastStreakDate)
	}

	// Recording a completion discards the checkpoint.
	if _, err := uc.CurrentSession(context.Background()); !errors.Is(err, apperrors.ErrNoCurrentSession) {
		t.Fatalf("expected ErrNoCurrentSession, got %v", err)
	}
}

func TestRecentSessionsOrderAndDefaultLimit(t *testing.T) {
	t.Parallel()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var times []time.Time
	for day := 0; day < 7; day++ {
		at := base.AddDate(0, 0, day)
		times = append(times, at, at) // one Now per session, one per stats update
	}
	uc, _ := newFixture(times...)

	for day := 0; day < 7; day++ {
		record(t, uc, fmt.Sprintf("text-%d", day), []dto.Answer{
			{QuestionID: "q1", SelectedAnswer: 0, IsCorrect: true, TimeSpent: 5},
		}, 100)
	}

	recent, err := uc.RecentSessions(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("default limit: got %d sessions", len(recent))
	}
	if recent[0].TextID != "text-6" || recent[4].TextID != "text-2" {
		t.Fatalf("ordering: first=%s last=%s", recent[0].TextID, recent[4].TextID)
	}

	all, err := uc.Sessions(context.Background())
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(all) != 7 {
		t.Fatalf("expected 7 sessions, got %d", len(all))
	}
}

func TestBestScoreAndHasCompleted(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	uc, _ := newFixture(at)

	record(t, uc, "notice-001", []dto.Answer{
		{QuestionID: "q1", SelectedAnswer: 0, IsCorrect: false, TimeSpent: 20},
		{QuestionID: "q2", SelectedAnswer: 1, IsCorrect: true, TimeSpent: 15},
	}, 50)
	record(t, uc, "notice-001", []dto.Answer{
		{QuestionID: "q1", SelectedAnswer: 1, IsCorrect: true, TimeSpent: 9},
		{QuestionID: "q2", SelectedAnswer: 1, IsCorrect: true, TimeSpent: 7},
	}, 100)

	best, err := uc.BestScore(context.Background(), "notice-001")
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if best != 100 {
		t.Fatalf("best score %d", best)
	}

	forText, err := uc.SessionsForText(context.Background(), "notice-001")
	if err != nil {
		t.Fatalf("sessions for text: %v", err)
	}
	if len(forText) != 2 {
		t.Fatalf("expected 2 sessions for text, got %d", len(forText))
	}

	done, err := uc.HasCompleted(context.Background(), "notice-001")
	if err != nil || !done {
		t.Fatalf("has completed: %v %v", done, err)
	}
	done, err = uc.HasCompleted(context.Background(), "article-001")
	if err != nil || done {
		t.Fatalf("unexpected completion: %v %v", done, err)
	}
}

func TestExportAllRendersEveryRecord(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 8, 18, 0, 0, 0, time.UTC)
	uc, _ := newFixture(at)

	record(t, uc, "ad-001", []dto.Answer{
		{QuestionID: "q1", SelectedAnswer: 2, IsCorrect: true, TimeSpent: 11},
	}, 100)
	if err := uc.SaveCurrent(context.Background(), dto.CurrentSessionInput{
		TextID:               "letter-001",
		StartedAt:            at,
		CurrentQuestionIndex: 1,
	}); err != nil {
		t.Fatalf("save current: %v", err)
	}

	exported, err := uc.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var payload struct {
		Sessions []map[string]any `json:"sessions"`
		Stats    map[string]any   `json:"stats"`
		Current  map[string]any   `json:"currentSession"`
	}
	if err := json.Unmarshal([]byte(exported), &payload); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(payload.Sessions) != 1 || payload.Sessions[0]["textId"] != "ad-001" {
		t.Fatalf("exported sessions %v", payload.Sessions)
	}
	if payload.Stats["totalSessions"] != float64(1) {
		t.Fatalf("exported stats %v", payload.Stats)
	}
	if payload.Current["textId"] != "letter-001" {
		t.Fatalf("exported current session %v", payload.Current)
	}
	for _, key := range []string{"questionId", "selectedAnswer", "isCorrect", "timeSpent", "exportedAt"} {
		if !strings.Contains(exported, fmt.Sprintf("%q", key)) {
			t.Fatalf("export is missing key %s", key)
		}
	}
}

func TestClearAllResetsToZeroState(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	uc, _ := newFixture(at)

	record(t, uc, "email-001", []dto.Answer{
		{QuestionID: "q1", SelectedAnswer: 0, IsCorrect: true, TimeSpent: 6},
	}, 100)

	if err := uc.ClearAll(context.Background()); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	sessions, err := uc.Sessions(context.Background())
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 0 || stats.StreakDays != 0 || len(stats.TextsCompleted) != 0 {
		t.Fatalf("stats not reset: %+v", stats)
	}
	if _, err := uc.CurrentSession(context.Background()); !errors.Is(err, apperrors.ErrNoCurrentSession) {
		t.Fatalf("expected ErrNoCurrentSession, got %v", err)
	}
}

func TestCorruptRecordsDegradeToDefaults(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC)
	uc, store := newFixture(at)

	for _, key := range []string{"sessions", "stats", "current-session"} {
		if err := store.Set(key, "{not json"); err != nil {
			t.Fatalf("seed corrupt %s: %v", key, err)
		}
	}

	sessions, err := uc.Sessions(context.Background())
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty list, got %d", len(sessions))
	}
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if _, err := uc.CurrentSession(context.Background()); !errors.Is(err, apperrors.ErrNoCurrentSession) {
		t.Fatalf("expected ErrNoCurrentSession, got %v", err)
	}

	// Recording on top of corrupt data starts from the defaults instead
	// of failing.
	session := record(t, uc, "email-001", []dto.Answer{
		{QuestionID: "q1", SelectedAnswer: 0, IsCorrect: true, TimeSpent: 4},
	}, 100)
	if session.Score != 100 {
		t.Fatalf("score %d", session.Score)
	}
}

func TestRecordCompletionRejectsBadInput(t *testing.T) {
	t.Parallel()
	uc, _ := newFixture(time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC))

	_, err := uc.RecordCompletion(context.Background(), dto.RecordInput{TextID: "  ", TotalQuestions: 3})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank text id: %v", err)
	}
	_, err = uc.RecordCompletion(context.Background(), dto.RecordInput{TextID: "email-001", TotalQuestions: 0})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero questions: %v", err)
	}
}
