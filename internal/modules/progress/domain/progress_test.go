package domain_test

import (
	"testing"
	"time"

	"leseheft/internal/modules/progress/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 30, 0, 0, time.UTC)
}

func sessionOn(t time.Time) domain.CompletedSession {
	return domain.CompletedSession{
		ID:             "s1",
		TextID:         "email-001",
		CompletedAt:    t,
		TotalQuestions: 3,
		CorrectAnswers: 2,
		TotalTime:      45,
	}
}

func TestApplyAccumulatesTotalsAndRecomputesAverage(t *testing.T) {
	t.Parallel()
	now := day(2026, time.March, 2)
	stats := domain.ZeroStats()

	stats.Apply(sessionOn(now), now)
	if stats.TotalSessions != 1 || stats.TotalCorrectAnswers != 2 || stats.TotalQuestions != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AverageScore != 67 {
		t.Fatalf("average 2/3 must round to 67, got %d", stats.AverageScore)
	}
	if stats.TotalTimeSpent != 45 || !stats.LastActivity.Equal(now) {
		t.Fatalf("time or activity wrong: %+v", stats)
	}

	second := sessionOn(now)
	second.CorrectAnswers = 3
	stats.Apply(second, now)
	if stats.AverageScore != 83 {
		t.Fatalf("average 5/6 must round to 83, got %d", stats.AverageScore)
	}
	if len(stats.TextsCompleted) != 1 {
		t.Fatalf("same text must not be recorded twice: %v", stats.TextsCompleted)
	}
}

func TestStreakFirstSessionStartsAtOne(t *testing.T) {
	t.Parallel()
	now := day(2026, time.March, 2)
	stats := domain.ZeroStats()
	stats.Apply(sessionOn(now), now)
	if stats.StreakDays != 1 || stats.LastStreakDate != "2026-03-02" {
		t.Fatalf("expected streak 1 on 2026-03-02, got %d on %s", stats.StreakDays, stats.LastStreakDate)
	}
}

func TestStreakSameDayIsIdempotent(t *testing.T) {
	t.Parallel()
	now := day(2026, time.March, 2)
	stats := domain.ZeroStats()
	stats.Apply(sessionOn(now), now)
	stats.Apply(sessionOn(now.Add(2*time.Hour)), now.Add(2*time.Hour))
	if stats.StreakDays != 1 {
		t.Fatalf("second completion on the same day must not inflate streak, got %d", stats.StreakDays)
	}
}

func TestStreakConsecutiveDaysIncrementAndGapResets(t *testing.T) {
	t.Parallel()
	stats := domain.ZeroStats()
	d1 := day(2026, time.March, 2)
	d2 := day(2026, time.March, 3)
	d3 := day(2026, time.March, 4)
	stats.Apply(sessionOn(d1), d1)
	stats.Apply(sessionOn(d2), d2)
	if stats.StreakDays != 2 {
		t.Fatalf("consecutive day must increment streak, got %d", stats.StreakDays)
	}
	stats.Apply(sessionOn(d3), d3)
	if stats.StreakDays != 3 {
		t.Fatalf("third consecutive day must reach 3, got %d", stats.StreakDays)
	}

	afterGap := day(2026, time.March, 7)
	stats.Apply(sessionOn(afterGap), afterGap)
	if stats.StreakDays != 1 || stats.LastStreakDate != "2026-03-07" {
		t.Fatalf("gap of 2+ days must reset streak to 1, got %d on %s", stats.StreakDays, stats.LastStreakDate)
	}
}

func TestStreakIgnoresSessionsNotCompletedToday(t *testing.T) {
	t.Parallel()
	stats := domain.ZeroStats()
	now := day(2026, time.March, 10)
	backdated := sessionOn(day(2026, time.March, 8))
	stats.Apply(backdated, now)
	if stats.StreakDays != 0 || stats.LastStreakDate != "" {
		t.Fatalf("backdated session must not touch the streak, got %d on %s", stats.StreakDays, stats.LastStreakDate)
	}
	if stats.TotalSessions != 1 {
		t.Fatalf("backdated session still counts toward totals, got %d", stats.TotalSessions)
	}
}

func TestScoreRounding(t *testing.T) {
	t.Parallel()
	cases := []struct {
		correct, total, want int
	}{
		{3, 3, 100},
		{1, 4, 25},
		{2, 3, 67},
		{1, 3, 33},
		{0, 5, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := domain.Score(c.correct, c.total); got != c.want {
			t.Fatalf("score(%d/%d) = %d, want %d", c.correct, c.total, got, c.want)
		}
	}
}

func TestDerivedCounts(t *testing.T) {
	t.Parallel()
	answers := []domain.Answer{
		{QuestionID: "q1", IsCorrect: true, TimeSpent: 10},
		{QuestionID: "q2", IsCorrect: false, TimeSpent: 12},
		{QuestionID: "q3", IsCorrect: true, TimeSpent: 8},
	}
	if got := domain.CorrectCount(answers); got != 2 {
		t.Fatalf("correct count = %d, want 2", got)
	}
	if got := domain.TotalTime(answers); got != 30 {
		t.Fatalf("total time = %d, want 30", got)
	}
}
