package domain

import (
	"math"
	"time"

	"leseheft/internal/platform/clock"
)

// Answer is one submitted choice. JSON field names follow the stored
// record format and must not change, or existing data stops round-tripping.
type Answer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	TimeSpent      int    `json:"timeSpent"`
}

// CompletedSession is a finalized quiz attempt. Created once, never
// mutated; sessions are only ever removed by a full reset.
type CompletedSession struct {
	ID             string    `json:"id"`
	TextID         string    `json:"textId"`
	TextTitle      string    `json:"textTitle"`
	TextType       string    `json:"textType"`
	Answers        []Answer  `json:"answers"`
	Score          int       `json:"score"`
	CompletedAt    time.Time `json:"completedAt"`
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalTime      int       `json:"totalTime"`
}

// Stats is the running aggregate over all completed sessions.
type Stats struct {
	TotalSessions       int       `json:"totalSessions"`
	TotalCorrectAnswers int       `json:"totalCorrectAnswers"`
	TotalQuestions      int       `json:"totalQuestions"`
	AverageScore        int       `json:"averageScore"`
	TotalTimeSpent      int       `json:"totalTimeSpent"`
	TextsCompleted      []string  `json:"textsCompleted"`
	LastActivity        time.Time `json:"lastActivity"`
	StreakDays          int       `json:"streakDays"`
	LastStreakDate      string    `json:"lastStreakDate"`
}

func ZeroStats() Stats {
	return Stats{TextsCompleted: []string{}}
}

// CurrentSession is the checkpoint of an attempt still in progress.
type CurrentSession struct {
	TextID               string    `json:"textId"`
	Answers              []Answer  `json:"answers"`
	StartedAt            time.Time `json:"startedAt"`
	CurrentQuestionIndex int       `json:"currentQuestionIndex"`
}

// CorrectCount derives the number of correct answers from the answer set.
func CorrectCount(answers []Answer) int {
	count := 0
	for _, a := range answers {
		if a.IsCorrect {
			count++
		}
	}
	return count
}

// TotalTime derives total elapsed seconds from the answer set.
func TotalTime(answers []Answer) int {
	total := 0
	for _, a := range answers {
		total += a.TimeSpent
	}
	return total
}

// Apply folds one completed session into the aggregate. AverageScore is
// recomputed from the running totals rather than averaged incrementally,
// so it can always be re-derived from the other fields.
func (s *Stats) Apply(session CompletedSession, now time.Time) {
	s.TotalSessions++
	s.TotalCorrectAnswers += session.CorrectAnswers
	s.TotalQuestions += session.TotalQuestions
	s.TotalTimeSpent += session.TotalTime
	s.LastActivity = session.CompletedAt

	completed := false
	for _, id := range s.TextsCompleted {
		if id == session.TextID {
			completed = true
			break
		}
	}
	if !completed {
		s.TextsCompleted = append(s.TextsCompleted, session.TextID)
	}

	if s.TotalQuestions > 0 {
		s.AverageScore = int(math.Round(float64(s.TotalCorrectAnswers) / float64(s.TotalQuestions) * 100))
	}

	s.updateStreak(session.CompletedAt, now)
}

// updateStreak advances the daily streak. Only sessions completed today
// count; backdated sessions never move the streak. Several completions on
// the same day leave it unchanged.
func (s *Stats) updateStreak(completedAt, now time.Time) {
	today := clock.DayKey(now)
	if clock.DayKey(completedAt) != today {
		return
	}
	yesterday := clock.DayKey(now.AddDate(0, 0, -1))
	switch s.LastStreakDate {
	case today:
		// already counted today
	case yesterday:
		s.StreakDays++
		s.LastStreakDate = today
	default:
		s.StreakDays = 1
		s.LastStreakDate = today
	}
}

// Score computes the attempt percentage, rounded to the nearest integer.
func Score(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
