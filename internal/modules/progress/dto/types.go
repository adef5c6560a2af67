package dto

import "time"

type Answer struct {
	QuestionID     string
	SelectedAnswer int
	IsCorrect      bool
	TimeSpent      int
}

type RecordInput struct {
	TextID         string
	TextTitle      string
	TextType       string
	TotalQuestions int
	Answers        []Answer
	Score          int
}

type SessionOutput struct {
	ID             string
	TextID         string
	TextTitle      string
	TextType       string
	Answers        []Answer
	Score          int
	CompletedAt    time.Time
	TotalQuestions int
	CorrectAnswers int
	TotalTime      int
}

type StatsOutput struct {
	TotalSessions       int
	TotalCorrectAnswers int
	TotalQuestions      int
	AverageScore        int
	TotalTimeSpent      int
	TextsCompleted      []string
	LastActivity        time.Time
	StreakDays          int
	LastStreakDate      string
}

type CurrentSessionInput struct {
	TextID               string
	Answers              []Answer
	StartedAt            time.Time
	CurrentQuestionIndex int
}

type CurrentSessionOutput struct {
	TextID               string
	Answers              []Answer
	StartedAt            time.Time
	CurrentQuestionIndex int
}
