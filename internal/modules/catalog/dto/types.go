package dto

import "time"

type QuestionOutput struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectAnswer int
	Explanation   string
	Kind          string
}

type TextOutput struct {
	ID            string
	Title         string
	Type          string
	Level         string
	WordCount     int
	QuestionCount int
	CreatedAt     time.Time
}

type TextDetailOutput struct {
	TextOutput
	Content   string
	Questions []QuestionOutput
}

type SeedOutput struct {
	Written []string
	Skipped []string
}
