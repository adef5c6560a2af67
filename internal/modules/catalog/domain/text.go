package domain

import (
	"fmt"
	"strings"
	"time"
)

type TextType string

const (
	TextTypeEmail         TextType = "email"
	TextTypeNotice        TextType = "notice"
	TextTypeArticle       TextType = "article"
	TextTypeAdvertisement TextType = "advertisement"
	TextTypeLetter        TextType = "letter"
)

type QuestionKind string

const (
	QuestionKindMultipleChoice QuestionKind = "multiple-choice"
	QuestionKindTrueFalse      QuestionKind = "true-false"
)

// Level is fixed for the whole catalog; texts target one proficiency band.
const Level = "A2"

type Question struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectAnswer int
	Explanation   string
	Kind          QuestionKind
}

// Text is an immutable reading passage with its attached question set.
type Text struct {
	ID        string
	Title     string
	Type      TextType
	Level     string
	Content   string
	WordCount int
	Questions []Question
	CreatedAt time.Time
}

func (t TextType) Validate() error {
	switch t {
	case TextTypeEmail, TextTypeNotice, TextTypeArticle, TextTypeAdvertisement, TextTypeLetter:
		return nil
	default:
		return fmt.Errorf("unsupported text type %q", string(t))
	}
}

func (k QuestionKind) Validate() error {
	switch k {
	case QuestionKindMultipleChoice, QuestionKindTrueFalse:
		return nil
	default:
		return fmt.Errorf("unsupported question kind %q", string(k))
	}
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("question id is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question prompt is required")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s needs at least two options", q.ID)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %s: correct answer index %d out of bounds", q.ID, q.CorrectAnswer)
	}
	if err := q.Kind.Validate(); err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	return nil
}

func (t Text) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("text id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("text title is required")
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Content) == "" {
		return fmt.Errorf("text %s has no content", t.ID)
	}
	if len(t.Questions) == 0 {
		return fmt.Errorf("text %s has no questions", t.ID)
	}
	for _, q := range t.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
