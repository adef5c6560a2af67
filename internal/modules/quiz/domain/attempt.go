package domain

import (
	"math"
	"time"
)

// Phase is the lifecycle stage of a single question within an attempt.
type Phase string

const (
	PhaseReading   Phase = "reading"
	PhaseAnswering Phase = "answering"
	PhaseExplained Phase = "explained"
	PhaseFinished  Phase = "finished"
)

// NoSelection marks a question with no option picked yet.
const NoSelection = -1

// Question is the quiz-side view of a catalog question. The module keeps
// its own copy so the state machine does not reach across module
// boundaries.
type Question struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

// Answer is a committed response to one question.
type Answer struct {
	QuestionID     string
	SelectedAnswer int
	IsCorrect      bool
	TimeSpent      int
}

// Attempt is one pass through a text's questions. It starts in the
// reading phase; StartQuestions moves into the question loop. Answers
// commit on Submit and never change afterwards. Operations that are not
// legal in the current phase report false and leave the attempt alone.
type Attempt struct {
	TextID    string
	TextTitle string
	TextType  string
	Questions []Question

	Phase     Phase
	Index     int
	Pending   int
	Answers   []Answer
	StartedAt time.Time
	ShownAt   time.Time
}

// NewAttempt begins a fresh attempt in the reading phase.
func NewAttempt(textID, textTitle, textType string, questions []Question, now time.Time) *Attempt {
	return &Attempt{
		TextID:    textID,
		TextTitle: textTitle,
		TextType:  textType,
		Questions: questions,
		Phase:     PhaseReading,
		Pending:   NoSelection,
		StartedAt: now,
	}
}

// Resume rebuilds an attempt from a persisted checkpoint. The restored
// question is entered the same way Advance would enter it.
func Resume(textID, textTitle, textType string, questions []Question, answers []Answer, index int, startedAt, now time.Time) *Attempt {
	a := &Attempt{
		TextID:    textID,
		TextTitle: textTitle,
		TextType:  textType,
		Questions: questions,
		Answers:   answers,
		Phase:     PhaseReading,
		Pending:   NoSelection,
		StartedAt: startedAt,
	}
	if len(questions) == 0 {
		return a
	}
	if index < 0 {
		index = 0
	}
	if index >= len(questions) {
		index = len(questions) - 1
	}
	a.enter(index, now)
	return a
}

// StartQuestions leaves the reading phase and shows the first question.
func (a *Attempt) StartQuestions(now time.Time) bool {
	if a.Phase != PhaseReading || len(a.Questions) == 0 {
		return false
	}
	a.enter(0, now)
	return true
}

// SelectOption stages an option for the current question. Staged picks
// are free to change until Submit.
func (a *Attempt) SelectOption(option int) bool {
	if a.Phase != PhaseAnswering {
		return false
	}
	if option < 0 || option >= len(a.Questions[a.Index].Options) {
		return false
	}
	a.Pending = option
	return true
}

// Submit commits the staged pick, grades it, and reveals the
// explanation. Time spent is measured from when the question was shown.
func (a *Attempt) Submit(now time.Time) bool {
	if a.Phase != PhaseAnswering || a.Pending == NoSelection {
		return false
	}
	question := a.Questions[a.Index]
	elapsed := int(math.Round(now.Sub(a.ShownAt).Seconds()))
	if elapsed < 0 {
		elapsed = 0
	}
	a.upsertAnswer(Answer{
		QuestionID:     question.ID,
		SelectedAnswer: a.Pending,
		IsCorrect:      a.Pending == question.CorrectAnswer,
		TimeSpent:      elapsed,
	})
	// Pending keeps the committed pick so the explanation screen can
	// highlight it.
	a.Phase = PhaseExplained
	return true
}

// Advance moves past an explained question. On the last question the
// attempt finishes.
func (a *Attempt) Advance(now time.Time) bool {
	if a.Phase != PhaseExplained {
		return false
	}
	if a.Index == len(a.Questions)-1 {
		a.Phase = PhaseFinished
		return true
	}
	a.enter(a.Index+1, now)
	return true
}

// Retreat steps back to the previous question for review. Submitted
// answers stay locked; only the staged pick of an unanswered question is
// discarded.
func (a *Attempt) Retreat(now time.Time) bool {
	if a.Phase != PhaseAnswering && a.Phase != PhaseExplained {
		return false
	}
	if a.Index == 0 {
		return false
	}
	a.enter(a.Index-1, now)
	return true
}

// enter positions the attempt on question i. An already-answered
// question opens in review with its committed answer; an unanswered one
// opens fresh, with the timer restarted.
func (a *Attempt) enter(i int, now time.Time) {
	a.Index = i
	a.Pending = NoSelection
	if answer, ok := a.answerFor(a.Questions[i].ID); ok {
		a.Phase = PhaseExplained
		a.Pending = answer.SelectedAnswer
		return
	}
	a.Phase = PhaseAnswering
	a.ShownAt = now
}

// Answered reports whether the question at index i has a committed
// answer.
func (a *Attempt) Answered(i int) bool {
	if i < 0 || i >= len(a.Questions) {
		return false
	}
	_, ok := a.answerFor(a.Questions[i].ID)
	return ok
}

// AnswerFor returns the committed answer for a question id.
func (a *Attempt) AnswerFor(questionID string) (Answer, bool) {
	return a.answerFor(questionID)
}

func (a *Attempt) answerFor(questionID string) (Answer, bool) {
	for _, answer := range a.Answers {
		if answer.QuestionID == questionID {
			return answer, true
		}
	}
	return Answer{}, false
}

func (a *Attempt) upsertAnswer(answer Answer) {
	for i := range a.Answers {
		if a.Answers[i].QuestionID == answer.QuestionID {
			a.Answers[i] = answer
			return
		}
	}
	a.Answers = append(a.Answers, answer)
}

// CorrectCount counts committed correct answers.
func (a *Attempt) CorrectCount() int {
	count := 0
	for _, answer := range a.Answers {
		if answer.IsCorrect {
			count++
		}
	}
	return count
}

// TotalTime sums the committed per-question times in seconds.
func (a *Attempt) TotalTime() int {
	total := 0
	for _, answer := range a.Answers {
		total += answer.TimeSpent
	}
	return total
}

// Score is the attempt's percentage score over all questions, rounded
// half away from zero. Unanswered questions count as wrong.
func (a *Attempt) Score() int {
	if len(a.Questions) == 0 {
		return 0
	}
	return int(math.Round(float64(a.CorrectCount()) / float64(len(a.Questions)) * 100))
}
