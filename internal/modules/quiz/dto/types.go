package dto

// QuestionView is what the UI needs to render one question. The correct
// answer and explanation are included; the view layer decides when to
// reveal them.
type QuestionView struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

type AnswerView struct {
	QuestionID     string
	SelectedAnswer int
	IsCorrect      bool
	TimeSpent      int
}

// AttemptView is a snapshot of the running attempt after an operation.
type AttemptView struct {
	TextID         string
	TextTitle      string
	TextType       string
	Phase          string
	Index          int
	TotalQuestions int
	Question       QuestionView
	Pending        int
	Answers        []AnswerView
	AnsweredCount  int
	CorrectCount   int
	TotalTime      int
	Score          int
}
