package locale

// Translations holds every user-facing string of the TUI. German is the
// default; the locale setting switches the chrome to English while the
// study texts themselves stay German.
type Translations struct {
	AppSubtitle string

	Texts       string
	Progress    string
	ChooseText  string
	TextTypes   map[string]string
	BestScore   string
	Completed   string
	WordCount   string
	Questions   string
	GoetheLevel string

	ReadyForQuestions string
	TestUnderstanding string
	StartQuestions    string
	QuestionXOfY      string
	ConfirmAnswer     string
	NextQuestion      string
	Finish            string
	Correct           string
	Incorrect         string
	Explanation       string
	Previous          string
	Next              string
	BackToList        string

	TextCompleted    string
	QuestionsCorrect string
	TotalTime        string
	PerQuestion      string
	DetailedResults  string
	AnswerTime       string
	TryAgain         string
	OtherTexts       string

	Excellent      string
	VeryGood       string
	WellDone       string
	NotBad         string
	KeepPracticing string

	TotalSessions  string
	AverageScore   string
	TextsCompleted string
	DayStreak      string
	CorrectAnswers string
	TotalTimeSpent string
	RecentActivity string
	NoActivityYet  string

	SessionResumed   string
	SessionAbandoned string
	DataCleared      string
	ExportedTo       string
}

var german = Translations{
	AppSubtitle: "Goethe Institut Prüfungsvorbereitung",

	Texts:      "Texte",
	Progress:   "Fortschritt",
	ChooseText: "Wählen Sie einen Text zum Üben aus. Alle Texte sind für das A2-Niveau geeignet.",
	TextTypes: map[string]string{
		"email":         "E-Mail",
		"notice":        "Mitteilung",
		"article":       "Artikel",
		"advertisement": "Anzeige",
		"letter":        "Brief",
	},
	BestScore:   "Beste Punktzahl",
	Completed:   "abgeschlossen",
	WordCount:   "Wörter",
	Questions:   "Fragen",
	GoetheLevel: "Goethe Niveau",

	ReadyForQuestions: "Bereit für die Fragen?",
	TestUnderstanding: "Testen Sie Ihr Textverständnis mit %d Fragen.",
	StartQuestions:    "Fragen starten",
	QuestionXOfY:      "Frage %d von %d",
	ConfirmAnswer:     "Antwort bestätigen",
	NextQuestion:      "Nächste Frage",
	Finish:            "Abschließen",
	Correct:           "Richtig!",
	Incorrect:         "Leider falsch.",
	Explanation:       "Erklärung:",
	Previous:          "Zurück",
	Next:              "Weiter",
	BackToList:        "Zurück zur Textauswahl",

	TextCompleted:    "Text abgeschlossen!",
	QuestionsCorrect: "%d von %d Fragen richtig",
	TotalTime:        "Gesamtzeit",
	PerQuestion:      "⌀ pro Frage",
	DetailedResults:  "Detaillierte Ergebnisse",
	AnswerTime:       "Antwortzeit: %ds",
	TryAgain:         "Nochmal versuchen",
	OtherTexts:       "Andere Texte",

	Excellent:      "Ausgezeichnet! Hervorragende Leistung!",
	VeryGood:       "Sehr gut! Sie haben den Text gut verstanden!",
	WellDone:       "Gut gemacht! Ein solides Ergebnis!",
	NotBad:         "Nicht schlecht! Mit etwas mehr Übung wird es noch besser!",
	KeepPracticing: "Weiter üben! Lassen Sie sich nicht entmutigen!",

	TotalSessions:  "Gesamte Sitzungen",
	AverageScore:   "Durchschnittliche Punktzahl",
	TextsCompleted: "Abgeschlossene Texte",
	DayStreak:      "Tage-Serie",
	CorrectAnswers: "Richtige Antworten",
	TotalTimeSpent: "Gesamte Übungszeit",
	RecentActivity: "Letzte Aktivität",
	NoActivityYet:  "Noch keine Aktivität. Beginnen Sie mit Ihrer ersten Leseübung!",

	SessionResumed:   "Sitzung fortgesetzt",
	SessionAbandoned: "Sitzung abgebrochen",
	DataCleared:      "Alle Daten gelöscht",
	ExportedTo:       "Exportiert nach %s",
}

var english = Translations{
	AppSubtitle: "Goethe Institut exam preparation",

	Texts:      "Texts",
	Progress:   "Progress",
	ChooseText: "Choose a text to practice with. All texts are suitable for A2 level.",
	TextTypes: map[string]string{
		"email":         "Email",
		"notice":        "Notice",
		"article":       "Article",
		"advertisement": "Advertisement",
		"letter":        "Letter",
	},
	BestScore:   "Best score",
	Completed:   "completed",
	WordCount:   "words",
	Questions:   "questions",
	GoetheLevel: "Goethe level",

	ReadyForQuestions: "Ready for the questions?",
	TestUnderstanding: "Test your text comprehension with %d questions.",
	StartQuestions:    "Start questions",
	QuestionXOfY:      "Question %d of %d",
	ConfirmAnswer:     "Confirm answer",
	NextQuestion:      "Next question",
	Finish:            "Finish",
	Correct:           "Correct!",
	Incorrect:         "Incorrect.",
	Explanation:       "Explanation:",
	Previous:          "Previous",
	Next:              "Next",
	BackToList:        "Back to text selection",

	TextCompleted:    "Text completed!",
	QuestionsCorrect: "%d of %d questions correct",
	TotalTime:        "Total time",
	PerQuestion:      "⌀ per question",
	DetailedResults:  "Detailed results",
	AnswerTime:       "Answer time: %ds",
	TryAgain:         "Try again",
	OtherTexts:       "Other texts",

	Excellent:      "Excellent! Outstanding performance!",
	VeryGood:       "Very good! You understood the text well!",
	WellDone:       "Well done! A solid result!",
	NotBad:         "Not bad! With a bit more practice it will get even better!",
	KeepPracticing: "Keep practicing! Don't get discouraged!",

	TotalSessions:  "Total sessions",
	AverageScore:   "Average score",
	TextsCompleted: "Texts completed",
	DayStreak:      "Day streak",
	CorrectAnswers: "Correct answers",
	TotalTimeSpent: "Total practice time",
	RecentActivity: "Recent activity",
	NoActivityYet:  "No activity yet. Start with your first reading exercise!",

	SessionResumed:   "session resumed",
	SessionAbandoned: "session abandoned",
	DataCleared:      "all data cleared",
	ExportedTo:       "exported to %s",
}

// For returns the translation table for a locale code. Anything that is
// not "en" falls back to German.
func For(code string) Translations {
	if code == "en" {
		return english
	}
	return german
}

// TextType translates a text type code, falling back to the raw code.
func (t Translations) TextType(code string) string {
	if label, ok := t.TextTypes[code]; ok {
		return label
	}
	return code
}

// Performance picks the encouragement line for a final score.
func (t Translations) Performance(score int) string {
	switch {
	case score >= 90:
		return t.Excellent
	case score >= 80:
		return t.VeryGood
	case score >= 70:
		return t.WellDone
	case score >= 60:
		return t.NotBad
	default:
		return t.KeepPracticing
	}
}
