package out

import (
	"time"

	"leseheft/internal/modules/catalog/domain"
)

// BuiltinTexts is the bundled starter catalog, one passage per text type.
// User texts in the data directory override entries with the same id.
func BuiltinTexts() []domain.Text {
	created := time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)
	return []domain.Text{
		{
			ID:    "email-001",
			Title: "Einladung zur Geburtstagsfeier",
			Type:  domain.TextTypeEmail,
			Level: domain.Level,
			Content: `Liebe Anna,

ich lade dich herzlich zu meiner Geburtstagsfeier ein!

Die Party findet am Samstag, den 15. April, um 18:00 Uhr statt. Wir feiern in meiner Wohnung in der Münchener Straße 42. Du kannst einfach mit der U-Bahn kommen - die Station "Stadtmitte" ist nur 5 Minuten von meiner Wohnung entfernt.

Ich habe schon viele Freunde eingeladen. Wir werden Musik hören, tanzen und natürlich auch leckeres Essen haben. Meine Mutter macht ihren berühmten Schokoladenkuchen!

Kannst du mir bis Donnerstag Bescheid geben, ob du kommen kannst? Ich muss wissen, wie viele Personen kommen, um genug Essen zu kaufen.

Ich freue mich sehr auf dich!

Viele Grüße
Sarah`,
			WordCount: 125,
			CreatedAt: created,
			Questions: []domain.Question{
				{
					ID:     "email-001-q1",
					Prompt: "Wann findet die Geburtstagsfeier statt?",
					Options: []string{
						"Am Freitag, den 15. April um 18:00 Uhr",
						"Am Samstag, den 15. April um 18:00 Uhr",
						"Am Sonntag, den 15. April um 19:00 Uhr",
						"Am Samstag, den 16. April um 18:00 Uhr",
					},
					CorrectAnswer: 1,
					Explanation:   `Im Text steht: "Die Party findet am Samstag, den 15. April, um 18:00 Uhr statt."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "email-001-q2",
					Prompt: "Wie kann Anna zur Party kommen?",
					Options: []string{
						`Mit dem Bus zur Station "Stadtmitte"`,
						`Mit der U-Bahn zur Station "Stadtmitte"`,
						"Mit dem Auto zur Münchener Straße",
						"Zu Fuß zur Münchener Straße",
					},
					CorrectAnswer: 1,
					Explanation:   `Sarah schreibt: "Du kannst einfach mit der U-Bahn kommen - die Station 'Stadtmitte' ist nur 5 Minuten von meiner Wohnung entfernt."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "email-001-q3",
					Prompt: "Was macht Sarahs Mutter für die Party?",
					Options: []string{
						"Sie kauft Getränke",
						"Sie macht Schokoladenkuchen",
						"Sie spielt Musik",
						"Sie dekoriert die Wohnung",
					},
					CorrectAnswer: 1,
					Explanation:   `Im Text steht: "Meine Mutter macht ihren berühmten Schokoladenkuchen!"`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
			},
		},
		{
			ID:    "notice-001",
			Title: "Schwimmbad - Öffnungszeiten",
			Type:  domain.TextTypeNotice,
			Level: domain.Level,
			Content: `STADTBAD MÜNCHEN
Schwimmen • Sauna • Fitness

ÖFFNUNGSZEITEN:
Montag - Freitag: 6:00 - 22:00 Uhr
Samstag - Sonntag: 8:00 - 20:00 Uhr

PREISE:
Erwachsene: 4,50 €
Kinder (bis 14 Jahre): 2,00 €
Studenten: 3,00 € (mit Ausweis)
Familienkarte (2 Erwachsene + 2 Kinder): 12,00 €

WICHTIGE INFORMATIONEN:
• Bitte bringen Sie ein Handtuch mit
• Schwimmbrille ist empfohlen
• Keine Glasflaschen im Schwimmbadbereich
• Parkplätze sind kostenlos

Bei Fragen rufen Sie uns an: 089-123456

Wir freuen uns auf Ihren Besuch!`,
			WordCount: 95,
			CreatedAt: created,
			Questions: []domain.Question{
				{
					ID:     "notice-001-q1",
					Prompt: "Wie lange ist das Schwimmbad am Samstag geöffnet?",
					Options: []string{
						"Von 6:00 bis 22:00 Uhr",
						"Von 8:00 bis 20:00 Uhr",
						"Von 8:00 bis 22:00 Uhr",
						"Von 6:00 bis 20:00 Uhr",
					},
					CorrectAnswer: 1,
					Explanation:   `Unter Öffnungszeiten steht: "Samstag - Sonntag: 8:00 - 20:00 Uhr"`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "notice-001-q2",
					Prompt: "Wie viel kostet der Eintritt für einen Studenten?",
					Options: []string{
						"2,00 €",
						"3,00 €",
						"4,50 €",
						"12,00 €",
					},
					CorrectAnswer: 1,
					Explanation:   `Bei den Preisen steht: "Studenten: 3,00 € (mit Ausweis)"`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "notice-001-q3",
					Prompt: "Was sollen die Besucher mitbringen?",
					Options: []string{
						"Schwimmbrille",
						"Handtuch",
						"Getränke",
						"Parkgeld",
					},
					CorrectAnswer: 1,
					Explanation:   `In den wichtigen Informationen steht: "Bitte bringen Sie ein Handtuch mit"`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
			},
		},
		{
			ID:    "article-001",
			Title: "Wetter in Deutschland",
			Type:  domain.TextTypeArticle,
			Level: domain.Level,
			Content: `Das Wetter in Deutschland ändert sich oft. Im Winter ist es kalt und manchmal schneit es. Die Temperatur liegt meist zwischen -5°C und 5°C. Viele Menschen tragen warme Jacken und Handschuhe.

Der Frühling beginnt im März. Die Tage werden länger und wärmer. Die Bäume bekommen neue Blätter und die Blumen blühen. Es regnet oft, aber das ist gut für die Natur.

Im Sommer kann es sehr warm werden. Die Temperaturen steigen manchmal auf 30°C oder mehr. Viele Deutsche fahren in den Urlaub oder gehen ins Schwimmbad. Abends sitzen sie gern im Biergarten.

Der Herbst ist oft sehr schön in Deutschland. Die Blätter an den Bäumen werden gelb, rot und braun. Es wird wieder kühler und es regnet mehr. Viele Menschen sammeln Pilze im Wald.

Das deutsche Wetter ist nicht immer perfekt, aber es ist sehr abwechslungsreich!`,
			WordCount: 165,
			CreatedAt: created,
			Questions: []domain.Question{
				{
					ID:     "article-001-q1",
					Prompt: "Wie sind die Temperaturen im deutschen Winter?",
					Options: []string{
						"Zwischen 5°C und 15°C",
						"Zwischen -5°C und 5°C",
						"Zwischen -10°C und 0°C",
						"Zwischen 0°C und 10°C",
					},
					CorrectAnswer: 1,
					Explanation:   `Im Text steht: "Die Temperatur liegt meist zwischen -5°C und 5°C."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "article-001-q2",
					Prompt: "Was machen viele Deutsche im Sommer abends?",
					Options: []string{
						"Sie fahren in den Urlaub",
						"Sie gehen ins Schwimmbad",
						"Sie sitzen im Biergarten",
						"Sie sammeln Pilze",
					},
					CorrectAnswer: 2,
					Explanation:   `Der Text sagt: "Abends sitzen sie gern im Biergarten."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "article-001-q3",
					Prompt: "Wie beschreibt der Text das deutsche Wetter?",
					Options: []string{
						"Immer perfekt",
						"Sehr langweilig",
						"Sehr abwechslungsreich",
						"Zu kalt",
					},
					CorrectAnswer: 2,
					Explanation:   `Am Ende steht: "Das deutsche Wetter ist nicht immer perfekt, aber es ist sehr abwechslungsreich!"`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
			},
		},
		{
			ID:    "ad-001",
			Title: "Fahrrad zu verkaufen",
			Type:  domain.TextTypeAdvertisement,
			Level: domain.Level,
			Content: `FAHRRAD ZU VERKAUFEN!

Verkaufe mein Damenfahrrad, Marke "Pegasus", Farbe blau.
Das Fahrrad ist 3 Jahre alt und in sehr gutem Zustand.

• 28 Zoll, 7 Gänge
• Neue Bremsen (vom letzten Monat)
• Mit Korb und Licht
• Preis: 120 € (Neupreis: 450 €)

Das Fahrrad steht in Hamburg-Altona. Sie können es am Wochenende gern ansehen und Probe fahren.

Kontakt: Frau Meier, Telefon 040-987654
Bitte rufen Sie zwischen 17:00 und 20:00 Uhr an.`,
			WordCount: 80,
			CreatedAt: created,
			Questions: []domain.Question{
				{
					ID:     "ad-001-q1",
					Prompt: "Wie viel kostet das Fahrrad?",
					Options: []string{
						"450 €",
						"120 €",
						"40 €",
						"320 €",
					},
					CorrectAnswer: 1,
					Explanation:   `In der Anzeige steht: "Preis: 120 € (Neupreis: 450 €)"`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "ad-001-q2",
					Prompt: "Wann soll man Frau Meier anrufen?",
					Options: []string{
						"Am Wochenende",
						"Zwischen 17:00 und 20:00 Uhr",
						"Vor 17:00 Uhr",
						"Nur am Montag",
					},
					CorrectAnswer: 1,
					Explanation:   `Am Ende steht: "Bitte rufen Sie zwischen 17:00 und 20:00 Uhr an."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:            "ad-001-q3",
					Prompt:        "Das Fahrrad hat neue Bremsen.",
					Options:       []string{"Richtig", "Falsch"},
					CorrectAnswer: 0,
					Explanation:   `In der Anzeige steht: "Neue Bremsen (vom letzten Monat)"`,
					Kind:          domain.QuestionKindTrueFalse,
				},
			},
		},
		{
			ID:    "letter-001",
			Title: "Brief an die Vermieterin",
			Type:  domain.TextTypeLetter,
			Level: domain.Level,
			Content: `Sehr geehrte Frau Schneider,

ich schreibe Ihnen, weil die Heizung in meiner Wohnung seit drei Tagen nicht funktioniert. In der Küche und im Schlafzimmer ist es sehr kalt, nur etwa 15 Grad.

Ich habe schon versucht, die Heizung neu zu starten, aber das hat nicht geholfen. Können Sie bitte einen Handwerker schicken? Ich bin jeden Tag ab 16:00 Uhr zu Hause.

Außerdem möchte ich Sie informieren, dass ich vom 10. bis 17. Februar im Urlaub bin. In dieser Zeit kann meine Nachbarin, Frau Koch, dem Handwerker die Tür öffnen. Sie hat einen Schlüssel.

Vielen Dank für Ihre Hilfe.

Mit freundlichen Grüßen
Thomas Berger`,
			WordCount: 110,
			CreatedAt: created,
			Questions: []domain.Question{
				{
					ID:     "letter-001-q1",
					Prompt: "Warum schreibt Thomas Berger den Brief?",
					Options: []string{
						"Er möchte die Wohnung kündigen",
						"Die Heizung funktioniert nicht",
						"Er fährt in den Urlaub",
						"Die Miete ist zu hoch",
					},
					CorrectAnswer: 1,
					Explanation:   `Am Anfang steht: "ich schreibe Ihnen, weil die Heizung in meiner Wohnung seit drei Tagen nicht funktioniert."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:     "letter-001-q2",
					Prompt: "Ab wann ist Thomas jeden Tag zu Hause?",
					Options: []string{
						"Ab 15:00 Uhr",
						"Ab 16:00 Uhr",
						"Ab 17:00 Uhr",
						"Den ganzen Tag",
					},
					CorrectAnswer: 1,
					Explanation:   `Im Brief steht: "Ich bin jeden Tag ab 16:00 Uhr zu Hause."`,
					Kind:          domain.QuestionKindMultipleChoice,
				},
				{
					ID:            "letter-001-q3",
					Prompt:        "Frau Koch hat einen Schlüssel für die Wohnung.",
					Options:       []string{"Richtig", "Falsch"},
					CorrectAnswer: 0,
					Explanation:   `Im Brief steht: "Sie hat einen Schlüssel."`,
					Kind:          domain.QuestionKindTrueFalse,
				},
			},
		},
	}
}
