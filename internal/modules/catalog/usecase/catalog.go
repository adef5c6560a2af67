package usecase

import (
	"context"
	"strings"

	"leseheft/internal/modules/catalog/domain"
	"leseheft/internal/modules/catalog/dto"
	catalogin "leseheft/internal/modules/catalog/port/in"
	"leseheft/internal/modules/catalog/service"
	apperrors "leseheft/internal/platform/errors"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListTexts(ctx context.Context) ([]dto.TextOutput, error) {
	texts, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.TextOutput, len(texts))
	for idx, text := range texts {
		outputs[idx] = toOutput(text)
	}
	return outputs, nil
}

func (i *Interactor) GetText(ctx context.Context, id string) (dto.TextDetailOutput, error) {
	if strings.TrimSpace(id) == "" {
		return dto.TextDetailOutput{}, apperrors.ErrInvalidInput
	}
	text, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.TextDetailOutput{}, err
	}
	questions := make([]dto.QuestionOutput, len(text.Questions))
	for idx, q := range text.Questions {
		questions[idx] = dto.QuestionOutput{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Kind:          string(q.Kind),
		}
	}
	return dto.TextDetailOutput{
		TextOutput: toOutput(text),
		Content:    text.Content,
		Questions:  questions,
	}, nil
}

func (i *Interactor) Seed(ctx context.Context) (dto.SeedOutput, error) {
	written, skipped, err := i.svc.Seed(ctx)
	if err != nil {
		return dto.SeedOutput{}, err
	}
	return dto.SeedOutput{Written: written, Skipped: skipped}, nil
}

func toOutput(text domain.Text) dto.TextOutput {
	return dto.TextOutput{
		ID:            text.ID,
		Title:         text.Title,
		Type:          string(text.Type),
		Level:         text.Level,
		WordCount:     text.WordCount,
		QuestionCount: len(text.Questions),
		CreatedAt:     text.CreatedAt,
	}
}
