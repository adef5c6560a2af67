package in

import (
	"context"

	"leseheft/internal/modules/catalog/dto"
)

type Usecase interface {
	ListTexts(ctx context.Context) ([]dto.TextOutput, error)
	GetText(ctx context.Context, id string) (dto.TextDetailOutput, error)
	Seed(ctx context.Context) (dto.SeedOutput, error)
}
