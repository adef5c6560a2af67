package in

import (
	"context"

	"leseheft/internal/modules/catalog/dto"
	catalogin "leseheft/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListTexts(ctx context.Context) ([]dto.TextOutput, error) {
	return h.usecase.ListTexts(ctx)
}

func (h CLIHandler) GetText(ctx context.Context, id string) (dto.TextDetailOutput, error) {
	return h.usecase.GetText(ctx, id)
}

func (h CLIHandler) Seed(ctx context.Context) (dto.SeedOutput, error) {
	return h.usecase.Seed(ctx)
}
